package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/forgo/carte/api/internal/database"
	"github.com/forgo/carte/api/internal/model"
	"github.com/forgo/carte/api/internal/service"
)

// ============================================================================
// Stub repository
// ============================================================================

type stubRepo struct {
	listFunc       func(ctx context.Context) ([]*model.MenuItem, error)
	getByIDFunc    func(ctx context.Context, id int64) (*model.MenuItem, error)
	findByNameFunc func(ctx context.Context, name string) (*model.MenuItem, error)
	createFunc     func(ctx context.Context, name string) (*model.MenuItem, error)
	updateFunc     func(ctx context.Context, id int64, name string) (*model.MenuItem, error)
	deleteFunc     func(ctx context.Context, id int64) (*model.MenuItem, error)
	searchFunc     func(ctx context.Context, query string, limit, offset int) ([]*model.MenuItem, int, error)
}

func (s *stubRepo) List(ctx context.Context) ([]*model.MenuItem, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx)
	}
	return nil, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.getByIDFunc != nil {
		return s.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *stubRepo) FindByName(ctx context.Context, name string) (*model.MenuItem, error) {
	if s.findByNameFunc != nil {
		return s.findByNameFunc(ctx, name)
	}
	return nil, nil
}

func (s *stubRepo) Create(ctx context.Context, name string) (*model.MenuItem, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, name)
	}
	return &model.MenuItem{ID: 1, Name: name, CreatedAt: time.Now()}, nil
}

func (s *stubRepo) Update(ctx context.Context, id int64, name string) (*model.MenuItem, error) {
	if s.updateFunc != nil {
		return s.updateFunc(ctx, id, name)
	}
	return &model.MenuItem{ID: id, Name: name, CreatedAt: time.Now()}, nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, id)
	}
	return &model.MenuItem{ID: id, Name: "deleted", CreatedAt: time.Now()}, nil
}

func (s *stubRepo) Search(ctx context.Context, query string, limit, offset int) ([]*model.MenuItem, int, error) {
	if s.searchFunc != nil {
		return s.searchFunc(ctx, query, limit, offset)
	}
	return nil, 0, nil
}

// newTestMux wires the handler over a stub repository using the same
// route patterns as the server
func newTestMux(repo service.MenuItemRepository) *http.ServeMux {
	svc := service.NewMenuItemService(service.MenuItemServiceConfig{
		Repo:        repo,
		UniqueNames: true,
	})
	h := NewMenuItemHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/menu-items", h.List)
	mux.HandleFunc("POST /api/menu-items", h.Create)
	mux.HandleFunc("GET /api/menu-items/{id}", h.Get)
	mux.HandleFunc("PUT /api/menu-items/{id}", h.Update)
	mux.HandleFunc("DELETE /api/menu-items/{id}", h.Delete)
	mux.HandleFunc("GET /api/search", h.Search)
	return mux
}

func doRequest(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func mustDecode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response: %v. Body: %s", err, rec.Body.String())
	}
}

// ============================================================================
// List
// ============================================================================

func TestList_ReturnsItemsWithCount(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{
		listFunc: func(ctx context.Context) ([]*model.MenuItem, error) {
			return []*model.MenuItem{
				{ID: 2, Name: "Ramen", CreatedAt: time.Now()},
				{ID: 1, Name: "Tacos", CreatedAt: time.Now()},
			}, nil
		},
	})

	rec := doRequest(mux, http.MethodGet, "/api/menu-items", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data  []model.MenuItem `json:"data"`
		Count int              `json:"count"`
	}
	mustDecode(t, rec, &resp)
	if resp.Count != 2 {
		t.Errorf("expected count 2, got %d", resp.Count)
	}
	if len(resp.Data) != 2 || resp.Data[0].Name != "Ramen" {
		t.Errorf("unexpected data: %+v", resp.Data)
	}
}

func TestList_EmptyCatalog(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{
		listFunc: func(ctx context.Context) ([]*model.MenuItem, error) {
			return []*model.MenuItem{}, nil
		},
	})

	rec := doRequest(mux, http.MethodGet, "/api/menu-items", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Count int `json:"count"`
	}
	mustDecode(t, rec, &resp)
	if resp.Count != 0 {
		t.Errorf("expected count 0, got %d", resp.Count)
	}
}

// ============================================================================
// Create
// ============================================================================

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{
		createFunc: func(ctx context.Context, name string) (*model.MenuItem, error) {
			return &model.MenuItem{ID: 1, Name: name, CreatedAt: time.Now()}, nil
		},
	})

	rec := doRequest(mux, http.MethodPost, "/api/menu-items", `{"name": "Margherita Pizza"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data model.MenuItem `json:"data"`
	}
	mustDecode(t, rec, &resp)
	if resp.Data.Name != "Margherita Pizza" {
		t.Errorf("expected created name in envelope, got %q", resp.Data.Name)
	}
}

func TestCreate_MalformedJSON(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{})

	rec := doRequest(mux, http.MethodPost, "/api/menu-items", `{"name": `)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed JSON, got %d", rec.Code)
	}
}

func TestCreate_ValidationFailure(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{})

	rec := doRequest(mux, http.MethodPost, "/api/menu-items", `{"name": "A"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var pd model.ProblemDetails
	mustDecode(t, rec, &pd)
	if pd.Code != model.ErrCodeValidation {
		t.Errorf("expected validation error code, got %d", pd.Code)
	}
	if len(pd.Errors) == 0 || pd.Errors[0].Field != "name" {
		t.Errorf("expected field error on name, got %+v", pd.Errors)
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{
		findByNameFunc: func(ctx context.Context, name string) (*model.MenuItem, error) {
			return &model.MenuItem{ID: 3, Name: "Tacos", CreatedAt: time.Now()}, nil
		},
	})

	rec := doRequest(mux, http.MethodPost, "/api/menu-items", `{"name": "Tacos"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreate_StoreFailureIsGeneric500(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{
		createFunc: func(ctx context.Context, name string) (*model.MenuItem, error) {
			return nil, database.ErrQuery
		},
	})

	rec := doRequest(mux, http.MethodPost, "/api/menu-items", `{"name": "Tacos"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var pd model.ProblemDetails
	mustDecode(t, rec, &pd)
	if strings.Contains(pd.Detail, "query") {
		t.Errorf("expected generic detail, got %q", pd.Detail)
	}
}

// ============================================================================
// Get
// ============================================================================

func TestGet_Success(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.MenuItem, error) {
			return &model.MenuItem{ID: id, Name: "Ramen", CreatedAt: time.Now()}, nil
		},
	})

	rec := doRequest(mux, http.MethodGet, "/api/menu-items/3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data model.MenuItem `json:"data"`
	}
	mustDecode(t, rec, &resp)
	if resp.Data.ID != 3 {
		t.Errorf("expected id 3, got %d", resp.Data.ID)
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.MenuItem, error) {
			return nil, nil
		},
	})

	rec := doRequest(mux, http.MethodGet, "/api/menu-items/999", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestGet_InvalidID(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{})

	for _, path := range []string{
		"/api/menu-items/abc",
		"/api/menu-items/0",
		"/api/menu-items/-1",
		"/api/menu-items/1.5",
	} {
		rec := doRequest(mux, http.MethodGet, path, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s: expected 400, got %d", path, rec.Code)
		}
	}
}

// ============================================================================
// Update
// ============================================================================

func TestUpdate_Success(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{
		updateFunc: func(ctx context.Context, id int64, name string) (*model.MenuItem, error) {
			return &model.MenuItem{ID: id, Name: name, CreatedAt: time.Now()}, nil
		},
	})

	rec := doRequest(mux, http.MethodPut, "/api/menu-items/2", `{"name": "Updated Dish"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data model.MenuItem `json:"data"`
	}
	mustDecode(t, rec, &resp)
	if resp.Data.Name != "Updated Dish" {
		t.Errorf("expected updated name, got %q", resp.Data.Name)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{
		updateFunc: func(ctx context.Context, id int64, name string) (*model.MenuItem, error) {
			return nil, database.ErrNotFound
		},
	})

	rec := doRequest(mux, http.MethodPut, "/api/menu-items/999", `{"name": "Ghost Dish"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestUpdate_MalformedJSON(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{})

	rec := doRequest(mux, http.MethodPut, "/api/menu-items/2", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed JSON, got %d", rec.Code)
	}
}

// ============================================================================
// Delete
// ============================================================================

func TestDelete_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{
		deleteFunc: func(ctx context.Context, id int64) (*model.MenuItem, error) {
			return &model.MenuItem{ID: id, Name: "Removed Dish", CreatedAt: time.Now()}, nil
		},
	})

	rec := doRequest(mux, http.MethodDelete, "/api/menu-items/4", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Message string         `json:"message"`
		Data    model.MenuItem `json:"data"`
	}
	mustDecode(t, rec, &resp)
	if resp.Message == "" {
		t.Error("expected confirmation message")
	}
	if resp.Data.ID != 4 {
		t.Errorf("expected deleted snapshot with id 4, got %d", resp.Data.ID)
	}
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{
		deleteFunc: func(ctx context.Context, id int64) (*model.MenuItem, error) {
			return nil, database.ErrNotFound
		},
	})

	rec := doRequest(mux, http.MethodDelete, "/api/menu-items/4", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ============================================================================
// Search
// ============================================================================

func TestSearch_ResponseShape(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{
		searchFunc: func(ctx context.Context, query string, limit, offset int) ([]*model.MenuItem, int, error) {
			return []*model.MenuItem{
				{ID: 1, Name: "Margherita Pizza", CreatedAt: time.Now()},
			}, 1, nil
		},
	})

	rec := doRequest(mux, http.MethodGet, "/api/search?q=pizza", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result model.SearchResult
	mustDecode(t, rec, &result)
	if result.Query != "pizza" {
		t.Errorf("expected query echoed back, got %q", result.Query)
	}
	if len(result.Results) != 1 {
		t.Errorf("expected 1 result, got %d", len(result.Results))
	}
	if result.Pagination.Limit != model.DefaultSearchLimit {
		t.Errorf("expected default limit %d, got %d", model.DefaultSearchLimit, result.Pagination.Limit)
	}
}

func TestSearch_MissingQuery(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{})

	rec := doRequest(mux, http.MethodGet, "/api/search", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing q, got %d", rec.Code)
	}
}

func TestSearch_NonIntegerPagination(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&stubRepo{})

	for _, path := range []string{
		"/api/search?q=pizza&limit=abc",
		"/api/search?q=pizza&offset=abc",
	} {
		rec := doRequest(mux, http.MethodGet, path, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s: expected 400, got %d", path, rec.Code)
		}
	}
}

func TestSearch_LimitTooLarge(t *testing.T) {
	t.Parallel()

	searchCalled := false
	mux := newTestMux(&stubRepo{
		searchFunc: func(ctx context.Context, query string, limit, offset int) ([]*model.MenuItem, int, error) {
			searchCalled = true
			return nil, 0, nil
		},
	})

	rec := doRequest(mux, http.MethodGet, "/api/search?q=pizza&limit=101", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for limit over maximum, got %d", rec.Code)
	}
	if searchCalled {
		t.Error("expected no repository call for rejected limit")
	}
}
