package handler

import (
	"net/http"
	"strconv"

	"github.com/forgo/carte/api/internal/model"
	"github.com/forgo/carte/api/internal/service"
)

// MenuItemHandler handles menu item endpoints
type MenuItemHandler struct {
	items *service.MenuItemService
}

// NewMenuItemHandler creates a new menu item handler
func NewMenuItemHandler(items *service.MenuItemService) *MenuItemHandler {
	return &MenuItemHandler{items: items}
}

// List handles GET /api/menu-items - list all items, newest first
func (h *MenuItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListItems(r.Context())
	if err != nil {
		RespondError(w, r, err, "list menu items")
		return
	}

	WriteCollection(w, http.StatusOK, items, len(items))
}

// Create handles POST /api/menu-items - create a new item
func (h *MenuItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMenuItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	item, err := h.items.CreateItem(r.Context(), req.Name)
	if err != nil {
		RespondError(w, r, err, "create menu item")
		return
	}

	WriteData(w, http.StatusCreated, item)
}

// Get handles GET /api/menu-items/{id} - fetch a single item
func (h *MenuItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	item, err := h.items.GetItem(r.Context(), id)
	if err != nil {
		RespondError(w, r, err, "get menu item")
		return
	}

	WriteData(w, http.StatusOK, item)
}

// Update handles PUT /api/menu-items/{id} - replace an item's name
func (h *MenuItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	var req model.UpdateMenuItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	item, err := h.items.UpdateItem(r.Context(), id, req.Name)
	if err != nil {
		RespondError(w, r, err, "update menu item")
		return
	}

	WriteData(w, http.StatusOK, item)
}

// Delete handles DELETE /api/menu-items/{id} - remove an item
func (h *MenuItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	item, err := h.items.DeleteItem(r.Context(), id)
	if err != nil {
		RespondError(w, r, err, "delete menu item")
		return
	}

	WriteJSON(w, http.StatusOK, DeleteResponse{
		Message: "menu item deleted",
		Data:    item,
	})
}

// Search handles GET /api/search?q=&limit=&offset= - paginated name search
func (h *MenuItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	limit, ok := parseQueryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := parseQueryInt(w, r, "offset")
	if !ok {
		return
	}

	result, err := h.items.SearchItems(r.Context(), q, limit, offset)
	if err != nil {
		RespondError(w, r, err, "search menu items")
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// parseItemID parses the {id} path parameter. Ids must be positive
// integers; anything else is rejected before any store access.
func parseItemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, model.NewBadRequestError("id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// parseQueryInt parses an optional integer query parameter, returning 0
// when the parameter is absent
func parseQueryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: name, Message: name + " must be an integer"},
		}))
		return 0, false
	}
	return v, true
}
