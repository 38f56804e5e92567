package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/forgo/carte/api/internal/database"
	"github.com/forgo/carte/api/internal/model"
)

// MenuItemRepository defines the interface for menu item storage
type MenuItemRepository interface {
	List(ctx context.Context) ([]*model.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*model.MenuItem, error)
	FindByName(ctx context.Context, name string) (*model.MenuItem, error)
	Create(ctx context.Context, name string) (*model.MenuItem, error)
	Update(ctx context.Context, id int64, name string) (*model.MenuItem, error)
	Delete(ctx context.Context, id int64) (*model.MenuItem, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*model.MenuItem, int, error)
}

// MenuItemService handles menu item business logic. All input validation
// happens here, before any repository call.
type MenuItemService struct {
	repo        MenuItemRepository
	uniqueNames bool
}

// MenuItemServiceConfig holds configuration for the menu item service
type MenuItemServiceConfig struct {
	Repo MenuItemRepository
	// UniqueNames enforces case-insensitive uniqueness on item names.
	UniqueNames bool
}

// NewMenuItemService creates a new menu item service
func NewMenuItemService(cfg MenuItemServiceConfig) *MenuItemService {
	return &MenuItemService{
		repo:        cfg.Repo,
		uniqueNames: cfg.UniqueNames,
	}
}

// ListItems retrieves all menu items, newest first
func (s *MenuItemService) ListItems(ctx context.Context) ([]*model.MenuItem, error) {
	return s.repo.List(ctx)
}

// GetItem retrieves a single menu item by id
func (s *MenuItemService) GetItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// CreateItem validates and creates a new menu item
func (s *MenuItemService) CreateItem(ctx context.Context, name string) (*model.MenuItem, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	if s.uniqueNames {
		existing, err := s.repo.FindByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateName
		}
	}

	item, err := s.repo.Create(ctx, name)
	if err != nil {
		// The unique index is the backstop for concurrent creates
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return item, nil
}

// UpdateItem validates and replaces the name of an existing item
func (s *MenuItemService) UpdateItem(ctx context.Context, id int64, name string) (*model.MenuItem, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	if s.uniqueNames {
		existing, err := s.repo.FindByName(ctx, name)
		if err != nil {
			return nil, err
		}
		// An item may keep its own name
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateName
		}
	}

	item, err := s.repo.Update(ctx, id, name)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return nil, ErrItemNotFound
		case errors.Is(err, database.ErrDuplicate):
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item and returns its final snapshot.
// Deleting an id that no longer exists reports not-found, never an
// internal error, so deletes are idempotent at the API level.
func (s *MenuItemService) DeleteItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	item, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// SearchItems performs a validated, paginated, case-insensitive substring
// search on item names
func (s *MenuItemService) SearchItems(ctx context.Context, query string, limit, offset int) (*model.SearchResult, error) {
	query = model.NormalizeName(query)
	if query == "" {
		return nil, ErrQueryRequired
	}
	if utf8.RuneCountInString(query) < model.MinQueryLength {
		return nil, ErrQueryTooShort
	}
	if limit == 0 {
		limit = model.DefaultSearchLimit
	}
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if limit > model.MaxSearchLimit {
		return nil, ErrLimitTooLarge
	}
	if offset < 0 {
		return nil, ErrInvalidOffset
	}

	items, total, err := s.repo.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return &model.SearchResult{
		Query:      query,
		Results:    items,
		Pagination: model.NewPagination(total, len(items), limit, offset),
	}, nil
}

// validateName normalizes a raw name and checks its constraints, returning
// the trimmed value that will be stored.
func validateName(name string) (string, error) {
	name = model.NormalizeName(name)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) < model.MinNameLength {
		return "", ErrNameTooShort
	}
	if utf8.RuneCountInString(name) > model.MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
