package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/forgo/carte/api/internal/database"
	"github.com/forgo/carte/api/internal/model"
)

// MenuItemRepository handles menu item data access. It is the only path to
// the persistent representation; handlers and services never query the
// store directly.
type MenuItemRepository struct {
	db database.Database
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db database.Database) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

// List retrieves all menu items, newest first
func (r *MenuItemRepository) List(ctx context.Context) ([]*model.MenuItem, error) {
	query := `SELECT * FROM menu_item ORDER BY created_at DESC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	return parseMenuItemsResult(result)
}

// GetByID retrieves a menu item by its integer id
func (r *MenuItemRepository) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	query := `SELECT * FROM menu_item WHERE item_id = $id LIMIT 1`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseMenuItemResult(result)
}

// FindByName retrieves a live item whose name matches case-insensitively,
// or nil when no such item exists. Used by the uniqueness policy.
func (r *MenuItemRepository) FindByName(ctx context.Context, name string) (*model.MenuItem, error) {
	query := `SELECT * FROM menu_item WHERE string::lowercase(name) = $needle LIMIT 1`
	vars := map[string]interface{}{"needle": strings.ToLower(name)}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseMenuItemResult(result)
}

// Create inserts a new menu item. The integer id comes from a monotonic
// counter record so deleted ids are never reused; the counter bump and the
// insert commit together.
func (r *MenuItemRepository) Create(ctx context.Context, name string) (*model.MenuItem, error) {
	query := `
		BEGIN TRANSACTION;
		LET $seq = (UPSERT counter:menu_item SET value += 1 RETURN AFTER);
		CREATE menu_item CONTENT {
			item_id: $seq[0].value,
			name: $name,
			created_at: time::now()
		};
		COMMIT TRANSACTION;
	`
	vars := map[string]interface{}{"name": name}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, database.ErrDuplicate
		}
		return nil, err
	}
	if len(result) == 0 {
		return nil, database.ErrQuery
	}

	// The CREATE statement is the last one with a result
	return parseMenuItemResult(result[len(result)-1])
}

// Update replaces the name of an existing item and returns the new state
func (r *MenuItemRepository) Update(ctx context.Context, id int64, name string) (*model.MenuItem, error) {
	query := `UPDATE menu_item SET name = $name WHERE item_id = $id RETURN AFTER`
	vars := map[string]interface{}{"id": id, "name": name}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, database.ErrDuplicate
		}
		return nil, err
	}

	items, err := parseMenuItemsResult(result)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, database.ErrNotFound
	}
	return items[0], nil
}

// Delete removes an item and returns its final snapshot
func (r *MenuItemRepository) Delete(ctx context.Context, id int64) (*model.MenuItem, error) {
	query := `DELETE menu_item WHERE item_id = $id RETURN BEFORE`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	items, err := parseMenuItemsResult(result)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, database.ErrNotFound
	}
	return items[0], nil
}

// Search performs a case-insensitive substring match on name, returning
// the requested window plus the total match count.
func (r *MenuItemRepository) Search(ctx context.Context, query string, limit, offset int) ([]*model.MenuItem, int, error) {
	stmt := `
		SELECT * FROM menu_item
		WHERE string::contains(string::lowercase(name), $needle)
		ORDER BY created_at DESC
		LIMIT $limit START $offset;
		SELECT count() FROM menu_item
		WHERE string::contains(string::lowercase(name), $needle)
		GROUP ALL;
	`
	vars := map[string]interface{}{
		"needle": strings.ToLower(query),
		"limit":  limit,
		"offset": offset,
	}

	result, err := r.db.Query(ctx, stmt, vars)
	if err != nil {
		return nil, 0, err
	}
	if len(result) < 2 {
		return nil, 0, database.ErrQuery
	}

	items, err := parseMenuItemsResult(result[:1])
	if err != nil {
		return nil, 0, err
	}

	total := extractCount(result[1])
	return items, total, nil
}
