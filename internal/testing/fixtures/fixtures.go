// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories handle database insertion
// and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	item := f.CreateMenuItem(t)
//	item := f.CreateMenuItem(t, fixtures.WithName("Margherita Pizza"))
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/forgo/carte/api/internal/database"
	"github.com/forgo/carte/api/internal/model"
	"github.com/forgo/carte/api/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	db    database.Database
	items *repository.MenuItemRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		db:    db,
		items: repository.NewMenuItemRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	// Fixture operations complete within the timeout
	_ = cancel
	return c
}

// MenuItemOpts customizes menu item creation
type MenuItemOpts struct {
	Name string
}

// WithName sets the item name
func WithName(name string) func(*MenuItemOpts) {
	return func(o *MenuItemOpts) {
		o.Name = name
	}
}

// CreateMenuItem creates a menu item with optional customizations.
// Names default to a unique random value so fixtures never collide
// with the unique name index.
func (f *Factory) CreateMenuItem(t *testing.T, opts ...func(*MenuItemOpts)) *model.MenuItem {
	t.Helper()

	o := &MenuItemOpts{
		Name: fmt.Sprintf("Dish %s", randomID()),
	}
	for _, fn := range opts {
		fn(o)
	}

	item, err := f.items.Create(ctx(), o.Name)
	if err != nil {
		t.Fatalf("fixtures: failed to create menu item: %v", err)
	}
	return item
}

// CreateMenuItems creates n menu items and returns them in creation order
func (f *Factory) CreateMenuItems(t *testing.T, n int) []*model.MenuItem {
	t.Helper()

	items := make([]*model.MenuItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, f.CreateMenuItem(t))
	}
	return items
}

// CreateNamedMenuItems creates one menu item per name, in order
func (f *Factory) CreateNamedMenuItems(t *testing.T, names ...string) []*model.MenuItem {
	t.Helper()

	items := make([]*model.MenuItem, 0, len(names))
	for _, name := range names {
		items = append(items, f.CreateMenuItem(t, WithName(name)))
	}
	return items
}
