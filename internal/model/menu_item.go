package model

import (
	"strings"
	"time"
)

// MenuItem is the single domain record managed by this API.
// IDs are positive integers assigned from a monotonic counter at creation
// time and are never reused, even after the record is deleted.
type MenuItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Name constraints. Names are trimmed before these apply.
const (
	MinNameLength = 2
	MaxNameLength = 100
)

// Search constraints
const (
	MinQueryLength     = 2
	MaxSearchLimit     = 100
	DefaultSearchLimit = 20
)

// CreateMenuItemRequest represents a request to create a menu item
type CreateMenuItemRequest struct {
	Name string `json:"name"`
}

// UpdateMenuItemRequest represents a request to replace a menu item's name
type UpdateMenuItemRequest struct {
	Name string `json:"name"`
}

// SearchResult is the wire shape of GET /api/search.
type SearchResult struct {
	Query      string      `json:"query"`
	Results    []*MenuItem `json:"results"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination describes an offset-paginated result window.
type Pagination struct {
	Total   int  `json:"total"`
	Count   int  `json:"count"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// NewPagination computes the pagination block for a result window.
// HasMore is true when records exist past the requested window.
func NewPagination(total, count, limit, offset int) Pagination {
	return Pagination{
		Total:   total,
		Count:   count,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+limit < total,
	}
}

// NormalizeName strips leading and trailing whitespace. Callers validate
// the normalized value, never the raw input.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
