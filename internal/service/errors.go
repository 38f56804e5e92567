package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Menu Item Errors =====
var (
	ErrItemNotFound  = errors.New("menu item not found")
	ErrNameRequired  = errors.New("name is required")
	ErrNameTooShort  = errors.New("name must be at least 2 characters")
	ErrNameTooLong   = errors.New("name must be at most 100 characters")
	ErrDuplicateName = errors.New("a menu item with this name already exists")
	ErrInvalidID     = errors.New("id must be a positive integer")
)

// ===== Search Errors =====
var (
	ErrQueryRequired = errors.New("search query is required")
	ErrQueryTooShort = errors.New("search query must be at least 2 characters")
	ErrInvalidLimit  = errors.New("limit must be a positive integer")
	ErrLimitTooLarge = errors.New("limit must be at most 100")
	ErrInvalidOffset = errors.New("offset must not be negative")
)
