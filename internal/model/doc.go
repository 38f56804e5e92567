// Package model defines the domain types and wire shapes for the Carte API.
//
// The package holds the MenuItem record, request payloads, the search
// result and pagination shapes, and the RFC 9457 Problem Details error
// envelope. Types here carry JSON tags and are the single source of truth
// for what crosses the wire.
//
// # Validation Constants
//
// Name and search constraints live here so the service layer and the
// database schema agree on limits:
//
//	MinNameLength, MaxNameLength   - trimmed name bounds
//	MinQueryLength                 - minimum search query length
//	DefaultSearchLimit, MaxSearchLimit - pagination window bounds
//
// # Error Envelope
//
// All API errors are ProblemDetails documents (application/problem+json).
// Constructors for the common cases (NewNotFoundError, NewValidationError,
// NewConflictError, ...) keep status codes and error codes consistent
// across handlers.
package model
