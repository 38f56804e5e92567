// Package service implements the business logic layer for the Carte API.
//
// The service owns every validation rule: names are trimmed then checked
// against length bounds, search queries and pagination parameters are
// checked before any repository call, and the duplicate-name policy is
// applied here. Handlers never validate and the repository never receives
// input the service has not accepted.
//
// # Repository Interface
//
// The service defines its own MenuItemRepository interface so unit tests
// can substitute function-field mocks for the SurrealDB-backed
// implementation.
//
// # Errors
//
// All failures are sentinel errors from errors.go. Handlers translate
// them to HTTP problem documents; the service never references HTTP.
package service
