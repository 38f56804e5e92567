// Package repository implements the data access layer for the Carte API.
//
// The repository contains all SurrealQL queries for the menu item catalog.
// It accepts the database.Database interface, keeping it testable and
// decoupled from the concrete SurrealDB client.
//
// # Integer Ids
//
// Menu items are addressed by an application-assigned integer id stored in
// the item_id field, not by SurrealDB record ids. The id sequence comes
// from a counter record bumped inside the same transaction that creates
// the item, so ids are monotonic and never reused.
//
// # Error Mapping
//
// Store-level failures surface as the database package's sentinel errors
// (ErrNotFound, ErrDuplicate, ErrQuery) so the service layer can branch
// with errors.Is without knowing any SurrealDB details.
package repository
