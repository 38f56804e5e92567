// Package handler provides HTTP request handlers for the Carte API.
//
// Handlers parse the request, delegate to the service layer, and write the
// response envelope. They hold no business rules: a handler's only
// validation is shape-level (malformed JSON, non-integer path and query
// parameters), which never reaches the service.
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: single resource wrapped in {"data": ...}
//   - WriteCollection: list wrapped in {"data": [...], "count": n}
//   - WriteJSON: raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Error Mapping
//
// MapServiceError is the single place where service sentinel errors
// become HTTP statuses. Unexpected failures are logged with the request
// id and returned to the client as a generic 500; internal detail never
// leaves the process.
package handler
