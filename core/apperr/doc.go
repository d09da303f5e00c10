// Package apperr defines the request-scoped error taxonomy shared by
// services and HTTP handlers.
//
// Four kinds exist: NotFound (entity absent locally and unresolvable
// externally), Validation (malformed write input, with field-level
// messages), Conflict (duplicate create attempt) and Provider (external
// API unreachable or malformed).
//
// Services return *Error values; handlers call Respond to translate them
// into HTTP statuses (404, 422, 409, 502). Provider failures on read
// paths are usually degraded to stale local data by the services and
// never reach a handler.
package apperr
