package errors

import "errors"

// This package defines the sentinel errors shared by the service and API layers.
// Services wrap them with context; the API layer uses `errors.Is()` to map them
// to HTTP status codes.

var (
	// ErrNotFound signifies that a targeted conversation, folder, template or
	// message does not exist. Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input failed validation, including a
	// malformed import bundle. Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that the operation collides with work already in
	// progress, e.g. a second send to a conversation that is still dispatching.
	// Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrInternal is a generic error used to avoid leaking implementation
	// details. Mapped to 500 Internal Server Error.
	ErrInternal = errors.New("internal server error")
)
