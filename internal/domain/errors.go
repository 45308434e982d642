package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// trip plan does not exist in any configured store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when a trip request fails
// business rule validation (e.g. missing destination, non-positive duration).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
