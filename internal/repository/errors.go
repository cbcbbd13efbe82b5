package repository

import "errors"

// ErrNotFound is returned when a requested row doesn't exist, so the service
// layer doesn't depend on pgx errors.
var ErrNotFound = errors.New("not found")
