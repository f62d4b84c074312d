package usecase

import "errors"

// ErrNotFound is wrapped by every "record missing" error, so callers can
// branch on errors.Is(err, ErrNotFound) or on the specific error.
var ErrNotFound = errors.New("not found")
