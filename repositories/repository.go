package repositories

import "errors"

// ErrNotFound is returned when a requested record does not exist. Services
// translate it into their own not-found errors.
var ErrNotFound = errors.New("record not found")
