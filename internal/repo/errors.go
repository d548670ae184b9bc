package repo

import "errors"

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a unique constraint rejects a write.
var ErrAlreadyExists = errors.New("already exists")
