package repository

import "errors"

// ErrNotFound is returned when a requested record is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a unique index already points at another record.
var ErrAlreadyExists = errors.New("already exists")
