package repository

import "errors"

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrMissingReference means a foreign key pointed at a missing row.
	ErrMissingReference = errors.New("referenced row not found")
)
