package domain

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDanglingReference is returned when a poll points at an article that does not exist.
	ErrDanglingReference = errors.New("dangling reference")
)
