package repository

import "errors"

var (
	// ErrNotFound is returned when a key has no stored value
	ErrNotFound = errors.New("not found")

	// ErrUnavailable is returned when the backing store cannot be reached
	ErrUnavailable = errors.New("store unavailable")
)
