package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a user already has a profile.
	ErrAlreadyExists = errors.New("already exists")
)
