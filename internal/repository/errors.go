package repository

import "errors"

var (
	// ErrDuplicateEmail is returned when an insert trips the users email
	// unique index.
	ErrDuplicateEmail = errors.New("email already in use")

	ErrNotFound = errors.New("record not found")
)
