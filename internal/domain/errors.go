package domain

import "errors"

// Sentinel errors shared by repositories, services and controllers.
var (
	// ErrNotFound is returned when a record referenced by id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a required field is missing or blank.
	ErrInvalidInput = errors.New("invalid input")
)
