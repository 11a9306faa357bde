package model

import "errors"

var (
	// ErrNotFound is returned when a resource is not found, e.g a task position out of range.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
)
