package tracker

import "errors"

var (
	// ErrInvalidInput marks an empty name or calorie text that is not a
	// non-negative integer.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoSelection is returned by UpdateSelected when nothing is selected.
	ErrNoSelection = errors.New("no item selected")
	// ErrNotFound is returned when no item carries the requested id.
	ErrNotFound = errors.New("item not found")
)
