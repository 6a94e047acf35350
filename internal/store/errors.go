package store

import (
	"errors"
	"strings"
)

var (
	// ErrNoSelection is returned when an operation needs a row but none is selected.
	ErrNoSelection = errors.New("no row selected")
	// ErrCancelled is returned when the user declines a dialog. It is an outcome, not a failure.
	ErrCancelled = errors.New("cancelled by user")
)

// ValidationError lists the required fields that were missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required field(s): " + strings.Join(e.Fields, ", ")
}
