package app

import (
	"errors"

	"github.com/jask/tablekeep/internal/store"
)

// Outcome classifies the result of a handler.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeInvalid     Outcome = "invalid"
	OutcomeNoSelection Outcome = "no_selection"
	OutcomeCancelled   Outcome = "cancelled"
)

// Result is what a handler reports back to the window: an outcome and the
// one-line status message to show.
type Result struct {
	Outcome Outcome
	Message string
}

func (r Result) OK() bool { return r.Outcome == OutcomeOK }

func outcomeOf(err error) Outcome {
	var verr *store.ValidationError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &verr):
		return OutcomeInvalid
	case errors.Is(err, store.ErrNoSelection):
		return OutcomeNoSelection
	case errors.Is(err, store.ErrCancelled):
		return OutcomeCancelled
	default:
		return OutcomeInvalid
	}
}
