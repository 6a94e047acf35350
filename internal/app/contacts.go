package app

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/tablekeep/internal/store"
)

const (
	msgContactInvalid     = "Please enter a contact name and phone number."
	msgContactNoSelection = "Please select a row to be removed."
	msgContactRemoved     = "Contact removed."
	msgContactCancelled   = "Contact removal canceled."
)

// AddContact validates and appends a contact.
func (a *App) AddContact(name, phone string) Result {
	similar := a.similarContact(name)
	c, err := a.Contacts.Add(name, phone)
	if err != nil {
		a.log.Warn("add contact rejected", "error", err)
		return Result{Outcome: outcomeOf(err), Message: msgContactInvalid}
	}
	a.log.Info("contact added", "row", a.Contacts.Len()-1)
	msg := "Added contact: " + c.Name
	if similar != "" {
		msg += fmt.Sprintf(" (similar to %s)", similar)
	}
	return Result{Outcome: OutcomeOK, Message: msg}
}

// RemoveContact removes the contact at index after c confirms. index is -1
// when no row is selected.
func (a *App) RemoveContact(index int, c store.Confirmer) Result {
	_, err := a.Contacts.Remove(index, c)
	outcome := outcomeOf(err)
	switch outcome {
	case OutcomeOK:
		a.log.Info("contact removed", "row", index)
		return Result{Outcome: outcome, Message: msgContactRemoved}
	case OutcomeCancelled:
		a.log.Info("contact removal cancelled", "row", index)
		return Result{Outcome: outcome, Message: msgContactCancelled}
	default:
		a.log.Warn("remove contact rejected", "row", index, "error", err)
		return Result{Outcome: outcome, Message: msgContactNoSelection}
	}
}

// similarContact returns the first existing name within the configured edit
// distance of name, ignoring case.
func (a *App) similarContact(name string) string {
	limit := a.cfg.Contacts.SimilarDistance
	name = strings.ToLower(strings.TrimSpace(name))
	if limit <= 0 || name == "" {
		return ""
	}
	for _, c := range a.Contacts.All() {
		if levenshtein.ComputeDistance(name, strings.ToLower(c.Name)) <= limit {
			return c.Name
		}
	}
	return ""
}
