package store

import "strings"

// RemovePrompt is the question asked before a contact is deleted.
const RemovePrompt = "Are you sure you want to remove this contact?"

// Contact is a single entry in a ContactStore. It is never mutated after creation.
type Contact struct {
	Name  string
	Phone string
}

// ContactStore is an ordered, position-indexed list of contacts.
// It is not safe for concurrent use.
type ContactStore struct {
	items []Contact
}

func NewContactStore() *ContactStore {
	return &ContactStore{}
}

// Add trims both fields and appends a contact. Either field empty yields a
// *ValidationError and leaves the store untouched.
func (s *ContactStore) Add(name, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return Contact{}, &ValidationError{Fields: missing}
	}
	c := Contact{Name: name, Phone: phone}
	s.items = append(s.items, c)
	return c, nil
}

// Remove deletes the contact at index once c confirms. A negative or
// out-of-range index means nothing is selected.
func (s *ContactStore) Remove(index int, c Confirmer) (Contact, error) {
	if index < 0 || index >= len(s.items) {
		return Contact{}, ErrNoSelection
	}
	if c == nil || !c.Confirm(RemovePrompt) {
		return Contact{}, ErrCancelled
	}
	removed := s.items[index]
	s.items = append(s.items[:index], s.items[index+1:]...)
	return removed, nil
}

func (s *ContactStore) Len() int { return len(s.items) }

// At returns the contact at i and whether i was in range.
func (s *ContactStore) At(i int) (Contact, bool) {
	if i < 0 || i >= len(s.items) {
		return Contact{}, false
	}
	return s.items[i], true
}

// All returns a copy of the contacts in display order.
func (s *ContactStore) All() []Contact {
	out := make([]Contact, len(s.items))
	copy(out, s.items)
	return out
}
