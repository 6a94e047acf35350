package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/tablekeep/internal/app"
	"github.com/jask/tablekeep/internal/store"
)

func addContactFlow(t *testing.T, w *ContactWindow, name, phone string) {
	t.Helper()
	flowType(t, w, name)
	flowPress(t, w, "tab")
	flowType(t, w, phone)
	flowPress(t, w, "enter")
	flowPress(t, w, "shift+tab")
}

func TestContactWindowAddClearsInputs(t *testing.T) {
	a := newFlowApp(t)
	w := NewContactWindow(a, NewKeyRegistry())

	addContactFlow(t, w, " Ada Lovelace", "555 0101 ")
	require.Equal(t, []store.Contact{{Name: "Ada Lovelace", Phone: "555 0101"}}, a.Contacts.All())
	require.Equal(t, "Added contact: Ada Lovelace", w.Status().Message)
	require.Empty(t, w.name.Value())
	require.Empty(t, w.phone.Value())
	require.Contains(t, w.View(), "Ada Lovelace")
}

func TestContactWindowAddKeepsLongFields(t *testing.T) {
	a := newFlowApp(t)
	w := NewContactWindow(a, NewKeyRegistry())

	name := strings.Repeat("Ada ", 20) + "Lovelace"
	phone := strings.Repeat("5", 70)
	addContactFlow(t, w, name, phone)
	require.Equal(t, []store.Contact{{Name: name, Phone: phone}}, a.Contacts.All())
}

func TestContactWindowAddMissingField(t *testing.T) {
	a := newFlowApp(t)
	w := NewContactWindow(a, NewKeyRegistry())

	flowType(t, w, "Ada")
	flowPress(t, w, "enter")
	require.Equal(t, 0, a.Contacts.Len())
	require.Equal(t, app.OutcomeInvalid, w.Status().Outcome)
	require.Equal(t, "Please enter a contact name and phone number.", w.Status().Message)
	require.Equal(t, "Ada", w.name.Value(), "inputs are kept on failure")
}

func TestContactWindowRemoveWithoutSelection(t *testing.T) {
	a := newFlowApp(t)
	w := NewContactWindow(a, NewKeyRegistry())
	addContactFlow(t, w, "Ada", "1")

	flowPress(t, w, "ctrl+d")
	require.False(t, w.Confirming())
	require.Equal(t, app.OutcomeNoSelection, w.Status().Outcome)
	require.Equal(t, 1, a.Contacts.Len())
}

func TestContactWindowRemoveConfirmed(t *testing.T) {
	a := newFlowApp(t)
	w := NewContactWindow(a, NewKeyRegistry())
	addContactFlow(t, w, "Ada", "1")
	addContactFlow(t, w, "Grace", "2")
	addContactFlow(t, w, "Linus", "3")

	flowPress(t, w, "shift+tab")
	require.Equal(t, 0, w.Selected())
	flowPress(t, w, "j")
	require.Equal(t, 1, w.Selected())

	flowPress(t, w, "d")
	require.True(t, w.Confirming())
	require.Contains(t, w.View(), store.RemovePrompt)

	flowPress(t, w, "y")
	require.False(t, w.Confirming())
	require.Equal(t, "Contact removed.", w.Status().Message)
	require.Equal(t, -1, w.Selected())
	require.Equal(t, []store.Contact{{Name: "Ada", Phone: "1"}, {Name: "Linus", Phone: "3"}}, a.Contacts.All())

	// Removing again needs a fresh selection.
	flowPress(t, w, "d")
	require.False(t, w.Confirming())
	require.Equal(t, app.OutcomeNoSelection, w.Status().Outcome)
}

func TestContactWindowRemoveDeclined(t *testing.T) {
	for _, key := range []string{"n", "esc", "enter"} {
		a := newFlowApp(t)
		w := NewContactWindow(a, NewKeyRegistry())
		addContactFlow(t, w, "Ada", "1")
		flowPress(t, w, "shift+tab")

		flowPress(t, w, "d")
		require.True(t, w.Confirming(), key)
		flowPress(t, w, key)
		require.False(t, w.Confirming(), key)
		require.Equal(t, "Contact removal canceled.", w.Status().Message, key)
		require.Equal(t, 1, a.Contacts.Len(), key)
		require.Equal(t, 0, w.Selected(), key)
	}
}

func TestContactWindowConfirmToggleThenEnter(t *testing.T) {
	a := newFlowApp(t)
	w := NewContactWindow(a, NewKeyRegistry())
	addContactFlow(t, w, "Ada", "1")
	flowPress(t, w, "shift+tab")

	flowPress(t, w, "d")
	flowPress(t, w, "left")
	flowPress(t, w, "enter")
	require.Equal(t, 0, a.Contacts.Len())
}

func TestContactWindowDialogSwallowsKeys(t *testing.T) {
	a := newFlowApp(t)
	w := NewContactWindow(a, NewKeyRegistry())
	addContactFlow(t, w, "Ada", "1")
	flowPress(t, w, "shift+tab")
	flowPress(t, w, "d")

	flowPress(t, w, "j")
	flowPress(t, w, "q")
	require.True(t, w.Confirming())
	require.Equal(t, 1, a.Contacts.Len())
}

func TestContactWindowQuitKeys(t *testing.T) {
	a := newFlowApp(t)
	w := NewContactWindow(a, NewKeyRegistry())

	res := flowPress(t, w, "q")
	require.False(t, res.quit, "q types into the name input")
	require.Equal(t, "q", w.name.Value())

	res = flowPress(t, w, "ctrl+c")
	require.True(t, res.quit)

	flowPress(t, w, "shift+tab")
	res = flowPress(t, w, "q")
	require.True(t, res.quit)
}
