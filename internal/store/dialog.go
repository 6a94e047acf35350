package store

// Confirmer answers a yes/no prompt. Implementations may block until the
// user responds.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

var (
	// Confirmed answers yes without prompting.
	Confirmed Confirmer = ConfirmFunc(func(string) bool { return true })
	// Declined answers no without prompting.
	Declined Confirmer = ConfirmFunc(func(string) bool { return false })
)

// StatusEditor picks a new status for a task, seeded with the current one.
// It returns saved=false when the user cancels.
type StatusEditor interface {
	EditStatus(current Status) (next Status, saved bool)
}

// StatusEditorFunc adapts a function to StatusEditor.
type StatusEditorFunc func(current Status) (Status, bool)

func (f StatusEditorFunc) EditStatus(current Status) (Status, bool) { return f(current) }

// Choose returns an editor that always saves s.
func Choose(s Status) StatusEditor {
	return StatusEditorFunc(func(Status) (Status, bool) { return s, true })
}

// CancelEdit is an editor that always cancels.
var CancelEdit StatusEditor = StatusEditorFunc(func(current Status) (Status, bool) { return current, false })
