package tui

import "github.com/jask/tablekeep/internal/store"

// confirmResultMsg reports the answer of a ConfirmDialog.
type confirmResultMsg struct {
	Confirmed bool
}

// taskUpdatedMsg reports the status saved in a TaskEditor for Row.
type taskUpdatedMsg struct {
	Row    int
	Status store.Status
}

// editCancelledMsg reports that the TaskEditor for Row was dismissed.
type editCancelledMsg struct {
	Row int
}
