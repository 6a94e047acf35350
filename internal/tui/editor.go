package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tablekeep/internal/store"
)

// TaskEditor is the modal status picker for one task row. It offers exactly
// the three statuses and is seeded once, at construction.
type TaskEditor struct {
	row     int
	options []store.Status
	cursor  int
	keys    *KeyRegistry
	help    help.Model
}

func NewTaskEditor(row int, status store.Status, keys *KeyRegistry) *TaskEditor {
	e := &TaskEditor{row: row, options: store.AllStatuses(), keys: keys, help: help.New()}
	for i, s := range e.options {
		if s == status {
			e.cursor = i
		}
	}
	return e
}

func (e *TaskEditor) Row() int { return e.row }

// Selected returns the status under the cursor.
func (e *TaskEditor) Selected() store.Status { return e.options[e.cursor] }

func (e *TaskEditor) Update(msg tea.KeyMsg) tea.Cmd {
	switch e.keys.ActionFor(msg.String(), scopeTaskEditor) {
	case actionUp:
		if e.cursor > 0 {
			e.cursor--
		}
	case actionDown:
		if e.cursor < len(e.options)-1 {
			e.cursor++
		}
	case actionSave:
		updated := taskUpdatedMsg{Row: e.row, Status: e.Selected()}
		return func() tea.Msg { return updated }
	case actionCancel:
		row := e.row
		return func() tea.Msg { return editCancelledMsg{Row: row} }
	case actionQuit:
		return tea.Quit
	}
	return nil
}

func (e *TaskEditor) View() string {
	lines := []string{titleStyle.Render("Edit Task Status")}
	for i, s := range e.options {
		if i == e.cursor {
			lines = append(lines, activeOption.Render("▶ "+s.String()))
			continue
		}
		lines = append(lines, optionStyle.Render("  "+s.String()))
	}
	lines = append(lines, "", e.help.ShortHelpView(e.keys.HelpBindings(scopeTaskEditor)))
	return modalStyle.Width(28).Render(strings.Join(lines, "\n"))
}
