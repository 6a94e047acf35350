package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tablekeep/internal/app"
)

func newInput(placeholder string, width int) textinput.Model {
	inp := textinput.New()
	inp.Placeholder = placeholder
	inp.Prompt = "› "
	inp.Width = width
	inp.Cursor.SetMode(cursor.CursorStatic)
	return inp
}

func newTable(cols []table.Column, height int) table.Model {
	t := table.New(table.WithColumns(cols), table.WithHeight(height))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(colorMuted)
	styles.Selected = styles.Selected.Bold(true).Foreground(colorFocus)
	t.SetStyles(styles)
	return t
}

// setRows replaces the rows and keeps the cursor in range.
func setRows(t *table.Model, rows []table.Row) {
	t.SetRows(rows)
	if len(rows) == 0 {
		return
	}
	switch c := t.Cursor(); {
	case c < 0:
		t.SetCursor(0)
	case c >= len(rows):
		t.SetCursor(len(rows) - 1)
	}
}

func renderLabel(text string, focused bool) string {
	if focused {
		return focusLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func renderStatus(r app.Result) string {
	if r.Message == "" {
		return ""
	}
	switch r.Outcome {
	case app.OutcomeOK:
		return statusOKStyle.Render(r.Message)
	case app.OutcomeCancelled:
		return statusWarnStyle.Render(r.Message)
	default:
		return statusErrorStyle.Render(r.Message)
	}
}
