package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tablekeep/internal/app"
	"github.com/jask/tablekeep/internal/store"
)

type contactFocus int

const (
	focusName contactFocus = iota
	focusPhone
	focusContactTable
	contactFocusCount
)

// ContactWindow is the contact list: two inputs, a table and a status line.
type ContactWindow struct {
	app   *app.App
	keys  *KeyRegistry
	title string

	name  textinput.Model
	phone textinput.Model
	table table.Model
	help  help.Model
	focus contactFocus

	// selected is the chosen row, or -1 before the table is focused and
	// after a removal.
	selected   int
	pendingRow int
	confirm    *ConfirmDialog
	status     app.Result
}

func NewContactWindow(a *app.App, keys *KeyRegistry) *ContactWindow {
	cfg := a.Config()
	w := &ContactWindow{
		app:      a,
		keys:     keys,
		title:    cfg.UI.TitleContacts,
		name:     newInput("Contact Name", 32),
		phone:    newInput("Phone Number", 32),
		table:    newTable([]table.Column{{Title: "Name", Width: 28}, {Title: "Phone", Width: 18}}, cfg.UI.TableHeight),
		help:     help.New(),
		selected: -1,
	}
	w.name.Focus()
	w.refresh()
	return w
}

func (w *ContactWindow) Init() tea.Cmd { return nil }

// Selected returns the selected row or -1.
func (w *ContactWindow) Selected() int { return w.selected }

// Status returns the last handler result shown in the status line.
func (w *ContactWindow) Status() app.Result { return w.status }

// Confirming reports whether the removal confirmation is open.
func (w *ContactWindow) Confirming() bool { return w.confirm != nil }

func (w *ContactWindow) scope() string {
	if w.focus == focusContactTable {
		return scopeContactsTable
	}
	return scopeContactsForm
}

func (w *ContactWindow) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		w.help.Width = m.Width
		return w, nil
	case confirmResultMsg:
		w.confirm = nil
		confirmer := store.Declined
		if m.Confirmed {
			confirmer = store.Confirmed
		}
		w.status = w.app.RemoveContact(w.pendingRow, confirmer)
		if w.status.OK() {
			w.selected = -1
			w.refresh()
		}
		return w, nil
	case tea.KeyMsg:
		if w.confirm != nil {
			return w, w.confirm.Update(m)
		}
		return w.handleKey(m)
	}
	return w, nil
}

func (w *ContactWindow) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch w.keys.ActionFor(m.String(), w.scope()) {
	case actionQuit:
		return w, tea.Quit
	case actionNextFocus:
		w.setFocus((w.focus + 1) % contactFocusCount)
		return w, nil
	case actionPrevFocus:
		w.setFocus((w.focus + contactFocusCount - 1) % contactFocusCount)
		return w, nil
	case actionAdd:
		w.add()
		return w, nil
	case actionRemove:
		w.requestRemove()
		return w, nil
	case actionUp:
		w.table.MoveUp(1)
		w.selectCursor()
		return w, nil
	case actionDown:
		w.table.MoveDown(1)
		w.selectCursor()
		return w, nil
	}

	var cmd tea.Cmd
	switch w.focus {
	case focusName:
		w.name, cmd = w.name.Update(m)
	case focusPhone:
		w.phone, cmd = w.phone.Update(m)
	}
	return w, cmd
}

func (w *ContactWindow) add() {
	w.status = w.app.AddContact(w.name.Value(), w.phone.Value())
	if !w.status.OK() {
		return
	}
	w.name.Reset()
	w.phone.Reset()
	w.refresh()
}

func (w *ContactWindow) requestRemove() {
	if w.selected < 0 || w.selected >= w.app.Contacts.Len() {
		w.status = w.app.RemoveContact(-1, nil)
		return
	}
	w.pendingRow = w.selected
	w.confirm = NewConfirmDialog("Confirm Removal", store.RemovePrompt, w.keys)
}

func (w *ContactWindow) setFocus(f contactFocus) {
	w.focus = f
	w.name.Blur()
	w.phone.Blur()
	w.table.Blur()
	switch f {
	case focusName:
		w.name.Focus()
	case focusPhone:
		w.phone.Focus()
	case focusContactTable:
		w.table.Focus()
		w.selectCursor()
	}
}

func (w *ContactWindow) selectCursor() {
	if w.app.Contacts.Len() == 0 {
		w.selected = -1
		return
	}
	w.selected = w.table.Cursor()
}

func (w *ContactWindow) refresh() {
	contacts := w.app.Contacts.All()
	rows := make([]table.Row, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, table.Row{c.Name, c.Phone})
	}
	setRows(&w.table, rows)
}

func (w *ContactWindow) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(w.title))
	b.WriteString("\n\n")
	b.WriteString(renderLabel("Name ", w.focus == focusName) + w.name.View() + "\n")
	b.WriteString(renderLabel("Phone", w.focus == focusPhone) + w.phone.View() + "\n\n")
	b.WriteString(renderLabel("Contacts", w.focus == focusContactTable) + "\n")
	b.WriteString(w.table.View())
	b.WriteString("\n")
	if w.selected < 0 && w.focus == focusContactTable {
		b.WriteString(labelStyle.Render("no row selected") + "\n")
	}
	b.WriteString(renderStatus(w.status))
	b.WriteString("\n")
	if w.confirm != nil {
		b.WriteString("\n" + w.confirm.View() + "\n")
	} else {
		b.WriteString(w.help.ShortHelpView(w.keys.FooterBindings(w.scope())))
	}
	return b.String()
}
