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

type taskFocus int

const (
	focusDescription taskFocus = iota
	focusStatus
	focusTaskTable
	taskFocusCount
)

// TaskWindow is the to-do list: a description input, a status selector, a
// table and a status line. Selecting a row opens a TaskEditor.
type TaskWindow struct {
	app   *app.App
	keys  *KeyRegistry
	title string

	description textinput.Model
	selector    store.Status
	table       table.Model
	help        help.Model
	focus       taskFocus

	editor *TaskEditor
	status app.Result
}

func NewTaskWindow(a *app.App, keys *KeyRegistry) *TaskWindow {
	cfg := a.Config()
	w := &TaskWindow{
		app:         a,
		keys:        keys,
		title:       cfg.UI.TitleTasks,
		description: newInput("Task", 40),
		selector:    cfg.DefaultStatus(),
		table:       newTable([]table.Column{{Title: "Task", Width: 36}, {Title: "Status", Width: 14}}, cfg.UI.TableHeight),
		help:        help.New(),
	}
	w.description.Focus()
	w.refresh()
	return w
}

func (w *TaskWindow) Init() tea.Cmd { return nil }

// SelectorStatus is the status a new task will get.
func (w *TaskWindow) SelectorStatus() store.Status { return w.selector }

func (w *TaskWindow) Status() app.Result { return w.status }

// Editor returns the open status editor, or nil.
func (w *TaskWindow) Editor() *TaskEditor { return w.editor }

func (w *TaskWindow) scope() string {
	switch w.focus {
	case focusStatus:
		return scopeTasksStatus
	case focusTaskTable:
		return scopeTasksTable
	default:
		return scopeTasksForm
	}
}

func (w *TaskWindow) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		w.help.Width = m.Width
		return w, nil
	case taskUpdatedMsg:
		w.editor = nil
		w.status = w.app.ApplyTaskStatus(m.Row, m.Status)
		w.refresh()
		return w, nil
	case editCancelledMsg:
		w.editor = nil
		w.status = w.app.EditTask(m.Row, store.CancelEdit)
		return w, nil
	case tea.KeyMsg:
		if w.editor != nil {
			return w, w.editor.Update(m)
		}
		return w.handleKey(m)
	}
	return w, nil
}

func (w *TaskWindow) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch w.keys.ActionFor(m.String(), w.scope()) {
	case actionQuit:
		return w, tea.Quit
	case actionNextFocus:
		w.setFocus((w.focus + 1) % taskFocusCount)
		return w, nil
	case actionPrevFocus:
		w.setFocus((w.focus + taskFocusCount - 1) % taskFocusCount)
		return w, nil
	case actionAdd:
		w.add()
		return w, nil
	case actionNext:
		w.selector = w.selector.Next()
		return w, nil
	case actionPrev:
		w.selector = w.selector.Prev()
		return w, nil
	case actionUp:
		w.table.MoveUp(1)
		return w, nil
	case actionDown:
		w.table.MoveDown(1)
		return w, nil
	case actionEdit:
		w.openEditor(w.table.Cursor())
		return w, nil
	}

	if w.focus != focusDescription {
		return w, nil
	}
	var cmd tea.Cmd
	w.description, cmd = w.description.Update(m)
	return w, cmd
}

func (w *TaskWindow) add() {
	w.status = w.app.AddTask(w.description.Value(), w.selector)
	if !w.status.OK() {
		return
	}
	w.description.Reset()
	w.refresh()
}

// openEditor seeds a TaskEditor with the current status of row.
func (w *TaskWindow) openEditor(row int) {
	task, ok := w.app.Tasks.At(row)
	if !ok {
		w.status = w.app.EditTask(row, nil)
		return
	}
	w.editor = NewTaskEditor(row, task.Status, w.keys)
}

func (w *TaskWindow) setFocus(f taskFocus) {
	w.focus = f
	w.description.Blur()
	w.table.Blur()
	switch f {
	case focusDescription:
		w.description.Focus()
	case focusTaskTable:
		w.table.Focus()
	}
}

func (w *TaskWindow) refresh() {
	tasks := w.app.Tasks.All()
	rows := make([]table.Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, table.Row{t.Description, t.Status.String()})
	}
	setRows(&w.table, rows)
}

func (w *TaskWindow) renderSelector() string {
	parts := make([]string, 0, len(store.AllStatuses()))
	for _, s := range store.AllStatuses() {
		style := buttonStyle
		if s == w.selector {
			style = activeButton.Background(statusColor(s))
		}
		parts = append(parts, style.Render(s.String()))
	}
	return strings.Join(parts, " ")
}

func (w *TaskWindow) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(w.title))
	b.WriteString("\n\n")
	b.WriteString(renderLabel("Task  ", w.focus == focusDescription) + w.description.View() + "\n")
	b.WriteString(renderLabel("Status ", w.focus == focusStatus) + w.renderSelector() + "\n\n")
	b.WriteString(renderLabel("Tasks", w.focus == focusTaskTable) + "\n")
	b.WriteString(w.table.View())
	b.WriteString("\n")
	b.WriteString(renderStatus(w.status))
	b.WriteString("\n")
	if w.editor != nil {
		b.WriteString("\n" + w.editor.View() + "\n")
	} else {
		b.WriteString(w.help.ShortHelpView(w.keys.FooterBindings(w.scope())))
	}
	return b.String()
}
