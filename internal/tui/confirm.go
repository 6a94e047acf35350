package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmDialog is a modal yes/no prompt. No is the default answer.
type ConfirmDialog struct {
	title  string
	prompt string
	yes    bool
	keys   *KeyRegistry
	help   help.Model
}

func NewConfirmDialog(title, prompt string, keys *KeyRegistry) *ConfirmDialog {
	return &ConfirmDialog{title: title, prompt: prompt, keys: keys, help: help.New()}
}

func answer(confirmed bool) tea.Cmd {
	return func() tea.Msg { return confirmResultMsg{Confirmed: confirmed} }
}

// Update handles a key while the dialog is open. The returned command
// yields a confirmResultMsg once the user answers.
func (d *ConfirmDialog) Update(msg tea.KeyMsg) tea.Cmd {
	switch d.keys.ActionFor(msg.String(), scopeConfirm) {
	case actionYes:
		return answer(true)
	case actionNo:
		return answer(false)
	case actionToggle:
		d.yes = !d.yes
	case actionSelect:
		return answer(d.yes)
	case actionQuit:
		return tea.Quit
	}
	return nil
}

func (d *ConfirmDialog) View() string {
	yes, no := buttonStyle.Render("Yes"), activeButton.Render("No")
	if d.yes {
		yes, no = activeButton.Render("Yes"), buttonStyle.Render("No")
	}
	lines := []string{
		titleStyle.Render(d.title),
		d.prompt,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no),
		"",
		d.help.ShortHelpView(d.keys.HelpBindings(scopeConfirm)),
	}
	return modalStyle.Render(strings.Join(lines, "\n"))
}
