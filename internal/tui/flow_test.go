package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tablekeep/internal/app"
	"github.com/jask/tablekeep/internal/config"
	"github.com/jask/tablekeep/internal/logging"
)

func flowKey(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// flowResult is the outcome of one simulated interaction.
type flowResult struct {
	quit bool
}

func flowApplyMsg(t *testing.T, m tea.Model, msg tea.Msg) flowResult {
	t.Helper()
	_, cmd := m.Update(msg)
	return flowDrainCmd(t, m, cmd)
}

// flowDrainCmd runs cmd and feeds back the messages this package produces.
func flowDrainCmd(t *testing.T, m tea.Model, cmd tea.Cmd) flowResult {
	t.Helper()
	var res flowResult
	for i := 0; cmd != nil && i < 32; i++ {
		switch msg := cmd().(type) {
		case tea.QuitMsg:
			res.quit = true
			return res
		case confirmResultMsg, taskUpdatedMsg, editCancelledMsg:
			_, cmd = m.Update(msg)
		case tea.BatchMsg:
			for _, c := range msg {
				if c == nil {
					continue
				}
				if sub := flowDrainCmd(t, m, c); sub.quit {
					res.quit = true
				}
			}
			return res
		default:
			return res
		}
	}
	if cmd != nil {
		t.Fatal("command chain exceeded max depth")
	}
	return res
}

func flowPress(t *testing.T, m tea.Model, key string) flowResult {
	t.Helper()
	return flowApplyMsg(t, m, flowKey(key))
}

func flowType(t *testing.T, m tea.Model, input string) {
	t.Helper()
	for _, r := range input {
		flowPress(t, m, string(r))
	}
}

func newFlowApp(t *testing.T) *app.App {
	t.Helper()
	return app.New(config.Default(), logging.NopLogger())
}
