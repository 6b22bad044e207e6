package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/twincounter/internal/counter"
)

// StateChangedMsg carries a store notification into the event loop.
type StateChangedMsg struct {
	Scope int
	State counter.State
}

type StatusMsg struct {
	Text string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// waitForChange blocks until a subscriber forwards a notification.
func waitForChange(ch <-chan StateChangedMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}
