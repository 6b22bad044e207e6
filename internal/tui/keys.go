package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	actionAdd       = "add"
	actionNextScope = "next_scope"
	actionPrevScope = "prev_scope"
	actionQuit      = "quit"
)

type KeyBinding struct {
	Keys   []string
	Action string
	// Help is the label shown in the footer; it defaults to Keys[0].
	Help        string
	Description string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func DefaultKeyRegistry() *KeyRegistry {
	return NewKeyRegistry([]KeyBinding{
		{Keys: []string{"enter", " ", "space", "a"}, Action: actionAdd, Help: "enter", Description: "add"},
		{Keys: []string{"tab", "right", "l"}, Action: actionNextScope, Help: "tab", Description: "next"},
		{Keys: []string{"shift+tab", "left", "h"}, Action: actionPrevScope, Help: "S-tab", Description: "prev"},
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit"},
	})
}

// ActionFor returns the action bound to the pressed key, or "".
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

func (r *KeyRegistry) HelpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if len(b.Keys) == 0 {
			continue
		}
		helpKey := b.Help
		if helpKey == "" {
			helpKey = b.Keys[0]
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(helpKey, b.Description)))
	}
	return out
}

// space has to survive trimming
func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	return strings.ToLower(strings.TrimSpace(k))
}
