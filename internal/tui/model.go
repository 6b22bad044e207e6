// Package tui renders store scopes side by side and turns key presses into
// dispatches on the focused scope.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/twincounter/internal/counter"
	"github.com/jask/twincounter/internal/tui/widgets"
)

// changeBuffer bounds notifications queued between two event loop turns.
const changeBuffer = 64

type Model struct {
	title    string
	width    int
	height   int
	scopes   []ScopeView
	focus    int
	keys     *KeyRegistry
	status   string
	quitting bool
	changes  chan StateChangedMsg
	unsubs   []func()
}

// New builds the model and subscribes to every handle. Close releases the
// subscriptions.
func New(title string, handles []CounterHandle, keys *KeyRegistry) Model {
	if keys == nil {
		keys = DefaultKeyRegistry()
	}
	m := Model{
		title:   title,
		width:   80,
		height:  24,
		keys:    keys,
		status:  "Ready",
		changes: make(chan StateChangedMsg, changeBuffer),
	}
	for i, h := range handles {
		m.scopes = append(m.scopes, NewScopeView(fmt.Sprintf("Scope %d", i), h))
		ch := m.changes
		scope := i
		m.unsubs = append(m.unsubs, h.Subscribe(func(st counter.State) {
			select {
			case ch <- StateChangedMsg{Scope: scope, State: st}:
			default:
			}
		}))
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForChange(m.changes),
		StatusCmd(fmt.Sprintf("%d scopes mounted", len(m.scopes))),
	)
}

// Close unmounts the views from their stores.
func (m Model) Close() {
	for _, unsub := range m.unsubs {
		unsub()
	}
}

func (m Model) Focus() int { return m.focus }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		return m, nil
	case StateChangedMsg:
		m.status = fmt.Sprintf("Scope %d: count %d", msg.Scope, msg.State.Count)
		return m, waitForChange(m.changes)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.ActionFor(msg) {
	case actionQuit:
		m.quitting = true
		return m, tea.Quit
	case actionNextScope:
		m.moveFocus(1)
	case actionPrevScope:
		m.moveFocus(-1)
	case actionAdd:
		if len(m.scopes) > 0 {
			m.scopes[m.focus].Add()
		}
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	n := len(m.scopes)
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	width := max(1, m.width)

	items := make([]widgets.Widget, 0, len(m.scopes))
	for i, s := range m.scopes {
		s.Focused = i == m.focus
		items = append(items, s)
	}
	body := widgets.HStack{Widgets: items, Gap: 1}.Render(width, 0)

	headerRows := []string{renderBar(headerStyle, width, " "+m.title)}
	footerRows := []string{
		renderBar(statusBarStyle, width, " "+m.status),
		m.renderFooter(width),
	}
	bodyHeight := m.height - len(headerRows) - len(footerRows)
	body = clipHeight(body, bodyHeight)
	if pad := bodyHeight - len(strings.Split(body, "\n")); pad > 0 {
		body += strings.Repeat("\n", pad)
	}

	rows := append(headerRows, body)
	rows = append(rows, footerRows...)
	return strings.Join(rows, "\n")
}

func (m Model) renderFooter(width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")

	bindings := m.keys.HelpBindings()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	return renderBar(footerStyle, width, " "+strings.Join(parts, sep))
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func clipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
