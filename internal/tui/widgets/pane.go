package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PaneStyle is supplied by the caller; the zero value renders unstyled.
type PaneStyle struct {
	Border      lipgloss.Style
	FocusBorder lipgloss.Style
	Title       lipgloss.Style
}

// Pane draws rounded chrome with the title inset in the top border. A zero
// height sizes the pane to its content.
type Pane struct {
	Title   string
	Content string
	Focused bool
	Style   PaneStyle
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	if width < 4 {
		width = 4
	}
	contentLines := splitLines(p.Content)
	if len(contentLines) == 0 {
		contentLines = []string{""}
	}
	h := len(contentLines) + 2
	if height > 0 && h > height {
		h = max(3, height)
	}

	borderStyle := p.Style.Border
	if p.Focused {
		borderStyle = p.Style.FocusBorder
	}
	titleStyle := p.Style.Title

	titlePrefix := "  "
	if p.Focused {
		titlePrefix = "● "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}
