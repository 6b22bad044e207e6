package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/twincounter/internal/tui/widgets"
)

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorSurface0 lipgloss.Color = "#313244"
	colorOverlay  lipgloss.Color = "#6c7086"
	colorMantle   lipgloss.Color = "#181825"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorAccent).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	counterStyle = lipgloss.NewStyle().Foreground(colorText)
	wrapperStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurface0)
	buttonFocusStyle = lipgloss.NewStyle().
				Foreground(colorMantle).
				Background(colorAccent).
				Bold(true)
)

var paneStyle = widgets.PaneStyle{
	Border:      lipgloss.NewStyle().Foreground(colorOverlay),
	FocusBorder: lipgloss.NewStyle().Foreground(colorSuccess),
	Title:       lipgloss.NewStyle().Foreground(colorText).Bold(true),
}
