package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Index        *lipgloss.Style
	Line         *lipgloss.Style
	EndMarker    *lipgloss.Style
	Separator    *lipgloss.Style
	FilterPrompt *lipgloss.Style
	Filter       *lipgloss.Style
	Cursor       *lipgloss.Style
}

var defaultStyles = Styles{
	Index: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Line: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	EndMarker: ptr(
		lipgloss.NewStyle().Bold(true).Reverse(true),
	),
	Separator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
