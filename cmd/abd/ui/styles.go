// Package ui provides the visual styling for the AdminBuddy TUI.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette. Kept deliberately small: a calm blue for chrome, green for
// success, amber for notices, red for field errors.
var (
	ColorPrimary = lipgloss.Color("#3B6EA5")
	ColorAccent  = lipgloss.Color("#8BC34A")
	ColorMuted   = lipgloss.Color("8")
	ColorError   = lipgloss.Color("#E53935")
	ColorWarning = lipgloss.Color("#FFC107")
	ColorBorder  = lipgloss.Color("8")
)

// Styles bundles the lipgloss styles used across the TUI.
type Styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	Label      lipgloss.Style
	LabelFocus lipgloss.Style
	Value      lipgloss.Style
	Selector   lipgloss.Style
	FieldError lipgloss.Style
	Notice     lipgloss.Style
	Warning    lipgloss.Style
	Success    lipgloss.Style
	Muted      lipgloss.Style
	Help       lipgloss.Style
	Panel      lipgloss.Style
	PanelFocus lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Header:     lipgloss.NewStyle().Bold(true),
		Label:      lipgloss.NewStyle().Foreground(ColorMuted),
		LabelFocus: lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Value:      lipgloss.NewStyle(),
		Selector:   lipgloss.NewStyle().Foreground(ColorPrimary),
		FieldError: lipgloss.NewStyle().Foreground(ColorError),
		Notice:     lipgloss.NewStyle().Foreground(ColorAccent),
		Warning:    lipgloss.NewStyle().Foreground(ColorWarning),
		Success:    lipgloss.NewStyle().Foreground(ColorAccent),
		Muted:      lipgloss.NewStyle().Foreground(ColorMuted),
		Help:       lipgloss.NewStyle().Foreground(ColorMuted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
		PanelFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1),
	}
}
