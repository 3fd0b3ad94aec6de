package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Highlight   lipgloss.Style
	PageBox     lipgloss.Style
	Indicator   lipgloss.Style
	StatusError lipgloss.Style
	Loading     lipgloss.Style
	Prompt      lipgloss.Style
	Disabled    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		PageBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		Indicator:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Disabled:    lipgloss.NewStyle().Faint(true),
	}
}
