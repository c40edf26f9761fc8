package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Header        lipgloss.Style
	Dim           lipgloss.Style
	CursorRow     lipgloss.Style
	Checked       lipgloss.Style
	CheckedMark   lipgloss.Style
	Pager         lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	PanelBox      lipgloss.Style
	PanelTitle    lipgloss.Style
	HelpBox       lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		Dim:         lipgloss.NewStyle().Faint(true),
		CursorRow:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Checked:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		CheckedMark: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Pager: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		PanelBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		PanelTitle: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
