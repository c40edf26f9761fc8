package views

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderBulkOverlay renders the centered "select first N" panel.
func (r *Renderer) renderBulkOverlay(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.PanelTitle.Render("Select first N artworks"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("How many? (1–%d)\n\n", state.BulkMax))
	b.WriteString(state.BulkInput)
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("enter apply · esc dismiss"))

	panel := r.styles.PanelBox.Render(b.String())
	return r.place(state, panel)
}

// renderHelpOverlay renders the full key binding reference.
func (r *Renderer) renderHelpOverlay(state ViewState) string {
	hm := state.HelpModel
	hm.ShowAll = true

	var b strings.Builder
	b.WriteString(r.styles.PanelTitle.Render("galleria keys"))
	b.WriteString("\n")
	b.WriteString(hm.View(state.Keys))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("? close"))

	return r.place(state, r.styles.HelpBox.Render(b.String()))
}

// place centers an overlay box on the screen.
func (r *Renderer) place(state ViewState, box string) string {
	width, height := state.Width, state.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes color/style codes for width measurement.
func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
