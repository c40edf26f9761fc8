package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"galleria/internal/domain"
	"galleria/internal/ui/input"
)

// Status kinds for the transient notification line.
const (
	StatusError   = "error"
	StatusInfo    = "info"
	StatusSuccess = "success"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Artworks []domain.Artwork
	Window   domain.PageWindow
	Cursor   int

	SelectedIDs    map[int]bool
	SelectionCount int

	Loading    bool
	Loaded     bool
	BulkActive bool
	BulkTarget int

	StatusMessage string
	StatusKind    string

	ShowBulkPanel bool
	BulkInput     string
	BulkMax       int

	ShowHelp  bool
	HelpModel help.Model
	Keys      input.KeyMap
	PagerView string

	ShowInscriptions bool
	CompactDates     bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	if !state.Loaded && state.Loading {
		content.WriteString(r.styles.Dim.Render("Loading catalog..."))
	} else if len(state.Artworks) == 0 {
		content.WriteString(r.styles.Dim.Render("No artworks on this page. Press r to reload."))
	} else {
		content.WriteString(r.renderTable(state))
	}

	content.WriteString("\n")
	content.WriteString(r.renderPagerLine(state))

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.renderStatus(state))
	}

	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.Keys)))

	finalContent := r.styles.Main.MaxHeight(state.Height).Render(content.String())

	// Overlays replace the table while open.
	if state.ShowBulkPanel {
		return r.renderBulkOverlay(state)
	}
	if state.ShowHelp {
		return r.renderHelpOverlay(state)
	}

	return finalContent
}

// renderTitle renders the title line with loading indicator and
// right-aligned selection summary.
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("galleria")

	indicators := []string{}
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicators = append(indicators, fmt.Sprintf("%s Loading", spinner[frame]))
	}
	if state.BulkActive {
		indicators = append(indicators, fmt.Sprintf("⇣ Selecting first %d", state.BulkTarget))
	}

	rightContent := fmt.Sprintf("%d of %d selected", state.SelectionCount, state.Window.Total)
	if len(indicators) > 0 {
		rightContent = strings.Join(indicators, " | ") + "  " + rightContent
	}
	rightContent = r.styles.Dim.Render(rightContent)

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

// renderTable renders the artwork table for the visible page.
func (r *Renderer) renderTable(state ViewState) string {
	width := state.Width - 4
	if width <= 0 {
		width = 76
	}
	cols := layoutColumns(width, state.ShowInscriptions, state.CompactDates)

	lines := []string{r.renderHeader(cols)}
	for i, a := range state.Artworks {
		lines = append(lines, r.renderRow(a, cols, state.SelectedIDs[a.ID], i == state.Cursor, state.CompactDates))
	}
	return strings.Join(lines, "\n")
}

// renderPagerLine renders the pagination summary under the table.
func (r *Renderer) renderPagerLine(state ViewState) string {
	line := fmt.Sprintf("Page %s · %d rows · %d records", state.PagerView, state.Window.Rows, state.Window.Total)
	return r.styles.Pager.Render(line)
}

// renderStatus renders the transient notification line.
func (r *Renderer) renderStatus(state ViewState) string {
	switch state.StatusKind {
	case StatusError:
		return r.styles.StatusError.Render(state.StatusMessage)
	case StatusSuccess:
		return r.styles.StatusSuccess.Render(state.StatusMessage)
	default:
		return r.styles.StatusInfo.Render(state.StatusMessage)
	}
}
