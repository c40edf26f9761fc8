package views

import (
	"fmt"
	"strings"

	"galleria/internal/domain"
)

// column is one table column with a computed width.
type column struct {
	title string
	width int
}

// layoutColumns splits the available width across the data columns.
// The checkbox and date columns are fixed; the text columns share the
// rest proportionally.
func layoutColumns(width int, showInscriptions, compactDates bool) []column {
	const checkbox = 4
	dateWidth := 13 // "start – end"
	if compactDates {
		dateWidth = 6
	}

	flex := width - checkbox - dateWidth - 1
	if flex < 20 {
		flex = 20
	}

	cols := []column{{title: " ", width: checkbox}}
	if showInscriptions {
		cols = append(cols,
			column{title: "Title", width: flex * 30 / 100},
			column{title: "Origin", width: flex * 18 / 100},
			column{title: "Artist", width: flex * 26 / 100},
			column{title: "Inscriptions", width: flex * 26 / 100},
		)
	} else {
		cols = append(cols,
			column{title: "Title", width: flex * 40 / 100},
			column{title: "Origin", width: flex * 25 / 100},
			column{title: "Artist", width: flex * 35 / 100},
		)
	}
	cols = append(cols, column{title: "Date", width: dateWidth})
	return cols
}

// renderHeader renders the column header line.
func (r *Renderer) renderHeader(cols []column) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = pad(c.title, c.width)
	}
	return r.styles.Header.Render(strings.Join(cells, " "))
}

// renderRow renders one artwork row with its checkbox cell.
func (r *Renderer) renderRow(a domain.Artwork, cols []column, checked, cursor bool, compactDates bool) string {
	box := "[ ]"
	if checked {
		box = r.styles.CheckedMark.Render("[x]")
	}

	cells := []string{pad(box, cols[0].width)}
	idx := 1
	cells = append(cells, pad(truncate(displayOr(a.Title, "Untitled"), cols[idx].width), cols[idx].width))
	idx++
	cells = append(cells, pad(truncate(displayOr(a.PlaceOfOrigin, "—"), cols[idx].width), cols[idx].width))
	idx++
	cells = append(cells, pad(truncate(displayOr(a.ArtistDisplay, "—"), cols[idx].width), cols[idx].width))
	idx++
	if len(cols) == 6 {
		cells = append(cells, pad(truncate(displayOr(a.Inscriptions, "—"), cols[idx].width), cols[idx].width))
		idx++
	}
	cells = append(cells, pad(formatDates(a, compactDates), cols[idx].width))

	line := strings.Join(cells, " ")
	if cursor {
		return r.styles.CursorRow.Render(line)
	}
	if checked {
		return r.styles.Checked.Render(line)
	}
	return line
}

// formatDates renders the start/end years of a record.
func formatDates(a domain.Artwork, compact bool) string {
	if a.DateStart == 0 && a.DateEnd == 0 {
		return "—"
	}
	if compact || a.DateStart == a.DateEnd {
		return fmt.Sprintf("%d", a.DateStart)
	}
	return fmt.Sprintf("%d – %d", a.DateStart, a.DateEnd)
}

func displayOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// truncate shortens a cell value to width runes with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// pad right-pads a cell to its column width.
func pad(s string, width int) string {
	// Styled cells carry escape codes, measure printable runes only.
	printable := len([]rune(stripANSI(s)))
	if printable >= width {
		return s
	}
	return s + strings.Repeat(" ", width-printable)
}
