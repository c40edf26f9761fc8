package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galleria/internal/domain"
)

func TestLayoutColumns(t *testing.T) {
	cols := layoutColumns(100, true, false)

	require.Len(t, cols, 6)
	assert.Equal(t, 4, cols[0].width)
	assert.Equal(t, "Title", cols[1].title)
	assert.Equal(t, "Inscriptions", cols[4].title)
	assert.Equal(t, 13, cols[5].width)

	compact := layoutColumns(100, false, true)
	require.Len(t, compact, 5)
	assert.Equal(t, 6, compact[4].width)
}

func TestLayoutColumnsNarrowTerminal(t *testing.T) {
	cols := layoutColumns(10, true, false)

	// Text columns never collapse below the minimum flex share.
	for _, c := range cols[1 : len(cols)-1] {
		assert.Greater(t, c.width, 0, c.title)
	}
}

func TestFormatDates(t *testing.T) {
	assert.Equal(t, "—", formatDates(domain.Artwork{}, false))
	assert.Equal(t, "1850", formatDates(domain.Artwork{DateStart: 1850, DateEnd: 1850}, false))
	assert.Equal(t, "1850 – 1860", formatDates(domain.Artwork{DateStart: 1850, DateEnd: 1860}, false))
	assert.Equal(t, "1850", formatDates(domain.Artwork{DateStart: 1850, DateEnd: 1860}, true))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long…", truncate("longer than", 5))
	assert.Equal(t, "…", truncate("anything", 1))
	assert.Equal(t, "", truncate("anything", 0))
	// Rune-aware, not byte-aware.
	assert.Equal(t, "héll…", truncate("héllo world", 5))
}

func TestDisplayOr(t *testing.T) {
	assert.Equal(t, "value", displayOr("value", "fallback"))
	assert.Equal(t, "fallback", displayOr("", "fallback"))
	assert.Equal(t, "fallback", displayOr("   ", "fallback"))
}

func TestPadMeasuresPrintableRunes(t *testing.T) {
	assert.Equal(t, "ab  ", pad("ab", 4))
	assert.Equal(t, "abcd", pad("abcd", 2))

	styled := "\x1b[38;5;78mab\x1b[0m"
	padded := pad(styled, 4)
	assert.True(t, strings.HasSuffix(padded, "  "))
}

func TestRenderRowCheckbox(t *testing.T) {
	r := NewRenderer()
	cols := layoutColumns(100, true, false)
	a := domain.Artwork{ID: 101, Title: "Nighthawks", ArtistDisplay: "Edward Hopper", DateStart: 1942, DateEnd: 1942}

	unchecked := r.renderRow(a, cols, false, false, false)
	assert.Contains(t, unchecked, "[ ]")
	assert.Contains(t, unchecked, "Nighthawks")
	assert.Contains(t, unchecked, "1942")

	checked := r.renderRow(a, cols, true, false, false)
	assert.Contains(t, checked, "[x]")
}

func TestRenderRowFallbacks(t *testing.T) {
	r := NewRenderer()
	cols := layoutColumns(100, true, false)

	row := r.renderRow(domain.Artwork{ID: 7}, cols, false, false, false)

	assert.Contains(t, row, "Untitled")
	assert.Contains(t, row, "—")
}
