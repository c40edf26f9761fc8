package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageWindow(t *testing.T) {
	w := PageWindow{First: 12, Rows: 12, Total: 126}

	assert.Equal(t, 2, w.Page())
	assert.Equal(t, 11, w.PageCount())
	assert.True(t, w.HasNext())
	assert.True(t, w.HasPrev())
}

func TestPageWindowEdges(t *testing.T) {
	first := PageWindow{First: 0, Rows: 12, Total: 126}
	assert.Equal(t, 1, first.Page())
	assert.False(t, first.HasPrev())

	last := PageWindow{First: 120, Rows: 12, Total: 126}
	assert.Equal(t, 11, last.Page())
	assert.False(t, last.HasNext())

	empty := PageWindow{Rows: 12}
	assert.Equal(t, 1, empty.Page())
	assert.Equal(t, 1, empty.PageCount())
	assert.False(t, empty.HasNext())
}

func TestPageWindowClamp(t *testing.T) {
	// Total shrank under the window, pull back to the last page.
	w := PageWindow{First: 48, Rows: 12, Total: 30}
	w = w.Clamp()

	assert.Equal(t, 24, w.First)
	assert.Equal(t, 3, w.Page())

	// Window already valid, nothing changes.
	ok := PageWindow{First: 12, Rows: 12, Total: 30}
	assert.Equal(t, ok, ok.Clamp())
}
