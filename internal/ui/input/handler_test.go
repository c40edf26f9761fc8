package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeActions(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want string
	}{
		{runes("j"), "navigate"},
		{runes("k"), "navigate"},
		{runes("h"), "page"},
		{runes("l"), "page"},
		{runes(" "), "toggle_select"},
		{runes("a"), "select_page"},
		{runes("A"), "clear_page"},
		{runes("x"), "clear_all"},
		{runes("n"), "open_bulk"},
		{runes("r"), "refresh"},
		{runes("?"), "toggle_help"},
		{runes("q"), "quit"},
	}

	for _, tt := range tests {
		h := New()
		actions, _ := h.HandleKey(tt.key)
		require.Len(t, actions, 1, "key %q", tt.key.String())
		assert.Equal(t, tt.want, actions[0].Type(), "key %q", tt.key.String())
	}
}

func TestUnboundKeyYieldsNothing(t *testing.T) {
	h := New()

	actions, cmd := h.HandleKey(runes("z"))

	assert.Empty(t, actions)
	assert.Nil(t, cmd)
}

func TestBulkModeAcceptsDigitsOnly(t *testing.T) {
	h := New()
	h.OpenBulk(126)

	h.HandleKey(runes("4"))
	h.HandleKey(runes("x"))
	h.HandleKey(runes("2"))

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, actions, 1)
	submit, ok := actions[0].(SubmitBulkAction)
	require.True(t, ok)
	assert.Equal(t, 42, submit.Target)
	assert.Equal(t, ModeNormal, h.CurrentMode())
}

func TestBulkModeClampsTarget(t *testing.T) {
	h := New()
	h.OpenBulk(126)
	h.HandleKey(runes("9"))
	h.HandleKey(runes("9"))
	h.HandleKey(runes("9"))

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, actions, 1)
	assert.Equal(t, 126, actions[0].(SubmitBulkAction).Target)
}

func TestBulkModeClampsZeroToOne(t *testing.T) {
	h := New()
	h.OpenBulk(126)
	h.HandleKey(runes("0"))

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, actions, 1)
	assert.Equal(t, 1, actions[0].(SubmitBulkAction).Target)
}

func TestBulkModeEmptySubmitKeepsPanelOpen(t *testing.T) {
	h := New()
	h.OpenBulk(126)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, actions)
	assert.Equal(t, ModeBulk, h.CurrentMode())
}

func TestBulkModeEscapeDismisses(t *testing.T) {
	h := New()
	h.OpenBulk(126)
	h.HandleKey(runes("7"))

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})

	require.Len(t, actions, 1)
	assert.Equal(t, "dismiss_bulk", actions[0].Type())
	assert.Equal(t, ModeNormal, h.CurrentMode())

	// Reopening starts from a blank input.
	h.OpenBulk(126)
	empty, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, empty)
}

func TestBulkModeSwallowsNormalBindings(t *testing.T) {
	h := New()
	h.OpenBulk(126)

	actions, _ := h.HandleKey(runes("q"))

	assert.Empty(t, actions)
	assert.Equal(t, ModeBulk, h.CurrentMode())
}
