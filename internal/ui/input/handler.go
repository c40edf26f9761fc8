package input

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode identifies which input surface currently owns the keyboard.
type Mode int

const (
	ModeNormal Mode = iota
	ModeBulk
)

// Handler translates key messages into actions. The bulk overlay runs
// a numeric text input whose bounds absorb invalid targets before they
// ever reach the core (the panel clamps to [1, max]).
type Handler struct {
	mode      Mode
	keys      KeyMap
	input     textinput.Model
	maxTarget int
}

// New creates an input handler in normal mode.
func New() *Handler {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "count"
	ti.CharLimit = 7
	ti.Width = 12

	return &Handler{
		mode:  ModeNormal,
		keys:  DefaultKeyMap(),
		input: ti,
	}
}

// Keys exposes the bindings for the help view.
func (h *Handler) Keys() KeyMap { return h.keys }

// CurrentMode returns the active input mode.
func (h *Handler) CurrentMode() Mode { return h.mode }

// InputView renders the overlay's text input.
func (h *Handler) InputView() string { return h.input.View() }

// MaxTarget returns the upper bound of the bulk input.
func (h *Handler) MaxTarget() int { return h.maxTarget }

// OpenBulk switches to the bulk overlay with the given upper bound.
func (h *Handler) OpenBulk(max int) tea.Cmd {
	h.mode = ModeBulk
	h.maxTarget = max
	h.input.Reset()
	h.input.Focus()
	return textinput.Blink
}

// CloseBulk returns to normal mode.
func (h *Handler) CloseBulk() {
	h.mode = ModeNormal
	h.input.Blur()
	h.input.Reset()
}

// HandleKey processes one key message and returns resulting actions.
func (h *Handler) HandleKey(msg tea.KeyMsg) ([]Action, tea.Cmd) {
	if h.mode == ModeBulk {
		return h.handleBulkKey(msg)
	}
	return h.handleNormalKey(msg)
}

// Update forwards non-key messages (cursor blink) to the text input.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.mode != ModeBulk {
		return nil
	}
	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return cmd
}

func (h *Handler) handleNormalKey(msg tea.KeyMsg) ([]Action, tea.Cmd) {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []Action{QuitAction{}}, nil
	case key.Matches(msg, h.keys.Up):
		return []Action{NavigateAction{Direction: "up"}}, nil
	case key.Matches(msg, h.keys.Down):
		return []Action{NavigateAction{Direction: "down"}}, nil
	case key.Matches(msg, h.keys.Home):
		return []Action{NavigateAction{Direction: "home"}}, nil
	case key.Matches(msg, h.keys.End):
		return []Action{NavigateAction{Direction: "end"}}, nil
	case key.Matches(msg, h.keys.PrevPage):
		return []Action{PageAction{Direction: "prev"}}, nil
	case key.Matches(msg, h.keys.NextPage):
		return []Action{PageAction{Direction: "next"}}, nil
	case key.Matches(msg, h.keys.Toggle):
		return []Action{ToggleSelectAction{}}, nil
	case key.Matches(msg, h.keys.SelectPage):
		return []Action{SelectPageAction{}}, nil
	case key.Matches(msg, h.keys.ClearPage):
		return []Action{ClearPageAction{}}, nil
	case key.Matches(msg, h.keys.ClearAll):
		return []Action{ClearAllAction{}}, nil
	case key.Matches(msg, h.keys.Bulk):
		return []Action{OpenBulkAction{}}, nil
	case key.Matches(msg, h.keys.Refresh):
		return []Action{RefreshAction{}}, nil
	case key.Matches(msg, h.keys.MoreRows):
		return []Action{ResizePageAction{Delta: 1}}, nil
	case key.Matches(msg, h.keys.FewerRows):
		return []Action{ResizePageAction{Delta: -1}}, nil
	case key.Matches(msg, h.keys.Help):
		return []Action{ToggleHelpAction{}}, nil
	}
	return nil, nil
}

func (h *Handler) handleBulkKey(msg tea.KeyMsg) ([]Action, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []Action{QuitAction{}}, nil

	case tea.KeyEsc:
		h.CloseBulk()
		return []Action{DismissBulkAction{}}, nil

	case tea.KeyEnter:
		target, err := strconv.Atoi(h.input.Value())
		if err != nil {
			// Nothing typed yet, keep the panel open.
			return nil, nil
		}
		// The widget's own bounds handle out-of-range input.
		if target < 1 {
			target = 1
		}
		if h.maxTarget > 0 && target > h.maxTarget {
			target = h.maxTarget
		}
		h.CloseBulk()
		return []Action{SubmitBulkAction{Target: target}}, nil

	case tea.KeyRunes:
		// Numeric input only.
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return nil, nil
			}
		}
	}

	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return nil, cmd
}
