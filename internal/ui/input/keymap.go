package input

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the viewer.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	Home       key.Binding
	End        key.Binding
	Toggle     key.Binding
	SelectPage key.Binding
	ClearPage  key.Binding
	ClearAll   key.Binding
	Bulk       key.Binding
	Refresh    key.Binding
	MoreRows   key.Binding
	FewerRows  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage:   key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		NextPage:   key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle row")),
		SelectPage: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "check page")),
		ClearPage:  key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "uncheck page")),
		ClearAll:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear selection")),
		Bulk:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "select first N")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload page")),
		MoreRows:   key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "more rows")),
		FewerRows:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer rows")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Bulk, k.PrevPage, k.NextPage, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.PrevPage, k.NextPage, k.MoreRows, k.FewerRows},
		{k.Toggle, k.SelectPage, k.ClearPage, k.ClearAll},
		{k.Bulk, k.Refresh, k.Help, k.Quit},
	}
}
