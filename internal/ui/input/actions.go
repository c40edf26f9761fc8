package input

// Action is produced by the input handler and processed by the model.
type Action interface {
	Type() string
}

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type PageAction struct {
	Direction string // "next", "prev", "first", "last"
}

func (a PageAction) Type() string { return "page" }

// Selection actions
type ToggleSelectAction struct{}

func (a ToggleSelectAction) Type() string { return "toggle_select" }

type SelectPageAction struct{}

func (a SelectPageAction) Type() string { return "select_page" }

type ClearPageAction struct{}

func (a ClearPageAction) Type() string { return "clear_page" }

type ClearAllAction struct{}

func (a ClearAllAction) Type() string { return "clear_all" }

// Bulk panel actions
type OpenBulkAction struct{}

func (a OpenBulkAction) Type() string { return "open_bulk" }

type SubmitBulkAction struct {
	Target int
}

func (a SubmitBulkAction) Type() string { return "submit_bulk" }

type DismissBulkAction struct{}

func (a DismissBulkAction) Type() string { return "dismiss_bulk" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ResizePageAction struct {
	Delta int // rows to add to the page size
}

func (a ResizePageAction) Type() string { return "resize_page" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
