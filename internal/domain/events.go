package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageRequested    EventType = "PageRequested"
	EventPageLoaded       EventType = "PageLoaded"
	EventPageLoadFailed   EventType = "PageLoadFailed"
	EventSelectionChanged EventType = "SelectionChanged"
	EventBulkStarted      EventType = "BulkStarted"
	EventBulkCompleted    EventType = "BulkCompleted"
	EventBulkFailed       EventType = "BulkFailed"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventConfigChanged    EventType = "ConfigChanged"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageRequestedEvent is emitted when a catalog page fetch starts
type PageRequestedEvent struct {
	Page int
	Rows int
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// PageLoadedEvent is emitted when a catalog page arrives
type PageLoadedEvent struct {
	Page  int
	Count int
	Total int
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// PageLoadFailedEvent is emitted when a catalog page fetch fails
type PageLoadFailedEvent struct {
	Page int
	Err  error
}

func (e PageLoadFailedEvent) Type() EventType { return EventPageLoadFailed }

// SelectionChangedEvent is emitted when the selection set changes
type SelectionChangedEvent struct {
	Added   []int
	Removed []int
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// BulkStartedEvent is emitted when a bulk "select N" expansion begins
type BulkStartedEvent struct {
	Target int
	Needed int
}

func (e BulkStartedEvent) Type() EventType { return EventBulkStarted }

// BulkCompletedEvent is emitted when a bulk expansion finishes
type BulkCompletedEvent struct {
	Target   int
	Selected int
}

func (e BulkCompletedEvent) Type() EventType { return EventBulkCompleted }

// BulkFailedEvent is emitted when a bulk expansion aborts on a failed
// fetch. Whatever was collected before the failure stays selected.
type BulkFailedEvent struct {
	Target   int
	Selected int
	Err      error
}

func (e BulkFailedEvent) Type() EventType { return EventBulkFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	BaseURL  string
	PageSize int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	PageSize int
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
