package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged     EventType = "QueryChanged"
	EventEntitySelected   EventType = "EntitySelected"
	EventSelectionCleared EventType = "SelectionCleared"
	EventSearchCancelled  EventType = "SearchCancelled"
	EventStateChanged     EventType = "StateChanged"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted after the search text changes
type QueryChangedEvent struct {
	Query      string
	MatchCount int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// EntitySelectedEvent is emitted when an entity is picked from the results
type EntitySelectedEvent struct {
	Entity       Entity
	HistoryDepth int
}

func (e EntitySelectedEvent) Type() EventType { return EventEntitySelected }

// SelectionClearedEvent is emitted when the detail view is dismissed
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// SearchCancelledEvent is emitted when the search is reset to idle
type SearchCancelledEvent struct{}

func (e SearchCancelledEvent) Type() EventType { return EventSearchCancelled }

// StateChangedEvent carries the version of the snapshot that was just published
type StateChangedEvent struct {
	Seq uint64
}

func (e StateChangedEvent) Type() EventType { return EventStateChanged }

// ConfigLoadedEvent is emitted when configuration has been read
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when a non-fatal error occurs outside the core
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
