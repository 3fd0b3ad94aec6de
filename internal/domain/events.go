package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLoadRequested  EventType = "LoadRequested"
	EventLoadStarted    EventType = "LoadStarted"
	EventDocumentLoaded EventType = "DocumentLoaded"
	EventLoadFailed     EventType = "LoadFailed"
	EventPageChanged    EventType = "PageChanged"
	EventZoomChanged    EventType = "ZoomChanged"
	EventWarning        EventType = "Warning"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LoadRequestedEvent is emitted to request a document load
type LoadRequestedEvent struct {
	Ref string
}

func (e LoadRequestedEvent) Type() EventType { return EventLoadRequested }

// LoadStartedEvent is emitted when a document load begins
type LoadStartedEvent struct {
	Ref string
}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// DocumentLoadedEvent is emitted when a document finishes loading
type DocumentLoadedEvent struct {
	Info DocumentInfo
}

func (e DocumentLoadedEvent) Type() EventType { return EventDocumentLoaded }

// LoadFailedEvent is emitted when a document load fails
type LoadFailedEvent struct {
	Ref     string
	Message string
	Err     error
}

func (e LoadFailedEvent) Type() EventType { return EventLoadFailed }

// PageChangedEvent is emitted when the current page changes through navigation
type PageChangedEvent struct {
	OldPage int
	NewPage int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// ZoomChangedEvent is emitted when the zoom level or mode changes
type ZoomChangedEvent struct {
	Level int
	Mode  ZoomMode
}

func (e ZoomChangedEvent) Type() EventType { return EventZoomChanged }

// WarningEvent is emitted for non-fatal conditions worth surfacing
type WarningEvent struct {
	Message string
}

func (e WarningEvent) Type() EventType { return EventWarning }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
