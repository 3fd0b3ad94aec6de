package ui

import (
	"time"

	"pdfgrip/internal/document"
	"pdfgrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for the loading spinner
type tickMsg time.Time

// documentLoadedMsg carries a completed document load
type documentLoadedMsg struct {
	gen    int
	handle *document.Handle
}

// documentLoadFailedMsg carries a failed document load
type documentLoadFailedMsg struct {
	gen int
	err error
}

// pageRenderedMsg carries a completed page render
type pageRenderedMsg struct {
	gen     int
	page    int
	content string
	err     error
}

// pagerDoneMsg is sent when the text pager exits
type pagerDoneMsg struct {
	err error
}
