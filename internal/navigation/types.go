package navigation

import "pdfgrip/internal/domain"

// Zoom bounds and step size, in percent
const (
	ZoomMin     = 50
	ZoomMax     = 300
	ZoomStep    = 25
	ZoomDefault = 100
)

// State holds all navigation and zoom state for one viewer
type State struct {
	CurrentPage int // 1-indexed; frozen while TotalPages == 0
	TotalPages  int
	ZoomLevel   int // percent
	ZoomMode    domain.ZoomMode
}

// PageChangeFunc is invoked with the new page after a successful
// navigation transition
type PageChangeFunc func(page int)
