package navigation

import (
	"fmt"

	"pdfgrip/internal/domain"
	"pdfgrip/internal/eventbus"
)

// Service is the single source of truth for which page is active and
// at what zoom. All transitions go through its methods; invalid input
// is a no-op, never an error.
type Service struct {
	state        State
	bus          eventbus.EventBus
	onPageChange PageChangeFunc
}

// NewService creates a new navigation service seeded with an initial page.
// An initial page beyond a known nonzero total resets to page 1. The bus
// and callback may be nil.
func NewService(bus eventbus.EventBus, initialPage, totalPages int, onPageChange PageChangeFunc) *Service {
	if totalPages < 0 {
		totalPages = 0
	}
	page := initialPage
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = 1
	}
	return &Service{
		state: State{
			CurrentPage: page,
			TotalPages:  totalPages,
			ZoomLevel:   ZoomDefault,
			ZoomMode:    domain.ZoomFitWidth,
		},
		bus:          bus,
		onPageChange: onPageChange,
	}
}

// CurrentPage returns the active page number
func (s *Service) CurrentPage() int {
	return s.state.CurrentPage
}

// TotalPages returns the known page count
func (s *Service) TotalPages() int {
	return s.state.TotalPages
}

// ZoomLevel returns the zoom percentage
func (s *Service) ZoomLevel() int {
	return s.state.ZoomLevel
}

// ZoomMode returns the active zoom mode
func (s *Service) ZoomMode() domain.ZoomMode {
	return s.state.ZoomMode
}

// SetTotalPages updates the page count from document metadata. Shrinking
// the count below the current page clamps the current page down; that is
// a corrective clamp, not a navigation, so the callback does not fire.
func (s *Service) SetTotalPages(total int) {
	if total < 0 {
		total = 0
	}
	s.state.TotalPages = total
	if total > 0 && s.state.CurrentPage > total {
		s.state.CurrentPage = total
	}
	if total > 0 && s.state.CurrentPage < 1 {
		s.state.CurrentPage = 1
	}
}

// GoToPage transitions to page n if it is within bounds
func (s *Service) GoToPage(n int) {
	if s.state.TotalPages <= 0 || n < 1 || n > s.state.TotalPages {
		return
	}
	if n == s.state.CurrentPage {
		return
	}
	old := s.state.CurrentPage
	s.state.CurrentPage = n
	s.notifyPageChange(old, n)
}

// NextPage moves forward one page; no-op at the last page
func (s *Service) NextPage() {
	if s.state.TotalPages <= 0 || s.state.CurrentPage >= s.state.TotalPages {
		return
	}
	old := s.state.CurrentPage
	s.state.CurrentPage++
	s.notifyPageChange(old, s.state.CurrentPage)
}

// PreviousPage moves back one page; no-op at page 1
func (s *Service) PreviousPage() {
	if s.state.TotalPages <= 0 || s.state.CurrentPage <= 1 {
		return
	}
	old := s.state.CurrentPage
	s.state.CurrentPage--
	s.notifyPageChange(old, s.state.CurrentPage)
}

// ZoomIn increases zoom by one step, clamped to ZoomMax. Always forces
// percentage mode, even when already at the cap.
func (s *Service) ZoomIn() {
	level := s.state.ZoomLevel + ZoomStep
	if level > ZoomMax {
		level = ZoomMax
	}
	s.setZoom(level, domain.ZoomPercentage)
}

// ZoomOut decreases zoom by one step, clamped to ZoomMin
func (s *Service) ZoomOut() {
	level := s.state.ZoomLevel - ZoomStep
	if level < ZoomMin {
		level = ZoomMin
	}
	s.setZoom(level, domain.ZoomPercentage)
}

// SetZoomMode switches the zoom mode without touching the zoom level
func (s *Service) SetZoomMode(mode domain.ZoomMode) {
	s.setZoom(s.state.ZoomLevel, mode)
}

// SetZoomPercentage sets the zoom level clamped into [ZoomMin, ZoomMax]
// and forces percentage mode
func (s *Service) SetZoomPercentage(p int) {
	if p < ZoomMin {
		p = ZoomMin
	}
	if p > ZoomMax {
		p = ZoomMax
	}
	s.setZoom(p, domain.ZoomPercentage)
}

// CanNextPage reports whether the next-page control is enabled
func (s *Service) CanNextPage() bool {
	return s.state.TotalPages > 0 && s.state.CurrentPage < s.state.TotalPages
}

// CanPreviousPage reports whether the previous-page control is enabled
func (s *Service) CanPreviousPage() bool {
	return s.state.TotalPages > 0 && s.state.CurrentPage > 1
}

// CanZoomIn reports whether the zoom-in control is enabled
func (s *Service) CanZoomIn() bool {
	return s.state.ZoomLevel < ZoomMax
}

// CanZoomOut reports whether the zoom-out control is enabled
func (s *Service) CanZoomOut() bool {
	return s.state.ZoomLevel > ZoomMin
}

// ZoomLabel returns the indicator text for the current zoom state
func (s *Service) ZoomLabel() string {
	switch s.state.ZoomMode {
	case domain.ZoomFitWidth:
		return "Fit Width"
	case domain.ZoomFitHeight:
		return "Fit Height"
	default:
		return fmt.Sprintf("%d%%", s.state.ZoomLevel)
	}
}

func (s *Service) notifyPageChange(old, page int) {
	if s.onPageChange != nil {
		s.onPageChange(page)
	}
	if s.bus != nil {
		s.bus.Publish(domain.PageChangedEvent{OldPage: old, NewPage: page})
	}
}

func (s *Service) setZoom(level int, mode domain.ZoomMode) {
	changed := level != s.state.ZoomLevel || mode != s.state.ZoomMode
	s.state.ZoomLevel = level
	s.state.ZoomMode = mode
	if changed && s.bus != nil {
		s.bus.Publish(domain.ZoomChangedEvent{Level: level, Mode: mode})
	}
}
