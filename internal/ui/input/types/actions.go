package types

import "pdfgrip/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "next", "previous", "first", "last"
}

func (a NavigateAction) Type() string { return "navigate" }

// Zoom actions
type ZoomAction struct {
	Direction string // "in", "out"
}

func (a ZoomAction) Type() string { return "zoom" }

type SetZoomModeAction struct {
	Mode domain.ZoomMode
}

func (a SetZoomModeAction) Type() string { return "set_zoom_mode" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Document actions
type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// UI actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
