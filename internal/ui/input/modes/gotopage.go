package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"pdfgrip/internal/ui/input/types"
)

// GoToPageMode reads a page number from the user
type GoToPageMode struct {
	TextInputMode
}

func NewGoToPageMode(ti *textinput.Model) *GoToPageMode {
	return &GoToPageMode{
		TextInputMode: NewTextInputMode(types.ModeGoToPage, "goto", "Go to page: ", ti),
	}
}

func (m *GoToPageMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.CharLimit = 6
	}
	return actions
}
