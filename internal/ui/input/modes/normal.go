package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"pdfgrip/internal/domain"
	"pdfgrip/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "previous"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "next"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "previous"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "next"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "first"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "last"}}, true
	}

	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "h", "p":
		return []types.Action{types.NavigateAction{Direction: "previous"}}, true
	case "l", "n":
		return []types.Action{types.NavigateAction{Direction: "next"}}, true
	case "g":
		return []types.Action{types.NavigateAction{Direction: "first"}}, true
	case "G":
		return []types.Action{types.NavigateAction{Direction: "last"}}, true
	case "+", "=":
		return []types.Action{types.ZoomAction{Direction: "in"}}, true
	case "-", "_":
		return []types.Action{types.ZoomAction{Direction: "out"}}, true
	case "w":
		return []types.Action{types.SetZoomModeAction{Mode: domain.ZoomFitWidth}}, true
	case "e":
		return []types.Action{types.SetZoomModeAction{Mode: domain.ZoomFitHeight}}, true
	case ":":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoToPage}}, true
	case "r":
		// Only meaningful after a failed load; the model guards
		return []types.Action{types.RetryAction{}}, true
	case "t":
		return []types.Action{types.OpenPagerAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
