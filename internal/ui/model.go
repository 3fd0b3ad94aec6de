package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pdfgrip/internal/config"
	"pdfgrip/internal/document"
	"pdfgrip/internal/eventbus"
	"pdfgrip/internal/navigation"
	"pdfgrip/internal/render"
	"pdfgrip/internal/ui/input"
	"pdfgrip/internal/ui/input/types"
	"pdfgrip/internal/ui/views"
)

// docPhase is the document lifecycle state
type docPhase int

const (
	docLoading docPhase = iota
	docLoaded
	docFailed
)

// DocumentLoader loads documents; satisfied by *document.Service
type DocumentLoader interface {
	Load(ctx context.Context, ref string) (*document.Handle, error)
}

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService

	nav          *navigation.Service
	loader       DocumentLoader
	pageRenderer render.PageRenderer

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler

	// Document lifecycle
	ref     string
	phase   docPhase
	handle  *document.Handle
	lastErr string
	loadGen int

	// Page render state
	renderGen     int
	pageContent   string
	pageRendering bool

	// UI-specific state
	width         int
	height        int
	showHelp      bool
	statusMessage string

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model for one document reference
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService,
	loader DocumentLoader, pageRenderer render.PageRenderer, ref string, initialPage int) *Model {
	return &Model{
		bus:          bus,
		config:       cfg,
		configSvc:    configSvc,
		nav:          navigation.NewService(bus, initialPage, 0, nil),
		loader:       loader,
		pageRenderer: pageRenderer,
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
		ref:          ref,
		phase:        docLoading,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Navigation exposes the navigation service (for wiring callbacks)
func (m *Model) Navigation() *navigation.Service {
	return m.nav
}

// Init starts the spinner and kicks off the document load
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.loadCmd())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The render hint depends on the viewport, so re-render the page
		return m, m.requestRender()

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.showHelp = false
				return m, nil
			}
		}

		ctx := &modelContext{m: m}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tickMsg:
		if m.phase == docLoading {
			return m, m.tickCmd()
		}
		return m, nil

	case documentLoadedMsg:
		return m, m.handleLoaded(msg)

	case documentLoadFailedMsg:
		if msg.gen != m.loadGen {
			// Stale load, already superseded
			return m, nil
		}
		m.phase = docFailed
		m.lastErr = msg.err.Error()
		return m, nil

	case pageRenderedMsg:
		if msg.gen != m.renderGen {
			// Outdated page or zoom, discard
			return m, nil
		}
		m.pageRendering = false
		if msg.err != nil {
			m.pageContent = fmt.Sprintf("Unable to render page %d: %v", msg.page, msg.err)
		} else {
			m.pageContent = msg.content
		}
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("pager: %v", msg.err)
		}
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m, nil
	}
}

// View renders the UI
func (m *Model) View() string {
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Loading:       m.phase == docLoading,
		Failed:        m.phase == docFailed,
		ErrorMessage:  m.lastErr,
		Ref:           m.ref,
		CurrentPage:   m.nav.CurrentPage(),
		TotalPages:    m.nav.TotalPages(),
		ZoomLabel:     m.nav.ZoomLabel(),
		CanPrevious:   m.nav.CanPreviousPage(),
		CanNext:       m.nav.CanNextPage(),
		CanZoomIn:     m.nav.CanZoomIn(),
		CanZoomOut:    m.nav.CanZoomOut(),
		PageContent:   m.pageContent,
		PageRendering: m.pageRendering,
		ShowHelp:      m.showHelp,
		StatusMessage: m.statusMessage,
		ShowPageInfo:  m.config.UISettings.ShowPageInfo,
		ShowHelpHints: m.config.UISettings.ShowHelpHints,
	}

	if m.handle != nil {
		state.Title = m.handle.Info.Title
	}
	if m.showHelp {
		state.HelpContent = m.helpRenderer.renderHelpContent()
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		state.InputMode = "goto"
		state.InputPrompt = "Go to page: "
		state.TextInput = ti.View()
	}

	return m.renderer.Render(state)
}

// processAction executes a single input action
func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.NavigateAction:
		return m.navigate(a.Direction)

	case types.ZoomAction:
		if a.Direction == "in" {
			m.nav.ZoomIn()
		} else {
			m.nav.ZoomOut()
		}
		return m.requestRender()

	case types.SetZoomModeAction:
		m.nav.SetZoomMode(a.Mode)
		return m.requestRender()

	case types.SubmitTextAction:
		if a.Mode == types.ModeGoToPage {
			return m.goToPageInput(a.Text)
		}
		return nil

	case types.CancelTextAction:
		return nil

	case types.RetryAction:
		return m.retry()

	case types.OpenPagerAction:
		return m.openPageTextCmd()

	case types.ToggleHelpAction:
		m.showHelp = !m.showHelp
		return nil

	case types.QuitAction:
		m.closeHandle()
		return tea.Quit
	}

	return nil
}

// navigate applies a direction to the navigation service and re-renders
// when the page actually changed
func (m *Model) navigate(direction string) tea.Cmd {
	before := m.nav.CurrentPage()

	switch direction {
	case "next":
		m.nav.NextPage()
	case "previous":
		m.nav.PreviousPage()
	case "first":
		m.nav.GoToPage(1)
	case "last":
		m.nav.GoToPage(m.nav.TotalPages())
	}

	if m.nav.CurrentPage() == before {
		return nil
	}
	return m.requestRender()
}

// goToPageInput handles a submitted page number. Invalid input reverts
// to the current page without touching navigation state.
func (m *Model) goToPageInput(text string) tea.Cmd {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return nil
	}
	if n < 1 || n > m.nav.TotalPages() {
		return nil
	}

	before := m.nav.CurrentPage()
	m.nav.GoToPage(n)
	if m.nav.CurrentPage() == before {
		return nil
	}
	return m.requestRender()
}

// retry re-enters the loading state after a failed load
func (m *Model) retry() tea.Cmd {
	if m.phase != docFailed {
		return nil
	}
	m.phase = docLoading
	m.lastErr = ""
	m.loadGen++
	return tea.Batch(m.tickCmd(), m.loadCmd())
}

// handleLoaded installs a completed document load
func (m *Model) handleLoaded(msg documentLoadedMsg) tea.Cmd {
	if msg.gen != m.loadGen {
		// A stale load may not mutate state after being superseded
		if msg.handle != nil {
			msg.handle.Close()
		}
		return nil
	}

	m.closeHandle()
	m.handle = msg.handle
	m.phase = docLoaded
	m.nav.SetTotalPages(msg.handle.Info.PageCount)

	m.config.AddRecent(m.ref)
	if err := m.configSvc.Save(m.config); err != nil {
		log.Printf("Failed to save config: %v", err)
	}

	return m.requestRender()
}

// handleEvent processes forwarded domain events
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.WarningEvent:
		m.statusMessage = e.Message
	case eventbus.PageChangedEvent:
		// State already reflects the transition; nothing to do here
	}
	return nil
}

// requestRender schedules a render of the current page at the current
// zoom. Superseded renders are discarded by generation.
func (m *Model) requestRender() tea.Cmd {
	if m.phase != docLoaded || m.handle == nil || m.nav.TotalPages() == 0 {
		return nil
	}

	m.renderGen++
	m.pageRendering = true

	gen := m.renderGen
	page := m.nav.CurrentPage()
	doc := m.handle.Doc
	cols, rows := m.renderer.PageArea(m.width, m.height)
	hint := render.Hint{
		Columns:   cols,
		Rows:      rows,
		ZoomLevel: m.nav.ZoomLevel(),
		ZoomMode:  m.nav.ZoomMode(),
	}
	pageRenderer := m.pageRenderer

	return func() tea.Msg {
		content, err := pageRenderer.RenderPage(doc, page, hint)
		return pageRenderedMsg{gen: gen, page: page, content: content, err: err}
	}
}

// loadCmd starts a document load for the current generation
func (m *Model) loadCmd() tea.Cmd {
	gen := m.loadGen
	ref := m.ref
	loader := m.loader

	return func() tea.Msg {
		handle, err := loader.Load(context.Background(), ref)
		if err != nil {
			return documentLoadFailedMsg{gen: gen, err: err}
		}
		return documentLoadedMsg{gen: gen, handle: handle}
	}
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) closeHandle() {
	if m.handle != nil {
		if err := m.handle.Close(); err != nil {
			log.Printf("Failed to close document: %v", err)
		}
		m.handle = nil
	}
}
