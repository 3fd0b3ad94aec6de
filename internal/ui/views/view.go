package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Document lifecycle
	Loading      bool
	Failed       bool
	ErrorMessage string
	Title        string
	Ref          string

	// Navigation state
	CurrentPage int
	TotalPages  int
	ZoomLabel   string
	CanPrevious bool
	CanNext     bool
	CanZoomIn   bool
	CanZoomOut  bool

	// Page content
	PageContent   string
	PageRendering bool

	// Input state
	InputMode   string // "" or "goto"
	InputPrompt string
	TextInput   string

	// Popups and settings
	ShowHelp      bool
	HelpContent   string
	StatusMessage string
	ShowPageInfo  bool
	ShowHelpHints bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.titleLine(state))
	content.WriteString("\n\n")

	switch {
	case state.ShowHelp:
		content.WriteString(state.HelpContent)
	case state.Loading:
		content.WriteString(r.loadingView(state))
	case state.Failed:
		content.WriteString(r.errorView(state))
	default:
		content.WriteString(r.pageView(state))
	}

	content.WriteString("\n")
	content.WriteString(r.statusBar(state))

	if state.InputMode == "goto" {
		content.WriteString("\n")
		content.WriteString(r.styles.Prompt.Render(state.InputPrompt))
		content.WriteString(state.TextInput)
	} else if state.ShowHelpHints {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render("h/l pages · +/- zoom · w/e fit · : go to page · t text · ? help · q quit"))
	}

	return r.styles.Main.Render(content.String())
}

// titleLine renders the header with a spinner while loading
func (r *Renderer) titleLine(state ViewState) string {
	logo := r.styles.Title.Render("pdfgrip")

	right := ""
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		right = r.styles.Dim.Render(fmt.Sprintf("%s Loading", spinner[frame]))
	} else if state.Title != "" {
		right = r.styles.Dim.Render(state.Title)
	}

	if right == "" {
		return logo
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding > 0 {
		return logo + strings.Repeat(" ", padding) + right
	}
	return logo + "  " + right
}

func (r *Renderer) loadingView(state ViewState) string {
	return r.styles.Loading.Render(fmt.Sprintf("Loading %s ...", state.Ref))
}

func (r *Renderer) errorView(state ViewState) string {
	b := &strings.Builder{}
	b.WriteString(r.styles.StatusError.Render("Error: " + state.ErrorMessage))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Help.Render("press r to retry, q to quit"))
	return b.String()
}

// pageView renders the current page inside a frame
func (r *Renderer) pageView(state ViewState) string {
	pageContent := state.PageContent
	if state.PageRendering {
		if pageContent == "" {
			pageContent = r.styles.Loading.Render("Rendering page ...")
		} else {
			pageContent = r.styles.Dim.Render(pageContent)
		}
	}

	box := r.styles.PageBox
	if state.Width > 6 {
		box = box.Width(state.Width - 6)
	}
	height := r.pageRows(state)
	if height > 0 {
		box = box.Height(height)
	}
	return box.Render(pageContent)
}

// pageRows returns the rows available for page content
func (r *Renderer) pageRows(state ViewState) int {
	// Title, blank line, status bar, hint line, frame and padding
	rows := state.Height - 9
	if rows < 1 {
		rows = 1
	}
	return rows
}

// PageArea reports the content area a renderer should target
func (r *Renderer) PageArea(width, height int) (cols, rows int) {
	cols = width - 10
	if cols < 20 {
		cols = 20
	}
	rows = height - 9
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// statusBar renders page position, zoom indicator and control state
func (r *Renderer) statusBar(state ViewState) string {
	parts := []string{}

	if state.ShowPageInfo {
		if state.TotalPages > 0 {
			parts = append(parts, fmt.Sprintf("Page %d/%d", state.CurrentPage, state.TotalPages))
		} else {
			parts = append(parts, "No pages")
		}
	}

	parts = append(parts, r.styles.Indicator.Render(state.ZoomLabel))

	prev := "‹ prev"
	if !state.CanPrevious {
		prev = r.styles.Disabled.Render(prev)
	}
	next := "next ›"
	if !state.CanNext {
		next = r.styles.Disabled.Render(next)
	}
	parts = append(parts, prev+" "+next)

	zoomIn := "+"
	if !state.CanZoomIn {
		zoomIn = r.styles.Disabled.Render(zoomIn)
	}
	zoomOut := "-"
	if !state.CanZoomOut {
		zoomOut = r.styles.Disabled.Render(zoomOut)
	}
	parts = append(parts, "zoom "+zoomOut+"/"+zoomIn)

	if state.StatusMessage != "" {
		parts = append(parts, r.styles.Highlight.Render(state.StatusMessage))
	}

	return r.styles.Status.Render(strings.Join(parts, "  │  "))
}
