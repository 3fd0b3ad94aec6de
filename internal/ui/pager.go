package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// runPager shows content in the ov pager, taking over the terminal until
// the user exits
func (m *Model) runPager(content string) error {
	if m.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := m.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = m.program.RestoreTerminal()
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	return root.Run()
}

// openPageTextCmd extracts the current page's text and pages through it
func (m *Model) openPageTextCmd() tea.Cmd {
	if m.phase != docLoaded || m.handle == nil {
		return nil
	}

	doc := m.handle.Doc
	page := m.nav.CurrentPage()

	return func() tea.Msg {
		text, err := doc.Text(page)
		if err == nil {
			err = m.runPager(text)
		}
		return pagerDoneMsg{err: err}
	}
}
