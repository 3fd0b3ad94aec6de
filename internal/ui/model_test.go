package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfgrip/internal/config"
	"pdfgrip/internal/document"
	"pdfgrip/internal/domain"
	"pdfgrip/internal/render"
)

// stubDoc is a fixed-content document for model tests
type stubDoc struct {
	pages []string
}

func (d *stubDoc) NumPages() int               { return len(d.pages) }
func (d *stubDoc) Metadata() map[string]string { return map[string]string{} }
func (d *stubDoc) Close() error                { return nil }

func (d *stubDoc) Text(page int) (string, error) {
	if page < 1 || page > len(d.pages) {
		return "", fmt.Errorf("page %d out of range", page)
	}
	return d.pages[page-1], nil
}

func (d *stubDoc) Image(page int) (image.Image, error) {
	return nil, errors.New("no images")
}

// stubLoader returns a canned handle or error
type stubLoader struct {
	handle *document.Handle
	err    error
	calls  int
}

func (l *stubLoader) Load(ctx context.Context, ref string) (*document.Handle, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return l.handle, nil
}

// memConfigService keeps config in memory
type memConfigService struct {
	saved *config.Config
}

func (s *memConfigService) Load() (*config.Config, error)                  { return config.DefaultConfig(), nil }
func (s *memConfigService) Save(c *config.Config) error                    { s.saved = c; return nil }
func (s *memConfigService) LoadFromPath(path string) (*config.Config, error) {
	return config.DefaultConfig(), nil
}
func (s *memConfigService) SaveToPath(c *config.Config, path string) error { return nil }

func newTestModel(t *testing.T, pages []string) (*Model, *stubLoader) {
	t.Helper()
	doc := &stubDoc{pages: pages}
	loader := &stubLoader{
		handle: &document.Handle{
			Info: domain.DocumentInfo{Ref: "test.pdf", Title: "Test", PageCount: len(pages)},
			Doc:  doc,
		},
	}
	m := NewModel(nil, config.DefaultConfig(), &memConfigService{}, loader, render.NewTextRenderer(), "test.pdf", 1)
	m.width = 80
	m.height = 30
	return m, loader
}

// loadDocument drives the model through a successful load
func loadDocument(t *testing.T, m *Model) {
	t.Helper()
	handle, err := m.loader.Load(context.Background(), m.ref)
	require.NoError(t, err)
	_, cmd := m.Update(documentLoadedMsg{gen: m.loadGen, handle: handle})
	require.Equal(t, docLoaded, m.phase)
	// Complete the initial page render
	if cmd != nil {
		if msg := cmd(); msg != nil {
			m.Update(msg)
		}
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelStartsLoading(t *testing.T) {
	m, _ := newTestModel(t, []string{"one"})

	assert.Equal(t, docLoading, m.phase)
	assert.Contains(t, m.View(), "Loading")
}

func TestDocumentLoadPropagatesPageCount(t *testing.T) {
	m, _ := newTestModel(t, []string{"one", "two", "three"})

	loadDocument(t, m)

	assert.Equal(t, 3, m.nav.TotalPages())
	assert.Equal(t, 1, m.nav.CurrentPage())
	assert.Contains(t, m.View(), "Page 1/3")
	assert.Contains(t, m.pageContent, "one")
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	m, _ := newTestModel(t, []string{"one"})
	m.loadGen = 2

	stale := &document.Handle{
		Info: domain.DocumentInfo{PageCount: 9},
		Doc:  &stubDoc{pages: []string{"stale"}},
	}
	m.Update(documentLoadedMsg{gen: 1, handle: stale})

	assert.Equal(t, docLoading, m.phase)
	assert.Zero(t, m.nav.TotalPages())
}

func TestNextPageKeyRendersNewPage(t *testing.T) {
	m, _ := newTestModel(t, []string{"one", "two"})
	loadDocument(t, m)

	_, cmd := m.Update(key("l"))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.nav.CurrentPage())
	assert.True(t, m.pageRendering)

	msg := cmd()
	m.Update(msg)
	assert.False(t, m.pageRendering)
	assert.Contains(t, m.pageContent, "two")
}

func TestNextPageAtLastPageDoesNothing(t *testing.T) {
	m, _ := newTestModel(t, []string{"only"})
	loadDocument(t, m)

	_, cmd := m.Update(key("l"))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.nav.CurrentPage())
}

func TestStalePageRenderIsDiscarded(t *testing.T) {
	m, _ := newTestModel(t, []string{"one", "two"})
	loadDocument(t, m)
	before := m.pageContent

	m.renderGen = 5
	m.Update(pageRenderedMsg{gen: 4, page: 2, content: "outdated"})

	assert.Equal(t, before, m.pageContent)
}

func TestGoToPageInput(t *testing.T) {
	m, _ := newTestModel(t, []string{"one", "two", "three"})
	loadDocument(t, m)

	m.Update(key(":"))
	require.NotNil(t, m.inputHandler.TextInput(), "colon enters go-to-page mode")

	m.Update(key("3"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 3, m.nav.CurrentPage())
	assert.Nil(t, m.inputHandler.TextInput(), "input closes after submit")
	require.NotNil(t, cmd)
}

func TestGoToPageInvalidInputReverts(t *testing.T) {
	m, _ := newTestModel(t, []string{"one", "two", "three"})
	loadDocument(t, m)

	for _, entry := range []string{"abc", "99", "0"} {
		m.Update(key(":"))
		for _, r := range entry {
			m.Update(key(string(r)))
		}
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, 1, m.nav.CurrentPage(), "input %q must not navigate", entry)
		assert.Nil(t, m.inputHandler.TextInput())
	}
}

func TestGoToPageEscapeCancels(t *testing.T) {
	m, _ := newTestModel(t, []string{"one", "two"})
	loadDocument(t, m)

	m.Update(key(":"))
	m.Update(key("2"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, 1, m.nav.CurrentPage())
	assert.Nil(t, m.inputHandler.TextInput())
}

func TestZoomKeysUpdateIndicator(t *testing.T) {
	m, _ := newTestModel(t, []string{"one"})
	loadDocument(t, m)

	assert.Contains(t, m.View(), "Fit Width")

	_, cmd := m.Update(key("+"))
	require.NotNil(t, cmd, "zoom changes trigger a re-render")
	assert.Equal(t, 125, m.nav.ZoomLevel())
	assert.Contains(t, m.View(), "125%")

	m.Update(key("e"))
	assert.Contains(t, m.View(), "Fit Height")
	assert.Equal(t, 125, m.nav.ZoomLevel(), "fit mode keeps the level")
}

func TestLoadFailureShowsErrorAndRetries(t *testing.T) {
	m, loader := newTestModel(t, []string{"one"})
	loader.err = errors.New("document not found")

	m.Update(documentLoadFailedMsg{gen: m.loadGen, err: loader.err})

	require.Equal(t, docFailed, m.phase)
	view := m.View()
	assert.Contains(t, view, "Error")
	assert.Contains(t, view, "document not found")

	// Retry re-enters loading with a fresh generation
	gen := m.loadGen
	_, cmd := m.Update(key("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, docLoading, m.phase)
	assert.Equal(t, gen+1, m.loadGen)
}

func TestRetryIgnoredWhileLoaded(t *testing.T) {
	m, _ := newTestModel(t, []string{"one"})
	loadDocument(t, m)

	gen := m.loadGen
	_, cmd := m.Update(key("r"))

	assert.Nil(t, cmd)
	assert.Equal(t, gen, m.loadGen)
	assert.Equal(t, docLoaded, m.phase)
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, []string{"one"})
	loadDocument(t, m)

	m.Update(key("?"))
	assert.Contains(t, m.View(), "pdfgrip Help")

	m.Update(key("?"))
	assert.NotContains(t, m.View(), "pdfgrip Help")
}

func TestWarningEventShowsInStatusBar(t *testing.T) {
	m, _ := newTestModel(t, []string{"one"})
	loadDocument(t, m)

	m.Update(EventMsg{Event: domain.WarningEvent{Message: "loading over insecure transport"}})

	assert.Contains(t, m.View(), "insecure transport")
}

func TestViewShowsDisabledControlsAtBounds(t *testing.T) {
	m, _ := newTestModel(t, []string{"one", "two"})
	loadDocument(t, m)

	view := m.View()
	assert.Contains(t, view, "prev")
	assert.Contains(t, view, "next")
	assert.True(t, strings.Contains(view, "Page 1/2"))
}
