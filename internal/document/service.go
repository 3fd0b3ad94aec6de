package document

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"pdfgrip/internal/domain"
	"pdfgrip/internal/eventbus"
)

// Handle is a loaded document together with its metadata. Close releases
// the underlying document and any temporary download.
type Handle struct {
	Info domain.DocumentInfo
	Doc  Document

	tempPath string
}

// Close releases the document handle
func (h *Handle) Close() error {
	var err error
	if h.Doc != nil {
		err = h.Doc.Close()
	}
	if h.tempPath != "" {
		os.Remove(h.tempPath)
	}
	return err
}

// Service loads documents from local paths or URLs. Load may be called
// again for the same reference to retry a failed load.
type Service struct {
	bus     eventbus.EventBus
	openers []Opener
	client  *http.Client
}

// NewService creates a document service with the default opener chain:
// MuPDF first, the pure Go reader as fallback
func NewService(bus eventbus.EventBus) *Service {
	return NewServiceWithOpeners(bus, FitzOpener{}, PlainOpener{})
}

// NewServiceWithOpeners creates a document service with an explicit
// opener chain, tried in order
func NewServiceWithOpeners(bus eventbus.EventBus, openers ...Opener) *Service {
	return &Service{
		bus:     bus,
		openers: openers,
		client:  &http.Client{},
	}
}

// Load resolves and opens the referenced document. The context cancels
// an in-flight download; a load that fails can be retried by calling
// Load again with the same reference.
func (s *Service) Load(ctx context.Context, ref string) (*Handle, error) {
	s.publish(domain.LoadStartedEvent{Ref: ref})

	localPath, tempPath, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, s.fail(ref, err)
	}

	doc, err := s.open(localPath)
	if err != nil {
		if tempPath != "" {
			os.Remove(tempPath)
		}
		return nil, s.fail(ref, err)
	}

	info := domain.DocumentInfo{
		Ref:       ref,
		Location:  localPath,
		Title:     documentTitle(doc, ref),
		PageCount: doc.NumPages(),
	}

	s.publish(domain.DocumentLoadedEvent{Info: info})

	return &Handle{Info: info, Doc: doc, tempPath: tempPath}, nil
}

// resolve turns a reference into a local path, fetching URLs to a
// temporary file. The second return value is the temp path to clean up,
// empty for local references.
func (s *Service) resolve(ctx context.Context, ref string) (string, string, error) {
	if !strings.Contains(ref, "://") {
		if _, err := os.Stat(ref); err != nil {
			return "", "", fmt.Errorf("cannot access %s: %w", ref, err)
		}
		return ref, "", nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", "", fmt.Errorf("invalid document URL: %w", err)
	}

	switch u.Scheme {
	case "https":
		// Fine
	case "http":
		// Insecure transport is a warning, not a failure
		msg := fmt.Sprintf("loading %s over insecure transport", ref)
		log.Printf("Warning: %s", msg)
		s.publish(domain.WarningEvent{Message: msg})
	default:
		return "", "", fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}

	return s.fetch(ctx, ref)
}

// fetch downloads a URL to a temporary file
func (s *Service) fetch(ctx context.Context, ref string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return "", "", fmt.Errorf("invalid document URL: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("failed to fetch document: %s", resp.Status)
	}

	tmp, err := os.CreateTemp("", "pdfgrip-*.pdf")
	if err != nil {
		return "", "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", "", fmt.Errorf("failed to download document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", "", fmt.Errorf("failed to write temp file: %w", err)
	}

	return tmp.Name(), tmp.Name(), nil
}

// open tries each opener in order and returns the first success
func (s *Service) open(path string) (Document, error) {
	var lastErr error
	for _, opener := range s.openers {
		doc, err := opener.Open(path)
		if err == nil {
			return doc, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no opener available")
	}
	return nil, lastErr
}

func (s *Service) fail(ref string, err error) error {
	s.publish(domain.LoadFailedEvent{Ref: ref, Message: err.Error(), Err: err})
	return err
}

func (s *Service) publish(event domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}

// documentTitle prefers the metadata title, falling back to the file name
func documentTitle(doc Document, ref string) string {
	if title := doc.Metadata()["title"]; title != "" {
		return title
	}
	base := filepath.Base(ref)
	if u, err := url.Parse(ref); err == nil && u.Path != "" && strings.Contains(ref, "://") {
		base = filepath.Base(u.Path)
	}
	return base
}
