package render

import (
	"pdfgrip/internal/document"
	"pdfgrip/internal/domain"
)

// Hint tells a renderer how much terminal space is available and how the
// page should be scaled into it
type Hint struct {
	Columns   int
	Rows      int
	ZoomLevel int // percent
	ZoomMode  domain.ZoomMode
}

// PageRenderer turns one page of a document into terminal content
type PageRenderer interface {
	RenderPage(doc document.Document, page int, hint Hint) (string, error)
}

// NewRenderer returns the default page renderer
func NewRenderer() PageRenderer {
	return NewTextRenderer()
}
