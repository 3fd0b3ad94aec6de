package render

import (
	"fmt"
	"strings"

	"pdfgrip/internal/document"
	"pdfgrip/internal/domain"
)

// minColumns is the narrowest content width a zoom-out can produce
const minColumns = 20

// TextRenderer renders a page as extracted text reflowed into the hinted
// space. Fit-width wraps to the full column budget; percentage mode scales
// the wrap width with the zoom level; fit-height additionally crops to the
// row budget with an overflow marker.
type TextRenderer struct{}

// NewTextRenderer creates a text page renderer
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// RenderPage extracts and reflows the text of one page
func (r *TextRenderer) RenderPage(doc document.Document, page int, hint Hint) (string, error) {
	text, err := doc.Text(page)
	if err != nil {
		return "", err
	}

	width := contentWidth(hint)
	lines := wrapText(text, width)

	if hint.ZoomMode == domain.ZoomFitHeight && hint.Rows > 0 && len(lines) > hint.Rows {
		kept := hint.Rows - 1
		if kept < 1 {
			kept = 1
		}
		cropped := len(lines) - kept
		lines = append(lines[:kept], fmt.Sprintf("… (%d more lines)", cropped))
	}

	return strings.Join(lines, "\n"), nil
}

// contentWidth derives the wrap width from the zoom state
func contentWidth(hint Hint) int {
	cols := hint.Columns
	if cols < minColumns {
		cols = minColumns
	}

	if hint.ZoomMode != domain.ZoomPercentage {
		return cols
	}

	level := hint.ZoomLevel
	if level <= 0 {
		level = 100
	}
	width := cols * level / 100
	if width < minColumns {
		width = minColumns
	}
	if width > cols {
		width = cols
	}
	return width
}

// wrapText word-wraps text at width, preserving blank lines
func wrapText(text string, width int) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}
		current := ""
		for _, word := range strings.Fields(line) {
			switch {
			case current == "":
				current = word
			case len(current)+1+len(word) <= width:
				current += " " + word
			default:
				out = append(out, current)
				current = word
			}
			// Hard-break words longer than the width
			for len(current) > width {
				out = append(out, current[:width])
				current = current[width:]
			}
		}
		if current != "" {
			out = append(out, current)
		}
	}
	return out
}
