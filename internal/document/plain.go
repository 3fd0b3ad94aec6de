package document

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/ledongthuc/pdf"
)

// ErrNoPageImages is returned by the fallback reader, which can extract
// text but cannot rasterize pages
var ErrNoPageImages = errors.New("page rendering not supported by the fallback reader")

// PlainOpener opens PDFs with a pure Go reader. It is the fallback when
// MuPDF cannot open the file; it supports text extraction only.
type PlainOpener struct{}

// Open opens a PDF at path
func (PlainOpener) Open(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open document: %w", err)
	}
	return &plainDocument{file: f, reader: r}, nil
}

type plainDocument struct {
	file   *os.File
	reader *pdf.Reader
}

func (d *plainDocument) NumPages() int {
	return d.reader.NumPage()
}

func (d *plainDocument) Metadata() map[string]string {
	// The fallback reader exposes no document information dictionary
	return map[string]string{}
}

func (d *plainDocument) Text(page int) (string, error) {
	if page < 1 || page > d.reader.NumPage() {
		return "", fmt.Errorf("page %d out of range", page)
	}
	p := d.reader.Page(page)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d is missing", page)
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("unable to extract text from page %d: %w", page, err)
	}
	return text, nil
}

func (d *plainDocument) Image(page int) (image.Image, error) {
	return nil, ErrNoPageImages
}

func (d *plainDocument) Close() error {
	return d.file.Close()
}
