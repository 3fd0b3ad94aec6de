package document

import (
	"fmt"
	"image"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// FitzOpener opens documents using go-fitz (MuPDF)
type FitzOpener struct{}

// Open opens a document at path
func (FitzOpener) Open(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open document: %w", err)
	}
	return &fitzDocument{doc: doc}, nil
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) NumPages() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) Metadata() map[string]string {
	meta := make(map[string]string)
	for key, value := range d.doc.Metadata() {
		if value != "" {
			meta[strings.ToLower(key)] = value
		}
	}
	return meta
}

func (d *fitzDocument) Text(page int) (string, error) {
	if page < 1 || page > d.doc.NumPage() {
		return "", fmt.Errorf("page %d out of range", page)
	}
	text, err := d.doc.Text(page - 1)
	if err != nil {
		return "", fmt.Errorf("unable to extract text from page %d: %w", page, err)
	}
	return text, nil
}

func (d *fitzDocument) Image(page int) (image.Image, error) {
	if page < 1 || page > d.doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range", page)
	}
	img, err := d.doc.Image(page - 1)
	if err != nil {
		return nil, fmt.Errorf("unable to render page %d: %w", page, err)
	}
	return img, nil
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
