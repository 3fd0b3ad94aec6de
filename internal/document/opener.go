package document

import "image"

// Document is an open document handle. Pages are 1-indexed to match the
// navigation state; implementations convert as needed.
type Document interface {
	// NumPages returns the page count
	NumPages() int

	// Metadata returns document metadata such as title and author.
	// Keys are lowercase; missing entries are simply absent.
	Metadata() map[string]string

	// Text extracts the plain text of a page
	Text(page int) (string, error)

	// Image renders a page to an image
	Image(page int) (image.Image, error)

	// Close releases the document handle
	Close() error
}

// Opener opens a document from a local path
type Opener interface {
	Open(path string) (Document, error)
}
