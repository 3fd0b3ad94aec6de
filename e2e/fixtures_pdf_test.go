//go:build e2e && unix

package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// WritePDF writes a minimal uncompressed PDF with the given number of
// pages. Each page carries a single text line "Page N" so tests can
// assert on rendered page content.
func WritePDF(path string, pages int) error {
	if pages < 1 {
		return fmt.Errorf("pdf needs at least one page, got %d", pages)
	}

	var buf bytes.Buffer
	offsets := make([]int, 0, 3+2*pages)

	write := func(s string) { buf.WriteString(s) }
	addObj := func(body string) {
		offsets = append(offsets, buf.Len())
		write(body)
	}

	write("%PDF-1.4\n")

	// Object layout: 1 catalog, 2 pages, then a page/content pair per
	// page, then the shared font object last.
	fontID := 3 + 2*pages

	addObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	kids := make([]string, pages)
	for i := 0; i < pages; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}
	addObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), pages))

	for i := 0; i < pages; i++ {
		pageID := 3 + 2*i
		contentID := pageID + 1
		addObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>\nendobj\n",
			pageID, contentID, fontID))
		stream := fmt.Sprintf("BT /F1 24 Tf 72 720 Td (Page %d) Tj ET", i+1)
		addObj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentID, len(stream), stream))
	}

	addObj(fmt.Sprintf("%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n", fontID))

	xrefPos := buf.Len()
	size := len(offsets) + 1
	write(fmt.Sprintf("xref\n0 %d\n", size))
	write("0000000000 65535 f \n")
	for _, off := range offsets {
		write(fmt.Sprintf("%010d 00000 n \n", off))
	}
	write(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefPos))

	return os.WriteFile(path, buf.Bytes(), 0644)
}
