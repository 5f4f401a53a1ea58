// Package pdftest builds minimal well-formed PDF documents for use as
// test fixtures. Each page carries a one-line content stream ("Page 1",
// "Page 2", ...) so pages are distinguishable in output documents.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"testing"
)

// New returns a minimal PDF document with numPages pages, all sized
// 612x792.
func New(numPages int) []byte {
	return build(numPages, nil)
}

// NewWithWidths returns a minimal PDF with one page per width. Page i
// gets a MediaBox of [0 0 widths[i-1] 792], so pages can be told apart
// by dimension after they have been copied into another document.
func NewWithWidths(widths ...float64) []byte {
	return build(len(widths), widths)
}

func build(numPages int, widths []float64) []byte {
	if numPages < 1 {
		panic("pdftest: numPages must be >= 1")
	}

	// Object layout: 1 catalog, 2 page tree, 3 font, then for page i
	// (1-based) object 2+2i is the page dict and 3+2i its content stream.
	totalObjs := 3 + 2*numPages
	offsets := make([]int, totalObjs+1)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	var kids bytes.Buffer
	for i := 1; i <= numPages; i++ {
		if i > 1 {
			kids.WriteByte(' ')
		}
		fmt.Fprintf(&kids, "%d 0 R", 2+2*i)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 612 792] >>",
		kids.String(), numPages))
	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i := 1; i <= numPages; i++ {
		pageObj := 2 + 2*i
		contentObj := 3 + 2*i
		mediaBox := ""
		if widths != nil {
			mediaBox = fmt.Sprintf(" /MediaBox [0 0 %g 792]", widths[i-1])
		}
		writeObj(pageObj, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R%s /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			mediaBox, contentObj))

		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (Page %d) Tj ET", i)
		offsets[contentObj] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentObj, len(stream), stream)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", totalObjs+1)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= totalObjs; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		totalObjs+1, xrefOffset)

	return buf.Bytes()
}

// WriteFile writes a fixture PDF with numPages pages to filename.
func WriteFile(t *testing.T, filename string, numPages int) {
	t.Helper()
	if err := os.WriteFile(filename, New(numPages), 0644); err != nil {
		t.Fatalf("writing fixture PDF: %v", err)
	}
}
