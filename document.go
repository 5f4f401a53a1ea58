// Package pdfpages provides page-level access to existing PDF documents:
// opening a document, counting its pages, and assembling new documents
// from an ordered selection of its pages.
//
// A Document wraps a fully parsed PDF. It is owned by a single
// operation: open it, use it, and close it exactly once on every exit
// path. Close is idempotent, so a deferred Close is always safe.
package pdfpages

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Dim is a page size in PDF points.
type Dim struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Document is an open PDF source document.
type Document struct {
	ctx *model.Context
}

// Open parses a PDF from raw bytes.
// Returns ErrInvalidPDF if the bytes do not parse as a PDF and
// ErrNoPages if the document contains no pages.
func Open(data []byte) (*Document, error) {
	return OpenReader(bytes.NewReader(data))
}

// OpenReader parses a PDF from a seekable reader. The document holds no
// reference to rs after OpenReader returns.
func OpenReader(rs io.ReadSeeker) (*Document, error) {
	ctx, err := api.ReadValidateAndOptimize(rs, model.NewDefaultConfiguration())
	if err != nil {
		return nil, newDocumentError("Open", fmt.Errorf("%w: %v", ErrInvalidPDF, err))
	}
	if ctx.PageCount == 0 {
		return nil, newDocumentError("Open", ErrNoPages)
	}
	return &Document{ctx: ctx}, nil
}

// OpenFile parses a PDF from a file on disk.
func OpenFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newDocumentError("Open", err)
	}
	defer f.Close()
	return OpenReader(f)
}

// PageCount returns the number of pages in the source document.
func (d *Document) PageCount() int {
	if d == nil || d.ctx == nil {
		return 0
	}
	return d.ctx.PageCount
}

// PageDims returns the media box dimensions of every page, in order.
func (d *Document) PageDims() ([]Dim, error) {
	if d == nil || d.ctx == nil {
		return nil, ErrClosed
	}
	pd, err := d.ctx.PageDims()
	if err != nil {
		return nil, newDocumentError("PageDims", err)
	}
	dims := make([]Dim, len(pd))
	for i, dim := range pd {
		dims[i] = Dim{Width: dim.Width, Height: dim.Height}
	}
	return dims, nil
}

// ExtractPages assembles a new PDF from the given 0-indexed source
// pages and writes it to w. The output contains one page per index, in
// exactly the order given; repeated indices produce repeated pages.
func (d *Document) ExtractPages(w io.Writer, indices []int) error {
	if d == nil || d.ctx == nil {
		return ErrClosed
	}
	if len(indices) == 0 {
		return newDocumentError("ExtractPages", fmt.Errorf("no pages selected"))
	}

	pages := make([]int, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= d.ctx.PageCount {
			return newDocumentError("ExtractPages",
				fmt.Errorf("page index %d outside document (0-%d)", idx, d.ctx.PageCount-1))
		}
		pages[i] = idx + 1 // pdfcpu page numbers are 1-based
	}

	out, err := pdfcpu.ExtractPages(d.ctx, pages, true)
	if err != nil {
		return newDocumentError("ExtractPages", err)
	}
	if err := api.WriteContext(out, w); err != nil {
		return newDocumentError("ExtractPages", err)
	}
	return nil
}

// ExtractPage writes a single 0-indexed page as a one-page PDF.
func (d *Document) ExtractPage(w io.Writer, index int) error {
	return d.ExtractPages(w, []int{index})
}

// Close releases the document. It is safe to call Close multiple times
// or on a nil document.
func (d *Document) Close() {
	if d != nil {
		d.ctx = nil
	}
}
