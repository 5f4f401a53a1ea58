package pdfpages_test

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/lvillar/pdfpages"
	"github.com/lvillar/pdfpages/pdftest"
)

// pageWidths reopens an output PDF and returns the width of every page
// in order. Fixtures built with pdftest.NewWithWidths give every source
// page a distinct width, so this observes which source page landed at
// which output position.
func pageWidths(t *testing.T, data []byte) []float64 {
	t.Helper()
	doc, err := pdfpages.Open(data)
	if err != nil {
		t.Fatalf("reading output PDF: %v", err)
	}
	defer doc.Close()

	dims, err := doc.PageDims()
	if err != nil {
		t.Fatalf("dims: %v", err)
	}
	widths := make([]float64, len(dims))
	for i, d := range dims {
		widths[i] = d.Width
	}
	return widths
}

func TestOpenAndPageCount(t *testing.T) {
	doc, err := pdfpages.Open(pdftest.New(5))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	if doc.PageCount() != 5 {
		t.Errorf("expected 5 pages, got %d", doc.PageCount())
	}
}

func TestOpenInvalidPDF(t *testing.T) {
	_, err := pdfpages.Open([]byte("this is not a pdf"))
	if err == nil {
		t.Fatal("expected error for invalid PDF")
	}
	if !errors.Is(err, pdfpages.ErrInvalidPDF) {
		t.Errorf("expected ErrInvalidPDF, got %v", err)
	}
}

func TestExtractPagesOrderAndDuplicates(t *testing.T) {
	doc, err := pdfpages.Open(pdftest.New(3))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	// 0-indexed selection [2 0 1 0] must yield a 4-page document.
	var buf bytes.Buffer
	if err := doc.ExtractPages(&buf, []int{2, 0, 1, 0}); err != nil {
		t.Fatalf("extract: %v", err)
	}

	out, err := pdfpages.Open(buf.Bytes())
	if err != nil {
		t.Fatalf("reading extracted PDF: %v", err)
	}
	defer out.Close()
	if out.PageCount() != 4 {
		t.Errorf("expected 4 pages, got %d", out.PageCount())
	}
}

func TestExtractPagesOutputOrder(t *testing.T) {
	// Source pages are distinguishable by width: page 1 is 100pt wide,
	// page 2 is 200pt, page 3 is 300pt.
	doc, err := pdfpages.Open(pdftest.NewWithWidths(100, 200, 300))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	var buf bytes.Buffer
	if err := doc.ExtractPages(&buf, []int{2, 0, 1, 0}); err != nil {
		t.Fatalf("extract: %v", err)
	}

	// The output must hold the source pages in exactly the order of the
	// selection, repeats included. A sorted or deduplicated result
	// would fail here.
	got := pageWidths(t, buf.Bytes())
	if want := []float64{300, 100, 200, 100}; !reflect.DeepEqual(got, want) {
		t.Errorf("output page widths = %v, want %v", got, want)
	}
}

func TestExtractPagesRoundTrip(t *testing.T) {
	doc, err := pdfpages.Open(pdftest.NewWithWidths(100, 200, 300))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	var buf bytes.Buffer
	if err := doc.ExtractPages(&buf, []int{0, 1, 2}); err != nil {
		t.Fatalf("extract: %v", err)
	}

	// Page i of the output matches source page i.
	got := pageWidths(t, buf.Bytes())
	if want := []float64{100, 200, 300}; !reflect.DeepEqual(got, want) {
		t.Errorf("output page widths = %v, want %v", got, want)
	}
}

func TestExtractSamePageTwice(t *testing.T) {
	doc, err := pdfpages.Open(pdftest.New(1))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	var buf bytes.Buffer
	if err := doc.ExtractPages(&buf, []int{0, 0}); err != nil {
		t.Fatalf("extract: %v", err)
	}

	out, err := pdfpages.Open(buf.Bytes())
	if err != nil {
		t.Fatalf("reading extracted PDF: %v", err)
	}
	defer out.Close()
	if out.PageCount() != 2 {
		t.Errorf("expected 2 pages, got %d", out.PageCount())
	}
}

func TestExtractPageIndexOutOfRange(t *testing.T) {
	doc, err := pdfpages.Open(pdftest.New(3))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	var buf bytes.Buffer
	if err := doc.ExtractPages(&buf, []int{3}); err == nil {
		t.Error("expected error for index past last page")
	}
	if buf.Len() != 0 {
		t.Errorf("no output should be written on failure, got %d bytes", buf.Len())
	}
	if err := doc.ExtractPages(&buf, []int{-1}); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestExtractNoPages(t *testing.T) {
	doc, err := pdfpages.Open(pdftest.New(2))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	var buf bytes.Buffer
	if err := doc.ExtractPages(&buf, nil); err == nil {
		t.Error("expected error for empty selection")
	}
}

func TestPageDims(t *testing.T) {
	doc, err := pdfpages.Open(pdftest.New(2))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	dims, err := doc.PageDims()
	if err != nil {
		t.Fatalf("dims: %v", err)
	}
	if len(dims) != 2 {
		t.Fatalf("expected 2 dims, got %d", len(dims))
	}
	for i, d := range dims {
		if d.Width != 612 || d.Height != 792 {
			t.Errorf("page %d: expected 612x792, got %gx%g", i+1, d.Width, d.Height)
		}
	}
}

func TestCloseIdempotent(t *testing.T) {
	doc, err := pdfpages.Open(pdftest.New(1))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	doc.Close()
	doc.Close() // must be safe to call twice

	var nilDoc *pdfpages.Document
	nilDoc.Close() // and on nil

	if doc.PageCount() != 0 {
		t.Errorf("closed document should report 0 pages, got %d", doc.PageCount())
	}
	var buf bytes.Buffer
	if err := doc.ExtractPages(&buf, []int{0}); !errors.Is(err, pdfpages.ErrClosed) {
		t.Errorf("expected ErrClosed after Close, got %v", err)
	}
}
