package pageops

import (
	"fmt"
	"io"
	"os"

	"github.com/lvillar/pdfpages"
)

// ExtractSelection assembles a new PDF from doc according to the fixed
// and dynamic page specs and writes it to w. It returns the number of
// pages in the output. No bytes are written unless the whole selection
// validates.
func ExtractSelection(w io.Writer, doc *pdfpages.Document, fixedSpec, dynamicSpec string) (int, error) {
	plan, err := BuildSelection(fixedSpec, dynamicSpec, doc.PageCount())
	if err != nil {
		return 0, err
	}
	if err := doc.ExtractPages(w, plan); err != nil {
		return 0, err
	}
	return len(plan), nil
}

// ExtractSelectionFile extracts a page selection from one file into
// another. The output file is only created once the selection has been
// validated, and is removed again if writing fails.
func ExtractSelectionFile(inputPath, outputPath, fixedSpec, dynamicSpec string) (int, error) {
	doc, err := pdfpages.OpenFile(inputPath)
	if err != nil {
		return 0, err
	}
	defer doc.Close()

	plan, err := BuildSelection(fixedSpec, dynamicSpec, doc.PageCount())
	if err != nil {
		return 0, err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("pageops: creating %s: %w", outputPath, err)
	}
	if err := doc.ExtractPages(f, plan); err != nil {
		f.Close()
		os.Remove(outputPath)
		return 0, err
	}
	if err := f.Close(); err != nil {
		os.Remove(outputPath)
		return 0, fmt.Errorf("pageops: writing %s: %w", outputPath, err)
	}
	return len(plan), nil
}

// ExtractSinglePage writes the given 1-indexed page of doc as a
// one-page PDF.
func ExtractSinglePage(w io.Writer, doc *pdfpages.Document, page int) error {
	if page < 1 || page > doc.PageCount() {
		return fmt.Errorf("%w: page %d (document has pages 1-%d)",
			ErrPageOutOfRange, page, doc.PageCount())
	}
	return doc.ExtractPage(w, page-1)
}

// ExtractSinglePageFile extracts a single 1-indexed page from one file
// into another.
func ExtractSinglePageFile(inputPath, outputPath string, page int) error {
	doc, err := pdfpages.OpenFile(inputPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	if page < 1 || page > doc.PageCount() {
		return fmt.Errorf("%w: page %d (document has pages 1-%d)",
			ErrPageOutOfRange, page, doc.PageCount())
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("pageops: creating %s: %w", outputPath, err)
	}
	if err := doc.ExtractPage(f, page-1); err != nil {
		f.Close()
		os.Remove(outputPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("pageops: writing %s: %w", outputPath, err)
	}
	return nil
}
