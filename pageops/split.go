package pageops

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lvillar/pdfpages"
)

// Split writes every page of doc as an individual one-page PDF into
// outputDir. Files are named after the source: doc_page1.pdf,
// doc_page2.pdf, etc., where filename is the source file name.
//
// A split either produces every page file or none: if any page fails,
// the files already written are removed before the error is returned.
func Split(doc *pdfpages.Document, outputDir, filename string) error {
	if info, err := os.Stat(outputDir); err != nil {
		return fmt.Errorf("pageops: output directory: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("pageops: %s is not a directory", outputDir)
	}

	written := make([]string, 0, doc.PageCount())
	for page := 1; page <= doc.PageCount(); page++ {
		outputPath := filepath.Join(outputDir, SplitPageName(filename, page))
		if err := writePage(doc, outputPath, page); err != nil {
			for _, path := range written {
				os.Remove(path)
			}
			return fmt.Errorf("pageops: splitting page %d: %w", page, err)
		}
		written = append(written, outputPath)
	}
	return nil
}

// SplitFile splits a PDF file into per-page files in outputDir.
func SplitFile(inputPath, outputDir string) error {
	doc, err := pdfpages.OpenFile(inputPath)
	if err != nil {
		return err
	}
	defer doc.Close()
	return Split(doc, outputDir, filepath.Base(inputPath))
}

// SplitToZip writes every page of doc as an individual one-page PDF
// entry into a zip archive written to w.
func SplitToZip(w io.Writer, doc *pdfpages.Document, filename string) error {
	zw := zip.NewWriter(w)
	for page := 1; page <= doc.PageCount(); page++ {
		entry, err := zw.Create(SplitPageName(filename, page))
		if err != nil {
			return fmt.Errorf("pageops: zip entry for page %d: %w", page, err)
		}
		if err := doc.ExtractPage(entry, page-1); err != nil {
			return fmt.Errorf("pageops: splitting page %d: %w", page, err)
		}
	}
	return zw.Close()
}

func writePage(doc *pdfpages.Document, outputPath string, page int) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := doc.ExtractPage(f, page-1); err != nil {
		f.Close()
		os.Remove(outputPath)
		return err
	}
	return f.Close()
}
