package pdfpages

import (
	"errors"
	"fmt"
)

// Sentinel errors for document-level failure conditions.
var (
	ErrInvalidPDF = errors.New("pdfpages: not a valid PDF document")
	ErrNoPages    = errors.New("pdfpages: document has no pages")
	ErrClosed     = errors.New("pdfpages: document is closed")
)

// DocumentError represents an error that occurred during a specific
// document operation. It wraps an underlying error and includes the
// operation name for context.
type DocumentError struct {
	Op  string // operation name, e.g. "Open", "ExtractPages"
	Err error  // underlying error
}

func (e *DocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pdfpages.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pdfpages.%s: unknown error", e.Op)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

func newDocumentError(op string, err error) *DocumentError {
	return &DocumentError{Op: op, Err: err}
}
