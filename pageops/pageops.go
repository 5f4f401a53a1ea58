// Package pageops implements page-level operations on existing PDF
// documents: extracting single pages, assembling documents from
// flexible page selections, counting pages, and splitting a document
// into per-page files.
//
// Page selections are written in the pagerange grammar ("1-3,5,7-9").
// A selection may carry an optional "fixed" spec whose pages are always
// placed before the "dynamic" pages in the output, regardless of their
// numeric values.
package pageops

import (
	"errors"
	"fmt"

	"github.com/lvillar/pdfpages/pagerange"
)

// Sentinel errors for page selection failures.
var (
	ErrEmptySpec      = errors.New("pageops: dynamic page specification selects no pages")
	ErrPageOutOfRange = errors.New("pageops: page number out of range")
)

// BuildSelection parses the optional fixed spec and the required
// dynamic spec, validates every page number against pageCount, and
// returns the combined 0-indexed selection plan: fixed pages first,
// then dynamic pages, order and duplicates preserved.
//
// Parser errors propagate unchanged (they satisfy errors.Is against the
// pagerange sentinels). A dynamic spec that selects no pages fails with
// ErrEmptySpec; any page outside 1..pageCount fails with
// ErrPageOutOfRange before anything is extracted.
func BuildSelection(fixedSpec, dynamicSpec string, pageCount int) ([]int, error) {
	fixed, err := pagerange.Parse(fixedSpec)
	if err != nil {
		return nil, fmt.Errorf("pageops: fixed pages: %w", err)
	}
	dynamic, err := pagerange.Parse(dynamicSpec)
	if err != nil {
		return nil, fmt.Errorf("pageops: dynamic pages: %w", err)
	}
	if len(dynamic) == 0 {
		return nil, ErrEmptySpec
	}

	plan := make([]int, 0, len(fixed)+len(dynamic))
	for _, seq := range [][]int{fixed, dynamic} {
		for _, p := range seq {
			if p < 1 || p > pageCount {
				return nil, fmt.Errorf("%w: page %d (document has pages 1-%d)",
					ErrPageOutOfRange, p, pageCount)
			}
			plan = append(plan, p-1)
		}
	}
	return plan, nil
}
