package pageops

import (
	"fmt"
	"strings"
	"unicode"
)

// BaseName strips a trailing ".pdf" (any case) from a file name.
func BaseName(filename string) string {
	if strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return filename[:len(filename)-4]
	}
	return filename
}

// SinglePageName names the output of a single-page extraction:
// report.pdf, page 3 -> report_page3.pdf.
func SinglePageName(filename string, page int) string {
	return fmt.Sprintf("%s_page%d.pdf", BaseName(filename), page)
}

// SplitPageName names one per-page file produced by a split. It uses
// the same scheme as SinglePageName.
func SplitPageName(filename string, page int) string {
	return SinglePageName(filename, page)
}

// SelectionName names the output of a page selection extraction
// deterministically from the specs that produced it:
//
//	report.pdf, dynamic "1-3,5"            -> report_pages_1to3_5.pdf
//	report.pdf, fixed "2", dynamic "1-3,5" -> report_fixed_2_plus_1to3_5.pdf
func SelectionName(filename, fixedSpec, dynamicSpec string) string {
	base := BaseName(filename)
	dynamic := specDesc(dynamicSpec)
	if fixed := specDesc(fixedSpec); fixed != "" {
		return fmt.Sprintf("%s_fixed_%s_plus_%s.pdf", base, fixed, dynamic)
	}
	return fmt.Sprintf("%s_pages_%s.pdf", base, dynamic)
}

// specDesc turns a page spec into a filename-safe description:
// commas become underscores, hyphens become "to".
func specDesc(spec string) string {
	spec = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, spec)
	spec = strings.ReplaceAll(spec, ",", "_")
	return strings.ReplaceAll(spec, "-", "to")
}
