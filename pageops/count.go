package pageops

import (
	"fmt"
	"strconv"

	"github.com/lvillar/pdfpages"
)

// CountFile returns the number of pages in a PDF file.
func CountFile(path string) (int, error) {
	doc, err := pdfpages.OpenFile(path)
	if err != nil {
		return 0, err
	}
	defer doc.Close()
	return doc.PageCount(), nil
}

// PageLabels returns one label per page, zero-padded to the width of
// the total so the labels sort naturally: a 12-page document yields
// "page01" through "page12".
func PageLabels(total int) []string {
	width := len(strconv.Itoa(total))
	labels := make([]string, total)
	for i := range labels {
		labels[i] = fmt.Sprintf("page%0*d", width, i+1)
	}
	return labels
}

// PageLabelMap maps each page label to its 1-indexed page number.
// Because the labels are zero-padded, lexicographic key order matches
// page order when the map is marshaled to JSON.
func PageLabelMap(total int) map[string]int {
	m := make(map[string]int, total)
	for i, label := range PageLabels(total) {
		m[label] = i + 1
	}
	return m
}
