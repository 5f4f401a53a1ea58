package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lvillar/pdfpages"
)

// RegisterDefaultResources adds all built-in resources to the server.
// Resources use URI templates with the pdf:// scheme.
func RegisterDefaultResources(s *Server) {
	s.AddResource(Resource{
		URI:         "pdf://pages",
		Name:        "PDF Page Info",
		Description: "Get page information from a PDF (count, dimensions). Pass the file path as a query parameter: pdf://pages?path=/path/to/file.pdf",
		MIMEType:    "application/json",
		Handler:     handlePagesResource,
	})

	s.AddResource(Resource{
		URI:         "pdf://page-spec-grammar",
		Name:        "Page Specification Grammar",
		Description: "The grammar accepted by the fixed_pages and dynamic_pages tool arguments.",
		MIMEType:    "text/plain",
		Handler:     handleGrammarResource,
	})
}

func extractPathFromURI(uri string) string {
	// Parse path from URI like pdf://pages?path=/foo/bar.pdf
	if idx := strings.Index(uri, "path="); idx >= 0 {
		return uri[idx+5:]
	}
	return ""
}

func handlePagesResource(uri string) ([]ResourceContent, error) {
	path := extractPathFromURI(uri)
	if path == "" {
		return nil, fmt.Errorf("missing 'path' parameter in URI")
	}

	doc, err := pdfpages.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	dims, err := doc.PageDims()
	if err != nil {
		return nil, err
	}

	pages := make([]map[string]interface{}, len(dims))
	for i, d := range dims {
		pages[i] = map[string]interface{}{
			"page":   i + 1,
			"width":  d.Width,
			"height": d.Height,
		}
	}
	info := map[string]interface{}{
		"numPages": doc.PageCount(),
		"pages":    pages,
	}

	jsonBytes, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "application/json",
		Text:     string(jsonBytes),
	}}, nil
}

const pageSpecGrammar = `Page specification grammar (fixed_pages, dynamic_pages):

  spec   := token (',' token)*
  token  := single | range
  single := positive_integer
  range  := positive_integer '-' positive_integer

Pages are 1-indexed. A range is inclusive and its start must not exceed
its end. Whitespace is ignored. Order and duplicates are preserved:
"3,1-2,1" selects pages 3, 1, 2, 1 in exactly that order. No page may
be less than 1 or greater than the document's page count.

Examples: "1-3"   pages 1, 2, 3
          "5"     page 5
          "1,3,1-2" pages 1, 3, 1, 2
`

func handleGrammarResource(uri string) ([]ResourceContent, error) {
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "text/plain",
		Text:     pageSpecGrammar,
	}}, nil
}
