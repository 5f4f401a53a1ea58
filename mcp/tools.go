package mcp

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lvillar/pdfpages"
	"github.com/lvillar/pdfpages/pageops"
)

// RegisterDefaultTools adds all built-in PDF page tools to the server.
func RegisterDefaultTools(s *Server) {
	s.AddTool(extractPageTool())
	s.AddTool(extractPagesTool())
	s.AddTool(countPagesTool())
	s.AddTool(splitPDFTool())
	s.AddTool(pdfInfoTool())
}

// sourceProperties are the input-schema properties shared by every
// tool: the PDF can be given as a file path or as base64 data.
func sourceProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Path to the PDF file. Provide either 'path' or 'data'.",
		},
		"data": map[string]interface{}{
			"type":        "string",
			"description": "Base64-encoded PDF content. Provide either 'path' or 'data'.",
		},
		"filename": map[string]interface{}{
			"type":        "string",
			"description": "Original file name, used to name outputs when 'data' is given (default: document.pdf).",
		},
	}
}

// loadDocument opens the PDF referenced by the tool arguments and
// returns it together with the source file name used for output naming.
// The caller owns the returned document and must close it.
func loadDocument(args map[string]interface{}) (*pdfpages.Document, string, error) {
	if path, ok := args["path"].(string); ok && path != "" {
		doc, err := pdfpages.OpenFile(path)
		if err != nil {
			return nil, "", err
		}
		return doc, filepath.Base(path), nil
	}

	if data, ok := args["data"].(string); ok && data != "" {
		raw, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, "", fmt.Errorf("decoding 'data': %w", err)
		}
		doc, err := pdfpages.Open(raw)
		if err != nil {
			return nil, "", err
		}
		name := "document.pdf"
		if fn, ok := args["filename"].(string); ok && fn != "" {
			name = fn
		}
		return doc, name, nil
	}

	return nil, "", fmt.Errorf("either 'path' or 'data' is required")
}

// deliverPDF writes the assembled PDF to outputPath when given,
// otherwise returns it inline as base64. message describes the
// operation that produced it.
func deliverPDF(args map[string]interface{}, pdf []byte, name, message string) (ToolResult, error) {
	if outputPath, ok := args["outputPath"].(string); ok && outputPath != "" {
		if err := os.WriteFile(outputPath, pdf, 0644); err != nil {
			return ToolResult{}, fmt.Errorf("writing file: %w", err)
		}
		return ToolResult{
			Content: []ContentBlock{{
				Type: "text",
				Text: fmt.Sprintf("%s. Saved as %s (%d bytes).", message, outputPath, len(pdf)),
			}},
		}, nil
	}

	encoded := base64.StdEncoding.EncodeToString(pdf)
	return ToolResult{
		Content: []ContentBlock{{
			Type: "text",
			Text: fmt.Sprintf("%s. File name: %s (%d bytes). Base64 data:\n%s", message, name, len(pdf), encoded),
		}},
	}, nil
}

func extractPageTool() Tool {
	props := sourceProperties()
	props["page"] = map[string]interface{}{
		"type":        "number",
		"description": "Page number to extract (1-indexed)",
	}
	props["outputPath"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional file path to save the extracted page. If omitted, returns base64.",
	}
	return Tool{
		Name:        "extract_page",
		Description: "Extract a single page from a PDF as a new one-page PDF document.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": props,
			"required":   []string{"page"},
		},
		Handler: handleExtractPage,
	}
}

func handleExtractPage(args map[string]interface{}) (ToolResult, error) {
	pageF, ok := args["page"].(float64)
	if !ok {
		return ToolResult{}, fmt.Errorf("missing 'page' argument")
	}
	page := int(pageF)
	if float64(page) != pageF {
		return ToolResult{}, fmt.Errorf("'page' must be an integer, got %v", pageF)
	}

	doc, name, err := loadDocument(args)
	if err != nil {
		return ToolResult{}, err
	}
	defer doc.Close()

	var buf bytes.Buffer
	if err := pageops.ExtractSinglePage(&buf, doc, page); err != nil {
		return ToolResult{}, err
	}

	return deliverPDF(args, buf.Bytes(), pageops.SinglePageName(name, page),
		fmt.Sprintf("Successfully extracted page %d from PDF", page))
}

func extractPagesTool() Tool {
	props := sourceProperties()
	props["dynamic_pages"] = map[string]interface{}{
		"type":        "string",
		"description": "Pages to extract (1-indexed). Order and duplicates are preserved. Examples: \"1-3\", \"5\", \"1,3,1-2\".",
	}
	props["fixed_pages"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional pages to always include at the beginning, before the dynamic pages. Same grammar. Leave empty for none.",
	}
	props["outputPath"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional file path to save the assembled PDF. If omitted, returns base64.",
	}
	return Tool{
		Name:        "extract_pages",
		Description: "Extract a flexible set of pages from a PDF into a new document. The output contains the fixed pages (if any) followed by the dynamic pages, preserving order and duplicates exactly as specified.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": props,
			"required":   []string{"dynamic_pages"},
		},
		Handler: handleExtractPages,
	}
}

func handleExtractPages(args map[string]interface{}) (ToolResult, error) {
	dynamic, ok := args["dynamic_pages"].(string)
	if !ok {
		return ToolResult{}, fmt.Errorf("missing 'dynamic_pages' argument")
	}
	fixed, _ := args["fixed_pages"].(string)

	doc, name, err := loadDocument(args)
	if err != nil {
		return ToolResult{}, err
	}
	defer doc.Close()

	var buf bytes.Buffer
	n, err := pageops.ExtractSelection(&buf, doc, fixed, dynamic)
	if err != nil {
		return ToolResult{}, err
	}

	message := fmt.Sprintf("Successfully extracted %d pages '%s' from PDF", n, dynamic)
	if fixed != "" {
		message = fmt.Sprintf("Successfully extracted %d pages: fixed pages '%s' followed by dynamic pages '%s'", n, fixed, dynamic)
	}
	return deliverPDF(args, buf.Bytes(), pageops.SelectionName(name, fixed, dynamic), message)
}

func countPagesTool() Tool {
	return Tool{
		Name:        "count_pages",
		Description: "Count the number of pages in a PDF. Returns the total plus a page-label map (page01, page02, ...).",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": sourceProperties(),
		},
		Handler: handleCountPages,
	}
}

func handleCountPages(args map[string]interface{}) (ToolResult, error) {
	doc, _, err := loadDocument(args)
	if err != nil {
		return ToolResult{}, err
	}
	defer doc.Close()

	total := doc.PageCount()
	labels, err := json.Marshal(pageops.PageLabelMap(total))
	if err != nil {
		return ToolResult{}, fmt.Errorf("encoding page labels: %w", err)
	}

	return ToolResult{
		Content: []ContentBlock{
			{Type: "text", Text: fmt.Sprintf("%d", total)},
			{Type: "text", MIMEType: "application/json", Text: string(labels)},
		},
	}, nil
}

func splitPDFTool() Tool {
	props := sourceProperties()
	props["outputDir"] = map[string]interface{}{
		"type":        "string",
		"description": "Directory to write one PDF per page into. If omitted, returns a base64 zip archive of the pages.",
	}
	return Tool{
		Name:        "split_pdf",
		Description: "Split a PDF into individual one-page PDF files, one per source page.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": props,
		},
		Handler: handleSplitPDF,
	}
}

func handleSplitPDF(args map[string]interface{}) (ToolResult, error) {
	doc, name, err := loadDocument(args)
	if err != nil {
		return ToolResult{}, err
	}
	defer doc.Close()

	total := doc.PageCount()

	if outputDir, ok := args["outputDir"].(string); ok && outputDir != "" {
		if err := pageops.Split(doc, outputDir, name); err != nil {
			return ToolResult{}, err
		}
		return ToolResult{
			Content: []ContentBlock{{
				Type: "text",
				Text: fmt.Sprintf("Successfully split PDF into %d pages in %s", total, outputDir),
			}},
		}, nil
	}

	var buf bytes.Buffer
	if err := pageops.SplitToZip(&buf, doc, name); err != nil {
		return ToolResult{}, err
	}
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return ToolResult{
		Content: []ContentBlock{{
			Type: "text",
			Text: fmt.Sprintf("Successfully split PDF into %d pages (%d bytes zipped). Base64 zip data:\n%s", total, buf.Len(), encoded),
		}},
	}, nil
}

func pdfInfoTool() Tool {
	return Tool{
		Name:        "pdf_info",
		Description: "Get information about a PDF: page count and per-page dimensions.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": sourceProperties(),
		},
		Handler: handlePDFInfo,
	}
}

func handlePDFInfo(args map[string]interface{}) (ToolResult, error) {
	doc, name, err := loadDocument(args)
	if err != nil {
		return ToolResult{}, err
	}
	defer doc.Close()

	dims, err := doc.PageDims()
	if err != nil {
		return ToolResult{}, err
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
		"filename": name,
		"numPages": doc.PageCount(),
		"pages":    pages,
	}

	jsonBytes, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return ToolResult{}, fmt.Errorf("encoding info: %w", err)
	}
	return ToolResult{
		Content: []ContentBlock{{Type: "text", Text: string(jsonBytes)}},
	}, nil
}
