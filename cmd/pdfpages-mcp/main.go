// Command pdfpages-mcp is an MCP (Model Context Protocol) server that
// exposes PDF page-manipulation capabilities to AI assistants.
//
// # Installation
//
//	go install github.com/lvillar/pdfpages/cmd/pdfpages-mcp@latest
//
// # Configuration for Claude Desktop
//
// Add to ~/.config/claude/claude_desktop_config.json:
//
//	{
//	  "mcpServers": {
//	    "pdfpages": {
//	      "command": "pdfpages-mcp"
//	    }
//	  }
//	}
//
// # Available Tools
//
//   - extract_page: Extract a single page as a new PDF
//   - extract_pages: Extract a flexible page selection (fixed + dynamic specs)
//   - count_pages: Count pages, with a padded page-label map
//   - split_pdf: Split into one PDF per page
//   - pdf_info: Page count and per-page dimensions
//
// # Available Resources
//
//   - pdf://pages?path=... : Page count and dimensions
//   - pdf://page-spec-grammar : The page specification grammar
package main

import (
	"fmt"
	"os"

	"github.com/lvillar/pdfpages/mcp"
)

func main() {
	server := mcp.NewServer()

	mcp.RegisterDefaultTools(server)
	mcp.RegisterDefaultResources(server)

	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "pdfpages-mcp: %v\n", err)
		os.Exit(1)
	}
}
