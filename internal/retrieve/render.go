// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retrieve

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// abstractPreviewChars bounds the abstract shown per search result.
const abstractPreviewChars = 200

// formatSearch renders search results as a numbered listing. Each
// paper gets a fixed multi-line block with the abstract truncated.
func formatSearch(papers []types.Paper) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d papers:\n\n", len(papers))

	for i, p := range papers {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, p.Title)
		fmt.Fprintf(&b, "   Authors: %s\n", strings.Join(p.Authors, ", "))
		fmt.Fprintf(&b, "   arXiv ID: %s\n", p.ID)
		fmt.Fprintf(&b, "   Published: %s\n", p.Published)
		fmt.Fprintf(&b, "   Categories: %s\n", strings.Join(p.Categories, ", "))
		fmt.Fprintf(&b, "   Abstract: %s...\n", truncate(p.Summary, abstractPreviewChars))
		fmt.Fprintf(&b, "   URL: %s\n\n", p.Link)
	}
	return b.String()
}

// formatDetails renders one paper with the full abstract and both
// timestamps.
func formatDetails(p *types.Paper) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", p.Title)
	fmt.Fprintf(&b, "**arXiv ID:** %s\n", p.ID)
	fmt.Fprintf(&b, "**Authors:** %s\n", strings.Join(p.Authors, ", "))
	fmt.Fprintf(&b, "**Published:** %s\n", p.Published)
	fmt.Fprintf(&b, "**Updated:** %s\n", p.Updated)
	fmt.Fprintf(&b, "**Categories:** %s\n", strings.Join(p.Categories, ", "))
	fmt.Fprintf(&b, "**URL:** %s\n", p.Link)
	fmt.Fprintf(&b, "**PDF:** %s\n\n", p.PDFURL)
	fmt.Fprintf(&b, "**Abstract:**\n%s\n", p.Summary)
	return b.String()
}

// FormatJSON writes papers as indented JSON to w.
func FormatJSON(papers []types.Paper, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

// FormatYAML writes papers as YAML to w.
func FormatYAML(papers []types.Paper, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(papers)
}

// truncate cuts s after max characters. Cutting runes, not bytes,
// keeps a multibyte character at the boundary from being split into
// invalid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
