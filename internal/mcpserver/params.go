// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mcpserver

type SearchParams struct {
	Query      string `json:"query" mcp:"Search query (keywords, title, etc.)"`
	Author     string `json:"author,omitempty" mcp:"Author name (optional)"`
	Category   string `json:"category,omitempty" mcp:"arXiv category (e.g., cs.AI, math.GT)"`
	MaxResults int    `json:"max_results,omitempty" mcp:"Maximum number of results (default: 10)"`
	SortBy     string `json:"sort_by,omitempty" mcp:"Sort order: relevance, lastUpdatedDate, or submittedDate"`
}

type DetailsParams struct {
	ArxivID string `json:"arxiv_id" mcp:"arXiv paper ID (e.g., 2301.07041)"`
}

type ContentParams struct {
	ArxivID  string `json:"arxiv_id" mcp:"arXiv paper ID (e.g., 2301.07041)"`
	MaxPages int    `json:"max_pages,omitempty" mcp:"Maximum number of pages to extract (default: 20)"`
}

type SummarizeParams struct {
	ArxivID string `json:"arxiv_id" mcp:"arXiv paper ID (e.g., 2301.07041)"`
}
