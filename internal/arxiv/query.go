// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"net/url"
	"strings"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// maxResultsCeiling is the largest max_results the arXiv API honors in
// a single request.
const maxResultsCeiling = 100

// BuildQuery constructs the search_query parameter from the criteria.
// Each supplied filter is field-prefixed and percent-encoded, and
// filters are combined with AND. Absent filters are omitted.
func BuildQuery(c types.SearchCriteria) string {
	var terms []string

	if c.Query != "" {
		terms = append(terms, "all:"+url.QueryEscape(c.Query))
	}
	if c.Author != "" {
		terms = append(terms, "au:"+url.QueryEscape(c.Author))
	}
	if c.Category != "" {
		terms = append(terms, "cat:"+url.QueryEscape(c.Category))
	}

	return strings.Join(terms, "+AND+")
}

// ClampMaxResults bounds n to the API ceiling. Over-large requests are
// clamped silently rather than rejected; non-positive values fall back
// to def.
func ClampMaxResults(n, def int) int {
	if n <= 0 {
		n = def
	}
	if n > maxResultsCeiling {
		return maxResultsCeiling
	}
	return n
}
