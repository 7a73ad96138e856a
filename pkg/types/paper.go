// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paper holds the metadata parsed from one arXiv feed entry.
type Paper struct {
	// ID is the canonical arXiv identifier with any version suffix
	// stripped (e.g. "2301.07041").
	ID string `json:"id" yaml:"id"`

	// Title is the paper title, surrounding whitespace trimmed.
	Title string `json:"title" yaml:"title"`

	// Summary is the paper abstract, surrounding whitespace trimmed.
	Summary string `json:"summary" yaml:"summary"`

	// Authors lists the author names in feed declaration order.
	Authors []string `json:"authors" yaml:"authors"`

	// Categories lists the subject category terms in feed order.
	Categories []string `json:"categories" yaml:"categories"`

	// Published and Updated are the entry timestamps as ISO 8601 strings.
	Published string `json:"published" yaml:"published"`
	Updated   string `json:"updated" yaml:"updated"`

	// Link is the abstract landing page URL (rel="alternate"), empty
	// when the feed entry carries no such link.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`

	// PDFURL is the PDF link advertised by the entry (title="pdf"),
	// empty when absent.
	PDFURL string `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`
}

// SortBy selects the arXiv result ordering.
type SortBy string

const (
	SortByRelevance       SortBy = "relevance"
	SortByLastUpdatedDate SortBy = "lastUpdatedDate"
	SortBySubmittedDate   SortBy = "submittedDate"
)

// Valid reports whether s is one of the orderings the API accepts.
func (s SortBy) Valid() bool {
	switch s {
	case SortByRelevance, SortByLastUpdatedDate, SortBySubmittedDate:
		return true
	}
	return false
}

// SearchCriteria holds the structured search parameters for one query.
type SearchCriteria struct {
	// Query is the free-text search term.
	Query string `json:"query" yaml:"query"`

	// Author filters by author name. Empty means no author filter.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Category filters by subject category (e.g. "cs.AI"). Empty means
	// no category filter.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// MaxResults bounds the result count. Values above the API ceiling
	// are clamped, not rejected.
	MaxResults int `json:"max_results" yaml:"max_results"`

	// SortBy selects the ordering; defaults to relevance.
	SortBy SortBy `json:"sort_by" yaml:"sort_by"`
}
