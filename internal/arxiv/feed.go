// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// ErrMalformedFeed marks an unparseable API response. Callers that
// collapse this to a "no results" message can still tell it apart from
// a well-formed empty feed via errors.Is.
var ErrMalformedFeed = errors.New("malformed arXiv feed")

// arXiv Atom feed XML structures. The feed uses the Atom namespace
// plus the arXiv extension namespace; encoding/xml matches the local
// element names either way.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Summary    string         `xml:"summary"`
	Published  string         `xml:"published"`
	Updated    string         `xml:"updated"`
	Authors    []atomAuthor   `xml:"author"`
	Categories []atomCategory `xml:"category"`
	Links      []atomLink     `xml:"link"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Title string `xml:"title,attr"`
}

// ParseFeed decodes an API response into Paper records, preserving the
// feed order. A well-formed feed with zero entries yields an empty
// slice and a nil error; unparseable XML yields ErrMalformedFeed.
func ParseFeed(data []byte) ([]types.Paper, error) {
	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}

	papers := make([]types.Paper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		p := types.Paper{
			ID:        CanonicalID(entry.ID),
			Title:     strings.TrimSpace(entry.Title),
			Summary:   strings.TrimSpace(entry.Summary),
			Published: entry.Published,
			Updated:   entry.Updated,
		}

		for _, a := range entry.Authors {
			if name := strings.TrimSpace(a.Name); name != "" {
				p.Authors = append(p.Authors, name)
			}
		}

		for _, c := range entry.Categories {
			if c.Term != "" {
				p.Categories = append(p.Categories, c.Term)
			}
		}

		// A missing link role leaves the field empty rather than
		// failing the entry.
		for _, l := range entry.Links {
			switch {
			case l.Title == "pdf":
				p.PDFURL = l.Href
			case l.Rel == "alternate":
				p.Link = l.Href
			}
		}

		papers = append(papers, p)
	}
	return papers, nil
}

// CanonicalID derives the canonical identifier from an entry id URL or
// a raw identifier: the final path segment with any trailing version
// marker stripped (e.g. "http://arxiv.org/abs/2301.07041v2" and
// "2301.07041v2" both yield "2301.07041").
func CanonicalID(id string) string {
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		id = id[idx+1:]
	}

	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}
