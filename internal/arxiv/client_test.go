// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

func testCfg() types.ServiceConfig {
	return types.ServiceConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "arxiv-mcp-test/0.1",
		},
		MaxResults:      10,
		RequestInterval: time.Millisecond,
	}
}

func TestClientSearch(t *testing.T) {
	var query string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, sampleFeedXML)
	}))
	defer ts.Close()

	cfg := testCfg()
	cfg.APIBaseURL = ts.URL
	c := NewClient(cfg)
	papers, err := c.Search(context.Background(), types.SearchCriteria{
		Query:      "attention",
		MaxResults: 5,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}
	if papers[0].ID != "1706.03762" {
		t.Errorf("ID = %q", papers[0].ID)
	}

	for _, want := range []string{"search_query=all:attention", "start=0", "max_results=5", "sortBy=relevance", "sortOrder=descending"} {
		if !strings.Contains(query, want) {
			t.Errorf("query %q missing %q", query, want)
		}
	}
}

func TestClientSearchInvalidSortFallsBack(t *testing.T) {
	var query string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		fmt.Fprint(w, sampleFeedXML)
	}))
	defer ts.Close()

	cfg := testCfg()
	cfg.APIBaseURL = ts.URL
	c := NewClient(cfg)
	_, err := c.Search(context.Background(), types.SearchCriteria{Query: "x", SortBy: "bogus"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !strings.Contains(query, "sortBy=relevance") {
		t.Errorf("query %q should fall back to relevance", query)
	}
}

func TestClientLookup(t *testing.T) {
	var query string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		fmt.Fprint(w, sampleFeedXML)
	}))
	defer ts.Close()

	cfg := testCfg()
	cfg.APIBaseURL = ts.URL
	c := NewClient(cfg)
	papers, err := c.Lookup(context.Background(), "1706.03762v5")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(papers) == 0 {
		t.Fatal("expected papers")
	}
	// Versioned input is canonicalized before the id_list request.
	if !strings.Contains(query, "id_list=1706.03762&") {
		t.Errorf("query %q should use the canonical id", query)
	}
}

func TestClientNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	cfg := testCfg()
	cfg.APIBaseURL = ts.URL
	c := NewClient(cfg)
	_, err := c.Search(context.Background(), types.SearchCriteria{Query: "x"})
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Errorf("expected HTTP 503 error, got: %v", err)
	}
}
