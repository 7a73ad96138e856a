// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv queries the arXiv metadata API and parses its Atom
// feed responses into Paper records.
package arxiv

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/pdiddy/arxiv-mcp/internal/httputil"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Client talks to the arXiv metadata API. One long-lived client is
// shared across operations; the limiter spaces requests per arXiv's
// usage policy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxResults int
}

// NewClient builds a Client from the service configuration. Tests point
// APIBaseURL at an httptest server.
func NewClient(cfg types.ServiceConfig) *Client {
	cfg = cfg.Defaults()
	return &Client{
		baseURL:    cfg.APIBaseURL,
		httpClient: httputil.NewClient(cfg.HTTPConfig),
		limiter:    rate.NewLimiter(rate.Every(cfg.RequestInterval), 1),
		maxResults: cfg.MaxResults,
	}
}

// Search runs a structured query and returns the matching papers in
// the order the API ranked them. Zero matches is a valid empty result,
// not an error.
func (c *Client) Search(ctx context.Context, criteria types.SearchCriteria) ([]types.Paper, error) {
	sortBy := criteria.SortBy
	if !sortBy.Valid() {
		sortBy = types.SortByRelevance
	}

	url := fmt.Sprintf("%s?search_query=%s&start=0&max_results=%d&sortBy=%s&sortOrder=descending",
		c.baseURL, BuildQuery(criteria), ClampMaxResults(criteria.MaxResults, c.maxResults), sortBy)

	return c.fetchFeed(ctx, url)
}

// Lookup fetches the single entry for one identifier via id_list. The
// identifier is canonicalized first so versioned inputs resolve to the
// same record. A missing paper yields an empty slice.
func (c *Client) Lookup(ctx context.Context, id string) ([]types.Paper, error) {
	url := fmt.Sprintf("%s?id_list=%s&max_results=1", c.baseURL, CanonicalID(id))
	return c.fetchFeed(ctx, url)
}

func (c *Client) fetchFeed(ctx context.Context, url string) ([]types.Paper, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading arXiv response: %w", err)
	}

	return ParseFeed(data)
}
