package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-mcp/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ServiceConfig holds settings for the retrieval service.
type ServiceConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIBaseURL is the arXiv metadata query endpoint.
	APIBaseURL string `json:"api_base_url" yaml:"api_base_url"`

	// PDFBaseURL is the PDF endpoint prefix; the document URL is
	// PDFBaseURL + identifier + ".pdf".
	PDFBaseURL string `json:"pdf_base_url" yaml:"pdf_base_url"`

	// MaxResults is the default result bound for searches (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// DefaultPageLimit bounds PDF text extraction when the caller does
	// not override it (default 20).
	DefaultPageLimit int `json:"default_page_limit" yaml:"default_page_limit"`

	// RequestInterval is the minimum spacing between arXiv API
	// requests. arXiv asks clients to stay at or below one request
	// every 3 seconds.
	RequestInterval time.Duration `json:"request_interval" yaml:"request_interval"`
}

// Defaults fills zero-valued fields with their documented defaults.
func (c ServiceConfig) Defaults() ServiceConfig {
	if c.APIBaseURL == "" {
		c.APIBaseURL = "https://export.arxiv.org/api/query"
	}
	if c.PDFBaseURL == "" {
		c.PDFBaseURL = "https://arxiv.org/pdf/"
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "arxiv-mcp/0.1"
	}
	if c.MaxResults <= 0 {
		c.MaxResults = 10
	}
	if c.DefaultPageLimit <= 0 {
		c.DefaultPageLimit = 20
	}
	if c.RequestInterval == 0 {
		c.RequestInterval = 3 * time.Second
	}
	return c
}
