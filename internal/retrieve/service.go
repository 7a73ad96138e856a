// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package retrieve orchestrates arXiv metadata queries, PDF text
// extraction, and the extraction cache behind four plain-text
// operations: search, details, content, and summarize.
package retrieve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-mcp/internal/arxiv"
	"github.com/pdiddy/arxiv-mcp/internal/httputil"
	"github.com/pdiddy/arxiv-mcp/internal/pdftext"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

const (
	// summaryPageLimit bounds the content preview fetched by Summarize.
	summaryPageLimit = 3

	// minPreviewLength is the extracted-content length below which
	// Summarize skips the preview section.
	minPreviewLength = 1000

	// previewParagraphs and previewMaxChars bound the preview section.
	previewParagraphs = 5
	previewMaxChars   = 1500
)

// Service implements the retrieval operations. One service instance
// owns one arXiv client, one PDF fetcher, and one extraction cache;
// operations may run concurrently across callers.
type Service struct {
	arxiv   *arxiv.Client
	fetcher *pdftext.Fetcher
	cache   *pdftext.Cache
	cfg     types.ServiceConfig
	log     *zap.Logger
}

// NewService builds a Service from the configuration. The cache starts
// empty and lives as long as the service.
func NewService(cfg types.ServiceConfig, log *zap.Logger) *Service {
	cfg = cfg.Defaults()
	return &Service{
		arxiv: arxiv.NewClient(cfg),
		fetcher: &pdftext.Fetcher{
			Client:  httputil.NewClient(cfg.HTTPConfig),
			BaseURL: cfg.PDFBaseURL,
		},
		cache: pdftext.NewCache(),
		cfg:   cfg,
		log:   log,
	}
}

// SearchPapers runs a structured search and returns the parsed records
// in API ranking order. A malformed feed is logged and collapsed to
// zero results so callers see the same "no results" surface.
func (s *Service) SearchPapers(ctx context.Context, criteria types.SearchCriteria) ([]types.Paper, error) {
	papers, err := s.arxiv.Search(ctx, criteria)
	if err != nil {
		if errors.Is(err, arxiv.ErrMalformedFeed) {
			s.log.Warn("search feed unparseable, treating as zero results", zap.Error(err))
			return nil, nil
		}
		return nil, err
	}
	return papers, nil
}

// Search renders the search results as a numbered plain-text listing.
// Zero matches yields the no-results message, never an error.
func (s *Service) Search(ctx context.Context, criteria types.SearchCriteria) (string, error) {
	papers, err := s.SearchPapers(ctx, criteria)
	if err != nil {
		return "", err
	}
	if len(papers) == 0 {
		return "No papers found matching your query.", nil
	}
	return formatSearch(papers), nil
}

// Details looks up a single paper and renders its full detail block
// with the untruncated abstract.
func (s *Service) Details(ctx context.Context, id string) (string, error) {
	paper, err := s.lookup(ctx, id)
	if err != nil {
		return "", err
	}
	if paper == nil {
		return notFoundMessage(id), nil
	}
	return formatDetails(paper), nil
}

// Content returns the extracted text for a paper, consulting the cache
// before any network or extraction work. Network and extraction
// failures are both returned as readable text, never as an error.
func (s *Service) Content(ctx context.Context, id string, pageLimit int) (string, error) {
	text, err := s.contentFor(ctx, id, pageLimit)
	if err != nil {
		s.log.Error("content retrieval failed", zap.String("id", id), zap.Error(err))
		return fmt.Sprintf("Error extracting PDF content: %v", err), nil
	}
	return text, nil
}

// Summarize renders the detail block and appends a short content
// preview. A preview failure is logged and swallowed: the caller gets
// the detail block alone.
func (s *Service) Summarize(ctx context.Context, id string) (string, error) {
	paper, err := s.lookup(ctx, id)
	if err != nil {
		return "", err
	}
	if paper == nil {
		return notFoundMessage(id), nil
	}
	details := formatDetails(paper)

	content, err := s.contentFor(ctx, paper.ID, summaryPageLimit)
	if err != nil {
		s.log.Warn("content preview failed during summarize",
			zap.String("id", paper.ID), zap.Error(err))
		return details, nil
	}
	if len(content) <= minPreviewLength {
		return details, nil
	}

	paragraphs := strings.Split(content, "\n\n")
	if len(paragraphs) > previewParagraphs {
		paragraphs = paragraphs[:previewParagraphs]
	}
	intro := truncate(strings.Join(paragraphs, "\n\n"), previewMaxChars)

	return details + "\n\n**Introduction/Content Preview:**\n" + intro + "...", nil
}

// lookup fetches the single entry for id. A missing paper and a
// malformed lookup feed both return nil; the latter is logged so the
// conditions stay distinguishable in diagnostics.
func (s *Service) lookup(ctx context.Context, id string) (*types.Paper, error) {
	papers, err := s.arxiv.Lookup(ctx, id)
	if err != nil {
		if errors.Is(err, arxiv.ErrMalformedFeed) {
			s.log.Warn("lookup feed unparseable, treating as not found",
				zap.String("id", id), zap.Error(err))
			return nil, nil
		}
		return nil, err
	}
	if len(papers) == 0 {
		return nil, nil
	}
	return &papers[0], nil
}

// contentFor returns the memoized extraction for (id, pageLimit),
// filling the cache on a miss. Fetch failures propagate as errors and
// are not cached; extraction failures render as text and are cached
// like any other extraction result.
func (s *Service) contentFor(ctx context.Context, id string, pageLimit int) (string, error) {
	if pageLimit <= 0 {
		pageLimit = s.cfg.DefaultPageLimit
	}
	canonical := arxiv.CanonicalID(id)
	key := pdftext.Key{ID: canonical, PageLimit: pageLimit}

	return s.cache.GetOrFill(key, func() (string, error) {
		data, err := s.fetcher.Fetch(ctx, canonical)
		if err != nil {
			return "", err
		}
		return pdftext.Extract(data, pageLimit).Render(), nil
	})
}

func notFoundMessage(id string) string {
	return fmt.Sprintf("Paper with ID %s not found.", id)
}
