// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcpserver exposes the retrieval operations as MCP tools and
// resources over stdio. Stdout carries the protocol stream, so all
// logging goes to stderr.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-mcp/internal/arxiv"
	"github.com/pdiddy/arxiv-mcp/internal/retrieve"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

const serverName = "arxiv-mcp"

// Server wires the retrieval service into the MCP protocol.
type Server struct {
	svc     *retrieve.Service
	log     *zap.Logger
	version string
}

func New(svc *retrieve.Service, log *zap.Logger, version string) *Server {
	return &Server{svc: svc, log: log, version: version}
}

// textResult wraps plain text in a single-content tool result. Service
// errors land here as "Error: ..." text rather than a protocol fault,
// so clients always receive something readable.
func textResult(text string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(err error) *mcp.CallToolResultFor[any] {
	return textResult(fmt.Sprintf("Error: %v", err))
}

func (s *Server) searchTool(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[SearchParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	s.log.Info("search_papers called",
		zap.String("query", args.Query),
		zap.Int("maxResults", args.MaxResults),
	)

	out, err := s.svc.Search(ctx, types.SearchCriteria{
		Query:      args.Query,
		Author:     args.Author,
		Category:   args.Category,
		MaxResults: args.MaxResults,
		SortBy:     types.SortBy(args.SortBy),
	})
	if err != nil {
		s.log.Error("search_papers failed", zap.String("query", args.Query), zap.Error(err))
		return errorResult(err), nil
	}
	return textResult(out), nil
}

func (s *Server) detailsTool(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[DetailsParams]) (*mcp.CallToolResultFor[any], error) {
	id := params.Arguments.ArxivID
	s.log.Info("get_paper_details called", zap.String("arxivID", id))

	out, err := s.svc.Details(ctx, id)
	if err != nil {
		s.log.Error("get_paper_details failed", zap.String("arxivID", id), zap.Error(err))
		return errorResult(err), nil
	}
	return textResult(out), nil
}

func (s *Server) contentTool(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[ContentParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	s.log.Info("get_paper_content called",
		zap.String("arxivID", args.ArxivID),
		zap.Int("maxPages", args.MaxPages),
	)

	out, err := s.svc.Content(ctx, args.ArxivID, args.MaxPages)
	if err != nil {
		s.log.Error("get_paper_content failed", zap.String("arxivID", args.ArxivID), zap.Error(err))
		return errorResult(err), nil
	}
	return textResult(out), nil
}

func (s *Server) summarizeTool(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[SummarizeParams]) (*mcp.CallToolResultFor[any], error) {
	id := params.Arguments.ArxivID
	s.log.Info("summarize_paper called", zap.String("arxivID", id))

	out, err := s.svc.Summarize(ctx, id)
	if err != nil {
		s.log.Error("summarize_paper failed", zap.String("arxivID", id), zap.Error(err))
		return errorResult(err), nil
	}
	return textResult(out), nil
}

func (s *Server) categoriesResource(_ context.Context, _ *mcp.ServerSession, params *mcp.ReadResourceParams) (*mcp.ReadResourceResult, error) {
	text, err := arxiv.CategoriesJSON()
	if err != nil {
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      params.URI,
			MIMEType: "application/json",
			Text:     text,
		}},
	}, nil
}

func (s *Server) searchResource(_ context.Context, _ *mcp.ServerSession, params *mcp.ReadResourceParams) (*mcp.ReadResourceResult, error) {
	hint, err := json.Marshal(map[string]string{
		"description": "Use the search_papers tool to find papers",
		"example":     "search_papers with query='machine learning'",
	})
	if err != nil {
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      params.URI,
			MIMEType: "application/json",
			Text:     string(hint),
		}},
	}, nil
}

// Run registers the tool and resource surface and serves the stdio
// transport until the context is canceled or the stream closes.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("starting MCP server",
		zap.String("name", serverName),
		zap.String("version", s.version),
	)

	server := mcp.NewServer(serverName, s.version, nil)

	server.AddTools(
		mcp.NewServerTool("search_papers", "Search for papers on arXiv by query, author, category, etc.", s.searchTool, mcp.Input(
			mcp.Property("query", mcp.Description("Search query (keywords, title, etc.)")),
			mcp.Property("author", mcp.Description("Author name (optional)")),
			mcp.Property("category", mcp.Description("arXiv category (e.g., cs.AI, math.GT)")),
			mcp.Property("max_results", mcp.Description("Maximum number of results (default: 10)")),
			mcp.Property("sort_by", mcp.Description("Sort order: relevance, lastUpdatedDate, or submittedDate")),
		)),
		mcp.NewServerTool("get_paper_details", "Get detailed information about a specific paper by arXiv ID", s.detailsTool, mcp.Input(
			mcp.Property("arxiv_id", mcp.Description("arXiv paper ID (e.g., 2301.07041)")),
		)),
		mcp.NewServerTool("get_paper_content", "Extract and return the text content of a paper's PDF", s.contentTool, mcp.Input(
			mcp.Property("arxiv_id", mcp.Description("arXiv paper ID (e.g., 2301.07041)")),
			mcp.Property("max_pages", mcp.Description("Maximum number of pages to extract (default: 20)")),
		)),
		mcp.NewServerTool("summarize_paper", "Get a summary of a paper including abstract and key information", s.summarizeTool, mcp.Input(
			mcp.Property("arxiv_id", mcp.Description("arXiv paper ID (e.g., 2301.07041)")),
		)),
	)

	server.AddResources(
		&mcp.ServerResource{
			Resource: &mcp.Resource{
				URI:         "arxiv://search",
				Name:        "ArXiv Paper Search",
				Description: "Search for papers on arXiv",
				MIMEType:    "application/json",
			},
			Handler: s.searchResource,
		},
		&mcp.ServerResource{
			Resource: &mcp.Resource{
				URI:         "arxiv://categories",
				Name:        "ArXiv Categories",
				Description: "List of arXiv subject categories",
				MIMEType:    "application/json",
			},
			Handler: s.categoriesResource,
		},
	)

	s.log.Info("MCP server ready")

	return server.Run(ctx, mcp.NewStdioTransport())
}
