// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-mcp/internal/logger"
	"github.com/pdiddy/arxiv-mcp/internal/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the retrieval operations as MCP tools over stdio",
	Long: `Serve runs the MCP server on stdin/stdout. The server exposes the
search_papers, get_paper_details, get_paper_content, and summarize_paper
tools plus the arxiv://categories and arxiv://search resources.

Stdout is reserved for the protocol stream; logs go to stderr.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.Get()
	defer log.Sync()

	srv := mcpserver.New(newService(), log, version)
	return srv.Run(context.Background())
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
