// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-mcp/internal/retrieve"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search arXiv for papers",
	Long: `Search queries the arXiv API for papers matching a free-text query,
optionally narrowed by author and category. Results are returned in
the API's ranking order.

Terms combine with AND: --query "transformers" --author "Vaswani"
matches papers by Vaswani about transformers.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" && len(args) > 0 {
		query = strings.Join(args, " ")
	}
	author, _ := cmd.Flags().GetString("author")
	category, _ := cmd.Flags().GetString("category")
	if query == "" && author == "" && category == "" {
		return fmt.Errorf("query required: provide a search query, --author, or --category")
	}

	maxResults, _ := cmd.Flags().GetInt("max-results")
	sortBy, _ := cmd.Flags().GetString("sort-by")
	format, _ := cmd.Flags().GetString("format")

	criteria := types.SearchCriteria{
		Query:      query,
		Author:     author,
		Category:   category,
		MaxResults: maxResults,
		SortBy:     types.SortBy(sortBy),
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	svc := newService()

	switch format {
	case "text", "":
		out, err := svc.Search(ctx, criteria)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	case "json":
		papers, err := svc.SearchPapers(ctx, criteria)
		if err != nil {
			return err
		}
		return retrieve.FormatJSON(papers, os.Stdout)
	case "yaml":
		papers, err := svc.SearchPapers(ctx, criteria)
		if err != nil {
			return err
		}
		return retrieve.FormatYAML(papers, os.Stdout)
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", format)
	}
}

func init() {
	searchCmd.Flags().String("query", "", "free-text search query")
	searchCmd.Flags().String("author", "", "filter by author name")
	searchCmd.Flags().String("category", "", "filter by arXiv category (e.g. cs.AI, math.GT)")
	searchCmd.Flags().Int("max-results", 10, "maximum number of results (capped at 100)")
	searchCmd.Flags().String("sort-by", "relevance", "sort order: relevance, lastUpdatedDate, or submittedDate")
	searchCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(searchCmd)
}
