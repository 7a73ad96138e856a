// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-mcp/internal/arxiv"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List arXiv subject categories",
	Long: `Categories prints the static reference listing of arXiv subject
categories grouped by field, as JSON. The same listing is served as
the arxiv://categories MCP resource.`,
	RunE: runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	out, err := arxiv.CategoriesJSON()
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
