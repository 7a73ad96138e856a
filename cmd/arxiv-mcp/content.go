// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content <arxiv-id>",
	Short: "Extract the text content of a paper's PDF",
	Long: `Content downloads the paper's PDF and prints the extracted text with
page markers, bounded by --pages. Repeated extractions of the same
paper and page limit are served from an in-memory cache within one
process.`,
	Args: cobra.ExactArgs(1),
	RunE: runContent,
}

func runContent(cmd *cobra.Command, args []string) error {
	pages, _ := cmd.Flags().GetInt("pages")

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := newService().Content(ctx, args[0], pages)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func init() {
	contentCmd.Flags().Int("pages", 20, "maximum number of pages to extract")

	rootCmd.AddCommand(contentCmd)
}
