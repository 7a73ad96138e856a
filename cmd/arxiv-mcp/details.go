// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var detailsCmd = &cobra.Command{
	Use:   "details <arxiv-id>",
	Short: "Show full details for one paper",
	Long: `Details fetches a single paper by its arXiv identifier and prints
its full metadata including the untruncated abstract. Versioned
identifiers (2301.07041v2) are accepted and canonicalized.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetails,
}

func runDetails(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := newService().Details(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func init() {
	rootCmd.AddCommand(detailsCmd)
}
