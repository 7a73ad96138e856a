// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <arxiv-id>",
	Short: "Summarize a paper: details plus a content preview",
	Long: `Summarize prints the paper's full detail block followed by a short
preview of the extracted content, taken from the first pages of the
PDF. If the PDF cannot be fetched or decoded the details are printed
alone.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := newService().Summarize(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}
