// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-mcp CLI and MCP
// server. The server subcommand speaks MCP over stdio; the remaining
// subcommands expose the same operations for direct use.
package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-mcp/internal/logger"
	"github.com/pdiddy/arxiv-mcp/internal/retrieve"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the arxiv-mcp CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-mcp",
	Short: "Scholarly paper retrieval from arXiv, as a CLI and MCP server",
	Long: `arxiv-mcp retrieves scholarly papers from arXiv: structured search,
per-paper details, PDF text extraction, and combined summaries.

Run "arxiv-mcp serve" to expose the operations as MCP tools over stdio
for use by an MCP client. The search, details, content, summarize, and
categories subcommands run the same operations directly.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-mcp.yaml or ~/.config/arxiv-mcp/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-mcp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-mcp"))
		}
	}

	viper.SetEnvPrefix("ARXIV_MCP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		// Stdout may carry the MCP stream, so diagnostics go to stderr.
		os.Stderr.WriteString("Using config file: " + viper.ConfigFileUsed() + "\n")
	}
}

// serviceConfig assembles the retrieval configuration from viper.
// Unset keys fall through to the documented defaults.
func serviceConfig() types.ServiceConfig {
	return types.ServiceConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		APIBaseURL:       viper.GetString("api_base_url"),
		PDFBaseURL:       viper.GetString("pdf_base_url"),
		MaxResults:       viper.GetInt("max_results"),
		DefaultPageLimit: viper.GetInt("default_page_limit"),
		RequestInterval:  viper.GetDuration("request_interval"),
	}.Defaults()
}

func newService() *retrieve.Service {
	return retrieve.NewService(serviceConfig(), logger.Get())
}

// commandTimeout bounds direct CLI invocations. The serve subcommand
// runs without a deadline.
const commandTimeout = 2 * time.Minute

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
