package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/smartjob/internal/logging"
	"github.com/jonathan/smartjob/internal/mcp"
)

var mcpLogLevel string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the recommendation tools over MCP on stdio",
	Long:  "Runs a Model Context Protocol server on stdin/stdout exposing tokenize_skills, score_job, recommend_jobs, filter_jobs and filter_applicants.",
	RunE:  runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpLogLevel, "log-level", "warn", "Log level for stderr logging")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	// stdout carries the protocol, so logs must stay on stderr.
	log := logging.New(mcpLogLevel)
	defer func() { _ = log.Sync() }()

	return mcp.RunStdio(cmd.Context(), mcp.NewServer(version, log))
}
