// Package main provides the smartjob command: recommendation and filter
// tools over JSON snapshots, the job board HTTP server and its MCP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "smartjob",
	Short:         "SmartJob job board and recommendation engine",
	Long:          "SmartJob matches students to jobs by skills, filters jobs and applicants, and serves the job board over REST and MCP.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
