package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/smartjob/internal/board"
	"github.com/jonathan/smartjob/internal/config"
	"github.com/jonathan/smartjob/internal/logging"
	"github.com/jonathan/smartjob/internal/mcp"
	"github.com/jonathan/smartjob/internal/server"
	"github.com/jonathan/smartjob/internal/server/ratelimit"
	"github.com/jonathan/smartjob/internal/store"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the job board HTTP server",
	Long:  `Start an HTTP server that exposes the job board REST API, the MCP endpoint at /mcp and the static frontend.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 3000)")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to a YAML or JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	auth, err := config.NewAuthConfig(true)
	if err != nil {
		return err
	}

	log := logging.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}
	defer func() { _ = st.Close() }()

	svc := board.New(st, auth, log, board.WithRecommendLimit(cfg.RecommendLimit))
	if cfg.ShouldSeed() {
		res, err := svc.Seed(ctx, true)
		if err != nil {
			return fmt.Errorf("failed to seed board: %w", err)
		}
		log.Info("board seeded", "admin_created", res.AdminCreated, "jobs_created", res.JobsCreated)
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		StaticDir:      cfg.StaticDir,
		RecommendLimit: cfg.RecommendLimit,
		RateLimit:      ratelimit.LoadConfig(),
		MCPHandler:     mcp.HTTPHandler(mcp.NewServer(version, log)),
	}, svc, server.NewJWTService(auth), log)

	log.Info("starting server", "port", cfg.Port, "store", cfg.Store.Backend)
	return srv.Start()
}
