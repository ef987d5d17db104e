package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/smartjob/internal/config"
	"github.com/jonathan/smartjob/internal/db"
)

var migrateConfig string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations for the postgres store",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateConfig, "config", "c", "", "Path to a YAML or JSON config file")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(migrateConfig)
	if err != nil {
		return err
	}
	if cfg.Store.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable (or store.database_url) is required")
	}

	ctx := context.Background()
	if err := db.Migrate(ctx, cfg.Store.DatabaseURL); err != nil {
		return err
	}

	database, err := db.Connect(ctx, cfg.Store.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	keys, err := database.Keys(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied; %d key(s) stored\n", len(keys))
	for _, k := range keys {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", k)
	}
	return nil
}
