package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/smartjob/internal/board"
	"github.com/jonathan/smartjob/internal/config"
	"github.com/jonathan/smartjob/internal/logging"
	"github.com/jonathan/smartjob/internal/observability"
	"github.com/jonathan/smartjob/internal/store"
)

var (
	seedConfig    string
	seedSkipJobs  bool
	seedAnalytics bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin account and sample jobs in the configured store",
	Long:  "Creates the default admin account and, unless --no-jobs is given, the sample jobs when the store has no jobs yet. Running it twice is harmless.",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedConfig, "config", "c", "", "Path to a YAML or JSON config file")
	seedCmd.Flags().BoolVar(&seedSkipJobs, "no-jobs", false, "Only create the admin account")
	seedCmd.Flags().BoolVar(&seedAnalytics, "analytics", false, "Print board analytics after seeding")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(seedConfig)
	if err != nil {
		return err
	}
	auth, err := config.NewAuthConfig(false)
	if err != nil {
		return err
	}

	log := logging.NewDevelopment(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}
	defer func() { _ = st.Close() }()

	svc := board.New(st, auth, log)
	res, err := svc.Seed(ctx, !seedSkipJobs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.AdminCreated {
		_, _ = fmt.Fprintf(out, "Created admin account %s\n", board.AdminEmail)
	} else {
		_, _ = fmt.Fprintln(out, "Admin account already exists")
	}
	_, _ = fmt.Fprintf(out, "Created %d sample job(s)\n", res.JobsCreated)

	if seedAnalytics {
		a, err := svc.Analytics(ctx)
		if err != nil {
			return err
		}
		observability.NewPrinter(out).PrintAnalytics(*a)
	}
	return nil
}
