package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fernwood/spotistats/internal/config"
	"github.com/fernwood/spotistats/internal/core/analytics"
	"github.com/fernwood/spotistats/internal/database"
	"github.com/fernwood/spotistats/internal/importer"
	"github.com/fernwood/spotistats/pkg/logger"
	"github.com/fernwood/spotistats/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "spotistats",
		Short:        "Import and analyze an extended streaming history export",
		Version:      version.String(),
		SilenceUsage: true,
	}

	var parsePath string
	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "Import export files from a directory and report top artists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(parsePath)
		},
	}
	parseCmd.Flags().StringVarP(&parsePath, "path", "p", "", "directory containing exported history JSON files")
	parseCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(parseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runParse(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log := logger.NewWithConfig(cfg.Logging.Level, cfg.Logging.Format)

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.Database.MigrationsPath); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	repos := database.NewRepositories(db)
	ctx := context.Background()

	stats, err := analytics.New(ctx, repos.History, log)
	if err != nil {
		return err
	}

	for i, entry := range stats.TopNArtists(10) {
		log.WithFields(logrus.Fields{
			"rank":      i + 1,
			"artist":    entry.Artist,
			"ms_played": entry.MsPlayed,
		}).Info("Top artist")
	}

	imp := importer.New(stats, log)
	if err := imp.ImportDir(path); err != nil {
		return err
	}

	return stats.Persist(ctx)
}
