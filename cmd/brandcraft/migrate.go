package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/brandcraft/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  "Creates any missing tables and indexes for the configured database driver. Safe to run repeatedly.",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	database, err := db.Open(ctx, appConfig.DatabaseDriver, appConfig.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}

	logger.Info("Schema applied", zap.String("driver", database.Driver()))
	fmt.Fprintf(cmd.OutOrStdout(), "Schema applied (%s)\n", database.Driver())
	return nil
}
