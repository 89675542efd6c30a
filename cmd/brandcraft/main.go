// Package main provides the entry point for the BrandCraft API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/brandcraft/internal/config"
)

var (
	configFile   string
	logLevelFlag string

	// Populated by the root PersistentPreRunE for every subcommand.
	v         *viper.Viper
	appConfig *config.Config
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "brandcraft",
	Short: "BrandCraft branding backend",
	Long: "BrandCraft generates brand names, logo placeholders, identity copy, marketing content, " +
		"sentiment reports and consultant replies, served over a REST API, an MCP tool server or this CLI.",
	SilenceUsage: true,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (setup refers to rootCmd).
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default ./"+config.DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn or error")
}

// setup resolves configuration and the logger before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	v, err = config.NewViper(configFile)
	if err != nil {
		return err
	}
	if err := v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		return fmt.Errorf("failed to bind log-level flag: %w", err)
	}

	appConfig, err = config.Load(v)
	if err != nil {
		return err
	}

	var level zap.AtomicLevel
	logger, level, err = config.NewLogger(appConfig.LogLevel)
	if err != nil {
		return err
	}
	config.WatchLogLevel(v, level, logger)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
