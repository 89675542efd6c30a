package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/brandcraft/internal/db"
	"github.com/jonathan/brandcraft/internal/server"
	"github.com/jonathan/brandcraft/internal/synth"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the BrandCraft REST endpoints. The database schema is applied on start-up.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides the port config key)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jwtConfig, err := appConfig.JWT()
	if err != nil {
		return err
	}
	passwordConfig, err := appConfig.Password()
	if err != nil {
		return err
	}
	engine, err := synth.New()
	if err != nil {
		return fmt.Errorf("failed to load generation catalog: %w", err)
	}

	database, err := db.Open(ctx, appConfig.DatabaseDriver, appConfig.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}

	port := appConfig.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	srv, err := server.New(server.Config{
		Port:           port,
		DB:             database,
		Engine:         engine,
		JWT:            jwtConfig,
		Password:       passwordConfig,
		RateLimit:      appConfig.RateLimit(),
		AllowedOrigins: appConfig.AllowedOrigins,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("Starting BrandCraft",
		zap.String("version", server.Version),
		zap.String("driver", database.Driver()),
		zap.Int("port", port),
	)
	return srv.Start(ctx)
}
