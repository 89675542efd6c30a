package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/brandcraft/internal/mcptools"
	"github.com/jonathan/brandcraft/internal/synth"
)

var (
	mcpTransport string
	mcpAddr      string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the generators as MCP tools",
	Long:  "Runs a Model Context Protocol server exposing the BrandCraft generators as tools, over stdio or streamable HTTP.",
	RunE:  runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpTransport, "transport", "stdio", "Transport mode: stdio or http")
	mcpCmd.Flags().StringVar(&mcpAddr, "addr", ":8081", "Listen address (only used with --transport http)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := synth.New()
	if err != nil {
		return fmt.Errorf("failed to load generation catalog: %w", err)
	}
	srv := mcptools.New(engine, logger)

	switch mcpTransport {
	case "stdio":
		logger.Info("MCP server starting", zap.String("transport", "stdio"))
		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("mcp server error: %w", err)
		}
		return nil
	case "http":
		return serveMCPHTTP(ctx, srv)
	default:
		return fmt.Errorf("unknown transport %q (use stdio or http)", mcpTransport)
	}
}

func serveMCPHTTP(ctx context.Context, srv *mcp.Server) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return srv
	}, nil)
	httpServer := &http.Server{
		Addr:              mcpAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP server listening", zap.String("transport", "http"), zap.String("addr", mcpAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("mcp http server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
