package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/warp/incentive-engine/api"
	"github.com/warp/incentive-engine/incentive"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("port", 0, "HTTP server port (overrides config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the incentive calculator HTTP API.

On SIGINT/SIGTERM the server stops accepting connections and waits for
active requests to finish, up to server.shutdown_timeout.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := newLogger(cfg)

	calc, err := incentive.NewCalculator(incentive.DefaultPlan())
	if err != nil {
		return fmt.Errorf("build calculator: %w", err)
	}

	handler := api.NewHandler(calc, logger)
	router := api.NewRouter(handler, api.RouterOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MetricsEnabled: cfg.Metrics.Enabled,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  cfg.Server.IdleTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr, "metrics", cfg.Metrics.Enabled)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
