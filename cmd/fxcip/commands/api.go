package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/fxcip/internal/api"
	"github.com/wonny/fxcip/internal/api/handlers"
	"github.com/wonny/fxcip/internal/calendar"
	"github.com/wonny/fxcip/internal/cip"
	"github.com/wonny/fxcip/internal/holidays"
	"github.com/wonny/fxcip/internal/tenor"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the implied-rate API server",
	Long: `Starts the REST API server.

Endpoints:
  GET  /health            - Health check
  GET  /api/v1/tenors     - Configured tenors
  POST /api/v1/calculate  - Calculate implied rates for a batch

Example:
  go run ./cmd/fxcip api
  go run ./cmd/fxcip api --port 8090`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (default from config)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	cfg, log, err := initRuntime()
	if err != nil {
		return err
	}
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// Holiday calendar is loaded once and shared read-only by all requests.
	sets, err := holidays.Load(cfg)
	if err != nil {
		return fmt.Errorf("load holiday data: %w", err)
	}
	cal := calendar.New(sets)

	catalog := tenor.Default()
	pipeline := cip.NewPipeline(catalog, cal, log)

	calcHandler := handlers.NewCalcHandler(pipeline, catalog, log)
	router := api.NewRouter(calcHandler, log)
	server := api.New(cfg, log, router)

	// Graceful shutdown on SIGINT/SIGTERM
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
