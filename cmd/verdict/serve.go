package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/assuranceops/verdict/internal/api"
	"github.com/assuranceops/verdict/internal/catalog"
	"github.com/assuranceops/verdict/internal/config"
	"github.com/assuranceops/verdict/internal/engine"
	"github.com/assuranceops/verdict/internal/events"
	"github.com/assuranceops/verdict/internal/gapplan"
	"github.com/assuranceops/verdict/internal/matrixio"
	"github.com/assuranceops/verdict/internal/registry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API and metrics servers",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func runServe() {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.Logging.Level)}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	matrix, err := matrixio.LoadDecisionMatrix(cfg.Data.DecisionMatrixPath)
	if err != nil {
		logger.Error("failed to load decision matrix", "error", err)
		os.Exit(1)
	}
	if matrix.ReadinessRules.HighResidualThreshold == 0 {
		matrix.ReadinessRules.HighResidualThreshold = cfg.Readiness.HighResidualThreshold
	}
	logger.Info("decision matrix loaded", "decision_id", matrix.DecisionID)

	controls, err := matrixio.LoadControlCatalogue(cfg.Data.ControlCataloguePath)
	if err != nil {
		logger.Error("failed to load control catalogue", "error", err)
		os.Exit(1)
	}
	logger.Info("control catalogue loaded", "controls", len(controls))

	// Events (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to events broker, running without events", "error", err)
		} else {
			eventsClient = ec
			defer ec.Close()
			logger.Info("connected to events broker")
		}
	}

	lib := catalog.DefaultLibrary()
	eng := engine.New(lib, engine.Thresholds{
		Low:             cfg.Engine.LowThreshold,
		High:            cfg.Engine.HighThreshold,
		TopContributors: cfg.Engine.TopContributors,
	}, logger)

	router := api.NewRouter(api.Dependencies{
		Engine:    eng,
		Library:   lib,
		Registry:  registry.New(),
		Matrix:    matrix,
		GapMatrix: gapplan.SupplierOnboardingMatrix(),
		Controls:  controls,
		Events:    eventsClient,
	}, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: api.NewMetricsRouter(),
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
