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

	"alba-sim/internal/adapter/csvfile"
	httpadapter "alba-sim/internal/adapter/http"
	"alba-sim/internal/adapter/postgres"
	"alba-sim/internal/adapter/usecase"
	"alba-sim/internal/config"
	"alba-sim/internal/core/domain"
	"alba-sim/internal/db"
)

// main is the entry point of the alba-sim generator. It loads configuration,
// runs the full data generation pipeline, writes the resulting dataset to
// the CSV sink and optionally to PostgreSQL, then starts the report HTTP
// server if enabled. On receiving a termination signal the server is shut
// down gracefully.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pipeline := usecase.NewPipeline(cfg.Sim, cfg.Segment, cfg.Campaign, domain.DefaultPersonas(), logger)
	dataset, err := pipeline.Run()
	if err != nil {
		logger.Error("pipeline error", slog.Any("error", err))
		os.Exit(1)
	}

	if err = csvfile.NewWriter(cfg.Sim.OutputDir).WriteDataset(ctx, dataset); err != nil {
		logger.Error("csv sink error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("dataset written", slog.String("dir", cfg.Sim.OutputDir))

	if !cfg.Psql.Enabled {
		return
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err = postgres.NewDatasetRepository(pool).WriteDataset(ctx, dataset); err != nil {
		logger.Error("postgres sink error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("dataset loaded into postgres")

	if !cfg.HTTP.Enabled {
		return
	}

	svc := usecase.NewReportService(postgres.NewReportRepository(pool))
	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("report server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
