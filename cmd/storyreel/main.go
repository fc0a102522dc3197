// Package main is the entry point for the StoryReel API server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/storyreel/storyreel/internal/api"
	"github.com/storyreel/storyreel/internal/config"
	"github.com/storyreel/storyreel/internal/pipeline"
	"github.com/storyreel/storyreel/internal/services"
	"github.com/storyreel/storyreel/internal/store"
	"github.com/storyreel/storyreel/pkg/logger"
	"github.com/storyreel/storyreel/pkg/version"
)

func main() {
	// Load .env when present, environment variables take precedence
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Initialize(logger.ParseLevel(cfg.LogLevel), !cfg.Environment.IsProduction())

	logger.Info("Server config: Address=%s, Environment=%s", cfg.Server.Address, cfg.Environment)
	if cfg.Pipeline.TimeScale != 1.0 {
		logger.Info("Pipeline time scale: %.2fx", cfg.Pipeline.TimeScale)
	}

	// In-memory store and simulated generation pipeline. Both live for the
	// process lifetime; a real backend replaces the runner later.
	st := store.New()
	schedule := pipeline.DefaultSchedule()
	if cfg.Pipeline.TimeScale != 1.0 {
		schedule = pipeline.Scale(schedule, cfg.Pipeline.TimeScale)
	}
	runner := pipeline.NewRunner(st, schedule)
	storySvc := services.NewStoryService(st, runner)

	router := api.SetupRouter(storySvc, cfg)

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting StoryReel API server %s on %s", version.Version, cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logger.Info("Shutting down server...")

	// Cancel pending pipeline transitions first
	runner.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
