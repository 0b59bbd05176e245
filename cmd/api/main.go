// Package main is the entry point for the Finance Dashboard API server.
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

	"github.com/joho/godotenv"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/infra/db"
	"github.com/finance-dashboard/backend/internal/infra/dependency"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Finance Dashboard API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewSQLiteConnection(&cfg.Storage)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(&model.SnapshotModel{}); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Wire dependencies; this loads (or initializes) the snapshot
	injector, err := dependency.NewInjector(context.Background(), cfg, database.DB())
	if err != nil {
		slog.Error("Failed to initialize application state", "error", err)
		os.Exit(1)
	}

	// Start the daily backup scheduler
	if cfg.Backup.Enabled {
		if err := injector.BackupScheduler.Start(); err != nil {
			slog.Error("Failed to start backup scheduler", "error", err)
			os.Exit(1)
		}
		defer injector.BackupScheduler.Stop()
	}

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Flush any pending snapshot write before exiting
	if err := injector.State.Close(ctx); err != nil {
		slog.Error("Failed to flush application state", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
