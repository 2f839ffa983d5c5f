package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Pval-k/finance-tracker/internal/config"
	apphttp "github.com/Pval-k/finance-tracker/internal/http"
	applog "github.com/Pval-k/finance-tracker/internal/log"
	"github.com/Pval-k/finance-tracker/internal/prefs"
	"github.com/Pval-k/finance-tracker/internal/services"
	"github.com/Pval-k/finance-tracker/internal/storage"
	"github.com/Pval-k/finance-tracker/internal/storage/memory"
	"github.com/Pval-k/finance-tracker/internal/store"
	"github.com/Pval-k/finance-tracker/internal/visibility"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	logger := applog.New(applog.Config{Level: slog.LevelInfo})
	slog.SetDefault(logger.Logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	var txStore store.TransactionStore
	switch cfg.DataBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open SQLite store", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		txStore = repo
		logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)
	default:
		txStore = memory.New()
		logger.Info("Initialized memory backend")
	}

	prefStore, err := prefs.NewFileStore(cfg.PrefsPath)
	if err != nil {
		logger.Error("Failed to open preference store", "error", err, "path", cfg.PrefsPath)
		os.Exit(1)
	}

	vis := visibility.NewManager(prefStore)
	visLogger := logger.WithComponent(applog.ComponentVisibility)
	vis.Subscribe(func() {
		visLogger.Info("Hidden set changed", "count", len(vis.Load()))
	})

	dashboard := services.NewDashboardService(txStore, prefStore, vis, cfg.CategoryLimit)
	bulk := services.NewBulkService(txStore)

	srv := apphttp.NewServer(":"+cfg.Port, txStore, prefStore, dashboard, bulk, vis, cfg.DefaultOwner, logger)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting finance-tracker server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
