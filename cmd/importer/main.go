package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"eventsync/internal/config"
	"eventsync/internal/importer"
	"eventsync/internal/media"
	"eventsync/internal/storage/postgres"
	"eventsync/internal/sync"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	importsDir := flag.String("dir", "", "imports directory (overrides config)")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	dir := cfg.Imports.Dir
	if *importsDir != "" {
		dir = *importsDir
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	mediaStore := postgres.NewMediaStore(db)
	acquirer := media.NewAcquirer(mediaStore, media.Config{
		Timeout:  cfg.Media.FetchTimeout,
		MaxBytes: cfg.Media.MaxBytes,
	}, logger)

	syncService := sync.NewService(
		postgres.NewVenueStore(db),
		postgres.NewCategoryStore(db),
		postgres.NewOrganizerStore(db),
		postgres.NewEventStore(db),
		acquirer,
		postgres.NewTransactionManager(db),
		nil,
		logger,
	)

	data, err := importer.Load(dir)
	if err != nil {
		logger.Error("failed to load import data", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if _, err := syncService.Import(ctx, data); err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
