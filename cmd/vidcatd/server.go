package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vmunix/vidcat/internal/catalog"
	"github.com/vmunix/vidcat/internal/config"
	"github.com/vmunix/vidcat/internal/events"
	"github.com/vmunix/vidcat/internal/scanner"
	"github.com/vmunix/vidcat/internal/search"
	"github.com/vmunix/vidcat/internal/server"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServer(configPath string) error {
	if configPath == "" {
		var err error
		configPath, err = config.Discover()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	var fatal []string
	for _, msg := range cfg.Validate() {
		if strings.Contains(msg, "warning:") {
			logger.Warn(msg)
			continue
		}
		fatal = append(fatal, msg)
	}
	if len(fatal) > 0 {
		return &config.ConfigError{Path: configPath, Errors: fatal}
	}

	bus := events.NewBus(logger.With("component", "bus"))
	defer bus.Close()

	repo := catalog.NewRepo(scanner.New(logger.With("component", "scanner")), logger)

	idx, err := search.Open(cfg.Search.IndexPath, logger.With("component", "search"))
	if err != nil {
		return err
	}
	defer idx.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(repo, bus, idx, server.Config{
		ScanInterval: cfg.Scan.Interval.Duration,
		Watch:        cfg.Scan.Watch,
	}, logger)

	for _, cc := range cfg.Collections {
		if _, err := runner.AddCollection(ctx, cc.ID, cc.Name, cc.Type, cc.Directory); err != nil {
			return err
		}
	}

	logger.Info("vidcatd starting",
		"version", version,
		"config", configPath,
		"collections", len(cfg.Collections),
		"scan_interval", cfg.Scan.Interval.Duration,
		"watch", cfg.Scan.Watch)

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("vidcatd stopped")
	return nil
}
