package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/vmunix/vidcat/internal/catalog"
	"github.com/vmunix/vidcat/internal/config"
	"github.com/vmunix/vidcat/internal/scanner"
)

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

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

// loadConfig resolves the --config flag, falling back to the standard
// search order.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.Discover()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	var fatal []string
	logger := newLogger(parseLogLevel(cfg.Server.LogLevel))
	for _, msg := range cfg.Validate() {
		if strings.Contains(msg, "warning:") {
			logger.Warn(msg)
			continue
		}
		fatal = append(fatal, msg)
	}
	if len(fatal) > 0 {
		return nil, &config.ConfigError{Path: path, Errors: fatal}
	}
	return cfg, nil
}

// buildCatalog loads the config, registers its collections and runs
// one full scan.
func buildCatalog(ctx context.Context) (*catalog.Repo, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(parseLogLevel(cfg.Server.LogLevel))
	repo := catalog.NewRepo(scanner.New(logger), logger)
	for _, cc := range cfg.Collections {
		if _, err := repo.AddCollection(cc.ID, cc.Name, cc.Type, cc.Directory); err != nil {
			return nil, nil, err
		}
	}
	if err := repo.Refresh(ctx); err != nil {
		return nil, nil, fmt.Errorf("scanning collections: %w", err)
	}
	return repo, cfg, nil
}
