// Package scanner builds catalog items by walking a Kodi-style media
// directory tree. Scanning is best-effort: entries that don't look like
// media are skipped, and a single bad directory never fails the pass.
package scanner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vmunix/vidcat/internal/catalog"
)

// Scanner turns a collection's directory into typed catalog items.
// It implements catalog.Builder.
type Scanner struct {
	logger *slog.Logger
}

// New creates a scanner.
func New(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{logger: logger}
}

// Build scans c.Directory according to the collection type.
func (s *Scanner) Build(ctx context.Context, c *catalog.Collection) ([]catalog.Item, error) {
	switch c.Type {
	case catalog.TypeMovies:
		return s.buildMovies(ctx, c)
	case catalog.TypeShows:
		return s.buildShows(ctx, c)
	default:
		return nil, fmt.Errorf("collection %q: %w: %q", c.Name, catalog.ErrUnknownType, c.Type)
	}
}
