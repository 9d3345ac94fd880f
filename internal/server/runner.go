// Package server ties the catalog, scanner, search index and watcher
// together into the long-running daemon loop.
package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-co-op/gocron"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/vidcat/internal/catalog"
	"github.com/vmunix/vidcat/internal/events"
	"github.com/vmunix/vidcat/internal/search"
)

// Config for the runner.
type Config struct {
	// ScanInterval between periodic full rescans.
	ScanInterval time.Duration
	// Watch enables filesystem watching on the collection roots.
	Watch bool
}

// Runner drives periodic rescans and keeps the search index in sync
// with published snapshots.
type Runner struct {
	repo   *catalog.Repo
	bus    *events.Bus
	index  *search.Index // may be nil
	config Config
	logger *slog.Logger
}

// NewRunner creates a runner. index may be nil when full-text search
// is not configured.
func NewRunner(repo *catalog.Repo, bus *events.Bus, index *search.Index, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		repo:   repo,
		bus:    bus,
		index:  index,
		config: cfg,
		logger: logger,
	}
}

// AddCollection registers a collection with the catalog and announces
// it on the bus.
func (r *Runner) AddCollection(ctx context.Context, id, name, kind, directory string) (string, error) {
	id, err := r.repo.AddCollection(id, name, kind, directory)
	if err != nil {
		return "", err
	}
	_ = r.bus.Publish(ctx, events.NewCollectionAdded(id, name, kind, directory))
	return id, nil
}

// Run performs an initial scan and then blocks, rescanning on the
// configured interval and on watcher activity, until the context is
// canceled.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	// The index consumer must be subscribed before the first refresh
	// publishes its event.
	if r.index != nil {
		ch := r.bus.Subscribe(events.TypeCatalogRefreshed, 4)
		g.Go(func() error {
			return r.consumeRefreshes(ctx, ch)
		})
	}

	r.refresh(ctx)

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	if r.config.ScanInterval > 0 {
		if _, err := s.Every(r.config.ScanInterval).Do(func() { r.refresh(ctx) }); err != nil {
			return err
		}
	} else {
		r.logger.Info("scan interval is zero, periodic rescans disabled")
	}
	s.StartAsync()
	defer s.Stop()

	if r.config.Watch {
		w := NewWatcher(r.collectionRoots(), func(path string) {
			r.onWatchChange(ctx, path)
		}, r.logger.With("component", "watcher"))
		g.Go(func() error {
			return w.Run(ctx)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	return g.Wait()
}

func (r *Runner) collectionRoots() []string {
	var roots []string
	for _, c := range r.repo.Collections() {
		roots = append(roots, c.Directory)
	}
	return roots
}

// onWatchChange announces the changed collection and rescans.
func (r *Runner) onWatchChange(ctx context.Context, path string) {
	r.logger.Debug("filesystem change, rescanning", "path", path)
	_ = r.bus.Publish(ctx, events.NewCollectionChanged(r.collectionForPath(path), path))
	r.refresh(ctx)
}

// collectionForPath maps a changed path back to the collection whose
// root contains it, or "" when no root matches.
func (r *Runner) collectionForPath(path string) string {
	for _, c := range r.repo.Collections() {
		if strings.HasPrefix(path, c.Directory) {
			return c.ID
		}
	}
	return ""
}

// refresh rebuilds the catalog and announces the new snapshot. Scan
// failures are already handled inside Refresh per collection; an error
// here means cancellation.
func (r *Runner) refresh(ctx context.Context) {
	start := time.Now()
	if err := r.repo.Refresh(ctx); err != nil {
		r.logger.Warn("catalog refresh aborted", "error", err)
		return
	}

	snap := r.repo.Snapshot()
	elapsed := time.Since(start)
	r.logger.Info("catalog refreshed",
		"collections", len(snap.Collections()),
		"items", snap.ItemCount(),
		"duration_ms", elapsed.Milliseconds())

	_ = r.bus.Publish(ctx, events.NewCatalogRefreshed(
		len(snap.Collections()), snap.ItemCount(), elapsed))
}

// consumeRefreshes rebuilds the search index after every published
// catalog refresh.
func (r *Runner) consumeRefreshes(ctx context.Context, ch <-chan events.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			if err := r.index.Rebuild(ctx, r.repo.Snapshot()); err != nil {
				r.logger.Error("search index rebuild failed", "error", err)
			}
		}
	}
}
