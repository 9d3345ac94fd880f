package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/vmunix/vidcat/pkg/idhash"
)

// Builder produces a collection's items by scanning its directory.
type Builder interface {
	Build(ctx context.Context, c *Collection) ([]Item, error)
}

// Snapshot is an immutable view of all collections at one point in
// time. A reader holding a Snapshot keeps observing it consistently,
// in full, no matter how many rebuilds publish after it was taken.
type Snapshot struct {
	collections []*Collection
}

// Collections returns all collections in the snapshot.
// Callers must not modify the returned slice or its contents.
func (s *Snapshot) Collections() []*Collection {
	return s.collections
}

// Collection returns the collection with the given id.
func (s *Snapshot) Collection(id string) (*Collection, bool) {
	for _, c := range s.collections {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// ItemCount returns the number of top-level items across all collections.
func (s *Snapshot) ItemCount() int {
	n := 0
	for _, c := range s.collections {
		n += len(c.Items)
	}
	return n
}

// Repo is the catalog store. Reads are lock-free: they load the current
// snapshot pointer and traverse it. All mutations (Refresh,
// AddCollection) are serialized by a writer mutex, build on private
// copies, and publish with one atomic pointer store, so readers never
// observe a partially rebuilt catalog.
type Repo struct {
	current atomic.Pointer[Snapshot]

	mu      sync.Mutex // serializes writers
	builder Builder
	logger  *slog.Logger
}

// NewRepo creates an empty catalog that builds collection items with b.
func NewRepo(b Builder, logger *slog.Logger) *Repo {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Repo{builder: b, logger: logger}
	r.current.Store(&Snapshot{})
	return r
}

// Snapshot returns the current snapshot.
func (r *Repo) Snapshot() *Snapshot {
	return r.current.Load()
}

// AddCollection registers a new collection and publishes a snapshot
// containing it. If id is empty it is derived from the name. The
// collection starts without items; call Refresh to scan it.
// Returns the collection id.
func (r *Repo) AddCollection(id, name, collectionType, directory string) (string, error) {
	ct, err := ParseType(collectionType)
	if err != nil {
		return "", fmt.Errorf("add collection %q: %w", name, err)
	}
	if id == "" {
		id = idhash.Sum(name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.current.Load().collections
	next := make([]*Collection, len(old), len(old)+1)
	copy(next, old)
	next = append(next, &Collection{
		ID:        id,
		Name:      name,
		Type:      ct,
		Directory: directory,
	})
	r.current.Store(&Snapshot{collections: next})

	r.logger.Info("collection added",
		"name", name, "id", id, "type", collectionType, "directory", directory)
	return id, nil
}

// Refresh rescans every collection's directory and publishes the fully
// rebuilt catalog as a new snapshot. Scanning happens on private copies
// and may take arbitrarily long without blocking readers; only the
// final publish is the atomic store. A collection whose scan fails
// keeps its previous items. Cancellation is honored between
// per-collection scans.
func (r *Repo) Refresh(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.current.Load().collections
	next := make([]*Collection, len(old))
	for i, c := range old {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("refresh canceled: %w", err)
		}

		rebuilt := *c // private copy; the published one stays untouched
		items, err := r.builder.Build(ctx, &rebuilt)
		if err != nil {
			r.logger.Warn("collection scan failed, keeping previous items",
				"collection", c.Name, "error", err)
			next[i] = c
			continue
		}
		rebuilt.Items = items
		next[i] = &rebuilt

		r.logger.Info("collection scanned",
			"collection", c.Name, "items", len(items))
	}

	r.current.Store(&Snapshot{collections: next})
	return nil
}
