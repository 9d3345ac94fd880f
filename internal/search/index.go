// Package search maintains an SQLite FTS5 index over catalog snapshots
// for full-text lookups that the plain substring traversal can't serve:
// prefix matching, metadata fields, and ranked results.
package search

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/vmunix/vidcat/internal/catalog"
)

const schema = `
CREATE VIRTUAL TABLE IF NOT EXISTS items USING fts5(
	name,
	title,
	plot,
	genres,
	item_id UNINDEXED,
	collection_id UNINDEXED,
	kind UNINDEXED
);
`

// Kind labels for indexed rows.
const (
	KindMovie   = "movie"
	KindShow    = "show"
	KindSeason  = "season"
	KindEpisode = "episode"
)

// Hit is one ranked search result.
type Hit struct {
	ItemID       string
	CollectionID string
	Kind         string
	Name         string
	Score        float64
}

// Index is a full-text index over one catalog. It is rebuilt wholesale
// from a snapshot; there are no incremental updates.
type Index struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates or opens the index at path. An empty path means an
// in-memory index.
func Open(path string, logger *slog.Logger) (*Index, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening search index: %w", err)
	}
	// The FTS table is rewritten from a single goroutine; a second
	// connection would only contend on the write lock.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating search schema: %w", err)
	}

	return &Index{db: db, logger: logger}, nil
}

// Close releases the underlying database.
func (x *Index) Close() error {
	return x.db.Close()
}

// Rebuild replaces the index contents with the given snapshot.
func (x *Index) Rebuild(ctx context.Context, snap *catalog.Snapshot) error {
	tx, err := x.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting index rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO items (name, title, plot, genres, item_id, collection_id, kind) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing index insert: %w", err)
	}
	defer stmt.Close()

	rows := 0
	for _, c := range snap.Collections() {
		for _, item := range c.Items {
			n, err := indexItem(ctx, stmt, c.ID, item)
			if err != nil {
				return err
			}
			rows += n
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing index rebuild: %w", err)
	}
	x.logger.Debug("search index rebuilt", "rows", rows)
	return nil
}

func indexItem(ctx context.Context, stmt *sql.Stmt, collectionID string, item catalog.Item) (int, error) {
	insert := func(name string, meta catalog.Metadata, itemID, kind string) error {
		_, err := stmt.ExecContext(ctx,
			Fold(name), Fold(meta.Title), Fold(meta.Plot),
			Fold(strings.Join(meta.Genres, " ")),
			itemID, collectionID, kind)
		if err != nil {
			return fmt.Errorf("indexing %s %q: %w", kind, name, err)
		}
		return nil
	}

	switch it := item.(type) {
	case *catalog.Movie:
		return 1, insert(it.Name, it.Metadata, it.ID, KindMovie)
	case *catalog.Show:
		rows := 1
		if err := insert(it.Name, it.Metadata, it.ID, KindShow); err != nil {
			return 0, err
		}
		for _, season := range it.Seasons {
			if err := insert(season.Name, catalog.Metadata{}, season.ID, KindSeason); err != nil {
				return rows, err
			}
			rows++
			for _, ep := range season.Episodes {
				if err := insert(ep.Name, ep.Metadata, ep.ID, KindEpisode); err != nil {
					return rows, err
				}
				rows++
			}
		}
		return rows, nil
	default:
		// Seasons and episodes are reached through their show.
		return 0, nil
	}
}

// Search runs a prefix-matching full-text query and returns hits
// re-ranked by name similarity to the term.
func (x *Index) Search(ctx context.Context, term string, limit int) ([]Hit, error) {
	match := matchQuery(term)
	if match == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := x.db.QueryContext(ctx,
		`SELECT item_id, collection_id, kind, name FROM items WHERE items MATCH ? ORDER BY rank LIMIT ?`,
		match, limit)
	if err != nil {
		return nil, fmt.Errorf("querying search index: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.ItemID, &h.CollectionID, &h.Kind, &h.Name); err != nil {
			return nil, fmt.Errorf("scanning search hit: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading search hits: %w", err)
	}

	rank(hits, term)
	return hits, nil
}
