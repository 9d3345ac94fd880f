package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vmunix/vidcat/internal/catalog"
	"github.com/vmunix/vidcat/internal/nfo"
	"github.com/vmunix/vidcat/pkg/epname"
	"github.com/vmunix/vidcat/pkg/idhash"
)

// buildMovies enumerates candidate movie directories up to two levels
// below the collection root. A directory without a recognized video
// file is skipped entirely.
func (s *Scanner) buildMovies(ctx context.Context, c *catalog.Collection) ([]catalog.Item, error) {
	root := c.Directory
	s.logger.Debug("scanning movies", "collection", c.Name, "directory", root)

	top, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read collection root: %w", err)
	}

	// os.ReadDir sorts entries, so repeated scans visit directories in
	// the same order regardless of filesystem enumeration.
	var dirs []string
	for _, e := range top {
		if !e.IsDir() {
			continue
		}
		dirs = append(dirs, e.Name())
		sub, err := os.ReadDir(filepath.Join(root, e.Name()))
		if err != nil {
			continue
		}
		for _, e2 := range sub {
			if e2.IsDir() {
				dirs = append(dirs, filepath.Join(e.Name(), e2.Name()))
			}
		}
	}

	var items []catalog.Item
	for _, rel := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if m := s.scanMovieDir(root, rel); m != nil {
			items = append(items, m)
		}
	}

	s.logger.Info("movies scanned", "collection", c.Name, "found", len(items))
	return items, nil
}

// scanMovieDir builds a Movie from one directory, or nil when the
// directory holds no video file.
func (s *Scanner) scanMovieDir(root, rel string) *catalog.Movie {
	dir := filepath.Join(root, rel)
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug("skipping unreadable directory", "path", dir, "error", err)
		return nil
	}

	var video fs.DirEntry
	for _, e := range entries {
		if !e.IsDir() && isVideoFile(e.Name()) {
			video = e
			break
		}
	}
	if video == nil {
		return nil
	}

	name := filepath.Base(rel)
	movie := &catalog.Movie{
		ID:       idhash.Sum(name),
		Name:     name,
		SortName: epname.SortName(name),
		Path:     filepath.ToSlash(rel),
		FileName: video.Name(),
		FileSize: entrySize(video),
		Created:  time.Now().UTC(),
		Banner:   findImage(dir, "banner"),
		Fanart:   findImage(dir, "fanart"),
		Folder:   findImage(dir, "folder"),
		Poster:   findImage(dir, "poster"),
	}

	base := strings.TrimSuffix(video.Name(), filepath.Ext(video.Name()))
	for _, sub := range findSubs(entries, base, ".srt") {
		movie.SrtSubs = append(movie.SrtSubs, catalog.Subtitle{Lang: sub.lang, Path: sub.name})
	}
	for _, sub := range findSubs(entries, base, ".vtt") {
		movie.VttSubs = append(movie.VttSubs, catalog.Subtitle{Lang: sub.lang, Path: sub.name})
	}

	movie.Metadata = s.movieMetadata(dir, base)
	return movie
}

// movieMetadata reads the movie's NFO sidecar when one exists.
// Enrichment is best-effort; without a sidecar the metadata stays empty.
func (s *Scanner) movieMetadata(dir, base string) catalog.Metadata {
	for _, candidate := range []string{base + ".nfo", "movie.nfo"} {
		path := filepath.Join(dir, candidate)
		meta, err := nfo.Movie(path)
		if err == nil {
			return meta
		}
		if !os.IsNotExist(err) {
			s.logger.Warn("bad movie nfo", "path", path, "error", err)
		}
	}
	return catalog.Metadata{}
}
