package scanner

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/vidcat/internal/catalog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func touch(t *testing.T, elem ...string) {
	t.Helper()
	path := filepath.Join(elem...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func movieCollection(dir string) *catalog.Collection {
	return &catalog.Collection{ID: "m1", Name: "Movies", Type: catalog.TypeMovies, Directory: dir}
}

func showCollection(dir string) *catalog.Collection {
	return &catalog.Collection{ID: "s1", Name: "Shows", Type: catalog.TypeShows, Directory: dir}
}

func TestBuild_Movies(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "Big Buck Bunny (2008)", "bbb.mkv")
	touch(t, root, "Big Buck Bunny (2008)", "poster.jpg")
	touch(t, root, "Big Buck Bunny (2008)", "bbb.en.srt")
	// Two levels deep.
	touch(t, root, "Classics", "Metropolis", "metropolis.mp4")
	// No video file, skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Empty Dir"), 0o755))

	items, err := New(testLogger()).Build(context.Background(), movieCollection(root))
	require.NoError(t, err)
	require.Len(t, items, 2)

	bbb, ok := items[0].(*catalog.Movie)
	require.True(t, ok)
	assert.Equal(t, "Big Buck Bunny (2008)", bbb.Name)
	assert.Equal(t, "big buck bunny", bbb.SortName)
	assert.Equal(t, "bbb.mkv", bbb.FileName)
	assert.Equal(t, "poster.jpg", bbb.Poster)
	require.Len(t, bbb.SrtSubs, 1)
	assert.Equal(t, "en", bbb.SrtSubs[0].Lang)

	metro, ok := items[1].(*catalog.Movie)
	require.True(t, ok)
	assert.Equal(t, "Metropolis", metro.Name)
	assert.Equal(t, "Classics/Metropolis", metro.Path)
}

func TestBuild_MoviesFirstVideoWins(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "Double Feature", "b-side.mkv")
	touch(t, root, "Double Feature", "a-side.mkv")

	items, err := New(testLogger()).Build(context.Background(), movieCollection(root))
	require.NoError(t, err)
	require.Len(t, items, 1)
	// Entries are visited sorted, so the lexicographically first file
	// is the movie regardless of creation order.
	assert.Equal(t, "a-side.mkv", items[0].(*catalog.Movie).FileName)
}

func TestBuild_Shows(t *testing.T) {
	root := t.TempDir()
	show := filepath.Join(root, "Lost Signal")
	touch(t, show, "poster.jpg")
	touch(t, show, "Season 01", "lost.signal.s01e01.mkv")
	touch(t, show, "Season 01", "lost.signal.s01e02.mkv")
	touch(t, show, "s02", "lost.signal.s02e01.mkv")
	// Parsed season disagrees with the folder: dropped.
	touch(t, show, "Season 01", "lost.signal.s03e09.mkv")
	// Not a season directory: ignored.
	touch(t, show, "extras", "bloopers.mkv")

	items, err := New(testLogger()).Build(context.Background(), showCollection(root))
	require.NoError(t, err)
	require.Len(t, items, 1)

	sh, ok := items[0].(*catalog.Show)
	require.True(t, ok)
	assert.Equal(t, "Lost Signal", sh.Name)
	assert.Equal(t, "poster.jpg", sh.Poster)
	require.Len(t, sh.Seasons, 2)

	s1 := sh.Seasons[0]
	assert.Equal(t, 1, s1.SeasonNo)
	assert.Equal(t, "Season 1", s1.Name)
	require.Len(t, s1.Episodes, 2)
	assert.Equal(t, "01x01", s1.Episodes[0].Name)
	assert.Equal(t, "Season 01/lost.signal.s01e01.mkv", s1.Episodes[0].FileName)
	assert.Equal(t, "01x02", s1.Episodes[1].Name)

	s2 := sh.Seasons[1]
	assert.Equal(t, 2, s2.SeasonNo)
	require.Len(t, s2.Episodes, 1)
	assert.Equal(t, 1, s2.Episodes[0].EpisodeNo)
}

func TestBuild_ShowNFO(t *testing.T) {
	root := t.TempDir()
	show := filepath.Join(root, "Lost Signal")
	require.NoError(t, os.MkdirAll(show, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(show, "tvshow.nfo"),
		[]byte(`<tvshow><title>Lost Signal</title><genre>Drama</genre></tvshow>`), 0o644))

	items, err := New(testLogger()).Build(context.Background(), showCollection(root))
	require.NoError(t, err)
	require.Len(t, items, 1)
	sh := items[0].(*catalog.Show)
	assert.Equal(t, "Lost Signal", sh.Metadata.Title)
	assert.Equal(t, []string{"Drama"}, sh.Metadata.Genres)
}

// Scanning the same tree twice must produce identical IDs in identical
// order; readers rely on stable IDs across rebuilds.
func TestBuild_Deterministic(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "Alpha", "alpha.mkv")
	touch(t, root, "Beta", "beta.mkv")
	touch(t, root, "Gamma", "gamma.mkv")

	s := New(testLogger())
	first, err := s.Build(context.Background(), movieCollection(root))
	require.NoError(t, err)
	second, err := s.Build(context.Background(), movieCollection(root))
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ItemID(), second[i].ItemID())
		assert.Equal(t, first[i].ItemName(), second[i].ItemName())
	}
}

func TestBuild_UnknownType(t *testing.T) {
	c := &catalog.Collection{Name: "Mixed", Type: "music", Directory: t.TempDir()}
	_, err := New(testLogger()).Build(context.Background(), c)
	require.ErrorIs(t, err, catalog.ErrUnknownType)
}

func TestBuild_MissingRoot(t *testing.T) {
	c := movieCollection(filepath.Join(t.TempDir(), "gone"))
	_, err := New(testLogger()).Build(context.Background(), c)
	require.Error(t, err)
}

func TestBuild_Cancelled(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "Alpha", "alpha.mkv")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(testLogger()).Build(ctx, movieCollection(root))
	require.ErrorIs(t, err, context.Canceled)
}
