package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DebouncedChange(t *testing.T) {
	root := t.TempDir()

	changed := make(chan string, 1)
	w := NewWatcher([]string{root}, func(path string) {
		select {
		case changed <- path:
		default:
		}
	}, testLogger())
	w.debounceDelay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watch a moment to attach before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "movie.mkv"), []byte("x"), 0o644))

	select {
	case path := <-changed:
		assert.Contains(t, path, root)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_NewDirectoryIsWatched(t *testing.T) {
	root := t.TempDir()

	changed := make(chan string, 4)
	w := NewWatcher([]string{root}, func(path string) {
		select {
		case changed <- path:
		default:
		}
	}, testLogger())
	w.debounceDelay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)
	time.Sleep(100 * time.Millisecond)

	sub := filepath.Join(root, "New Show")
	require.NoError(t, os.Mkdir(sub, 0o755))

	// Wait for the directory event and its watch registration.
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no notification for new directory")
	}

	require.NoError(t, os.WriteFile(filepath.Join(sub, "ep.mkv"), []byte("x"), 0o644))
	select {
	case path := <-changed:
		assert.Contains(t, path, "New Show")
	case <-time.After(5 * time.Second):
		t.Fatal("no notification for file inside new directory")
	}
}
