package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWatcher_SignalsOnWrite(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "styles.css")
	writeFile(t, path, ".a { z-index: 1; }")

	w, err := New(Config{Path: path, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	changes, err := w.Start()
	require.NoError(t, err)

	writeFile(t, path, ".a { z-index: 20000; }")

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change notification after write")
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "styles.css")
	writeFile(t, path, ".a { z-index: 1; }")

	w, err := New(Config{Path: path, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	changes, err := w.Start()
	require.NoError(t, err)

	writeFile(t, filepath.Join(tmpDir, "other.css"), ".b {}")

	select {
	case <-changes:
		t.Fatal("unexpected notification for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "styles.css")
	writeFile(t, path, "")

	w, err := New(Config{Path: path, DebounceDur: 100 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	changes, err := w.Start()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		writeFile(t, path, ".a {}")
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("expected one coalesced notification")
	}

	// The burst should have collapsed into a single signal.
	select {
	case <-changes:
		t.Fatal("expected burst to be debounced into one notification")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/tmp/styles.css")

	require.Equal(t, "/tmp/styles.css", cfg.Path)
	require.Equal(t, 500*time.Millisecond, cfg.DebounceDur)
}
