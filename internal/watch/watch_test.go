package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/biome/internal/testutil"
)

func TestWatch_ReportsLintableChanges(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan []string, 4)
	ready := make(chan struct{})
	errc := make(chan error, 1)
	go func() {
		errc <- Watch(ctx, Options{
			Dirs:     []string{dir},
			Debounce: 20 * time.Millisecond,
			Logger:   testutil.NewTestLogger(t),
			ready:    ready,
		}, func(_ context.Context, paths []string) {
			changes <- paths
		})
	}()

	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not start")
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "a.js"), []byte("debugger;"), 0o644))

	select {
	case paths := <-changes:
		assert.Equal(t, []string{filepath.Join(dir, "src", "a.js")}, paths)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatch_MissingDir(t *testing.T) {
	err := Watch(context.Background(), Options{Dirs: []string{filepath.Join(t.TempDir(), "missing")}}, func(context.Context, []string) {})
	assert.Error(t, err)
}
