package main

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.graphql", schemaSDL)
	other := writeFile(t, dir, "other.graphql", schemaSDL)

	ctx, cancel := context.WithCancel(context.Background())
	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, []string{schema}, discardLogger(), func() error {
			runs.Add(1)
			return errors.New("keeps watching")
		})
	}()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	// Give the watcher time to register before touching the files.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("# unrelated"), 0o644))
	require.NoError(t, os.WriteFile(schema, []byte(schemaSDL+"\n"), 0o644))
	assert.Eventually(t, func() bool { return runs.Load() == 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
	assert.Equal(t, int32(2), runs.Load(), "writes of one save are debounced")
}

func TestWatchMissingDir(t *testing.T) {
	err := watch(context.Background(), []string{"/does/not/exist/schema.graphql"}, discardLogger(), func() error { return nil })
	assert.Error(t, err)
}
