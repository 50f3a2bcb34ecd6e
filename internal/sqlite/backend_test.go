// Unit tests for backend attach/detach lifecycle.
package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

// newTestBackend returns an attached backend over a temp data directory.
// Detach is registered as test cleanup.
func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
	require.NoError(t, b.Attach(cfg))
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

func TestBackendLifecycle(t *testing.T) {
	t.Run("attach creates data dir and database file", func(t *testing.T) {
		dataDir := filepath.Join(t.TempDir(), "nested", "store")
		b := NewBackend()
		cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
		require.NoError(t, b.Attach(cfg))
		defer b.Detach()

		assert.FileExists(t, filepath.Join(dataDir, dbFileName))
	})

	t.Run("double attach returns ErrAlreadyAttached", func(t *testing.T) {
		b := newTestBackend(t)
		err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
		assert.ErrorIs(t, err, types.ErrAlreadyAttached)
	})

	t.Run("attach rejects invalid config", func(t *testing.T) {
		b := NewBackend()
		err := b.Attach(types.Config{Backend: "mystery"})
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})

	t.Run("detach is idempotent", func(t *testing.T) {
		b := NewBackend()
		cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
		require.NoError(t, b.Attach(cfg))
		require.NoError(t, b.Detach())
		require.NoError(t, b.Detach())
	})

	t.Run("operations on detached backend return ErrStoreDetached", func(t *testing.T) {
		b := NewBackend()

		_, err := b.CreateClass("Person")
		assert.ErrorIs(t, err, types.ErrStoreDetached)
		_, err = b.ListClasses()
		assert.ErrorIs(t, err, types.ErrStoreDetached)
		_, err = b.ListConnections()
		assert.ErrorIs(t, err, types.ErrStoreDetached)
		err = b.DeleteClass("some-id")
		assert.ErrorIs(t, err, types.ErrStoreDetached)
	})

	t.Run("reattach preserves existing rows", func(t *testing.T) {
		dataDir := t.TempDir()
		cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

		b := NewBackend()
		require.NoError(t, b.Attach(cfg))
		created, err := b.CreateClass("Durable")
		require.NoError(t, err)
		require.NoError(t, b.Detach())

		b2 := NewBackend()
		require.NoError(t, b2.Attach(cfg))
		defer b2.Detach()

		got, err := b2.GetClass(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Durable", got.Name)
	})
}

func TestGenerateUUID(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := generateUUID()
		require.Len(t, id, 36)
		assert.False(t, seen[id], "generated IDs must be unique")
		seen[id] = true
	}
}
