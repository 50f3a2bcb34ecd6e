// Package sqlite implements the SQLite storage backend for the classmap
// modeling store. The database file is the system of record: cascade rules
// are declared in the schema and every mutation runs in its own transaction
// with rollback on any error path.
package sqlite

import (
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the SQLite database file created under DataDir.
const dbFileName = "classmap.db"

// Backend implements the Store interface using a single SQLite database
// file. The backend is not usable until Attach is called with a Config.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, opens the database file, and applies
// the schema. The schema uses CREATE TABLE IF NOT EXISTS, so attaching to an
// existing data directory preserves its contents.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// Foreign key enforcement is off by default in SQLite and is a
	// per-connection setting, so it goes in the DSN rather than a one-off
	// PRAGMA statement against the pool. The declared ON DELETE CASCADE
	// rules depend on it.
	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", "file:"+dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config
	b.attached = true

	return nil
}

// Detach releases all resources held by the backend. After Detach, all
// operations return ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false

	return nil
}

// conn returns the database handle, or ErrStoreDetached if the backend is
// not attached. Every operation acquires the handle through here.
func (b *Backend) conn() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.db, nil
}

// generateUUID generates a new UUID v7 for entity IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
