// Package sqlite implements the SQLite storage backend for the Tracknest
// catalog. Column types come from the field descriptors' storage kinds,
// and filter patterns are evaluated by the matchers registered for each
// field's matcher kind.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tracknest/tracknest/pkg/catalog"
	"github.com/tracknest/tracknest/pkg/query"
)

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "catalog.db"

// Backend implements catalog.Store on a single SQLite database file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   catalog.Config
	db       *sql.DB
	tables   map[string]*table
	matchers *query.Registry

	libraryID string
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		tables:   make(map[string]*table),
		matchers: query.Default(),
	}
}

// GetTable returns the Table for the given standard table name.
// Returns ErrTableNotFound for unknown names and ErrDetached when the
// backend is not attached.
func (b *Backend) GetTable(name string) (catalog.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, catalog.ErrDetached
	}
	t, ok := b.tables[name]
	if !ok {
		return nil, catalog.ErrTableNotFound
	}
	return t, nil
}

// Attach initializes the backend with the given configuration. Creates
// the data directory if needed, opens the database, creates any missing
// tables from the catalog schemas, and stamps a library identity on
// first use. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config catalog.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return catalog.ErrAlreadyAttached
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

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}

	for _, stmt := range schemaDDL() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("create schema: %w", err)
		}
	}

	libraryID, err := ensureLibraryID(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("library identity: %w", err)
	}

	b.db = db
	b.config = config
	b.libraryID = libraryID
	b.attached = true

	for _, name := range catalog.StandardTableNames {
		schema, _ := catalog.SchemaFor(name)
		b.tables[name] = &table{name: name, schema: schema, backend: b}
	}

	return nil
}

// Detach releases all resources held by the backend. After Detach, all
// operations return ErrDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	b.tables = make(map[string]*table)
	return nil
}

// LibraryID returns the UUID stamped into this library's meta table at
// first attach, or the empty string when detached.
func (b *Backend) LibraryID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.libraryID
}

// ensureLibraryID reads the library UUID from the meta table, minting
// and storing a new UUID v7 when the table is empty.
func ensureLibraryID(db *sql.DB) (string, error) {
	var id string
	err := db.QueryRow("SELECT value FROM meta WHERE key = 'library_id'").Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	id = newUUID()
	created := time.Now().UTC().Format(time.RFC3339)
	if _, err := db.Exec(
		"INSERT INTO meta (key, value) VALUES ('library_id', ?), ('created_at', ?)",
		id, created,
	); err != nil {
		return "", err
	}
	return id, nil
}

// newUUID generates a UUID v7 string, falling back to v4 if the clock
// source fails.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
