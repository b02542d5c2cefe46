// Package sqlite persists captured log records in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/core/ports"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // Registers the "sqlite" driver.
)

// Store implements ports.RecordDatabase backed by SQLite.
// Body content is kept out of the database in a blob store.
type Store struct {
	db        *sql.DB
	path      string
	blobs     ports.BlobStore
	blobsRoot string
}

// Open initializes or connects to the record database at path and applies migrations.
func Open(ctx context.Context, path string, blobs ports.BlobStore, blobsRoot string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}

	// Pragmas are per connection, so the pool holds exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "pragma", pragma)
		}
	}

	store := &Store{db: db, path: path, blobs: blobs, blobsRoot: blobsRoot}
	if err := store.applyMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Blob fetches body content from the blob store.
func (s *Store) Blob(ctx context.Context, id domain.BlobID) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.blobs.Get(s.blobsRoot, id)
}

// Opener implements ports.RecordDatabaseOpener.
type Opener struct {
	blobs ports.BlobStore
}

// NewOpener creates an opener whose databases read bodies from blobs.
func NewOpener(blobs ports.BlobStore) *Opener {
	return &Opener{blobs: blobs}
}

// Open opens the database named by settings.
func (o *Opener) Open(ctx context.Context, settings domain.Settings) (ports.RecordDatabase, error) {
	store, err := Open(ctx, settings.DatabasePath, o.blobs, settings.BlobsPath)
	if err != nil {
		return nil, err
	}
	return store, nil
}
