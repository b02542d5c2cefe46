// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/logshare/internal/core/domain"
)

// RecordStore resolves record identifiers and fetches body content.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Record resolves an identifier.
	// Returns nil, nil if the record no longer exists.
	// A message linked to a task is returned with Message.Task populated.
	Record(ctx context.Context, id domain.RecordID) (*domain.Record, error)

	// Blob fetches body content.
	// Returns nil, nil if the content was purged.
	Blob(ctx context.Context, id domain.BlobID) ([]byte, error)
}

// ListOptions controls record listing.
type ListOptions struct {
	// Limit caps the number of records returned. Zero means no limit.
	Limit int
	// NewestFirst reverses the default chronological order.
	NewestFirst bool
}

// RecordLister enumerates stored records.
type RecordLister interface {
	// List returns records ordered by creation time.
	List(ctx context.Context, opts ListOptions) ([]*domain.Record, error)

	// IDs returns record identifiers in the same order as List without loading the records.
	IDs(ctx context.Context, opts ListOptions) ([]domain.RecordID, error)
}

// RecordWriter persists records.
type RecordWriter interface {
	// PutTask stores a network task. Body references must already exist in the blob store.
	PutTask(ctx context.Context, task *domain.NetworkTask) error

	// PutMessage stores a message.
	PutMessage(ctx context.Context, msg *domain.Message) error
}

// RecordDatabase is an open record store that can be read, listed and written.
type RecordDatabase interface {
	RecordStore
	RecordLister
	RecordWriter
	io.Closer
}

// RecordDatabaseOpener opens the record database described by settings.
type RecordDatabaseOpener interface {
	// Open opens or creates the database and applies pending migrations.
	Open(ctx context.Context, settings domain.Settings) (RecordDatabase, error)
}

// BlobStore is content addressable storage for body content.
type BlobStore interface {
	// Put stores data under root and returns its identity. Storing identical data twice is a no-op.
	Put(root string, data []byte) (domain.BlobID, error)

	// Get returns the data for id stored under root.
	// Returns nil, nil if not found.
	Get(root string, id domain.BlobID) ([]byte, error)
}
