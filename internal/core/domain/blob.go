package domain

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// BlobIDLength is the number of hex digits in a BlobID.
const BlobIDLength = 16

// BlobID identifies stored body content by its digest.
// Records referencing identical bytes share one BlobID.
type BlobID string

// NewBlobID returns the content identity of data.
func NewBlobID(data []byte) BlobID {
	return BlobID(fmt.Sprintf("%016x", xxhash.Sum64(data)))
}

// String returns the identifier as a string.
func (id BlobID) String() string {
	return string(id)
}

// BlobRef is a record's reference to a stored body.
type BlobRef struct {
	ID          BlobID
	Size        int64
	ContentType string
	// DecodingError describes why the body could not be decoded when it was captured.
	DecodingError string
}

// RenderJob is one unit of body pre-rendering.
// Fetch is lazy: no I/O happens until a worker calls it.
type RenderJob struct {
	Blob          BlobID
	Fetch         func(ctx context.Context) ([]byte, error)
	ContentType   string
	DecodingError string
}
