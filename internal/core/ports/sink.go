package ports

import (
	"context"
	"io"

	"go.trai.ch/logshare/internal/core/domain"
)

// OutputSink delivers a finished document.
//
//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type OutputSink interface {
	// Export encodes doc in the requested format and returns the produced items.
	Export(ctx context.Context, doc *domain.Document, format domain.OutputFormat) ([]domain.ExportedItem, error)
}

// Encoder writes a document in one output format.
type Encoder interface {
	// Encode writes doc to w.
	Encode(w io.Writer, doc *domain.Document) error
}
