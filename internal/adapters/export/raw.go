package export

import (
	"encoding/json"
	"io"

	"go.trai.ch/logshare/internal/core/domain"
)

// RawEncoder writes the document blocks as indented JSON.
type RawEncoder struct{}

// NewRawEncoder creates a RawEncoder.
func NewRawEncoder() *RawEncoder {
	return &RawEncoder{}
}

// Encode writes doc to w.
func (e *RawEncoder) Encode(w io.Writer, doc *domain.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
