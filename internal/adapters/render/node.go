package render

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/logshare/internal/core/ports"
)

// NodeID is the unique identifier for the document renderer Graft node.
const NodeID graft.ID = "adapter.document_renderer"

func init() {
	graft.Register(graft.Node[ports.DocumentRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentRenderer, error) {
			return New(), nil
		},
	})
}
