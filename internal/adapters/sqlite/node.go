package sqlite

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/logshare/internal/adapters/cas"
	"go.trai.ch/logshare/internal/core/ports"
)

// NodeID is the unique identifier for the record database opener Graft node.
const NodeID graft.ID = "adapter.record_database"

func init() {
	graft.Register(graft.Node[ports.RecordDatabaseOpener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID},
		Run: func(ctx context.Context) (ports.RecordDatabaseOpener, error) {
			blobs, err := graft.Dep[ports.BlobStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(blobs), nil
		},
	})
}
