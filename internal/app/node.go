package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/logshare/internal/adapters/cas"
	"go.trai.ch/logshare/internal/adapters/config"
	"go.trai.ch/logshare/internal/adapters/logger"
	"go.trai.ch/logshare/internal/adapters/render"
	"go.trai.ch/logshare/internal/adapters/sqlite"
	"go.trai.ch/logshare/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main application Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the application components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			sqlite.NodeID,
			cas.NodeID,
			render.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			opener, err := graft.Dep[ports.RecordDatabaseOpener](ctx)
			if err != nil {
				return nil, err
			}

			blobs, err := graft.Dep[ports.BlobStore](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.DocumentRenderer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, opener, blobs, renderer, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
