package ports

import (
	"context"
	"time"

	"go.trai.ch/logshare/internal/core/domain"
)

// ProgressView presents export progress and owns the UI execution context.
// It decouples the export pipeline from presentation, allowing the same updates
// to drive either a rich TUI or linear CI logs.
//
//go:generate mockgen -source=view.go -destination=mocks/mock_view.go -package=mocks
type ProgressView interface {
	// Start initializes the view and begins its lifecycle.
	Start(ctx context.Context) error

	// Stop signals the view to stop accepting updates and flush its output.
	Stop() error

	// Wait blocks until the view has fully terminated.
	Wait() error

	// OnStage is called when the export task changes stage.
	OnStage(stage domain.Stage)

	// OnProgress is called with the overall progress in [0, 1].
	OnProgress(progress float64)

	// OnPhaseStart is called when a pipeline phase begins.
	OnPhaseStart(id, name string, startTime time.Time)

	// OnPhaseComplete is called when a pipeline phase ends.
	OnPhaseComplete(id string, endTime time.Time, err error)

	// RunOnUI executes fn on the UI-owning context once every update delivered
	// before the call has been rendered, and blocks until fn returns.
	RunOnUI(ctx context.Context, fn func()) error
}
