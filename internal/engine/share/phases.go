package share

import (
	"sync"
	"time"

	"go.trai.ch/logshare/internal/core/ports"
)

// PhaseRelay is a ProgressView whose phase events share the update queue of the task it
// is bound to, so they reach the view in order with stage and progress updates.
// Until a task binds it, phase events go straight to the view.
type PhaseRelay struct {
	ports.ProgressView

	mu   sync.Mutex
	post func(fn func())
}

// NewPhaseRelay wraps view.
func NewPhaseRelay(view ports.ProgressView) *PhaseRelay {
	return &PhaseRelay{ProgressView: view}
}

// OnPhaseStart queues the phase start for the view.
func (r *PhaseRelay) OnPhaseStart(id, name string, startTime time.Time) {
	r.forward(func() { r.ProgressView.OnPhaseStart(id, name, startTime) })
}

// OnPhaseComplete queues the phase end for the view.
func (r *PhaseRelay) OnPhaseComplete(id string, endTime time.Time, err error) {
	r.forward(func() { r.ProgressView.OnPhaseComplete(id, endTime, err) })
}

func (r *PhaseRelay) bind(post func(fn func())) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.post = post
}

func (r *PhaseRelay) forward(fn func()) {
	r.mu.Lock()
	post := r.post
	r.mu.Unlock()

	if post == nil {
		fn()
		return
	}
	post(fn)
}
