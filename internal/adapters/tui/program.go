package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/ui/handoff"
)

// View wraps the bubbletea program as a ports.ProgressView. The program's
// event loop is the UI-owning context.
type View struct {
	program *tea.Program
	model   *Model
	// cancel releases senders when the view is stopped before it ran.
	cancel context.CancelFunc

	mu      sync.Mutex
	started bool
	closed  bool
	stopped chan struct{}
	err     error
}

// NewView creates a view running model.
func NewView(model *Model, opts ...tea.ProgramOption) *View {
	ctx, cancel := context.WithCancel(context.Background())
	opts = append(opts, tea.WithContext(ctx))
	return &View{
		program: tea.NewProgram(model, opts...),
		model:   model,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start launches the program in a background goroutine. The program quits
// when ctx is done.
func (v *View) Start(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.started || v.closed {
		return nil
	}
	v.started = true

	stop := context.AfterFunc(ctx, func() { _ = v.Stop() })
	go func() {
		defer stop()
		_, err := v.program.Run()
		v.err = err
		v.cancel()
		close(v.stopped)
	}()
	return nil
}

// Stop signals the program to quit.
func (v *View) Stop() error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.closed = true
	started := v.started
	v.mu.Unlock()

	if !started {
		v.cancel()
		close(v.stopped)
		return nil
	}
	v.program.Quit()
	return nil
}

// Wait blocks until the program has terminated.
func (v *View) Wait() error {
	<-v.stopped
	return v.err
}

// Done is closed once the program has terminated.
func (v *View) Done() <-chan struct{} {
	return v.stopped
}

// Interrupted reports whether the user quit the program. It is only
// meaningful after Wait returned.
func (v *View) Interrupted() bool {
	return v.model.Interrupted
}

// OnStage forwards the stage to the program.
func (v *View) OnStage(stage domain.Stage) {
	v.program.Send(MsgStage{Stage: stage})
}

// OnProgress forwards progress to the program.
func (v *View) OnProgress(progress float64) {
	v.program.Send(MsgProgress{Progress: progress})
}

// OnPhaseStart forwards a phase start to the program.
func (v *View) OnPhaseStart(id, name string, startTime time.Time) {
	v.program.Send(MsgPhaseStart{ID: id, Name: name, StartTime: startTime})
}

// OnPhaseComplete forwards a phase result to the program.
func (v *View) OnPhaseComplete(id string, endTime time.Time, err error) {
	v.program.Send(MsgPhaseComplete{ID: id, EndTime: endTime, Err: err})
}

// RunOnUI runs fn inside the program's update loop, after every message sent
// before it was processed.
func (v *View) RunOnUI(ctx context.Context, fn func()) error {
	call := handoff.New(fn)
	v.program.Send(MsgRun{Call: call})
	return call.Await(ctx, v.stopped)
}
