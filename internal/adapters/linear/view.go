// Package linear provides a line-based progress view for CI and other non-interactive output.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/ui/handoff"
	"go.trai.ch/logshare/internal/ui/output"
	"go.trai.ch/logshare/internal/ui/style"
)

// View implements ports.ProgressView by printing one line per update.
// All output is written by the view's own event loop, which is also the
// UI-owning context for RunOnUI.
type View struct {
	out    io.Writer
	output *termenv.Output

	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	started bool
	closed  bool
	stopped chan struct{}

	// Owned by the event loop.
	phases  map[string]phase
	percent int
}

type phase struct {
	name      string
	startTime time.Time
}

// NewView creates a linear view writing to w, or stderr when w is nil.
func NewView(w io.Writer) *View {
	if w == nil {
		w = os.Stderr
	}
	return &View{
		out:     w,
		output:  output.NewWithProfile(w, output.ColorProfileANSI),
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
		phases:  make(map[string]phase),
		percent: -1,
	}
}

// Start launches the event loop. The view stops when ctx is done.
func (v *View) Start(ctx context.Context) error {
	v.mu.Lock()
	if v.started || v.closed {
		v.mu.Unlock()
		return nil
	}
	v.started = true
	v.mu.Unlock()

	stop := context.AfterFunc(ctx, func() { _ = v.Stop() })
	go func() {
		defer stop()
		v.loop()
	}()
	return nil
}

// Stop stops accepting updates. Updates already queued are still printed.
func (v *View) Stop() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	v.closed = true
	if !v.started {
		close(v.stopped)
		return nil
	}
	v.signal()
	return nil
}

// Wait blocks until the event loop has printed every queued update and exited.
func (v *View) Wait() error {
	<-v.stopped
	return nil
}

// OnStage prints the new stage.
func (v *View) OnStage(stage domain.Stage) {
	v.post(func() {
		icon := style.StageIcon(stage)
		if stage == domain.StageCompleted {
			icon = v.output.String(icon).Foreground(termenv.ANSIGreen).String()
		}
		v.printf("%s %s\n", icon, stage.Label())
	})
}

// OnProgress prints progress whenever it reaches a new whole percent.
func (v *View) OnProgress(progress float64) {
	v.post(func() {
		percent := int(max(0, min(1, progress)) * 100)
		if percent <= v.percent {
			return
		}
		v.percent = percent
		v.printf("  %3d%%\n", percent)
	})
}

// OnPhaseStart prints a phase start message.
func (v *View) OnPhaseStart(id, name string, startTime time.Time) {
	v.post(func() {
		v.phases[id] = phase{name: name, startTime: startTime}
		prefix := v.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
		v.printf("%s Starting...\n", prefix)
	})
}

// OnPhaseComplete prints the phase result and its duration.
func (v *View) OnPhaseComplete(id string, endTime time.Time, err error) {
	v.post(func() {
		p, ok := v.phases[id]
		if !ok {
			return
		}
		delete(v.phases, id)

		duration := endTime.Sub(p.startTime).Round(time.Millisecond)
		prefix := fmt.Sprintf("[%s]", p.name)
		if err != nil {
			symbol := v.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
			v.printf("%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
			return
		}
		symbol := v.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
		v.printf("%s %s Completed in %v\n", prefix, symbol, duration)
	})
}

// RunOnUI runs fn on the event loop after every earlier update was printed.
func (v *View) RunOnUI(ctx context.Context, fn func()) error {
	call := handoff.New(fn)
	if !v.post(call.Run) {
		return domain.ErrViewStopped
	}
	return call.Await(ctx, v.stopped)
}

// post queues fn for the event loop. It reports false once the view is stopped.
func (v *View) post(fn func()) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return false
	}
	v.queue = append(v.queue, fn)
	v.signal()
	return true
}

func (v *View) signal() {
	select {
	case v.wake <- struct{}{}:
	default:
	}
}

func (v *View) loop() {
	defer close(v.stopped)
	for {
		v.mu.Lock()
		batch := v.queue
		v.queue = nil
		closed := v.closed
		v.mu.Unlock()

		for _, fn := range batch {
			fn()
		}
		if len(batch) == 0 {
			if closed {
				return
			}
			<-v.wake
		}
	}
}

func (v *View) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(v.out, format, args...)
}
