package share

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/core/ports"
	"go.trai.ch/zerr"
)

// CompletionFunc receives the exported items, or nil when the export produced nothing.
// It is invoked exactly once per started or cancelled task.
type CompletionFunc func(items []domain.ExportedItem)

// Deps are the collaborators of an export task.
type Deps struct {
	Store    ports.RecordStore
	Renderer ports.DocumentRenderer
	Sink     ports.OutputSink
	View     ports.ProgressView
	Phases   *PhaseRelay
	Tracer   ports.Tracer
	Logger   ports.Logger
}

// Task exports one selection of records in one format.
type Task struct {
	selection []domain.RecordID
	format    domain.OutputFormat
	pipeline  Pipeline
	sink      ports.OutputSink
	view      ports.ProgressView
	phases    *PhaseRelay
	tracer    ports.Tracer
	logger    ports.Logger

	mu         sync.Mutex
	stage      domain.Stage
	progress   float64
	started    bool
	cancelled  bool
	completion CompletionFunc
	err        error
	cancel     context.CancelFunc
	events     *dispatcher
	done       chan struct{}
}

// NewTask creates an export task. The selection is copied.
func NewTask(
	selection []domain.RecordID,
	format domain.OutputFormat,
	deps Deps,
	completion CompletionFunc,
) *Task {
	return &Task{
		selection: append([]domain.RecordID(nil), selection...),
		format:    format,
		pipeline: Pipeline{
			Store:    deps.Store,
			Renderer: deps.Renderer,
			Logger:   deps.Logger,
		},
		sink:       deps.Sink,
		view:       deps.View,
		phases:     deps.Phases,
		tracer:     deps.Tracer,
		logger:     deps.Logger,
		stage:      domain.StagePreparing,
		completion: completion,
		done:       make(chan struct{}),
	}
}

// Start runs the export in the background and returns immediately.
// A task cancelled before it was started never runs.
func (t *Task) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return domain.ErrTaskAlreadyStarted
	}
	t.started = true
	if t.cancelled {
		t.mu.Unlock()
		close(t.done)
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.events = newDispatcher()
	t.postLocked(func() { t.view.OnStage(domain.StagePreparing) })
	t.mu.Unlock()

	if t.phases != nil {
		t.phases.bind(t.post)
	}

	go t.run(ctx)
	return nil
}

// Cancel stops the export. The completion callback runs immediately with nil unless it
// already ran. Work in progress stops at the next record or blob boundary.
func (t *Task) Cancel() {
	t.mu.Lock()
	t.cancelled = true
	completion := t.completion
	t.completion = nil
	if completion != nil && t.err == nil {
		t.err = domain.ErrTaskCancelled
	}
	cancel := t.cancel
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if completion != nil {
		completion(nil)
	}
}

// Wait blocks until a started task has finished and every update reached the view.
func (t *Task) Wait() error {
	<-t.done
	return t.Err()
}

// Stage returns the current stage.
func (t *Task) Stage() domain.Stage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stage
}

// Progress returns the last published progress.
func (t *Task) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress
}

// Err reports why the task finished without exporting, or nil.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Task) run(ctx context.Context) {
	defer t.finish()

	doc, err := t.prepare(ctx)
	if err != nil {
		t.fail(err)
		return
	}

	t.setStage(domain.StageRendering)

	items, err := t.export(ctx, doc)
	if err != nil {
		t.fail(err)
		return
	}

	t.setStage(domain.StageCompleted)
	t.complete(items)
}

func (t *Task) prepare(ctx context.Context) (*domain.Document, error) {
	collectCtx, span := t.tracer.Start(ctx, "Collecting bodies")
	jobs := t.pipeline.CollectJobs(collectCtx, t.selection)
	span.SetAttribute("logshare.jobs", len(jobs))
	span.End()

	cache := NewFragmentCache(len(jobs))
	renderCtx, span := t.tracer.Start(ctx, "Rendering bodies",
		ports.WithAttribute("logshare.workers", WorkerCount(len(jobs))))
	err := t.pipeline.RenderFragments(renderCtx, jobs, cache, t.publishProgress)
	if err != nil {
		span.RecordError(err)
		span.End()
		return nil, err
	}
	span.SetAttribute("logshare.fragments", cache.Len())
	span.End()

	assembleCtx, span := t.tracer.Start(ctx, "Assembling document",
		ports.WithAttribute("logshare.records", len(t.selection)))
	defer span.End()
	doc, err := t.pipeline.Assemble(assembleCtx, t.selection, cache, t.publishProgress)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return doc, nil
}

func (t *Task) export(ctx context.Context, doc *domain.Document) ([]domain.ExportedItem, error) {
	ctx, span := t.tracer.Start(ctx, "Exporting "+string(t.format),
		ports.WithAttribute("logshare.format", string(t.format)))
	defer span.End()

	var (
		items []domain.ExportedItem
		err   error
	)
	if t.format.RequiresUIThread() {
		items, err = t.exportOnUI(ctx, doc)
	} else {
		items, err = t.sink.Export(ctx, doc, t.format)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return items, nil
}

// exportOnUI runs the sink on the view's UI context after the view has rendered every
// update published so far.
func (t *Task) exportOnUI(ctx context.Context, doc *domain.Document) ([]domain.ExportedItem, error) {
	if err := t.events.Flush(ctx); err != nil {
		return nil, err
	}

	var (
		items     []domain.ExportedItem
		exportErr error
	)
	err := t.view.RunOnUI(ctx, func() {
		items, exportErr = t.sink.Export(ctx, doc, t.format)
	})
	if err != nil {
		return nil, err
	}
	return items, exportErr
}

// publishProgress records p and queues it for the view. Workers call it while holding
// the fragment cache lock, so queue order matches the order values were produced.
func (t *Task) publishProgress(p float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p < t.progress {
		return
	}
	t.progress = p
	t.postLocked(func() { t.view.OnProgress(p) })
}

func (t *Task) setStage(s domain.Stage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancelled || !t.stage.CanAdvanceTo(s) {
		return
	}
	t.stage = s
	t.postLocked(func() { t.view.OnStage(s) })
}

func (t *Task) post(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.postLocked(fn)
}

func (t *Task) postLocked(fn func()) {
	if t.events != nil {
		t.events.Post(fn)
	}
}

func (t *Task) fail(err error) {
	t.mu.Lock()
	cancelled := t.cancelled || errors.Is(err, context.Canceled)
	if t.err == nil {
		if cancelled {
			t.err = domain.ErrTaskCancelled
		} else {
			t.err = errors.Join(domain.ErrExportFailed, zerr.Wrap(err, "export "+string(t.format)))
		}
	}
	t.mu.Unlock()

	if !cancelled && t.logger != nil {
		t.logger.Error(err)
	}
	t.complete(nil)
}

// complete hands items to the completion callback unless it already ran.
func (t *Task) complete(items []domain.ExportedItem) {
	t.mu.Lock()
	completion := t.completion
	t.completion = nil
	t.mu.Unlock()

	if completion != nil {
		completion(items)
	}
}

func (t *Task) finish() {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	t.events.Close()
	close(t.done)
}
