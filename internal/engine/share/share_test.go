package share_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/core/ports"
	"go.trai.ch/logshare/internal/core/ports/mocks"
	"go.trai.ch/logshare/internal/engine/share"
	"go.uber.org/mock/gomock"
)

// memStore is an in-memory record store that counts blob fetches.
type memStore struct {
	records map[domain.RecordID]*domain.Record
	blobs   map[domain.BlobID][]byte
	failing map[domain.BlobID]error

	// blockFetches makes Blob wait for cancellation.
	blockFetches bool

	mu      sync.Mutex
	fetches map[domain.BlobID]int
}

func newMemStore() *memStore {
	return &memStore{
		records: make(map[domain.RecordID]*domain.Record),
		blobs:   make(map[domain.BlobID][]byte),
		failing: make(map[domain.BlobID]error),
		fetches: make(map[domain.BlobID]int),
	}
}

func (s *memStore) Record(_ context.Context, id domain.RecordID) (*domain.Record, error) {
	r, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return r, nil
}

func (s *memStore) Blob(ctx context.Context, id domain.BlobID) ([]byte, error) {
	s.mu.Lock()
	s.fetches[id]++
	s.mu.Unlock()

	if s.blockFetches {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err, ok := s.failing[id]; ok {
		return nil, err
	}
	data, ok := s.blobs[id]
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (s *memStore) fetchCount(id domain.BlobID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches[id]
}

func (s *memStore) totalFetches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.fetches {
		n += c
	}
	return n
}

func (s *memStore) putBlob(body, contentType string) *domain.BlobRef {
	id := domain.NewBlobID([]byte(body))
	s.blobs[id] = []byte(body)
	return &domain.BlobRef{ID: id, Size: int64(len(body)), ContentType: contentType}
}

func (s *memStore) addTask(id string, response, request *domain.BlobRef) *domain.NetworkTask {
	task := &domain.NetworkTask{
		ID:           domain.RecordID(id),
		Method:       "GET",
		URL:          "https://example.com/" + id,
		StatusCode:   200,
		ResponseBody: response,
		RequestBody:  request,
	}
	s.records[task.ID] = domain.NewTaskRecord(task)
	return task
}

func (s *memStore) addMessage(id, text string, task *domain.NetworkTask) {
	msg := &domain.Message{ID: domain.RecordID(id), Level: domain.LogLevelInfo, Text: text, Task: task}
	if task != nil {
		msg.TaskID = task.ID
	}
	s.records[msg.ID] = domain.NewMessageRecord(msg)
}

// textRenderer renders blocks that are easy to assert on.
type textRenderer struct {
	mu        sync.Mutex
	bodyCalls int
}

func (r *textRenderer) RenderBody(body []byte, contentType, decodingErr string) domain.Fragment {
	r.mu.Lock()
	r.bodyCalls++
	r.mu.Unlock()

	var f domain.Fragment
	if decodingErr != "" {
		f = append(f, domain.Block{Kind: domain.BlockNotice, Text: decodingErr})
	}
	return append(f, domain.Block{Kind: domain.BlockBody, Text: string(body), Language: contentType})
}

func (r *textRenderer) RenderTask(b *domain.DocumentBuilder, task *domain.NetworkTask, lookup domain.FragmentLookup) {
	b.Append(domain.Block{Kind: domain.BlockHeading, Text: "task " + task.ID.String()})
	for _, ref := range []*domain.BlobRef{task.ResponseBody, task.RequestBody} {
		if ref == nil {
			continue
		}
		if f, ok := lookup(ref.ID); ok {
			b.Append(f...)
		} else {
			b.Append(domain.Block{Kind: domain.BlockNotice, Text: "unavailable"})
		}
	}
}

func (r *textRenderer) RenderMessage(b *domain.DocumentBuilder, msg *domain.Message) {
	b.Append(domain.Block{Kind: domain.BlockHeading, Text: "message " + msg.ID.String()})
}

func (r *textRenderer) AddSeparator(b *domain.DocumentBuilder) {
	b.AppendSeparator()
}

func (r *textRenderer) Finalize(b *domain.DocumentBuilder) *domain.Document {
	return b.Finalize("Logs", time.Unix(0, 0).UTC())
}

func (r *textRenderer) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bodyCalls
}

// recordingView captures every update it receives.
type recordingView struct {
	mu       sync.Mutex
	stages   []domain.Stage
	progress []float64

	uiCalls      int
	progressAtUI []float64
	stagesAtUI   []domain.Stage
}

func (v *recordingView) Start(context.Context) error { return nil }

func (v *recordingView) Stop() error { return nil }

func (v *recordingView) Wait() error { return nil }

func (v *recordingView) OnPhaseStart(string, string, time.Time) {}

func (v *recordingView) OnPhaseComplete(string, time.Time, error) {}

func (v *recordingView) OnStage(stage domain.Stage) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stages = append(v.stages, stage)
}

func (v *recordingView) OnProgress(progress float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.progress = append(v.progress, progress)
}

func (v *recordingView) RunOnUI(_ context.Context, fn func()) error {
	v.mu.Lock()
	v.uiCalls++
	v.progressAtUI = append([]float64(nil), v.progress...)
	v.stagesAtUI = append([]domain.Stage(nil), v.stages...)
	v.mu.Unlock()
	fn()
	return nil
}

func (v *recordingView) snapshot() ([]domain.Stage, []float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.Stage(nil), v.stages...), append([]float64(nil), v.progress...)
}

type shareTestMocks struct {
	sink   *mocks.MockOutputSink
	tracer *mocks.MockTracer
	logger *mocks.MockLogger
}

// setupShareTest wires fakes and optimistic mocks into task dependencies.
func setupShareTest(t *testing.T, store *memStore, view *recordingView) (share.Deps, *textRenderer, shareTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := shareTestMocks{
		sink:   mocks.NewMockOutputSink(ctrl),
		tracer: mocks.NewMockTracer(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()

	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	renderer := &textRenderer{}
	deps := share.Deps{
		Store:    store,
		Renderer: renderer,
		Sink:     m.sink,
		View:     view,
		Tracer:   m.tracer,
		Logger:   m.logger,
	}
	return deps, renderer, m
}

func pipelineFor(deps share.Deps) *share.Pipeline {
	return &share.Pipeline{Store: deps.Store, Renderer: deps.Renderer, Logger: deps.Logger}
}

func ids(values ...string) []domain.RecordID {
	out := make([]domain.RecordID, len(values))
	for i, v := range values {
		out[i] = domain.RecordID(v)
	}
	return out
}

func blockTexts(doc *domain.Document) []string {
	out := make([]string, len(doc.Blocks))
	for i, b := range doc.Blocks {
		if b.Kind == domain.BlockSeparator {
			out[i] = "---"
			continue
		}
		out[i] = b.Text
	}
	return out
}
