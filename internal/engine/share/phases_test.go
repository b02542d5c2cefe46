package share_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/core/ports"
	"go.trai.ch/logshare/internal/engine/share"
	"go.uber.org/mock/gomock"
)

// eventLog records stage and phase updates in delivery order.
type eventLog struct {
	recordingView

	mu     sync.Mutex
	events []string
}

func (v *eventLog) OnStage(stage domain.Stage) {
	v.add("stage " + stage.String())
}

func (v *eventLog) OnPhaseStart(_, name string, _ time.Time) {
	v.add("start " + name)
}

func (v *eventLog) OnPhaseComplete(id string, _ time.Time, _ error) {
	v.add("end " + id)
}

func (v *eventLog) add(event string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, event)
}

func (v *eventLog) get() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.events...)
}

// relayTracer reports every span to a phase relay the way the span bridge does.
type relayTracer struct {
	relay *share.PhaseRelay

	mu    sync.Mutex
	names []string
}

func (tr *relayTracer) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	tr.mu.Lock()
	tr.names = append(tr.names, name)
	id := strconv.Itoa(len(tr.names))
	tr.mu.Unlock()

	tr.relay.OnPhaseStart(id, name, time.Now())
	return ctx, &relaySpan{relay: tr.relay, name: name}
}

type relaySpan struct {
	relay *share.PhaseRelay
	name  string
}

func (s *relaySpan) End() {
	s.relay.OnPhaseComplete(s.name, time.Now(), nil)
}

func (s *relaySpan) RecordError(error) {}

func (s *relaySpan) SetAttribute(string, any) {}

func (s *relaySpan) Write(p []byte) (int, error) { return len(p), nil }

func TestTask_PhaseEventsFollowStageOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := newMemStore()
		view := &eventLog{}
		deps, _, m := setupShareTest(t, store, &view.recordingView)

		relay := share.NewPhaseRelay(view)
		deps.View = view
		deps.Phases = relay
		deps.Tracer = &relayTracer{relay: relay}

		store.addTask("a", store.putBlob("body a", "text/plain"), nil)
		m.sink.EXPECT().Export(gomock.Any(), gomock.Any(), domain.FormatPlainText).Return(nil, nil)

		task := share.NewTask(ids("a"), domain.FormatPlainText, deps, (&completions{}).record)
		require.NoError(t, task.Start(context.Background()))
		require.NoError(t, task.Wait())

		assert.Equal(t, []string{
			"stage " + domain.StagePreparing.String(),
			"start Collecting bodies",
			"end Collecting bodies",
			"start Rendering bodies",
			"end Rendering bodies",
			"start Assembling document",
			"end Assembling document",
			"stage " + domain.StageRendering.String(),
			"start Exporting text",
			"end Exporting text",
			"stage " + domain.StageCompleted.String(),
		}, view.get())
	})
}

func TestPhaseRelay_UnboundForwardsDirectly(t *testing.T) {
	view := &eventLog{}
	relay := share.NewPhaseRelay(view)

	relay.OnPhaseStart("1", "Rendering bodies", time.Now())
	relay.OnPhaseComplete("1", time.Now(), nil)

	assert.Equal(t, []string{"start Rendering bodies", "end 1"}, view.get())
}
