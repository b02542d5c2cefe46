package share_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/engine/share"
	"go.uber.org/mock/gomock"
)

// completions counts completion callback invocations.
type completions struct {
	mu    sync.Mutex
	calls [][]domain.ExportedItem
}

func (c *completions) record(items []domain.ExportedItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, items)
}

func (c *completions) get() [][]domain.ExportedItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]domain.ExportedItem(nil), c.calls...)
}

func TestTask_ExportsSelection(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := newMemStore()
		view := &recordingView{}
		deps, renderer, m := setupShareTest(t, store, view)

		bodyX := store.putBlob(`{"x":1}`, "application/json")
		taskA := store.addTask("task-a", bodyX, nil)
		store.addMessage("msg-b", "follow up", taskA)
		store.addTask("task-c", bodyX, nil)

		want := []domain.ExportedItem{{Path: "/tmp/logs.html", MimeType: "text/html", Size: 42}}
		var exported *domain.Document
		m.sink.EXPECT().Export(gomock.Any(), gomock.Any(), domain.FormatHTML).DoAndReturn(
			func(_ context.Context, doc *domain.Document, _ domain.OutputFormat) ([]domain.ExportedItem, error) {
				exported = doc
				return want, nil
			},
		).Times(1)

		done := &completions{}
		task := share.NewTask(ids("task-a", "msg-b", "task-c"), domain.FormatHTML, deps, done.record)
		require.NoError(t, task.Start(context.Background()))
		require.NoError(t, task.Wait())

		calls := done.get()
		require.Len(t, calls, 1)
		assert.Equal(t, want, calls[0])

		require.NotNil(t, exported)
		assert.Equal(t, 3, exported.Records)
		assert.Equal(t, 1, store.fetchCount(bodyX.ID))
		assert.Equal(t, 1, renderer.calls())

		assert.Equal(t, domain.StageCompleted, task.Stage())
		assert.Equal(t, 1.0, task.Progress())

		stages, progress := view.snapshot()
		assert.Equal(t, []domain.Stage{domain.StagePreparing, domain.StageRendering, domain.StageCompleted}, stages)
		require.NotEmpty(t, progress)
		assert.IsNonDecreasing(t, progress)
		assert.Equal(t, 1.0, progress[len(progress)-1])
		assert.Zero(t, view.uiCalls)
	})
}

func TestTask_ProgressIsMonotonicAcrossPhases(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := newMemStore()
		view := &recordingView{}
		deps, _, m := setupShareTest(t, store, view)

		var selection []domain.RecordID
		for i := range 40 {
			id := string(rune('A'+i%26)) + string(rune('a'+i/26))
			store.addTask(id, store.putBlob("body "+id, "text/plain"), nil)
			selection = append(selection, domain.RecordID(id))
		}

		m.sink.EXPECT().Export(gomock.Any(), gomock.Any(), domain.FormatPlainText).Return(nil, nil)

		done := &completions{}
		task := share.NewTask(selection, domain.FormatPlainText, deps, done.record)
		require.NoError(t, task.Start(context.Background()))
		require.NoError(t, task.Wait())

		_, progress := view.snapshot()
		require.Len(t, progress, 80)
		assert.IsIncreasing(t, progress)
		for _, v := range progress[:40] {
			assert.LessOrEqual(t, v, 0.5)
		}
		for _, v := range progress[40:] {
			assert.Greater(t, v, 0.5)
		}
		assert.Equal(t, 1.0, progress[79])
		assert.Len(t, done.get(), 1)
	})
}

func TestTask_UIThreadFormatWaitsForView(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := newMemStore()
		view := &recordingView{}
		deps, _, m := setupShareTest(t, store, view)

		for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
			store.addTask(id, store.putBlob("body "+id, "text/plain"), nil)
		}

		m.sink.EXPECT().Export(gomock.Any(), gomock.Any(), domain.FormatPDF).
			Return([]domain.ExportedItem{{Path: "logs.pdf"}}, nil)

		done := &completions{}
		task := share.NewTask(ids("a", "b", "c", "d", "e", "f", "g", "h", "i"), domain.FormatPDF, deps, done.record)
		require.NoError(t, task.Start(context.Background()))
		require.NoError(t, task.Wait())

		assert.Equal(t, 1, view.uiCalls)
		require.NotEmpty(t, view.progressAtUI)
		assert.Equal(t, 1.0, view.progressAtUI[len(view.progressAtUI)-1])
		assert.Equal(t, []domain.Stage{domain.StagePreparing, domain.StageRendering}, view.stagesAtUI)
		assert.Len(t, done.get(), 1)
	})
}

func TestTask_CancelBeforeStart(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := newMemStore()
		store.addMessage("a", "a", nil)
		deps, _, _ := setupShareTest(t, store, &recordingView{})

		done := &completions{}
		task := share.NewTask(ids("a"), domain.FormatHTML, deps, done.record)
		task.Cancel()

		calls := done.get()
		require.Len(t, calls, 1)
		assert.Nil(t, calls[0])

		require.NoError(t, task.Start(context.Background()))
		err := task.Wait()
		require.ErrorIs(t, err, domain.ErrTaskCancelled)

		task.Cancel()
		assert.Len(t, done.get(), 1)
	})
}

func TestTask_CancelDuringRendering(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := newMemStore()
		store.blockFetches = true
		store.addTask("a", store.putBlob("a", "text/plain"), nil)
		deps, _, _ := setupShareTest(t, store, &recordingView{})

		done := &completions{}
		task := share.NewTask(ids("a"), domain.FormatHTML, deps, done.record)
		require.NoError(t, task.Start(context.Background()))

		synctest.Wait()
		assert.Empty(t, done.get())

		task.Cancel()
		calls := done.get()
		require.Len(t, calls, 1)
		assert.Nil(t, calls[0])

		err := task.Wait()
		require.ErrorIs(t, err, domain.ErrTaskCancelled)
		assert.Equal(t, domain.StagePreparing, task.Stage())
		assert.Len(t, done.get(), 1)
	})
}

func TestTask_ParentContextCancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := newMemStore()
		store.blockFetches = true
		store.addTask("a", store.putBlob("a", "text/plain"), nil)
		deps, _, _ := setupShareTest(t, store, &recordingView{})

		ctx, cancel := context.WithCancel(context.Background())
		done := &completions{}
		task := share.NewTask(ids("a"), domain.FormatHTML, deps, done.record)
		require.NoError(t, task.Start(ctx))

		synctest.Wait()
		cancel()

		err := task.Wait()
		require.ErrorIs(t, err, domain.ErrTaskCancelled)
		calls := done.get()
		require.Len(t, calls, 1)
		assert.Nil(t, calls[0])
	})
}

func TestTask_SinkFailure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := newMemStore()
		store.addMessage("a", "a", nil)
		deps, _, m := setupShareTest(t, store, &recordingView{})

		m.sink.EXPECT().Export(gomock.Any(), gomock.Any(), domain.FormatRawData).
			Return(nil, errors.New("disk full"))

		done := &completions{}
		task := share.NewTask(ids("a"), domain.FormatRawData, deps, done.record)
		require.NoError(t, task.Start(context.Background()))

		err := task.Wait()
		require.Error(t, err)
		require.ErrorIs(t, err, domain.ErrExportFailed)

		calls := done.get()
		require.Len(t, calls, 1)
		assert.Nil(t, calls[0])
		assert.Equal(t, domain.StageRendering, task.Stage())
	})
}

func TestTask_InvariantViolation(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := newMemStore()
		store.records["odd"] = &domain.Record{ID: "odd", Kind: domain.RecordKind(9)}
		deps, _, _ := setupShareTest(t, store, &recordingView{})

		done := &completions{}
		task := share.NewTask(ids("odd"), domain.FormatHTML, deps, done.record)
		require.NoError(t, task.Start(context.Background()))

		err := task.Wait()
		require.Error(t, err)
		require.ErrorContains(t, err, domain.ErrInvariantViolation.Error())
		assert.Len(t, done.get(), 1)
	})
}

func TestTask_StartTwice(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := newMemStore()
		deps, _, m := setupShareTest(t, store, &recordingView{})
		m.sink.EXPECT().Export(gomock.Any(), gomock.Any(), domain.FormatHTML).Return(nil, nil)

		done := &completions{}
		task := share.NewTask(nil, domain.FormatHTML, deps, done.record)
		require.NoError(t, task.Start(context.Background()))
		require.ErrorIs(t, task.Start(context.Background()), domain.ErrTaskAlreadyStarted)
		require.NoError(t, task.Wait())

		calls := done.get()
		require.Len(t, calls, 1)
		assert.Nil(t, calls[0])
		assert.Equal(t, 1.0, task.Progress())
	})
}
