package tui_test

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/logshare/internal/adapters/tui"
	"go.trai.ch/logshare/internal/core/domain"
)

func newHeadlessView(t *testing.T) (*tui.View, *tui.Model) {
	t.Helper()
	model := newTestModel(t)
	view := tui.NewView(model,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	return view, model
}

func TestView_RunOnUISeesEarlierUpdates(t *testing.T) {
	view, model := newHeadlessView(t)
	require.NoError(t, view.Start(context.Background()))

	view.OnStage(domain.StageRendering)
	view.OnProgress(1)

	var (
		stage    domain.Stage
		progress float64
	)
	require.NoError(t, view.RunOnUI(context.Background(), func() {
		stage = model.Stage
		progress = model.Progress
	}))

	assert.Equal(t, domain.StageRendering, stage)
	assert.InDelta(t, 1.0, progress, 1e-9)

	require.NoError(t, view.Stop())
	require.NoError(t, view.Wait())
	assert.False(t, view.Interrupted())
}

func TestView_StopBeforeStart(t *testing.T) {
	view, _ := newHeadlessView(t)

	require.NoError(t, view.Stop())
	require.NoError(t, view.Wait())

	view.OnProgress(0.5)
	err := view.RunOnUI(context.Background(), func() { t.Error("must not run") })
	require.ErrorIs(t, err, domain.ErrViewStopped)
}

func TestView_StopsWithContext(t *testing.T) {
	view, _ := newHeadlessView(t)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, view.Start(ctx))

	cancel()
	<-view.Done()
	require.NoError(t, view.Wait())
}
