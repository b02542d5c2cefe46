package linear_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/logshare/internal/adapters/linear"
	"go.trai.ch/logshare/internal/core/domain"
)

func newTestView(t *testing.T) (*linear.View, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	return linear.NewView(buf), buf
}

func TestView_Lifecycle(t *testing.T) {
	v, buf := newTestView(t)
	require.NoError(t, v.Start(context.Background()))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v.OnStage(domain.StagePreparing)
	v.OnProgress(0.004)
	v.OnProgress(0.005)
	v.OnPhaseStart("1", "Rendering bodies", start)
	v.OnProgress(0.5)
	v.OnProgress(0.5)
	v.OnPhaseComplete("1", start.Add(1500*time.Millisecond), nil)
	v.OnProgress(1)
	v.OnStage(domain.StageCompleted)

	require.NoError(t, v.Stop())
	require.NoError(t, v.Wait())

	assert.Equal(t, strings.Join([]string{
		"○ Preparing",
		"    0%",
		"[Rendering bodies] Starting...",
		"   50%",
		"[Rendering bodies] ✓ Completed in 1.5s",
		"  100%",
		"✓ Completed",
		"",
	}, "\n"), buf.String())
}

func TestView_FailedPhase(t *testing.T) {
	v, buf := newTestView(t)
	require.NoError(t, v.Start(context.Background()))

	start := time.Now()
	v.OnPhaseStart("9", "Exporting pdf", start)
	v.OnPhaseComplete("9", start.Add(20*time.Millisecond), errors.New("disk full"))
	v.OnPhaseComplete("unknown", start, nil)

	require.NoError(t, v.Stop())
	require.NoError(t, v.Wait())

	assert.Contains(t, buf.String(), "[Exporting pdf] ✗ Failed after 20ms: disk full\n")
	assert.NotContains(t, buf.String(), "unknown")
}

func TestView_RunOnUIAfterEarlierUpdates(t *testing.T) {
	v, buf := newTestView(t)
	require.NoError(t, v.Start(context.Background()))

	v.OnStage(domain.StagePreparing)
	v.OnProgress(1)
	v.OnStage(domain.StageRendering)

	var seen string
	require.NoError(t, v.RunOnUI(context.Background(), func() {
		seen = buf.String()
	}))

	assert.Contains(t, seen, "100%")
	assert.Contains(t, seen, "Rendering")

	require.NoError(t, v.Stop())
	require.NoError(t, v.Wait())
}

func TestView_RunOnUIAfterStop(t *testing.T) {
	v, _ := newTestView(t)
	require.NoError(t, v.Start(context.Background()))
	require.NoError(t, v.Stop())

	err := v.RunOnUI(context.Background(), func() { t.Error("must not run") })
	require.ErrorIs(t, err, domain.ErrViewStopped)
	require.NoError(t, v.Wait())
}

func TestView_StopBeforeStart(t *testing.T) {
	v, buf := newTestView(t)
	require.NoError(t, v.Stop())
	require.NoError(t, v.Wait())

	v.OnStage(domain.StageCompleted)
	assert.Empty(t, buf.String())
}

func TestView_StopsWithContext(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		v := linear.NewView(&bytes.Buffer{})
		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, v.Start(ctx))

		cancel()
		require.NoError(t, v.Wait())
	})
}

func TestView_QueuedCallRunsBeforeShutdown(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		v := linear.NewView(&bytes.Buffer{})

		ran := make(chan struct{})
		result := make(chan error, 1)
		go func() {
			result <- v.RunOnUI(context.Background(), func() { close(ran) })
		}()
		synctest.Wait()

		require.NoError(t, v.Start(context.Background()))
		require.NoError(t, v.Stop())
		require.NoError(t, v.Wait())

		<-ran
		require.NoError(t, <-result)
	})
}
