package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/logshare/internal/app"
	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(ctrl *gomock.Controller, loader *mocks.MockConfigLoader, log *mocks.MockLogger) ComponentProvider {
	application := app.New(
		loader,
		mocks.NewMockRecordDatabaseOpener(ctrl),
		mocks.NewMockBlobStore(ctrl),
		mocks.NewMockDocumentRenderer(ctrl),
		log,
	)
	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := newComponents(ctrl, mocks.NewMockConfigLoader(ctrl), mocks.NewMockLogger(ctrl))

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "logshare version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(domain.Settings{}, errors.New("load failed"))
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"list"}, new(bytes.Buffer), new(bytes.Buffer), newComponents(ctrl, loader, log))
	assert.Equal(t, 1, exitCode)
}

// TestRun_ExportFailureIsNotLoggedTwice verifies that export failures are left to the progress view.
func TestRun_ExportFailureIsNotLoggedTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(domain.Settings{}, errors.Join(domain.ErrExportFailed, errors.New("disk full")))
	log := mocks.NewMockLogger(ctrl)

	exitCode := run(context.Background(), []string{"export", "a"}, new(bytes.Buffer), new(bytes.Buffer), newComponents(ctrl, loader, log))
	assert.Equal(t, 1, exitCode)
}

// TestRun_Cancelled verifies the exit code of a cancelled export.
func TestRun_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(domain.Settings{}, domain.ErrTaskCancelled)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("export cancelled").Times(1)

	exitCode := run(context.Background(), []string{"export", "a"}, new(bytes.Buffer), new(bytes.Buffer), newComponents(ctrl, loader, log))
	assert.Equal(t, exitCancelled, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)

	blockCh := make(chan struct{})
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (domain.Settings, error) {
		select {
		case <-blockCh:
			return domain.Settings{}, context.Canceled
		case <-time.After(5 * time.Second):
			return domain.Settings{}, errors.New("timeout in mock")
		}
	})

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"list"}, new(bytes.Buffer), new(bytes.Buffer), newComponents(ctrl, loader, log))
	}()

	// Wait a bit to ensure run() reaches Load()
	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
