package tui

import (
	"time"

	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/ui/handoff"
)

// MsgStage reports a stage change.
type MsgStage struct {
	Stage domain.Stage
}

// MsgProgress reports overall progress in [0, 1].
type MsgProgress struct {
	Progress float64
}

// MsgPhaseStart reports that a pipeline phase began.
type MsgPhaseStart struct {
	ID        string
	Name      string
	StartTime time.Time
}

// MsgPhaseComplete reports that a pipeline phase ended.
type MsgPhaseComplete struct {
	ID      string
	EndTime time.Time
	Err     error
}

// MsgRun asks the event loop to run a call.
type MsgRun struct {
	Call *handoff.Call
}
