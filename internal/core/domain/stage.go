package domain

import "strings"

// Stage is the coarse lifecycle phase of an export task.
type Stage int

const (
	// StagePreparing covers body pre-rendering and document assembly.
	StagePreparing Stage = iota
	// StageRendering covers handing the document to the output sink.
	StageRendering
	// StageCompleted is terminal.
	StageCompleted
)

// String returns the lowercase name of the stage.
func (s Stage) String() string {
	switch s {
	case StagePreparing:
		return "preparing"
	case StageRendering:
		return "rendering"
	case StageCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Label returns the capitalized name shown by progress views.
func (s Stage) Label() string {
	switch s {
	case StagePreparing:
		return "Preparing"
	case StageRendering:
		return "Rendering"
	case StageCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s Stage) IsTerminal() bool {
	return s == StageCompleted
}

// CanAdvanceTo reports whether moving from s to next keeps stages monotonic.
func (s Stage) CanAdvanceTo(next Stage) bool {
	return next > s && next <= StageCompleted
}

// ParseStage converts a string to a Stage, defaulting to preparing if unknown.
func ParseStage(s string) Stage {
	switch strings.ToLower(s) {
	case "rendering":
		return StageRendering
	case "completed":
		return StageCompleted
	default:
		return StagePreparing
	}
}
