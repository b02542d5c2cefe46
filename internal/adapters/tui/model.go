// Package tui provides the interactive progress view of an export.
package tui

import (
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/ui/output"
)

const (
	defaultBarWidth = 30
	maxBarWidth     = 50
	// barMargin is the space left for the stage label and percentage.
	barMargin = 20
)

// PhaseStatus is the state of a pipeline phase.
type PhaseStatus string

const (
	// PhaseRunning indicates the phase has started.
	PhaseRunning PhaseStatus = "Running"
	// PhaseDone indicates the phase finished successfully.
	PhaseDone PhaseStatus = "Done"
	// PhaseError indicates the phase failed.
	PhaseError PhaseStatus = "Error"
)

// PhaseNode is one row of the phase list.
type PhaseNode struct {
	Name      string
	Status    PhaseStatus
	StartTime time.Time
	Duration  time.Duration
	Err       error
}

// Model is the bubbletea model of an export.
type Model struct {
	Title       string
	Stage       domain.Stage
	Progress    float64
	Phases      []*PhaseNode
	PhaseMap    map[string]*PhaseNode
	BarWidth    int
	Interrupted bool
}

// NewModel creates a model titled with the export format. Colors follow the
// capabilities of w, or stderr when w is nil.
func NewModel(w io.Writer, title string) Model {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	return Model{
		Title:    title,
		Stage:    domain.StagePreparing,
		PhaseMap: make(map[string]*PhaseNode),
		BarWidth: defaultBarWidth,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // one case per message type
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Interrupted = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.BarWidth = max(0, min(maxBarWidth, msg.Width-barMargin))

	case MsgStage:
		if m.Stage.CanAdvanceTo(msg.Stage) {
			m.Stage = msg.Stage
		}

	case MsgProgress:
		if msg.Progress > m.Progress {
			m.Progress = min(1, msg.Progress)
		}

	case MsgPhaseStart:
		node := &PhaseNode{Name: msg.Name, Status: PhaseRunning, StartTime: msg.StartTime}
		if m.PhaseMap == nil {
			m.PhaseMap = make(map[string]*PhaseNode)
		}
		m.PhaseMap[msg.ID] = node
		m.Phases = append(m.Phases, node)

	case MsgPhaseComplete:
		node, ok := m.PhaseMap[msg.ID]
		if !ok {
			break
		}
		delete(m.PhaseMap, msg.ID)
		node.Duration = msg.EndTime.Sub(node.StartTime)
		node.Status = PhaseDone
		if msg.Err != nil {
			node.Status = PhaseError
			node.Err = msg.Err
		}

	case MsgRun:
		msg.Call.Run()
	}

	return m, nil
}
