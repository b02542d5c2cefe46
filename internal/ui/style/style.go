// Package style provides shared UI styling primitives including brand colors,
// icons and the lipgloss styles of the progress views.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/logshare/internal/core/domain"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

// Progress bar glyphs.
const (
	BarFilled = "█"
	BarEmpty  = "░"
)

// Lipgloss styles shared by the progress views.
var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Muted = lipgloss.NewStyle().Foreground(Slate)
	Done  = lipgloss.NewStyle().Foreground(Green)
	Fail  = lipgloss.NewStyle().Foreground(Red)
	Bar   = lipgloss.NewStyle().Foreground(Iris)
)

// StageIcon returns the icon shown next to an export stage.
func StageIcon(s domain.Stage) string {
	switch s {
	case domain.StageCompleted:
		return Check
	case domain.StageRendering:
		return Dot
	default:
		return Circle
	}
}
