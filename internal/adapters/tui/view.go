package tui

import (
	"fmt"
	"strings"
	"time"

	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/ui/output"
	"go.trai.ch/logshare/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	title := titleStyle
	if m.failed() {
		title = failureTitleStyle
	}
	s.WriteString(title.Render("EXPORT " + strings.ToUpper(m.Title)))
	s.WriteString("\n\n")

	s.WriteString(m.stageLine())
	s.WriteString("\n")

	for _, p := range m.Phases {
		s.WriteString(renderPhase(p))
		s.WriteString("\n")
	}

	if m.Stage != domain.StageCompleted {
		s.WriteString("\n")
		s.WriteString(hintStyle.Render("q: cancel"))
		s.WriteString("\n")
	}
	return s.String()
}

func (m *Model) stageLine() string {
	icon := style.StageIcon(m.Stage)
	if m.Stage == domain.StageCompleted {
		icon = style.Done.Render(icon)
	}
	bar := style.Bar.Render(output.Bar(m.Progress, m.BarWidth, style.BarFilled, style.BarEmpty))
	return fmt.Sprintf("%s %-10s %s %3d%%", icon, m.Stage.Label(), bar, int(m.Progress*100))
}

func renderPhase(p *PhaseNode) string {
	switch p.Status {
	case PhaseDone:
		return "  " + phaseDoneStyle.Render(style.Check+" "+p.Name) + " " +
			hintStyle.Render(p.Duration.Round(time.Millisecond).String())
	case PhaseError:
		return "  " + phaseErrorStyle.Render(style.Cross+" "+p.Name+": "+p.Err.Error())
	default:
		return "  " + phaseRunningStyle.Render(style.Dot+" "+p.Name)
	}
}

func (m *Model) failed() bool {
	for _, p := range m.Phases {
		if p.Status == PhaseError {
			return true
		}
	}
	return false
}
