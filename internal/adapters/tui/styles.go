package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/logshare/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.Mist)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.Mist)

	phaseRunningStyle = lipgloss.NewStyle().
				Foreground(style.Iris).
				Bold(true)

	phaseDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	phaseErrorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	hintStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
