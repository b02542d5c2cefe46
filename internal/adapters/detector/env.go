// Package detector picks the progress view for the current environment.
package detector

import (
	"os"

	"go.trai.ch/logshare/internal/core/domain"
	"golang.org/x/term"
)

// DetectEnvironment returns the recommended view for the environment.
// Progress is drawn on stderr, so the TUI requires stderr to be a terminal
// and no CI environment variable to be set.
func DetectEnvironment() domain.UIMode {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) domain.UIMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return domain.UIModeLinear
	}
	return domain.UIModeTUI
}

// ResolveMode applies a requested mode to the detected one. Auto and empty
// requests keep the detected mode.
func ResolveMode(detected, requested domain.UIMode) domain.UIMode {
	switch requested {
	case domain.UIModeTUI, domain.UIModeLinear:
		return requested
	default:
		return detected
	}
}
