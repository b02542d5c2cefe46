package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// PageSize is the paper size used for paginated exports.
type PageSize string

const (
	// PageA4 is ISO A4.
	PageA4 PageSize = "A4"
	// PageLetter is US Letter.
	PageLetter PageSize = "Letter"
)

// ParsePageSize converts a user-provided name to a PageSize.
func ParsePageSize(s string) (PageSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a4":
		return PageA4, nil
	case "letter":
		return PageLetter, nil
	default:
		return "", zerr.With(ErrUnknownPageSize, "page_size", s)
	}
}

// UIMode selects the progress view.
type UIMode string

const (
	// UIModeAuto picks the TUI on interactive terminals and linear output otherwise.
	UIModeAuto UIMode = "auto"
	// UIModeTUI forces the interactive view.
	UIModeTUI UIMode = "tui"
	// UIModeLinear forces line-based output.
	UIModeLinear UIMode = "linear"
)

// ParseUIMode converts a user-provided name to a UIMode.
func ParseUIMode(s string) (UIMode, error) {
	switch m := UIMode(strings.ToLower(strings.TrimSpace(s))); m {
	case UIModeAuto, UIModeTUI, UIModeLinear:
		return m, nil
	default:
		return "", zerr.With(ErrUnknownUIMode, "mode", s)
	}
}

// Settings is the resolved configuration of logshare.
type Settings struct {
	// DatabasePath is the SQLite record database.
	DatabasePath string
	// BlobsPath is the root of the content addressable blob store.
	BlobsPath string
	// ExportDir receives exported files.
	ExportDir string
	// Format is the default output format.
	Format OutputFormat
	// Theme is the syntax highlighting style used by HTML exports.
	Theme string
	// PageSize is the paper size of paginated exports.
	PageSize PageSize
	// UIMode selects the progress view.
	UIMode UIMode
	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() Settings {
	return Settings{
		DatabasePath: DefaultDatabasePath(),
		BlobsPath:    DefaultBlobsPath(),
		ExportDir:    DefaultExportsPath(),
		Format:       FormatHTML,
		Theme:        "github",
		PageSize:     PageA4,
		UIMode:       UIModeAuto,
	}
}
