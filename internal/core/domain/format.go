package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// OutputFormat selects the encoder an export is delivered with.
type OutputFormat string

const (
	// FormatPlainText is a UTF-8 text file.
	FormatPlainText OutputFormat = "text"
	// FormatHTML is a self-contained HTML page.
	FormatHTML OutputFormat = "html"
	// FormatPDF is a paginated document.
	FormatPDF OutputFormat = "pdf"
	// FormatRawData is the document as JSON.
	FormatRawData OutputFormat = "raw"
)

// OutputFormats lists every supported format.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatPlainText, FormatHTML, FormatPDF, FormatRawData}
}

// ParseOutputFormat converts a user-provided name to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "plain":
		return FormatPlainText, nil
	case "html", "htm":
		return FormatHTML, nil
	case "pdf":
		return FormatPDF, nil
	case "raw", "json":
		return FormatRawData, nil
	default:
		return "", zerr.With(ErrUnknownOutputFormat, "format", s)
	}
}

// RequiresUIThread reports whether the encoder must run on the UI-owning context.
// Paginated layout shares font and page state with the presentation layer.
func (f OutputFormat) RequiresUIThread() bool {
	return f == FormatPDF
}

// FileExtension returns the extension used for exported files, including the dot.
func (f OutputFormat) FileExtension() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatPDF:
		return ".pdf"
	case FormatRawData:
		return ".json"
	default:
		return ".txt"
	}
}

// MimeType returns the MIME type of exported files.
func (f OutputFormat) MimeType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatRawData:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}
