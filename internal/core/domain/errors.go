package domain

import "go.trai.ch/zerr"

var (
	// ErrInvariantViolation is returned when a record variant is not one the pipeline knows how to render.
	ErrInvariantViolation = zerr.New("invariant violation")

	// ErrTaskCancelled is reported by a task that was cancelled before it completed.
	ErrTaskCancelled = zerr.New("export task cancelled")

	// ErrTaskAlreadyStarted is returned when Start is called twice on the same task.
	ErrTaskAlreadyStarted = zerr.New("export task already started")

	// ErrNothingSelected is returned when an export is requested without any records.
	ErrNothingSelected = zerr.New("no records selected")

	// ErrExportFailed is returned when the export pipeline fails.
	ErrExportFailed = zerr.New("export failed")

	// ErrUnknownOutputFormat is returned for an unsupported output format name.
	ErrUnknownOutputFormat = zerr.New("unknown output format, expected one of text, html, pdf, raw")

	// ErrNoEncoder is returned when the sink has no encoder for a format.
	ErrNoEncoder = zerr.New("no encoder registered for format")

	// ErrEncodeFailed is returned when a document cannot be encoded.
	ErrEncodeFailed = zerr.New("failed to encode document")

	// ErrExportWriteFailed is returned when an exported file cannot be written.
	ErrExportWriteFailed = zerr.New("failed to write export file")

	// ErrUnknownPageSize is returned for an unsupported page size.
	ErrUnknownPageSize = zerr.New("unknown page size, expected A4 or Letter")

	// ErrUnknownUIMode is returned for an unsupported UI mode.
	ErrUnknownUIMode = zerr.New("unknown ui mode, expected auto, tui or linear")

	// ErrViewStopped is returned when the progress view stops before running a UI call.
	ErrViewStopped = zerr.New("progress view stopped")

	// ErrViewStartFailed is returned when the progress view cannot be started.
	ErrViewStartFailed = zerr.New("failed to start progress view")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreOpenFailed is returned when the record database cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open record store")

	// ErrStoreMigrationFailed is returned when the record database schema cannot be applied.
	ErrStoreMigrationFailed = zerr.New("failed to migrate record store")

	// ErrStoreReadFailed is returned when a record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read record")

	// ErrStoreWriteFailed is returned when a record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write record")

	// ErrBlobReadFailed is returned when blob content cannot be read.
	ErrBlobReadFailed = zerr.New("failed to read blob")

	// ErrBlobWriteFailed is returned when blob content cannot be written.
	ErrBlobWriteFailed = zerr.New("failed to write blob")

	// ErrInvalidBlobID is returned for a blob identifier that is not a hex digest.
	ErrInvalidBlobID = zerr.New("invalid blob id")

	// ErrIngestOpenFailed is returned when an ingest file cannot be opened.
	ErrIngestOpenFailed = zerr.New("failed to open ingest file")

	// ErrIngestParseFailed is returned when an ingest line cannot be parsed.
	ErrIngestParseFailed = zerr.New("failed to parse ingest line")

	// ErrUnknownRecordKind is returned when an ingest line names an unknown kind.
	ErrUnknownRecordKind = zerr.New("unknown record kind, expected task or message")
)
