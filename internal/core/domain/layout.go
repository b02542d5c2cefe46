package domain

import "path/filepath"

const (
	// LogshareDirName is the name of the internal workspace directory.
	LogshareDirName = ".logshare"

	// BlobsDirName is the name of the content addressable blob directory.
	BlobsDirName = "blobs"

	// DatabaseFileName is the name of the record database.
	DatabaseFileName = "records.db"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "logshare.yaml"

	// ExportsDirName is the default output directory for exports.
	ExportsDirName = "exports"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultDatabasePath returns the default path of the record database.
func DefaultDatabasePath() string {
	return filepath.Join(LogshareDirName, DatabaseFileName)
}

// DefaultBlobsPath returns the default path of the blob store.
func DefaultBlobsPath() string {
	return filepath.Join(LogshareDirName, BlobsDirName)
}

// DefaultExportsPath returns the default export directory.
func DefaultExportsPath() string {
	return ExportsDirName
}
