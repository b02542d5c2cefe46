// Package config provides the configuration loader for logshare.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load discovers logshare.yaml from cwd upwards and returns the resolved settings.
// Relative paths in the file are resolved against the directory that contains it.
// Without a configuration file, defaults are resolved against cwd.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	configPath, found, err := l.findConfiguration(absCwd)
	if err != nil {
		return domain.Settings{}, err
	}
	if !found {
		return resolvePaths(domain.DefaultSettings(), absCwd), nil
	}

	var file Configfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}

	settings, err := l.buildSettings(&file)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}
	return resolvePaths(settings, filepath.Dir(configPath)), nil
}

// findConfiguration walks up from cwd to the filesystem root.
func (l *Loader) findConfiguration(cwd string) (string, bool, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		info, err := l.FS.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, true, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false, nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) buildSettings(file *Configfile) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if file.Store.Database != "" {
		settings.DatabasePath = file.Store.Database
	}
	if file.Store.Blobs != "" {
		settings.BlobsPath = file.Store.Blobs
	}
	if file.Export.Dir != "" {
		settings.ExportDir = file.Export.Dir
	}
	if file.Export.Theme != "" {
		settings.Theme = file.Export.Theme
	}
	if file.Export.Format != "" {
		format, err := domain.ParseOutputFormat(file.Export.Format)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.Format = format
	}
	if file.Export.PageSize != "" {
		size, err := domain.ParsePageSize(file.Export.PageSize)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.PageSize = size
	}
	if file.UI.Mode != "" {
		mode, err := domain.ParseUIMode(file.UI.Mode)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.UIMode = mode
	}
	settings.JSONLogs = file.Log.JSON

	if file.Version != "" && file.Version != "1" && l.Logger != nil {
		l.Logger.Warn("unsupported config version " + file.Version + ", reading it as version 1")
	}
	return settings, nil
}

func resolvePaths(settings domain.Settings, base string) domain.Settings {
	settings.DatabasePath = resolvePath(base, settings.DatabasePath)
	settings.BlobsPath = resolvePath(base, settings.BlobsPath)
	settings.ExportDir = resolvePath(base, settings.ExportDir)
	return settings
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Configfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
