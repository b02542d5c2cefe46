// Package export writes finished documents to files.
package export

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/logshare/internal/core/ports"
	"go.trai.ch/zerr"
)

const fileTimeLayout = "20060102-150405"

// Sink implements ports.OutputSink by writing one file per export into a directory.
type Sink struct {
	dir      string
	encoders map[domain.OutputFormat]ports.Encoder
	now      func() time.Time
}

// Option configures a Sink.
type Option func(*Sink)

// WithEncoder registers enc for format, replacing the default encoder.
func WithEncoder(format domain.OutputFormat, enc ports.Encoder) Option {
	return func(s *Sink) {
		s.encoders[format] = enc
	}
}

// WithClock sets the clock used to name exported files.
func WithClock(now func() time.Time) Option {
	return func(s *Sink) {
		s.now = now
	}
}

// NewSink creates a Sink writing into dir with the default encoders for theme and page size.
func NewSink(dir, theme string, pageSize domain.PageSize, opts ...Option) *Sink {
	s := &Sink{
		dir: dir,
		encoders: map[domain.OutputFormat]ports.Encoder{
			domain.FormatPlainText: NewTextEncoder(),
			domain.FormatHTML:      NewHTMLEncoder(theme),
			domain.FormatPDF:       NewPDFEncoder(pageSize),
			domain.FormatRawData:   NewRawEncoder(),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Export encodes doc into a new file named logs-<timestamp>.<ext>.
func (s *Sink) Export(
	ctx context.Context,
	doc *domain.Document,
	format domain.OutputFormat,
) ([]domain.ExportedItem, error) {
	enc, ok := s.encoders[format]
	if !ok {
		return nil, zerr.With(domain.ErrNoEncoder, "format", string(format))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "dir", s.dir)
	}

	f, path, err := s.create(format)
	if err != nil {
		return nil, err
	}

	w := bufio.NewWriter(f)
	if err := enc.Encode(w, doc); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEncodeFailed.Error()), "format", string(format))
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "path", path)
	}
	if err := f.Close(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "path", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "path", path)
	}

	return []domain.ExportedItem{{
		Path:     path,
		MimeType: format.MimeType(),
		Size:     info.Size(),
	}}, nil
}

// create opens a file that did not exist before, adding a counter when two exports
// land in the same second.
func (s *Sink) create(format domain.OutputFormat) (*os.File, string, error) {
	base := "logs-" + s.now().UTC().Format(fileTimeLayout)
	ext := format.FileExtension()

	for i := 0; ; i++ {
		name := base + ext
		if i > 0 {
			name = base + "-" + strconv.Itoa(i) + ext
		}
		path := filepath.Join(s.dir, name)

		//nolint:gosec // Path is built from the configured export directory
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.FilePerm)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "path", path)
		}
	}
}
