// Package cas implements content addressable storage for captured bodies.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.BlobStore using a file-per-blob strategy.
// Blobs live at <root>/<first two digits of id>/<id>.
type Store struct{}

// NewStore creates a new BlobStore.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Put stores data and returns its identity.
func (s *Store) Put(root string, data []byte) (domain.BlobID, error) {
	id := domain.NewBlobID(data)
	filename := s.getFilename(root, id)

	if _, err := os.Stat(filename); err == nil {
		return id, nil
	}

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrBlobWriteFailed.Error()), "blob", id.String())
	}

	// Write to a temporary file first so readers never observe a partial blob.
	tmp, err := os.CreateTemp(dir, "."+id.String()+".*")
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrBlobWriteFailed.Error()), "blob", id.String())
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", zerr.With(zerr.Wrap(err, domain.ErrBlobWriteFailed.Error()), "blob", id.String())
	}
	if err := tmp.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrBlobWriteFailed.Error()), "blob", id.String())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrBlobWriteFailed.Error()), "blob", id.String())
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrBlobWriteFailed.Error()), "blob", id.String())
	}

	return id, nil
}

// Get retrieves the blob with the given identity.
func (s *Store) Get(root string, id domain.BlobID) ([]byte, error) {
	if !validID(id) {
		return nil, zerr.With(domain.ErrInvalidBlobID, "blob", id.String())
	}

	//nolint:gosec // Path is built from a trusted root and a validated hex id
	data, err := os.ReadFile(s.getFilename(root, id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBlobReadFailed.Error()), "blob", id.String())
	}
	return data, nil
}

func (s *Store) getFilename(root string, id domain.BlobID) string {
	name := id.String()
	return filepath.Join(root, name[:2], name)
}

func validID(id domain.BlobID) bool {
	if len(id) != domain.BlobIDLength {
		return false
	}
	for _, c := range id {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
