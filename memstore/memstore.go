// Package memstore provides an in-memory stand-in for the filesystem
// collaborators of transfile. Blobs are kept in a map keyed by path, which
// is useful for tests and benchmarks that should avoid disk I/O, and for
// callers that assemble transfer files without ever touching storage.
package memstore

import (
	"os"

	"github.com/pkg/errors"

	"github.com/lanrat/transfile"
)

// Store maps paths to byte blobs. A single Store backs any number of
// Loader/Saver pairs, but is not safe for concurrent use.
type Store struct {
	files map[string][]byte
}

// New creates an empty Store.
func New() *Store {
	return &Store{files: make(map[string][]byte)}
}

// Loader returns a transfile.Loader that reads blobs from the store. Each
// load hands out a fresh copy, so the caller owns the result. Loading a
// path that was never saved fails with an error wrapping os.ErrNotExist.
func (s *Store) Loader() transfile.Loader {
	return func(path string) ([]byte, error) {
		blob, ok := s.files[path]
		if !ok {
			return nil, errors.Wrapf(os.ErrNotExist, "memstore: load %q", path)
		}
		data := make([]byte, len(blob))
		copy(data, blob)
		return data, nil
	}
}

// Saver returns a transfile.Saver that stores a copy of the saved buffer,
// replacing any blob previously saved under the same path.
func (s *Store) Saver() transfile.Saver {
	return func(data []byte, path string) error {
		blob := make([]byte, len(data))
		copy(blob, data)
		s.files[path] = blob
		return nil
	}
}

// Bytes returns the stored blob for path and whether it exists.
func (s *Store) Bytes(path string) ([]byte, bool) {
	blob, ok := s.files[path]
	return blob, ok
}

// Size returns the number of stored blobs.
func (s *Store) Size() int {
	return len(s.files)
}

// Remove deletes the blob stored under path, if any.
func (s *Store) Remove(path string) {
	delete(s.files, path)
}
