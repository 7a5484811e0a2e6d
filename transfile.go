// Package transfile implements a buffered binary transfer file: a single
// in-memory buffer that can be filled from a filesystem path, a caller
// supplied byte range, or an already-open file handle, then read back
// sequentially, or accumulated by appends and flushed to storage in one
// shot.
//
// A session is either a Reader or a Writer; the two are separate types so
// that calling a read operation on a write session (or the reverse) is a
// compile error rather than a runtime fault. A session is bound to exactly
// one buffer and is not safe for concurrent use.
//
// Storage access goes through two injectable collaborators, Loader and
// Saver, so callers can redirect I/O to compressed files, in-memory stores,
// or test doubles without touching the buffer logic. LoadFile and SaveFile
// are the plain-filesystem defaults.
package transfile

import "os"

// Loader produces the full contents of the file addressed by path.
// The returned buffer is owned by the Reader afterwards; a Loader must not
// retain or reuse it.
type Loader func(path string) ([]byte, error)

// Saver persists data to the file addressed by path.
// The buffer still belongs to the Writer; a Saver must not retain it past
// the call.
type Saver func(data []byte, path string) error

// LoadFile is the default Loader, used by OpenPath. It reads the whole file
// from the local filesystem.
func LoadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// SaveFile is the default Saver, used by Writer.Close. It writes the whole
// buffer to the local filesystem, creating or truncating the file.
func SaveFile(data []byte, path string) error {
	return os.WriteFile(path, data, 0644)
}
