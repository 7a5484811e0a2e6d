// Package compress provides snappy-compressed implementations of the
// transfile Loader and Saver collaborators. SaveFile and LoadFile pair up:
// any buffer saved with one loads back with the other. The on-disk format
// is a single snappy block.
package compress

import (
	"os"

	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/lanrat/transfile"
)

// LoadFile is a transfile.Loader that reads and snappy-decodes the file at
// path.
func LoadFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := snappy.Decode(nil, raw)
	if err != nil {
		return nil, errors.Wrapf(err, "compress: decode %s", path)
	}
	return data, nil
}

// SaveFile is a transfile.Saver that snappy-encodes data before writing it
// to path.
func SaveFile(data []byte, path string) error {
	return os.WriteFile(path, snappy.Encode(nil, data), 0644)
}

var _ transfile.Loader = LoadFile
var _ transfile.Saver = SaveFile
