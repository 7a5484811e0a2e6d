package transfile

import (
	"io"

	"github.com/pkg/errors"
)

// Reader is a read session: one buffer, a cursor, and an endian-swap flag.
// Opening a Reader always leaves the cursor at 0 and the swap flag off.
type Reader struct {
	data []byte
	off  int
	swap bool
}

// OpenPath loads the file at path with the default LoadFile Loader and
// returns a read session over its contents.
func OpenPath(path string) (*Reader, error) {
	return OpenPathWith(path, LoadFile)
}

// OpenPathWith loads the file at path with the given Loader and returns a
// read session over its contents.
func OpenPathWith(path string, load Loader) (*Reader, error) {
	data, err := load(path)
	if err != nil {
		return nil, err
	}
	return &Reader{data: data}, nil
}

// OpenBytes returns a read session over a copy of b. The caller keeps
// ownership of b and may reuse it immediately.
func OpenBytes(b []byte) *Reader {
	data := make([]byte, len(b))
	copy(data, b)
	return &Reader{data: data}
}

// OpenHandle reads the span between f's current position and endOffset into
// a read session, leaving f positioned at the end of the span. endOffset < 0
// means read to the end of the stream; the end is found by seeking and the
// original position is restored before reading. Unlike ReadBytes, a short
// read here is a hard failure, reported as a *ShortReadError.
func OpenHandle(f io.ReadSeeker, endOffset int64) (*Reader, error) {
	current, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, errors.Wrap(err, "transfile: handle position")
	}
	if endOffset < 0 {
		endOffset, err = f.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, errors.Wrap(err, "transfile: handle end")
		}
		if _, err = f.Seek(current, io.SeekStart); err != nil {
			return nil, errors.Wrap(err, "transfile: handle rewind")
		}
	}
	if endOffset < current {
		return nil, errors.Errorf("transfile: end offset %d before current position %d", endOffset, current)
	}
	data := make([]byte, endOffset-current)
	n, err := io.ReadFull(f, data)
	if err != nil {
		return nil, NewShortReadError(err, len(data), n)
	}
	return &Reader{data: data}, nil
}

// SetSwap sets the endian-swap flag consulted by ReadBytesSwapped.
func (r *Reader) SetSwap(swap bool) {
	r.swap = swap
}

// Len returns the total size of the buffer.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of unread bytes between the cursor and the
// end of the buffer.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// Rewind moves the cursor back to the start of the buffer.
func (r *Reader) Rewind() {
	r.off = 0
}

// ReadLine copies bytes from the cursor into dst, stopping when dst is one
// byte short of full, the buffer is exhausted, or a newline has been copied.
// The newline is included in the result. The copied span is zero-terminated
// when there is room, so dst can be handed to code that expects C strings.
// Returns dst sliced to the copied length, or nil when the cursor was
// already at the end of the buffer.
func (r *Reader) ReadLine(dst []byte) []byte {
	n := 0
	for n+1 < len(dst) && r.off < len(r.data) {
		dst[n] = r.data[r.off]
		n++
		r.off++
		if dst[n-1] == '\n' {
			break
		}
	}
	if n < len(dst) {
		dst[n] = 0
	}
	if n == 0 {
		return nil
	}
	return dst[:n]
}

// ReadBytes copies up to count elements of size bytes each from the cursor
// into dst and returns the number of whole elements copied. A request for
// size*count <= 0 bytes reads nothing and returns 0. When fewer bytes remain
// than requested the read is clamped; a short read is not an error, callers
// must check the returned count. A nil dst skips the copy but still
// advances the cursor.
func (r *Reader) ReadBytes(dst []byte, size, count int) int {
	need := size * count
	if need <= 0 {
		return 0
	}
	if remaining := len(r.data) - r.off; remaining < need {
		need = remaining
	}
	if need > 0 && dst != nil {
		copy(dst, r.data[r.off:r.off+need])
	}
	r.off += need
	return need / size
}

// ReadBytesSwapped behaves exactly like ReadBytes, then, if the swap flag is
// set, reverses the byte order of each element actually read, in place in
// dst. Elements keep their relative order.
func (r *Reader) ReadBytesSwapped(dst []byte, size, count int) int {
	n := r.ReadBytes(dst, size, count)
	if r.swap && dst != nil {
		for i := 0; i < n; i++ {
			reverse(dst[i*size : (i+1)*size])
		}
	}
	return n
}
