package transfile

// Writer is a write session: it accumulates appends in memory and flushes
// them to storage once, on Close. The buffer is either owned by the Writer
// or borrowed from the caller; a borrowed buffer is mutated through the
// caller's slice pointer so the owner sees every append.
type Writer struct {
	buf *[]byte
}

// NewWriter returns a write session backed by its own empty buffer.
func NewWriter() *Writer {
	var buf []byte
	return &Writer{buf: &buf}
}

// NewWriterBuffer returns a write session that appends into the caller's
// slice. The slice is truncated to empty first. The caller keeps ownership
// and must keep buf alive for the duration of the session.
func NewWriterBuffer(buf *[]byte) *Writer {
	*buf = (*buf)[:0]
	return &Writer{buf: buf}
}

// WriteBytes appends count elements of size bytes each from src to the end
// of the buffer and returns count. A request of size*count <= 0 bytes
// appends nothing and returns 0.
func (w *Writer) WriteBytes(src []byte, size, count int) int {
	total := size * count
	if total <= 0 {
		return 0
	}
	*w.buf = append(*w.buf, src[:total]...)
	return count
}

// Write appends p to the buffer. It implements io.Writer and never fails.
func (w *Writer) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}

// WriteString appends s to the buffer.
func (w *Writer) WriteString(s string) (int, error) {
	*w.buf = append(*w.buf, s...)
	return len(s), nil
}

// Bytes returns the accumulated buffer. The slice is the live buffer, not a
// copy; it is only valid until the next append.
func (w *Writer) Bytes() []byte {
	return *w.buf
}

// Len returns the number of bytes accumulated so far.
func (w *Writer) Len() int {
	return len(*w.buf)
}

// Close flushes the accumulated buffer to path with the default SaveFile
// Saver. The buffer is left intact, so Close may be retried with a
// different path on failure.
func (w *Writer) Close(path string) error {
	return w.CloseWith(path, SaveFile)
}

// CloseWith flushes the accumulated buffer to path with the given Saver.
func (w *Writer) CloseWith(path string, save Saver) error {
	return save(*w.buf, path)
}
