package anyhttp

import (
	"io"
)

// Body is a response payload that can be drained in one shot with Bytes or
// consumed incrementally through the io.Reader side. A body is consumed at
// most once: chunks arrive in order, the sequence is finite and not
// restartable, and mixing Read with a later Bytes call returns only what
// has not been read yet. Close releases the underlying connection and must
// be safe after partial consumption.
type Body interface {
	io.ReadCloser

	// Bytes drains the remaining body into a single slice, preserving
	// chunk order, and releases the underlying resource. A failure while
	// draining is reported as a *BodyError.
	Bytes() ([]byte, error)
}

// BufferedBody is a Body fully materialized in memory.
type BufferedBody struct {
	data []byte
	off  int
}

// NewBufferedBody wraps an in-memory payload as a Body.
func NewBufferedBody(data []byte) *BufferedBody {
	return &BufferedBody{data: data}
}

func (b *BufferedBody) Read(p []byte) (int, error) {
	if b.off >= len(b.data) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.off:])
	b.off += n
	return n, nil
}

func (b *BufferedBody) Bytes() ([]byte, error) {
	rest := b.data[b.off:]
	b.off = len(b.data)
	return rest, nil
}

func (b *BufferedBody) Close() error { return nil }

// StreamedBody is a Body that lazily pulls chunks from an underlying
// stream, typically a live network connection.
type StreamedBody struct {
	rc io.ReadCloser
}

// NewStreamedBody wraps a raw stream as a Body. The caller must Close it
// (directly or via Bytes) to release the underlying connection, even when
// only partially consumed.
func NewStreamedBody(rc io.ReadCloser) *StreamedBody {
	return &StreamedBody{rc: rc}
}

func (b *StreamedBody) Read(p []byte) (int, error) {
	n, err := b.rc.Read(p)
	if err != nil && err != io.EOF {
		return n, &BodyError{Err: err}
	}
	return n, err
}

// Bytes concatenates all remaining chunks in arrival order and closes the
// stream. On a mid-stream failure the stream is still closed and the
// failure is returned as a *BodyError.
func (b *StreamedBody) Bytes() ([]byte, error) {
	data, err := io.ReadAll(b.rc)
	if cerr := b.rc.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return data, &BodyError{Err: err}
	}
	return data, nil
}

func (b *StreamedBody) Close() error { return b.rc.Close() }
