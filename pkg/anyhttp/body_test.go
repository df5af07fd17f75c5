package anyhttp

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// chunkedReadCloser yields its chunks one Read at a time, then either EOF
// or the configured failure. It records whether Close was called.
type chunkedReadCloser struct {
	chunks [][]byte
	err    error
	closed bool
}

func (c *chunkedReadCloser) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		if c.err != nil {
			return 0, c.err
		}
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	if n < len(c.chunks[0]) {
		c.chunks[0] = c.chunks[0][n:]
	} else {
		c.chunks = c.chunks[1:]
	}
	return n, nil
}

func (c *chunkedReadCloser) Close() error {
	c.closed = true
	return nil
}

func TestBufferedBodyBytes(t *testing.T) {
	body := NewBufferedBody([]byte("hello world"))

	data, err := body.Bytes()
	if err != nil {
		t.Fatalf("Bytes returned error: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("unexpected body: %q", data)
	}

	// A body is consumed at most once.
	data, err = body.Bytes()
	if err != nil {
		t.Fatalf("second Bytes returned error: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected drained body, got %q", data)
	}
}

func TestBufferedBodyReadThenBytes(t *testing.T) {
	body := NewBufferedBody([]byte("hello world"))

	buf := make([]byte, 6)
	if _, err := io.ReadFull(body, buf); err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if string(buf) != "hello " {
		t.Fatalf("unexpected prefix: %q", buf)
	}

	rest, err := body.Bytes()
	if err != nil {
		t.Fatalf("Bytes returned error: %v", err)
	}
	if string(rest) != "world" {
		t.Fatalf("unexpected remainder: %q", rest)
	}
}

func TestStreamedBodyBytesConcatenatesChunks(t *testing.T) {
	rc := &chunkedReadCloser{chunks: [][]byte{
		[]byte("hel"),
		[]byte("lo "),
		[]byte("world"),
	}}
	body := NewStreamedBody(rc)

	data, err := body.Bytes()
	if err != nil {
		t.Fatalf("Bytes returned error: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("unexpected body: %q", data)
	}
	if !rc.closed {
		t.Fatalf("Bytes did not close the underlying stream")
	}
}

func TestStreamedBodyBytesMidStreamFailure(t *testing.T) {
	cause := errors.New("connection reset")
	rc := &chunkedReadCloser{chunks: [][]byte{[]byte("partial")}, err: cause}
	body := NewStreamedBody(rc)

	_, err := body.Bytes()
	var bodyErr *BodyError
	if !errors.As(err, &bodyErr) {
		t.Fatalf("expected *BodyError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not preserved: %v", err)
	}
	if !rc.closed {
		t.Fatalf("stream not closed after failure")
	}
}

func TestStreamedBodyIncrementalRead(t *testing.T) {
	rc := &chunkedReadCloser{chunks: [][]byte{[]byte("aa"), []byte("bb")}}
	body := NewStreamedBody(rc)

	var out bytes.Buffer
	if _, err := io.Copy(&out, body); err != nil {
		t.Fatalf("Copy returned error: %v", err)
	}
	if out.String() != "aabb" {
		t.Fatalf("unexpected chunks: %q", out.String())
	}
}

func TestStreamedBodyCloseReleasesStream(t *testing.T) {
	rc := &chunkedReadCloser{chunks: [][]byte{[]byte("unconsumed")}}
	body := NewStreamedBody(rc)

	if err := body.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if !rc.closed {
		t.Fatalf("Close did not release the underlying stream")
	}
}
