package anyhttp

import "fmt"

// TransportError reports a connection-level failure (refused, reset, DNS,
// TLS, timeout) from a production adapter. The underlying cause is always
// preserved and reachable through errors.Unwrap.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BodyError reports a failure while draining or streaming a response body,
// such as a mid-stream disconnect.
type BodyError struct {
	Err error
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("read body: %v", e.Err)
}

func (e *BodyError) Unwrap() error { return e.Err }
