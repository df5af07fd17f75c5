// Package anyhttp defines a minimal HTTP-client contract so callers can
// depend on an interface instead of a concrete client library. Concrete
// transports live in the adapter subpackages (restyhttp for real network
// calls, mockhttp for scripted tests, replayhttp for record/replay).
package anyhttp

import "context"

// Client abstracts HTTP request execution so callers can inject mocks or
// different transports.
//
// Execute sends the request and returns the server's response. Responses
// with 4xx/5xx status codes are still successes at this level; only
// transport-level failures (connection refused, DNS, TLS, timeout) are
// returned as errors, wrapped in a *TransportError with the underlying
// cause preserved. Implementations must not mutate the request.
// Independent calls may be issued concurrently.
type Client interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}
