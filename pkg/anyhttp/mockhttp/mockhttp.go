// Package mockhttp provides a network-free anyhttp.Client for tests. The
// client is outcome-scripted: callers queue responses and errors up front
// and each Execute call consumes exactly one outcome in FIFO order. It
// never dispatches on the request's method, URL, headers, or body, but it
// records every request so tests can assert on what was sent.
package mockhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/samvad-hq/anyhttp/pkg/anyhttp"
)

// ErrExhausted is returned (wrapped) by Execute when every scripted
// outcome has already been consumed.
var ErrExhausted = errors.New("mockhttp: outcome queue exhausted")

// SimulatedError is the failure produced by a scripted error outcome. Its
// message is exactly the string passed to WithError or QueueError.
type SimulatedError struct {
	Message string
}

func (e *SimulatedError) Error() string { return e.Message }

type outcome struct {
	resp   *MockResponse
	errMsg string
	failed bool
}

// Client is a scripted anyhttp.Client. The zero value is not usable; call
// New. Concurrent Execute calls are safe: the outcome pop is a single
// mutex-guarded step, so no outcome is lost, duplicated, or reordered.
type Client struct {
	mu       sync.Mutex
	outcomes []outcome
	requests []*anyhttp.Request
}

// New creates a mock client with an empty outcome queue.
func New() *Client {
	return &Client{}
}

// WithResponse appends a response outcome and returns the client for
// chaining.
func (c *Client) WithResponse(resp *MockResponse) *Client {
	c.QueueResponse(resp)
	return c
}

// WithError appends a failure outcome and returns the client for chaining.
func (c *Client) WithError(message string) *Client {
	c.QueueError(message)
	return c
}

// QueueResponse appends a response outcome to the back of the queue.
func (c *Client) QueueResponse(resp *MockResponse) {
	c.mu.Lock()
	c.outcomes = append(c.outcomes, outcome{resp: resp})
	c.mu.Unlock()
}

// QueueError appends a failure outcome to the back of the queue.
func (c *Client) QueueError(message string) {
	c.mu.Lock()
	c.outcomes = append(c.outcomes, outcome{errMsg: message, failed: true})
	c.mu.Unlock()
}

// Execute records the request and consumes the front outcome. An empty
// queue yields an error matching ErrExhausted via errors.Is.
func (c *Client) Execute(_ context.Context, req *anyhttp.Request) (*anyhttp.Response, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	if len(c.outcomes) == 0 {
		c.mu.Unlock()
		return nil, fmt.Errorf("execute %s %s: %w", req.Method, req.URL, ErrExhausted)
	}
	o := c.outcomes[0]
	c.outcomes = c.outcomes[1:]
	c.mu.Unlock()

	if o.failed {
		return nil, &SimulatedError{Message: o.errMsg}
	}
	return o.resp.response(), nil
}

// Remaining reports how many scripted outcomes have not been consumed yet.
func (c *Client) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.outcomes)
}

// Requests returns a copy of all requests seen so far, in call order.
func (c *Client) Requests() []*anyhttp.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*anyhttp.Request, len(c.requests))
	copy(out, c.requests)
	return out
}

// RequestCount reports how many Execute calls have been made.
func (c *Client) RequestCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

// LastRequest returns the most recent request, or nil when none was made.
func (c *Client) LastRequest() *anyhttp.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.requests) == 0 {
		return nil
	}
	return c.requests[len(c.requests)-1]
}

// ClearRequests discards the recorded requests without touching the
// outcome queue.
func (c *Client) ClearRequests() {
	c.mu.Lock()
	c.requests = nil
	c.mu.Unlock()
}

// MockResponse is a canned response scripted into a mock client. Build it
// with NewResponse and the chaining setters; it is treated as immutable
// once queued.
type MockResponse struct {
	status int
	header http.Header
	body   []byte
}

// NewResponse creates a canned response with the given status code and an
// empty body.
func NewResponse(status int) *MockResponse {
	return &MockResponse{status: status, header: make(http.Header)}
}

// Body sets the response body and returns the response for chaining.
func (r *MockResponse) Body(body []byte) *MockResponse {
	r.body = body
	return r
}

// BodyString sets the response body from a string.
func (r *MockResponse) BodyString(body string) *MockResponse {
	return r.Body([]byte(body))
}

// Header sets a response header and returns the response for chaining.
func (r *MockResponse) Header(key, value string) *MockResponse {
	r.header.Set(key, value)
	return r
}

// response synthesizes a fresh anyhttp.Response so each dequeue hands the
// caller its own body and header map.
func (r *MockResponse) response() *anyhttp.Response {
	header := make(http.Header, len(r.header))
	for k, vs := range r.header {
		header[k] = append([]string(nil), vs...)
	}
	return &anyhttp.Response{
		StatusCode: r.status,
		Header:     header,
		Body:       anyhttp.NewBufferedBody(r.body),
	}
}
