// Package restyhttp implements the anyhttp.Client contract on top of
// resty. All transport behavior (pooling, redirects, TLS, timeouts) is
// inherited from the underlying resty client; this adapter only translates
// between the abstract request/response types and resty's.
package restyhttp

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/samvad-hq/anyhttp/pkg/anyhttp"
)

const defaultTimeout = 15 * time.Second

type options struct {
	timeout   time.Duration
	streaming bool
}

// Option customizes the adapter at construction time.
type Option func(*options)

// WithTimeout sets the per-request timeout on the underlying client.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithStreaming toggles streamed response bodies. When enabled, responses
// carry a lazy body that pulls from the live connection and must be closed
// by the caller; when disabled (the default), bodies arrive fully buffered.
func WithStreaming(enabled bool) Option {
	return func(o *options) { o.streaming = enabled }
}

// Client adapts a *resty.Client to the anyhttp.Client interface. It is
// safe for concurrent use, as the underlying resty client is.
type Client struct {
	rc        *resty.Client
	streaming bool
}

// New builds an adapter around a freshly configured resty client.
func New(opts ...Option) *Client {
	o := options{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	rc := resty.New()
	rc.SetTimeout(o.timeout)
	return wrap(rc, o)
}

// Wrap adopts a caller-configured resty client. Timeout options are not
// applied here; the caller's configuration wins.
func Wrap(rc *resty.Client, opts ...Option) *Client {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return wrap(rc, o)
}

func wrap(rc *resty.Client, o options) *Client {
	if o.streaming {
		// Resty must hand us the raw connection body instead of
		// draining it during response parsing.
		rc.SetDoNotParseResponse(true)
	}
	return &Client{rc: rc, streaming: o.streaming}
}

// Execute sends the request through resty. Status, headers, and body bytes
// pass through verbatim in both directions; transport failures come back
// as *anyhttp.TransportError with resty's error as the cause.
func (c *Client) Execute(ctx context.Context, req *anyhttp.Request) (*anyhttp.Response, error) {
	r := c.rc.R().SetContext(ctx)
	if len(req.Header) > 0 {
		r.SetHeaderMultiValues(req.Header)
	}
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, &anyhttp.TransportError{URL: req.URL, Err: err}
	}

	var body anyhttp.Body
	if c.streaming {
		body = anyhttp.NewStreamedBody(resp.RawBody())
	} else {
		body = anyhttp.NewBufferedBody(resp.Body())
	}

	return &anyhttp.Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       body,
	}, nil
}
