package replayhttp

import (
	"context"
	"errors"
	"fmt"

	"github.com/samvad-hq/anyhttp/pkg/anyhttp"
)

// ErrNotRecorded is returned (wrapped) by a Replayer when no exchange is
// recorded for the request's method and URL.
var ErrNotRecorded = errors.New("replayhttp: no recorded exchange")

// Recorder is an anyhttp.Client that delegates to an inner client and
// persists every successful exchange. Because recording requires the full
// body, responses returned through a Recorder are always buffered, even
// when the inner client streams.
type Recorder struct {
	next  anyhttp.Client
	store *Store
}

// NewRecorder wraps next so its successful exchanges land in store.
func NewRecorder(next anyhttp.Client, store *Store) *Recorder {
	return &Recorder{next: next, store: store}
}

// Execute delegates to the inner client, records the exchange, and returns
// the response with its body re-buffered from the recorded copy. Transport
// failures pass through unrecorded.
func (r *Recorder) Execute(ctx context.Context, req *anyhttp.Request) (*anyhttp.Response, error) {
	resp, err := r.next.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	body, err := resp.Body.Bytes()
	if err != nil {
		return nil, err
	}

	ex := exchange{Status: resp.StatusCode, Header: resp.Header, Body: body}
	if err := r.store.put(exchangeKey(req), ex); err != nil {
		return nil, fmt.Errorf("record exchange: %w", err)
	}

	return &anyhttp.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       anyhttp.NewBufferedBody(body),
	}, nil
}

// Replayer is an anyhttp.Client that serves previously recorded exchanges
// and performs no network activity at all.
type Replayer struct {
	store *Store
}

// NewReplayer serves exchanges out of store.
func NewReplayer(store *Store) *Replayer {
	return &Replayer{store: store}
}

// Execute looks up the exchange recorded for the request's method and URL.
// A miss yields an error matching ErrNotRecorded via errors.Is.
func (r *Replayer) Execute(_ context.Context, req *anyhttp.Request) (*anyhttp.Response, error) {
	ex, found, err := r.store.get(exchangeKey(req))
	if err != nil {
		return nil, fmt.Errorf("load exchange: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("replay %s %s: %w", req.Method, req.URL, ErrNotRecorded)
	}

	return &anyhttp.Response{
		StatusCode: ex.Status,
		Header:     ex.Header,
		Body:       anyhttp.NewBufferedBody(ex.Body),
	}, nil
}
