// Package loghttp is an opt-in logging decorator for anyhttp clients. The
// core adapters log nothing; callers that want per-request logging wrap
// their client here.
package loghttp

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/samvad-hq/anyhttp/pkg/anyhttp"
)

// Client decorates an anyhttp.Client with zap logging. Results and errors
// pass through untouched.
type Client struct {
	next anyhttp.Client
	log  *zap.SugaredLogger
}

// Wrap returns a client that logs every Execute call through log. A nil
// logger disables logging while keeping the decorator in place.
func Wrap(next anyhttp.Client, log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{next: next, log: log}
}

// Execute delegates to the wrapped client, logging method, URL, elapsed
// time and outcome. Transport failures log at warn, completed responses
// (any status) at debug.
func (c *Client) Execute(ctx context.Context, req *anyhttp.Request) (*anyhttp.Response, error) {
	start := time.Now()

	resp, err := c.next.Execute(ctx, req)
	if err != nil {
		c.log.Warnw("request failed",
			"method", req.Method,
			"url", req.URL,
			"elapsed", time.Since(start),
			"error", err,
		)
		return nil, err
	}

	c.log.Debugw("request completed",
		"method", req.Method,
		"url", req.URL,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)
	return resp, nil
}
