package loghttp

import (
	"context"
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/samvad-hq/anyhttp/pkg/anyhttp"
	"github.com/samvad-hq/anyhttp/pkg/anyhttp/mockhttp"
)

func TestWrapPassesResponsesThrough(t *testing.T) {
	inner := mockhttp.New().WithResponse(
		mockhttp.NewResponse(http.StatusOK).BodyString("payload"))

	client := Wrap(inner, zap.NewNop().Sugar())

	resp, err := client.Execute(context.Background(), anyhttp.Get("https://example.com"))
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if body, _ := resp.Body.Bytes(); string(body) != "payload" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestWrapPassesErrorsThrough(t *testing.T) {
	inner := mockhttp.New().WithError("connection failed")

	client := Wrap(inner, nil)

	_, err := client.Execute(context.Background(), anyhttp.Get("https://example.com"))
	if err == nil || err.Error() != "connection failed" {
		t.Fatalf("unexpected error: %v", err)
	}
}
