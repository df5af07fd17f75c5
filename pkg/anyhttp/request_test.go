package anyhttp

import (
	"net/http"
	"testing"
)

func TestNewRequestInitializesHeader(t *testing.T) {
	req := NewRequest(http.MethodPut, "https://example.com/items", []byte("{}"))

	if req.Method != http.MethodPut {
		t.Fatalf("unexpected method: %s", req.Method)
	}
	if req.Header == nil {
		t.Fatalf("header map not initialized")
	}
	if string(req.Body) != "{}" {
		t.Fatalf("unexpected body: %q", req.Body)
	}
}

func TestWithHeaderIsCaseInsensitive(t *testing.T) {
	req := Get("https://example.com").
		WithHeader("content-type", "application/json").
		WithHeader("X-Token", "abc")

	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}
	if got := req.Header.Get("x-token"); got != "abc" {
		t.Fatalf("unexpected token header: %q", got)
	}
}

func TestGetAndPostConveniences(t *testing.T) {
	get := Get("https://example.com")
	if get.Method != http.MethodGet || get.Body != nil {
		t.Fatalf("unexpected GET request: %+v", get)
	}

	post := Post("https://example.com", []byte("payload"))
	if post.Method != http.MethodPost || string(post.Body) != "payload" {
		t.Fatalf("unexpected POST request: %+v", post)
	}
}
