package anyhttp

import "net/http"

// Request describes an HTTP request to be executed by a Client. It mirrors
// the standard request model (method, URL, headers, pre-buffered body) and
// deliberately omits every server-side field of http.Request. The caller
// owns the request until it is passed to Execute; clients treat it as
// read-only.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// NewRequest builds a request with an initialized header map. body may be
// nil for bodyless methods.
func NewRequest(method, url string, body []byte) *Request {
	return &Request{
		Method: method,
		URL:    url,
		Header: make(http.Header),
		Body:   body,
	}
}

// Get builds a GET request for the given URL.
func Get(url string) *Request {
	return NewRequest(http.MethodGet, url, nil)
}

// Post builds a POST request carrying the given body.
func Post(url string, body []byte) *Request {
	return NewRequest(http.MethodPost, url, body)
}

// WithHeader sets a header value and returns the request for chaining.
func (r *Request) WithHeader(key, value string) *Request {
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	r.Header.Set(key, value)
	return r
}
