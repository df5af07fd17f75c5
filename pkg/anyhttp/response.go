package anyhttp

import "net/http"

// Response is the result of executing a Request. The caller owns it and is
// responsible for closing the body. Status codes are reported verbatim;
// interpreting 4xx/5xx as failures is the caller's business.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       Body
}
