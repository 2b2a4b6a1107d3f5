package httpclient

import (
	"context"
	"io"
	"net/http"
)

// HTTPRequest represents an outgoing HTTP request
type HTTPRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    io.Reader
	Context context.Context
}

// HTTPResponse represents a fully read HTTP response
type HTTPResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Successful reports a 2xx status.
func (r *HTTPResponse) Successful() bool {
	return r != nil && r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Failed reports a client or server error status.
func (r *HTTPResponse) Failed() bool {
	return r != nil && r.StatusCode >= http.StatusBadRequest
}
