package httpclient

import (
	"fmt"

	"github.com/aleister1102/discordhook/internal/common/errorwrapper"
)

// Error represents a general error in the httpclient package.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new general Error.
func NewError(message string) error {
	return &Error{Message: message}
}

// WrapError wraps an existing error with a message.
func WrapError(err error, message string) error {
	return &Error{Message: message, Err: err}
}

// NetworkError represents a transport-level failure: DNS, connect, TLS,
// timeout or a broken response body.
type NetworkError struct {
	URL     string
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error for URL '%s': %s: %v", RedactURL(e.URL), e.Message, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is matches errorwrapper.ErrNetworkFailure.
func (e *NetworkError) Is(target error) bool {
	return target == errorwrapper.ErrNetworkFailure
}

// NewNetworkError creates a new NetworkError.
func NewNetworkError(url, message string, err error) error {
	return &NetworkError{URL: url, Message: message, Err: err}
}

// HTTPError represents an HTTP-level error (status 400 or above). Response
// holds the full response that produced it.
type HTTPError struct {
	StatusCode int
	Body       string
	URL        string
	Response   *HTTPResponse
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error for URL '%s': status %d, body: %s", RedactURL(e.URL), e.StatusCode, e.Body)
}

// NewHTTPError creates a new HTTPError from a received response.
func NewHTTPError(resp *HTTPResponse, body string, url string) error {
	return &HTTPError{StatusCode: resp.StatusCode, Body: body, URL: url, Response: resp}
}
