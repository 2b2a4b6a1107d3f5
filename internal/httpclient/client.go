package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

// HTTPClient wraps net/http.Client with pooled body buffers and typed errors
type HTTPClient struct {
	client     *http.Client
	config     HTTPClientConfig
	logger     zerolog.Logger
	bufferPool sync.Pool
}

// NewHTTPClient creates a new HTTP client with the given configuration using net/http
func NewHTTPClient(config HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          config.MaxIdleConns,
		MaxIdleConnsPerHost:   config.MaxIdleConnsPerHost,
		MaxConnsPerHost:       config.MaxConnsPerHost,
		IdleConnTimeout:       config.IdleConnTimeout,
		TLSHandshakeTimeout:   config.TLSHandshakeTimeout,
		ExpectContinueTimeout: config.ExpectContinueTimeout,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: config.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify, //nolint:gosec // opt-in via config
		},
	}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		} else {
			logger.Debug().Msg("HTTP/2 support enabled")
		}
	}

	if config.Proxy != "" {
		proxyURL, err := url.Parse(config.Proxy)
		if err != nil {
			return nil, WrapError(err, "failed to parse proxy URL")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
		logger.Info().Str("proxy", config.Proxy).Msg("HTTP client configured with proxy")
	}

	return newHTTPClient(&http.Client{Transport: transport}, config, logger), nil
}

// NewHTTPClientWithTransport builds a client around a caller-supplied
// RoundTripper. Transport-level settings in config are ignored.
func NewHTTPClientWithTransport(rt http.RoundTripper, config HTTPClientConfig, logger zerolog.Logger) *HTTPClient {
	return newHTTPClient(&http.Client{Transport: rt}, config, logger)
}

func newHTTPClient(client *http.Client, config HTTPClientConfig, logger zerolog.Logger) *HTTPClient {
	client.Timeout = config.Timeout

	if !config.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else if config.MaxRedirects > 0 {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= config.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", config.MaxRedirects)
			}
			return nil
		}
	}

	logger.Debug().
		Dur("timeout", config.Timeout).
		Bool("insecure_skip_verify", config.InsecureSkipVerify).
		Bool("follow_redirects", config.FollowRedirects).
		Int("max_redirects", config.MaxRedirects).
		Bool("http2_enabled", config.EnableHTTP2).
		Msg("HTTP client created")

	return &HTTPClient{
		client: client,
		config: config,
		logger: logger,
		bufferPool: sync.Pool{
			New: func() any {
				// Webhook responses are small; 4KB covers the JSON message object.
				b := make([]byte, 4*1024)
				return &b
			},
		},
	}
}

// Do performs a single HTTP request. Transport failures come back as
// *NetworkError; the status code is not inspected.
func (c *HTTPClient) Do(req *HTTPRequest) (*HTTPResponse, error) {
	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	body := req.Body
	if body == nil {
		body = http.NoBody
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, WrapError(err, "failed to create HTTP request")
	}

	// Defaults from config first, request-specific headers override them
	for key, value := range c.config.CustomHeaders {
		httpReq.Header.Set(key, value)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if c.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "*/*")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, NewNetworkError(req.URL, "HTTP request failed", redactURLError(err))
	}
	defer resp.Body.Close()

	bufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(bufPtr)
	buf := bytes.NewBuffer((*bufPtr)[:0])

	if _, err = io.Copy(buf, resp.Body); err != nil {
		return nil, NewNetworkError(req.URL, "failed to read response body", redactURLError(err))
	}

	// Copy out so the pooled buffer can be reused.
	bodyBytes := make([]byte, buf.Len())
	copy(bodyBytes, buf.Bytes())

	httpResp := &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    make(map[string]string, len(resp.Header)),
		Body:       bodyBytes,
	}
	for key, values := range resp.Header {
		if len(values) > 0 {
			httpResp.Headers[key] = values[0]
		}
	}

	return httpResp, nil
}

// Post sends body to rawURL with the given content type. A status of 400 or
// above is returned as *HTTPError together with the response.
func (c *HTTPClient) Post(ctx context.Context, rawURL, contentType string, body io.Reader) (*HTTPResponse, error) {
	req := &HTTPRequest{
		URL:     rawURL,
		Method:  http.MethodPost,
		Headers: map[string]string{"Content-Type": contentType},
		Body:    body,
		Context: ctx,
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.Failed() {
		errorBody := resp.Body
		if c.config.MaxErrorBodySize > 0 && len(errorBody) > c.config.MaxErrorBodySize {
			errorBody = errorBody[:c.config.MaxErrorBodySize]
		}
		c.logger.Debug().
			Str("url", RedactURL(rawURL)).
			Int("status_code", resp.StatusCode).
			Msg("Received error HTTP status")
		return resp, NewHTTPError(resp, string(errorBody), rawURL)
	}

	return resp, nil
}

// redactURLError rewrites the URL carried by a *url.Error so the
// token never reaches error strings or logs.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = RedactURL(urlErr.URL)
	}
	return err
}

// RedactURL strips the path of a webhook URL, which embeds its token.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "<invalid url>"
	}
	return u.Scheme + "://" + u.Host
}
