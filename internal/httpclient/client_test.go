package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aleister1102/discordhook/internal/common/errorwrapper"
	"github.com/jarcoal/httpmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Do(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-value", r.Header.Get("X-Test-Header"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	logger := zerolog.Nop()
	client, err := NewHTTPClientBuilder(logger).WithUserAgent("test-agent").Build()
	require.NoError(t, err)

	req := &HTTPRequest{
		URL:    server.URL,
		Method: "GET",
		Headers: map[string]string{
			"X-Test-Header": "test-value",
		},
	}

	resp, err := client.Do(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"status":"ok"}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.True(t, resp.Successful())
}

func TestHTTPClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"content":"hi"}`, string(body))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)

	resp, err := client.Post(context.Background(), server.URL, "application/json", strings.NewReader(`{"content":"hi"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.False(t, resp.Failed())
}

func TestHTTPClient_Post_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Cannot send an empty message","code":50006}`))
	}))
	defer server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)

	resp, err := client.Post(context.Background(), server.URL+"/api/webhooks/1/secret-token", "application/json", strings.NewReader(`{}`))
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "50006")
	assert.Same(t, resp, httpErr.Response)
	assert.NotContains(t, err.Error(), "secret-token")
}

func TestHTTPClient_Post_TruncatesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer server.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.MaxErrorBodySize = 10
	client, err := NewHTTPClientBuilder(zerolog.Nop()).WithConfig(cfg).Build()
	require.NoError(t, err)

	_, err = client.Post(context.Background(), server.URL, "text/plain", strings.NewReader("x"))

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Len(t, httpErr.Body, 10)
	assert.Len(t, httpErr.Response.Body, 64)
}

func TestHTTPClient_Post_NetworkError(t *testing.T) {
	mock := httpmock.NewMockTransport()
	mock.RegisterResponder(http.MethodPost, "https://discord.test/api/webhooks/1/token",
		httpmock.NewErrorResponder(fmt.Errorf("dial tcp: connection refused")))

	client := NewHTTPClientWithTransport(mock, DefaultHTTPClientConfig(), zerolog.Nop())

	resp, err := client.Post(context.Background(), "https://discord.test/api/webhooks/1/token", "application/json", strings.NewReader(`{}`))
	require.Error(t, err)
	assert.Nil(t, resp)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Contains(t, netErr.Error(), "connection refused")
	assert.NotContains(t, netErr.Error(), "token")
	assert.ErrorIs(t, err, errorwrapper.ErrNetworkFailure)
	assert.Equal(t, 1, mock.GetTotalCallCount())
}

func TestHTTPClient_Do_UnreachableHostRedactsURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := server.URL + "/api/webhooks/1/secret-token"
	server.Close()

	client, err := NewHTTPClient(DefaultHTTPClientConfig(), zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Post(context.Background(), target, "application/json", strings.NewReader(`{}`))
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotContains(t, err.Error(), "secret-token")
	assert.ErrorIs(t, err, errorwrapper.ErrNetworkFailure)
}

func TestHTTPClient_Redirects(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/redirect" {
			http.Redirect(w, r, "/final", http.StatusFound)
		} else if r.URL.Path == "/final" {
			fmt.Fprint(w, "ok")
		}
	}))
	defer ts.Close()

	logger := zerolog.Nop()

	clientFollow, _ := NewHTTPClientBuilder(logger).WithFollowRedirects(true).Build()
	req := &HTTPRequest{URL: ts.URL + "/redirect", Method: "GET"}
	resp, err := clientFollow.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(resp.Body))

	clientNoFollow, _ := NewHTTPClientBuilder(logger).WithFollowRedirects(false).Build()
	resp, err = clientNoFollow.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t, "https://discord.com", RedactURL("https://discord.com/api/webhooks/123/abc"))
	assert.Equal(t, "<invalid url>", RedactURL("not a url"))
}
