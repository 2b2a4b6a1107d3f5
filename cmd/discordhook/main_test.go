package main

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/aleister1102/discordhook/internal/config"
	"github.com/aleister1102/discordhook/internal/httpclient"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(config.ConfigPathEnv, "")
	t.Setenv("DISCORD_WEBHOOK_URL", "")
	return dir
}

func TestRun_SendsJSON(t *testing.T) {
	isolate(t)

	var body []byte
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	var logs bytes.Buffer
	err := run(context.Background(), AppFlags{
		WebhookURL: server.URL + "/api/webhooks/1/token",
		Content:    "shipped",
		EmbedColor: -1,
	}, &logs)
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "shipped", gjson.GetBytes(body, "content").String())
	assert.Contains(t, logs.String(), "Notification delivered")
	assert.NotContains(t, logs.String(), "token")
}

func TestRun_MultipartFromConfig(t *testing.T) {
	dir := isolate(t)

	var mediaType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, _ = mime.ParseMediaType(r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfgPath := filepath.Join(dir, "hook.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("discord_config:\n  webhook_url: "+server.URL+"/hook\n  always_multipart: true\n"), 0600))

	err := run(context.Background(), AppFlags{GlobalConfigFile: cfgPath, Content: "x", EmbedColor: -1}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
}

func TestRun_ErrorStatus(t *testing.T) {
	isolate(t)

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	err := run(context.Background(), AppFlags{WebhookURL: server.URL + "/hook", Content: "x", EmbedColor: -1}, io.Discard)
	require.Error(t, err)

	var httpErr *httpclient.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRun_RejectsBeforeSending(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		flags   AppFlags
		wantErr string
	}{
		{name: "no webhook", flags: AppFlags{Content: "x", EmbedColor: -1}, wantErr: "no webhook URL"},
		{name: "nothing to send", flags: AppFlags{WebhookURL: "https://discord.test/hook", EmbedColor: -1}, wantErr: "nothing to send"},
		{name: "bad webhook", flags: AppFlags{WebhookURL: "not-a-url", Content: "x", EmbedColor: -1}, wantErr: "configuration validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.flags, io.Discard)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRun_InitConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "generated", "config.yaml")

	require.NoError(t, run(context.Background(), AppFlags{InitConfigFile: path}, io.Discard))

	cfg, err := config.LoadGlobalConfig(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.NewDefaultGlobalConfig(), cfg)
}
