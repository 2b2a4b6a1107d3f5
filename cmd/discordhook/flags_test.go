package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	flags, err := ParseFlags([]string{
		"-c", "hook.yaml",
		"-w", "https://discord.com/api/webhooks/1/x",
		"-content", "deployed",
		"-embed-title", "Build",
		"-embed-color", "0xD9534F",
		"-file", "a.txt",
		"-f", "b.png",
		"-multipart",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "hook.yaml", flags.GlobalConfigFile)
	assert.Equal(t, "https://discord.com/api/webhooks/1/x", flags.WebhookURL)
	assert.Equal(t, "deployed", flags.Content)
	assert.Equal(t, "Build", flags.EmbedTitle)
	assert.Equal(t, 0xD9534F, flags.EmbedColor)
	assert.Equal(t, []string{"a.txt", "b.png"}, flags.Files)
	assert.True(t, flags.Multipart)
	assert.True(t, flags.hasEmbed())
}

func TestParseFlags_LongFormWinsOverAlias(t *testing.T) {
	flags, err := ParseFlags([]string{"-config", "long.yaml", "-c", "short.yaml", "-m", "alias"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "long.yaml", flags.GlobalConfigFile)
	assert.Equal(t, "alias", flags.Content)
	assert.Equal(t, -1, flags.EmbedColor)
	assert.False(t, flags.hasEmbed())
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := ParseFlags([]string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)

	_, err = ParseFlags([]string{"-embed-color", "red"}, io.Discard)
	assert.Error(t, err)

	_, err = ParseFlags([]string{"stray"}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected arguments")
}
