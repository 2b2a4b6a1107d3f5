package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestMessage_ContentOnly(t *testing.T) {
	m := NewMessage("hi")

	assert.Equal(t, map[string]any{"content": "hi"}, m.ToPayload().Map())
	assert.Equal(t, `{"content":"hi"}`, m.String())
}

func TestMessage_ContentEmbedsAndOptions(t *testing.T) {
	m := NewMessage("test").
		WithEmbeds(Fields{"embeds": "test"}).
		WithOptions(map[string]any{"with": "test"})

	b, err := m.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"content":"test","embeds":[{"embeds":"test"}],"with":"test"}`, string(b))
}

func TestMessage_EmbedsOnly(t *testing.T) {
	m := NewMessage("", Fields{"embeds": "test"})

	assert.Equal(t, `{"embeds":[{"embeds":"test"}]}`, m.String())
}

func TestMessage_OptionsOnly(t *testing.T) {
	m := NewMessage("").WithOptions(map[string]any{"with": "test"})

	assert.Equal(t, `{"with":"test"}`, m.String())
}

func TestMessage_OptionsOverrideContent(t *testing.T) {
	m := NewMessage("a").WithOptions(map[string]any{"content": "b"})

	assert.Equal(t, `{"content":"b"}`, m.String())
}

func TestMessage_BlankOptionsDropped(t *testing.T) {
	m := NewMessage("a").WithOptions(map[string]any{
		"username": "",
		"tts":      false,
		"flags":    0,
		"embeds":   []any{},
	})

	assert.Equal(t, `{"content":"a","flags":0,"tts":false}`, m.String())
}

func TestMessage_BlankOptionRemovesField(t *testing.T) {
	m := NewMessage("a").WithOptions(map[string]any{"content": ""})

	assert.Equal(t, `{}`, m.String())
	assert.False(t, m.IsValid())
}

func TestMessage_Embed(t *testing.T) {
	m := NewMessage("").WithEmbed(NewEmbed("title", "", "", "", ""))

	assert.Equal(t, `{"title":"title"}`, gjson.Get(m.String(), "embeds.0").Raw)
}

func TestMessage_AttachmentDescriptors(t *testing.T) {
	m := NewMessage("files").
		WithFile(NewAttachment([]byte("a"), "a.txt", "first", "text/plain")).
		WithFile(NewAttachment([]byte("b"), "b.txt", "", "text/plain"))

	out := m.String()
	assert.Equal(t, `{"id":0,"description":"first","filename":"a.txt"}`, gjson.Get(out, "attachments.0").Raw)
	assert.Equal(t, `{"id":1,"filename":"b.txt"}`, gjson.Get(out, "attachments.1").Raw)
	assert.False(t, strings.Contains(out, `"a"`), "content bytes must not appear in the payload")

	require.Len(t, m.Attachments(), 2)
	assert.Equal(t, "a.txt", m.Attachments()[0].Filename)
	assert.True(t, m.HasAttachments())
}

func TestMessage_IsValid(t *testing.T) {
	assert.True(t, NewMessage("test").WithEmbeds().IsValid())
	assert.True(t, NewMessage("").WithEmbeds().WithOptions(map[string]any{"components": []any{"test"}}).IsValid())
	assert.True(t, NewMessage("", NewEmbed("t", "", "", "", "")).IsValid())
	assert.True(t, NewMessage("").WithEmbed(Fields{}).IsValid(), "an empty embed object still makes the embeds list non-blank")
}

func TestMessage_IsInvalid(t *testing.T) {
	assert.False(t, Message{}.IsValid())
	assert.False(t, NewMessage("   ").IsValid())
	assert.False(t, NewMessage("").WithEmbeds().WithOptions(map[string]any{"test": "test"}).IsValid())
	assert.False(t, NewMessage("").WithOptions(map[string]any{"components": []any{}}).IsValid())
}

func TestMessage_AttachmentsOnlyIsInvalid(t *testing.T) {
	m := NewMessage("").
		WithFile(NewAttachment(pngHeader, "test", "test", "image/png")).
		WithFile(NewAttachment(pngHeader, "test2", "test2", "image/png"))

	assert.Len(t, m.Attachments(), 2)
	assert.True(t, m.ToPayload().Has("attachments"))
	assert.False(t, m.IsValid())
}

func TestMessage_WithMethodsDoNotAlias(t *testing.T) {
	base := NewMessage("base").WithFile(NewAttachment(nil, "a", "", ""))
	left := base.WithFile(NewAttachment(nil, "left", "", ""))
	right := base.WithFile(NewAttachment(nil, "right", "", ""))

	require.Len(t, base.Attachments(), 1)
	assert.Equal(t, "left", left.Attachments()[1].Filename)
	assert.Equal(t, "right", right.Attachments()[1].Filename)

	opts := map[string]any{"username": "bot"}
	withOpts := base.WithOptions(opts)
	opts["username"] = "mutated"
	assert.Equal(t, "bot", withOpts.Options()["username"])

	attachments := withOpts.Attachments()
	attachments[0].Filename = "mutated"
	assert.Equal(t, "a", withOpts.Attachments()[0].Filename)
}

func TestMessage_Validate(t *testing.T) {
	assert.NoError(t, NewMessage("ok").Validate())

	err := NewMessage(strings.Repeat("x", MaxContentLength+1)).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content cannot exceed")

	m := NewMessage("")
	for i := 0; i <= MaxEmbedsPerMessage; i++ {
		m = m.WithEmbed(NewEmbed("t", "", "", "", ""))
	}
	require.Error(t, m.Validate())

	err = NewMessage("x").WithEmbed(NewEmbed(strings.Repeat("t", MaxEmbedTitle+1), "", "", "", "")).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embed 0")

	err = NewMessage("x").WithFile(NewAttachment([]byte("x"), "", "", "")).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filename")
}

func TestWhen(t *testing.T) {
	addFile := func(m Message) Message {
		return m.WithFile(NewAttachment([]byte("x"), "x.txt", "", ""))
	}

	assert.True(t, When(NewMessage("a"), true, addFile).HasAttachments())
	assert.False(t, When(NewMessage("a"), false, addFile).HasAttachments())
	assert.True(t, Unless(NewMessage("a"), false, addFile).HasAttachments())
}
