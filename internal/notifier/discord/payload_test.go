package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload_SetKeepsInsertionOrder(t *testing.T) {
	p := NewPayload().Set("b", 1).Set("a", 2).Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, p.Keys())
	v, ok := p.Get("b")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	b, err := p.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"b":3,"a":2}`, string(b))
}

func TestPayload_MergeAndReject(t *testing.T) {
	p := NewPayload().Set("content", "a").Set("embeds", nil)
	p.Merge(map[string]any{"zeta": "z", "content": "b", "alpha": ""}).Reject(IsBlank)

	assert.Equal(t, []string{"content", "zeta"}, p.Keys())
	assert.Equal(t, map[string]any{"content": "b", "zeta": "z"}, p.Map())
	assert.True(t, p.HasAny("missing", "zeta"))
	assert.False(t, p.HasAny("alpha", "embeds"))
}

func TestPayload_Delete(t *testing.T) {
	p := NewPayload().Set("a", 1).Set("b", 2).Set("c", 3)
	p.Delete("b")
	p.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, p.Keys())
	assert.Equal(t, 2, p.Len())
}

func TestPayload_ZeroValueAndNil(t *testing.T) {
	var zero Payload
	b, err := zero.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))

	zero.Set("k", "v")
	assert.True(t, zero.Has("k"))

	var nilPayload *Payload
	assert.Equal(t, 0, nilPayload.Len())
	assert.False(t, nilPayload.Has("k"))
	assert.Empty(t, nilPayload.Map())
}

func TestPayload_DoesNotEscapeHTML(t *testing.T) {
	b, err := NewPayload().Set("content", "<@123> & friends").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"content":"<@123> & friends"}`, string(b))
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"whitespace string", "  \n", true},
		{"string", "x", false},
		{"false", false, false},
		{"zero int", 0, false},
		{"zero float", 0.0, false},
		{"empty slice", []any{}, true},
		{"nil typed slice", []*Payload(nil), true},
		{"slice", []string{"a"}, false},
		{"empty map", map[string]any{}, true},
		{"map", map[string]any{"a": 1}, false},
		{"empty payload", NewPayload(), true},
		{"nil payload", (*Payload)(nil), true},
		{"payload", NewPayload().Set("a", 1), false},
		{"nil pointer", (*string)(nil), true},
		{"struct", struct{}{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlank(tt.value))
		})
	}
}
