package discord

import (
	"bytes"
	"encoding/json"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Payload is an insertion-ordered JSON object. Setting an existing key
// replaces its value in place.
type Payload struct {
	keys   []string
	values map[string]any
}

// NewPayload returns an empty payload.
func NewPayload() *Payload {
	return &Payload{values: make(map[string]any)}
}

// Set stores value under key.
func (p *Payload) Set(key string, value any) *Payload {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value stored under key.
func (p *Payload) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Payload) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// HasAny reports whether at least one of keys is present.
func (p *Payload) HasAny(keys ...string) bool {
	return slices.ContainsFunc(keys, p.Has)
}

// Delete removes key.
func (p *Payload) Delete(key string) {
	if !p.Has(key) {
		return
	}
	delete(p.values, key)
	p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == key })
}

// Keys returns the keys in order.
func (p *Payload) Keys() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.keys)
}

// Len returns the number of keys.
func (p *Payload) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Merge writes every entry of other over p. Map keys are applied in sorted
// order so new keys land deterministically.
func (p *Payload) Merge(other map[string]any) *Payload {
	for _, k := range slices.Sorted(maps.Keys(other)) {
		p.Set(k, other[k])
	}
	return p
}

// Reject drops every entry for which pred returns true.
func (p *Payload) Reject(pred func(value any) bool) *Payload {
	kept := p.keys[:0]
	for _, k := range p.keys {
		if pred(p.values[k]) {
			delete(p.values, k)
			continue
		}
		kept = append(kept, k)
	}
	p.keys = kept
	return p
}

// Map returns a shallow copy as a plain map.
func (p *Payload) Map() map[string]any {
	if p == nil {
		return map[string]any{}
	}
	return maps.Clone(p.values)
}

// MarshalJSON writes the entries in insertion order.
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeJSON(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := encodeJSON(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeJSON marshals v without escaping <, > and &, which Discord uses in
// mentions and markdown.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// IsBlank reports whether v carries no information: nil, a whitespace-only
// string, an empty collection or payload. false and 0 are not blank.
func IsBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case *Payload:
		return val == nil || val.Len() == 0
	case Payload:
		return val.Len() == 0
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsBlank(rv.Elem().Interface())
	}
	return false
}
