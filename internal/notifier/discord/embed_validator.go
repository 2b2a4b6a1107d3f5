package discord

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/aleister1102/discordhook/internal/common/errorwrapper"
)

// Discord message and embed limits
const (
	MaxContentLength    = 2000
	MaxEmbedsPerMessage = 10
	MaxFilesPerMessage  = 10
	MaxEmbedTitle       = 256
	MaxEmbedDescription = 4096
	MaxEmbedFields      = 25
	MaxEmbedFieldName   = 256
	MaxEmbedFieldValue  = 1024
	MaxEmbedFooterText  = 2048
	MaxEmbedAuthorName  = 256
	MaxEmbedTotalLength = 6000
)

// EmbedValidator validates Discord embed objects
type EmbedValidator struct{}

// NewEmbedValidator creates a new embed validator
func NewEmbedValidator() *EmbedValidator {
	return &EmbedValidator{}
}

// ValidateEmbed validates an embed reduced to its wire object
func (ev *EmbedValidator) ValidateEmbed(embed *Payload) error {
	total := 0

	title := stringField(embed, "title")
	if utf8.RuneCountInString(title) > MaxEmbedTitle {
		return errorwrapper.NewValidationError("title", title, fmt.Sprintf("title cannot exceed %d characters", MaxEmbedTitle))
	}
	total += utf8.RuneCountInString(title)

	description := stringField(embed, "description")
	if utf8.RuneCountInString(description) > MaxEmbedDescription {
		return errorwrapper.NewValidationError("description", description, fmt.Sprintf("description cannot exceed %d characters", MaxEmbedDescription))
	}
	total += utf8.RuneCountInString(description)

	fields := sliceField(embed, "fields")
	if len(fields) > MaxEmbedFields {
		return errorwrapper.NewValidationError("fields", len(fields), fmt.Sprintf("cannot have more than %d fields", MaxEmbedFields))
	}

	for i, raw := range fields {
		field, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		name, _ := field["name"].(string)
		value, _ := field["value"].(string)
		if name == "" {
			return errorwrapper.NewValidationError("field_name", name, fmt.Sprintf("field %d name cannot be empty", i))
		}
		if value == "" {
			return errorwrapper.NewValidationError("field_value", value, fmt.Sprintf("field %d value cannot be empty", i))
		}
		if utf8.RuneCountInString(name) > MaxEmbedFieldName {
			return errorwrapper.NewValidationError("field_name", name, fmt.Sprintf("field %d name cannot exceed %d characters", i, MaxEmbedFieldName))
		}
		if utf8.RuneCountInString(value) > MaxEmbedFieldValue {
			return errorwrapper.NewValidationError("field_value", value, fmt.Sprintf("field %d value cannot exceed %d characters", i, MaxEmbedFieldValue))
		}
		total += utf8.RuneCountInString(name) + utf8.RuneCountInString(value)
	}

	if footer, ok := mapField(embed, "footer"); ok {
		text, _ := footer["text"].(string)
		if utf8.RuneCountInString(text) > MaxEmbedFooterText {
			return errorwrapper.NewValidationError("footer_text", text, fmt.Sprintf("footer text cannot exceed %d characters", MaxEmbedFooterText))
		}
		total += utf8.RuneCountInString(text)
	}

	if author, ok := mapField(embed, "author"); ok {
		name, _ := author["name"].(string)
		if utf8.RuneCountInString(name) > MaxEmbedAuthorName {
			return errorwrapper.NewValidationError("author_name", name, fmt.Sprintf("author name cannot exceed %d characters", MaxEmbedAuthorName))
		}
		total += utf8.RuneCountInString(name)
	}

	if total > MaxEmbedTotalLength {
		return errorwrapper.NewValidationError("embed", total, fmt.Sprintf("embed text cannot exceed %d characters in total", MaxEmbedTotalLength))
	}

	return nil
}

// Validate checks the message against Discord's limits. Sending does not
// call it; callers that want an early error do.
func (m Message) Validate() error {
	if n := utf8.RuneCountInString(m.content); n > MaxContentLength {
		return errorwrapper.NewValidationError("content", n, fmt.Sprintf("content cannot exceed %d characters", MaxContentLength))
	}
	if len(m.embeds) > MaxEmbedsPerMessage {
		return errorwrapper.NewValidationError("embeds", len(m.embeds), fmt.Sprintf("cannot have more than %d embeds", MaxEmbedsPerMessage))
	}
	if len(m.attachments) > MaxFilesPerMessage {
		return errorwrapper.NewValidationError("attachments", len(m.attachments), fmt.Sprintf("cannot have more than %d attachments", MaxFilesPerMessage))
	}

	ev := NewEmbedValidator()
	for i, e := range m.embeds {
		if e == nil {
			continue
		}
		if err := ev.ValidateEmbed(e.ToPayload()); err != nil {
			return errorwrapper.WrapError(err, fmt.Sprintf("embed %d", i))
		}
	}

	for _, a := range m.attachments {
		if err := a.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func stringField(p *Payload, key string) string {
	v, _ := p.Get(key)
	s, _ := v.(string)
	return s
}

func mapField(p *Payload, key string) (map[string]any, bool) {
	v, ok := p.Get(key)
	if !ok {
		return nil, false
	}
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case *Payload:
		return m.Map(), true
	}
	return nil, false
}

func sliceField(p *Payload, key string) []any {
	v, ok := p.Get(key)
	if !ok {
		return nil
	}
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
