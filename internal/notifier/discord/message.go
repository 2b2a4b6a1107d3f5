package discord

import (
	"maps"
	"slices"
)

// Message is the body of a webhook execution. Values are immutable: every
// With method returns a copy and never shares slices or maps with the
// receiver.
type Message struct {
	content     string
	embeds      []Embeddable
	attachments []Attachment
	options     map[string]any
}

// NewMessage creates a message with optional content and embeds.
func NewMessage(content string, embeds ...Embeddable) Message {
	return Message{
		content: content,
		embeds:  slices.Clone(embeds),
	}
}

// WithContent sets the plain text body.
func (m Message) WithContent(content string) Message {
	m.content = content
	return m
}

// WithEmbeds replaces the embed list.
func (m Message) WithEmbeds(embeds ...Embeddable) Message {
	m.embeds = slices.Clone(embeds)
	return m
}

// WithEmbed appends one embed.
func (m Message) WithEmbed(embed Embeddable) Message {
	m.embeds = append(slices.Clip(m.embeds), embed)
	return m
}

// WithFile appends an attachment. Its index becomes its wire id.
func (m Message) WithFile(attachment Attachment) Message {
	m.attachments = append(slices.Clip(m.attachments), attachment)
	return m
}

// WithOptions replaces the raw fields merged over the payload, e.g.
// username, avatar_url, components or allowed_mentions.
func (m Message) WithOptions(options map[string]any) Message {
	m.options = maps.Clone(options)
	return m
}

// Content returns the plain text body.
func (m Message) Content() string { return m.content }

// Embeds returns a copy of the embed list.
func (m Message) Embeds() []Embeddable { return slices.Clone(m.embeds) }

// Attachments returns a copy of the attachment list.
func (m Message) Attachments() []Attachment { return slices.Clone(m.attachments) }

// Options returns a copy of the raw option overrides.
func (m Message) Options() map[string]any { return maps.Clone(m.options) }

// HasAttachments reports whether the message must be sent as multipart.
func (m Message) HasAttachments() bool { return len(m.attachments) > 0 }

// ToPayload builds the wire object: content, embeds and the attachment
// descriptors, then options merged on top, then blank values dropped.
func (m Message) ToPayload() *Payload {
	var embeds []*Payload
	for _, e := range m.embeds {
		if e == nil {
			continue
		}
		embeds = append(embeds, e.ToPayload())
	}

	var attachments []*Payload
	for id, a := range m.attachments {
		d := NewPayload().Set("id", id)
		if !IsBlank(a.Description) {
			d.Set("description", a.Description)
		}
		d.Set("filename", a.Filename)
		attachments = append(attachments, d)
	}

	return NewPayload().
		Set("content", m.content).
		Set("embeds", embeds).
		Set("attachments", attachments).
		Merge(m.options).
		Reject(IsBlank)
}

// ToJSON serializes the payload.
func (m Message) ToJSON() ([]byte, error) {
	return m.ToPayload().MarshalJSON()
}

// String returns the JSON payload, or an empty object if it cannot be encoded.
func (m Message) String() string {
	b, err := m.ToJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}

// IsValid reports whether Discord would accept the message: it needs
// content, embeds or components. Attachments alone are not enough.
func (m Message) IsValid() bool {
	return m.ToPayload().HasAny("content", "embeds", "components")
}
