package discord

import "maps"

// Embeddable is anything that can be placed in a message's embeds list.
type Embeddable interface {
	ToPayload() *Payload
}

// Embed represents a Discord embed object. Fields not modelled here (color,
// fields, footer, author, timestamp) go through WithOptions.
type Embed struct {
	title       string
	description string
	url         string
	image       string
	thumbnail   string
	options     map[string]any
}

// NewEmbed creates a new Discord embed
func NewEmbed(title, description, url, image, thumbnail string) Embed {
	return Embed{
		title:       title,
		description: description,
		url:         url,
		image:       image,
		thumbnail:   thumbnail,
	}
}

// WithTitle sets the embed title
func (e Embed) WithTitle(title string) Embed {
	e.title = title
	return e
}

// WithDescription sets the embed description
func (e Embed) WithDescription(description string) Embed {
	e.description = description
	return e
}

// WithURL sets the embed URL
func (e Embed) WithURL(url string) Embed {
	e.url = url
	return e
}

// WithImage sets the embed image URL
func (e Embed) WithImage(url string) Embed {
	e.image = url
	return e
}

// WithThumbnail sets the embed thumbnail URL
func (e Embed) WithThumbnail(url string) Embed {
	e.thumbnail = url
	return e
}

// WithOptions replaces the raw fields merged over the fixed ones
func (e Embed) WithOptions(options map[string]any) Embed {
	e.options = maps.Clone(options)
	return e
}

// ToPayload reduces the embed to its wire object, blank values omitted.
func (e Embed) ToPayload() *Payload {
	p := NewPayload().
		Set("title", e.title).
		Set("description", e.description).
		Set("url", e.url)

	if !IsBlank(e.image) {
		p.Set("image", NewPayload().Set("url", e.image))
	}
	if !IsBlank(e.thumbnail) {
		p.Set("thumbnail", NewPayload().Set("url", e.thumbnail))
	}

	return p.Merge(e.options).Reject(IsBlank)
}

// Fields is a raw embed object passed through unchanged.
type Fields map[string]any

// ToPayload implements Embeddable.
func (f Fields) ToPayload() *Payload {
	return NewPayload().Merge(f)
}
