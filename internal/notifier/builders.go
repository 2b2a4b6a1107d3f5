package notifier

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aleister1102/discordhook/internal/notifier/discord"
)

// DiscordEmbedBuilder assembles a discord.Embed including the parts Embed
// only carries as options. Text is truncated to Discord's limits.
type DiscordEmbedBuilder struct {
	embed   discord.Embed
	options map[string]any
	fields  []map[string]any
}

// NewDiscordEmbedBuilder creates a new instance of DiscordEmbedBuilder.
func NewDiscordEmbedBuilder() *DiscordEmbedBuilder {
	return &DiscordEmbedBuilder{
		embed:   discord.NewEmbed("", "", "", "", ""),
		options: make(map[string]any),
	}
}

func (b *DiscordEmbedBuilder) WithTitle(title string) *DiscordEmbedBuilder {
	b.embed = b.embed.WithTitle(truncateString(title, discord.MaxEmbedTitle))
	return b
}

func (b *DiscordEmbedBuilder) WithDescription(description string) *DiscordEmbedBuilder {
	b.embed = b.embed.WithDescription(truncateString(description, discord.MaxEmbedDescription))
	return b
}

func (b *DiscordEmbedBuilder) WithURL(url string) *DiscordEmbedBuilder {
	b.embed = b.embed.WithURL(url)
	return b
}

func (b *DiscordEmbedBuilder) WithImage(url string) *DiscordEmbedBuilder {
	b.embed = b.embed.WithImage(url)
	return b
}

func (b *DiscordEmbedBuilder) WithThumbnail(url string) *DiscordEmbedBuilder {
	b.embed = b.embed.WithThumbnail(url)
	return b
}

// WithTimestamp formats timestamp as RFC 3339.
func (b *DiscordEmbedBuilder) WithTimestamp(timestamp time.Time) *DiscordEmbedBuilder {
	b.options["timestamp"] = timestamp.Format(time.RFC3339)
	return b
}

func (b *DiscordEmbedBuilder) WithColor(color int) *DiscordEmbedBuilder {
	b.options["color"] = color
	return b
}

// WithFooter sets the footer. An empty text removes it.
func (b *DiscordEmbedBuilder) WithFooter(text string, iconURL string) *DiscordEmbedBuilder {
	if text == "" {
		delete(b.options, "footer")
		return b
	}
	footer := map[string]any{"text": truncateString(text, discord.MaxEmbedFooterText)}
	if iconURL != "" {
		footer["icon_url"] = iconURL
	}
	b.options["footer"] = footer
	return b
}

// WithAuthor sets the author. An empty name removes it.
func (b *DiscordEmbedBuilder) WithAuthor(name string, url string, iconURL string) *DiscordEmbedBuilder {
	if name == "" {
		delete(b.options, "author")
		return b
	}
	author := map[string]any{"name": truncateString(name, discord.MaxEmbedAuthorName)}
	if url != "" {
		author["url"] = url
	}
	if iconURL != "" {
		author["icon_url"] = iconURL
	}
	b.options["author"] = author
	return b
}

// AddField appends a field. Fields past Discord's limit are dropped.
func (b *DiscordEmbedBuilder) AddField(name string, value string, inline bool) *DiscordEmbedBuilder {
	if len(b.fields) >= discord.MaxEmbedFields {
		return b
	}
	b.fields = append(b.fields, map[string]any{
		"name":   truncateString(name, discord.MaxEmbedFieldName),
		"value":  truncateString(value, discord.MaxEmbedFieldValue),
		"inline": inline,
	})
	return b
}

// Build returns the embed. The builder can keep being used afterwards.
func (b *DiscordEmbedBuilder) Build() discord.Embed {
	options := make(map[string]any, len(b.options)+1)
	for k, v := range b.options {
		options[k] = v
	}
	if len(b.fields) > 0 {
		fields := make([]map[string]any, len(b.fields))
		copy(fields, b.fields)
		options["fields"] = fields
	}
	return b.embed.WithOptions(options)
}

// RoleMentions returns the content prefix pinging roleIDs and the
// allowed_mentions option that permits exactly those roles.
func RoleMentions(roleIDs []string) (string, map[string]any) {
	if len(roleIDs) == 0 {
		return "", nil
	}
	mentions := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		mentions = append(mentions, fmt.Sprintf("<@&%s>", id))
	}
	allowed := map[string]any{
		"parse": []string{},
		"roles": append([]string(nil), roleIDs...),
	}
	return strings.Join(mentions, " ") + "\n", allowed
}

// truncateString cuts s to maxLength runes, ending in "..." when cut.
func truncateString(s string, maxLength int) string {
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLength-3]) + "..."
}
