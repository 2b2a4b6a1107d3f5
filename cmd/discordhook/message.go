package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/discordhook/internal/common/errorwrapper"
	"github.com/aleister1102/discordhook/internal/config"
	"github.com/aleister1102/discordhook/internal/notifier"
	"github.com/aleister1102/discordhook/internal/notifier/discord"
)

// buildMessage turns the command line into a message. Flags win over the
// identity configured in dc.
func buildMessage(flags AppFlags, dc config.DiscordConfig, now time.Time) (discord.Message, error) {
	mentions, allowedMentions := notifier.RoleMentions(flags.MentionRoles)
	msg := discord.NewMessage(mentions + flags.Content)

	msg = discord.When(msg, flags.hasEmbed(), func(m discord.Message) discord.Message {
		b := notifier.NewDiscordEmbedBuilder().
			WithTitle(flags.EmbedTitle).
			WithDescription(flags.EmbedDescription).
			WithURL(flags.EmbedURL).
			WithImage(flags.EmbedImage).
			WithThumbnail(flags.EmbedThumbnail).
			WithFooter(flags.EmbedFooter, "")
		if color, ok := embedColor(flags); ok {
			b.WithColor(color)
		}
		if flags.EmbedTimestamp {
			b.WithTimestamp(now)
		}
		return m.WithEmbed(b.Build())
	})

	for _, path := range flags.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			return discord.Message{}, errorwrapper.WrapError(err, "failed to read attachment")
		}
		msg = msg.WithFile(discord.NewAttachment(data, filepath.Base(path), "", ""))
	}

	// blank entries are dropped from the payload
	msg = msg.WithOptions(map[string]any{
		"username":         firstNonEmpty(flags.Username, dc.Username),
		"avatar_url":       firstNonEmpty(flags.AvatarURL, dc.AvatarURL),
		"allowed_mentions": allowedMentions,
	})

	return msg, nil
}

func embedColor(flags AppFlags) (int, bool) {
	switch {
	case flags.EmbedColor >= 0:
		return flags.EmbedColor, true
	case flags.Level != "":
		return notifier.ColorForLevel(flags.Level), true
	default:
		return 0, false
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
