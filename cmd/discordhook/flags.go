package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// fileList collects a repeatable string flag.
type fileList []string

func (f *fileList) String() string { return strings.Join(*f, ",") }

func (f *fileList) Set(v string) error {
	*f = append(*f, v)
	return nil
}

type AppFlags struct {
	GlobalConfigFile string
	InitConfigFile   string
	WebhookURL       string
	Content          string
	Username         string
	AvatarURL        string

	EmbedTitle       string
	EmbedDescription string
	EmbedURL         string
	EmbedImage       string
	EmbedThumbnail   string
	EmbedColor       int
	EmbedFooter      string
	EmbedTimestamp   bool
	Level            string
	MentionRoles     []string

	Files     []string
	Multipart bool
}

func ParseFlags(args []string, output io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("discordhook", flag.ContinueOnError)
	fs.SetOutput(output)

	var flags AppFlags
	var files, roles fileList
	var configAlias, webhookAlias, contentAlias string

	fs.StringVar(&flags.GlobalConfigFile, "config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	fs.StringVar(&configAlias, "c", "", "Alias for -config")
	fs.StringVar(&flags.InitConfigFile, "init-config", "", "Write a default configuration file to this path and exit")

	fs.StringVar(&flags.WebhookURL, "webhook", "", "Discord webhook URL (overrides config and DISCORD_WEBHOOK_URL)")
	fs.StringVar(&webhookAlias, "w", "", "Alias for -webhook")
	fs.StringVar(&flags.Content, "content", "", "Plain message text")
	fs.StringVar(&contentAlias, "m", "", "Alias for -content")
	fs.StringVar(&flags.Username, "username", "", "Override the webhook's display name")
	fs.StringVar(&flags.AvatarURL, "avatar-url", "", "Override the webhook's avatar")

	fs.StringVar(&flags.EmbedTitle, "embed-title", "", "Embed title")
	fs.StringVar(&flags.EmbedDescription, "embed-description", "", "Embed description")
	fs.StringVar(&flags.EmbedURL, "embed-url", "", "Embed title link")
	fs.StringVar(&flags.EmbedImage, "embed-image", "", "Embed image URL")
	fs.StringVar(&flags.EmbedThumbnail, "embed-thumbnail", "", "Embed thumbnail URL")
	fs.IntVar(&flags.EmbedColor, "embed-color", -1, "Embed color as an integer (e.g. 0xD9534F); overrides -level")
	fs.StringVar(&flags.EmbedFooter, "embed-footer", "", "Embed footer text")
	fs.BoolVar(&flags.EmbedTimestamp, "embed-timestamp", false, "Stamp the embed with the current time")
	fs.Var(&roles, "mention-role", "Role ID to ping (repeatable)")
	fs.StringVar(&flags.Level, "level", "", "Severity used to pick the embed color: success, info, warning or error")

	fs.Var(&files, "file", "File to attach (repeatable)")
	fs.Var(&files, "f", "Alias for -file")
	fs.BoolVar(&flags.Multipart, "multipart", false, "Always send multipart/form-data, even without files")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}
	if fs.NArg() > 0 {
		return AppFlags{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if flags.GlobalConfigFile == "" {
		flags.GlobalConfigFile = configAlias
	}
	if flags.WebhookURL == "" {
		flags.WebhookURL = webhookAlias
	}
	if flags.Content == "" {
		flags.Content = contentAlias
	}
	flags.Files = files
	flags.MentionRoles = roles

	return flags, nil
}

// hasEmbed reports whether any embed flag was given.
func (f AppFlags) hasEmbed() bool {
	return f.EmbedTitle != "" || f.EmbedDescription != "" || f.EmbedURL != "" ||
		f.EmbedImage != "" || f.EmbedThumbnail != "" || f.EmbedFooter != ""
}
