package config

// DiscordConfig holds the default webhook target and message overrides.
type DiscordConfig struct {
	WebhookURL string `json:"webhook_url,omitempty" yaml:"webhook_url,omitempty" env:"DISCORD_WEBHOOK_URL" validate:"omitempty,url,startswith=http"`
	// Username and AvatarURL override the webhook's configured identity.
	Username        string `json:"username,omitempty" yaml:"username,omitempty" env:"DISCORD_USERNAME" validate:"max=80"`
	AvatarURL       string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty" env:"DISCORD_AVATAR_URL" validate:"omitempty,url"`
	AlwaysMultipart bool   `json:"always_multipart" yaml:"always_multipart" env:"DISCORD_ALWAYS_MULTIPART"`
}

// NewDefaultDiscordConfig creates default Discord configuration
func NewDefaultDiscordConfig() DiscordConfig {
	return DiscordConfig{}
}
