package notifier

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aleister1102/discordhook/internal/common/errorwrapper"
	"github.com/aleister1102/discordhook/internal/httpclient"
	"github.com/aleister1102/discordhook/internal/notifier/discord"

	"github.com/rs/zerolog"
)

// DiscordNotifier posts messages to Discord webhooks. It holds no per-call
// state and is safe for concurrent use.
type DiscordNotifier struct {
	logger          zerolog.Logger
	httpClient      *httpclient.HTTPClient
	alwaysMultipart bool
}

// NewDiscordNotifier creates a new DiscordNotifier. The webhook URL is
// provided per send call.
func NewDiscordNotifier(logger zerolog.Logger, httpClient *httpclient.HTTPClient) (*DiscordNotifier, error) {
	moduleLogger := logger.With().Str("module", "DiscordNotifier").Logger()

	if httpClient == nil {
		moduleLogger.Debug().Msg("HTTP client is nil, using default HTTP client.")
		var err error
		httpClient, err = httpclient.NewHTTPClientBuilder(moduleLogger).Build()
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to build default HTTP client")
		}
	}

	return &DiscordNotifier{
		logger:     moduleLogger,
		httpClient: httpClient,
	}, nil
}

// WithAlwaysMultipart makes messages without attachments go out as a
// multipart body with a single payload_json part instead of plain JSON.
func (dn *DiscordNotifier) WithAlwaysMultipart(enabled bool) *DiscordNotifier {
	dn.alwaysMultipart = enabled
	return dn
}

// SendNotification posts msg to webhookURL. An invalid message or an empty
// URL sends nothing and returns (nil, nil). A status of 400 or above returns
// *httpclient.HTTPError carrying the response; transport failures return
// *httpclient.NetworkError. There are no retries.
func (dn *DiscordNotifier) SendNotification(ctx context.Context, webhookURL string, msg discord.Message) (*httpclient.HTTPResponse, error) {
	if !msg.IsValid() {
		dn.logger.Debug().Msg("Message has no content, embeds or components. Skipping Discord notification.")
		return nil, nil
	}

	if webhookURL == "" {
		dn.logger.Info().Msg("Webhook URL is empty. Skipping Discord notification.")
		return nil, nil
	}

	if err := ValidateWebhookURL(webhookURL); err != nil {
		dn.logger.Error().Err(err).Msg("Invalid Discord webhook URL provided for this notification.")
		return nil, err
	}

	reqBody, err := buildRequestBody(msg, dn.alwaysMultipart)
	if err != nil {
		dn.logger.Error().Err(err).Msg("Failed to build Discord request body")
		return nil, err
	}

	target := httpclient.RedactURL(webhookURL)
	dn.logger.Debug().
		Str("webhook", target).
		Str("content_type", reqBody.contentType).
		Int("parts", reqBody.parts).
		Int("body_bytes", reqBody.body.Len()).
		Msg("Sending Discord notification")

	resp, err := dn.httpClient.Post(ctx, webhookURL, reqBody.contentType, reqBody.body)
	if err != nil {
		event := dn.logger.Error().Err(err).Str("webhook", target)
		if resp != nil {
			event = event.Int("status_code", resp.StatusCode)
		}
		event.Msg("Discord notification failed")
		return resp, fmt.Errorf("failed to send discord notification: %w", err)
	}

	dn.logger.Info().Int("status_code", resp.StatusCode).Str("webhook", target).Msg("Discord notification sent successfully.")
	return resp, nil
}

// ValidateWebhookURL checks that rawURL is an absolute http(s) URL.
func ValidateWebhookURL(rawURL string) error {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return errorwrapper.NewValidationError("webhook_url", httpclient.RedactURL(rawURL), "webhook URL is not a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errorwrapper.NewValidationError("webhook_url", httpclient.RedactURL(rawURL), "webhook URL must use http or https")
	}
	if u.Host == "" {
		return errorwrapper.NewValidationError("webhook_url", httpclient.RedactURL(rawURL), "webhook URL has no host")
	}
	return nil
}
