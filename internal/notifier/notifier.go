package notifier

import (
	"context"

	"github.com/aleister1102/discordhook/internal/httpclient"
	"github.com/aleister1102/discordhook/internal/notifier/discord"
)

// RouteDiscordWebhook is the route name a Notifiable resolves to a webhook URL.
const RouteDiscordWebhook = "discord-webhook"

// Notifiable is a recipient that can resolve per-channel delivery addresses.
// An empty string means "do not send on this route".
type Notifiable interface {
	RouteNotificationFor(route string) string
}

// Notification produces the Discord message for a given recipient.
type Notification interface {
	ToDiscordWebhook(notifiable Notifiable) discord.Message
}

// NotificationFunc adapts a function to Notification.
type NotificationFunc func(notifiable Notifiable) discord.Message

// ToDiscordWebhook implements Notification.
func (f NotificationFunc) ToDiscordWebhook(notifiable Notifiable) discord.Message {
	return f(notifiable)
}

// Channel delivers a notification to one notifiable. A nil response with a
// nil error means the send was skipped.
type Channel interface {
	// Name returns the unique identifier for this channel.
	Name() string

	Send(ctx context.Context, notifiable Notifiable, notification Notification) (*httpclient.HTTPResponse, error)
}
