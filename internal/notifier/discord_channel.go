package notifier

import (
	"context"

	"github.com/aleister1102/discordhook/internal/httpclient"
)

// DiscordChannel is the Channel for the discord-webhook route.
type DiscordChannel struct {
	notifier *DiscordNotifier
}

// NewDiscordChannel creates a channel backed by dn.
func NewDiscordChannel(dn *DiscordNotifier) *DiscordChannel {
	return &DiscordChannel{notifier: dn}
}

// Name implements Channel.
func (c *DiscordChannel) Name() string {
	return RouteDiscordWebhook
}

// Send builds the message for notifiable and posts it to the webhook URL the
// notifiable resolves for the discord-webhook route.
func (c *DiscordChannel) Send(ctx context.Context, notifiable Notifiable, notification Notification) (*httpclient.HTTPResponse, error) {
	msg := notification.ToDiscordWebhook(notifiable)
	if !msg.IsValid() {
		return nil, nil
	}

	webhookURL := notifiable.RouteNotificationFor(RouteDiscordWebhook)
	if webhookURL == "" {
		return nil, nil
	}

	return c.notifier.SendNotification(ctx, webhookURL, msg)
}

// AnonymousNotifiable routes notifications to explicit addresses without a
// backing entity.
type AnonymousNotifiable struct {
	routes map[string]string
}

// Route starts an on-demand notifiable with one route.
func Route(route, target string) *AnonymousNotifiable {
	return (&AnonymousNotifiable{}).Route(route, target)
}

// Route adds or replaces a route and returns the notifiable.
func (a *AnonymousNotifiable) Route(route, target string) *AnonymousNotifiable {
	if a.routes == nil {
		a.routes = make(map[string]string)
	}
	a.routes[route] = target
	return a
}

// RouteNotificationFor implements Notifiable.
func (a *AnonymousNotifiable) RouteNotificationFor(route string) string {
	return a.routes[route]
}
