package notifier

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aleister1102/discordhook/internal/httpclient"

	"github.com/rs/zerolog"
)

// EventType identifies what happened to a notification on a channel.
type EventType string

const (
	EventSent   EventType = "notification_sent"
	EventFailed EventType = "notification_failed"
)

// Event reports the outcome of one channel send. Skipped sends produce no
// event.
type Event struct {
	Type         EventType
	Channel      string
	Notifiable   Notifiable
	Notification Notification
	// Response is set for sent events and for failed events caused by an
	// error status.
	Response *httpclient.HTTPResponse
	Err      error
}

// Listener observes notification events. Listeners run synchronously on the
// sending goroutine.
type Listener func(Event)

// NotificationHelper sends notifications through its channels and reports
// each outcome to the registered listeners.
type NotificationHelper struct {
	mu        sync.RWMutex
	channels  []Channel
	listeners []Listener
	logger    zerolog.Logger
}

// NewNotificationHelper creates a new NotificationHelper.
func NewNotificationHelper(logger zerolog.Logger, channels ...Channel) *NotificationHelper {
	return &NotificationHelper{
		channels: channels,
		logger:   logger.With().Str("module", "NotificationHelper").Logger(),
	}
}

// RegisterChannel adds a channel.
func (nh *NotificationHelper) RegisterChannel(ch Channel) {
	nh.mu.Lock()
	defer nh.mu.Unlock()
	nh.channels = append(nh.channels, ch)
}

// Listen registers a listener for sent and failed events.
func (nh *NotificationHelper) Listen(l Listener) {
	nh.mu.Lock()
	defer nh.mu.Unlock()
	nh.listeners = append(nh.listeners, l)
}

// Send delivers notification to notifiable through every channel. Channel
// failures do not stop the remaining channels; they are joined into the
// returned error.
func (nh *NotificationHelper) Send(ctx context.Context, notifiable Notifiable, notification Notification) error {
	nh.mu.RLock()
	channels := append([]Channel(nil), nh.channels...)
	nh.mu.RUnlock()

	var errs []error
	for _, ch := range channels {
		resp, err := ch.Send(ctx, notifiable, notification)
		switch {
		case err != nil:
			var httpErr *httpclient.HTTPError
			if errors.As(err, &httpErr) && resp == nil {
				resp = httpErr.Response
			}
			nh.logger.Warn().Err(err).Str("channel", ch.Name()).Msg("Notification channel failed")
			nh.emit(Event{Type: EventFailed, Channel: ch.Name(), Notifiable: notifiable, Notification: notification, Response: resp, Err: err})
			errs = append(errs, fmt.Errorf("channel %s: %w", ch.Name(), err))
		case resp == nil:
			nh.logger.Debug().Str("channel", ch.Name()).Msg("Notification skipped by channel")
		default:
			nh.emit(Event{Type: EventSent, Channel: ch.Name(), Notifiable: notifiable, Notification: notification, Response: resp})
		}
	}

	return errors.Join(errs...)
}

func (nh *NotificationHelper) emit(e Event) {
	nh.mu.RLock()
	listeners := append([]Listener(nil), nh.listeners...)
	nh.mu.RUnlock()

	for _, l := range listeners {
		l(e)
	}
}
