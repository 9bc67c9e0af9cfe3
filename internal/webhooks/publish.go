package webhooks

import "log/slog"

// Publish sends an event through the publisher if one is configured.
// A nil publisher is the normal case when no webhook endpoints are set, so
// this helper keeps call sites free of nil checks. Queue-full errors are
// logged and dropped; webhook delivery never affects the calling operation.
func Publish(p Publisher, event Event) {
	if p == nil {
		return
	}
	if err := p.Publish(event); err != nil {
		slog.Debug("webhook event dropped",
			"event_type", event.Type,
			"board_id", event.BoardID,
			"error", err)
	}
}
