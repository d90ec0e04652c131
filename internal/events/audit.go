package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
)

// AuditLogger subscribes to the event topic and writes one log line per event
type AuditLogger struct {
	subscriber message.Subscriber
	topic      string
	logger     *slog.Logger
}

func NewAuditLogger(subscriber message.Subscriber, topic string, logger *slog.Logger) *AuditLogger {
	return &AuditLogger{
		subscriber: subscriber,
		topic:      topic,
		logger:     logger.With("component", "audit"),
	}
}

// Run consumes events until ctx is cancelled or the subscription closes.
// onEvent, when set, is called for each decoded event.
func (a *AuditLogger) Run(ctx context.Context, onEvent func(Event)) error {
	messages, err := a.subscriber.Subscribe(ctx, a.topic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", a.topic, err)
	}

	for msg := range messages {
		var event Event
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			a.logger.ErrorContext(ctx, "Failed to decode event", "error", err, "message_id", msg.UUID)
			msg.Ack()
			continue
		}

		a.logger.InfoContext(ctx, "Audit event",
			"event_id", event.ID,
			"event_type", event.Type,
			"timestamp", event.Timestamp)
		if onEvent != nil {
			onEvent(event)
		}
		msg.Ack()
	}
	return nil
}
