package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-coffee-order/src/infrastructure/log"
	"go-coffee-order/src/services/events"
)

// EventBus dispatches published events to the handlers registered for their topic.
// Delivery is synchronous, in the publisher's goroutine, in registration order.
type EventBus struct {
	handlers   map[string][]events.EventHandler
	deadLetter events.EventHandler
	logger     log.Logger
}

func NewEventBus(logger log.Logger) *EventBus {
	return &EventBus{
		handlers: make(map[string][]events.EventHandler),
		logger:   logger,
	}
}

// RegisterHandler registers an event handler for a specific topic.
func (b *EventBus) RegisterHandler(topic string, handler events.EventHandler) {
	b.handlers[topic] = append(b.handlers[topic], handler)
}

// SetDeadLetterHandler sets the handler that receives every delivery a topic handler rejected.
func (b *EventBus) SetDeadLetterHandler(handler events.EventHandler) {
	b.deadLetter = handler
}

// Publish validates and serializes event, then hands it to every handler of topic.
// A failing handler does not stop the others; all failures are returned joined.
func (b *EventBus) Publish(ctx context.Context, topic string, event events.Event) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("invalid %s event: %w", topic, err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", topic, err)
	}

	handlers := b.handlers[topic]
	if len(handlers) == 0 {
		b.logger.InfoWithExtra(ctx, "No handlers registered for topic", map[string]any{"Topic": topic})
		return nil
	}

	var errs []error
	for _, h := range handlers {
		if err := h.Handle(ctx, topic, body); err != nil {
			b.logger.Exception(ctx, "Event handler failed for topic: "+topic, err)
			errs = append(errs, err)
			b.park(ctx, topic, body)
		}
	}
	return errors.Join(errs...)
}

func (b *EventBus) park(ctx context.Context, topic string, body []byte) {
	if b.deadLetter == nil {
		return
	}
	if err := b.deadLetter.Handle(ctx, topic, body); err != nil {
		b.logger.Exception(ctx, "Dead letter handler failed for topic: "+topic, err)
	}
}
