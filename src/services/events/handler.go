package events

import "context"

// EventHandler defines the interface for handling messages published on a topic.
type EventHandler interface {
	Handle(ctx context.Context, topic string, body []byte) error
}
