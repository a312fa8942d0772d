package dlq

import (
	"context"
	"encoding/json"

	"go-coffee-order/src/infrastructure/log"
)

// DeadLetter is an event whose delivery failed on the bus.
type DeadLetter struct {
	Topic   string
	OrderID string
	Body    []byte
}

// DLQHandler keeps the events that a handler failed to process during this run.
type DLQHandler struct {
	logger  log.Logger
	letters []DeadLetter
}

func NewDLQHandler(logger log.Logger) *DLQHandler {
	return &DLQHandler{logger: logger}
}

// Handle records a failed delivery. It never fails itself.
func (h *DLQHandler) Handle(ctx context.Context, topic string, body []byte) error {
	h.logger.Info(ctx, "Processing dead letter for topic: "+topic)

	letter := DeadLetter{
		Topic:   topic,
		OrderID: orderIDOf(body),
		Body:    append([]byte(nil), body...),
	}
	h.letters = append(h.letters, letter)

	h.logger.WarnWithExtra(ctx, "Event parked in dead letter queue", map[string]any{
		"Topic":   letter.Topic,
		"OrderID": letter.OrderID,
	})
	return nil
}

// Letters returns the parked events in arrival order.
func (h *DLQHandler) Letters() []DeadLetter {
	return append([]DeadLetter(nil), h.letters...)
}

// orderIDOf extracts the order id from any of the order or payment events.
func orderIDOf(body []byte) string {
	var probe struct {
		ID      string `json:"id"`
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return "unknown"
	}
	switch {
	case probe.OrderID != "":
		return probe.OrderID
	case probe.ID != "":
		return probe.ID
	}
	return "unknown"
}
