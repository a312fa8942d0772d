package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-coffee-order/src/infrastructure/log"
	"go-coffee-order/src/services/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	topics []string
	bodies [][]byte
	err    error
}

func (h *recordingHandler) Handle(_ context.Context, topic string, body []byte) error {
	h.topics = append(h.topics, topic)
	h.bodies = append(h.bodies, body)
	return h.err
}

func TestEventBus_DispatchesToTopicHandlers(t *testing.T) {
	bus := NewEventBus(log.NewNopLogger())
	completed := &recordingHandler{}
	declined := &recordingHandler{}
	bus.RegisterHandler(events.PaymentCompleted, completed)
	bus.RegisterHandler(events.PaymentDeclined, declined)

	err := bus.Publish(context.Background(), events.PaymentCompleted, &events.PaymentCompletedEvent{
		OrderID: "order-1", Channel: "card", AccountID: 7, Amount: 650, Balance: 350, Version: 1,
	})
	require.NoError(t, err)

	require.Len(t, completed.bodies, 1)
	assert.Empty(t, declined.bodies)
	assert.Equal(t, []string{events.PaymentCompleted}, completed.topics)

	var got events.PaymentCompletedEvent
	require.NoError(t, json.Unmarshal(completed.bodies[0], &got))
	assert.Equal(t, "order-1", got.OrderID)
	assert.Equal(t, 350, got.Balance)
}

func TestEventBus_RejectsInvalidEvents(t *testing.T) {
	bus := NewEventBus(log.NewNopLogger())
	h := &recordingHandler{}
	bus.RegisterHandler(events.OrderPlaced, h)

	err := bus.Publish(context.Background(), events.OrderPlaced, &events.OrderPlacedEvent{})
	assert.Error(t, err)
	assert.Empty(t, h.bodies)
}

func TestEventBus_HandlerFailureDoesNotStopOthers(t *testing.T) {
	bus := NewEventBus(log.NewNopLogger())
	failing := &recordingHandler{err: errors.New("notification down")}
	healthy := &recordingHandler{}
	bus.RegisterHandler(events.PaymentDeclined, failing)
	bus.RegisterHandler(events.PaymentDeclined, healthy)

	err := bus.Publish(context.Background(), events.PaymentDeclined, &events.PaymentDeclinedEvent{
		OrderID: "order-2", Channel: "Qiwi", Amount: 1200, Balance: 1000, Reason: "insufficient_funds",
	})

	assert.ErrorIs(t, err, failing.err)
	assert.Len(t, failing.bodies, 1)
	assert.Len(t, healthy.bodies, 1)
}

func TestEventBus_NoHandlers(t *testing.T) {
	bus := NewEventBus(log.NewNopLogger())

	err := bus.Publish(context.Background(), events.OrderPlaced, &events.OrderPlacedEvent{
		ID: "order-3", Coffee: events.Coffee{Type: "Espresso"}, Amount: 400,
	})
	assert.NoError(t, err)
}

func TestEventBus_ParksFailedDeliveries(t *testing.T) {
	bus := NewEventBus(log.NewNopLogger())
	failing := &recordingHandler{err: errors.New("sms gateway down")}
	healthy := &recordingHandler{}
	deadLetters := &recordingHandler{}
	bus.RegisterHandler(events.PaymentDeclined, failing)
	bus.RegisterHandler(events.PaymentDeclined, healthy)
	bus.SetDeadLetterHandler(deadLetters)

	err := bus.Publish(context.Background(), events.PaymentDeclined, &events.PaymentDeclinedEvent{
		OrderID: "order-4", Channel: "PayPal", Amount: 1100, Balance: 1000, Reason: "insufficient_funds",
	})

	assert.Error(t, err)
	assert.Equal(t, []string{events.PaymentDeclined}, deadLetters.topics)
	require.Len(t, deadLetters.bodies, 1)
	assert.Equal(t, failing.bodies[0], deadLetters.bodies[0])
}
