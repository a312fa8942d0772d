package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go-coffee-order/src/infrastructure/log"
	"go-coffee-order/src/services/events"
	"go-coffee-order/src/services/notification"
)

// PaymentEventHandler turns payment events into customer notifications.
type PaymentEventHandler struct {
	notificationService notification.NotificationService
	logger              log.Logger
}

func NewPaymentEventHandler(
	notificationService notification.NotificationService,
	logger log.Logger,
) *PaymentEventHandler {
	return &PaymentEventHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// Handle processes payment.completed and payment.declined messages
func (h *PaymentEventHandler) Handle(ctx context.Context, topic string, body []byte) error {
	switch topic {
	case events.PaymentCompleted:
		var event events.PaymentCompletedEvent
		if err := json.Unmarshal(body, &event); err != nil {
			h.logger.Exception(ctx, "Failed to unmarshal PaymentCompletedEvent", err)
			return fmt.Errorf("decode %s: %w", topic, err)
		}

		h.logger.Info(ctx, "Sending payment receipt for order: "+event.OrderID)
		return h.notificationService.SendMultiChannelNotification(ctx, notification.NotificationRequest{
			OrderID:     event.OrderID,
			Message:     fmt.Sprintf("Paid %d via %s", event.Amount, event.Channel),
			Recipient:   strconv.Itoa(event.AccountID),
			MessageType: "receipt",
		}, []notification.NotificationChannel{
			notification.ChannelEmail,
			notification.ChannelPush,
		})

	case events.PaymentDeclined:
		var event events.PaymentDeclinedEvent
		if err := json.Unmarshal(body, &event); err != nil {
			h.logger.Exception(ctx, "Failed to unmarshal PaymentDeclinedEvent", err)
			return fmt.Errorf("decode %s: %w", topic, err)
		}

		h.logger.Info(ctx, "Payment declined for order: "+event.OrderID+", reason: "+event.Reason)
		return h.notificationService.SendNotification(ctx, notification.NotificationRequest{
			OrderID:     event.OrderID,
			Message:     fmt.Sprintf("Payment of %d via %s declined, balance %d", event.Amount, event.Channel, event.Balance),
			Channel:     notification.ChannelSMS, // SMS for urgent declines
			Recipient:   strconv.Itoa(event.AccountID),
			MessageType: "declined",
		})

	default:
		return fmt.Errorf("unexpected topic %q", topic)
	}
}
