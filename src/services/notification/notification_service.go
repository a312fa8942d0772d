package notification

import (
	"context"
	"fmt"

	"go-coffee-order/src/infrastructure/log"
)

// NotificationChannel represents different notification delivery methods
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
	ChannelSMS   NotificationChannel = "sms"
	ChannelPush  NotificationChannel = "push"
)

// NotificationRequest represents a notification to be sent
type NotificationRequest struct {
	OrderID     string              `json:"orderId"`
	Message     string              `json:"message"`
	Channel     NotificationChannel `json:"channel"`
	Recipient   string              `json:"recipient"`   // payment account the receipt belongs to
	MessageType string              `json:"messageType"` // "receipt", "declined"
}

// NotificationService defines the interface for sending notifications
type NotificationService interface {
	SendNotification(ctx context.Context, request NotificationRequest) error
	SendMultiChannelNotification(ctx context.Context, request NotificationRequest, channels []NotificationChannel) error
}

// NotificationServiceImpl delivers notifications into the structured log; there is
// no outbound gateway in a single-terminal run.
type NotificationServiceImpl struct {
	logger log.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(logger log.Logger) NotificationService {
	return &NotificationServiceImpl{
		logger: logger,
	}
}

// SendNotification sends a notification through the specified channel
func (n *NotificationServiceImpl) SendNotification(ctx context.Context, request NotificationRequest) error {
	switch request.Channel {
	case ChannelEmail, ChannelSMS, ChannelPush:
		n.logger.InfoWithExtra(ctx, getTitle(request.MessageType), map[string]any{
			"OrderID":   request.OrderID,
			"Channel":   string(request.Channel),
			"Recipient": request.Recipient,
			"Body":      request.Message,
		})
		return nil
	default:
		return fmt.Errorf("unknown notification channel: %q", request.Channel)
	}
}

// SendMultiChannelNotification sends notifications through multiple channels
func (n *NotificationServiceImpl) SendMultiChannelNotification(ctx context.Context, request NotificationRequest, channels []NotificationChannel) error {
	for _, channel := range channels {
		request.Channel = channel
		if err := n.SendNotification(ctx, request); err != nil {
			n.logger.Exception(ctx, "Failed to send notification via "+string(channel), err)
			// Continue with other channels instead of failing entirely
		}
	}
	return nil
}

func getTitle(messageType string) string {
	switch messageType {
	case "receipt":
		return "Payment receipt"
	case "declined":
		return "Payment declined"
	default:
		return "Order update"
	}
}
