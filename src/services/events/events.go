package events

import (
	"errors"
	"time"
)

const (
	// Event types
	OrderPlaced      = "order.placed"
	PaymentCompleted = "payment.completed"
	PaymentDeclined  = "payment.declined"

	// Order status enums
	OrderStatusRequested     = "Requested"
	OrderStatusPlaced        = "Placed"
	OrderStatusPaid          = "Paid"
	OrderStatusPaymentFailed = "PaymentFailed"
)

// Event is anything that can be published on the bus.
type Event interface {
	Validate() error
}

type Coffee struct {
	Type   string   `json:"type"`
	Addons []string `json:"addons"`
}

type OrderPlacedEvent struct {
	ID        string    `json:"id"`
	Coffee    Coffee    `json:"coffee"`
	Amount    int       `json:"amount"`
	Status    string    `json:"status"`
	Version   int       `json:"version"`
	TimeStamp time.Time `json:"timestamp"`
}

func (e *OrderPlacedEvent) Validate() error {
	if e.ID == "" || e.Coffee.Type == "" || e.Amount <= 0 {
		return errors.New("missing required fields in OrderPlacedEvent")
	}
	return nil
}

type PaymentCompletedEvent struct {
	OrderID   string    `json:"orderId"`
	Channel   string    `json:"channel"`
	AccountID int       `json:"accountId"`
	Amount    int       `json:"amount"`
	Balance   int       `json:"balance"`
	Version   int       `json:"version"`
	TimeStamp time.Time `json:"timestamp"`
}

func (e *PaymentCompletedEvent) Validate() error {
	if e.OrderID == "" || e.Channel == "" || e.Amount <= 0 {
		return errors.New("missing required fields in PaymentCompletedEvent")
	}
	return nil
}

type PaymentDeclinedEvent struct {
	OrderID   string    `json:"orderId"`
	Channel   string    `json:"channel"`
	AccountID int       `json:"accountId"`
	Amount    int       `json:"amount"`
	Balance   int       `json:"balance"`
	Reason    string    `json:"reason"`
	Version   int       `json:"version"`
	TimeStamp time.Time `json:"timestamp"`
}

func (e *PaymentDeclinedEvent) Validate() error {
	if e.OrderID == "" || e.Channel == "" || e.Reason == "" {
		return errors.New("missing required fields in PaymentDeclinedEvent")
	}
	return nil
}
