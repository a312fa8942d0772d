package domain

import (
	"time"

	"go-coffee-order/src/services/coffee"
	"go-coffee-order/src/services/events"
	"go-coffee-order/src/services/payment"
)

// Order is one run through the ordering flow.
type Order struct {
	ID            string
	Coffee        coffee.Coffee
	PaymentMethod string
	AccountID     int
	Outcome       payment.Outcome
	Status        string
	CreatedAt     time.Time
}

func NewOrder(id string) *Order {
	return &Order{
		ID:        id,
		Status:    events.OrderStatusRequested,
		CreatedAt: time.Now().Local(),
	}
}

// Paid reports whether the order's payment went through.
func (o *Order) Paid() bool {
	return o.Status == events.OrderStatusPaid
}
