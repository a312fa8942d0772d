package payment

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

const (
	MethodCreditCard = "creditcard"
	MethodPayPal     = "paypal"
	MethodCrypto     = "crypto"
	MethodQiwi       = "qiwi"
)

var methods = []string{MethodCreditCard, MethodPayPal, MethodCrypto, MethodQiwi}

// Methods lists the payment method names NewPaymentMethod accepts.
func Methods() []string {
	return append([]string(nil), methods...)
}

func IsKnownMethod(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, m := range methods {
		if m == name {
			return true
		}
	}
	return false
}

// NewPaymentMethod creates a fresh channel for name (case-insensitive) bound to accountID.
// Every call starts a new account at StartingBalance.
func NewPaymentMethod(name string, accountID int) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MethodCreditCard:
		return NewCreditCardPayment(accountID), nil
	case MethodPayPal:
		return NewPayPalPayment(accountID), nil
	case MethodCrypto:
		return NewCryptoPayment(accountID), nil
	case MethodQiwi:
		return NewQiwiPayment(accountID), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, name)
	}
}
