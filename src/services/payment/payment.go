// Package payment implements the interchangeable payment channels an order can be paid with.
//
// Every channel satisfies Channel. Four of them debit an in-memory account that starts
// at StartingBalance; the bank channel is reached through BankAdapter, which wraps a
// legacy API that has no notion of a balance.
package payment

// StartingBalance is the balance every freshly created account starts with.
const StartingBalance = 1000

// BalanceNotTracked is reported as the remaining balance by channels without one.
const BalanceNotTracked = -1

type Status string

const (
	StatusSuccess           Status = "success"
	StatusInsufficientFunds Status = "insufficient_funds"
	StatusInvalidAmount     Status = "invalid_amount"
)

// Outcome is the result of a payment attempt. A declined payment is an outcome, not an error.
type Outcome struct {
	Status    Status
	Channel   string
	Via       string
	AccountID int
	Amount    int
	// Balance is the remaining balance on success and the current balance otherwise.
	Balance int
}

func (o Outcome) Succeeded() bool { return o.Status == StatusSuccess }

// BalanceTracked reports whether Balance carries a real account balance.
func (o Outcome) BalanceTracked() bool { return o.Balance != BalanceNotTracked }

// Channel is a payment backend.
type Channel interface {
	Label() string
	AttemptPayment(amount int) Outcome
}
