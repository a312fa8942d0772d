package payment

// Account is the in-memory balance behind a single channel instance.
type Account struct {
	id      int
	balance int
}

func NewAccount(id int) *Account {
	return &Account{id: id, balance: StartingBalance}
}

func (a *Account) ID() int      { return a.id }
func (a *Account) Balance() int { return a.balance }

// debit takes amount off the balance. Amounts above the balance are refused and the
// balance is left as is, so it can never go negative.
func (a *Account) debit(amount int) bool {
	if amount > a.balance {
		return false
	}
	a.balance -= amount
	return true
}

// AccountChannel is a channel that pays from its own Account: card, PayPal,
// cryptocurrency and Qiwi only differ by label.
type AccountChannel struct {
	label   string
	via     string
	account *Account
}

func NewCreditCardPayment(accountID int) *AccountChannel {
	return &AccountChannel{label: "card", via: "by card", account: NewAccount(accountID)}
}

func NewPayPalPayment(accountID int) *AccountChannel {
	return &AccountChannel{label: "PayPal", via: "via PayPal", account: NewAccount(accountID)}
}

func NewCryptoPayment(accountID int) *AccountChannel {
	return &AccountChannel{label: "cryptocurrency", via: "in cryptocurrency", account: NewAccount(accountID)}
}

func NewQiwiPayment(accountID int) *AccountChannel {
	return &AccountChannel{label: "Qiwi", via: "via Qiwi", account: NewAccount(accountID)}
}

func (c *AccountChannel) Label() string { return c.label }

func (c *AccountChannel) Balance() int { return c.account.Balance() }

func (c *AccountChannel) AttemptPayment(amount int) Outcome {
	outcome := Outcome{
		Channel:   c.label,
		Via:       c.via,
		AccountID: c.account.ID(),
		Amount:    amount,
	}

	switch {
	case amount <= 0:
		outcome.Status = StatusInvalidAmount
	case !c.account.debit(amount):
		outcome.Status = StatusInsufficientFunds
	default:
		outcome.Status = StatusSuccess
	}
	outcome.Balance = c.account.Balance()
	return outcome
}
