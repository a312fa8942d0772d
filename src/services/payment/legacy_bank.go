package payment

import (
	"context"

	"go-coffee-order/src/infrastructure/log"
)

// LegacyBankAPI is the old bank integration. Its signature is fixed: it takes an
// amount, records the transaction and always goes through.
type LegacyBankAPI struct {
	logger log.Logger
}

func NewLegacyBankAPI(logger log.Logger) *LegacyBankAPI {
	return &LegacyBankAPI{logger: logger}
}

func (b *LegacyBankAPI) MakeTransaction(amount int) {
	b.logger.InfoWithExtra(context.TODO(), "Legacy Bank API: processing a payment", map[string]any{
		"Amount": amount,
	})
}

// BankAdapter exposes LegacyBankAPI as a Channel. The bank keeps no balance, so the
// adapter can only ever report success.
type BankAdapter struct {
	bankAPI *LegacyBankAPI
}

func NewBankAdapter(bankAPI *LegacyBankAPI) *BankAdapter {
	return &BankAdapter{bankAPI: bankAPI}
}

func (a *BankAdapter) Label() string { return "bank" }

func (a *BankAdapter) AttemptPayment(amount int) Outcome {
	a.bankAPI.MakeTransaction(amount)
	return Outcome{
		Status:  StatusSuccess,
		Channel: a.Label(),
		Via:     "via bank transfer",
		Amount:  amount,
		Balance: BalanceNotTracked,
	}
}
