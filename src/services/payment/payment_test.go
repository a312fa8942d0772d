package payment

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go-coffee-order/src/infrastructure/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLabel string
	}{
		{name: "creditcard", input: "creditcard", wantLabel: "card"},
		{name: "paypal_upper", input: "PayPal", wantLabel: "PayPal"},
		{name: "crypto", input: "CRYPTO", wantLabel: "cryptocurrency"},
		{name: "qiwi_padded", input: " qiwi ", wantLabel: "Qiwi"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ch, err := NewPaymentMethod(tt.input, 42)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, ch.Label())
		})
	}
}

func TestNewPaymentMethod_Unknown(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"cash", "", "bank", "credit card"} {
		ch, err := NewPaymentMethod(input, 1)
		assert.Nil(t, ch)
		assert.ErrorIs(t, err, ErrUnknownPaymentMethod, "input %q", input)
	}
}

func TestIsKnownMethod(t *testing.T) {
	t.Parallel()

	for _, m := range Methods() {
		assert.True(t, IsKnownMethod(strings.ToUpper(m)), m)
	}
	assert.False(t, IsKnownMethod("bank"))
	assert.Equal(t, []string{"creditcard", "paypal", "crypto", "qiwi"}, Methods())
}

func TestCreditCard_DrainsBalanceThenDeclines(t *testing.T) {
	t.Parallel()

	ch, err := NewPaymentMethod("creditcard", 42)
	require.NoError(t, err)

	first := ch.AttemptPayment(1000)
	assert.Equal(t, StatusSuccess, first.Status)
	assert.True(t, first.Succeeded())
	assert.Equal(t, 42, first.AccountID)
	assert.Equal(t, 1000, first.Amount)
	assert.Equal(t, 0, first.Balance)

	second := ch.AttemptPayment(1)
	assert.Equal(t, StatusInsufficientFunds, second.Status)
	assert.False(t, second.Succeeded())
	assert.Equal(t, 0, second.Balance)
}

func TestAccountChannel_DeclineDoesNotMutateBalance(t *testing.T) {
	t.Parallel()

	constructors := map[string]func(int) *AccountChannel{
		"card":   NewCreditCardPayment,
		"paypal": NewPayPalPayment,
		"crypto": NewCryptoPayment,
		"qiwi":   NewQiwiPayment,
	}

	for name, newChannel := range constructors {
		name, newChannel := name, newChannel
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ch := newChannel(7)
			ok := ch.AttemptPayment(300)
			require.True(t, ok.Succeeded())
			require.Equal(t, 700, ch.Balance())

			before := ch.Balance()
			declined := ch.AttemptPayment(701)
			assert.Equal(t, StatusInsufficientFunds, declined.Status)
			assert.Equal(t, before, declined.Balance)
			assert.Equal(t, before, ch.Balance())
		})
	}
}

func TestAccountChannel_InvalidAmount(t *testing.T) {
	t.Parallel()

	ch := NewQiwiPayment(3)
	for _, amount := range []int{0, -50} {
		outcome := ch.AttemptPayment(amount)
		assert.Equal(t, StatusInvalidAmount, outcome.Status)
		assert.Equal(t, StartingBalance, ch.Balance())
	}
}

func TestNewPaymentMethod_InstancesAreIndependent(t *testing.T) {
	t.Parallel()

	first, err := NewPaymentMethod("paypal", 5)
	require.NoError(t, err)
	require.True(t, first.AttemptPayment(900).Succeeded())

	second, err := NewPaymentMethod("paypal", 5)
	require.NoError(t, err)
	outcome := second.AttemptPayment(1000)
	assert.True(t, outcome.Succeeded())
	assert.Equal(t, 0, outcome.Balance)

	other, err := NewPaymentMethod("crypto", 5)
	require.NoError(t, err)
	assert.Equal(t, StartingBalance, other.(*AccountChannel).Balance())
}

func TestBankAdapter_AlwaysSucceeds(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := NewBankAdapter(NewLegacyBankAPI(log.NewLoggerWithOutput("info", &buf)))

	var ch Channel = adapter
	for _, amount := range []int{1, 650, 999999} {
		outcome := ch.AttemptPayment(amount)
		assert.Equal(t, StatusSuccess, outcome.Status)
		assert.Equal(t, amount, outcome.Amount)
		assert.Equal(t, "bank", outcome.Channel)
		assert.False(t, outcome.BalanceTracked())
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var last map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &last))
	assert.Equal(t, float64(999999), last["Amount"])
}
