package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-coffee-order/src/infrastructure/console"
	"go-coffee-order/src/infrastructure/log"
	"go-coffee-order/src/services/catalog"
	"go-coffee-order/src/services/coffee"
	"go-coffee-order/src/services/events"
	"go-coffee-order/src/services/payment"

	"github.com/google/uuid"
)

const doneKeyword = "done"

type OrderService interface {
	PlaceOrder(ctx context.Context) (*Order, error)
}

// EventPublisher is the part of the event bus the order flow needs.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event events.Event) error
}

type Options struct {
	CurrencySymbol string
	Suggestions    bool
}

type orderService struct {
	logger    log.Logger
	prompter  console.Prompter
	publisher EventPublisher
	options   Options
	newID     func() string
}

func NewOrderService(
	logger log.Logger,
	prompter console.Prompter,
	publisher EventPublisher,
	options Options,
) *orderService {
	return &orderService{
		logger:    logger,
		prompter:  prompter,
		publisher: publisher,
		options:   options,
		newID:     uuid.NewString,
	}
}

// PlaceOrder walks the customer through one order: coffee, add-ons, payment.
// It never goes back to an earlier step. A declined payment is reported and
// returned on the order; only input failures and lookup faults return an error.
func (s *orderService) PlaceOrder(ctx context.Context) (*Order, error) {
	order := NewOrder(s.newID())
	ctx = s.logger.WithCorrelationID(ctx, order.ID)
	s.logger.Info(ctx, "Order started")

	builder, err := s.chooseCoffee(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.chooseAddons(ctx, builder); err != nil {
		return nil, err
	}

	order.Coffee = builder.Build()
	order.Status = events.OrderStatusPlaced
	s.prompter.WriteLine(fmt.Sprintf("Your order: %s, Price: %s",
		order.Coffee.Description(), s.money(order.Coffee.Price())))
	s.publish(ctx, events.OrderPlaced, &events.OrderPlacedEvent{
		ID:        order.ID,
		Coffee:    events.Coffee{Type: order.Coffee.Type(), Addons: order.Coffee.Addons()},
		Amount:    order.Coffee.Price(),
		Status:    order.Status,
		Version:   1,
		TimeStamp: time.Now().Local(),
	})

	if err := s.pay(ctx, order); err != nil {
		return order, err
	}
	return order, nil
}

func (s *orderService) chooseCoffee(ctx context.Context) (*coffee.Builder, error) {
	s.prompter.WriteLine("Choose a coffee type: " + strings.Join(catalog.ProductNames(), ", "))

	name, err := s.readChoice(ctx, catalog.ProductNames(), "Invalid coffee type, try again.")
	if err != nil {
		return nil, fmt.Errorf("read coffee type: %w", err)
	}

	builder, err := coffee.NewCoffee(name)
	if err != nil {
		return nil, fmt.Errorf("create coffee %q: %w", name, err)
	}
	s.logger.InfoWithExtra(ctx, "Coffee selected", map[string]any{"Coffee": name})
	return builder, nil
}

func (s *orderService) chooseAddons(ctx context.Context, builder *coffee.Builder) error {
	question := "Do you want to add extras? (" + strings.Join(catalog.AddonNames(), ", ") + ") or type '" + doneKeyword + "':"
	for {
		s.prompter.WriteLine(question)
		line, err := s.prompter.ReadLine()
		if err != nil {
			return fmt.Errorf("read addon: %w", err)
		}

		name := catalog.Normalize(line)
		if name == doneKeyword {
			return nil
		}

		if err := builder.AddAddon(name); err != nil {
			if !errors.Is(err, catalog.ErrUnknownAddon) {
				return err
			}
			s.logger.WarnWithExtra(ctx, "Rejected addon", map[string]any{"Input": line})
			s.prompter.WriteLine("Invalid input, try again.")
			s.hint(name, append(catalog.AddonNames(), doneKeyword))
			continue
		}

		state := builder.State()
		s.logger.InfoWithExtra(ctx, "Addon applied", map[string]any{
			"Addon": name,
			"Price": state.Price,
		})
	}
}

func (s *orderService) pay(ctx context.Context, order *Order) error {
	s.prompter.WriteLine("Choose a payment method: " + strings.Join(payment.Methods(), ", "))
	method, err := s.readChoice(ctx, payment.Methods(), "Unknown payment method, try again.")
	if err != nil {
		return fmt.Errorf("read payment method: %w", err)
	}

	s.prompter.WriteLine("Enter payment details (card number or account ID):")
	accountID, err := s.prompter.ReadInteger()
	if err != nil {
		return fmt.Errorf("read account identifier: %w", err)
	}

	channel, err := payment.NewPaymentMethod(method, accountID)
	if err != nil {
		return fmt.Errorf("create payment method %q: %w", method, err)
	}

	order.PaymentMethod = method
	order.AccountID = accountID
	order.Outcome = channel.AttemptPayment(order.Coffee.Price())

	s.logger.InfoWithExtra(ctx, "Payment attempted", map[string]any{
		"Channel": order.Outcome.Channel,
		"Amount":  order.Outcome.Amount,
		"Status":  string(order.Outcome.Status),
		"Balance": order.Outcome.Balance,
	})
	s.prompter.WriteLine(s.describeOutcome(order.Outcome))

	if order.Outcome.Succeeded() {
		order.Status = events.OrderStatusPaid
		s.publish(ctx, events.PaymentCompleted, &events.PaymentCompletedEvent{
			OrderID:   order.ID,
			Channel:   order.Outcome.Channel,
			AccountID: accountID,
			Amount:    order.Outcome.Amount,
			Balance:   order.Outcome.Balance,
			Version:   1,
			TimeStamp: time.Now().Local(),
		})
		s.prompter.WriteLine("Payment successful!")
		return nil
	}

	order.Status = events.OrderStatusPaymentFailed
	s.publish(ctx, events.PaymentDeclined, &events.PaymentDeclinedEvent{
		OrderID:   order.ID,
		Channel:   order.Outcome.Channel,
		AccountID: accountID,
		Amount:    order.Outcome.Amount,
		Balance:   order.Outcome.Balance,
		Reason:    string(order.Outcome.Status),
		Version:   1,
		TimeStamp: time.Now().Local(),
	})
	s.prompter.WriteLine("Payment failed. Try another method.")
	return nil
}

// readChoice reads lines until one matches a candidate, case-insensitively.
func (s *orderService) readChoice(ctx context.Context, candidates []string, retryMessage string) (string, error) {
	for {
		line, err := s.prompter.ReadLine()
		if err != nil {
			return "", err
		}

		choice := catalog.Normalize(line)
		for _, candidate := range candidates {
			if candidate == choice {
				return choice, nil
			}
		}

		s.logger.WarnWithExtra(ctx, "Rejected selection", map[string]any{"Input": line})
		s.prompter.WriteLine(retryMessage)
		s.hint(choice, candidates)
	}
}

func (s *orderService) hint(input string, candidates []string) {
	if !s.options.Suggestions {
		return
	}
	if suggestion, ok := catalog.Suggest(input, candidates); ok {
		s.prompter.WriteLine(fmt.Sprintf("Did you mean %q?", suggestion))
	}
}

func (s *orderService) describeOutcome(o payment.Outcome) string {
	switch o.Status {
	case payment.StatusSuccess:
		if !o.BalanceTracked() {
			return fmt.Sprintf("Payment %s in the amount of %s", o.Via, s.money(o.Amount))
		}
		return fmt.Sprintf("Payment %s from account %d in the amount of %s. Balance on the account: %s",
			o.Via, o.AccountID, s.money(o.Amount), s.money(o.Balance))
	case payment.StatusInsufficientFunds:
		return fmt.Sprintf("Error: Insufficient funds on the account. Your balance: %s", s.money(o.Balance))
	default:
		return fmt.Sprintf("Error: Invalid payment amount %s", s.money(o.Amount))
	}
}

func (s *orderService) money(amount int) string {
	return fmt.Sprintf("%d%s", amount, s.options.CurrencySymbol)
}

// publish hands an event to the bus. Notifications are best effort and never fail the order.
func (s *orderService) publish(ctx context.Context, topic string, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		s.logger.Warn(ctx, fmt.Sprintf("Publish %s failed: %v", topic, err))
	}
}
