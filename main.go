package main

import (
	"fmt"
	"os"

	"go-coffee-order/src/config"
	"go-coffee-order/src/infrastructure/console"
	"go-coffee-order/src/infrastructure/log"
	"go-coffee-order/src/infrastructure/messaging"
	"go-coffee-order/src/services/dlq"
	"go-coffee-order/src/services/events"
	"go-coffee-order/src/services/notification"
	notificationHandlers "go-coffee-order/src/services/notification/handlers"
	"go-coffee-order/src/services/order/domain"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "coffee-order",
		Usage: "Order a coffee and pay for it from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Dotenv file to load before reading the environment",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Log level (overrides LOG_LEVEL)",
			},
			&cli.BoolFlag{
				Name:  "no-suggestions",
				Usage: "Don't offer \"did you mean\" hints for mistyped names",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	ctx := c.Context

	configs, err := config.LoadConfig(c.String("env-file"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load configuration: %v", err), 1)
	}
	if level := c.String("log-level"); level != "" {
		configs.LogLevel = level
	}
	if c.Bool("no-suggestions") {
		configs.Suggestions = false
	}

	logger := log.NewLogger(configs.LogLevel)
	logger.Info(ctx, "Configuration loaded successfully")

	// Notifications hang off the in-process bus
	notificationService := notification.NewNotificationService(logger)
	paymentHandler := notificationHandlers.NewPaymentEventHandler(notificationService, logger)

	bus := messaging.NewEventBus(logger)
	bus.RegisterHandler(events.PaymentCompleted, paymentHandler)
	bus.RegisterHandler(events.PaymentDeclined, paymentHandler)
	bus.SetDeadLetterHandler(dlq.NewDLQHandler(logger))

	orderService := domain.NewOrderService(
		logger,
		console.New(os.Stdin, os.Stdout),
		bus,
		domain.Options{
			CurrencySymbol: configs.CurrencySymbol,
			Suggestions:    configs.Suggestions,
		},
	)

	order, err := orderService.PlaceOrder(ctx)
	if err != nil {
		logger.Exception(ctx, "Order aborted", err)
		return cli.Exit(fmt.Sprintf("order aborted: %v", err), 1)
	}

	logger.InfoWithExtra(ctx, "Order finished", map[string]any{
		"OrderID": order.ID,
		"Status":  order.Status,
	})
	return nil
}
