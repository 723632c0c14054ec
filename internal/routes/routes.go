// Package routes wires the service graph and the external-facing HTTP
// surface: gateway webhooks and health. Business operations are invoked by
// upstream services through the service interfaces, not over HTTP.
package routes

import (
	"crease/internal/config"
	"crease/internal/events"
	"crease/internal/events/kafka"
	"crease/internal/handlers"
	"crease/internal/repositories"
	"crease/internal/services/contest"
	"crease/internal/services/join"
	"crease/internal/services/leaderboard"
	"crease/internal/services/ledger"
	"crease/internal/services/payment"
	"crease/internal/services/withdrawal"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Services bundles the wired service graph for callers outside HTTP.
type Services struct {
	Ledger      ledger.Service
	Contests    contest.Service
	Payments    payment.Service
	Join        join.Service
	Leaderboard leaderboard.Service
	Withdrawals withdrawal.Service
}

// SetupRoutes builds the service graph and registers the webhook routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) *Services {
	store := repositories.NewStore(db)

	var publisher events.Publisher = events.NoopPublisher{}
	if brokers := config.GetEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher = kafka.NewPublisher(strings.Split(brokers, ","))
	}

	ledgerService := ledger.NewService(store, &ledger.NoopMetricsCollector{})
	contestService := contest.NewService(repositories.NewContestRepository(db))
	paymentService := payment.NewService(store, payment.NewStripeGateway(), publisher,
		config.GetEnv("PAYMENT_CURRENCY", "usd"))
	joinService := join.NewService(store, publisher, join.Config{
		AllowMultipleEntries: config.GetBoolEnv("ALLOW_MULTIPLE_ENTRIES", false),
	})
	leaderboardService := leaderboard.NewService(
		repositories.NewContestRepository(db),
		repositories.NewTeamRepository(db),
		repositories.CacheService,
		0,
	)
	withdrawalService := withdrawal.NewService(store, publisher, withdrawal.Config{
		MinAmount: decimal.NewFromInt(int64(config.GetIntEnv("WITHDRAWAL_MIN_AMOUNT", 100))),
	})

	webhookHandler := handlers.NewWebhookHandler(paymentService, withdrawalService)

	app.Get("/health", handlers.HealthCheck)

	webhooks := app.Group("/webhooks")
	webhooks.Post("/payments/completed", webhookHandler.PaymentCompleted)
	webhooks.Post("/payments/failed", webhookHandler.PaymentFailed)
	webhooks.Post("/withdrawals/settled", webhookHandler.WithdrawalSettled)

	return &Services{
		Ledger:      ledgerService,
		Contests:    contestService,
		Payments:    paymentService,
		Join:        joinService,
		Leaderboard: leaderboardService,
		Withdrawals: withdrawalService,
	}
}
