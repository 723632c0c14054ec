package handlers

import (
	"errors"

	"crease/internal/services/payment"
	"crease/internal/services/withdrawal"
	"crease/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// WebhookHandler receives asynchronous gateway callbacks: payment
// confirmations and withdrawal settlement outcomes. Both paths are
// idempotent, so gateway redelivery is safe.
type WebhookHandler struct {
	paymentService    payment.Service
	withdrawalService withdrawal.Service
}

func NewWebhookHandler(paymentService payment.Service, withdrawalService withdrawal.Service) *WebhookHandler {
	return &WebhookHandler{
		paymentService:    paymentService,
		withdrawalService: withdrawalService,
	}
}

func (h *WebhookHandler) PaymentCompleted(c *fiber.Ctx) error {
	var input struct {
		OrderRef           string `json:"order_ref"`
		ExternalPaymentRef string `json:"external_payment_ref"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if input.OrderRef == "" || input.ExternalPaymentRef == "" {
		return utils.BadRequest(c, "order_ref and external_payment_ref are required")
	}

	err := h.paymentService.ConfirmPayment(c.Context(), input.OrderRef, input.ExternalPaymentRef)
	if err != nil {
		if errors.Is(err, payment.ErrOrderNotFound) {
			return utils.NotFound(c, "order not found")
		}
		return utils.InternalError(c, "failed to confirm payment")
	}
	return utils.Success(c, fiber.Map{"message": "payment confirmed"})
}

func (h *WebhookHandler) PaymentFailed(c *fiber.Ctx) error {
	var input struct {
		OrderRef string `json:"order_ref"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if input.OrderRef == "" {
		return utils.BadRequest(c, "order_ref is required")
	}

	if err := h.paymentService.FailOrder(c.Context(), input.OrderRef); err != nil {
		if errors.Is(err, payment.ErrOrderNotFound) {
			return utils.NotFound(c, "order not found")
		}
		return utils.InternalError(c, "failed to mark order failed")
	}
	return utils.Success(c, fiber.Map{"message": "order marked failed"})
}

func (h *WebhookHandler) WithdrawalSettled(c *fiber.Ctx) error {
	var input struct {
		WithdrawalID uint   `json:"withdrawal_id"`
		Outcome      string `json:"outcome"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	var err error
	switch input.Outcome {
	case "settled":
		err = h.withdrawalService.MarkSettled(c.Context(), input.WithdrawalID)
	case "failed":
		err = h.withdrawalService.ReverseSettlement(c.Context(), input.WithdrawalID)
	default:
		return utils.BadRequest(c, "outcome must be settled or failed")
	}
	if err != nil {
		if errors.Is(err, withdrawal.ErrWithdrawalNotFound) {
			return utils.NotFound(c, "withdrawal not found")
		}
		return utils.InternalError(c, "failed to apply settlement outcome")
	}
	return utils.Success(c, fiber.Map{"message": "settlement outcome applied"})
}
