package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/errors"
	service "github.com/aaravmahajanofficial/storefront-checkout/internal/services"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/utils/response"
)

// Stripe event payloads stay well under this.
const maxWebhookBytes = 64 << 10

type PaymentHandler struct {
	checkoutService service.CheckoutService
}

func NewPaymentHandler(checkoutService service.CheckoutService) *PaymentHandler {
	return &PaymentHandler{checkoutService: checkoutService}
}

// HandleStripeWebhook godoc
//
//	@Summary		Payment gateway callback
//	@Description	Verifies a Stripe event and releases checkouts whose card payment failed.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			Stripe-Signature	header		string					true	"Stripe signature"
//	@Success		200					{object}	models.GatewayEvent		"Processed event"
//	@Failure		400					{object}	response.ErrorResponse	"Missing or invalid signature"
//	@Failure		413					{object}	response.ErrorResponse	"Payload too large"
//	@Router			/payments/webhook [post]
func (h *PaymentHandler) HandleStripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes+1))
		if err != nil {
			logger.Error("Error reading webhook body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Failed to read request body"))
			return
		}

		if len(payload) > maxWebhookBytes {
			logger.Warn("Webhook body too large", slog.Int("limit", maxWebhookBytes))
			response.Error(w, errors.PayloadTooLargeError("Webhook payload is too large"))
			return
		}

		signature := r.Header.Get("Stripe-Signature")
		if signature == "" {
			logger.Warn("Missing Stripe signature")
			response.Error(w, errors.BadRequestError("Stripe Signature is required"))
			return
		}

		event, err := h.checkoutService.HandleGatewayEvent(r.Context(), payload, signature)
		if err != nil {
			logger.Error("Failed to process payment webhook", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Payment webhook processed",
			slog.String("eventId", event.EventID),
			slog.String("type", event.Type),
			slog.String("status", string(event.Status)))
		response.Success(w, http.StatusOK, event)
	}
}
