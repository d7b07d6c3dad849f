package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/errors"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/metrics"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	"github.com/aaravmahajanofficial/storefront-checkout/pkg/stripe"
	stripeGo "github.com/stripe/stripe-go/v81"
)

type PaymentService interface {
	AuthorizeCard(ctx context.Context, session models.CheckoutSession, totals models.OrderTotals) (*models.GatewayPayment, error)
	Refund(ctx context.Context, paymentID string) error
	ProcessWebhook(ctx context.Context, payload []byte, signature string) (*models.GatewayEvent, error)
}

type paymentService struct {
	stripeClient stripe.Client
}

func NewPaymentService(stripeClient stripe.Client) PaymentService {
	return &paymentService{stripeClient: stripeClient}
}

// AuthorizeCard charges the buyer's tokenised card for the order total.
func (s *paymentService) AuthorizeCard(ctx context.Context, session models.CheckoutSession, totals models.OrderTotals) (*models.GatewayPayment, error) {

	if session.Payment == nil || session.Payment.GatewayToken == "" {
		return nil, errors.AddValidationError("gatewayToken", "is required for card payments")
	}

	// Stripe amounts are in minor units
	amount := totals.Total.Shift(2).IntPart()
	if amount <= 0 {
		return nil, errors.BadRequestError("Order total must be positive for a card payment")
	}

	description := fmt.Sprintf("Checkout %s", session.ID)

	paymentIntent, err := s.stripeClient.CreatePaymentIntent(ctx, amount, strings.ToLower(totals.Currency), description, session.ID.String())
	if err != nil {
		return nil, gatewayError("Failed to create payment intent", err)
	}

	paymentMethod, err := s.stripeClient.CreatePaymentMethodFromToken(ctx, session.Payment.GatewayToken)
	if err != nil {
		return nil, gatewayError("Your card could not be read", err)
	}

	if err := s.stripeClient.AttachPaymentMethodToIntent(ctx, paymentMethod.ID, paymentIntent.ID); err != nil {
		return nil, gatewayError("Failed to attach payment method", err)
	}

	confirmed, err := s.stripeClient.ConfirmPaymentIntent(ctx, paymentIntent.ID)
	if err != nil {
		return nil, gatewayError("Your card was declined", err)
	}

	switch confirmed.Status {
	case stripeGo.PaymentIntentStatusSucceeded, stripeGo.PaymentIntentStatusProcessing, stripeGo.PaymentIntentStatusRequiresCapture:
	default:
		return nil, errors.GatewayError("Your card could not be charged").
			WithDetail("payment status is " + string(confirmed.Status))
	}

	return &models.GatewayPayment{
		ID:           confirmed.ID,
		ClientSecret: confirmed.ClientSecret,
		Status:       string(confirmed.Status),
	}, nil
}

// Refund returns a full payment whose order could not be placed.
func (s *paymentService) Refund(ctx context.Context, paymentID string) error {

	if _, err := s.stripeClient.RefundPayment(ctx, paymentID, 0); err != nil {
		return gatewayError("Failed to refund payment", err)
	}

	return nil
}

// ProcessWebhook verifies a gateway callback and reports which checkout
// session it concerns.
func (s *paymentService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (*models.GatewayEvent, error) {

	logger := middleware.LoggerFromContext(ctx)

	event, err := s.stripeClient.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return nil, errors.BadRequestError("Webhook signature verification failed").WithError(err)
	}

	result := &models.GatewayEvent{
		EventID: event.ID,
		Type:    string(event.Type),
		Status:  models.GatewayPaymentIgnored,
	}

	switch event.Type {
	case "payment_intent.succeeded":
		result.Status = models.GatewayPaymentSucceeded
	case "payment_intent.payment_failed":
		result.Status = models.GatewayPaymentFailed
	default:
		logger.Info("Ignoring gateway event", slog.String("eventId", event.ID), slog.String("type", string(event.Type)))
		metrics.PaymentWebhookEvents.WithLabelValues(string(result.Status)).Inc()
		return result, nil
	}

	if event.Data == nil || event.Data.Object == nil {
		return nil, errors.BadRequestError("Webhook event carries no payment intent")
	}

	paymentIntentID, _ := event.Data.Object["id"].(string)
	if paymentIntentID == "" {
		return nil, errors.BadRequestError("Missing payment intent ID in webhook")
	}
	result.PaymentIntentID = paymentIntentID

	if metadata, ok := event.Data.Object["metadata"].(map[string]interface{}); ok {
		result.SessionID, _ = metadata[stripe.MetadataSessionID].(string)
	}

	metrics.PaymentWebhookEvents.WithLabelValues(string(result.Status)).Inc()

	return result, nil
}

// gatewayError keeps the gateway's own message for the buyer.
func gatewayError(message string, err error) *errors.AppError {

	appErr := errors.GatewayError(message).WithError(err)

	var stripeErr *stripeGo.Error
	if stdErrors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return appErr.WithDetail(stripeErr.Msg)
	}

	return appErr.WithDetail(err.Error())
}
