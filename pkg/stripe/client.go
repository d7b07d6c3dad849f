package stripe

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/paymentmethod"
	"github.com/stripe/stripe-go/v81/refund"
	"github.com/stripe/stripe-go/v81/webhook"
)

type Event = stripe.Event

// MetadataSessionID tags payment intents with the checkout session they pay for.
const MetadataSessionID = "checkout_session_id"

// Client is the subset of the Stripe API used to take card payments.
type Client interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, description string, sessionID string) (*stripe.PaymentIntent, error)
	CreatePaymentMethodFromToken(ctx context.Context, paymentMethodID string) (*stripe.PaymentMethod, error)
	AttachPaymentMethodToIntent(ctx context.Context, paymentMethodID, paymentIntentID string) error
	ConfirmPaymentIntent(ctx context.Context, paymentIntentID string) (*stripe.PaymentIntent, error)
	RefundPayment(ctx context.Context, paymentIntentID string, amount int64) (*stripe.Refund, error)
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
	Ping(ctx context.Context) error
}

type stripeClient struct {
	webhookSecret string
}

func NewStripeClient(apiKey string, webhookSecret string) Client {
	stripe.Key = apiKey

	return &stripeClient{webhookSecret: webhookSecret}
}

// PaymentIntent == "planned payment" for the order being placed.
func (s *stripeClient) CreatePaymentIntent(ctx context.Context, amount int64, currency string, description string, sessionID string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	}

	if sessionID != "" {
		params.AddMetadata(MetadataSessionID, sessionID)
		// a resubmitted checkout reuses the same intent
		params.SetIdempotencyKey("checkout-" + sessionID)
	}

	return paymentintent.New(params)
}

func (s *stripeClient) CreatePaymentMethodFromToken(ctx context.Context, paymentMethodID string) (*stripe.PaymentMethod, error) {
	return paymentmethod.Get(paymentMethodID, &stripe.PaymentMethodParams{Params: stripe.Params{Context: ctx}})
}

func (s *stripeClient) AttachPaymentMethodToIntent(ctx context.Context, paymentMethodID string, paymentIntentID string) error {
	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		PaymentMethod: stripe.String(paymentMethodID),
	}

	_, err := paymentintent.Update(paymentIntentID, params)

	return err
}

// ConfirmPaymentIntent charges the attached payment method.
func (s *stripeClient) ConfirmPaymentIntent(ctx context.Context, paymentIntentID string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentConfirmParams{
		Params: stripe.Params{Context: ctx},
	}

	return paymentintent.Confirm(paymentIntentID, params)
}

func (s *stripeClient) RefundPayment(ctx context.Context, paymentIntentID string, amount int64) (*stripe.Refund, error) {
	params := &stripe.RefundParams{
		Params:        stripe.Params{Context: ctx},
		PaymentIntent: stripe.String(paymentIntentID),
	}

	if amount > 0 {
		params.Amount = stripe.Int64(amount)
	}

	return refund.New(params)
}

func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	if s.webhookSecret == "" {
		return Event{}, errors.New("webhook secret not configured")
	}

	return webhook.ConstructEvent(payload, signature, s.webhookSecret)
}

func (s *stripeClient) Ping(ctx context.Context) error {
	_, err := balance.Get(&stripe.BalanceParams{Params: stripe.Params{Context: ctx}})

	return err
}

// 1️⃣ Create a Payment Intent
// → "I want to charge $53.19 for checkout session #123"
// 2️⃣ Resolve the Payment Method tokenised by the storefront
// → "This is the buyer's Visa card."
// 3️⃣ Attach Payment Method to Intent
// → "Use this Visa card for session #123."
// 4️⃣ Confirm Payment Intent
// → "Charge the card now!"
