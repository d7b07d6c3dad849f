package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Flow string

const (
	FlowCart   Flow = "cart"
	FlowBuyNow Flow = "buy_now"
)

type Step string

const (
	StepShipping  Step = "shipping"
	StepPayment   Step = "payment"
	StepReview    Step = "review"
	StepSubmitted Step = "submitted"
	StepExpired   Step = "expired"
)

// Steps returns the ordered, navigable steps of a flow. Buy-now has no review step.
func (f Flow) Steps() []Step {
	if f == FlowBuyNow {
		return []Step{StepShipping, StepPayment}
	}

	return []Step{StepShipping, StepPayment, StepReview}
}

func (f Flow) Valid() bool {
	return f == FlowCart || f == FlowBuyNow
}

// Rank orders the navigable steps of a flow; -1 for steps outside it.
func (f Flow) Rank(step Step) int {
	return slices.Index(f.Steps(), step)
}

func (s Step) Terminal() bool {
	return s == StepSubmitted || s == StepExpired
}

type ShippingMethod string

const (
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpress   ShippingMethod = "express"
	ShippingOvernight ShippingMethod = "overnight"
)

func (m ShippingMethod) Valid() bool {
	switch m {
	case ShippingStandard, ShippingExpress, ShippingOvernight:
		return true
	}

	return false
}

type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "card"
	PaymentOnline         PaymentMethod = "online"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// ShippingInput is a shipping step payload that passed validation.
type ShippingInput struct {
	FullName              string         `json:"fullName"`
	Email                 string         `json:"email"`
	Phone                 string         `json:"phone"`
	Address               Address        `json:"address"`
	Method                ShippingMethod `json:"shippingMethod"`
	BillingSameAsShipping bool           `json:"billingSameAsShipping"`
	Billing               *Address       `json:"billing,omitempty"`
}

// BillingAddress resolves the billing address of the buyer.
func (s *ShippingInput) BillingAddress() Address {
	if s.BillingSameAsShipping || s.Billing == nil {
		return s.Address
	}

	return *s.Billing
}

// PaymentInput is a payment step payload that passed validation.
type PaymentInput struct {
	Method       PaymentMethod `json:"paymentMethod"`
	GatewayToken string        `json:"gatewayToken,omitempty"`
}

// CheckoutConfig holds the pricing and payment rules of one currency.
type CheckoutConfig struct {
	Currency          string          `json:"currency"`
	TaxRate           decimal.Decimal `json:"taxRate"`
	StandardRate      decimal.Decimal `json:"standardRate"`
	ExpressRate       decimal.Decimal `json:"expressRate"`
	OvernightRate     decimal.Decimal `json:"overnightRate"`
	FreeThreshold     decimal.Decimal `json:"freeThreshold"`
	PaymentMethods    []PaymentMethod `json:"paymentMethods"`
	PostalCodePattern string          `json:"postalCodePattern"`
}

func (c *CheckoutConfig) AcceptsPayment(method PaymentMethod) bool {
	return slices.Contains(c.PaymentMethods, method)
}

// OrderTotals is derived from the session on demand and never stored.
type OrderTotals struct {
	Currency string          `json:"currency"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CheckoutSession tracks one buyer's progress through checkout. Values are
// replaced, never mutated in place, by the checkout engine.
type CheckoutSession struct {
	ID              uuid.UUID      `json:"id"`
	CustomerID      uuid.UUID      `json:"customerId"`
	Flow            Flow           `json:"flow"`
	Currency        string         `json:"currency"`
	CartID          uuid.UUID      `json:"cartId,omitempty"`
	IntentID        uuid.UUID      `json:"intentId,omitempty"`
	IntentExpiresAt *time.Time     `json:"intentExpiresAt,omitempty"`
	Lines           []CartLine     `json:"lines"`
	CurrentStep     Step           `json:"currentStep"`
	FurthestStep    Step           `json:"furthestStep"`
	Shipping        *ShippingInput `json:"shipping,omitempty"`
	Payment         *PaymentInput  `json:"payment,omitempty"`
	Submitting      bool           `json:"submitting"`
	OrderID         string         `json:"orderId,omitempty"`
	OrderNumber     string         `json:"orderNumber,omitempty"`
	RedirectURL     string         `json:"redirectUrl,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// Clone returns a copy that shares no mutable state with s.
func (s CheckoutSession) Clone() CheckoutSession {

	out := s
	out.Lines = slices.Clone(s.Lines)

	if s.Shipping != nil {
		shipping := *s.Shipping
		if s.Shipping.Billing != nil {
			billing := *s.Shipping.Billing
			shipping.Billing = &billing
		}
		out.Shipping = &shipping
	}

	if s.Payment != nil {
		payment := *s.Payment
		out.Payment = &payment
	}

	if s.IntentExpiresAt != nil {
		expiresAt := *s.IntentExpiresAt
		out.IntentExpiresAt = &expiresAt
	}

	return out
}

// SessionView is what page-level consumers render.
type SessionView struct {
	Session *CheckoutSession `json:"session"`
	Totals  *OrderTotals     `json:"totals"`
}

// WithLines returns s holding its own copy of lines.
func (s CheckoutSession) WithLines(lines []CartLine) CheckoutSession {
	s.Lines = slices.Clone(lines)
	return s
}
