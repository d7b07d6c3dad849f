package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Form is the tagged union of step payloads accepted by the checkout engine.
type Form interface {
	// Step is the checkout step the form completes.
	Step() Step
}

type AddressForm struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
}

type ShippingForm struct {
	FullName              string       `json:"fullName" validate:"required"`
	Email                 string       `json:"email" validate:"required,email"`
	Phone                 string       `json:"phone" validate:"required,phone"`
	Street                string       `json:"street" validate:"required"`
	City                  string       `json:"city" validate:"required"`
	State                 string       `json:"state" validate:"required"`
	ZipCode               string       `json:"zipCode" validate:"required"`
	ShippingMethod        string       `json:"shippingMethod" validate:"required,oneof=standard express overnight"`
	BillingSameAsShipping *bool        `json:"billingSameAsShipping,omitempty"`
	Billing               *AddressForm `json:"billing,omitempty" validate:"-"`
}

func (ShippingForm) Step() Step { return StepShipping }

// SameBilling defaults to true when the flag is omitted.
func (f ShippingForm) SameBilling() bool {
	return f.BillingSameAsShipping == nil || *f.BillingSameAsShipping
}

type PaymentForm struct {
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=card online cash_on_delivery"`
	GatewayToken  string `json:"gatewayToken,omitempty"`
}

func (PaymentForm) Step() Step { return StepPayment }

// ConfirmForm confirms the review step and places the order.
type ConfirmForm struct{}

func (ConfirmForm) Step() Step { return StepReview }

// AdvanceRequest carries exactly one step form.
type AdvanceRequest struct {
	Shipping *ShippingForm `json:"shipping,omitempty"`
	Payment  *PaymentForm  `json:"payment,omitempty"`
	Confirm  bool          `json:"confirm,omitempty"`
}

var ErrAmbiguousForm = errors.New("exactly one of shipping, payment or confirm must be provided")

func (r *AdvanceRequest) Form() (Form, error) {

	var forms []Form

	if r.Shipping != nil {
		forms = append(forms, *r.Shipping)
	}

	if r.Payment != nil {
		forms = append(forms, *r.Payment)
	}

	if r.Confirm {
		forms = append(forms, ConfirmForm{})
	}

	if len(forms) != 1 {
		return nil, ErrAmbiguousForm
	}

	return forms[0], nil
}

type StartCheckoutRequest struct {
	Flow     Flow      `json:"flow" validate:"required,oneof=cart buy_now"`
	CartID   uuid.UUID `json:"cartId" validate:"required_if=Flow cart"`
	IntentID uuid.UUID `json:"intentId" validate:"required_if=Flow buy_now"`
}

type GoToRequest struct {
	Step Step `json:"step" validate:"required,oneof=shipping payment review"`
}

type QuoteRequest struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	ShippingMethod ShippingMethod  `json:"shippingMethod" validate:"required"`
	Currency       string          `json:"currency" validate:"required,len=3"`
}
