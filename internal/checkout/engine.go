// Package checkout holds the checkout step engine. The engine never performs
// I/O: every transition takes a session value and returns a new one, together
// with the side effect the caller must carry out.
package checkout

import (
	"time"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/errors"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/pricing"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// Effect is work the caller has to perform after a transition.
type Effect int

const (
	EffectNone Effect = iota
	// EffectSaveIntentAddress stores the buy-now shipping address on the intent.
	EffectSaveIntentAddress
	// EffectPlaceOrder creates the order for a confirmed cart checkout.
	EffectPlaceOrder
	// EffectCompletePurchase completes a buy-now purchase.
	EffectCompletePurchase
)

func (e Effect) String() string {
	switch e {
	case EffectSaveIntentAddress:
		return "save_intent_address"
	case EffectPlaceOrder:
		return "place_order"
	case EffectCompletePurchase:
		return "complete_purchase"
	default:
		return "none"
	}
}

// Submits reports whether the effect places an order.
func (e Effect) Submits() bool {
	return e == EffectPlaceOrder || e == EffectCompletePurchase
}

type Engine struct {
	calc            *pricing.Calculator
	validate        *validator.Validate
	sanitizer       *bluemonday.Policy
	now             func() time.Time
	defaultCurrency string
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithDefaultCurrency(currency string) Option {
	return func(e *Engine) { e.defaultCurrency = currency }
}

func NewEngine(calc *pricing.Calculator, opts ...Option) *Engine {

	e := &Engine{
		calc:            calc,
		validate:        NewValidator(),
		sanitizer:       newSanitizer(),
		now:             time.Now,
		defaultCurrency: "USD",
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) Calculator() *pricing.Calculator {
	return e.calc
}

func (e *Engine) NewCartSession(cart *models.Cart, customerID uuid.UUID) (models.CheckoutSession, error) {

	if cart == nil || cart.IsEmpty() {
		return models.CheckoutSession{}, errors.EmptyCartError()
	}

	for _, line := range cart.Lines {
		if line.Quantity < 1 {
			return models.CheckoutSession{}, errors.AddValidationError("quantity", "every cart line needs a quantity of at least 1")
		}
	}

	currency := cart.Currency
	if currency == "" {
		currency = e.defaultCurrency
	}

	cfg, err := e.calc.Config(currency)
	if err != nil {
		return models.CheckoutSession{}, err
	}

	now := e.now()

	session := models.CheckoutSession{
		ID:           uuid.New(),
		CustomerID:   customerID,
		Flow:         models.FlowCart,
		Currency:     cfg.Currency,
		CartID:       cart.ID,
		CurrentStep:  models.StepShipping,
		FurthestStep: models.StepShipping,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return session.WithLines(cart.Lines), nil
}

// NewBuyNowSession opens a session for a purchase intent. Shipping is skipped
// when the intent already carries an address.
func (e *Engine) NewBuyNowSession(intent *models.PurchaseIntent, customerID uuid.UUID) (models.CheckoutSession, error) {

	if intent == nil {
		return models.CheckoutSession{}, errors.NotFoundError("Purchase intent not found")
	}

	currency := intent.Currency
	if currency == "" {
		currency = e.defaultCurrency
	}

	cfg, err := e.calc.Config(currency)
	if err != nil {
		return models.CheckoutSession{}, err
	}

	now := e.now()
	expiresAt := intent.ExpiresAt

	session := models.CheckoutSession{
		ID:              uuid.New(),
		CustomerID:      customerID,
		Flow:            models.FlowBuyNow,
		Currency:        cfg.Currency,
		IntentID:        intent.ID,
		IntentExpiresAt: &expiresAt,
		CurrentStep:     models.StepShipping,
		FurthestStep:    models.StepShipping,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	session = session.WithLines(intent.Lines())

	if intent.ShippingAddress != nil {
		shipping := *intent.ShippingAddress
		if !shipping.Method.Valid() {
			shipping.Method = models.ShippingStandard
		}
		shipping.BillingSameAsShipping = true
		shipping.Billing = nil

		session.Shipping = &shipping
		session.CurrentStep = models.StepPayment
		session.FurthestStep = models.StepPayment
	}

	return e.Load(session), nil
}

// Load re-evaluates time-dependent state. A buy-now session whose intent has
// expired becomes terminal.
func (e *Engine) Load(s models.CheckoutSession) models.CheckoutSession {

	if s.Flow != models.FlowBuyNow || s.IntentExpiresAt == nil || s.CurrentStep.Terminal() {
		return s
	}

	now := e.now()
	if now.Before(*s.IntentExpiresAt) {
		return s
	}

	next := s.Clone()
	next.CurrentStep = models.StepExpired
	next.Submitting = false
	next.UpdatedAt = now

	return next
}

func guard(s models.CheckoutSession) error {
	switch {
	case s.CurrentStep == models.StepExpired:
		return errors.ExpiredIntentError("This purchase has expired, please start again from the product page")
	case s.CurrentStep == models.StepSubmitted:
		return errors.ConflictError(errors.ErrCodeAlreadySubmitted, "This order has already been placed")
	case s.Submitting:
		return errors.ConflictError(errors.ErrCodeSubmissionInFlight, "Your order is being placed")
	}

	return nil
}

// CanSubmit re-checks a stored session before an order is placed for it.
func (e *Engine) CanSubmit(s models.CheckoutSession) error {
	return guard(e.Load(s))
}

// Advance completes the current step with form. On any error the returned
// session is the input session.
func (e *Engine) Advance(s models.CheckoutSession, form models.Form) (models.CheckoutSession, Effect, error) {

	s = e.Load(s)

	if err := guard(s); err != nil {
		return s, EffectNone, err
	}

	if form == nil {
		return s, EffectNone, errors.BadRequestError("A step form is required")
	}

	if form.Step() != s.CurrentStep {
		return s, EffectNone, errors.StepMismatchError("The submitted form does not match the current step").
			WithDetail("current step is " + string(s.CurrentStep))
	}

	next := s.Clone()
	effect := EffectNone

	switch f := form.(type) {
	case models.ShippingForm:
		input, err := e.ValidateShipping(f, s.Currency, s.Flow)
		if err != nil {
			return s, EffectNone, err
		}

		next.Shipping = &input
		next = moveTo(next, models.StepPayment)

		if next.Flow == models.FlowBuyNow {
			effect = EffectSaveIntentAddress
		}

	case models.PaymentForm:
		if next.Shipping == nil {
			return s, EffectNone, errors.BadRequestError("Shipping details are required before payment")
		}

		input, err := e.ValidatePayment(f, s.Currency)
		if err != nil {
			return s, EffectNone, err
		}

		next.Payment = &input

		if next.Flow == models.FlowBuyNow {
			next.Submitting = true
			effect = EffectCompletePurchase
		} else {
			next = moveTo(next, models.StepReview)
		}

	case models.ConfirmForm:
		if next.Shipping == nil || next.Payment == nil {
			return s, EffectNone, errors.BadRequestError("Shipping and payment details are required before placing the order")
		}

		next.Submitting = true
		effect = EffectPlaceOrder

	default:
		return s, EffectNone, errors.BadRequestError("Unsupported step form")
	}

	next.UpdatedAt = e.now()

	return next, effect, nil
}

func moveTo(s models.CheckoutSession, step models.Step) models.CheckoutSession {

	s.CurrentStep = step
	if s.Flow.Rank(step) > s.Flow.Rank(s.FurthestStep) {
		s.FurthestStep = step
	}

	return s
}

// GoTo navigates back to an already reached step. Collected data is kept;
// advancing again re-validates it.
func (e *Engine) GoTo(s models.CheckoutSession, step models.Step) (models.CheckoutSession, error) {

	s = e.Load(s)

	if err := guard(s); err != nil {
		return s, err
	}

	rank := s.Flow.Rank(step)
	if rank < 0 {
		return s, errors.AddValidationError("step", "is not part of this checkout")
	}

	if rank > s.Flow.Rank(s.FurthestStep) {
		return s, errors.StepMismatchError("Complete the earlier steps first")
	}

	next := s.Clone()
	next.CurrentStep = step
	next.UpdatedAt = e.now()

	return next, nil
}

// Complete records a successful order placement.
func (e *Engine) Complete(s models.CheckoutSession, confirmation models.OrderConfirmation) (models.CheckoutSession, error) {

	if !s.Submitting {
		return s, errors.BadRequestError("No order submission is in progress")
	}

	if confirmation.OrderID == "" && confirmation.RedirectURL == "" {
		return s, errors.GatewayError("Order placement returned no order reference")
	}

	next := s.Clone()
	next.Submitting = false
	next.CurrentStep = models.StepSubmitted
	next.FurthestStep = models.StepSubmitted
	next.OrderID = confirmation.OrderID
	next.OrderNumber = confirmation.OrderNumber
	next.RedirectURL = confirmation.RedirectURL
	next.UpdatedAt = e.now()

	return next, nil
}

// Fail releases an in-flight submission; the buyer stays on the same step
// and may resubmit.
func (e *Engine) Fail(s models.CheckoutSession) models.CheckoutSession {

	next := s.Clone()
	next.Submitting = false
	next.UpdatedAt = e.now()

	return next
}

// Expire ends a buy-now session whose intent the backend reports as gone.
func (e *Engine) Expire(s models.CheckoutSession) models.CheckoutSession {

	if s.CurrentStep == models.StepSubmitted {
		return s
	}

	next := s.Clone()
	next.CurrentStep = models.StepExpired
	next.Submitting = false
	next.UpdatedAt = e.now()

	return next
}

// Totals are recomputed from the session's lines and shipping method on every call.
func (e *Engine) Totals(s models.CheckoutSession) (models.OrderTotals, error) {

	method := models.ShippingStandard
	if s.Shipping != nil {
		method = s.Shipping.Method
	}

	return e.calc.Quote(models.Subtotal(s.Lines), method, s.Currency)
}

func (e *Engine) View(s models.CheckoutSession) (*models.SessionView, error) {

	totals, err := e.Totals(s)
	if err != nil {
		return nil, err
	}

	return &models.SessionView{Session: &s, Totals: &totals}, nil
}

// OrderRequest builds the order-placement payload of a cart checkout.
func (e *Engine) OrderRequest(s models.CheckoutSession) (*models.CreateOrderRequest, error) {

	if s.Shipping == nil || s.Payment == nil {
		return nil, errors.BadRequestError("Shipping and payment details are required before placing the order")
	}

	totals, err := e.Totals(s)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(s.Lines))
	for _, line := range s.Lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	return &models.CreateOrderRequest{
		CartID: s.CartID,
		Items:  items,
		Contact: models.CustomerContact{
			FullName: s.Shipping.FullName,
			Email:    s.Shipping.Email,
			Phone:    s.Shipping.Phone,
		},
		ShippingAddress: s.Shipping.Address,
		BillingAddress:  s.Shipping.BillingAddress(),
		ShippingMethod:  s.Shipping.Method,
		PaymentMethod:   s.Payment.Method,
		Totals:          totals,
	}, nil
}

// ShippingFromOrderRequest recovers the shipping input carried by an order payload.
func ShippingFromOrderRequest(req *models.CreateOrderRequest) models.ShippingInput {

	input := models.ShippingInput{
		FullName:              req.Contact.FullName,
		Email:                 req.Contact.Email,
		Phone:                 req.Contact.Phone,
		Address:               req.ShippingAddress,
		Method:                req.ShippingMethod,
		BillingSameAsShipping: req.BillingAddress == req.ShippingAddress,
	}

	if !input.BillingSameAsShipping {
		billing := req.BillingAddress
		input.Billing = &billing
	}

	return input
}
