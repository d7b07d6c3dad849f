package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/cache"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/checkout"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/config"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/errors"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/metrics"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/storefront"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/aaravmahajanofficial/storefront-checkout/internal/services"

type CheckoutService interface {
	Quote(ctx context.Context, req *models.QuoteRequest) (*models.OrderTotals, error)
	StartCheckout(ctx context.Context, customerID uuid.UUID, req *models.StartCheckoutRequest) (*models.SessionView, error)
	StartCartCheckout(ctx context.Context, customerID, cartID uuid.UUID) (*models.SessionView, error)
	StartBuyNow(ctx context.Context, customerID, intentID uuid.UUID) (*models.SessionView, error)
	GetSession(ctx context.Context, customerID, sessionID uuid.UUID) (*models.SessionView, error)
	Advance(ctx context.Context, customerID, sessionID uuid.UUID, form models.Form) (*models.SessionView, error)
	GoTo(ctx context.Context, customerID, sessionID uuid.UUID, step models.Step) (*models.SessionView, error)
	Cancel(ctx context.Context, customerID, sessionID uuid.UUID) error
	HandleGatewayEvent(ctx context.Context, payload []byte, signature string) (*models.GatewayEvent, error)
}

type checkoutService struct {
	engine        *checkout.Engine
	backend       storefront.Client
	cache         cache.Cache
	payments      PaymentService
	notifications NotificationService
	cfg           *config.Checkout
	tracer        trace.Tracer
}

func NewCheckoutService(engine *checkout.Engine, backend storefront.Client, cache cache.Cache, payments PaymentService, notifications NotificationService, cfg *config.Checkout) CheckoutService {
	return &checkoutService{
		engine:        engine,
		backend:       backend,
		cache:         cache,
		payments:      payments,
		notifications: notifications,
		cfg:           cfg,
		tracer:        otel.Tracer(tracerName),
	}
}

// Quote implements CheckoutService.
func (s *checkoutService) Quote(ctx context.Context, req *models.QuoteRequest) (*models.OrderTotals, error) {

	totals, err := s.engine.Calculator().Quote(req.Subtotal, req.ShippingMethod, req.Currency)
	if err != nil {
		return nil, err
	}

	return &totals, nil
}

// StartCheckout implements CheckoutService.
func (s *checkoutService) StartCheckout(ctx context.Context, customerID uuid.UUID, req *models.StartCheckoutRequest) (*models.SessionView, error) {

	switch req.Flow {
	case models.FlowCart:
		return s.StartCartCheckout(ctx, customerID, req.CartID)
	case models.FlowBuyNow:
		return s.StartBuyNow(ctx, customerID, req.IntentID)
	default:
		return nil, errors.AddValidationError("flow", "must be one of: cart buy_now")
	}
}

// StartCartCheckout implements CheckoutService.
func (s *checkoutService) StartCartCheckout(ctx context.Context, customerID, cartID uuid.UUID) (*models.SessionView, error) {

	ctx, span := s.tracer.Start(ctx, "CheckoutService.StartCartCheckout", trace.WithAttributes(attribute.String("checkout.cart_id", cartID.String())))
	defer span.End()

	cart, err := s.backend.GetCart(ctx, cartID)
	if err != nil {
		return nil, recordError(span, err)
	}

	if cart.CustomerID != uuid.Nil && cart.CustomerID != customerID {
		return nil, recordError(span, errors.ForbiddenError("You can only check out your own cart"))
	}

	session, err := s.engine.NewCartSession(cart, customerID)
	if err != nil {
		return nil, recordError(span, err)
	}

	return s.started(ctx, span, session)
}

// StartBuyNow implements CheckoutService.
func (s *checkoutService) StartBuyNow(ctx context.Context, customerID, intentID uuid.UUID) (*models.SessionView, error) {

	ctx, span := s.tracer.Start(ctx, "CheckoutService.StartBuyNow", trace.WithAttributes(attribute.String("checkout.intent_id", intentID.String())))
	defer span.End()

	intent, err := s.backend.GetPurchaseIntent(ctx, intentID)
	if err != nil {
		return nil, recordError(span, err)
	}

	if intent.CustomerID != uuid.Nil && intent.CustomerID != customerID {
		return nil, recordError(span, errors.ForbiddenError("You can only complete your own purchase"))
	}

	session, err := s.engine.NewBuyNowSession(intent, customerID)
	if err != nil {
		return nil, recordError(span, err)
	}

	if session.CurrentStep == models.StepExpired {
		return nil, recordError(span, errors.ExpiredIntentError("This purchase has expired, please start again from the product page"))
	}

	return s.started(ctx, span, session)
}

func (s *checkoutService) started(ctx context.Context, span trace.Span, session models.CheckoutSession) (*models.SessionView, error) {

	span.SetAttributes(attribute.String("checkout.session_id", session.ID.String()), attribute.String("checkout.flow", string(session.Flow)))

	if err := s.save(ctx, session); err != nil {
		return nil, recordError(span, err)
	}

	middleware.LoggerFromContext(ctx).Info("Checkout started",
		slog.String("sessionId", session.ID.String()),
		slog.String("flow", string(session.Flow)),
		slog.String("step", string(session.CurrentStep)))

	return s.view(session, span)
}

// GetSession implements CheckoutService.
func (s *checkoutService) GetSession(ctx context.Context, customerID, sessionID uuid.UUID) (*models.SessionView, error) {

	ctx, span := s.tracer.Start(ctx, "CheckoutService.GetSession", sessionAttributes(sessionID))
	defer span.End()

	session, err := s.load(ctx, customerID, sessionID)
	if err != nil {
		return nil, recordError(span, err)
	}

	return s.view(session, span)
}

// Advance implements CheckoutService.
func (s *checkoutService) Advance(ctx context.Context, customerID, sessionID uuid.UUID, form models.Form) (*models.SessionView, error) {

	ctx, span := s.tracer.Start(ctx, "CheckoutService.Advance", sessionAttributes(sessionID))
	defer span.End()

	logger := middleware.LoggerFromContext(ctx)

	session, err := s.load(ctx, customerID, sessionID)
	if err != nil {
		return nil, recordError(span, err)
	}

	next, effect, err := s.engine.Advance(session, form)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeValidation) {
			metrics.CheckoutValidationFailures.WithLabelValues(string(session.Flow), string(session.CurrentStep)).Inc()
		}
		return nil, recordError(span, err)
	}

	span.SetAttributes(attribute.String("checkout.effect", effect.String()))

	switch {
	case effect == checkout.EffectSaveIntentAddress:
		if err := s.backend.UpdateIntentAddress(ctx, next.IntentID, *next.Shipping); err != nil {
			logger.Warn("Failed to save shipping address on purchase intent",
				slog.String("sessionId", sessionID.String()),
				slog.String("error", err.Error()))

			if errors.HasCode(err, errors.ErrCodeExpiredIntent) {
				if err := s.save(context.WithoutCancel(ctx), s.engine.Expire(session)); err != nil {
					logger.Error("Failed to store expired checkout", slog.String("sessionId", sessionID.String()), slog.String("error", err.Error()))
				}
			}

			return nil, recordError(span, err)
		}

	case effect.Submits():
		submitted, err := s.submit(ctx, session, form)
		if err != nil {
			return nil, recordError(span, err)
		}

		return s.view(submitted, span)
	}

	if err := s.save(ctx, next); err != nil {
		return nil, recordError(span, err)
	}

	metrics.CheckoutTransitions.WithLabelValues(string(next.Flow), string(session.CurrentStep), string(next.CurrentStep)).Inc()

	logger.Info("Checkout step completed",
		slog.String("sessionId", sessionID.String()),
		slog.String("from", string(session.CurrentStep)),
		slog.String("to", string(next.CurrentStep)))

	return s.view(next, span)
}

// submit places the order for the form that completes the final step of
// loaded. Only one submission per session runs at a time; on failure the
// session is released so the buyer can try again.
func (s *checkoutService) submit(ctx context.Context, loaded models.CheckoutSession, form models.Form) (models.CheckoutSession, error) {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("sessionId", loaded.ID.String()))
	flow := string(loaded.Flow)

	lockKey := cache.Key(cache.SubmitLockPrefix, loaded.ID.String())

	acquired, err := s.cache.SetNX(ctx, lockKey, middleware.CorrelationIDFromContext(ctx), s.cfg.SubmitLockTTL)
	if err != nil {
		return loaded, errors.CacheError("Failed to lock checkout for submission").WithError(err)
	}

	if !acquired {
		metrics.CheckoutSubmissions.WithLabelValues(flow, metrics.OutcomeRejected).Inc()
		return loaded, errors.ConflictError(errors.ErrCodeSubmissionInFlight, "Your order is being placed")
	}

	defer func() {
		if err := s.cache.Delete(context.WithoutCancel(ctx), lockKey); err != nil {
			logger.Warn("Failed to release submission lock", slog.String("error", err.Error()))
		}
	}()

	// the session may have been submitted or edited since this request loaded it
	stored, err := s.get(ctx, loaded.ID)
	if err != nil {
		return loaded, err
	}

	if err := s.engine.CanSubmit(stored); err != nil {
		metrics.CheckoutSubmissions.WithLabelValues(flow, metrics.OutcomeRejected).Inc()
		return loaded, err
	}

	if stored.CurrentStep != loaded.CurrentStep || !stored.UpdatedAt.Equal(loaded.UpdatedAt) {
		metrics.CheckoutSubmissions.WithLabelValues(flow, metrics.OutcomeRejected).Inc()
		logger.Warn("Checkout changed before submission",
			slog.String("loadedStep", string(loaded.CurrentStep)),
			slog.String("storedStep", string(stored.CurrentStep)))

		return loaded, errors.ConflictError(errors.ErrCodeConflict, "Your checkout changed while the order was being placed, please review it and try again")
	}

	session, effect, err := s.engine.Advance(stored, form)
	if err != nil {
		metrics.CheckoutSubmissions.WithLabelValues(flow, metrics.OutcomeRejected).Inc()
		return stored, err
	}

	if !effect.Submits() {
		return stored, errors.StepMismatchError("The submitted form does not place an order")
	}

	logger = logger.With(slog.String("effect", effect.String()))

	if err := s.save(ctx, session); err != nil {
		return stored, err
	}

	start := time.Now()
	defer func() {
		metrics.CheckoutSubmissionDuration.WithLabelValues(flow).Observe(time.Since(start).Seconds())
	}()

	totals, err := s.engine.Totals(session)
	if err != nil {
		return s.failSubmission(ctx, logger, session, nil, err)
	}

	var payment *models.GatewayPayment

	if session.Payment != nil && session.Payment.Method == models.PaymentCard {
		payment, err = s.payments.AuthorizeCard(ctx, session, totals)
		if err != nil {
			return s.failSubmission(ctx, logger, session, nil, err)
		}
	}

	confirmation, err := s.placeOrder(ctx, session, effect, payment)
	if err != nil {
		return s.failSubmission(ctx, logger, session, payment, err)
	}

	completed, err := s.engine.Complete(session, *confirmation)
	if err != nil {
		return s.failSubmission(ctx, logger, session, payment, err)
	}

	if err := s.save(ctx, completed); err != nil {
		// the order exists; the buyer must not be told to retry
		logger.Error("Order placed but session could not be saved", slog.String("orderId", completed.OrderID), slog.String("error", err.Error()))
	}

	metrics.CheckoutSubmissions.WithLabelValues(flow, metrics.OutcomeSucceeded).Inc()
	metrics.CheckoutTransitions.WithLabelValues(flow, string(session.CurrentStep), string(completed.CurrentStep)).Inc()

	logger.Info("Order placed", slog.String("orderId", completed.OrderID), slog.String("orderNumber", completed.OrderNumber))

	if completed.Flow == models.FlowCart {
		if err := s.backend.ClearCart(ctx, completed.CartID); err != nil {
			logger.Warn("Failed to clear cart after order", slog.String("cartId", completed.CartID.String()), slog.String("error", err.Error()))
		}
	}

	if err := s.notifications.SendOrderConfirmation(ctx, completed, totals); err != nil {
		logger.Warn("Failed to send order confirmation", slog.String("error", err.Error()))
	}

	return completed, nil
}

func (s *checkoutService) placeOrder(ctx context.Context, session models.CheckoutSession, effect checkout.Effect, payment *models.GatewayPayment) (*models.OrderConfirmation, error) {

	if effect == checkout.EffectCompletePurchase {
		return s.backend.CompletePurchase(ctx, session.IntentID, &models.CompletePurchaseRequest{PaymentMethod: session.Payment.Method})
	}

	req, err := s.engine.OrderRequest(session)
	if err != nil {
		return nil, err
	}

	if payment != nil {
		req.PaymentRef = payment.ID
	}

	return s.backend.CreateOrder(ctx, req)
}

func (s *checkoutService) failSubmission(ctx context.Context, logger *slog.Logger, session models.CheckoutSession, payment *models.GatewayPayment, cause error) (models.CheckoutSession, error) {

	logger.Warn("Order submission failed", slog.String("error", cause.Error()))

	if payment != nil {
		if err := s.payments.Refund(context.WithoutCancel(ctx), payment.ID); err != nil {
			logger.Error("Failed to refund payment of failed order", slog.String("paymentId", payment.ID), slog.String("error", err.Error()))
		}
	}

	failed := s.engine.Fail(session)
	if errors.HasCode(cause, errors.ErrCodeExpiredIntent) {
		failed = s.engine.Expire(session)
	}

	if err := s.save(context.WithoutCancel(ctx), failed); err != nil {
		logger.Error("Failed to release session after failed submission", slog.String("error", err.Error()))
	}

	metrics.CheckoutSubmissions.WithLabelValues(string(session.Flow), metrics.OutcomeFailed).Inc()

	return failed, cause
}

// GoTo implements CheckoutService.
func (s *checkoutService) GoTo(ctx context.Context, customerID, sessionID uuid.UUID, step models.Step) (*models.SessionView, error) {

	ctx, span := s.tracer.Start(ctx, "CheckoutService.GoTo", sessionAttributes(sessionID))
	defer span.End()

	session, err := s.load(ctx, customerID, sessionID)
	if err != nil {
		return nil, recordError(span, err)
	}

	next, err := s.engine.GoTo(session, step)
	if err != nil {
		return nil, recordError(span, err)
	}

	if err := s.save(ctx, next); err != nil {
		return nil, recordError(span, err)
	}

	return s.view(next, span)
}

// Cancel implements CheckoutService.
func (s *checkoutService) Cancel(ctx context.Context, customerID, sessionID uuid.UUID) error {

	ctx, span := s.tracer.Start(ctx, "CheckoutService.Cancel", sessionAttributes(sessionID))
	defer span.End()

	session, err := s.load(ctx, customerID, sessionID)
	if err != nil {
		return recordError(span, err)
	}

	if session.Submitting {
		return recordError(span, errors.ConflictError(errors.ErrCodeSubmissionInFlight, "Your order is being placed"))
	}

	if err := s.cache.Delete(ctx, cache.Key(cache.CheckoutKeyPrefix, sessionID.String())); err != nil {
		return recordError(span, errors.CacheError("Failed to cancel checkout").WithError(err))
	}

	middleware.LoggerFromContext(ctx).Info("Checkout cancelled", slog.String("sessionId", sessionID.String()))

	return nil
}

// HandleGatewayEvent implements CheckoutService.
func (s *checkoutService) HandleGatewayEvent(ctx context.Context, payload []byte, signature string) (*models.GatewayEvent, error) {

	ctx, span := s.tracer.Start(ctx, "CheckoutService.HandleGatewayEvent")
	defer span.End()

	logger := middleware.LoggerFromContext(ctx)

	event, err := s.payments.ProcessWebhook(ctx, payload, signature)
	if err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(attribute.String("payment.event_type", event.Type), attribute.String("payment.status", string(event.Status)))

	if event.Status != models.GatewayPaymentFailed || event.SessionID == "" {
		return event, nil
	}

	sessionID, err := uuid.Parse(event.SessionID)
	if err != nil {
		logger.Warn("Gateway event names an invalid session", slog.String("sessionId", event.SessionID))
		return event, nil
	}

	session, err := s.get(ctx, sessionID)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			return event, nil
		}
		return nil, recordError(span, err)
	}

	if !session.Submitting {
		return event, nil
	}

	if err := s.save(ctx, s.engine.Fail(session)); err != nil {
		return nil, recordError(span, err)
	}

	logger.Info("Released checkout after failed payment",
		slog.String("sessionId", event.SessionID),
		slog.String("paymentIntentId", event.PaymentIntentID))

	return event, nil
}

func (s *checkoutService) get(ctx context.Context, sessionID uuid.UUID) (models.CheckoutSession, error) {

	var session models.CheckoutSession

	found, err := s.cache.Get(ctx, cache.Key(cache.CheckoutKeyPrefix, sessionID.String()), &session)
	if err != nil {
		return session, errors.CacheError("Failed to load checkout").WithError(err)
	}

	if !found {
		return session, errors.NotFoundError("Checkout session not found")
	}

	return session, nil
}

// load fetches the buyer's session and persists a newly detected expiry.
func (s *checkoutService) load(ctx context.Context, customerID, sessionID uuid.UUID) (models.CheckoutSession, error) {

	stored, err := s.get(ctx, sessionID)
	if err != nil {
		return stored, err
	}

	if stored.CustomerID != customerID {
		return models.CheckoutSession{}, errors.ForbiddenError("You cannot access this checkout")
	}

	session := s.engine.Load(stored)

	if session.CurrentStep != stored.CurrentStep {
		if err := s.save(ctx, session); err != nil {
			return session, err
		}
	}

	return session, nil
}

func (s *checkoutService) save(ctx context.Context, session models.CheckoutSession) error {

	if err := s.cache.Set(ctx, cache.Key(cache.CheckoutKeyPrefix, session.ID.String()), session, s.cfg.SessionTTL); err != nil {
		return errors.CacheError("Failed to save checkout").WithError(err)
	}

	return nil
}

func (s *checkoutService) view(session models.CheckoutSession, span trace.Span) (*models.SessionView, error) {

	view, err := s.engine.View(session)
	if err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(attribute.String("checkout.step", string(session.CurrentStep)))

	return view, nil
}

func sessionAttributes(sessionID uuid.UUID) trace.SpanStartOption {
	return trace.WithAttributes(attribute.String("checkout.session_id", sessionID.String()))
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
