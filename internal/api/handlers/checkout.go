package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/checkout"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/errors"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	service "github.com/aaravmahajanofficial/storefront-checkout/internal/services"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/utils"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: checkout.NewValidator()}
}

// Quote godoc
//
//	@Summary		Price an order
//	@Description	Computes shipping, tax and total for a subtotal, shipping method and currency.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			quote	body		models.QuoteRequest		true	"Subtotal, shipping method and currency"
//	@Success		200		{object}	models.OrderTotals		"Order totals"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid amount, shipping method or currency"
//	@Router			/checkout/quote [post]
func (h *CheckoutHandler) Quote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.QuoteRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		totals, err := h.checkoutService.Quote(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to quote order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, totals)
	}
}

// StartSession godoc
//
//	@Summary		Start checkout
//	@Description	Opens a checkout session for the buyer's cart or for a buy-now purchase intent.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			session	body		models.StartCheckoutRequest	true	"Flow and cart or intent ID"
//	@Success		201		{object}	models.SessionView			"Session with totals"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or empty cart"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse		"Cart or intent belongs to another buyer"
//	@Failure		404		{object}	response.ErrorResponse		"Cart or intent not found"
//	@Failure		410		{object}	response.ErrorResponse		"Purchase intent expired"
//	@Security		BearerAuth
//	@Router			/checkout/sessions [post]
func (h *CheckoutHandler) StartSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized checkout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.StartCheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.checkoutService.StartCheckout(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to start checkout", slog.String("flow", string(req.Flow)), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout session created", slog.String("sessionId", view.Session.ID.String()))
		response.Success(w, http.StatusCreated, view)
	}
}

// GetSession godoc
//
//	@Summary		Get checkout session
//	@Description	Returns the current step, the data collected so far and freshly computed totals.
//	@Tags			Checkout
//	@Produce		json
//	@Param			id	path		string					true	"Session ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.SessionView		"Session with totals"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid session ID"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Session belongs to another buyer"
//	@Failure		404	{object}	response.ErrorResponse	"Session not found"
//	@Security		BearerAuth
//	@Router			/checkout/sessions/{id} [get]
func (h *CheckoutHandler) GetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized checkout access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid session id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		view, err := h.checkoutService.GetSession(r.Context(), claims.UserID, id)
		if err != nil {
			logger.Warn("Failed to get checkout session", slog.String("sessionId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// Advance godoc
//
//	@Summary		Complete the current step
//	@Description	Submits exactly one of the shipping form, the payment form or the order confirmation.
//	@Description	Confirming the last step places the order.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Session ID (UUID)"	Format(uuid)
//	@Param			form	body		models.AdvanceRequest	true	"Step form"
//	@Success		200		{object}	models.SessionView		"Updated session"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid fields or wrong step"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		409		{object}	response.ErrorResponse	"Order already placed or being placed"
//	@Failure		410		{object}	response.ErrorResponse	"Purchase intent expired"
//	@Failure		502		{object}	response.ErrorResponse	"Store or payment gateway rejected the order"
//	@Failure		503		{object}	response.ErrorResponse	"Store unreachable, safe to retry"
//	@Security		BearerAuth
//	@Router			/checkout/sessions/{id}/advance [post]
func (h *CheckoutHandler) Advance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized checkout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		// step forms are validated by the engine
		var req models.AdvanceRequest
		if !utils.ParseAndValidate(r, w, &req, nil) {
			return
		}

		form, err := req.Form()
		if err != nil {
			response.Error(w, errors.BadRequestError(err.Error()))
			return
		}

		view, err := h.checkoutService.Advance(r.Context(), claims.UserID, id, form)
		if err != nil {
			logger.Warn("Checkout step rejected",
				slog.String("sessionId", id.String()),
				slog.String("step", string(form.Step())),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// GoTo godoc
//
//	@Summary		Go back to a step
//	@Description	Moves the session to a step already reached. Collected data is kept.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Session ID (UUID)"	Format(uuid)
//	@Param			step	body		models.GoToRequest		true	"Target step"
//	@Success		200		{object}	models.SessionView		"Updated session"
//	@Failure		400		{object}	response.ErrorResponse	"Step not reached yet"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		409		{object}	response.ErrorResponse	"Order already placed or being placed"
//	@Security		BearerAuth
//	@Router			/checkout/sessions/{id}/step [put]
func (h *CheckoutHandler) GoTo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized checkout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.GoToRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.checkoutService.GoTo(r.Context(), claims.UserID, id, req.Step)
		if err != nil {
			logger.Warn("Checkout navigation rejected", slog.String("sessionId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// CancelSession godoc
//
//	@Summary		Cancel checkout
//	@Description	Drops the checkout session. Sessions with an order being placed cannot be cancelled.
//	@Tags			Checkout
//	@Param			id	path	string	true	"Session ID (UUID)"	Format(uuid)
//	@Success		204
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Session not found"
//	@Failure		409	{object}	response.ErrorResponse	"Order being placed"
//	@Security		BearerAuth
//	@Router			/checkout/sessions/{id} [delete]
func (h *CheckoutHandler) CancelSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized checkout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.checkoutService.Cancel(r.Context(), claims.UserID, id); err != nil {
			logger.Warn("Failed to cancel checkout", slog.String("sessionId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
