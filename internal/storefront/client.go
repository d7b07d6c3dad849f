// Package storefront is the client for the storefront backend REST API that
// owns carts, purchase intents and orders.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/config"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/errors"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/utils"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Client interface {
	GetCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error)
	ClearCart(ctx context.Context, cartID uuid.UUID) error
	GetPurchaseIntent(ctx context.Context, intentID uuid.UUID) (*models.PurchaseIntent, error)
	UpdateIntentAddress(ctx context.Context, intentID uuid.UUID, shipping models.ShippingInput) error
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderConfirmation, error)
	CompletePurchase(ctx context.Context, intentID uuid.UUID, req *models.CompletePurchaseRequest) (*models.OrderConfirmation, error)
	Ping(ctx context.Context) error
}

type client struct {
	baseURL *url.URL
	http    *http.Client
	cfg     *config.Backend
}

// envelope mirrors the backend's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
}

// NewClient builds a backend client. A nil httpClient gets an
// otelhttp-instrumented default.
func NewClient(cfg *config.Backend, httpClient *http.Client) (Client, error) {

	u, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q", cfg.BaseURL)
	}

	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return &client{baseURL: u, http: httpClient, cfg: cfg}, nil
}

func (c *client) GetCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {

	var cart models.Cart

	if err := c.do(ctx, http.MethodGet, "/api/v1/carts/"+cartID.String(), nil, &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (c *client) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/carts/"+cartID.String()+"/items", nil, nil)
}

func (c *client) GetPurchaseIntent(ctx context.Context, intentID uuid.UUID) (*models.PurchaseIntent, error) {

	var intent models.PurchaseIntent

	if err := c.do(ctx, http.MethodGet, "/api/v1/purchase-intents/"+intentID.String(), nil, &intent); err != nil {
		return nil, err
	}

	return &intent, nil
}

func (c *client) UpdateIntentAddress(ctx context.Context, intentID uuid.UUID, shipping models.ShippingInput) error {
	return c.do(ctx, http.MethodPut, "/api/v1/purchase-intents/"+intentID.String()+"/address", shipping, nil)
}

func (c *client) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderConfirmation, error) {

	var confirmation models.OrderConfirmation

	if err := c.do(ctx, http.MethodPost, "/api/v1/orders", req, &confirmation); err != nil {
		return nil, err
	}

	return &confirmation, nil
}

func (c *client) CompletePurchase(ctx context.Context, intentID uuid.UUID, req *models.CompletePurchaseRequest) (*models.OrderConfirmation, error) {

	var confirmation models.OrderConfirmation

	if err := c.do(ctx, http.MethodPost, "/api/v1/purchase-intents/"+intentID.String()+"/complete", req, &confirmation); err != nil {
		return nil, err
	}

	return &confirmation, nil
}

func (c *client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *client) do(ctx context.Context, method, path string, body any, dest any) error {

	logger := middleware.LoggerFromContext(ctx)

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.InternalError("Failed to encode backend request").WithError(err)
		}
		reader = bytes.NewReader(payload)
	}

	ctx, cancel := utils.WithBackendTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	u := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errors.InternalError("Failed to build backend request").WithError(err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token := middleware.BearerTokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if cid := middleware.CorrelationIDFromContext(ctx); cid != "" {
		req.Header.Set(middleware.HeaderRequestID, cid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("Backend request failed", slog.String("method", method), slog.String("path", path), slog.String("error", err.Error()))
		return errors.NetworkError("Could not reach the store, please try again").WithError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NetworkError("Could not read the store response, please try again").WithError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("Backend returned an error", slog.String("method", method), slog.String("path", path), slog.Int("status", resp.StatusCode))
		return mapStatus(resp.StatusCode, serverMessage(raw))
	}

	if dest == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.GatewayError("The store returned an unreadable response").WithError(err)
	}

	data := env.Data
	if len(data) == 0 {
		// backend endpoints that return the resource unwrapped
		data = raw
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return errors.GatewayError("The store returned an unreadable response").WithError(err)
	}

	return nil
}

// serverMessage extracts the backend's own error text; it is surfaced to the
// buyer unchanged.
func serverMessage(raw []byte) string {

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != nil && env.Error.Message != "" {
		if len(env.Error.Details) > 0 {
			return env.Error.Message + ": " + strings.Join(env.Error.Details, "; ")
		}
		return env.Error.Message
	}

	return strings.TrimSpace(string(raw))
}

func mapStatus(status int, message string) error {

	switch status {
	case http.StatusNotFound:
		return errors.NotFoundError("The requested checkout resource was not found").WithDetail(message)
	case http.StatusGone:
		return errors.ExpiredIntentError("This purchase has expired, please start again from the product page").WithDetail(message)
	case http.StatusUnauthorized:
		return errors.UnauthorizedError("Your session has expired, please sign in again").WithDetail(message)
	case http.StatusForbidden:
		return errors.ForbiddenError("You cannot access this checkout").WithDetail(message)
	default:
		return errors.GatewayError("The store could not complete the request").WithDetail(message)
	}
}
