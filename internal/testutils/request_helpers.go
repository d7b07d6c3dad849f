package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/models"
	"github.com/google/uuid"
)

const (
	sessionsPath = "/api/v1/checkout/sessions"

	// TestBearerToken is what an authenticated test request forwards to the backend.
	TestBearerToken = "test-token"
)

// SessionPath builds the route of a checkout session, optionally followed by
// an action such as "advance" or "step".
func SessionPath(sessionID, action string) string {

	parts := []string{sessionsPath, sessionID}
	if action != "" {
		parts = append(parts, action)
	}

	return strings.Join(parts, "/")
}

func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, pathParams map[string]string) *http.Request {

	req := newRequest(method, target, body, pathParams)

	claims := &models.Claims{UserID: userID, Email: "buyer@example.com"}

	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)
	ctx = middleware.WithBearerToken(ctx, TestBearerToken)

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	return newRequest(method, target, body, pathParams)
}

// CreateSessionRequest is an authenticated request for a session route with
// the {id} path value set.
func CreateSessionRequest(method, sessionID, action string, body io.Reader, userID uuid.UUID) *http.Request {
	return CreateTestRequestWithContext(method, SessionPath(sessionID, action), body, userID, map[string]string{"id": sessionID})
}

func newRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {

	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}
