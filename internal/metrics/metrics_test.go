package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()

	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	return rr.Body.String()
}

func TestMiddleware(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/checkout/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := metrics.Middleware(mux)

	t.Run("Success - Records Route Pattern", func(t *testing.T) {
		// Act
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/checkout/sessions/8b9f3c2a-1d4e-4f6a-9b0c-7e5d2a1f3c4b", nil))

		// Assert
		assert.Equal(t, http.StatusTeapot, rr.Code)

		body := scrape(t)
		assert.Contains(t, body, `http_requests_total{code="418",method="GET",path="GET /api/v1/checkout/sessions/{id}"}`)
		assert.NotContains(t, body, "8b9f3c2a-1d4e-4f6a-9b0c-7e5d2a1f3c4b")
	})

	t.Run("Success - Unmatched Route", func(t *testing.T) {
		// Act
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, scrape(t), `http_requests_total{code="404",method="GET",path="unmatched"}`)
	})
}

func TestCheckoutCounters(t *testing.T) {
	// Act
	metrics.CheckoutSubmissions.WithLabelValues("cart", metrics.OutcomeRejected).Inc()

	// Assert
	assert.Contains(t, scrape(t), `checkout_submissions_total{flow="cart",outcome="rejected"}`)
}
