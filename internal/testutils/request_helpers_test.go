package testutils_test

import (
	"net/http"
	"testing"

	"github.com/aaravmahajanofficial/storefront-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront-checkout/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionPath(t *testing.T) {
	assert.Equal(t, "/api/v1/checkout/sessions/abc", testutils.SessionPath("abc", ""))
	assert.Equal(t, "/api/v1/checkout/sessions/abc/advance", testutils.SessionPath("abc", "advance"))
}

func TestCreateSessionRequest(t *testing.T) {
	userID := uuid.New()
	sessionID := uuid.NewString()

	req := testutils.CreateSessionRequest(http.MethodPut, sessionID, "step", nil, userID)

	assert.Equal(t, "/api/v1/checkout/sessions/"+sessionID+"/step", req.URL.Path)
	assert.Equal(t, sessionID, req.PathValue("id"))

	claims, ok := middleware.ClaimsFromContext(req.Context())
	require.True(t, ok)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, testutils.TestBearerToken, middleware.BearerTokenFromContext(req.Context()))
}
