package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/checkin-backend-go/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuth = jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)

func contextWithClaims(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()

	token, _, err := testAuth.Encode(claims)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestIdentity_AccessToken(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"staff_id": "staff-1",
		"name":     "Alice",
		"role":     "admin",
		"type":     "access",
	})

	actx, err := Identity(ctx)

	require.NoError(t, err)
	assert.Equal(t, "staff-1", actx.StaffID)
	assert.Equal(t, "Alice", actx.Name)
	assert.Equal(t, "admin", actx.Role)
	assert.True(t, actx.IsAdmin())
}

func TestIdentity_RejectsRefreshToken(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"staff_id": "staff-1",
		"type":     "refresh",
	})

	_, err := Identity(ctx)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestIdentity_RejectsMissingStaffID(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"type": "access",
	})

	_, err := Identity(ctx)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestIdentity_RejectsMissingToken(t *testing.T) {
	_, err := Identity(context.Background())

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthRequired(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("passes access token through", func(t *testing.T) {
		ctx := contextWithClaims(t, map[string]interface{}{
			"staff_id": "staff-1",
			"type":     "access",
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
		rec := httptest.NewRecorder()

		AuthRequired(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rejects anonymous request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		AuthRequired(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("passes admin through", func(t *testing.T) {
		ctx := contextWithClaims(t, map[string]interface{}{
			"staff_id": "staff-1",
			"role":     "admin",
			"type":     "access",
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
		rec := httptest.NewRecorder()

		AdminOnly(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rejects staff role", func(t *testing.T) {
		ctx := contextWithClaims(t, map[string]interface{}{
			"staff_id": "staff-2",
			"role":     "staff",
			"type":     "access",
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
		rec := httptest.NewRecorder()

		AdminOnly(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
