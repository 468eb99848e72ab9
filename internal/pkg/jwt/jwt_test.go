package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/staffdesk/checkin-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()

	tokenString, expiresAt, err := svc.GenerateAccessToken("staff-1", "alice@example.com", "Alice Staff", staff.RoleAdmin)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "staff-1", claims["staff_id"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, "Alice Staff", claims["name"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestDecodeRefreshToken_RoundTrip(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("staff-1")
	require.NoError(t, err)

	staffID, err := svc.DecodeRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", staffID)
}

func TestDecodeRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("staff-1", "alice@example.com", "Alice Staff", staff.RoleStaff)
	require.NoError(t, err)

	_, err = svc.DecodeRefreshToken(tokenString)
	require.Error(t, err)
}

func TestDecodeRefreshToken_RejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.DecodeRefreshToken("not-a-jwt")
	require.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()

	expiresAt := time.Now().Add(24 * time.Hour).Unix()
	cookie := svc.RefreshTokenCookie("token-value", expiresAt)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
}
