package auth

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/checkin-backend-go/internal/domain/auth"
	"github.com/staffdesk/checkin-backend-go/internal/domain/staff"
	"github.com/staffdesk/checkin-backend-go/internal/pkg/database"
	"github.com/staffdesk/checkin-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeStaffRepo struct {
	members map[string]staff.StaffMember
}

func (f *fakeStaffRepo) Create(ctx context.Context, member staff.StaffMember) (staff.StaffMember, error) {
	f.members[member.ID] = member
	return member, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (staff.StaffMember, error) {
	member, ok := f.members[id]
	if !ok {
		return staff.StaffMember{}, staff.ErrStaffNotFound
	}
	return member, nil
}

func (f *fakeStaffRepo) GetByEmail(ctx context.Context, email string) (staff.StaffMember, error) {
	for _, member := range f.members {
		if member.Email == email {
			return member, nil
		}
	}
	return staff.StaffMember{}, staff.ErrStaffNotFound
}

func (f *fakeStaffRepo) List(ctx context.Context) ([]staff.StaffMember, error) {
	return nil, nil
}

func (f *fakeStaffRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return nil
}

func (f *fakeStaffRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeStaffRepo) CountAdmins(ctx context.Context) (int, error) {
	return 0, nil
}

type fakeRefreshTokenRepo struct {
	stored  map[string]bool // token -> revoked
	tracked []auth.SessionTrackingRequest
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{stored: make(map[string]bool)}
}

func (f *fakeRefreshTokenRepo) CreateRefreshToken(ctx context.Context, staffID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	f.stored[token] = false
	f.tracked = append(f.tracked, sessionReq)
	return nil
}

func (f *fakeRefreshTokenRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	revoked, ok := f.stored[token]
	if !ok {
		return false, pgx.ErrNoRows
	}
	return revoked, nil
}

func (f *fakeRefreshTokenRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	if _, ok := f.stored[token]; ok {
		f.stored[token] = true
	}
	return nil
}

func newTestAuthService(t *testing.T) (auth.AuthService, *fakeStaffRepo, *fakeRefreshTokenRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		"staff-1": {
			ID:           "staff-1",
			Name:         "Alice Staff",
			Email:        "alice@example.com",
			PasswordHash: string(hash),
			Role:         staff.RoleStaff,
		},
	}}
	tokenRepo := newFakeRefreshTokenRepo()

	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	svc := NewAuthService(nil, staffRepo, jwtService, tokenRepo)

	impl := svc.(*AuthServiceImpl)
	impl.withTx = func(ctx context.Context, db *database.DB, fn func(pgx.Tx) error) error {
		return fn(nil)
	}

	return svc, staffRepo, tokenRepo
}

func TestLogin_Success(t *testing.T) {
	svc, _, tokenRepo := newTestAuthService(t)

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	}, auth.SessionTrackingRequest{UserAgent: "test-agent", IPAddress: "10.0.0.1"})
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Greater(t, tokens.AccessTokenExpiresIn, int64(0))

	// Refresh token was persisted with session metadata.
	_, ok := tokenRepo.stored[tokens.RefreshToken]
	assert.True(t, ok)
	require.Len(t, tokenRepo.tracked, 1)
	assert.Equal(t, "test-agent", tokenRepo.tracked[0].UserAgent)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	}, auth.SessionTrackingRequest{})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	}, auth.SessionTrackingRequest{})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshToken_Success(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	accessResp, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, accessResp.AccessToken)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: tokens.AccessToken})
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_Garbage(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: "not-a-jwt"})
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_Expired(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	// Same signing key, but the refresh token expired an hour ago.
	expiredJWT := jwt.NewJWTService(testSecret, testAccessExp, "-1h")
	token, _, err := expiredJWT.GenerateRefreshToken("staff-1")
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: token})
	require.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	svc, _, tokenRepo := newTestAuthService(t)

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken}))
	assert.True(t, tokenRepo.stored[tokens.RefreshToken])

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
