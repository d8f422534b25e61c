package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textura/config"
	"textura/internal/domain/service"
)

func newTestJWTService(t *testing.T, now time.Time) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{
		TokenSecret: "test_session_secret_key_very_long_for_testing",
		SessionTTL:  30 * time.Minute,
	}}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	js, ok := svc.(*jwtService)
	require.True(t, ok)
	js.now = func() time.Time { return now }

	return js
}

func TestJWTService_IssueAndParse(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, now)

	token, expiresAt, err := svc.IssueToken("user-1", "a@b.co", true)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, now.Add(30*time.Minute), expiresAt)

	session, err := svc.ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "a@b.co", session.Email)
	assert.True(t, session.EmailConfirmed)
	assert.Equal(t, token, session.AccessToken)
	require.NotNil(t, session.ExpiresAt)
	assert.True(t, expiresAt.Equal(*session.ExpiresAt))
	assert.True(t, session.IsUsable(now))
}

func TestJWTService_UnconfirmedClaim(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, now)

	token, _, err := svc.IssueToken("user-1", "a@b.co", false)
	require.NoError(t, err)

	session, err := svc.ParseSession(token)
	require.NoError(t, err)
	assert.False(t, session.EmailConfirmed)
	assert.False(t, session.IsUsable(now))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, issued)

	token, _, err := svc.IssueToken("user-1", "a@b.co", true)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(time.Hour) }
	session, err := svc.ParseSession(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, session)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, time.Now())

	// Test invalid token - using clearly non-JWT format
	session, err := svc.ParseSession("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestJWTService_WrongSecret(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, now)

	claims := service.SessionClaims{
		Email:            "a@b.co",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = svc.ParseSession(forged)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_DefaultDuration(t *testing.T) {
	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{TokenSecret: "secret"}})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.GetSessionDuration())
}
