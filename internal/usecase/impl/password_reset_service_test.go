package impl

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"textura/config"
	domainerrors "textura/internal/domain/errors"
	"textura/internal/domain/service"
	mockService "textura/internal/mocks/service"
)

func newTestPasswordResetService(t *testing.T, redirectURL string) (*mockService.MockRemoteAuthProvider, *passwordResetService) {
	t.Helper()

	provider := mockService.NewMockRemoteAuthProvider(t)
	cfg := &config.Config{Auth: &config.AuthConfig{RedirectURL: redirectURL}}

	srv, ok := NewPasswordResetService(provider, cfg, newTestLogger()).(*passwordResetService)
	require.True(t, ok)

	return provider, srv
}

func TestPasswordResetService_BlankEmail(t *testing.T) {
	// No provider expectations: a call would fail the test
	_, srv := newTestPasswordResetService(t, "")

	for _, email := range []string{"", "   ", "\n\t"} {
		err := srv.SendPasswordReset(context.Background(), email)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
	}
}

func TestPasswordResetService_Success(t *testing.T) {
	provider, srv := newTestPasswordResetService(t, "textura://reset")

	provider.EXPECT().SendPasswordResetEmail(mock.Anything, "u@x.com", "textura://reset").Return(nil).Once()

	require.NoError(t, srv.SendPasswordReset(context.Background(), "  u@x.com "))
}

func TestPasswordResetService_NoRedirect(t *testing.T) {
	provider, srv := newTestPasswordResetService(t, "")

	provider.EXPECT().SendPasswordResetEmail(mock.Anything, "u@x.com", "").Return(nil).Once()

	require.NoError(t, srv.SendPasswordReset(context.Background(), "u@x.com"))
}

func TestPasswordResetService_Classification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "malformed email",
			err:      &service.ProviderError{Status: 400, Code: "validation_failed", Message: "Unable to validate email address: invalid format"},
			expected: domainerrors.ErrInvalidEmail,
		},
		{
			name:     "throttled",
			err:      &service.ProviderError{Status: 429, Code: "over_email_send_rate_limit", Message: "For security purposes, you can only request this after 60 seconds."},
			expected: domainerrors.ErrTooManyRequests,
		},
		{
			name:     "offline",
			err:      &net.DNSError{Err: "no such host", Name: "auth.example.com"},
			expected: domainerrors.ErrNetwork,
		},
		{
			name:     "opaque",
			err:      &service.ProviderError{Status: 500, Message: "database error"},
			expected: domainerrors.ErrUnknown,
		},
		{
			name:     "credentials errors collapse to unknown",
			err:      domainerrors.ErrInvalidCredentials,
			expected: domainerrors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, srv := newTestPasswordResetService(t, "")
			provider.EXPECT().SendPasswordResetEmail(mock.Anything, "u@x.com", "").Return(tt.err).Once()

			err := srv.SendPasswordReset(context.Background(), "u@x.com")

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
