package errors

import (
	"context"
	"crypto/x509"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusError struct {
	status int
	msg    string
}

func (e *statusError) Error() string   { return e.msg }
func (e *statusError) StatusCode() int { return e.status }

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o deadline" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyAuthFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *BaseError
	}{
		{
			name: "dns failure",
			err:  &url.Error{Op: "Post", URL: "https://auth.example", Err: &net.DNSError{Err: "no such host", Name: "auth.example"}},
			want: ErrNetwork,
		},
		{
			name: "connection refused",
			err:  errors.Wrap(syscall.ECONNREFUSED, "dial tcp"),
			want: ErrNetwork,
		},
		{
			name: "net timeout",
			err:  &url.Error{Op: "Get", URL: "https://auth.example", Err: timeoutError{}},
			want: ErrNetwork,
		},
		{
			name: "deadline exceeded",
			err:  errors.Wrap(context.DeadlineExceeded, "sign in"),
			want: ErrNetwork,
		},
		{
			name: "tls failure",
			err:  errors.Wrap(x509.UnknownAuthorityError{}, "handshake"),
			want: ErrNetwork,
		},
		{
			name: "transport wins over text",
			err:  &net.OpError{Op: "dial", Err: errors.New("invalid login credentials")},
			want: ErrNetwork,
		},
		{
			name: "cancellation is not user facing",
			err:  &url.Error{Op: "Post", URL: "https://auth.example", Err: context.Canceled},
			want: ErrUnknown,
		},
		{
			name: "unconfirmed email",
			err:  &statusError{status: 400, msg: "Email not confirmed"},
			want: ErrUnknown,
		},
		{
			name: "status 401",
			err:  &statusError{status: 401, msg: "request rejected"},
			want: ErrInvalidCredentials,
		},
		{
			name: "status 429",
			err:  &statusError{status: 429, msg: "request rejected"},
			want: ErrRateLimited,
		},
		{
			name: "status 409",
			err:  &statusError{status: 409, msg: "conflict"},
			want: ErrEmailAlreadyInUse,
		},
		{
			name: "status token in text",
			err:  errors.New("server answered 401 unauthorized"),
			want: ErrInvalidCredentials,
		},
		{
			name: "status precedes text",
			err:  &statusError{status: 429, msg: "invalid login credentials"},
			want: ErrRateLimited,
		},
		{
			name: "invalid login text",
			err:  errors.New("Invalid login credentials"),
			want: ErrInvalidCredentials,
		},
		{
			name: "invalid grant",
			err:  errors.New("invalid_grant"),
			want: ErrInvalidCredentials,
		},
		{
			name: "email already",
			err:  errors.New("This email is already taken"),
			want: ErrEmailAlreadyInUse,
		},
		{
			name: "user registered",
			err:  errors.New("User with this email registered"),
			want: ErrEmailAlreadyInUse,
		},
		{
			name: "weak password",
			err:  errors.New("Password should be at least 6 characters: too short"),
			want: ErrWeakPassword,
		},
		{
			name: "rate limit text",
			err:  errors.New("over_request_rate_limit"),
			want: ErrRateLimited,
		},
		{
			name: "too many attempts",
			err:  errors.New("Too many attempts"),
			want: ErrRateLimited,
		},
		{
			name: "network text",
			err:  errors.New("the device appears to be offline"),
			want: ErrNetwork,
		},
		{
			name: "opaque failure",
			err:  errors.New("something went wrong"),
			want: ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyAuthFailure(tt.err)

			require.Error(t, got)
			assert.True(t, errors.Is(got, tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, tt.want.Kind(), KindOf(got))
		})
	}
}

func TestClassifyAuthFailure_PassesDomainErrorsThrough(t *testing.T) {
	err := ErrInvalidCredentials.WrapMessage("update email")

	assert.Same(t, err, ClassifyAuthFailure(err))
	assert.NoError(t, ClassifyAuthFailure(nil))
}

func TestClassifyAuthFailure_KeepsRawDetails(t *testing.T) {
	got := ClassifyAuthFailure(errors.New("something went wrong"))

	var appErr AppError
	require.True(t, errors.As(got, &appErr))
	assert.Equal(t, "something went wrong", appErr.Details())
	assert.Equal(t, ErrUnknown.Message(), got.Error())
}

func TestClassifyPasswordResetFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *BaseError
	}{
		{
			name: "dns failure",
			err:  &net.DNSError{Err: "no such host", Name: "auth.example"},
			want: ErrNetwork,
		},
		{
			name: "invalid email",
			err:  &statusError{status: 422, msg: "Unable to validate email address: invalid format"},
			want: ErrInvalidEmail,
		},
		{
			name: "invalid email ahead of rate text",
			err:  errors.New("email rate check: malformed address"),
			want: ErrInvalidEmail,
		},
		{
			name: "status 429",
			err:  &statusError{status: 429, msg: "slow down"},
			want: ErrTooManyRequests,
		},
		{
			name: "too many text",
			err:  errors.New("too many requests"),
			want: ErrTooManyRequests,
		},
		{
			name: "network text",
			err:  errors.New("request timed out"),
			want: ErrNetwork,
		},
		{
			name: "opaque failure",
			err:  errors.New("boom"),
			want: ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPasswordResetFailure(tt.err)

			assert.True(t, errors.Is(got, tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestClassifyPasswordResetFailure_RestrictsDomainKinds(t *testing.T) {
	assert.Same(t, ErrInvalidEmail, ClassifyPasswordResetFailure(ErrInvalidEmail))
	assert.True(t, errors.Is(ClassifyPasswordResetFailure(ErrWeakPassword), ErrUnknown))
	assert.NoError(t, ClassifyPasswordResetFailure(nil))
}

func TestBaseError_IsMatchesByKind(t *testing.T) {
	detailed := ErrNetwork.WithDetails("dial tcp: lookup failed")

	assert.True(t, errors.Is(detailed, ErrNetwork))
	assert.False(t, errors.Is(detailed, ErrRateLimited))
	assert.True(t, detailed.Retryable())
	assert.False(t, ErrInvalidCredentials.Retryable())
}

func TestDescribe(t *testing.T) {
	info := Describe(fmt.Errorf("sign in: %w", ErrRateLimited))

	require.NotNil(t, info)
	assert.Equal(t, "RATE_LIMITED", info.Code)
	assert.True(t, info.Retryable)

	assert.Equal(t, "UNKNOWN", Describe(errors.New("raw")).Code)
	assert.Nil(t, Describe(nil))
}
