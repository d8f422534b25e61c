// Package errors holds the closed set of user-facing authentication error kinds
// and the classifiers that map raw provider failures onto them.
package errors

import (
	"github.com/pkg/errors"
)

// Kind is one member of the closed set of domain error kinds.
type Kind string

const (
	KindInvalidCredentials                Kind = "invalid_credentials"
	KindEmailAlreadyInUse                 Kind = "email_already_in_use"
	KindWeakPassword                      Kind = "weak_password"
	KindNetwork                           Kind = "network"
	KindRateLimited                       Kind = "rate_limited"
	KindRequiresBackendForAccountDeletion Kind = "requires_backend_for_account_deletion"
	KindInvalidEmail                      Kind = "invalid_email"
	KindTooManyRequests                   Kind = "too_many_requests"
	KindUnknown                           Kind = "unknown"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Domain error kind
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Retryable() bool   // Whether repeating the same action may succeed
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
	retryable bool
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message string, retryable bool) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		retryable: retryable,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is makes every copy of a kind match its predeclared error, so
// errors.Is(err.WithDetails("..."), ErrNetwork) holds.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return e.kind == other.kind
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the domain error kind
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Retryable reports whether the caller may repeat the action
func (e *BaseError) Retryable() bool {
	return e.retryable
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		retryable: e.retryable,
	}
}

// Predefined error types
var (
	// Sign-in, sign-up and account errors
	ErrInvalidCredentials = NewBaseError(
		KindInvalidCredentials,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		false,
	)

	ErrEmailAlreadyInUse = NewBaseError(
		KindEmailAlreadyInUse,
		"EMAIL_ALREADY_IN_USE",
		"This email is already in use.",
		false,
	)

	ErrWeakPassword = NewBaseError(
		KindWeakPassword,
		"WEAK_PASSWORD",
		"The password is too weak.",
		false,
	)

	ErrNetwork = NewBaseError(
		KindNetwork,
		"NETWORK",
		"Network problem. Check your connection and try again.",
		true,
	)

	ErrRateLimited = NewBaseError(
		KindRateLimited,
		"RATE_LIMITED",
		"Too many attempts. Please try again later.",
		true,
	)

	// Account deletion needs a privileged server-side credential that never ships with the client.
	ErrRequiresBackendForAccountDeletion = NewBaseError(
		KindRequiresBackendForAccountDeletion,
		"REQUIRES_BACKEND_FOR_ACCOUNT_DELETION",
		"Account deletion requires a server-side operation.",
		false,
	)

	// Password reset errors
	ErrInvalidEmail = NewBaseError(
		KindInvalidEmail,
		"INVALID_EMAIL",
		"Invalid e-mail.",
		false,
	)

	ErrTooManyRequests = NewBaseError(
		KindTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many attempts. Please try again later.",
		true,
	)

	// General errors
	ErrUnknown = NewBaseError(
		KindUnknown,
		"UNKNOWN",
		"Unknown error.",
		false,
	)
)

// ErrorForKind returns the predeclared error for a kind, falling back to ErrUnknown.
func ErrorForKind(kind Kind) *BaseError {
	switch kind {
	case KindInvalidCredentials:
		return ErrInvalidCredentials
	case KindEmailAlreadyInUse:
		return ErrEmailAlreadyInUse
	case KindWeakPassword:
		return ErrWeakPassword
	case KindNetwork:
		return ErrNetwork
	case KindRateLimited:
		return ErrRateLimited
	case KindRequiresBackendForAccountDeletion:
		return ErrRequiresBackendForAccountDeletion
	case KindInvalidEmail:
		return ErrInvalidEmail
	case KindTooManyRequests:
		return ErrTooManyRequests
	default:
		return ErrUnknown
	}
}

// KindOf returns the kind of the first domain error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindUnknown
}

// ErrorInfo is the alert payload the UI layer renders for a failed action.
type ErrorInfo struct {
	Code      string `json:"code"`              // Business error code, e.g., "INVALID_CREDENTIALS"
	Message   string `json:"message"`           // User-friendly error message
	Retryable bool   `json:"retryable"`         // Retry is the implied recourse
	Details   string `json:"details,omitempty"` // Detailed error information (optional)
}

// Describe converts an error returned by the auth layer into an alert payload.
func Describe(err error) *ErrorInfo {
	if err == nil {
		return nil
	}

	var appErr AppError
	if !errors.As(err, &appErr) {
		appErr = ErrUnknown
	}

	return &ErrorInfo{
		Code:      appErr.ErrorCode(),
		Message:   appErr.Message(),
		Retryable: appErr.Retryable(),
		Details:   appErr.Details(),
	}
}
