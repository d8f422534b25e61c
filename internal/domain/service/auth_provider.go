package service

import (
	"context"
	"fmt"

	"textura/internal/domain/entity"
)

// AuthEvent is the kind of change a remote session notification reports.
type AuthEvent string

const (
	AuthEventInitialSession   AuthEvent = "initial_session"
	AuthEventSignedIn         AuthEvent = "signed_in"
	AuthEventSignedOut        AuthEvent = "signed_out"
	AuthEventTokenRefreshed   AuthEvent = "token_refreshed"
	AuthEventUserUpdated      AuthEvent = "user_updated"
	AuthEventPasswordRecovery AuthEvent = "password_recovery"
)

// SessionEvent is one push notification from the provider's session-change stream.
// A nil Session means the provider has no session.
type SessionEvent struct {
	Event   AuthEvent
	Session *entity.Session
}

// RemoteAuthProvider is the network-backed identity service the auth engine delegates to.
// Implementations return raw failures; classification happens in the engine.
type RemoteAuthProvider interface {
	// SignIn verifies email/password credentials and returns the new session.
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// SignUp creates an account. The returned session may be nil while email confirmation is pending.
	SignUp(ctx context.Context, email, password string) (*entity.Session, error)

	// SignOut ends the current session.
	SignOut(ctx context.Context) error

	// UpdateUserEmail changes the email of the signed-in account.
	UpdateUserEmail(ctx context.Context, newEmail string) (*entity.Session, error)

	// CurrentSession returns the provider's current session, or nil if there is none.
	CurrentSession(ctx context.Context) (*entity.Session, error)

	// SessionChanges subscribes to session-change notifications, delivered in real time
	// until ctx is done, at which point the channel is closed. It is not restartable.
	SessionChanges(ctx context.Context) (<-chan SessionEvent, error)

	// SendPasswordResetEmail asks the provider to mail a reset link. redirectURL may be empty.
	SendPasswordResetEmail(ctx context.Context, email, redirectURL string) error
}

// ProviderError is a failure reported by the identity backend itself, as opposed to a transport failure.
type ProviderError struct {
	Status  int    // HTTP-like status hint, 0 when unknown
	Code    string // Backend error code, e.g. "invalid_grant"
	Message string // Backend message, free text
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("auth provider: status %d: %s", e.Status, e.Message)
	}

	return fmt.Sprintf("auth provider: status %d: %s: %s", e.Status, e.Code, e.Message)
}

// StatusCode exposes the status hint to error classification.
func (e *ProviderError) StatusCode() int {
	return e.Status
}
