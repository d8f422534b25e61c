// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"textura/internal/domain/entity"
)

// AuthUsecase is the single source of truth for whether a user is signed in.
// Every returned error is a domain error from internal/domain/errors.
type AuthUsecase interface {
	// Start runs the startup sync and then follows the provider's session stream until Close.
	Start(ctx context.Context) error
	// Synced is closed once the startup sync has been applied.
	Synced() <-chan struct{}
	// Close stops the session stream and waits for it. Later state changes are ignored.
	Close()

	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	UpdateEmail(ctx context.Context, newEmail, currentPassword string) error
	DeleteAccount(ctx context.Context) error

	// AuthenticatedChanges delivers the current value first and then every effective change.
	// A slow reader always observes the latest value. The channel closes when ctx is done
	// or the engine is closed.
	AuthenticatedChanges(ctx context.Context) <-chan bool
	IsAuthenticated() bool
	CurrentUserID() (string, bool)
	State() entity.AuthState
}
