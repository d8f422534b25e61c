// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// ProviderType identifies which identity backend issued a session.
type ProviderType string

const (
	// ProviderTypeEmail is the email/password provider.
	ProviderTypeEmail ProviderType = "email"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// Session is the remote provider's notion of a logged-in identity at a point in time.
type Session struct {
	UserID         string     // Opaque, stable identifier of the account.
	Email          string     // Current account email, used to replay a sign-in before sensitive changes.
	EmailConfirmed bool       // Whether the account email has been confirmed.
	ExpiresAt      *time.Time // Expiry of the session; nil means the provider did not report one.
	AccessToken    string     // Provider-issued token, opaque to the engine.
}

// IsExpired reports whether the session has expired at the given instant.
func (s *Session) IsExpired(now time.Time) bool {
	if s == nil {
		return true
	}
	if s.ExpiresAt == nil {
		return false
	}

	return !now.Before(*s.ExpiresAt)
}

// IsUsable reports whether the session may be treated as an authenticated identity.
// An expired or unconfirmed session is indistinguishable from no session at all.
func (s *Session) IsUsable(now time.Time) bool {
	if s == nil || s.UserID == "" {
		return false
	}

	return !s.IsExpired(now) && s.EmailConfirmed
}

// AuthState is the canonical authenticated/unauthenticated judgment owned by the auth engine.
// The zero value is Unauthenticated.
type AuthState struct {
	userID string
}

// Authenticated returns the state for a signed-in user.
func Authenticated(userID string) AuthState {
	return AuthState{userID: userID}
}

// Unauthenticated returns the signed-out state.
func Unauthenticated() AuthState {
	return AuthState{}
}

// IsAuthenticated reports whether the state carries a user.
func (s AuthState) IsAuthenticated() bool {
	return s.userID != ""
}

// UserID returns the authenticated user id and whether there is one.
func (s AuthState) UserID() (string, bool) {
	return s.userID, s.userID != ""
}

// String implements fmt.Stringer for logging.
func (s AuthState) String() string {
	if s.IsAuthenticated() {
		return "authenticated"
	}

	return "unauthenticated"
}

// SessionMarker is the minimal persisted hint of the last known authenticated user.
// It lets the app show a likely-authenticated UI before the provider confirms the session.
type SessionMarker struct {
	UserID   string
	Provider ProviderType
}
