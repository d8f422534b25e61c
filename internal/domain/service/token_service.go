package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"textura/internal/domain/entity"
)

// SessionClaims defines the claims carried by a session access token.
type SessionClaims struct {
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"email_confirmed"`
	jwt.RegisteredClaims
}

// SessionTokenService issues and reads session access tokens.
// This abstracts the details of token creation from the identity provider.
type SessionTokenService interface {
	// IssueToken creates an access token for the given account and returns it with its expiry.
	IssueToken(userID, email string, emailConfirmed bool) (token string, expiresAt time.Time, err error)

	// ParseSession validates a token and converts its claims into a session.
	ParseSession(token string) (*entity.Session, error)

	// GetSessionDuration returns the configured lifetime of access tokens.
	GetSessionDuration() time.Duration
}
