package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"textura/config"
	"textura/internal/domain/entity"
	"textura/internal/domain/service"
)

const defaultSessionTTL = time.Hour

// jwtService is a concrete implementation of the SessionTokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte           // Secret key for signing session tokens.
	ttl    time.Duration    // Time-to-live for session tokens.
	now    func() time.Time // Clock, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.TokenSecret == "" {
		return nil, errors.New("auth.tokenSecret must be provided")
	}

	ttl := cfg.Auth.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &jwtService{
		secret: []byte(cfg.Auth.TokenSecret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// IssueToken creates a signed session token for the given account.
func (s *jwtService) IssueToken(userID, email string, emailConfirmed bool) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := service.SessionClaims{
		Email:          email,
		EmailConfirmed: emailConfirmed,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,                        // Subject (who the token is for)
			IssuedAt:  jwt.NewNumericDate(issuedAt),  // Issued At
			ExpiresAt: jwt.NewNumericDate(expiresAt), // Expiration Time
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign session token")
	}

	return signed, expiresAt, nil
}

// ParseSession checks the signature and expiry of a token and returns the session it describes.
func (s *jwtService) ParseSession(tokenString string) (*entity.Session, error) {
	claims := &service.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse session token")
	}

	if claims.Subject == "" {
		return nil, errors.New("session token has no subject")
	}

	expiresAt := claims.ExpiresAt.Time

	return &entity.Session{
		UserID:         claims.Subject,
		Email:          claims.Email,
		EmailConfirmed: claims.EmailConfirmed,
		ExpiresAt:      &expiresAt,
		AccessToken:    tokenString,
	}, nil
}

// GetSessionDuration returns the configured lifetime of session tokens.
func (s *jwtService) GetSessionDuration() time.Duration {
	return s.ttl
}
