// Package local is an in-process identity provider for development and tests.
// It keeps accounts in memory and reports failures the way the hosted backend phrases them.
package local

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"textura/config"
	"textura/internal/domain/entity"
	"textura/internal/domain/service"
)

// ProviderName is the auth.provider value that selects this provider.
const ProviderName = "local"

const (
	minPasswordLength  = 6
	streamBuffer       = 16
	defaultAttemptRate = time.Second
	defaultBurst       = 5
	resetInterval      = 60 * time.Second
)

// Failures reported by the provider. They mirror the hosted backend's status, code and text.
var (
	errInvalidCredentials = &service.ProviderError{Status: 400, Code: "invalid_credentials", Message: "Invalid login credentials"}
	errEmailNotConfirmed  = &service.ProviderError{Status: 400, Code: "email_not_confirmed", Message: "Email not confirmed"}
	errEmailExists        = &service.ProviderError{Status: 422, Code: "email_exists", Message: "A user with this email address has already been registered"}
	errWeakPassword       = &service.ProviderError{Status: 422, Code: "weak_password", Message: "Password should be at least 6 characters."}
	errInvalidEmail       = &service.ProviderError{Status: 400, Code: "validation_failed", Message: "Unable to validate email address: invalid format"}
	errSessionMissing     = &service.ProviderError{Status: 401, Code: "session_not_found", Message: "Auth session missing!"}
	errSignInThrottled    = &service.ProviderError{Status: 429, Code: "over_request_rate_limit", Message: "Request rate limit reached"}
	errResetThrottled     = &service.ProviderError{Status: 429, Code: "over_email_send_rate_limit", Message: "For security purposes, you can only request this after 60 seconds."}
)

type account struct {
	id           string
	email        string
	passwordHash string
	confirmed    bool
}

type subscriber struct {
	ch   chan service.SessionEvent
	done <-chan struct{}
}

// Provider implements service.RemoteAuthProvider in memory.
type Provider struct {
	hasher    service.PasswordHasher
	tokens    service.SessionTokenService
	validator service.FormValidator
	logger    *slog.Logger

	autoConfirm bool
	attemptRate rate.Limit
	burst       int

	mu       sync.Mutex
	accounts map[string]*account // keyed by lower-cased email
	current  *entity.Session
	limiters map[string]*rate.Limiter

	// sendMu orders event delivery and guards subscriber channels against close-while-send.
	sendMu sync.Mutex
	nextID uint64
	subs   map[uint64]subscriber
}

// ProviderParams holds dependencies for the local provider, injected by Fx
type ProviderParams struct {
	fx.In

	Config    *config.Config
	Hasher    service.PasswordHasher
	Tokens    service.SessionTokenService
	Validator service.FormValidator
	Logger    *slog.Logger
}

// NewProvider creates the local provider from configuration.
func NewProvider(params ProviderParams) (*Provider, error) {
	cfg := params.Config.Auth
	if cfg == nil {
		cfg = &config.AuthConfig{}
	}
	if cfg.Provider != "" && cfg.Provider != ProviderName {
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}

	interval := cfg.SignInRate
	if interval <= 0 {
		interval = defaultAttemptRate
	}
	burst := cfg.SignInBurst
	if burst <= 0 {
		burst = defaultBurst
	}

	return &Provider{
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		validator:   params.Validator,
		logger:      params.Logger.With(slog.String("component", "local_auth_provider")),
		autoConfirm: cfg.AutoConfirm,
		attemptRate: rate.Every(interval),
		burst:       burst,
		accounts:    make(map[string]*account),
		limiters:    make(map[string]*rate.Limiter),
		subs:        make(map[uint64]subscriber),
	}, nil
}

// NewRemoteAuthProvider exposes the local provider through the domain contract.
func NewRemoteAuthProvider(p *Provider) service.RemoteAuthProvider {
	return p
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// allow reports whether another attempt for key is within its rate.
func (p *Provider) allow(key string, every rate.Limit, burst int) bool {
	p.mu.Lock()
	limiter, ok := p.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(every, burst)
		p.limiters[key] = limiter
	}
	p.mu.Unlock()

	return limiter.Allow()
}

func (p *Provider) validEmail(email string) bool {
	return p.validator.Validate(email, entity.FieldEmail).IsValid
}

// issue creates a session for acc. Callers must hold p.mu.
func (p *Provider) issue(acc *account) (*entity.Session, error) {
	token, expiresAt, err := p.tokens.IssueToken(acc.id, acc.email, acc.confirmed)
	if err != nil {
		return nil, errors.Wrap(err, "issue session token")
	}

	return &entity.Session{
		UserID:         acc.id,
		Email:          acc.email,
		EmailConfirmed: acc.confirmed,
		ExpiresAt:      &expiresAt,
		AccessToken:    token,
	}, nil
}

// SignIn checks the password and starts a session.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	key := normalizeEmail(email)
	if !p.allow("signin:"+key, p.attemptRate, p.burst) {
		return nil, errSignInThrottled
	}

	p.mu.Lock()
	acc, ok := p.accounts[key]
	if !ok || !p.hasher.Check(password, acc.passwordHash) {
		p.mu.Unlock()

		return nil, errInvalidCredentials
	}
	if !acc.confirmed {
		p.mu.Unlock()

		return nil, errEmailNotConfirmed
	}

	session, err := p.issue(acc)
	if err != nil {
		p.mu.Unlock()

		return nil, err
	}
	p.current = session
	p.mu.Unlock()

	p.logger.Debug("User signed in", slog.String("user_id", session.UserID))
	p.emit(service.SessionEvent{Event: service.AuthEventSignedIn, Session: session})

	return session, nil
}

// SignUp registers a new account. No session is started: with auto-confirmation the
// account is only marked confirmed and the user signs in explicitly.
func (p *Provider) SignUp(ctx context.Context, email, password string) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	key := normalizeEmail(email)
	if !p.validEmail(key) {
		return nil, errInvalidEmail
	}
	if len([]rune(password)) < minPasswordLength {
		return nil, errWeakPassword
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.accounts[key]; exists {
		return nil, errEmailExists
	}

	acc := &account{
		id:           uuid.NewString(),
		email:        key,
		passwordHash: hash,
		confirmed:    p.autoConfirm,
	}
	p.accounts[key] = acc

	p.logger.Info("Account created",
		slog.String("user_id", acc.id),
		slog.Bool("confirmed", acc.confirmed),
	)

	return nil, nil
}

// SignOut ends the current session. Signing out without a session is not an error.
func (p *Provider) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	p.mu.Lock()
	hadSession := p.current != nil
	p.current = nil
	p.mu.Unlock()

	if hadSession {
		p.emit(service.SessionEvent{Event: service.AuthEventSignedOut})
	}

	return nil
}

// UpdateUserEmail moves the signed-in account to newEmail and reissues its session.
func (p *Provider) UpdateUserEmail(ctx context.Context, newEmail string) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	key := normalizeEmail(newEmail)
	if !p.validEmail(key) {
		return nil, errInvalidEmail
	}

	p.mu.Lock()
	if p.current == nil {
		p.mu.Unlock()

		return nil, errSessionMissing
	}

	acc, ok := p.accounts[normalizeEmail(p.current.Email)]
	if !ok {
		p.mu.Unlock()

		return nil, errSessionMissing
	}
	if other, exists := p.accounts[key]; exists && other != acc {
		p.mu.Unlock()

		return nil, errEmailExists
	}

	delete(p.accounts, acc.email)
	acc.email = key
	p.accounts[key] = acc

	session, err := p.issue(acc)
	if err != nil {
		p.mu.Unlock()

		return nil, err
	}
	p.current = session
	p.mu.Unlock()

	p.logger.Info("Account email updated", slog.String("user_id", acc.id))
	p.emit(service.SessionEvent{Event: service.AuthEventUserUpdated, Session: session})

	return session, nil
}

// CurrentSession returns the live session, or nil once it has expired.
func (p *Provider) CurrentSession(ctx context.Context) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return nil, nil
	}

	session, err := p.tokens.ParseSession(p.current.AccessToken)
	if err != nil {
		p.logger.Debug("Dropping unreadable session", slog.Any("error", err))
		p.current = nil

		return nil, nil
	}

	return session, nil
}

// SendPasswordResetEmail logs the reset link in place of mailing it. Unknown addresses
// succeed silently so the endpoint cannot be used to probe for accounts.
func (p *Provider) SendPasswordResetEmail(ctx context.Context, email, redirectURL string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	key := normalizeEmail(email)
	if !p.validEmail(key) {
		return errInvalidEmail
	}
	if !p.allow("reset:"+key, rate.Every(resetInterval), 1) {
		return errResetThrottled
	}

	p.mu.Lock()
	acc, ok := p.accounts[key]
	p.mu.Unlock()

	if !ok {
		return nil
	}

	p.logger.Info("Password reset link issued",
		slog.String("user_id", acc.id),
		slog.String("redirect_url", redirectURL),
	)

	return nil
}

// ConfirmEmail marks an account as confirmed, standing in for the confirmation link.
func (p *Provider) ConfirmEmail(ctx context.Context, email string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	acc, ok := p.accounts[normalizeEmail(email)]
	if !ok {
		return &service.ProviderError{Status: 404, Code: "user_not_found", Message: "User not found"}
	}
	acc.confirmed = true

	return nil
}

// SessionChanges subscribes to session notifications. The first event reports the current session.
func (p *Provider) SessionChanges(ctx context.Context) (<-chan service.SessionEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	p.mu.Lock()
	initial := p.current
	p.mu.Unlock()

	ch := make(chan service.SessionEvent, streamBuffer)
	ch <- service.SessionEvent{Event: service.AuthEventInitialSession, Session: initial}

	p.sendMu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = subscriber{ch: ch, done: ctx.Done()}
	p.sendMu.Unlock()

	go func() {
		<-ctx.Done()

		p.sendMu.Lock()
		delete(p.subs, id)
		close(ch)
		p.sendMu.Unlock()
	}()

	return ch, nil
}

// emit delivers ev to every subscriber in order, skipping those that went away.
func (p *Provider) emit(ev service.SessionEvent) {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()

	for _, sub := range p.subs {
		select {
		case sub.ch <- ev:
		case <-sub.done:
		}
	}
}

// Module provides the local identity provider FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewProvider,
		NewRemoteAuthProvider,
	),
)
