// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "textura/internal/delivery/context"
	"textura/internal/domain/entity"
	domainerrors "textura/internal/domain/errors"
	"textura/internal/domain/repository"
	"textura/internal/domain/service"
	"textura/internal/usecase"
)

const (
	opStartupSync   = "startup_sync"
	opSignIn        = "sign_in"
	opSignUp        = "sign_up"
	opSignOut       = "sign_out"
	opUpdateEmail   = "update_email"
	opDeleteAccount = "delete_account"
)

var (
	errAlreadyStarted = errors.New("auth engine already started")
	errClosed         = errors.New("auth engine closed")
)

// AuthServiceParams holds dependencies for the auth engine, injected by Fx
type AuthServiceParams struct {
	fx.In

	Provider   service.RemoteAuthProvider
	MarkerRepo repository.SessionMarkerRepository
	Metrics    service.AuthMetrics `optional:"true"`
	Logger     *slog.Logger
}

// authService implements the AuthUsecase interface.
type authService struct {
	provider   service.RemoteAuthProvider
	markerRepo repository.SessionMarkerRepository
	metrics    service.AuthMetrics
	logger     *slog.Logger
	now        func() time.Time

	// mu serializes applySession, the only writer of state.
	mu       sync.Mutex
	state    entity.AuthState
	disposed bool
	changes  *authStateBroadcaster

	lifecycleMu sync.Mutex
	started     bool
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	synced      chan struct{}
	closeOnce   sync.Once
}

// NewAuthService is the constructor for authService.
// The initial state is seeded from the persisted session marker, if any.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = noopAuthMetrics{}
	}

	srv := &authService{
		provider:   params.Provider,
		markerRepo: params.MarkerRepo,
		metrics:    metrics,
		logger:     params.Logger,
		now:        time.Now,
		synced:     make(chan struct{}),
	}

	srv.state = srv.seedState(context.Background())
	srv.changes = newAuthStateBroadcaster(srv.state.IsAuthenticated())

	return srv
}

// seedState trusts the marker until the startup sync says otherwise.
func (srv *authService) seedState(ctx context.Context) entity.AuthState {
	marker, err := srv.markerRepo.LoadMarker(ctx)
	if err != nil {
		srv.logger.Warn("Failed to load session marker, starting unauthenticated", slog.Any("error", err))

		return entity.Unauthenticated()
	}
	if marker == nil || marker.UserID == "" {
		return entity.Unauthenticated()
	}

	srv.logger.Debug("Seeded auth state from session marker", slog.String("user_id", marker.UserID))

	return entity.Authenticated(marker.UserID)
}

// log returns an operation-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start launches the background task: startup sync, then the session stream.
func (srv *authService) Start(ctx context.Context) error {
	srv.lifecycleMu.Lock()
	defer srv.lifecycleMu.Unlock()

	if srv.isDisposed() {
		return errClosed
	}
	if srv.started {
		return errAlreadyStarted
	}
	srv.started = true

	// The loop outlives the caller's deadline and ends only on Close.
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	srv.cancel = cancel

	srv.wg.Add(1)
	go srv.run(loopCtx)

	return nil
}

func (srv *authService) run(ctx context.Context) {
	defer srv.wg.Done()

	srv.startupSync(ctx)
	close(srv.synced)

	events, err := srv.provider.SessionChanges(ctx)
	if err != nil {
		if ctx.Err() == nil {
			srv.logger.Error("Failed to subscribe to session changes", slog.Any("error", err))
		}

		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				srv.logger.Debug("Session change stream ended")

				return
			}

			srv.metrics.RecordSessionEvent(ev.Event)
			srv.logger.Debug("Session change received", slog.String("event", string(ev.Event)))
			srv.applySession(ctx, ev.Session)
		}
	}
}

// startupSync fetches the provider session once. Any failure counts as no session.
func (srv *authService) startupSync(ctx context.Context) {
	session, err := srv.provider.CurrentSession(ctx)
	if err != nil {
		srv.logger.Warn("Startup session sync failed, treating as signed out", slog.Any("error", err))
		srv.metrics.RecordFailure(opStartupSync, domainerrors.KindOf(domainerrors.ClassifyAuthFailure(err)))
		session = nil
	}

	srv.applySession(ctx, session)
}

// Synced is closed after the startup sync has been applied. It never closes if Start is not called.
func (srv *authService) Synced() <-chan struct{} {
	return srv.synced
}

// Close cancels the session stream exactly once and waits for it to finish.
func (srv *authService) Close() {
	srv.closeOnce.Do(func() {
		srv.mu.Lock()
		srv.disposed = true
		srv.mu.Unlock()

		srv.lifecycleMu.Lock()
		cancel := srv.cancel
		srv.lifecycleMu.Unlock()

		if cancel != nil {
			cancel()
		}
		srv.wg.Wait()
		srv.changes.close()

		srv.logger.Debug("Auth engine closed")
	})
}

func (srv *authService) isDisposed() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.disposed
}

// applySession is the only state mutation path.
func (srv *authService) applySession(ctx context.Context, session *entity.Session) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.disposed {
		return
	}

	next := entity.Unauthenticated()
	if session.IsUsable(srv.now()) {
		next = entity.Authenticated(session.UserID)
	}

	prev := srv.state
	srv.state = next
	srv.persistMarker(ctx, next)

	if srv.changes.publish(next.IsAuthenticated()) {
		srv.metrics.RecordTransition(next.IsAuthenticated())
		srv.log(ctx).Info("Auth state changed",
			slog.String("from", prev.String()),
			slog.String("to", next.String()),
		)
	} else if prevID, _ := prev.UserID(); prevID != "" {
		if nextID, ok := next.UserID(); ok && nextID != prevID {
			srv.log(ctx).Info("Authenticated user changed", slog.String("user_id", nextID))
		}
	}
}

// persistMarker keeps the marker in line with state. Failures never roll back state.
func (srv *authService) persistMarker(ctx context.Context, state entity.AuthState) {
	ctx = context.WithoutCancel(ctx)

	userID, ok := state.UserID()
	if !ok {
		if err := srv.markerRepo.ClearMarker(ctx); err != nil {
			srv.log(ctx).Warn("Failed to clear session marker", slog.Any("error", err))
		}

		return
	}

	marker := entity.SessionMarker{UserID: userID, Provider: entity.ProviderTypeEmail}
	if err := srv.markerRepo.SaveMarker(ctx, marker); err != nil {
		srv.log(ctx).Warn("Failed to save session marker", slog.Any("error", err))
	}
}

// resync re-runs the startup sync, but reports a failed fetch instead of swallowing it.
func (srv *authService) resync(ctx context.Context) error {
	session, err := srv.provider.CurrentSession(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	srv.applySession(ctx, session)

	return nil
}

// fail classifies a provider failure once, then logs and counts it.
func (srv *authService) fail(ctx context.Context, operation string, err error) error {
	classified := domainerrors.ClassifyAuthFailure(err)
	kind := domainerrors.KindOf(classified)

	srv.metrics.RecordFailure(operation, kind)

	level := slog.LevelWarn
	if kind == domainerrors.KindUnknown {
		level = slog.LevelError
	}
	srv.log(ctx).Log(ctx, level, "Auth operation failed",
		slog.String("kind", string(kind)),
		slog.Any("error", err),
	)

	return classified
}

// SignIn verifies the credentials with the provider and then re-syncs the session.
func (srv *authService) SignIn(ctx context.Context, email, password string) error {
	ctx = deliverycontext.StartOperation(ctx, srv.logger, opSignIn)
	srv.log(ctx).Info("Signing in")

	if _, err := srv.provider.SignIn(ctx, email, password); err != nil {
		return srv.fail(ctx, opSignIn, err)
	}

	if err := srv.resync(ctx); err != nil {
		return srv.fail(ctx, opSignIn, err)
	}

	srv.log(ctx).Info("Sign in completed", slog.Bool("authenticated", srv.IsAuthenticated()))

	return nil
}

// SignUp creates the account. The user is never considered signed in afterwards:
// the email has to be confirmed and a regular sign in performed.
func (srv *authService) SignUp(ctx context.Context, email, password string) error {
	ctx = deliverycontext.StartOperation(ctx, srv.logger, opSignUp)
	srv.log(ctx).Info("Signing up")

	if _, err := srv.provider.SignUp(ctx, email, password); err != nil {
		return srv.fail(ctx, opSignUp, err)
	}

	srv.applySession(ctx, nil)
	srv.log(ctx).Info("Sign up completed")

	return nil
}

// SignOut ends the provider session. Locally the user is signed out even if the provider call fails.
func (srv *authService) SignOut(ctx context.Context) error {
	ctx = deliverycontext.StartOperation(ctx, srv.logger, opSignOut)
	srv.log(ctx).Info("Signing out")

	err := srv.provider.SignOut(ctx)
	srv.applySession(ctx, nil)

	if err != nil {
		return srv.fail(ctx, opSignOut, err)
	}

	srv.log(ctx).Info("Sign out completed")

	return nil
}

// UpdateEmail re-authenticates with the current password before changing the account email.
func (srv *authService) UpdateEmail(ctx context.Context, newEmail, currentPassword string) error {
	ctx = deliverycontext.StartOperation(ctx, srv.logger, opUpdateEmail)
	srv.log(ctx).Info("Updating email")

	password := strings.TrimSpace(currentPassword)
	if password == "" {
		srv.metrics.RecordFailure(opUpdateEmail, domainerrors.KindInvalidCredentials)
		srv.log(ctx).Warn("Email update rejected, empty password")

		return domainerrors.ErrInvalidCredentials
	}

	session, err := srv.provider.CurrentSession(ctx)
	if err != nil {
		return srv.fail(ctx, opUpdateEmail, err)
	}
	if session == nil || session.Email == "" {
		return srv.fail(ctx, opUpdateEmail, domainerrors.ErrUnknown.WithDetails("current session has no email"))
	}

	if _, err := srv.provider.SignIn(ctx, session.Email, password); err != nil {
		return srv.fail(ctx, opUpdateEmail, err)
	}

	if _, err := srv.provider.UpdateUserEmail(ctx, newEmail); err != nil {
		return srv.fail(ctx, opUpdateEmail, err)
	}

	if err := srv.resync(ctx); err != nil {
		return srv.fail(ctx, opUpdateEmail, err)
	}

	srv.log(ctx).Info("Email update completed")

	return nil
}

// DeleteAccount needs a privileged backend call that a client must not hold credentials for.
func (srv *authService) DeleteAccount(ctx context.Context) error {
	ctx = deliverycontext.StartOperation(ctx, srv.logger, opDeleteAccount)
	srv.metrics.RecordFailure(opDeleteAccount, domainerrors.KindRequiresBackendForAccountDeletion)
	srv.log(ctx).Warn("Account deletion requested, not available on the client")

	return domainerrors.ErrRequiresBackendForAccountDeletion
}

// AuthenticatedChanges subscribes to the authenticated boolean.
func (srv *authService) AuthenticatedChanges(ctx context.Context) <-chan bool {
	return srv.changes.subscribe(ctx)
}

func (srv *authService) IsAuthenticated() bool {
	return srv.State().IsAuthenticated()
}

func (srv *authService) CurrentUserID() (string, bool) {
	return srv.State().UserID()
}

// State returns a snapshot of the current auth state.
func (srv *authService) State() entity.AuthState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}

type noopAuthMetrics struct{}

func (noopAuthMetrics) RecordTransition(bool)                   {}
func (noopAuthMetrics) RecordFailure(string, domainerrors.Kind) {}
func (noopAuthMetrics) RecordSessionEvent(service.AuthEvent)    {}
