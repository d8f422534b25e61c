package impl

import (
	"context"
	"log/slog"
	"strings"

	"textura/config"
	deliverycontext "textura/internal/delivery/context"
	domainerrors "textura/internal/domain/errors"
	"textura/internal/domain/service"
	"textura/internal/usecase"
)

const opPasswordReset = "password_reset"

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	provider    service.RemoteAuthProvider
	redirectURL string
	logger      *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(
	provider service.RemoteAuthProvider,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PasswordResetUsecase {
	var redirectURL string
	if cfg != nil && cfg.Auth != nil {
		redirectURL = strings.TrimSpace(cfg.Auth.RedirectURL)
	}

	return &passwordResetService{
		provider:    provider,
		redirectURL: redirectURL,
		logger:      logger,
	}
}

// log returns an operation-scoped logger if available, otherwise falls back to the service's logger.
func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendPasswordReset mails a reset link to email. A blank email is rejected without contacting the provider.
func (srv *passwordResetService) SendPasswordReset(ctx context.Context, email string) error {
	ctx = deliverycontext.StartOperation(ctx, srv.logger, opPasswordReset)

	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		srv.log(ctx).Warn("Password reset rejected, empty email")

		return domainerrors.ErrInvalidEmail
	}

	srv.log(ctx).Info("Sending password reset", slog.Bool("has_redirect", srv.redirectURL != ""))

	if err := srv.provider.SendPasswordResetEmail(ctx, trimmed, srv.redirectURL); err != nil {
		classified := domainerrors.ClassifyPasswordResetFailure(err)
		srv.log(ctx).Warn("Password reset failed",
			slog.String("kind", string(domainerrors.KindOf(classified))),
			slog.Any("error", err),
		)

		return classified
	}

	srv.log(ctx).Info("Password reset sent")

	return nil
}
