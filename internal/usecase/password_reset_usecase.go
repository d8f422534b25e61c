package usecase

import "context"

// PasswordResetUsecase asks the identity provider to mail a password reset link.
type PasswordResetUsecase interface {
	SendPasswordReset(ctx context.Context, email string) error
}
