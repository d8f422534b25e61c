package keychain

import (
	"context"

	"github.com/pkg/errors"

	"textura/internal/domain/entity"
	"textura/internal/domain/repository"
)

// sessionMarkerRepository stores the session marker as two keychain items.
type sessionMarkerRepository struct {
	keychain repository.KeychainRepository
}

// NewSessionMarkerRepository creates a marker repository on top of a keychain.
func NewSessionMarkerRepository(keychain repository.KeychainRepository) repository.SessionMarkerRepository {
	return &sessionMarkerRepository{keychain: keychain}
}

func (r *sessionMarkerRepository) SaveMarker(ctx context.Context, marker entity.SessionMarker) error {
	if marker.UserID == "" {
		return errors.New("session marker requires a user id")
	}

	if err := r.keychain.Set(ctx, repository.KeychainKeyUserID, marker.UserID); err != nil {
		return errors.Wrap(err, "save session marker")
	}

	provider := marker.Provider
	if provider == "" {
		provider = entity.ProviderTypeEmail
	}
	if err := r.keychain.Set(ctx, repository.KeychainKeyAuthProvider, string(provider)); err != nil {
		return errors.Wrap(err, "save session marker provider")
	}

	return nil
}

// LoadMarker returns nil when no user id is stored. A missing provider tag reads as email.
func (r *sessionMarkerRepository) LoadMarker(ctx context.Context) (*entity.SessionMarker, error) {
	userID, err := r.keychain.Get(ctx, repository.KeychainKeyUserID)
	if errors.Is(err, repository.ErrKeychainItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load session marker")
	}
	if userID == "" {
		return nil, nil
	}

	provider, err := r.keychain.Get(ctx, repository.KeychainKeyAuthProvider)
	switch {
	case errors.Is(err, repository.ErrKeychainItemNotFound):
		provider = string(entity.ProviderTypeEmail)
	case err != nil:
		return nil, errors.Wrap(err, "load session marker provider")
	}

	return &entity.SessionMarker{
		UserID:   userID,
		Provider: entity.ProviderType(provider),
	}, nil
}

// ClearMarker deletes both items, even if the first delete fails.
func (r *sessionMarkerRepository) ClearMarker(ctx context.Context) error {
	userErr := r.keychain.Delete(ctx, repository.KeychainKeyUserID)
	providerErr := r.keychain.Delete(ctx, repository.KeychainKeyAuthProvider)

	if userErr != nil {
		return errors.Wrap(userErr, "clear session marker")
	}
	if providerErr != nil {
		return errors.Wrap(providerErr, "clear session marker provider")
	}

	return nil
}
