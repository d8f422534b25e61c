package keychain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textura/internal/domain/entity"
	"textura/internal/domain/repository"
)

func TestSessionMarkerRepository_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewSessionMarkerRepository(store)

	marker, err := repo.LoadMarker(ctx)
	require.NoError(t, err)
	assert.Nil(t, marker)

	require.NoError(t, repo.SaveMarker(ctx, entity.SessionMarker{UserID: "u1", Provider: entity.ProviderTypeEmail}))

	marker, err = repo.LoadMarker(ctx)
	require.NoError(t, err)
	require.NotNil(t, marker)
	assert.Equal(t, "u1", marker.UserID)
	assert.Equal(t, entity.ProviderTypeEmail, marker.Provider)

	provider, err := store.Get(ctx, repository.KeychainKeyAuthProvider)
	require.NoError(t, err)
	assert.Equal(t, "email", provider)

	require.NoError(t, repo.ClearMarker(ctx))
	marker, err = repo.LoadMarker(ctx)
	require.NoError(t, err)
	assert.Nil(t, marker)

	_, err = store.Get(ctx, repository.KeychainKeyAuthProvider)
	assert.ErrorIs(t, err, repository.ErrKeychainItemNotFound)
}

func TestSessionMarkerRepository_MissingProviderDefaultsToEmail(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewSessionMarkerRepository(store)

	require.NoError(t, store.Set(ctx, repository.KeychainKeyUserID, "u2"))

	marker, err := repo.LoadMarker(ctx)
	require.NoError(t, err)
	require.NotNil(t, marker)
	assert.Equal(t, entity.ProviderTypeEmail, marker.Provider)
}

func TestSessionMarkerRepository_RejectsEmptyUser(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewSessionMarkerRepository(store)

	assert.Error(t, repo.SaveMarker(context.Background(), entity.SessionMarker{}))
}

func TestSessionMarkerRepository_ClearIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewSessionMarkerRepository(store)

	assert.NoError(t, repo.ClearMarker(context.Background()))
	assert.NoError(t, repo.ClearMarker(context.Background()))
}
