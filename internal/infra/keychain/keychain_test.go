package keychain

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/secrets/localsecrets"

	"textura/config"
	"textura/internal/domain/entity"
	"textura/internal/domain/repository"
)

func newTestStore(t *testing.T) (*Store, *blob.Bucket) {
	t.Helper()

	key, err := localsecrets.NewRandomKey()
	require.NoError(t, err)

	bucket := memblob.OpenBucket(nil)
	keeper := localsecrets.NewKeeper(key)
	t.Cleanup(func() {
		_ = keeper.Close()
		_ = bucket.Close()
	})

	return NewStore(bucket, keeper), bucket
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Set(ctx, repository.KeychainKeyUserID, "user-42"))

	value, err := store.Get(ctx, repository.KeychainKeyUserID)
	require.NoError(t, err)
	assert.Equal(t, "user-42", value)

	require.NoError(t, store.Set(ctx, repository.KeychainKeyUserID, "user-43"))
	value, err = store.Get(ctx, repository.KeychainKeyUserID)
	require.NoError(t, err)
	assert.Equal(t, "user-43", value)
}

func TestStore_CiphertextAtRest(t *testing.T) {
	ctx := context.Background()
	store, bucket := newTestStore(t)

	require.NoError(t, store.Set(ctx, repository.KeychainKeyUserID, "user-42"))

	raw, err := bucket.ReadAll(ctx, "keychain/auth.userId")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.False(t, strings.Contains(string(raw), "user-42"))
}

func TestStore_MissingKey(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.Get(ctx, repository.KeychainKeyAuthProvider)
	assert.ErrorIs(t, err, repository.ErrKeychainItemNotFound)

	// Deleting a missing key is not an error
	assert.NoError(t, store.Delete(ctx, repository.KeychainKeyAuthProvider))
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Set(ctx, repository.KeychainKeyAuthProvider, "email"))
	require.NoError(t, store.Delete(ctx, repository.KeychainKeyAuthProvider))

	_, err := store.Get(ctx, repository.KeychainKeyAuthProvider)
	assert.ErrorIs(t, err, repository.ErrKeychainItemNotFound)
}

func TestStore_WrongKeyIsCorrupt(t *testing.T) {
	ctx := context.Background()
	store, bucket := newTestStore(t)

	require.NoError(t, store.Set(ctx, repository.KeychainKeyUserID, "user-42"))

	otherKey, err := localsecrets.NewRandomKey()
	require.NoError(t, err)
	other := localsecrets.NewKeeper(otherKey)
	t.Cleanup(func() { _ = other.Close() })

	_, err = NewStore(bucket, other).Get(ctx, repository.KeychainKeyUserID)
	assert.ErrorIs(t, err, repository.ErrKeychainItemCorrupt)
}

func TestOpen_URLs(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, "mem://", "base64key://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Set(ctx, repository.KeychainKeyUserID, "user-1"))
	value, err := store.Get(ctx, repository.KeychainKeyUserID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", value)
}

func TestOpen_FileBucket(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := Open(ctx, "file://"+dir, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Set(ctx, repository.KeychainKeyUserID, "user-1"))
	value, err := store.Get(ctx, repository.KeychainKeyUserID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", value)
}

func TestOpen_SurvivesRestart(t *testing.T) {
	ctx := context.Background()

	cfg, err := config.LoadWithEnv[config.Config]("config", "../../../config")
	require.NoError(t, err)
	require.NotNil(t, cfg.Keychain)
	keeperURL := cfg.Keychain.KeeperURL
	require.False(t, EphemeralKeeper(keeperURL), "shipped keeper %q must use a fixed key", keeperURL)
	require.True(t, PersistentBucket(cfg.Keychain.BucketURL))

	bucketURL := "file://" + t.TempDir() + "?create_dir=true"
	marker := entity.SessionMarker{UserID: "user-1", Provider: entity.ProviderTypeEmail}

	first, err := Open(ctx, bucketURL, keeperURL)
	require.NoError(t, err)
	require.NoError(t, NewSessionMarkerRepository(first).SaveMarker(ctx, marker))
	require.NoError(t, first.Close())

	second, err := Open(ctx, bucketURL, keeperURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	loaded, err := NewSessionMarkerRepository(second).LoadMarker(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "user-1", loaded.UserID)
	assert.Equal(t, entity.ProviderTypeEmail, loaded.Provider)
}

func TestOpen_EphemeralKeyLosesValuesOnRestart(t *testing.T) {
	ctx := context.Background()
	bucketURL := "file://" + t.TempDir()

	first, err := Open(ctx, bucketURL, "base64key://")
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, repository.KeychainKeyUserID, "user-1"))
	require.NoError(t, first.Close())

	second, err := Open(ctx, bucketURL, "base64key://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	_, err = second.Get(ctx, repository.KeychainKeyUserID)
	assert.ErrorIs(t, err, repository.ErrKeychainItemCorrupt)
}

func TestEphemeralKeeperAndPersistentBucket(t *testing.T) {
	assert.True(t, EphemeralKeeper(""))
	assert.True(t, EphemeralKeeper("base64key://"))
	assert.False(t, EphemeralKeeper("base64key://g2mTtj31oT1nMjLPFwX5TCHnTWxB6p6Ez2ZjyKYDcL0="))
	assert.False(t, EphemeralKeeper("gcpkms://projects/p/locations/l/keyRings/r/cryptoKeys/k"))

	assert.False(t, PersistentBucket(""))
	assert.False(t, PersistentBucket("mem://"))
	assert.True(t, PersistentBucket("file:///var/lib/textura?create_dir=true"))
	assert.True(t, PersistentBucket("s3://bucket"))
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "nope://bucket", "")
	assert.Error(t, err)
}
