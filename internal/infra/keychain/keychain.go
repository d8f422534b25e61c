// Package keychain implements secure local storage on a gocloud.dev blob bucket,
// with every value sealed by a gocloud.dev secrets keeper before it is written.
package keychain

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
	"gocloud.dev/secrets"
	"gocloud.dev/secrets/localsecrets"

	"textura/config"
	"textura/internal/domain/repository"
)

const (
	defaultBucketURL = "mem://"
	keyKeeperScheme  = "base64key"
	objectPrefix     = "keychain/"
	contentType      = "application/octet-stream"
)

// Store is a KeychainRepository backed by a blob bucket and a secrets keeper.
type Store struct {
	bucket *blob.Bucket
	keeper *secrets.Keeper
}

// NewStore wraps an already opened bucket and keeper. The caller keeps ownership of both.
func NewStore(bucket *blob.Bucket, keeper *secrets.Keeper) *Store {
	return &Store{bucket: bucket, keeper: keeper}
}

// Open opens the bucket and keeper named by the given gocloud.dev URLs.
// An empty keeperURL seals values with a random per-process key.
func Open(ctx context.Context, bucketURL, keeperURL string) (*Store, error) {
	if bucketURL == "" {
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open keychain bucket %q", bucketURL)
	}

	keeper, err := openKeeper(ctx, keeperURL)
	if err != nil {
		_ = bucket.Close()

		return nil, err
	}

	return NewStore(bucket, keeper), nil
}

// EphemeralKeeper reports whether keeperURL seals values with a key generated for this
// process only.
func EphemeralKeeper(keeperURL string) bool {
	if keeperURL == "" {
		return true
	}

	u, err := url.Parse(keeperURL)
	if err != nil {
		return false
	}

	return u.Scheme == keyKeeperScheme && u.Host == ""
}

// PersistentBucket reports whether bucketURL keeps objects after the process exits.
func PersistentBucket(bucketURL string) bool {
	if bucketURL == "" {
		bucketURL = defaultBucketURL
	}

	u, err := url.Parse(bucketURL)
	if err != nil {
		return true
	}

	return u.Scheme != "mem"
}

func openKeeper(ctx context.Context, keeperURL string) (*secrets.Keeper, error) {
	if keeperURL == "" {
		key, err := localsecrets.NewRandomKey()
		if err != nil {
			return nil, errors.Wrap(err, "generate keychain key")
		}

		return localsecrets.NewKeeper(key), nil
	}

	keeper, err := secrets.OpenKeeper(ctx, keeperURL)
	if err != nil {
		return nil, errors.Wrap(err, "open keychain keeper")
	}

	return keeper, nil
}

// Get returns the decrypted value stored under key.
func (s *Store) Get(ctx context.Context, key repository.KeychainKey) (string, error) {
	sealed, err := s.bucket.ReadAll(ctx, objectKey(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", repository.ErrKeychainItemNotFound
		}

		return "", errors.Wrapf(err, "read keychain item %s", key)
	}

	plain, err := s.keeper.Decrypt(ctx, sealed)
	if err != nil {
		return "", errors.Wrapf(repository.ErrKeychainItemCorrupt, "decrypt %s: %v", key, err)
	}

	return string(plain), nil
}

// Set seals value and stores it under key.
func (s *Store) Set(ctx context.Context, key repository.KeychainKey, value string) error {
	sealed, err := s.keeper.Encrypt(ctx, []byte(value))
	if err != nil {
		return errors.Wrapf(err, "encrypt keychain item %s", key)
	}

	if err := s.bucket.WriteAll(ctx, objectKey(key), sealed, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "write keychain item %s", key)
	}

	return nil
}

// Delete removes key. A missing key is not an error.
func (s *Store) Delete(ctx context.Context, key repository.KeychainKey) error {
	err := s.bucket.Delete(ctx, objectKey(key))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete keychain item %s", key)
	}

	return nil
}

// Close releases the bucket and the keeper.
func (s *Store) Close() error {
	keeperErr := s.keeper.Close()
	if err := s.bucket.Close(); err != nil {
		return errors.Wrap(err, "close keychain bucket")
	}
	if keeperErr != nil {
		return errors.Wrap(keeperErr, "close keychain keeper")
	}

	return nil
}

func objectKey(key repository.KeychainKey) string {
	return objectPrefix + string(key)
}

// StoreParams holds dependencies for the keychain, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewKeychain opens the configured keychain and closes it on shutdown.
func NewKeychain(params StoreParams) (repository.KeychainRepository, error) {
	var bucketURL, keeperURL string
	if cfg := params.Config.Keychain; cfg != nil {
		bucketURL, keeperURL = cfg.BucketURL, cfg.KeeperURL
	}

	if EphemeralKeeper(keeperURL) {
		if PersistentBucket(bucketURL) {
			params.Logger.Warn("keychain key is generated per process, stored values will not survive a restart",
				slog.String("bucket", bucketURL),
			)
		} else {
			params.Logger.Debug("keychain uses an in-memory bucket with an ephemeral key")
		}
	}

	store, err := Open(params.Ctx, bucketURL, keeperURL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Keychain opened", slog.String("bucket", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing keychain")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the keychain FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewKeychain,
		NewSessionMarkerRepository,
	),
)
