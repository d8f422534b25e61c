// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"textura/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for local secure storage.
var (
	// ErrKeychainItemNotFound is returned when no value is stored under a key.
	ErrKeychainItemNotFound = errors.New("keychain item not found")
	// ErrKeychainItemCorrupt is returned when a stored value cannot be opened.
	ErrKeychainItemCorrupt = errors.New("keychain item corrupt")
)

// KeychainKey names one secure storage entry.
type KeychainKey string

const (
	// KeychainKeyUserID stores the id of the last authenticated user.
	KeychainKeyUserID KeychainKey = "auth.userId"
	// KeychainKeyAuthProvider stores the provider tag of the last authenticated user.
	KeychainKeyAuthProvider KeychainKey = "auth.provider"
)

// KeychainRepository is string-valued secure key-value storage, private to the running application.
type KeychainRepository interface {
	// Get returns the value stored under key, or ErrKeychainItemNotFound.
	Get(ctx context.Context, key KeychainKey) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key KeychainKey, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key KeychainKey) error
}

// SessionMarkerRepository persists the local "a user is logged in" marker.
// Only the auth engine writes it.
type SessionMarkerRepository interface {
	// SaveMarker persists the marker, replacing any previous one.
	SaveMarker(ctx context.Context, marker entity.SessionMarker) error

	// LoadMarker returns the persisted marker, or nil when none is stored.
	LoadMarker(ctx context.Context) (*entity.SessionMarker, error)

	// ClearMarker deletes the persisted marker.
	ClearMarker(ctx context.Context) error
}
