// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"motion/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when an identity's
// remote profile document does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations on the remote profile documents
// (`users/{id}`). The application layer depends on this interface, not the
// concrete document store.
type ProfileRepository interface {
	// GetProfile retrieves the profile document for an identity.
	// Returns ErrProfileNotFound when no document exists.
	GetProfile(ctx context.Context, identityID string) (*entity.Identity, error)

	// CreateProfile creates the profile document for an identity,
	// overwriting any existing document with the same id.
	CreateProfile(ctx context.Context, identity *entity.Identity) error

	// UpdateLastLogin updates only the last-login timestamp of an existing
	// profile document.
	UpdateLastLogin(ctx context.Context, identityID string, lastLogin time.Time) error
}
