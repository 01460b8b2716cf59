package repository

import (
	"context"
	"errors"

	"motion/internal/domain/entity"
)

// ErrIdentityNotCached is returned when no identity blob has been stored yet.
var ErrIdentityNotCached = errors.New("no cached identity")

// SessionCache is the local key-value boundary: a serialized current-identity
// blob and the login-history list, both surviving process restarts.
//
// Single-writer rule: only the auth session controller mutates the cache;
// every other component reads snapshot copies handed out by it.
type SessionCache interface {
	// SaveIdentity stores the current identity, overwriting any prior one.
	// At most one identity is cached at a time.
	SaveIdentity(ctx context.Context, identity *entity.Identity) error

	// LoadIdentity returns the cached identity, or ErrIdentityNotCached.
	LoadIdentity(ctx context.Context) (*entity.Identity, error)

	// SaveLoginHistory stores the full login-history list.
	SaveLoginHistory(ctx context.Context, history *entity.LoginHistory) error

	// LoadLoginHistory returns the stored history. A missing history is not
	// an error; an empty history is returned instead.
	LoadLoginHistory(ctx context.Context) (*entity.LoginHistory, error)
}
