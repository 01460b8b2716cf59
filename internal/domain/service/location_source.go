package service

import (
	"context"
	"errors"

	"motion/internal/domain/entity"
)

// ErrAuthorizationRevoked is delivered on the subscription when the platform
// withdraws a previously granted permission while tracking is active.
var ErrAuthorizationRevoked = errors.New("location authorization revoked")

// FixEvent is one delivery from the location subsystem: either a fix or a
// delivery error, never both. Errors do not terminate the subscription.
type FixEvent struct {
	Fix *entity.Fix
	Err error
}

// LocationSource is the boundary to the platform location subsystem. The
// subscription applies a minimum-displacement filter and best-available
// accuracy preference configured once at subscription start; authorization
// state is owned by the platform and only read here.
type LocationSource interface {
	// Enabled reports whether the location subsystem is switched on at all.
	Enabled(ctx context.Context) bool

	// AuthorizationStatus reads the current permission state. The value is
	// eventually consistent with the permission dialog.
	AuthorizationStatus() entity.AuthorizationStatus

	// RequestAuthorization asks the platform to prompt the user. The
	// resulting state change is observed asynchronously via
	// AuthorizationStatus.
	RequestAuthorization(ctx context.Context) error

	// Start begins continuous delivery on the returned channel. The channel
	// is closed when the subscription stops.
	Start(ctx context.Context) (<-chan FixEvent, error)

	// Stop halts delivery. Idempotent.
	Stop()
}
