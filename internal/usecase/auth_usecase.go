// Package usecase defines the application-facing interfaces and their
// input/output DTOs.
package usecase

import (
	"context"

	"motion/internal/domain/entity"
)

// SignInInput represents the credentials for an email sign-in.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignUpInput represents the credentials for creating a new account.
type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthUsecase owns the authentication session: sign-in/sign-up/sign-out,
// the local session cache, remote profile reconciliation and the
// login-history set.
type AuthUsecase interface {
	// SignIn authenticates against the identity provider and performs the
	// local-cache, profile-reconcile and history bookkeeping sequence.
	SignIn(ctx context.Context, input *SignInInput) (*entity.Identity, error)

	// SignUp creates a new provider account, then performs the same
	// bookkeeping sequence with an unconditional profile create.
	SignUp(ctx context.Context, input *SignUpInput) (*entity.Identity, error)

	// SignOut invalidates the provider session. The local cache and the
	// login history are kept for faster future logins.
	SignOut(ctx context.Context) error

	// CurrentIdentity reads the active provider session. Returns nil when
	// signed out. The login timestamp is freshly stamped, not the persisted
	// one; callers must not use it for audit purposes.
	CurrentIdentity(ctx context.Context) (*entity.Identity, error)

	// PreviousLogins returns the login-history snapshot in first-seen order.
	PreviousLogins(ctx context.Context) ([]string, error)
}
