// Package service defines the interfaces for external collaborators the
// engine depends on: the identity provider, the location subsystem and the
// event publisher.
package service

import (
	"context"
	"fmt"
)

// Provider error codes surfaced by the identity provider boundary. The
// centralized taxonomy mapping in the auth session controller consumes these.
const (
	ProviderCodeInvalidPassword         = "INVALID_PASSWORD"
	ProviderCodeInvalidEmail            = "INVALID_EMAIL"
	ProviderCodeInvalidLoginCredentials = "INVALID_LOGIN_CREDENTIALS"
	ProviderCodeEmailNotFound           = "EMAIL_NOT_FOUND"
	ProviderCodeEmailExists             = "EMAIL_EXISTS"
)

// ProviderError carries the raw error code returned by the identity
// provider. Codes the mapping does not recognize fall into Unknown.
type ProviderError struct {
	Code string
	Err  error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("identity provider error %s: %v", e.Code, e.Err)
	}

	return fmt.Sprintf("identity provider error %s", e.Code)
}

// Unwrap exposes the underlying cause.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ProviderSession is the provider's view of an authenticated session.
type ProviderSession struct {
	UserID string // Provider-assigned unique user id.
	Email  string // Email the session was established with.
}

// IdentityProvider is the boundary to the remote identity provider:
// email+password sign-in/sign-up, session invalidation and a current-session
// read. Failures carry provider codes via *ProviderError where available.
type IdentityProvider interface {
	// SignIn authenticates an existing account.
	SignIn(ctx context.Context, email, password string) (*ProviderSession, error)

	// SignUp creates a new account and signs it in.
	SignUp(ctx context.Context, email, password string) (*ProviderSession, error)

	// SignOut invalidates the current session. Safe to call without one.
	SignOut(ctx context.Context) error

	// CurrentSession returns the active session, or nil when signed out.
	CurrentSession(ctx context.Context) (*ProviderSession, error)
}
