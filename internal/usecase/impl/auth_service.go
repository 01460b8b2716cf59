// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "motion/internal/delivery/context"
	"motion/internal/domain/entity"
	domainerrors "motion/internal/domain/errors"
	"motion/internal/domain/repository"
	"motion/internal/domain/service"
	"motion/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	provider    service.IdentityProvider
	profileRepo repository.ProfileRepository
	cache       repository.SessionCache
	logger      *slog.Logger

	// mu serializes every cache mutation: the session cache and the login
	// history are process-wide state with a single-writer rule, and this
	// service is the single writer.
	mu sync.Mutex
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Provider    service.IdentityProvider
	ProfileRepo repository.ProfileRepository
	Cache       repository.SessionCache
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		provider:    params.Provider,
		profileRepo: params.ProfileRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn authenticates against the identity provider, then runs the
// bookkeeping sequence: local cache, remote profile reconcile, history
// append. Bookkeeping failures after a successful provider sign-in are
// reported as Unknown without rolling the provider session back; the
// sequence is best effort, not a transaction.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*entity.Identity, error) {
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", input.Email))

	session, err := srv.provider.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Sign-in rejected by provider", slog.String("email", input.Email), slog.Any("error", err))

		return nil, mapProviderError(err)
	}

	identity := &entity.Identity{
		ID:          session.UserID,
		Email:       input.Email,
		LastLoginAt: time.Now(),
	}

	if err := srv.completeSignIn(ctx, identity, srv.reconcileProfile); err != nil {
		srv.log(ctx).Error("Sign-in bookkeeping failed", slog.String("identityID", identity.ID), slog.Any("error", err))

		return nil, domainerrors.NewUnknownError(err, "sign-in bookkeeping failed")
	}

	srv.log(ctx).Debug("Sign-in completed", slog.String("identityID", identity.ID))

	return identity, nil
}

// SignUp creates a new provider account and performs the same bookkeeping
// sequence as SignIn, with an unconditional profile create.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.Identity, error) {
	srv.log(ctx).Debug("Starting sign-up", slog.String("email", input.Email))

	session, err := srv.provider.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Sign-up rejected by provider", slog.String("email", input.Email), slog.Any("error", err))

		return nil, mapProviderError(err)
	}

	identity := &entity.Identity{
		ID:          session.UserID,
		Email:       input.Email,
		LastLoginAt: time.Now(),
	}

	if err := srv.completeSignIn(ctx, identity, srv.profileRepo.CreateProfile); err != nil {
		srv.log(ctx).Error("Sign-up bookkeeping failed", slog.String("identityID", identity.ID), slog.Any("error", err))

		return nil, domainerrors.NewUnknownError(err, "sign-up bookkeeping failed")
	}

	srv.log(ctx).Debug("Sign-up completed", slog.String("identityID", identity.ID))

	return identity, nil
}

// completeSignIn runs the shared post-authentication sequence: cache the
// identity locally (overwriting any prior one), write the remote profile via
// writeProfile, and record the email in the login history.
func (srv *authService) completeSignIn(ctx context.Context, identity *entity.Identity, writeProfile func(context.Context, *entity.Identity) error) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.cache.SaveIdentity(ctx, identity); err != nil {
		return errors.Wrap(err, "failed to cache identity locally")
	}

	if err := writeProfile(ctx, identity); err != nil {
		return errors.Wrap(err, "failed to write remote profile")
	}

	if err := srv.appendLoginHistory(ctx, identity.Email); err != nil {
		return errors.Wrap(err, "failed to record login history")
	}

	return nil
}

// reconcileProfile updates the last-login timestamp when the remote profile
// document exists and creates the document when it does not.
func (srv *authService) reconcileProfile(ctx context.Context, identity *entity.Identity) error {
	_, err := srv.profileRepo.GetProfile(ctx, identity.ID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return srv.profileRepo.CreateProfile(ctx, identity)
	}
	if err != nil {
		return errors.Wrap(err, "failed to read remote profile")
	}

	return srv.profileRepo.UpdateLastLogin(ctx, identity.ID, identity.LastLoginAt)
}

// appendLoginHistory adds the email to the history if not already present.
// Caller holds mu.
func (srv *authService) appendLoginHistory(ctx context.Context, email string) error {
	history, err := srv.cache.LoadLoginHistory(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load login history")
	}

	if history.Contains(email) {
		return nil
	}
	history.Append(email)

	return errors.Wrap(srv.cache.SaveLoginHistory(ctx, history), "failed to save login history")
}

// SignOut invalidates the provider session. The local cache and history are
// intentionally kept: they speed up future logins and feed the previous-login
// display.
func (srv *authService) SignOut(ctx context.Context) error {
	srv.log(ctx).Info("Signing out")

	if err := srv.provider.SignOut(ctx); err != nil {
		srv.log(ctx).Error("Sign-out failed", slog.Any("error", err))

		return domainerrors.NewUnknownError(err, "failed to invalidate provider session")
	}

	return nil
}

// CurrentIdentity reconstructs the identity from the live provider session.
// The login timestamp is freshly stamped, not the persisted one.
func (srv *authService) CurrentIdentity(ctx context.Context) (*entity.Identity, error) {
	session, err := srv.provider.CurrentSession(ctx)
	if err != nil {
		return nil, domainerrors.NewUnknownError(err, "failed to read provider session")
	}
	if session == nil {
		return nil, nil
	}

	return &entity.Identity{
		ID:          session.UserID,
		Email:       session.Email,
		LastLoginAt: time.Now(),
	}, nil
}

// PreviousLogins returns a snapshot of the login history in first-seen order.
func (srv *authService) PreviousLogins(ctx context.Context) ([]string, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	history, err := srv.cache.LoadLoginHistory(ctx)
	if err != nil {
		return nil, domainerrors.NewUnknownError(err, "failed to load login history")
	}

	emails := make([]string, len(history.Emails))
	copy(emails, history.Emails)

	return emails, nil
}

// mapProviderError is the centralized mapping from provider error codes to
// the shared taxonomy. Unmapped codes fall into Unknown.
func mapProviderError(err error) error {
	var provErr *service.ProviderError
	if !errors.As(err, &provErr) {
		return domainerrors.NewUnknownError(err, "identity provider failure")
	}

	switch provErr.Code {
	case service.ProviderCodeInvalidPassword,
		service.ProviderCodeInvalidEmail,
		service.ProviderCodeInvalidLoginCredentials:
		return domainerrors.ErrInvalidCredentials.WrapMessage("provider rejected credentials")
	case service.ProviderCodeEmailNotFound:
		return domainerrors.ErrUserNotFound.WrapMessage("no account for email")
	case service.ProviderCodeEmailExists:
		return domainerrors.ErrEmailAlreadyInUse.WrapMessage("account already exists")
	default:
		return domainerrors.NewUnknownError(err, "unmapped provider code "+provErr.Code)
	}
}
