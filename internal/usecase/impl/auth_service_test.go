package impl

import (
	"context"
	"testing"

	"motion/internal/domain/entity"
	domainerrors "motion/internal/domain/errors"
	"motion/internal/domain/repository"
	"motion/internal/domain/service"
	mockRepo "motion/internal/mocks/repository"
	mockService "motion/internal/mocks/service"
	"motion/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service     usecase.AuthUsecase
	provider    *mockService.MockIdentityProvider
	profileRepo *mockRepo.MockProfileRepository
	cache       *mockRepo.MockSessionCache
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	provider := mockService.NewMockIdentityProvider(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	cache := mockRepo.NewMockSessionCache(t)

	svc := NewAuthService(AuthServiceParams{
		Provider:    provider,
		ProfileRepo: profileRepo,
		Cache:       cache,
		Logger:      newDiscardLogger(),
	})

	return authServiceFixtures{
		service:     svc,
		provider:    provider,
		profileRepo: profileRepo,
		cache:       cache,
	}
}

func TestAuthService_SignIn_UpdatesExistingProfile(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignInInput{Email: "user@example.com", Password: "secret123"}

	fx.provider.EXPECT().
		SignIn(ctx, "user@example.com", "secret123").
		Return(&service.ProviderSession{UserID: "uid-1", Email: "user@example.com"}, nil)
	fx.cache.EXPECT().
		SaveIdentity(ctx, mock.AnythingOfType("*entity.Identity")).
		Return(nil)
	fx.profileRepo.EXPECT().
		GetProfile(ctx, "uid-1").
		Return(&entity.Identity{ID: "uid-1", Email: "user@example.com"}, nil)
	fx.profileRepo.EXPECT().
		UpdateLastLogin(ctx, "uid-1", mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.cache.EXPECT().
		LoadLoginHistory(ctx).
		Return(&entity.LoginHistory{Emails: []string{"user@example.com"}}, nil)

	identity, err := fx.service.SignIn(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.ID)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.False(t, identity.LastLoginAt.IsZero())
}

func TestAuthService_SignIn_CreatesMissingProfileAndRecordsHistory(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignInInput{Email: "new@example.com", Password: "secret123"}

	fx.provider.EXPECT().
		SignIn(ctx, "new@example.com", "secret123").
		Return(&service.ProviderSession{UserID: "uid-2", Email: "new@example.com"}, nil)
	fx.cache.EXPECT().
		SaveIdentity(ctx, mock.AnythingOfType("*entity.Identity")).
		Return(nil)
	fx.profileRepo.EXPECT().
		GetProfile(ctx, "uid-2").
		Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().
		CreateProfile(ctx, mock.AnythingOfType("*entity.Identity")).
		Return(nil)
	fx.cache.EXPECT().
		LoadLoginHistory(ctx).
		Return(&entity.LoginHistory{Emails: []string{"old@example.com"}}, nil)
	fx.cache.EXPECT().
		SaveLoginHistory(ctx, mock.AnythingOfType("*entity.LoginHistory")).
		Run(func(ctx context.Context, history *entity.LoginHistory) {
			assert.Equal(t, []string{"old@example.com", "new@example.com"}, history.Emails)
		}).
		Return(nil)

	_, err := fx.service.SignIn(ctx, input)

	require.NoError(t, err)
}

func TestAuthService_SignIn_MapsProviderCodes(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr *domainerrors.BaseError
	}{
		{name: "invalid password", code: service.ProviderCodeInvalidPassword, wantErr: domainerrors.ErrInvalidCredentials},
		{name: "invalid email", code: service.ProviderCodeInvalidEmail, wantErr: domainerrors.ErrInvalidCredentials},
		{name: "invalid login credentials", code: service.ProviderCodeInvalidLoginCredentials, wantErr: domainerrors.ErrInvalidCredentials},
		{name: "email not found", code: service.ProviderCodeEmailNotFound, wantErr: domainerrors.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()

			fx.provider.EXPECT().
				SignIn(ctx, "user@example.com", "secret123").
				Return(nil, &service.ProviderError{Code: tt.code, Err: errors.New("rejected")})

			_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "user@example.com", Password: "secret123"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_SignIn_UnmappedCodeFallsIntoUnknown(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().
		SignIn(ctx, "user@example.com", "secret123").
		Return(nil, &service.ProviderError{Code: "TOO_MANY_ATTEMPTS_TRY_LATER", Err: errors.New("throttled")})

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "user@example.com", Password: "secret123"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNKNOWN", appErr.ErrorCode())
}

func TestAuthService_SignIn_BookkeepingFailureReturnsUnknown(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().
		SignIn(ctx, "user@example.com", "secret123").
		Return(&service.ProviderSession{UserID: "uid-1", Email: "user@example.com"}, nil)
	fx.cache.EXPECT().
		SaveIdentity(ctx, mock.AnythingOfType("*entity.Identity")).
		Return(errors.New("disk full"))

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "user@example.com", Password: "secret123"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNKNOWN", appErr.ErrorCode())
}

func TestAuthService_SignUp_CreatesProfileUnconditionally(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().
		SignUp(ctx, "new@example.com", "secret123").
		Return(&service.ProviderSession{UserID: "uid-3", Email: "new@example.com"}, nil)
	fx.cache.EXPECT().
		SaveIdentity(ctx, mock.AnythingOfType("*entity.Identity")).
		Return(nil)
	fx.profileRepo.EXPECT().
		CreateProfile(ctx, mock.AnythingOfType("*entity.Identity")).
		Return(nil)
	fx.cache.EXPECT().
		LoadLoginHistory(ctx).
		Return(&entity.LoginHistory{}, nil)
	fx.cache.EXPECT().
		SaveLoginHistory(ctx, mock.AnythingOfType("*entity.LoginHistory")).
		Return(nil)

	identity, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "new@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "uid-3", identity.ID)
}

func TestAuthService_SignUp_EmailExistsMapsToConflict(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().
		SignUp(ctx, "taken@example.com", "secret123").
		Return(nil, &service.ProviderError{Code: service.ProviderCodeEmailExists, Err: errors.New("exists")})

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "taken@example.com", Password: "secret123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
}

func TestAuthService_SignOut_KeepsLocalCache(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().SignOut(ctx).Return(nil)

	err := fx.service.SignOut(ctx)

	require.NoError(t, err)
	// No cache expectations were set: sign-out must not touch the local
	// cache or the login history.
}

func TestAuthService_CurrentIdentity_NilWhenSignedOut(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().CurrentSession(ctx).Return(nil, nil)

	identity, err := fx.service.CurrentIdentity(ctx)

	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestAuthService_PreviousLogins_ReturnsSnapshotCopy(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	history := &entity.LoginHistory{Emails: []string{"a@example.com", "b@example.com"}}
	fx.cache.EXPECT().LoadLoginHistory(ctx).Return(history, nil)

	emails, err := fx.service.PreviousLogins(ctx)

	require.NoError(t, err)
	require.Equal(t, []string{"a@example.com", "b@example.com"}, emails)

	emails[0] = "mutated@example.com"
	assert.Equal(t, "a@example.com", history.Emails[0])
}
