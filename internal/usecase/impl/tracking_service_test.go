package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"motion/internal/domain/entity"
	domainerrors "motion/internal/domain/errors"
	"motion/internal/domain/service"
	mockRepo "motion/internal/mocks/repository"
	mockService "motion/internal/mocks/service"
	"motion/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// trackingServiceFixtures holds all test dependencies for tracking service tests.
type trackingServiceFixtures struct {
	service    usecase.TrackingUsecase
	source     *mockService.MockLocationSource
	provider   *mockService.MockIdentityProvider
	sampleRepo *mockRepo.MockSampleRepository
	publisher  *mockService.MockEventPublisher
	events     *eventRecorder
}

// eventRecorder captures published tracking events across goroutines.
type eventRecorder struct {
	mu     sync.Mutex
	events []service.TrackingEvent
}

func (r *eventRecorder) record(event *service.TrackingEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
}

func (r *eventRecorder) countByType(eventType string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, event := range r.events {
		if event.Type == eventType {
			count++
		}
	}

	return count
}

func createTestTrackingService(t *testing.T) trackingServiceFixtures {
	source := mockService.NewMockLocationSource(t)
	provider := mockService.NewMockIdentityProvider(t)
	sampleRepo := mockRepo.NewMockSampleRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	recorder := &eventRecorder{}

	publisher.EXPECT().
		PublishTrackingEvent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, event *service.TrackingEvent) {
			recorder.record(event)
		}).
		Return(nil).
		Maybe()

	svc := NewTrackingService(TrackingServiceParams{
		Lc:         fxtest.NewLifecycle(t),
		Source:     source,
		Provider:   provider,
		SampleRepo: sampleRepo,
		Publisher:  publisher,
		Logger:     newDiscardLogger(),
	})

	return trackingServiceFixtures{
		service:    svc,
		source:     source,
		provider:   provider,
		sampleRepo: sampleRepo,
		publisher:  publisher,
		events:     recorder,
	}
}

func TestTrackingService_StartTracking_BeginsWhenGranted(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	events := make(chan service.FixEvent)
	fx.source.EXPECT().Enabled(mock.Anything).Return(true)
	fx.source.EXPECT().AuthorizationStatus().Return(entity.AuthorizationGranted)
	fx.source.EXPECT().Start(mock.Anything).Return((<-chan service.FixEvent)(events), nil)
	fx.source.EXPECT().Stop().Return().Maybe()

	err := fx.service.StartTracking(ctx)

	require.NoError(t, err)

	session := fx.service.Session()
	assert.Equal(t, entity.TrackingActive, session.State)
	assert.True(t, session.Tracking)
	assert.Equal(t, entity.AuthorizationGranted, session.Authorization)
	assert.Empty(t, session.LastError)
	assert.Equal(t, 1, fx.events.countByType(service.TrackingEventStarted))

	close(events)
	fx.service.StopTracking(ctx)
}

func TestTrackingService_StartTracking_NoOpWhenAlreadyTracking(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	events := make(chan service.FixEvent)
	fx.source.EXPECT().Enabled(mock.Anything).Return(true)
	fx.source.EXPECT().AuthorizationStatus().Return(entity.AuthorizationGranted)
	fx.source.EXPECT().Start(mock.Anything).Return((<-chan service.FixEvent)(events), nil).Once()
	fx.source.EXPECT().Stop().Return().Maybe()

	require.NoError(t, fx.service.StartTracking(ctx))
	require.NoError(t, fx.service.StartTracking(ctx))

	assert.Equal(t, 1, fx.events.countByType(service.TrackingEventStarted))

	close(events)
	fx.service.StopTracking(ctx)
}

func TestTrackingService_StartTracking_ConcurrentStartsShareOneSubscription(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	events := make(chan service.FixEvent)
	fx.source.EXPECT().Enabled(mock.Anything).Return(true)
	fx.source.EXPECT().AuthorizationStatus().Return(entity.AuthorizationGranted)
	fx.source.EXPECT().Start(mock.Anything).Return((<-chan service.FixEvent)(events), nil).Once()
	fx.source.EXPECT().Stop().Return()

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = fx.service.StartTracking(ctx)
		}()
	}
	wg.Wait()

	// The loser of the race must observe the winner's claim and back off
	// instead of failing the live session with "subscription already active".
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	session := fx.service.Session()
	assert.Equal(t, entity.TrackingActive, session.State)
	assert.True(t, session.Tracking)
	assert.Empty(t, session.LastError)
	assert.Equal(t, 1, fx.events.countByType(service.TrackingEventStarted))

	close(events)
	fx.service.StopTracking(ctx)
}

func TestTrackingService_StartTracking_DeniedFailsWithoutSubscription(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.source.EXPECT().Enabled(mock.Anything).Return(true)
	fx.source.EXPECT().AuthorizationStatus().Return(entity.AuthorizationDenied)

	err := fx.service.StartTracking(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthorizationDenied)

	session := fx.service.Session()
	assert.Equal(t, entity.TrackingError, session.State)
	assert.False(t, session.Tracking)
	assert.Equal(t, entity.AuthorizationDenied, session.Authorization)
	assert.NotEmpty(t, session.LastError)
	assert.Equal(t, 1, fx.events.countByType(service.TrackingEventError))
}

func TestTrackingService_StartTracking_DisabledSubsystem(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.source.EXPECT().Enabled(mock.Anything).Return(false)

	err := fx.service.StartTracking(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrServicesDisabled)
	assert.Equal(t, entity.TrackingError, fx.service.Session().State)
}

func TestTrackingService_StartTracking_RetryAfterFailureClearsLastError(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	events := make(chan service.FixEvent)
	fx.source.EXPECT().Enabled(mock.Anything).Return(false).Once()
	fx.source.EXPECT().Enabled(mock.Anything).Return(true)
	fx.source.EXPECT().AuthorizationStatus().Return(entity.AuthorizationGranted)
	fx.source.EXPECT().Start(mock.Anything).Return((<-chan service.FixEvent)(events), nil)
	fx.source.EXPECT().Stop().Return().Maybe()

	require.Error(t, fx.service.StartTracking(ctx))
	assert.NotEmpty(t, fx.service.Session().LastError)

	require.NoError(t, fx.service.StartTracking(ctx))
	assert.Empty(t, fx.service.Session().LastError)

	close(events)
	fx.service.StopTracking(ctx)
}

func TestTrackingService_StopTracking_Idempotent(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	events := make(chan service.FixEvent)
	fx.source.EXPECT().Enabled(mock.Anything).Return(true)
	fx.source.EXPECT().AuthorizationStatus().Return(entity.AuthorizationGranted)
	fx.source.EXPECT().Start(mock.Anything).Return((<-chan service.FixEvent)(events), nil)
	fx.source.EXPECT().Stop().Return()

	require.NoError(t, fx.service.StartTracking(ctx))
	close(events)

	fx.service.StopTracking(ctx)
	first := fx.service.Session()

	fx.service.StopTracking(ctx)
	second := fx.service.Session()

	assert.Equal(t, entity.TrackingStopped, first.State)
	assert.Equal(t, first.State, second.State)
	assert.Equal(t, first.Tracking, second.Tracking)
	assert.Equal(t, 1, fx.events.countByType(service.TrackingEventStopped))
}

func TestTrackingService_StopTracking_NoOpWhileIdle(t *testing.T) {
	fx := createTestTrackingService(t)

	// No subscription ever existed: stop must neither touch the source nor
	// announce a stop that did not happen.
	fx.service.StopTracking(context.Background())

	session := fx.service.Session()
	assert.Equal(t, entity.TrackingIdle, session.State)
	assert.False(t, session.Tracking)
	assert.Equal(t, 0, fx.events.countByType(service.TrackingEventStopped))
}

func TestTrackingService_Revocation_StopsWithSingleDeniedError(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	events := make(chan service.FixEvent, 1)
	fx.source.EXPECT().Enabled(mock.Anything).Return(true)
	fx.source.EXPECT().AuthorizationStatus().Return(entity.AuthorizationGranted)
	fx.source.EXPECT().Start(mock.Anything).Return((<-chan service.FixEvent)(events), nil)
	fx.source.EXPECT().Stop().Return()

	require.NoError(t, fx.service.StartTracking(ctx))

	events <- service.FixEvent{Err: service.ErrAuthorizationRevoked}

	require.Eventually(t, func() bool {
		return fx.service.Session().State == entity.TrackingStopped
	}, time.Second, 5*time.Millisecond)

	session := fx.service.Session()
	assert.False(t, session.Tracking)
	assert.Equal(t, entity.AuthorizationDenied, session.Authorization)
	assert.NotEmpty(t, session.LastError)
	assert.Equal(t, 1, fx.events.countByType(service.TrackingEventError))
}

func TestTrackingService_Revocation_CancelsSubscriptionContext(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	var subscriptionCtx context.Context
	events := make(chan service.FixEvent, 1)
	fx.source.EXPECT().Enabled(mock.Anything).Return(true)
	fx.source.EXPECT().AuthorizationStatus().Return(entity.AuthorizationGranted)
	fx.source.EXPECT().Start(mock.Anything).
		Run(func(ctx context.Context) { subscriptionCtx = ctx }).
		Return((<-chan service.FixEvent)(events), nil)
	fx.source.EXPECT().Stop().Return()

	require.NoError(t, fx.service.StartTracking(ctx))
	require.NotNil(t, subscriptionCtx)
	require.NoError(t, subscriptionCtx.Err())

	events <- service.FixEvent{Err: service.ErrAuthorizationRevoked}

	// The subscription context must be released, not just forgotten, or the
	// source's watcher goroutine leaks on every revocation.
	require.Eventually(t, func() bool {
		return subscriptionCtx.Err() != nil
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, entity.TrackingStopped, fx.service.Session().State)
}

func TestTrackingService_DeliveryError_DoesNotStopTracking(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	events := make(chan service.FixEvent, 1)
	fx.source.EXPECT().Enabled(mock.Anything).Return(true)
	fx.source.EXPECT().AuthorizationStatus().Return(entity.AuthorizationGranted)
	fx.source.EXPECT().Start(mock.Anything).Return((<-chan service.FixEvent)(events), nil)
	fx.source.EXPECT().Stop().Return()

	require.NoError(t, fx.service.StartTracking(ctx))

	events <- service.FixEvent{Err: assert.AnError}

	require.Eventually(t, func() bool {
		return fx.service.Session().LastError != ""
	}, time.Second, 5*time.Millisecond)

	assert.True(t, fx.service.Session().Tracking)
	assert.Equal(t, entity.TrackingActive, fx.service.Session().State)

	close(events)
	fx.service.StopTracking(ctx)
}

func TestTrackingService_HandleFix_PersistsQualifyingSample(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	events := make(chan service.FixEvent, 2)
	fx.source.EXPECT().Enabled(mock.Anything).Return(true)
	fx.source.EXPECT().AuthorizationStatus().Return(entity.AuthorizationGranted)
	fx.source.EXPECT().Start(mock.Anything).Return((<-chan service.FixEvent)(events), nil)
	fx.source.EXPECT().Stop().Return()
	fx.provider.EXPECT().
		CurrentSession(mock.Anything).
		Return(&service.ProviderSession{UserID: "uid-1", Email: "user@example.com"}, nil)

	var persisted sync.Map
	fx.sampleRepo.EXPECT().
		CreateSample(mock.Anything, mock.AnythingOfType("*entity.LocationSample")).
		Run(func(ctx context.Context, sample *entity.LocationSample) {
			persisted.Store(sample.ID, sample)
		}).
		Return(nil)

	require.NoError(t, fx.service.StartTracking(ctx))

	now := time.Now()
	events <- service.FixEvent{Fix: &entity.Fix{Latitude: 25.0, Longitude: 121.5, Accuracy: 10, Timestamp: now}}

	require.Eventually(t, func() bool {
		count := 0
		persisted.Range(func(any, any) bool { count++; return true })

		return count == 1
	}, time.Second, 5*time.Millisecond)

	session := fx.service.Session()
	require.NotNil(t, session.LastLocation)
	assert.Equal(t, 25.0, session.LastLocation.Latitude)

	close(events)
	fx.service.StopTracking(ctx)
}

func TestTrackingService_HandleFix_CoarseFixUpdatesLastLocationOnly(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	events := make(chan service.FixEvent, 1)
	fx.source.EXPECT().Enabled(mock.Anything).Return(true)
	fx.source.EXPECT().AuthorizationStatus().Return(entity.AuthorizationGranted)
	fx.source.EXPECT().Start(mock.Anything).Return((<-chan service.FixEvent)(events), nil)
	fx.source.EXPECT().Stop().Return()
	fx.provider.EXPECT().
		CurrentSession(mock.Anything).
		Return(&service.ProviderSession{UserID: "uid-1"}, nil)

	require.NoError(t, fx.service.StartTracking(ctx))

	events <- service.FixEvent{Fix: &entity.Fix{Latitude: 24.0, Longitude: 120.0, Accuracy: 50, Timestamp: time.Now()}}

	require.Eventually(t, func() bool {
		return fx.service.Session().LastLocation != nil
	}, time.Second, 5*time.Millisecond)

	// No CreateSample expectation was set: a coarse fix must never reach the
	// repository.
	assert.Equal(t, 24.0, fx.service.Session().LastLocation.Latitude)

	close(events)
	fx.service.StopTracking(ctx)
}

func TestTrackingService_ToggleTracking_FlipsState(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	events := make(chan service.FixEvent)
	fx.source.EXPECT().Enabled(mock.Anything).Return(true)
	fx.source.EXPECT().AuthorizationStatus().Return(entity.AuthorizationGranted)
	fx.source.EXPECT().Start(mock.Anything).Return((<-chan service.FixEvent)(events), nil)
	fx.source.EXPECT().Stop().Return()

	tracking, err := fx.service.ToggleTracking(ctx)
	require.NoError(t, err)
	assert.True(t, tracking)

	close(events)

	tracking, err = fx.service.ToggleTracking(ctx)
	require.NoError(t, err)
	assert.False(t, tracking)
	assert.Equal(t, entity.TrackingStopped, fx.service.Session().State)
}

func TestTrackingService_DailyPath_RequiresSession(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.provider.EXPECT().CurrentSession(ctx).Return(nil, nil)

	_, err := fx.service.DailyPath(ctx, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveSession)
}

func TestTrackingService_DailyPath_QueriesLocalDayWindow(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	zone := time.FixedZone("UTC+8", 8*3600)
	ref := time.Date(2026, time.March, 15, 14, 30, 0, 0, zone)
	expected := []*entity.LocationSample{
		{ID: "s1", IdentityID: "uid-1"},
		{ID: "s2", IdentityID: "uid-1"},
	}

	fx.provider.EXPECT().
		CurrentSession(ctx).
		Return(&service.ProviderSession{UserID: "uid-1"}, nil)
	fx.sampleRepo.EXPECT().
		FindByIdentityAndRange(ctx, "uid-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, identityID string, from time.Time, to time.Time) {
			assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, zone), from)
			assert.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, zone), to)
		}).
		Return(expected, nil)

	samples, err := fx.service.DailyPath(ctx, ref)

	require.NoError(t, err)
	assert.Equal(t, expected, samples)
}

func TestDayWindow_HalfOpenInterval(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*3600)
	ref := time.Date(2026, time.January, 1, 23, 59, 59, 0, zone)

	from, to := dayWindow(ref)

	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, zone), from)
	assert.Equal(t, time.Date(2026, time.January, 2, 0, 0, 0, 0, zone), to)
	assert.Equal(t, 24*time.Hour, to.Sub(from))
}
