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

// trackingService is the per-run tracking state machine. All session state
// lives behind one mutex; fix delivery runs on its own goroutine and never
// blocks on persistence.
type trackingService struct {
	source     service.LocationSource
	provider   service.IdentityProvider
	sampleRepo repository.SampleRepository
	publisher  service.EventPublisher
	negotiator *authorizationNegotiator
	filter     sampleFilter
	logger     *slog.Logger

	mu         sync.Mutex
	session    entity.TrackingSession
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// TrackingServiceParams holds dependencies for the tracking service, injected by Fx.
type TrackingServiceParams struct {
	fx.In

	Lc         fx.Lifecycle
	Source     service.LocationSource
	Provider   service.IdentityProvider
	SampleRepo repository.SampleRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewTrackingService is the constructor for trackingService.
func NewTrackingService(params TrackingServiceParams) usecase.TrackingUsecase {
	srv := &trackingService{
		source:     params.Source,
		provider:   params.Provider,
		sampleRepo: params.SampleRepo,
		publisher:  params.Publisher,
		negotiator: newAuthorizationNegotiator(params.Source, params.Logger),
		logger:     params.Logger,
		session: entity.TrackingSession{
			State:         entity.TrackingIdle,
			Authorization: entity.AuthorizationNotDetermined,
		},
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			srv.StopTracking(ctx)

			return nil
		},
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *trackingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartTracking runs the idle/stopped -> authorizing -> tracking transition.
// When authorization is already granted the subscription begins immediately;
// when undetermined the negotiator resolves it first; when denied the call
// fails without side effects.
func (srv *trackingService) StartTracking(ctx context.Context) error {
	srv.mu.Lock()
	// Authorizing counts as busy: the check and the transition claim must be
	// one critical section so a second start during the negotiation window
	// cannot race the live subscription.
	if srv.session.Tracking || srv.session.State == entity.TrackingAuthorizing {
		srv.mu.Unlock()

		return nil
	}
	srv.session.State = entity.TrackingAuthorizing
	srv.mu.Unlock()

	if !srv.source.Enabled(ctx) {
		return srv.failStart(ctx, domainerrors.ErrServicesDisabled.WrapMessage("location subsystem is switched off"))
	}

	switch status := srv.source.AuthorizationStatus(); status {
	case entity.AuthorizationGranted:
		// Proceed straight to the subscription.
	case entity.AuthorizationDenied:
		return srv.failStart(ctx, domainerrors.ErrAuthorizationDenied.WrapMessage("permission previously denied"))
	case entity.AuthorizationNotDetermined:
		if err := srv.negotiator.Negotiate(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				// Session torn down mid-negotiation: abandon quietly.
				srv.resetToIdle()

				return errors.WithStack(err)
			}

			return srv.failStart(ctx, err)
		}
	default:
		return srv.failStart(ctx, domainerrors.NewUnknownError(errors.Errorf("unexpected authorization status %q", status), "start tracking"))
	}

	return srv.beginSubscription(ctx)
}

func (srv *trackingService) beginSubscription(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	fixes, err := srv.source.Start(loopCtx)
	if err != nil {
		cancel()

		return srv.failStart(ctx, domainerrors.NewUnknownError(err, "failed to start location updates"))
	}

	done := make(chan struct{})

	srv.mu.Lock()
	srv.session.State = entity.TrackingActive
	srv.session.Authorization = entity.AuthorizationGranted
	srv.session.Tracking = true
	srv.session.LastError = ""
	srv.cancelLoop = cancel
	srv.loopDone = done
	srv.mu.Unlock()

	srv.log(ctx).Info("Tracking started")
	srv.publish(loopCtx, &service.TrackingEvent{
		Type:       service.TrackingEventStarted,
		OccurredAt: time.Now(),
	})

	go srv.consumeFixes(loopCtx, fixes, done)

	return nil
}

// failStart records the failure as the last error (overwriting any pending
// one), publishes it, and parks the machine in the error state. The state is
// transient: the next start attempt clears LastError and renegotiates.
func (srv *trackingService) failStart(ctx context.Context, err error) error {
	srv.mu.Lock()
	srv.session.State = entity.TrackingError
	srv.session.Tracking = false
	srv.session.LastError = err.Error()
	if errors.Is(err, domainerrors.ErrAuthorizationDenied) {
		srv.session.Authorization = entity.AuthorizationDenied
	}
	srv.mu.Unlock()

	srv.log(ctx).Warn("Failed to start tracking", slog.Any("error", err))
	srv.publish(ctx, &service.TrackingEvent{
		Type:       service.TrackingEventError,
		Error:      err.Error(),
		OccurredAt: time.Now(),
	})

	return err
}

func (srv *trackingService) resetToIdle() {
	srv.mu.Lock()
	srv.session.State = entity.TrackingIdle
	srv.session.Tracking = false
	srv.mu.Unlock()
}

// consumeFixes is the delivery loop. Every fix updates the last known
// location unconditionally; qualifying fixes are persisted fire-and-forget
// so the delivery path never blocks on the remote store.
func (srv *trackingService) consumeFixes(ctx context.Context, fixes <-chan service.FixEvent, done chan<- struct{}) {
	defer close(done)

	for event := range fixes {
		if event.Err != nil {
			if errors.Is(event.Err, service.ErrAuthorizationRevoked) {
				srv.handleRevocation(ctx)

				return
			}
			srv.handleDeliveryError(ctx, event.Err)

			continue
		}

		srv.handleFix(ctx, event.Fix)
	}
}

func (srv *trackingService) handleFix(ctx context.Context, fix *entity.Fix) {
	srv.mu.Lock()
	srv.session.LastLocation = fix
	srv.mu.Unlock()

	identity, err := srv.provider.CurrentSession(ctx)
	if err != nil || identity == nil {
		// No authenticated identity: the fix stays on screen but is not
		// persisted.
		return
	}

	sample, ok := srv.filter.Evaluate(fix, identity.UserID)
	if !ok {
		return
	}

	// Capture order is fixed at accept time; completion order across
	// concurrent writes is deliberately unordered.
	go srv.persistSample(ctx, sample)
}

// persistSample writes one sample, at most once, best effort. A dropped
// write is logged and never surfaced to the user mid-tracking.
func (srv *trackingService) persistSample(ctx context.Context, sample *entity.LocationSample) {
	if err := srv.sampleRepo.CreateSample(ctx, sample); err != nil {
		srv.log(ctx).Warn("Dropped sample write",
			slog.String("sampleID", sample.ID),
			slog.Any("error", err))

		return
	}

	srv.publish(ctx, &service.TrackingEvent{
		Type:       service.TrackingEventSampleAccepted,
		IdentityID: sample.IdentityID,
		SampleID:   sample.ID,
		Latitude:   sample.Latitude,
		Longitude:  sample.Longitude,
		Accuracy:   sample.Accuracy,
		OccurredAt: sample.Timestamp,
	})
}

// handleRevocation runs the tracking -> stopped transition forced by an
// external authorization withdrawal, surfacing exactly one
// AuthorizationDenied error.
func (srv *trackingService) handleRevocation(ctx context.Context) {
	revokedErr := domainerrors.ErrAuthorizationDenied.WrapMessage("authorization revoked while tracking")

	srv.source.Stop()

	srv.mu.Lock()
	cancel := srv.cancelLoop
	srv.session.State = entity.TrackingStopped
	srv.session.Tracking = false
	srv.session.Authorization = entity.AuthorizationDenied
	srv.session.LastError = revokedErr.Error()
	srv.cancelLoop = nil
	srv.loopDone = nil
	srv.mu.Unlock()

	// Release the subscription context so its watcher goroutine exits.
	if cancel != nil {
		cancel()
	}

	srv.log(ctx).Warn("Authorization revoked, tracking stopped")
	srv.publish(ctx, &service.TrackingEvent{
		Type:       service.TrackingEventError,
		Error:      revokedErr.Error(),
		OccurredAt: time.Now(),
	})
}

// handleDeliveryError surfaces a hardware/OS delivery failure to the session
// without terminating the stream.
func (srv *trackingService) handleDeliveryError(ctx context.Context, err error) {
	srv.mu.Lock()
	srv.session.LastError = err.Error()
	srv.mu.Unlock()

	srv.log(ctx).Warn("Location delivery error", slog.Any("error", err))
	srv.publish(ctx, &service.TrackingEvent{
		Type:       service.TrackingEventError,
		Error:      err.Error(),
		OccurredAt: time.Now(),
	})
}

// StopTracking halts the subscription and moves to stopped. Idempotent: a
// call on an already quiescent session (idle, or stopped again) changes
// nothing and publishes nothing.
func (srv *trackingService) StopTracking(ctx context.Context) {
	srv.mu.Lock()
	cancel := srv.cancelLoop
	done := srv.loopDone
	srv.cancelLoop = nil
	srv.loopDone = nil
	quiescent := cancel == nil && !srv.session.Tracking &&
		(srv.session.State == entity.TrackingIdle || srv.session.State == entity.TrackingStopped)
	if !quiescent {
		srv.session.State = entity.TrackingStopped
		srv.session.Tracking = false
	}
	srv.mu.Unlock()

	if quiescent {
		return
	}

	srv.source.Stop()
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}

	srv.log(ctx).Info("Tracking stopped")
	srv.publish(ctx, &service.TrackingEvent{
		Type:       service.TrackingEventStopped,
		OccurredAt: time.Now(),
	})
}

// ToggleTracking flips the tracking flag: start when not tracking, stop when
// active. Returns the resulting flag.
func (srv *trackingService) ToggleTracking(ctx context.Context) (bool, error) {
	srv.mu.Lock()
	active := srv.session.Tracking
	srv.mu.Unlock()

	if active {
		srv.StopTracking(ctx)

		return false, nil
	}

	if err := srv.StartTracking(ctx); err != nil {
		return false, err
	}

	return true, nil
}

// Session returns a snapshot copy of the observable session state.
func (srv *trackingService) Session() entity.TrackingSession {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	snapshot := srv.session
	if srv.session.LastLocation != nil {
		fix := *srv.session.LastLocation
		snapshot.LastLocation = &fix
	}

	return snapshot
}

// DailyPath materializes the ordered path for the local-time day window
// containing ref. The result is recomputed fresh on every call; staleness is
// bounded by how often the consumer asks.
func (srv *trackingService) DailyPath(ctx context.Context, ref time.Time) ([]*entity.LocationSample, error) {
	identity, err := srv.provider.CurrentSession(ctx)
	if err != nil {
		return nil, domainerrors.NewUnknownError(err, "failed to read provider session")
	}
	if identity == nil {
		return nil, domainerrors.ErrNoActiveSession.WrapMessage("daily path requires a signed-in identity")
	}

	from, to := dayWindow(ref)

	samples, err := srv.sampleRepo.FindByIdentityAndRange(ctx, identity.UserID, from, to)
	if err != nil {
		return nil, domainerrors.NewUnknownError(err, "daily path query failed")
	}

	return samples, nil
}

// dayWindow computes the half-open local-time interval
// [start-of-day, start-of-next-day) for the reference instant.
func dayWindow(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	return start, start.AddDate(0, 0, 1)
}

// publish sends one event, best effort. Publisher failures never disturb the
// tracking pipeline.
func (srv *trackingService) publish(ctx context.Context, event *service.TrackingEvent) {
	if srv.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.PublishTrackingEvent(ctx, event); err != nil {
		srv.log(ctx).Debug("Failed to publish tracking event",
			slog.String("type", event.Type),
			slog.Any("error", err))
	}
}
