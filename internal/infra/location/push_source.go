// Package location implements the location-subsystem boundary as a push
// source fed by the device over the delivery layer. The subscription applies
// the fixed 10 m minimum-displacement filter at intake, mirroring the
// platform subscription this engine stands in for.
package location

import (
	"context"
	"log/slog"
	"sync"

	"motion/config"
	"motion/internal/domain/entity"
	"motion/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	defaultMinDisplacementMeters = 10.0

	// eventBufferSize bounds the delivery channel so a stalled consumer
	// sheds fixes instead of blocking the intake path.
	eventBufferSize = 64
)

// PushSource is the concrete LocationSource. Authorization state and the
// enabled flag are set externally by the device and only read by the engine.
type PushSource struct {
	logger          *slog.Logger
	minDisplacement float64

	mu        sync.Mutex
	enabled   bool
	status    entity.AuthorizationStatus
	prompted  bool
	running   bool
	events    chan service.FixEvent
	lastPoint *orb.Point
}

// NewPushSource creates the source with the configured displacement filter.
func NewPushSource(cfg *config.Config, logger *slog.Logger) *PushSource {
	minDisplacement := defaultMinDisplacementMeters
	enabled := true
	if cfg.Location != nil {
		if cfg.Location.MinDisplacementMeters > 0 {
			minDisplacement = cfg.Location.MinDisplacementMeters
		}
		enabled = cfg.Location.Enabled
	}

	return &PushSource{
		logger:          logger,
		minDisplacement: minDisplacement,
		enabled:         enabled,
		status:          entity.AuthorizationNotDetermined,
	}
}

// Enabled reports whether the location subsystem is switched on.
func (s *PushSource) Enabled(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enabled
}

// SetEnabled flips the subsystem switch, as reported by the device.
func (s *PushSource) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

// AuthorizationStatus reads the current permission state.
func (s *PushSource) AuthorizationStatus() entity.AuthorizationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

// SetAuthorizationStatus records the device-reported permission state. A
// transition away from granted while the subscription is live delivers a
// revocation event on the stream.
func (s *PushSource) SetAuthorizationStatus(status entity.AuthorizationStatus) {
	s.mu.Lock()
	revoked := s.running && s.status == entity.AuthorizationGranted && status == entity.AuthorizationDenied
	s.status = status
	events := s.events
	s.mu.Unlock()

	if revoked && events != nil {
		s.deliver(events, service.FixEvent{Err: service.ErrAuthorizationRevoked})
	}
}

// RequestAuthorization records that the prompt was issued. The decision
// arrives asynchronously via SetAuthorizationStatus and may lag the dialog.
func (s *PushSource) RequestAuthorization(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return errors.New("location subsystem is disabled")
	}
	// The dialog only ever shows while the status is undetermined; repeat
	// requests after a decision are no-ops.
	if s.prompted || s.status != entity.AuthorizationNotDetermined {
		return nil
	}
	s.prompted = true
	s.logger.Info("authorization prompt issued")

	return nil
}

// Start opens the fix stream. The displacement filter resets so the first
// fix of a new subscription always passes.
func (s *PushSource) Start(ctx context.Context) (<-chan service.FixEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return nil, errors.New("location subsystem is disabled")
	}
	if s.running {
		return nil, errors.New("subscription already active")
	}

	s.events = make(chan service.FixEvent, eventBufferSize)
	s.lastPoint = nil
	s.running = true

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return s.events, nil
}

// Stop halts delivery and closes the stream. Idempotent.
func (s *PushSource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	close(s.events)
	s.events = nil
}

// Ingest feeds one device-reported fix into the subscription. Returns true
// when the fix was delivered downstream; fixes are dropped while the
// subscription is closed, permission is not granted, or the fix moved less
// than the minimum displacement.
func (s *PushSource) Ingest(fix entity.Fix) bool {
	s.mu.Lock()

	if !s.running || s.status != entity.AuthorizationGranted {
		s.mu.Unlock()

		return false
	}

	point := orb.Point{fix.Longitude, fix.Latitude}
	if s.lastPoint != nil && geo.Distance(point, *s.lastPoint) < s.minDisplacement {
		s.mu.Unlock()

		return false
	}
	s.lastPoint = &point
	events := s.events
	s.mu.Unlock()

	return s.deliver(events, service.FixEvent{Fix: &fix})
}

// ReportError surfaces a device-side delivery failure on the stream without
// terminating it.
func (s *PushSource) ReportError(err error) {
	s.mu.Lock()
	events := s.events
	running := s.running
	s.mu.Unlock()

	if !running || events == nil {
		return
	}
	s.deliver(events, service.FixEvent{Err: err})
}

// deliver performs a non-blocking send; the channel is bounded and a full
// buffer sheds the event.
func (s *PushSource) deliver(events chan service.FixEvent, event service.FixEvent) bool {
	select {
	case events <- event:
		return true
	default:
		s.logger.Warn("Fix buffer full, shedding event")

		return false
	}
}
