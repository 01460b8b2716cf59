package usecase

import (
	"context"
	"time"

	"motion/internal/domain/entity"
)

// TrackingUsecase drives the per-run tracking session: authorization
// negotiation, the continuous fix pipeline and the day-windowed path query.
type TrackingUsecase interface {
	// StartTracking negotiates authorization if needed and begins consuming
	// the fix subscription. Re-entrant from stopped.
	StartTracking(ctx context.Context) error

	// StopTracking halts the fix subscription. Idempotent: a second call
	// leaves the session in the same stopped state with no error.
	StopTracking(ctx context.Context)

	// ToggleTracking starts tracking when stopped and stops it when active,
	// returning the resulting tracking flag.
	ToggleTracking(ctx context.Context) (bool, error)

	// Session returns a snapshot copy of the observable session state.
	Session() entity.TrackingSession

	// DailyPath materializes the ordered path for the local-time day window
	// containing ref, for the currently authenticated identity.
	DailyPath(ctx context.Context, ref time.Time) ([]*entity.LocationSample, error)
}
