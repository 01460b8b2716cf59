package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "motion/internal/delivery/context"
	"motion/internal/domain/entity"
	domainerrors "motion/internal/domain/errors"
	"motion/internal/domain/service"

	"github.com/pkg/errors"
)

// Two-stage authorization polling. Permission dialogs resolve
// asynchronously: a short initial wait catches platforms that answer
// synchronously, and one bounded extension covers the dialog round trip.
// Undetermined after both stages is treated as denied so the caller never
// blocks on an open-ended subscription.
const (
	initialAuthWait  = 500 * time.Millisecond
	extendedAuthWait = time.Second
)

// authorizationNegotiator resolves the platform permission state to a
// definite granted/denied outcome within a bounded total wait.
type authorizationNegotiator struct {
	source       service.LocationSource
	initialWait  time.Duration
	extendedWait time.Duration
	logger       *slog.Logger
}

func newAuthorizationNegotiator(source service.LocationSource, logger *slog.Logger) *authorizationNegotiator {
	return &authorizationNegotiator{
		source:       source,
		initialWait:  initialAuthWait,
		extendedWait: extendedAuthWait,
		logger:       logger,
	}
}

// Negotiate requests location permission and polls the resulting state.
// Context cancellation abandons any pending wait without touching session
// state; the caller sees ctx.Err and surfaces nothing.
func (n *authorizationNegotiator) Negotiate(ctx context.Context) error {
	log := deliverycontext.GetLoggerOrDefault(ctx, n.logger)

	if !n.source.Enabled(ctx) {
		return domainerrors.ErrServicesDisabled.WrapMessage("location subsystem is switched off")
	}

	if err := n.source.RequestAuthorization(ctx); err != nil {
		return domainerrors.NewUnknownError(err, "authorization request failed")
	}

	if err := n.wait(ctx, n.initialWait); err != nil {
		return err
	}

	switch status := n.source.AuthorizationStatus(); status {
	case entity.AuthorizationGranted:
		return nil
	case entity.AuthorizationDenied:
		return domainerrors.ErrAuthorizationDenied.WrapMessage("permission denied or restricted")
	case entity.AuthorizationNotDetermined:
		log.Debug("Authorization still undetermined, extending wait")
	default:
		return domainerrors.NewUnknownError(errors.Errorf("unexpected authorization status %q", status), "authorization poll")
	}

	if err := n.wait(ctx, n.extendedWait); err != nil {
		return err
	}

	if n.source.AuthorizationStatus() == entity.AuthorizationGranted {
		return nil
	}

	// Undetermined after the full bounded wait counts as denied.
	return domainerrors.ErrAuthorizationDenied.WrapMessage("no authorization decision within bounded wait")
}

func (n *authorizationNegotiator) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}
