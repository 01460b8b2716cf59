package repository

import (
	"context"
	"time"

	"motion/internal/domain/entity"
)

// SampleRepository defines the operations on the remote samples collection
// (`locations/{id}`). Samples are written once under their own generated id
// and queried back by identity and capture-time range.
type SampleRepository interface {
	// CreateSample persists one location sample keyed by its id.
	CreateSample(ctx context.Context, sample *entity.LocationSample) error

	// FindByIdentityAndRange returns all samples owned by the identity with
	// capture timestamp in the half-open interval [from, to), ordered by
	// capture timestamp ascending.
	FindByIdentityAndRange(ctx context.Context, identityID string, from, to time.Time) ([]*entity.LocationSample, error)
}
