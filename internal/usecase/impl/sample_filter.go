package impl

import (
	"motion/internal/domain/entity"

	"github.com/google/uuid"
)

// maxAccuracyMeters is the largest horizontal accuracy radius accepted for
// persistence. The 10 m minimum displacement between fixes is enforced
// upstream by the subscription and not re-checked here. Both values are
// fixed; the UI has no tuning surface for them.
const maxAccuracyMeters = 20.0

// sampleFilter decides, per delivered fix, whether a sample is minted for
// persistence. It is a pure function over each fix so the pipeline can be
// tested with a synthetic fix sequence.
type sampleFilter struct{}

// Evaluate mints an immutable LocationSample when the fix qualifies:
// accuracy within threshold and an authenticated identity active. A rejected
// fix is not an error; noisy fixes are expected and dropped silently.
func (sampleFilter) Evaluate(fix *entity.Fix, identityID string) (*entity.LocationSample, bool) {
	if fix == nil || identityID == "" {
		return nil, false
	}
	if fix.Accuracy > maxAccuracyMeters {
		return nil, false
	}

	return &entity.LocationSample{
		ID:         uuid.New().String(),
		IdentityID: identityID,
		Latitude:   fix.Latitude,
		Longitude:  fix.Longitude,
		Timestamp:  fix.Timestamp,
		Accuracy:   fix.Accuracy,
	}, true
}
