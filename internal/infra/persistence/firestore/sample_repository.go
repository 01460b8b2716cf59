package firestore

import (
	"context"
	"time"

	"motion/internal/domain/constants"
	"motion/internal/domain/entity"
	"motion/internal/domain/repository"
	"motion/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type sampleRepository struct {
	client *fs.Client
}

// NewSampleRepository creates the Firestore-backed sample repository.
func NewSampleRepository(client *fs.Client) repository.SampleRepository {
	return &sampleRepository{client: client}
}

// CreateSample writes one `locations/{id}` document keyed by the sample's
// own generated id.
func (r *sampleRepository) CreateSample(ctx context.Context, sample *entity.LocationSample) error {
	doc := r.client.Collection(constants.SampleCollection).Doc(sample.ID)
	if _, err := doc.Set(ctx, model.NewSampleDoc(sample)); err != nil {
		return errors.Wrap(err, "failed to create sample document")
	}

	return nil
}

// FindByIdentityAndRange runs the range query
// `user_id == identityID && timestamp in [from, to) order by timestamp`.
// The query executes as one consistent snapshot read.
func (r *sampleRepository) FindByIdentityAndRange(ctx context.Context, identityID string, from, to time.Time) ([]*entity.LocationSample, error) {
	iter := r.client.Collection(constants.SampleCollection).
		Where("user_id", "==", identityID).
		Where("timestamp", ">=", from).
		Where("timestamp", "<", to).
		OrderBy("timestamp", fs.Asc).
		Documents(ctx)
	defer iter.Stop()

	var samples []*entity.LocationSample
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate sample documents")
		}

		var doc model.SampleDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode sample document")
		}
		samples = append(samples, doc.ToEntity(snap.Ref.ID))
	}

	return samples, nil
}
