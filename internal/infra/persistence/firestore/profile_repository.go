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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type profileRepository struct {
	client *fs.Client
}

// NewProfileRepository creates the Firestore-backed profile repository.
func NewProfileRepository(client *fs.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) doc(identityID string) *fs.DocumentRef {
	return r.client.Collection(constants.ProfileCollection).Doc(identityID)
}

// GetProfile retrieves the `users/{id}` document.
func (r *profileRepository) GetProfile(ctx context.Context, identityID string) (*entity.Identity, error) {
	snap, err := r.doc(identityID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrProfileNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile document")
	}

	var doc model.ProfileDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}

	return doc.ToEntity(identityID), nil
}

// CreateProfile writes the full `users/{id}` document, overwriting any
// existing one.
func (r *profileRepository) CreateProfile(ctx context.Context, identity *entity.Identity) error {
	if _, err := r.doc(identity.ID).Set(ctx, model.NewProfileDoc(identity)); err != nil {
		return errors.Wrap(err, "failed to create profile document")
	}

	return nil
}

// UpdateLastLogin updates only the last-login field of an existing document.
func (r *profileRepository) UpdateLastLogin(ctx context.Context, identityID string, lastLogin time.Time) error {
	_, err := r.doc(identityID).Update(ctx, []fs.Update{
		{Path: "last_login_date", Value: lastLogin},
	})
	if status.Code(err) == codes.NotFound {
		return repository.ErrProfileNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to update last login")
	}

	return nil
}
