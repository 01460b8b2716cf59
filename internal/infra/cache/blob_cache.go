// Package cache implements the local key-value boundary on a gocloud.dev
// blob bucket: a file-backed bucket in production, swappable by URL.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"

	"motion/config"
	"motion/internal/domain/entity"
	"motion/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // registers the file:// bucket scheme
	"gocloud.dev/gcerrors"
)

const (
	identityKey = "current_identity.json"
	historyKey  = "previous_logins.json"
)

type blobSessionCache struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// SessionCacheParams holds dependencies for the session cache, injected by Fx.
type SessionCacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionCache opens the configured bucket and closes it on shutdown.
func NewSessionCache(params SessionCacheParams) (repository.SessionCache, error) {
	if params.Config.Cache == nil || params.Config.Cache.BucketURL == "" {
		return nil, errors.New("cache bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Cache.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open cache bucket %s", params.Config.Cache.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &blobSessionCache{bucket: bucket, logger: params.Logger}, nil
}

// NewSessionCacheWithBucket wires the cache onto an already open bucket.
func NewSessionCacheWithBucket(bucket *blob.Bucket, logger *slog.Logger) repository.SessionCache {
	return &blobSessionCache{bucket: bucket, logger: logger}
}

// SaveIdentity stores the serialized identity blob, overwriting any prior
// one. At most one identity is cached at a time.
func (c *blobSessionCache) SaveIdentity(ctx context.Context, identity *entity.Identity) error {
	return c.writeJSON(ctx, identityKey, identity)
}

// LoadIdentity returns the cached identity, or ErrIdentityNotCached.
func (c *blobSessionCache) LoadIdentity(ctx context.Context) (*entity.Identity, error) {
	var identity entity.Identity
	if err := c.readJSON(ctx, identityKey, &identity); err != nil {
		if gcerrors.Code(errors.Cause(err)) == gcerrors.NotFound {
			return nil, repository.ErrIdentityNotCached
		}

		return nil, err
	}

	return &identity, nil
}

// SaveLoginHistory stores the full history list.
func (c *blobSessionCache) SaveLoginHistory(ctx context.Context, history *entity.LoginHistory) error {
	return c.writeJSON(ctx, historyKey, history)
}

// LoadLoginHistory returns the stored history; a missing blob yields an
// empty history, not an error.
func (c *blobSessionCache) LoadLoginHistory(ctx context.Context) (*entity.LoginHistory, error) {
	var history entity.LoginHistory
	if err := c.readJSON(ctx, historyKey, &history); err != nil {
		if gcerrors.Code(errors.Cause(err)) == gcerrors.NotFound {
			return &entity.LoginHistory{}, nil
		}

		return nil, err
	}

	return &history, nil
}

func (c *blobSessionCache) writeJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to serialize %s", key)
	}

	if err := c.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

func (c *blobSessionCache) readJSON(ctx context.Context, key string, target any) error {
	data, err := c.bucket.ReadAll(ctx, key)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", key)
	}

	return errors.Wrapf(json.Unmarshal(data, target), "failed to decode %s", key)
}
