package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"motion/internal/domain/entity"
	"motion/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func createTestCache(t *testing.T) repository.SessionCache {
	t.Helper()

	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewSessionCacheWithBucket(bucket, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBlobSessionCache_IdentityRoundTrip(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()

	identity := &entity.Identity{
		ID:          "uid-1",
		Email:       "user@example.com",
		LastLoginAt: time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, cache.SaveIdentity(ctx, identity))

	loaded, err := cache.LoadIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, loaded.ID)
	assert.Equal(t, identity.Email, loaded.Email)
	assert.True(t, identity.LastLoginAt.Equal(loaded.LastLoginAt))
}

func TestBlobSessionCache_SaveIdentity_OverwritesPrevious(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SaveIdentity(ctx, &entity.Identity{ID: "uid-1", Email: "first@example.com"}))
	require.NoError(t, cache.SaveIdentity(ctx, &entity.Identity{ID: "uid-2", Email: "second@example.com"}))

	loaded, err := cache.LoadIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "uid-2", loaded.ID)
}

func TestBlobSessionCache_LoadIdentity_MissingReturnsSentinel(t *testing.T) {
	cache := createTestCache(t)

	_, err := cache.LoadIdentity(context.Background())

	assert.ErrorIs(t, err, repository.ErrIdentityNotCached)
}

func TestBlobSessionCache_LoadLoginHistory_MissingYieldsEmpty(t *testing.T) {
	cache := createTestCache(t)

	history, err := cache.LoadLoginHistory(context.Background())

	require.NoError(t, err)
	assert.Empty(t, history.Emails)
}

func TestBlobSessionCache_LoginHistoryRoundTrip(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()

	history := &entity.LoginHistory{Emails: []string{"a@example.com", "b@example.com"}}
	require.NoError(t, cache.SaveLoginHistory(ctx, history))

	loaded, err := cache.LoadLoginHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, history.Emails, loaded.Emails)
}
