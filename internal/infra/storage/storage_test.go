package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{API: &config.APIConfig{BaseURL: "http://localhost"}}
	cfg.ApplyDefaults()

	return cfg
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCartCountStore_RoundTrip(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	store := NewCartCountStore(bucket, newTestConfig(), newDiscardLogger())
	ctx := context.Background()

	assert.Equal(t, 0, store.LoadCount(ctx), "absent key defaults to 0")

	store.SaveCount(ctx, 4)
	assert.Equal(t, 4, store.LoadCount(ctx))

	store.SaveCount(ctx, 0)
	assert.Equal(t, 0, store.LoadCount(ctx))
}

func TestCartCountStore_MalformedValueDefaultsToZero(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	cfg := newTestConfig()
	ctx := context.Background()

	require.NoError(t, bucket.WriteAll(ctx, cfg.Storage.CartCountKey, []byte("not-a-number"), nil))

	store := NewCartCountStore(bucket, cfg, newDiscardLogger())
	assert.Equal(t, 0, store.LoadCount(ctx))
}

func TestCartCountStore_SaveOnClosedBucketIsSwallowed(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	store := NewCartCountStore(bucket, newTestConfig(), newDiscardLogger())
	require.NoError(t, bucket.Close())

	assert.NotPanics(t, func() {
		store.SaveCount(context.Background(), 3)
	})
	assert.Equal(t, 0, store.LoadCount(context.Background()))
}

func TestCredentialRepository_Lifecycle(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	repo := NewCredentialRepository(bucket, newTestConfig())
	ctx := context.Background()

	_, err := repo.LoadCredential(ctx)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, repo.SaveCredential(ctx, entity.StoredCredential{Token: "tok", ExpiresAt: expires}))

	cred, err := repo.LoadCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", cred.Token)
	assert.True(t, expires.Equal(cred.ExpiresAt))

	require.NoError(t, repo.DeleteCredential(ctx))
	require.NoError(t, repo.DeleteCredential(ctx), "deleting twice is fine")

	_, err = repo.LoadCredential(ctx)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestOpenBucket_FileSchemeCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")

	bucket, err := OpenBucket(context.Background(), "file://"+dir)
	require.NoError(t, err)
	defer bucket.Close()

	store := NewCartCountStore(bucket, newTestConfig(), newDiscardLogger())
	store.SaveCount(context.Background(), 2)
	assert.Equal(t, 2, store.LoadCount(context.Background()))
}
