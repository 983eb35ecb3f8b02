package storage

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/repository"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// cartCountStore implements repository.CartCountStore on a blob key.
type cartCountStore struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

// NewCartCountStore creates the cart count persistence shim.
func NewCartCountStore(bucket *blob.Bucket, cfg *config.Config, logger *slog.Logger) repository.CartCountStore {
	return &cartCountStore{
		bucket: bucket,
		key:    cfg.Storage.CartCountKey,
		logger: logger,
	}
}

// SaveCount writes the count; failures are logged and swallowed.
func (s *cartCountStore) SaveCount(ctx context.Context, count int) {
	err := s.bucket.WriteAll(ctx, s.key, []byte(strconv.Itoa(count)), &blob.WriterOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to persist cart count",
			slog.Int("count", count),
			slog.Any("error", err),
		)
	}
}

// LoadCount reads the count, defaulting to 0 on absence or parse failure.
func (s *cartCountStore) LoadCount(ctx context.Context) int {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) != gcerrors.NotFound {
			s.logger.Warn("Failed to read persisted cart count", slog.Any("error", err))
		}

		return 0
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || count < 0 {
		s.logger.Warn("Ignoring malformed persisted cart count", slog.String("value", string(data)))

		return 0
	}

	return count
}
