// Package storage keeps durable local state (cart count placeholder and the
// session credential) in a gocloud blob bucket.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"os"

	"storefront/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

// Params defines the parameters required for the bucket
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured bucket and closes it when the app stops.
func NewBucket(params Params) (*blob.Bucket, error) {
	bucket, err := OpenBucket(params.Ctx, params.Config.Storage.URL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Local storage opened", slog.String("url", params.Config.Storage.URL))

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing local storage")

			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

// OpenBucket opens a bucket URL, creating the directory of file:// buckets.
func OpenBucket(ctx context.Context, rawURL string) (*blob.Bucket, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid storage url")
	}
	if u.Scheme == "file" && u.Path != "" {
		if err := os.MkdirAll(u.Path, 0o700); err != nil {
			return nil, errors.Wrapf(err, "create storage dir %s", u.Path)
		}
	}

	bucket, err := blob.OpenBucket(ctx, rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", rawURL)
	}

	return bucket, nil
}
