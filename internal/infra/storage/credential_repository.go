package storage

import (
	"context"
	"encoding/json"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// credentialRepository implements repository.CredentialRepository as a JSON blob.
type credentialRepository struct {
	bucket *blob.Bucket
	key    string
}

// NewCredentialRepository creates the durable credential store.
func NewCredentialRepository(bucket *blob.Bucket, cfg *config.Config) repository.CredentialRepository {
	return &credentialRepository{
		bucket: bucket,
		key:    cfg.Storage.CredentialKey,
	}
}

func (r *credentialRepository) SaveCredential(ctx context.Context, cred entity.StoredCredential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := r.bucket.WriteAll(ctx, r.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrap(err, "failed to persist credential")
	}

	return nil
}

func (r *credentialRepository) LoadCredential(ctx context.Context) (entity.StoredCredential, error) {
	data, err := r.bucket.ReadAll(ctx, r.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return entity.StoredCredential{}, repository.ErrCredentialNotFound
		}

		return entity.StoredCredential{}, errors.Wrap(err, "failed to read credential")
	}

	var cred entity.StoredCredential
	if err := json.Unmarshal(data, &cred); err != nil {
		return entity.StoredCredential{}, errors.Wrap(err, "malformed stored credential")
	}
	if cred.Token == "" {
		return entity.StoredCredential{}, repository.ErrCredentialNotFound
	}

	return cred, nil
}

func (r *credentialRepository) DeleteCredential(ctx context.Context) error {
	err := r.bucket.Delete(ctx, r.key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete credential")
	}

	return nil
}
