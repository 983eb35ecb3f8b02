// Package repository defines the interfaces for the local persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential has been stored.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository stores the bearer credential durably across restarts.
type CredentialRepository interface {
	// SaveCredential persists the credential together with its expiry.
	SaveCredential(ctx context.Context, cred entity.StoredCredential) error

	// LoadCredential returns the stored credential, or ErrCredentialNotFound.
	LoadCredential(ctx context.Context) (entity.StoredCredential, error)

	// DeleteCredential removes the stored credential. Deleting a missing credential is not an error.
	DeleteCredential(ctx context.Context) error
}
