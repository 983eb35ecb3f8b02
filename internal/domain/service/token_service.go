package service

import (
	"time"
)

// CredentialInfo is what can be read from a bearer credential without the
// backend's signing key.
type CredentialInfo struct {
	Subject   string
	Role      string
	ExpiresAt time.Time // zero when the credential carries no expiry
}

// CredentialInspector reads and ages bearer credentials on the client.
// The backend stays the only authority on validity; inspection only lets the
// client drop credentials that are certainly expired before calling verify.
type CredentialInspector interface {
	// Inspect decodes the credential's claims without verifying its signature.
	// Opaque, non-JWT credentials yield an empty CredentialInfo and no error.
	Inspect(credential string) (CredentialInfo, error)

	// ExpiryFor returns the durable expiry to store with a freshly issued credential.
	ExpiryFor(credential string, issuedAt time.Time) time.Time
}

// CredentialProvider gives read-only access to the current bearer credential.
// The session gate is its only writer.
type CredentialProvider interface {
	Credential() string
}
