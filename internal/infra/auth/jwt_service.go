// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/service"
)

// jwtInspector reads bearer credentials issued by the backend. The signing
// key never reaches the client, so claims are decoded without verification.
type jwtInspector struct {
	parser *jwt.Parser
	ttl    time.Duration // Local cap on how long a stored credential is kept.
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector(cfg *config.Config) service.CredentialInspector {
	return &jwtInspector{
		parser: jwt.NewParser(),
		ttl:    cfg.Auth.CredentialTTL,
	}
}

// Inspect decodes subject, role and expiry from a JWT credential.
func (s *jwtInspector) Inspect(credential string) (service.CredentialInfo, error) {
	if credential == "" {
		return service.CredentialInfo{}, errors.New("empty credential")
	}
	// Opaque tokens are legal; only the backend can judge them.
	if strings.Count(credential, ".") != 2 {
		return service.CredentialInfo{}, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(credential, claims); err != nil {
		return service.CredentialInfo{}, errors.Wrap(err, "malformed credential")
	}

	info := service.CredentialInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if sub, ok := claims["id"].(string); ok && info.Subject == "" {
		info.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		info.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, nil
}

// ExpiryFor returns issuedAt plus the configured TTL, or the credential's own
// expiry when that comes first.
func (s *jwtInspector) ExpiryFor(credential string, issuedAt time.Time) time.Time {
	expiry := issuedAt.Add(s.ttl)

	info, err := s.Inspect(credential)
	if err != nil || info.ExpiresAt.IsZero() {
		return expiry
	}
	if info.ExpiresAt.Before(expiry) {
		return info.ExpiresAt
	}

	return expiry
}
