// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the storefront.
package entity

import (
	"encoding/json"
	"time"
)

// User is the identity resolved from the backend for the current credential.
type User struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	PostalCode     string    `json:"postalCode,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitzero"`
}

// UnmarshalJSON normalises the role field.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	var raw struct {
		alias
		Role string `json:"role"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*u = User(raw.alias)
	u.Role = ParseRole(raw.Role)

	return nil
}

// IsAdmin reports whether the user manages the catalog.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Session is the current identity and bearer credential.
// A non-empty Credential implies an attempt to resolve User; a failed
// resolution clears both.
type Session struct {
	User       *User  `json:"user"`
	Credential string `json:"-"`
	IsLoading  bool   `json:"isLoading"`
}

// IsAuthenticated reports whether a credential is held.
func (s Session) IsAuthenticated() bool {
	return s.Credential != ""
}

// StoredCredential is the durable form of the bearer credential.
type StoredCredential struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the credential is past its expiry at now.
func (c StoredCredential) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ProfileStatistics summarises a customer's order history.
type ProfileStatistics struct {
	TotalOrders     int     `json:"totalOrders"`
	TotalSpent      float64 `json:"totalSpent"`
	PendingOrders   int     `json:"pendingOrders"`
	DeliveredOrders int     `json:"deliveredOrders"`
}

// Profile is the user's profile page payload.
type Profile struct {
	User       *User             `json:"user"`
	Statistics ProfileStatistics `json:"statistics"`
	Orders     []*Order          `json:"orders"`
}
