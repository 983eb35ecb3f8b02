package entity

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// Size is the portion size a cart line is ordered in.
type Size string

const (
	SizeRegular Size = "Regular"
	SizeMedium  Size = "Medium"
	SizeLarge   Size = "Large"
)

// ParseSize reads a size case-insensitively. ok is false for unknown sizes.
func ParseSize(s string) (Size, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular":
		return SizeRegular, true
	case "medium":
		return SizeMedium, true
	case "large":
		return SizeLarge, true
	default:
		return "", false
	}
}

// UnmarshalJSON accepts any casing; unknown sizes fall back to Regular.
func (s *Size) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	size, ok := ParseSize(raw)
	if !ok {
		size = SizeRegular
	}
	*s = size

	return nil
}

// Price holds one price per size. Every configured price is > 0.
type Price struct {
	Regular float64 `json:"regular"`
	Medium  float64 `json:"medium,omitempty"`
	Large   float64 `json:"large,omitempty"`
}

// For returns the price of the given size, falling back to the regular price
// when the size has no price of its own.
func (p Price) For(size Size) float64 {
	switch size {
	case SizeMedium:
		if p.Medium > 0 {
			return p.Medium
		}
	case SizeLarge:
		if p.Large > 0 {
			return p.Large
		}
	}

	return p.Regular
}

// CatalogItem is a menu item owned by the admin catalog.
type CatalogItem struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Price       Price     `json:"price"`
	Image       string    `json:"image"`
	Popular     bool      `json:"popular"`
	Rating      float64   `json:"rating"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// UnmarshalJSON tolerates an unpopulated reference: a bare id string decodes
// into an item carrying only its ID.
func (c *CatalogItem) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return err
		}
		*c = CatalogItem{ID: id}

		return nil
	}

	type alias CatalogItem
	var a alias
	if err := json.Unmarshal(trimmed, &a); err != nil {
		return err
	}
	*c = CatalogItem(a)

	return nil
}

// CatalogItemInput is the admin form for creating or updating a menu item.
type CatalogItemInput struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Price       Price    `json:"price"`
	Image       string   `json:"image"`
	Popular     bool     `json:"popular"`
	Rating      *float64 `json:"rating,omitempty"`
}

// StatusFilter selects items by their active flag.
type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = "active"
	StatusInactive StatusFilter = "inactive"
)

// SortOrder orders the admin item list.
type SortOrder string

const (
	SortNewest   SortOrder = "newest"
	SortOldest   SortOrder = "oldest"
	SortNameAsc  SortOrder = "name_asc"
	SortNameDesc SortOrder = "name_desc"
)

// CatalogQuery is the admin list view's filter, search and sort selection.
type CatalogQuery struct {
	Status StatusFilter
	Search string
	Sort   SortOrder
}

// Apply filters, searches and sorts items client-side. The input slice is not modified.
func (q CatalogQuery) Apply(items []*CatalogItem) []*CatalogItem {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]*CatalogItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		switch q.Status {
		case StatusActive:
			if !item.IsActive {
				continue
			}
		case StatusInactive:
			if item.IsActive {
				continue
			}
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.Category), needle) {
			continue
		}
		out = append(out, item)
	}

	switch q.Sort {
	case SortNameAsc:
		slices.SortStableFunc(out, func(a, b *CatalogItem) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	case SortNameDesc:
		slices.SortStableFunc(out, func(a, b *CatalogItem) int {
			return strings.Compare(strings.ToLower(b.Name), strings.ToLower(a.Name))
		})
	case SortOldest:
		slices.SortStableFunc(out, func(a, b *CatalogItem) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	default:
		slices.SortStableFunc(out, func(a, b *CatalogItem) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}

	return out
}

// MenuFilter selects public menu items.
type MenuFilter struct {
	Category string
	Type     string
	Search   string
}
