package service

import "storefront/internal/domain/entity"

// FormValidator checks user input locally before anything is sent remotely.
// Failures are *errors.ValidationError values keyed by field.
type FormValidator interface {
	// Validate checks a struct carrying `validate` tags.
	Validate(i any) error

	// ValidateCatalogField checks one admin form field and returns its
	// message, or "" when the field is valid.
	ValidateCatalogField(field string, input *entity.CatalogItemInput) string

	// ValidateCatalogItem checks the whole admin form at submit time.
	ValidateCatalogItem(input *entity.CatalogItemInput) error
}
