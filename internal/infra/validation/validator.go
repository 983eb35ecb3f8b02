// Package validation wraps go-playground/validator for request structs and
// the admin catalog form.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Catalog form field keys, as reported in ValidationError.Fields.
const (
	FieldName        = "name"
	FieldCategory    = "category"
	FieldType        = "type"
	FieldDescription = "description"
	FieldPriceReg    = "price.regular"
	FieldPriceMedium = "price.medium"
	FieldPriceLarge  = "price.large"
	FieldImage       = "image"
	FieldRating      = "rating"
)

// CatalogFields lists every validated catalog form field in display order.
var CatalogFields = []string{
	FieldName, FieldCategory, FieldType, FieldDescription,
	FieldPriceReg, FieldPriceMedium, FieldPriceLarge, FieldImage, FieldRating,
}

var _ service.FormValidator = (*Validator)(nil)

type catalogRule struct {
	label string
	tag   string
	value func(in *entity.CatalogItemInput) any
}

// Validator validates tagged structs and catalog form fields.
// It satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
	maxPrice float64
	rules    map[string]catalogRule
}

// New creates a Validator using the catalog bounds from config.
func New(cfg *config.Config) *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	c := cfg.Catalog
	maxPrice := fmt.Sprintf("%g", c.MaxPrice)

	return &Validator{
		validate: validate,
		maxPrice: c.MaxPrice,
		rules: map[string]catalogRule{
			FieldName: {
				label: "Name",
				tag:   fmt.Sprintf("required,min=%d,max=%d", c.NameMin, c.NameMax),
				value: func(in *entity.CatalogItemInput) any { return strings.TrimSpace(in.Name) },
			},
			FieldCategory: {
				label: "Category",
				tag:   fmt.Sprintf("required,min=%d,max=%d", c.CategoryMin, c.CategoryMax),
				value: func(in *entity.CatalogItemInput) any { return strings.TrimSpace(in.Category) },
			},
			FieldType: {
				label: "Type",
				tag:   fmt.Sprintf("required,min=%d,max=%d", c.TypeMin, c.TypeMax),
				value: func(in *entity.CatalogItemInput) any { return strings.TrimSpace(in.Type) },
			},
			FieldDescription: {
				label: "Description",
				tag:   fmt.Sprintf("max=%d", c.DescriptionMax),
				value: func(in *entity.CatalogItemInput) any { return strings.TrimSpace(in.Description) },
			},
			FieldPriceReg: {
				label: "Price",
				tag:   "gt=0,lte=" + maxPrice,
				value: func(in *entity.CatalogItemInput) any { return in.Price.Regular },
			},
			// medium and large are optional; 0 means the size is not offered
			FieldPriceMedium: {
				label: "Price",
				tag:   "omitempty,gt=0,lte=" + maxPrice,
				value: func(in *entity.CatalogItemInput) any { return in.Price.Medium },
			},
			FieldPriceLarge: {
				label: "Price",
				tag:   "omitempty,gt=0,lte=" + maxPrice,
				value: func(in *entity.CatalogItemInput) any { return in.Price.Large },
			},
			FieldImage: {
				label: "Image",
				tag:   "omitempty,url",
				value: func(in *entity.CatalogItemInput) any { return strings.TrimSpace(in.Image) },
			},
			FieldRating: {
				label: "Rating",
				tag:   "omitempty,gte=0,lte=5",
				value: func(in *entity.CatalogItemInput) any { return in.Rating },
			},
		},
	}
}

// Validate validates a tagged struct. Failures come back as a
// *domainerrors.ValidationError keyed by json field name.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fieldKey(fe)
		if _, seen := fields[key]; !seen {
			fields[key] = structMessage(fe)
		}
	}

	return domainerrors.NewValidationError(fields)
}

// ValidateCatalogField checks a single catalog form field and returns its
// error message, or "" when the field is valid.
func (v *Validator) ValidateCatalogField(field string, in *entity.CatalogItemInput) string {
	rule, ok := v.rules[field]
	if !ok || in == nil {
		return ""
	}

	value := rule.value(in)
	if rating, isPtr := value.(*float64); isPtr {
		if rating == nil {
			return ""
		}
		value = *rating
	}

	err := v.validate.Var(value, rule.tag)
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return rule.label + " is invalid"
	}

	return v.catalogMessage(rule.label, fieldErrs[0])
}

// ValidateCatalogItem validates the whole form, as done at submit time.
func (v *Validator) ValidateCatalogItem(in *entity.CatalogItemInput) error {
	if in == nil {
		return domainerrors.NewValidationError(map[string]string{FieldName: "Name is required"})
	}

	fields := map[string]string{}
	for _, field := range CatalogFields {
		if msg := v.ValidateCatalogField(field, in); msg != "" {
			fields[field] = msg
		}
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}

func (v *Validator) catalogMessage(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "gt":
		return label + " must be greater than 0"
	case "gte", "lte":
		if label == "Rating" {
			return "Rating must be between 0 and 5"
		}

		return fmt.Sprintf("%s must not exceed %g", label, v.maxPrice)
	case "url":
		return "Image must be a valid URL"
	default:
		return label + " is invalid"
	}
}

// fieldKey turns "DeliveryDetails.email" into "email" and keeps nested
// paths below the top-level struct.
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}

	return fe.Field()
}

func structMessage(fe validator.FieldError) string {
	label := fe.StructField()

	switch fe.Tag() {
	case "required", "required_if":
		return label + " is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	default:
		return label + " is invalid"
	}
}
