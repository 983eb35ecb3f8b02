package validation

import (
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *Validator {
	cfg := &config.Config{API: &config.APIConfig{}}
	cfg.ApplyDefaults()

	return New(cfg)
}

func validInput() *entity.CatalogItemInput {
	rating := 4.5

	return &entity.CatalogItemInput{
		Name:        "Margherita",
		Category:    "Pizza",
		Type:        "veg",
		Description: "Tomato, mozzarella, basil",
		Price:       entity.Price{Regular: 250, Large: 420},
		Image:       "https://cdn.example.com/pizza.png",
		Rating:      &rating,
	}
}

func TestValidateCatalogItem_Valid(t *testing.T) {
	assert.NoError(t, newTestValidator().ValidateCatalogItem(validInput()))
}

func TestValidateCatalogItem_ZeroPriceBlocksSubmission(t *testing.T) {
	in := validInput()
	in.Price.Regular = 0

	err := newTestValidator().ValidateCatalogItem(in)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Price must be greater than 0", validationErr.Fields[FieldPriceReg])
	assert.Len(t, validationErr.Fields, 1)
}

func TestValidateCatalogField(t *testing.T) {
	v := newTestValidator()
	badRating := 7.0
	negative := -1.0

	tests := []struct {
		name   string
		field  string
		mutate func(in *entity.CatalogItemInput)
		want   string
	}{
		{"name missing", FieldName, func(in *entity.CatalogItemInput) { in.Name = "  " }, "Name is required"},
		{"name too short", FieldName, func(in *entity.CatalogItemInput) { in.Name = "A" }, "Name must be at least 2 characters"},
		{"name too long", FieldName, func(in *entity.CatalogItemInput) { in.Name = strings.Repeat("n", 101) }, "Name must be at most 100 characters"},
		{"category too long", FieldCategory, func(in *entity.CatalogItemInput) { in.Category = strings.Repeat("c", 51) }, "Category must be at most 50 characters"},
		{"type missing", FieldType, func(in *entity.CatalogItemInput) { in.Type = "" }, "Type is required"},
		{"description too long", FieldDescription, func(in *entity.CatalogItemInput) { in.Description = strings.Repeat("d", 501) }, "Description must be at most 500 characters"},
		{"price above max", FieldPriceReg, func(in *entity.CatalogItemInput) { in.Price.Regular = 10001 }, "Price must not exceed 10000"},
		{"price at max", FieldPriceReg, func(in *entity.CatalogItemInput) { in.Price.Regular = 10000 }, ""},
		{"medium unset", FieldPriceMedium, func(in *entity.CatalogItemInput) { in.Price.Medium = 0 }, ""},
		{"medium negative", FieldPriceMedium, func(in *entity.CatalogItemInput) { in.Price.Medium = -5 }, "Price must be greater than 0"},
		{"image not a url", FieldImage, func(in *entity.CatalogItemInput) { in.Image = "not a url" }, "Image must be a valid URL"},
		{"image empty", FieldImage, func(in *entity.CatalogItemInput) { in.Image = "" }, ""},
		{"rating above range", FieldRating, func(in *entity.CatalogItemInput) { in.Rating = &badRating }, "Rating must be between 0 and 5"},
		{"rating below range", FieldRating, func(in *entity.CatalogItemInput) { in.Rating = &negative }, "Rating must be between 0 and 5"},
		{"rating unset", FieldRating, func(in *entity.CatalogItemInput) { in.Rating = nil }, ""},
		{"unknown field", "popular", func(in *entity.CatalogItemInput) {}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			assert.Equal(t, tt.want, v.ValidateCatalogField(tt.field, in))
		})
	}
}

func TestValidateCatalogField_ClearsIndependently(t *testing.T) {
	v := newTestValidator()
	in := validInput()
	in.Name = ""
	in.Price.Regular = 0

	assert.NotEmpty(t, v.ValidateCatalogField(FieldName, in))
	assert.NotEmpty(t, v.ValidateCatalogField(FieldPriceReg, in))

	in.Name = "Margherita"
	assert.Empty(t, v.ValidateCatalogField(FieldName, in))
	assert.NotEmpty(t, v.ValidateCatalogField(FieldPriceReg, in), "fixing one field leaves the other untouched")
}

func TestValidate_DeliveryDetails(t *testing.T) {
	v := newTestValidator()

	err := v.Validate(&entity.DeliveryDetails{
		Name:  "Ann",
		Email: "not-an-email",
		Phone: "555",
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Enter a valid email address", validationErr.Fields["email"])
	assert.Equal(t, "Address is required", validationErr.Fields["address"])
	assert.Equal(t, "City is required", validationErr.Fields["city"])
	assert.Equal(t, "PostalCode is required", validationErr.Fields["postalCode"])
	assert.NotContains(t, validationErr.Fields, "name")
}

func TestValidate_RegisterRequiresAdminSecret(t *testing.T) {
	v := newTestValidator()
	in := &service.RegisterInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "secret1",
		Role:     entity.RoleAdmin,
	}

	err := v.Validate(in)
	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "adminSecretKey")

	in.AdminSecretKey = "key"
	assert.NoError(t, v.Validate(in))
}
