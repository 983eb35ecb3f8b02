// Package service declares the ports the use cases depend on: the remote
// backend contract, the payment widget and local helpers.
package service

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// LoginInput is the body of a login request.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput is the backend answer to a successful login.
type LoginOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// RegisterInput is the body of a registration request.
type RegisterInput struct {
	Name           string      `json:"name" validate:"required,min=2,max=50"`
	Email          string      `json:"email" validate:"required,email"`
	Password       string      `json:"password" validate:"required,min=6"`
	Role           entity.Role `json:"role" validate:"required,oneof=customer admin"`
	AdminSecretKey string      `json:"adminSecretKey,omitempty" validate:"required_if=Role admin"`
}

// AuthAPI is the remote authentication contract.
type AuthAPI interface {
	// Verify resolves the user behind a bearer credential.
	Verify(ctx context.Context, credential string) (*entity.User, error)
	// Login exchanges email/password for a credential.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// Register creates an account. Field errors come back as a ValidationError.
	Register(ctx context.Context, input *RegisterInput) error
}

// CartAPI is the remote cart contract. Every call carries the bearer credential.
type CartAPI interface {
	GetItems(ctx context.Context, credential string) (*entity.CartPayload, error)
	AddItem(ctx context.Context, credential string, input *entity.AddItemInput) error
	UpdateQuantity(ctx context.Context, credential, itemID string, action entity.QuantityAction) error
	DeleteItem(ctx context.Context, credential, itemID string) error
	Clear(ctx context.Context, credential string) error
}

// MenuAPI is the public menu contract.
type MenuAPI interface {
	Filter(ctx context.Context, filter entity.MenuFilter) ([]*entity.CatalogItem, error)
	Popular(ctx context.Context) ([]*entity.CatalogItem, error)
	GetByID(ctx context.Context, id string) (*entity.CatalogItem, error)
}

// AdminCatalogAPI is the admin menu CRUD contract.
type AdminCatalogAPI interface {
	ListAll(ctx context.Context, credential string) ([]*entity.CatalogItem, error)
	Create(ctx context.Context, credential string, input *entity.CatalogItemInput) (*entity.CatalogItem, error)
	Update(ctx context.Context, credential, id string, input *entity.CatalogItemInput) (*entity.CatalogItem, error)
	Delete(ctx context.Context, credential, id string) error
	Deactivate(ctx context.Context, credential, id string) error
	Reactivate(ctx context.Context, credential, id string) error
}

// CreateOrderInput is the body of an order-creation request.
type CreateOrderInput struct {
	DeliveryDetails entity.DeliveryDetails `json:"deliveryDetails"`
	Notes           string                 `json:"notes"`
}

// OrderAPI is the remote order and payment contract.
type OrderAPI interface {
	Create(ctx context.Context, credential string, input *CreateOrderInput) (*entity.PaymentOrder, error)
	RetryPayment(ctx context.Context, credential, orderID string) (*entity.PaymentOrder, error)
	VerifyPayment(ctx context.Context, credential string, confirmation *entity.PaymentConfirmation) error
}

// ProfileUpdateInput carries editable profile fields.
type ProfileUpdateInput struct {
	Name       string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// ProfileAPI is the remote profile contract.
type ProfileAPI interface {
	Get(ctx context.Context, credential string) (*entity.Profile, error)
	Update(ctx context.Context, credential string, input *ProfileUpdateInput) (*entity.User, error)
	UploadPicture(ctx context.Context, credential, filename string, picture io.Reader) (*entity.User, error)
}
