// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// ProfileUsecase defines the interface for profile-related operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, input *service.ProfileUpdateInput) (*entity.User, error)
	UploadPicture(ctx context.Context, filename string, picture io.Reader) (*entity.User, error)
	// OrderStatusQR renders a QR code linking to the order's status view.
	OrderStatusQR(ctx context.Context, orderID string) ([]byte, error)
	// ResolveOrderStatusQR decodes a scanned order-status QR code into its link.
	ResolveOrderStatusQR(ctx context.Context, qrData string) (*service.OrderStatusLink, error)
}
