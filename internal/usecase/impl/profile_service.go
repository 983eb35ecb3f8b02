// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	api       service.ProfileAPI
	session   usecase.SessionUsecase
	qrcodes   service.QRCodeService
	validator service.FormValidator
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	api service.ProfileAPI,
	session usecase.SessionUsecase,
	qrcodes service.QRCodeService,
	validator service.FormValidator,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		api:       api,
		session:   session,
		qrcodes:   qrcodes,
		validator: validator,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the user, order statistics and orders.
func (srv *profileService) GetProfile(ctx context.Context) (*entity.Profile, error) {
	credential := srv.session.Credential()
	if credential == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	srv.log(ctx).Debug("Getting user profile")

	profile, err := srv.api.Get(ctx, credential)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return profile, nil
}

// UpdateProfile updates editable profile fields.
func (srv *profileService) UpdateProfile(ctx context.Context, input *service.ProfileUpdateInput) (*entity.User, error) {
	credential := srv.session.Credential()
	if credential == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	user, err := srv.api.Update(ctx, credential, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	srv.log(ctx).Info("Updated user profile", slog.String("user_id", user.ID))

	return user, nil
}

// UploadPicture replaces the profile picture.
func (srv *profileService) UploadPicture(ctx context.Context, filename string, picture io.Reader) (*entity.User, error) {
	credential := srv.session.Credential()
	if credential == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if filename == "" || picture == nil {
		return nil, domainerrors.NewValidationError(map[string]string{"profilePicture": "Picture is required"})
	}

	user, err := srv.api.UploadPicture(ctx, credential, filename, picture)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload profile picture")
	}

	srv.log(ctx).Info("Uploaded profile picture", slog.String("user_id", user.ID))

	return user, nil
}

// OrderStatusQR renders a QR code linking to the order's status view.
func (srv *profileService) OrderStatusQR(ctx context.Context, orderID string) ([]byte, error) {
	if srv.session.Credential() == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	png, err := srv.qrcodes.GenerateOrderStatusQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order status QR code")
	}

	return png, nil
}

// ResolveOrderStatusQR decodes a scanned order-status QR code. Content that is
// not an order-status link is a validation failure, not a server error.
func (srv *profileService) ResolveOrderStatusQR(ctx context.Context, qrData string) (*service.OrderStatusLink, error) {
	if srv.session.Credential() == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	link, err := srv.qrcodes.ParseOrderStatusQR(qrData)
	if err != nil {
		srv.log(ctx).Info("Rejected order status QR code", slog.Any("error", err))

		return nil, domainerrors.NewValidationError(map[string]string{
			"qrData": "QR code is not an order status link",
		})
	}

	return link, nil
}
