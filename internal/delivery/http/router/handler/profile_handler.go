package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const profilePictureField = "profilePicture"

type scanRequest struct {
	QRData string `json:"qrData"`
}

// ProfileHandler serves the profile page and order status QR codes.
type ProfileHandler struct {
	profiles usecase.ProfileUsecase
	logger   *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profiles usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profiles.GetProfile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var input service.ProfileUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	user, err := h.profiles.UpdateProfile(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}

func (h *ProfileHandler) UploadPicture(c echo.Context) error {
	file, err := c.FormFile(profilePictureField)
	if err != nil {
		return response.BindingError(c, "Picture is required")
	}

	src, err := file.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded picture")
	}
	defer src.Close()

	user, err := h.profiles.UploadPicture(c.Request().Context(), file.Filename, src)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile picture updated")
}

// OrderStatusQR renders the order status QR code as a PNG.
func (h *ProfileHandler) OrderStatusQR(c echo.Context) error {
	png, err := h.profiles.OrderStatusQR(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ScanOrderStatusQR resolves scanned QR content to the order it links to.
func (h *ProfileHandler) ScanOrderStatusQR(c echo.Context) error {
	var req scanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid QR code input")
	}

	link, err := h.profiles.ResolveOrderStatusQR(c.Request().Context(), req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, link)
}
