package middleware

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Field messages
// from local validation and from the backend are passed through so the UI can
// show them next to their inputs.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		info := &domainerrors.ErrorInfo{Fields: fieldsOf(err)}
		if appErr.HTTPCode() < http.StatusInternalServerError {
			info.Details = appErr.Details()
		} else {
			m.logger.Warn("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), info)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	if errors.IsCanceled(err) {
		m.logger.Debug("Request abandoned", slog.String("path", c.Request().URL.Path))
		_ = response.Error(c, http.StatusServiceUnavailable, "REQUEST_CANCELLED", "Request was cancelled", nil)

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), nil)
}

func fieldsOf(err error) map[string]string {
	if verr, ok := errors.AsType[*domainerrors.ValidationError](err); ok {
		return verr.Fields
	}
	if remote, ok := errors.AsType[*domainerrors.RemoteError](err); ok {
		return remote.Fields
	}

	return nil
}
