// Package response renders the gateway's JSON envelope.
package response

import (
	"net/http"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool                    `json:"success"`
	Code    int                     `json:"code"`    // HTTP status code
	Message string                  `json:"message"` // User-friendly message
	Data    any                     `json:"data,omitempty"`
	Error   *domainerrors.ErrorInfo `json:"error,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// OK is Success with 200.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data, "")
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode, message string, info *domainerrors.ErrorInfo) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if info == nil {
		info = &domainerrors.ErrorInfo{}
	}
	info.Code = errorCode

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error:   info,
	})
}

// Rejected is an error response that also carries data, e.g. where to go next.
func Rejected(c echo.Context, statusCode int, errorCode, message string, data any) error {
	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Data:    data,
		Error:   &domainerrors.ErrorInfo{Code: errorCode},
	})
}

// BindingError binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}
