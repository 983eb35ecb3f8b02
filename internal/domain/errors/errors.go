package errors

import (
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches another BaseError with the same business code, so that
// WithDetails copies still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please log in to continue",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please log in again",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have access to this page",
		"",
	)

	// Cart-related errors
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Item not found in cart",
		"",
	)

	ErrCartSyncFailed = NewBaseError(
		http.StatusBadGateway,
		"CART_SYNC_FAILED",
		"Could not update your cart, it has been refreshed",
		"",
	)

	// Catalog-related errors
	ErrCatalogItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CATALOG_ITEM_NOT_FOUND",
		"Menu item not found",
		"",
	)

	ErrConfirmationRequired = NewBaseError(
		http.StatusPreconditionRequired,
		"CONFIRMATION_REQUIRED",
		"Please confirm before deleting this item permanently",
		"",
	)

	// Checkout-related errors
	ErrCheckoutState = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_STATE",
		"Checkout is not in the expected step",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusBadGateway,
		"ORDER_CREATION_FAILED",
		"Could not place your order, please try again",
		"",
	)

	ErrPaymentFailed = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_FAILED",
		"Payment verification failed",
		"",
	)

	ErrPaymentCancelled = NewBaseError(
		http.StatusConflict,
		"PAYMENT_CANCELLED",
		"Payment was cancelled",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// ValidationError carries field-scoped validation messages. It never reaches
// the remote API: submission is blocked locally when one is produced.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a validation error from a field -> message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) HTTPCode() int     { return http.StatusBadRequest }
func (e *ValidationError) ErrorCode() string { return "VALIDATION_FAILED" }
func (e *ValidationError) Message() string   { return "Please correct the highlighted fields" }
func (e *ValidationError) Details() string   { return e.Error() }

// RemoteError represents a non-2xx answer from the backend.
type RemoteError struct {
	Status        int
	Method        string
	Path          string
	ServerMessage string
	Fields        map[string]string // server-side field errors, when reported
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: remote returned %d: %s", e.Method, e.Path, e.Status, e.ServerMessage)
}

// HTTPCode passes client-side statuses through and reports server failures as 502.
func (e *RemoteError) HTTPCode() int {
	if e.Status >= 400 && e.Status < 500 {
		return e.Status
	}

	return http.StatusBadGateway
}

func (e *RemoteError) ErrorCode() string { return "REMOTE_REJECTED" }

func (e *RemoteError) Message() string {
	if e.ServerMessage != "" {
		return e.ServerMessage
	}

	return "The server rejected the request"
}

func (e *RemoteError) Details() string { return e.Error() }

// IsUnauthorized reports whether the backend rejected the bearer credential.
func (e *RemoteError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// TransportError represents a network-level failure reaching the backend.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) HTTPCode() int     { return http.StatusServiceUnavailable }
func (e *TransportError) ErrorCode() string { return "NETWORK_ERROR" }

func (e *TransportError) Message() string {
	return "Cannot reach the server, it may be waking up. Please try again in a moment"
}

func (e *TransportError) Details() string { return e.Error() }

// IsTransport reports whether err was caused by a network failure.
func IsTransport(err error) bool {
	_, ok := errors.AsType[*TransportError](err)

	return ok
}

// AsRemote extracts a RemoteError from err.
func AsRemote(err error) (*RemoteError, bool) {
	return errors.AsType[*RemoteError](err)
}

// UserMessage returns the human readable message for err, falling back to
// the generic internal error message for errors outside the taxonomy.
func UserMessage(err error) string {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Message()
	}

	return ErrInternalError.Message()
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string            `json:"code"`             // Business error code, e.g., "CART_ITEM_NOT_FOUND"
	Details string            `json:"details"`          // Detailed error information
	Fields  map[string]string `json:"fields,omitempty"` // Field-level validation messages
}

// Response is the envelope used when an error is rendered to the UI
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
