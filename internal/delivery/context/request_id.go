// Package context carries per-event values from the gateway into usecases
// and outbound backend calls: the request id and a logger already tagged
// with it.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
)

// echoRequestIDKey is where the id lives on echo.Context.
const echoRequestIDKey = "request_id"

// HeaderXRequestID is read from UI events and forwarded to the backend.
const HeaderXRequestID = echo.HeaderXRequestID

// GetRequestID returns the id the request id middleware assigned, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" outside a UI event, e.g. during startup restore.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the event's logger, or fallback when ctx did not
// come through the gateway.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// Detach returns a context that keeps the request ID and logger of ctx but
// is not cancelled with it. Background resynchronization started by a
// request must outlive that request.
func Detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
