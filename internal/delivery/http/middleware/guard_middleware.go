package middleware

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const loadingRetryAfter = 1 // seconds

// GuardMiddleware applies the route guard to protected gateway routes.
type GuardMiddleware struct {
	session usecase.SessionUsecase
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(session usecase.SessionUsecase) *GuardMiddleware {
	return &GuardMiddleware{session: session}
}

// Require only lets the request through when the guard decides to render.
// While the session is still loading the request is refused with 503 and no
// redirect, so a slow startup never bounces the user to the login page.
func (m *GuardMiddleware) Require(flags usecase.GuardFlags) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := m.session.Guard(flags)

			switch decision.Outcome {
			case usecase.GuardRender:
				return next(c)

			case usecase.GuardLoading:
				c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(loadingRetryAfter))

				return response.Rejected(c, http.StatusServiceUnavailable, "SESSION_LOADING",
					"Session is still loading", decision)

			default:
				if decision.Redirect == entity.RouteLogin {
					return response.Rejected(c, http.StatusUnauthorized, "UNAUTHENTICATED",
						"Please log in to continue", decision)
				}

				return response.Rejected(c, http.StatusForbidden, "FORBIDDEN",
					"This page is not available for your account", decision)
			}
		}
	}
}

// Customer guards pages that admins are sent away from.
func (m *GuardMiddleware) Customer() echo.MiddlewareFunc {
	return m.Require(usecase.GuardFlags{RequireNonAdmin: true})
}

// Admin guards admin-only pages.
func (m *GuardMiddleware) Admin() echo.MiddlewareFunc {
	return m.Require(usecase.GuardFlags{RequireAdmin: true})
}
