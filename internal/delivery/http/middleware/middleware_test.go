package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionStub struct {
	session entity.Session
}

var _ usecase.SessionUsecase = (*sessionStub)(nil)

func (s *sessionStub) Restore(context.Context) entity.Session { return s.session }
func (s *sessionStub) Session() entity.Session                { return s.session }
func (s *sessionStub) Credential() string                     { return s.session.Credential }
func (s *sessionStub) SetCredential(context.Context, string) (entity.Session, error) {
	return s.session, nil
}
func (s *sessionStub) Login(context.Context, *service.LoginInput) (entity.Session, error) {
	return s.session, nil
}
func (s *sessionStub) Register(context.Context, *service.RegisterInput) error { return nil }
func (s *sessionStub) Logout(context.Context)                                 {}
func (s *sessionStub) Guard(flags usecase.GuardFlags) usecase.GuardDecision {
	return usecase.EvaluateGuard(s.session, flags)
}
func (s *sessionStub) OnCredentialChange(usecase.CredentialListener) func() { return func() {} }

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestGuardMiddleware(t *testing.T) {
	customer := &entity.User{ID: "u1", Role: entity.RoleCustomer}
	admin := &entity.User{ID: "a1", Role: entity.RoleAdmin}

	tests := []struct {
		name       string
		session    entity.Session
		admin      bool
		wantStatus int
		wantCode   string
	}{
		{name: "loading", session: entity.Session{IsLoading: true}, wantStatus: http.StatusServiceUnavailable, wantCode: "SESSION_LOADING"},
		{name: "anonymous", session: entity.Session{}, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHENTICATED"},
		{name: "customer page as customer", session: entity.Session{Credential: "tok", User: customer}, wantStatus: http.StatusOK},
		{name: "customer page as admin", session: entity.Session{Credential: "tok", User: admin}, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "admin page as customer", session: entity.Session{Credential: "tok", User: customer}, admin: true, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "admin page as admin", session: entity.Session{Credential: "tok", User: admin}, admin: true, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewGuardMiddleware(&sessionStub{session: tt.session})
			mw := guard.Customer()
			if tt.admin {
				mw = guard.Admin()
			}

			e := echo.New()
			e.GET("/page", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				resp := decodeResponse(t, rec)
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			}
		})
	}
}

func TestGuardMiddleware_LoadingSetsRetryAfter(t *testing.T) {
	guard := NewGuardMiddleware(&sessionStub{session: entity.Session{IsLoading: true}})

	e := echo.New()
	e.GET("/cart", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, guard.Customer())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.Equal(t, "1", rec.Header().Get(echo.HeaderRetryAfter))
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantFields  map[string]string
		wantDetails bool
	}{
		{
			name:        "domain error",
			err:         errors.WithStack(domainerrors.ErrCatalogItemNotFound.WithDetails("id i9")),
			wantStatus:  http.StatusNotFound,
			wantCode:    "CATALOG_ITEM_NOT_FOUND",
			wantDetails: true,
		},
		{
			name:        "validation error",
			err:         errors.Wrap(domainerrors.NewValidationError(map[string]string{"email": "Email is invalid"}), "login"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantFields:  map[string]string{"email": "Email is invalid"},
			wantDetails: true,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "abandoned request",
			err:        errors.Wrap(context.Canceled, "fetch cart"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "REQUEST_CANCELLED",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantFields, resp.Error.Fields)
			assert.Equal(t, tt.wantDetails, resp.Error.Details != "")
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}
