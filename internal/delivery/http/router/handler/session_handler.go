package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler serves login, registration, logout and the route guard.
type SessionHandler struct {
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(session usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{session: session, logger: logger}
}

// sessionView never exposes the credential itself.
type sessionView struct {
	User            *entity.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsAdmin         bool         `json:"isAdmin"`
	IsLoading       bool         `json:"isLoading"`
}

func newSessionView(s entity.Session) sessionView {
	return sessionView{
		User:            s.User,
		IsAuthenticated: s.IsAuthenticated(),
		IsAdmin:         s.User.IsAdmin(),
		IsLoading:       s.IsLoading,
	}
}

type credentialRequest struct {
	Credential string `json:"credential"`
}

// GetSession returns the current session.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.OK(c, newSessionView(h.session.Session()))
}

// Login handles the login form.
func (h *SessionHandler) Login(c echo.Context) error {
	var input service.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	session, err := h.session.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionView(session), "Login successful")
}

// Register handles the registration form.
func (h *SessionHandler) Register(c echo.Context) error {
	var input service.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	if err := h.session.Register(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Registration successful, please log in")
}

// Logout clears the session and the cart.
func (h *SessionHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, newSessionView(h.session.Session()), "Logout successful")
}

// SetCredential installs a credential obtained elsewhere, or clears it when empty.
func (h *SessionHandler) SetCredential(c echo.Context) error {
	var req credentialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid credential input")
	}

	session, err := h.session.SetCredential(c.Request().Context(), req.Credential)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newSessionView(session))
}

// Guard evaluates the route guard for the flags in the query string.
func (h *SessionHandler) Guard(c echo.Context) error {
	var flags usecase.GuardFlags
	if err := c.Bind(&flags); err != nil {
		return response.BindingError(c, "Invalid guard flags")
	}

	return response.OK(c, h.session.Guard(flags))
}
