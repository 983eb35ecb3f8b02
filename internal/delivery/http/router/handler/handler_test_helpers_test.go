package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho returns an echo instance rendering errors like the gateway does.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code   string            `json:"code"`
		Fields map[string]string `json:"fields"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

type fakeCart struct {
	state     cart.State
	err       error
	added     *entity.AddItemInput
	addResult entity.AddItemResult
	itemID    string
	action    entity.QuantityAction
}

var _ usecase.CartUsecase = (*fakeCart)(nil)

func (f *fakeCart) FetchCart(context.Context) (cart.State, error) { return f.state, f.err }

func (f *fakeCart) AddItem(_ context.Context, input *entity.AddItemInput) (entity.AddItemResult, error) {
	f.added = input

	return f.addResult, f.err
}

func (f *fakeCart) UpdateQuantity(_ context.Context, itemID string, action entity.QuantityAction) (cart.State, error) {
	f.itemID, f.action = itemID, action

	return f.state, f.err
}

func (f *fakeCart) DeleteItem(_ context.Context, itemID string) (cart.State, error) {
	f.itemID = itemID

	return f.state, f.err
}

func (f *fakeCart) ClearCart(context.Context) (cart.State, error) { return f.state, f.err }

func (f *fakeCart) Snapshot() cart.State { return f.state }

func (f *fakeCart) OnMutation(usecase.MutationListener) func() { return func() {} }

type fakeSession struct {
	session entity.Session
	flags   usecase.GuardFlags
	err     error
}

var _ usecase.SessionUsecase = (*fakeSession)(nil)

func (f *fakeSession) Restore(context.Context) entity.Session { return f.session }

func (f *fakeSession) Session() entity.Session { return f.session }

func (f *fakeSession) Credential() string { return f.session.Credential }

func (f *fakeSession) SetCredential(_ context.Context, credential string) (entity.Session, error) {
	if f.err != nil {
		return entity.Session{}, f.err
	}
	f.session.Credential = credential

	return f.session, nil
}

func (f *fakeSession) Login(context.Context, *service.LoginInput) (entity.Session, error) {
	return f.session, f.err
}

func (f *fakeSession) Register(context.Context, *service.RegisterInput) error { return f.err }

func (f *fakeSession) Logout(context.Context) { f.session = entity.Session{} }

func (f *fakeSession) Guard(flags usecase.GuardFlags) usecase.GuardDecision {
	f.flags = flags

	return usecase.EvaluateGuard(f.session, flags)
}

func (f *fakeSession) OnCredentialChange(usecase.CredentialListener) func() { return func() {} }
