package remote

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

type authAPI struct {
	client *Client
}

// NewAuthAPI creates the remote authentication adapter.
func NewAuthAPI(client *Client) service.AuthAPI {
	return &authAPI{client: client}
}

type userEnvelope struct {
	User *entity.User `json:"user"`
}

// Verify resolves the user behind a credential via GET /auth/api/verify.
func (a *authAPI) Verify(ctx context.Context, credential string) (*entity.User, error) {
	var out userEnvelope
	if err := a.client.do(ctx, request{
		method:     http.MethodGet,
		path:       "/auth/api/verify",
		credential: credential,
	}, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, errors.New("verify response carries no user")
	}

	return out.User, nil
}

// Login exchanges email and password for a credential.
func (a *authAPI) Login(ctx context.Context, input *service.LoginInput) (*service.LoginOutput, error) {
	var out service.LoginOutput
	if err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   input,
	}, &out); err != nil {
		if remoteErr, ok := domainerrors.AsRemote(err); ok && (remoteErr.Status == http.StatusUnauthorized || remoteErr.Status == http.StatusBadRequest) && len(remoteErr.Fields) == 0 {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials.WithDetails(remoteErr.ServerMessage), "login rejected")
		}

		return nil, err
	}
	if out.Token == "" {
		return nil, errors.New("login response carries no token")
	}

	return &out, nil
}

// Register creates an account. Server-side field errors become a ValidationError.
func (a *authAPI) Register(ctx context.Context, input *service.RegisterInput) error {
	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/register",
		body:   input,
	}, nil)
	if remoteErr, ok := domainerrors.AsRemote(err); ok && len(remoteErr.Fields) > 0 {
		return domainerrors.NewValidationError(remoteErr.Fields)
	}

	return err
}
