package remote

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const pictureField = "profilePicture"

type profileAPI struct {
	client *Client
}

// NewProfileAPI creates the remote profile adapter.
func NewProfileAPI(client *Client) service.ProfileAPI {
	return &profileAPI{client: client}
}

func (a *profileAPI) Get(ctx context.Context, credential string) (*entity.Profile, error) {
	var out entity.Profile
	if err := a.client.do(ctx, request{
		method:     http.MethodGet,
		path:       "/profile",
		credential: credential,
	}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *profileAPI) Update(ctx context.Context, credential string, input *service.ProfileUpdateInput) (*entity.User, error) {
	var out userEnvelope
	if err := a.client.do(ctx, request{
		method:     http.MethodPut,
		path:       "/profile/update",
		credential: credential,
		body:       input,
	}, &out); err != nil {
		return nil, err
	}

	return out.User, nil
}

// UploadPicture sends the picture as a multipart form.
func (a *profileAPI) UploadPicture(ctx context.Context, credential, filename string, picture io.Reader) (*entity.User, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile(pictureField, filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := io.Copy(part, picture); err != nil {
		return nil, errors.Wrap(err, "read picture")
	}
	if err := form.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	var out userEnvelope
	if err := a.client.do(ctx, request{
		method:      http.MethodPost,
		path:        "/profile/upload-picture",
		credential:  credential,
		rawBody:     &buf,
		contentType: form.FormDataContentType(),
	}, &out); err != nil {
		return nil, err
	}

	return out.User, nil
}
