package remote

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClientWithHTTP(&config.APIConfig{
		BaseURL:   server.URL + "/",
		Timeout:   2 * time.Second,
		UserAgent: "storefront-test",
	}, server.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestCartAPI_GetItems_KeepsDanglingLinesInRawPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cart/getItems", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(deliverycontext.HeaderXRequestID))

		_, _ = io.WriteString(w, `{"data":{"foodItems":[
			{"itemId":{"_id":"x","name":"Pizza","price":{"regular":100,"large":180}},"size":"regular","quantity":2},
			{"itemId":null,"size":"LARGE","quantity":1}
		]},"length":2}`)
	})

	payload, err := NewCartAPI(client).GetItems(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, payload.Data.FoodItems, 2)

	first := payload.Data.FoodItems[0]
	assert.Equal(t, "x", first.ItemID())
	assert.Equal(t, entity.SizeRegular, first.Size)
	assert.InDelta(t, 200, first.Subtotal(), 0.001)

	second := payload.Data.FoodItems[1]
	assert.False(t, second.HasItem())
	assert.Equal(t, entity.SizeLarge, second.Size)
}

func TestCartAPI_UpdateQuantity_SendsAction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/cart/update/abc", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "decrease", body["action"])

		w.WriteHeader(http.StatusOK)
	})

	err := NewCartAPI(client).UpdateQuantity(context.Background(), "tok", "abc", entity.ActionDecrease)
	assert.NoError(t, err)
}

func TestClient_PropagatesRequestID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-123", r.Header.Get(deliverycontext.HeaderXRequestID))
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	assert.NoError(t, NewCartAPI(client).Clear(ctx, "tok"))
}

func TestClient_NonSuccessBecomesRemoteError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Item not in cart"}`)
	})

	err := NewCartAPI(client).DeleteItem(context.Background(), "tok", "missing")
	require.Error(t, err)

	remoteErr, ok := domainerrors.AsRemote(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, remoteErr.Status)
	assert.Equal(t, "Item not in cart", remoteErr.Message())
	assert.Equal(t, "/cart/deleteItem/missing", remoteErr.Path)
}

func TestClient_ServerErrorMapsToBadGateway(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	err := NewCartAPI(client).Clear(context.Background(), "tok")
	remoteErr, ok := domainerrors.AsRemote(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, remoteErr.HTTPCode())
	assert.Equal(t, "boom", remoteErr.ServerMessage)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, err := NewClientWithHTTP(&config.APIConfig{BaseURL: baseURL, Timeout: time.Second},
		&http.Client{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = NewCartAPI(client).GetItems(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, domainerrors.IsTransport(err))
	assert.Contains(t, domainerrors.UserMessage(err), "waking up")
}

func TestAuthAPI_VerifyAndLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/api/verify":
			if r.Header.Get("Authorization") != "Bearer good" {
				w.WriteHeader(http.StatusUnauthorized)

				return
			}
			_, _ = io.WriteString(w, `{"user":{"_id":"u1","name":"Ann","role":"ADMIN"}}`)
		case "/auth/login":
			var in service.LoginInput
			_ = json.NewDecoder(r.Body).Decode(&in)
			if in.Password != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"message":"Invalid credentials"}`)

				return
			}
			_, _ = io.WriteString(w, `{"token":"good","user":{"_id":"u1","role":"customer"}}`)
		}
	})
	api := NewAuthAPI(client)
	ctx := context.Background()

	user, err := api.Verify(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)

	_, err = api.Verify(ctx, "bad")
	remoteErr, ok := domainerrors.AsRemote(err)
	require.True(t, ok)
	assert.True(t, remoteErr.IsUnauthorized())

	out, err := api.Login(ctx, &service.LoginInput{Email: "a@b.co", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "good", out.Token)

	_, err = api.Login(ctx, &service.LoginInput{Email: "a@b.co", Password: "nope"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthAPI_RegisterFieldErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"errors":[{"field":"email","message":"Email already registered"}]}`)
	})

	err := NewAuthAPI(client).Register(context.Background(), &service.RegisterInput{
		Name: "Ann", Email: "a@b.co", Password: "secret1", Role: entity.RoleCustomer,
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Email already registered", validationErr.Fields["email"])
}

func TestMenuAPI_FilterDefaultsToAllCategories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/foodItems/filter/all", r.URL.Path)
		assert.Equal(t, "veg", r.URL.Query().Get("type"))
		assert.Equal(t, "pan", r.URL.Query().Get("search"))
		_, _ = io.WriteString(w, `{"food":[{"_id":"1","name":"Paneer"}]}`)
	})

	items, err := NewMenuAPI(client).Filter(context.Background(), entity.MenuFilter{Type: "veg", Search: "pan"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Paneer", items[0].Name)
}

func TestOrderAPI_CreateAndRetry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders/create":
			var in service.CreateOrderInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "ann@example.com", in.DeliveryDetails.Email)
			_, _ = io.WriteString(w, `{"order":{"razorpayOrderId":"rzp_1","amount":450}}`)
		case "/orders/o-9/retry-payment":
			_, _ = io.WriteString(w, `{"order":{"razorpayOrderId":"rzp_2","amount":450,"currency":"INR"}}`)
		}
	})
	api := NewOrderAPI(client)

	order, err := api.Create(context.Background(), "tok", &service.CreateOrderInput{
		DeliveryDetails: entity.DeliveryDetails{Email: "ann@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "rzp_1", order.RazorpayOrderID)

	retry, err := api.RetryPayment(context.Background(), "tok", "o-9")
	require.NoError(t, err)
	assert.Equal(t, "INR", retry.Currency)
}

func TestProfileAPI_UploadPictureIsMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		file, header, err := r.FormFile(pictureField)
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "me.png", header.Filename)
		assert.Equal(t, "png-bytes", string(data))
		_, _ = io.WriteString(w, `{"user":{"_id":"u1","profilePicture":"https://cdn/me.png"}}`)
	})

	user, err := NewProfileAPI(client).UploadPicture(context.Background(), "tok", "me.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/me.png", user.ProfilePicture)
}
