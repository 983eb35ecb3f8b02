package impl

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/validation"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service     *sessionService
	authAPI     *mockSvc.MockAuthAPI
	credentials *mockRepo.MockCredentialRepository
	inspector   *mockSvc.MockCredentialInspector
	store       *cart.Store
	now         time.Time
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	authAPI := mockSvc.NewMockAuthAPI(t)
	credentials := mockRepo.NewMockCredentialRepository(t)
	inspector := mockSvc.NewMockCredentialInspector(t)
	store := newTestStore(t)

	srv := NewSessionService(
		authAPI,
		credentials,
		inspector,
		validation.New(newTestConfig()),
		store,
		newDiscardLogger(),
	).(*sessionService)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return now }

	return sessionServiceFixtures{
		service:     srv,
		authAPI:     authAPI,
		credentials: credentials,
		inspector:   inspector,
		store:       store,
		now:         now,
	}
}

func TestSessionService_StartsLoading(t *testing.T) {
	fx := createTestSessionService(t)

	assert.True(t, fx.service.Session().IsLoading)
	assert.Equal(t, usecase.GuardLoading, fx.service.Guard(usecase.GuardFlags{}).Outcome)
}

func TestSessionService_Restore_NoStoredCredentialSkipsVerify(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.credentials.EXPECT().LoadCredential(ctx).Return(entity.StoredCredential{}, repository.ErrCredentialNotFound)

	var notified []string
	fx.service.OnCredentialChange(func(_ context.Context, credential string) {
		notified = append(notified, credential)
	})

	session := fx.service.Restore(ctx)

	assert.False(t, session.IsLoading)
	assert.Empty(t, session.Credential)
	assert.Nil(t, session.User)
	assert.Equal(t, []string{""}, notified)
	fx.authAPI.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestSessionService_Restore_VerifiesStoredCredential(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1", Name: "Asha", Role: entity.RoleCustomer}

	fx.credentials.EXPECT().LoadCredential(ctx).
		Return(entity.StoredCredential{Token: "tok", ExpiresAt: fx.now.Add(time.Hour)}, nil)
	fx.inspector.EXPECT().Inspect("tok").Return(service.CredentialInfo{}, nil)
	fx.authAPI.EXPECT().Verify(ctx, "tok").Return(user, nil)

	session := fx.service.Restore(ctx)

	assert.False(t, session.IsLoading)
	assert.Equal(t, "tok", session.Credential)
	assert.Equal(t, user, session.User)
	assert.Equal(t, usecase.GuardRender, fx.service.Guard(usecase.GuardFlags{RequireNonAdmin: true}).Outcome)
}

func TestSessionService_Restore_ExpiredStoredCredentialIsDiscarded(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.credentials.EXPECT().LoadCredential(ctx).
		Return(entity.StoredCredential{Token: "old", ExpiresAt: fx.now.Add(-time.Minute)}, nil)
	fx.credentials.EXPECT().DeleteCredential(ctx).Return(nil).Once()

	session := fx.service.Restore(ctx)

	assert.Empty(t, session.Credential)
	assert.False(t, session.IsLoading)
	fx.authAPI.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestSessionService_Restore_RejectedCredentialClearsSession(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.credentials.EXPECT().LoadCredential(ctx).Return(entity.StoredCredential{Token: "tok"}, nil)
	fx.inspector.EXPECT().Inspect("tok").Return(service.CredentialInfo{}, nil)
	fx.authAPI.EXPECT().Verify(ctx, "tok").
		Return(nil, &domainerrors.RemoteError{Status: http.StatusUnauthorized, ServerMessage: "Invalid token"})
	fx.credentials.EXPECT().DeleteCredential(ctx).Return(nil).Once()

	session := fx.service.Restore(ctx)

	assert.Empty(t, session.Credential)
	assert.Nil(t, session.User)
	assert.False(t, session.IsLoading)
	assert.Equal(t, usecase.GuardDecision{Outcome: usecase.GuardRedirect, Redirect: entity.RouteLogin},
		fx.service.Guard(usecase.GuardFlags{}))
}

func TestSessionService_Restore_TransportErrorKeepsCredential(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.credentials.EXPECT().LoadCredential(ctx).Return(entity.StoredCredential{Token: "tok"}, nil)
	fx.inspector.EXPECT().Inspect("tok").Return(service.CredentialInfo{}, nil)
	fx.authAPI.EXPECT().Verify(ctx, "tok").
		Return(nil, &domainerrors.TransportError{Method: "GET", Path: "/api/auth/verify", Err: errors.New("connection refused")})

	session := fx.service.Restore(ctx)

	assert.Equal(t, "tok", session.Credential)
	assert.Nil(t, session.User)
	fx.credentials.AssertNotCalled(t, "DeleteCredential", mock.Anything)
}

func TestSessionService_SetCredential_PersistsAndResolves(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	expires := fx.now.Add(30 * 24 * time.Hour)
	admin := &entity.User{ID: "a1", Role: entity.RoleAdmin}

	fx.inspector.EXPECT().ExpiryFor("tok", fx.now).Return(expires)
	fx.credentials.EXPECT().SaveCredential(ctx, entity.StoredCredential{Token: "tok", ExpiresAt: expires}).Return(nil)
	fx.inspector.EXPECT().Inspect("tok").Return(service.CredentialInfo{ExpiresAt: expires}, nil)
	fx.authAPI.EXPECT().Verify(ctx, "tok").Return(admin, nil)

	var notified []string
	fx.service.OnCredentialChange(func(_ context.Context, credential string) {
		notified = append(notified, credential)
	})

	session, err := fx.service.SetCredential(ctx, "tok")

	require.NoError(t, err)
	assert.Equal(t, admin, session.User)
	assert.Equal(t, []string{"tok"}, notified)
	assert.Equal(t, usecase.GuardDecision{Outcome: usecase.GuardRedirect, Redirect: entity.RouteAdmin},
		fx.service.Guard(usecase.GuardFlags{RequireNonAdmin: true}))
}

func TestSessionService_SetCredential_ExpiredClaimSkipsVerify(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.inspector.EXPECT().ExpiryFor("tok", fx.now).Return(fx.now.Add(-time.Second))
	fx.credentials.EXPECT().SaveCredential(ctx, mock.Anything).Return(nil)
	fx.inspector.EXPECT().Inspect("tok").Return(service.CredentialInfo{ExpiresAt: fx.now.Add(-time.Second)}, nil)
	fx.credentials.EXPECT().DeleteCredential(ctx).Return(nil)

	session, err := fx.service.SetCredential(ctx, "tok")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
	assert.Empty(t, session.Credential)
	fx.authAPI.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestSessionService_SetCredential_EmptyClearsWithoutNetwork(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.credentials.EXPECT().DeleteCredential(ctx).Return(nil)

	session, err := fx.service.SetCredential(ctx, "")

	require.NoError(t, err)
	assert.Empty(t, session.Credential)
	assert.Nil(t, session.User)
	fx.authAPI.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestSessionService_StaleVerificationIsDropped(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.inspector.EXPECT().ExpiryFor("first", fx.now).Return(time.Time{})
	fx.credentials.EXPECT().SaveCredential(ctx, mock.Anything).Return(nil)
	fx.inspector.EXPECT().Inspect("first").Return(service.CredentialInfo{}, nil)
	fx.credentials.EXPECT().DeleteCredential(ctx).Return(nil)

	// the user logs out while verification of the first credential is in flight
	fx.authAPI.EXPECT().Verify(ctx, "first").
		Run(func(ctx context.Context, _ string) {
			fx.service.Logout(ctx)
		}).
		Return(&entity.User{ID: "u1"}, nil)

	session, err := fx.service.SetCredential(ctx, "first")

	require.NoError(t, err, "a superseded credential is not an expiry")
	assert.Empty(t, session.Credential)
	assert.Nil(t, session.User)
}

func TestSessionService_Login_ValidationBlocksRequest(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.Login(context.Background(), &service.LoginInput{Email: "not-an-email"})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
	fx.authAPI.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	input := &service.LoginInput{Email: "asha@example.com", Password: "secret1"}
	user := &entity.User{ID: "u1", Email: input.Email, Role: entity.RoleCustomer}

	fx.authAPI.EXPECT().Login(ctx, input).Return(&service.LoginOutput{Token: "tok", User: user}, nil)
	fx.inspector.EXPECT().ExpiryFor("tok", fx.now).Return(time.Time{})
	fx.credentials.EXPECT().SaveCredential(ctx, entity.StoredCredential{Token: "tok"}).Return(nil)
	fx.inspector.EXPECT().Inspect("tok").Return(service.CredentialInfo{}, nil)
	fx.authAPI.EXPECT().Verify(ctx, "tok").Return(user, nil)

	session, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "tok", session.Credential)
	assert.Equal(t, user, session.User)
}

func TestSessionService_Login_RejectedKeepsSessionEmpty(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	input := &service.LoginInput{Email: "asha@example.com", Password: "wrong"}

	fx.authAPI.EXPECT().Login(ctx, input).
		Return(nil, &domainerrors.RemoteError{Status: http.StatusBadRequest, ServerMessage: "Invalid credentials"})

	session, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	remote, ok := domainerrors.AsRemote(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid credentials", remote.ServerMessage)
	assert.Empty(t, session.Credential)
}

func TestSessionService_Register_AdminNeedsSecret(t *testing.T) {
	fx := createTestSessionService(t)

	err := fx.service.Register(context.Background(), &service.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
		Role:     entity.RoleAdmin,
	})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "adminSecretKey")
	fx.authAPI.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestSessionService_Logout_ClearsSessionAndCart(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.store.Dispatch(ctx, cart.SetCart{Payload: *payloadOf(cartLine("a", 2), cartLine("b", 1))})
	fx.credentials.EXPECT().DeleteCredential(ctx).Return(nil)

	var notified []string
	fx.service.OnCredentialChange(func(_ context.Context, credential string) {
		notified = append(notified, credential)
	})

	fx.service.Logout(ctx)

	session := fx.service.Session()
	assert.Empty(t, session.Credential)
	assert.Nil(t, session.User)
	assert.Equal(t, 0, fx.store.Snapshot().Count)
	assert.Empty(t, fx.store.Snapshot().Lines)
	assert.Equal(t, []string{""}, notified)
}
