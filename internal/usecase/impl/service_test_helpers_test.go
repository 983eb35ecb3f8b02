package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"storefront/config"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{API: &config.APIConfig{BaseURL: "http://localhost"}}
	cfg.ApplyDefaults()

	return cfg
}

// newTestStore returns a cart store whose count shim accepts any write.
func newTestStore(t *testing.T) *cart.Store {
	counts := mockRepo.NewMockCartCountStore(t)
	counts.EXPECT().LoadCount(mock.Anything).Return(0).Maybe()
	counts.EXPECT().SaveCount(mock.Anything, mock.Anything).Return().Maybe()

	return cart.NewStore(context.Background(), counts, newDiscardLogger())
}

func catalogItem(id string, regular float64) *entity.CatalogItem {
	return &entity.CatalogItem{ID: id, Name: "item " + id, Price: entity.Price{Regular: regular}, IsActive: true}
}

func cartLine(id string, qty int) entity.CartLine {
	return entity.CartLine{Item: catalogItem(id, 100), Size: entity.SizeRegular, Quantity: qty}
}

func payloadOf(lines ...entity.CartLine) *entity.CartPayload {
	p := entity.NewCartPayload(lines...)

	return &p
}

// stubSession is a fixed session gate for services that only read credentials.
type stubSession struct {
	mu        sync.Mutex
	session   entity.Session
	listeners []usecase.CredentialListener
}

var _ usecase.SessionUsecase = (*stubSession)(nil)

func newStubSession(credential string, role entity.Role) *stubSession {
	s := &stubSession{session: entity.Session{Credential: credential}}
	if credential != "" {
		s.session.User = &entity.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Phone: "999", Role: role}
	}

	return s
}

func (s *stubSession) Restore(context.Context) entity.Session { return s.Session() }

func (s *stubSession) Session() entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session
}

func (s *stubSession) Credential() string { return s.Session().Credential }

func (s *stubSession) SetCredential(ctx context.Context, credential string) (entity.Session, error) {
	s.mu.Lock()
	s.session.Credential = credential
	listeners := append([]usecase.CredentialListener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(ctx, credential)
	}

	return s.Session(), nil
}

func (s *stubSession) Login(context.Context, *service.LoginInput) (entity.Session, error) {
	return s.Session(), nil
}

func (s *stubSession) Register(context.Context, *service.RegisterInput) error { return nil }

func (s *stubSession) Logout(ctx context.Context) { _, _ = s.SetCredential(ctx, "") }

func (s *stubSession) Guard(flags usecase.GuardFlags) usecase.GuardDecision {
	return usecase.EvaluateGuard(s.Session(), flags)
}

func (s *stubSession) OnCredentialChange(l usecase.CredentialListener) func() {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()

	return func() {}
}
