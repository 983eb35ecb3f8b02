// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	mu        sync.RWMutex
	session   entity.Session
	gen       uint64 // bumped on every credential change; stale verifications are dropped
	listeners map[int]usecase.CredentialListener
	nextID    int

	authAPI     service.AuthAPI
	credentials repository.CredentialRepository
	inspector   service.CredentialInspector
	validator   service.FormValidator
	store       *cart.Store
	now         func() time.Time
	logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService. The session starts
// in the loading state until Restore completes.
func NewSessionService(
	authAPI service.AuthAPI,
	credentials repository.CredentialRepository,
	inspector service.CredentialInspector,
	validator service.FormValidator,
	store *cart.Store,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		session:     entity.Session{IsLoading: true},
		listeners:   make(map[int]usecase.CredentialListener),
		authAPI:     authAPI,
		credentials: credentials,
		inspector:   inspector,
		validator:   validator,
		store:       store,
		now:         time.Now,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Restore loads the stored credential and resolves it.
func (srv *sessionService) Restore(ctx context.Context) entity.Session {
	credential := ""

	stored, err := srv.credentials.LoadCredential(ctx)
	switch {
	case errors.Is(err, repository.ErrCredentialNotFound):
		srv.log(ctx).Debug("No stored credential")
	case err != nil:
		srv.log(ctx).Warn("Failed to load stored credential", slog.Any("error", err))
	case srv.expired(stored):
		srv.log(ctx).Info("Stored credential expired, discarding")
		srv.forget(ctx)
	default:
		credential = stored.Token
	}

	srv.mu.Lock()
	srv.gen++
	gen := srv.gen
	srv.session.Credential = credential
	srv.mu.Unlock()

	session := srv.resolve(ctx, gen, credential)

	srv.mu.Lock()
	srv.session.IsLoading = false
	session = srv.session
	srv.mu.Unlock()

	srv.notify(ctx, session.Credential)

	return session
}

// Session returns a copy of the current session.
func (srv *sessionService) Session() entity.Session {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.session
}

// Credential implements service.CredentialProvider.
func (srv *sessionService) Credential() string {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.session.Credential
}

// SetCredential persists credential and resolves the user behind it.
func (srv *sessionService) SetCredential(ctx context.Context, credential string) (entity.Session, error) {
	if credential == "" {
		srv.forget(ctx)
		srv.mu.Lock()
		srv.gen++
		srv.session.Credential = ""
		srv.session.User = nil
		session := srv.session
		srv.mu.Unlock()

		srv.notify(ctx, "")

		return session, nil
	}

	stored := entity.StoredCredential{
		Token:     credential,
		ExpiresAt: srv.inspector.ExpiryFor(credential, srv.now()),
	}
	if err := srv.credentials.SaveCredential(ctx, stored); err != nil {
		// the in-memory session still works; only restarts lose it
		srv.log(ctx).Warn("Failed to persist credential", slog.Any("error", err))
	}

	srv.mu.Lock()
	srv.gen++
	gen := srv.gen
	srv.session.Credential = credential
	srv.mu.Unlock()

	session := srv.resolve(ctx, gen, credential)
	srv.notify(ctx, session.Credential)

	if session.Credential == "" && srv.current(gen) {
		return session, errors.WithStack(domainerrors.ErrSessionExpired)
	}

	return session, nil
}

// Login exchanges email and password for a credential.
func (srv *sessionService) Login(ctx context.Context, input *service.LoginInput) (entity.Session, error) {
	if err := srv.validator.Validate(input); err != nil {
		return srv.Session(), err
	}

	out, err := srv.authAPI.Login(ctx, input)
	if err != nil {
		srv.log(ctx).Info("Login rejected", slog.String("email", input.Email), slog.Any("error", err))

		return srv.Session(), errors.Wrap(err, "login failed")
	}

	srv.log(ctx).Info("User logged in", slog.String("email", input.Email))

	return srv.SetCredential(ctx, out.Token)
}

// Register creates an account; the user logs in afterwards.
func (srv *sessionService) Register(ctx context.Context, input *service.RegisterInput) error {
	if err := srv.validator.Validate(input); err != nil {
		return err
	}

	if err := srv.authAPI.Register(ctx, input); err != nil {
		return errors.Wrap(err, "registration failed")
	}

	srv.log(ctx).Info("User registered", slog.String("email", input.Email), slog.String("role", input.Role.String()))

	return nil
}

// Logout clears the session and the cart.
func (srv *sessionService) Logout(ctx context.Context) {
	srv.forget(ctx)

	srv.mu.Lock()
	srv.gen++
	srv.session.Credential = ""
	srv.session.User = nil
	srv.mu.Unlock()

	// listeners drop fetches of the old session before the cart is cleared
	srv.notify(ctx, "")
	srv.store.Dispatch(ctx, cart.ClearCart{})

	srv.log(ctx).Info("User logged out")
}

// Guard evaluates the route guard against the current session.
func (srv *sessionService) Guard(flags usecase.GuardFlags) usecase.GuardDecision {
	return usecase.EvaluateGuard(srv.Session(), flags)
}

// OnCredentialChange registers a listener.
func (srv *sessionService) OnCredentialChange(l usecase.CredentialListener) func() {
	srv.mu.Lock()
	id := srv.nextID
	srv.nextID++
	srv.listeners[id] = l
	srv.mu.Unlock()

	return func() {
		srv.mu.Lock()
		delete(srv.listeners, id)
		srv.mu.Unlock()
	}
}

// resolve verifies credential remotely and applies the outcome, unless a
// newer credential change happened meanwhile.
func (srv *sessionService) resolve(ctx context.Context, gen uint64, credential string) entity.Session {
	if credential == "" {
		return srv.apply(gen, func(s *entity.Session) { s.User = nil })
	}

	if info, err := srv.inspector.Inspect(credential); err == nil && !info.ExpiresAt.IsZero() && !srv.now().Before(info.ExpiresAt) {
		srv.log(ctx).Info("Credential expired before verification")
		srv.forget(ctx)

		return srv.apply(gen, func(s *entity.Session) {
			s.Credential = ""
			s.User = nil
		})
	}

	user, err := srv.authAPI.Verify(ctx, credential)
	switch {
	case err == nil:
		srv.log(ctx).Debug("Credential verified", slog.String("user_id", user.ID), slog.String("role", user.Role.String()))

		return srv.apply(gen, func(s *entity.Session) { s.User = user })

	case domainerrors.IsTransport(err):
		// a cold backend is not a reason to log the user out
		srv.log(ctx).Warn("Credential verification unreachable, keeping credential", slog.Any("error", err))

		return srv.apply(gen, func(s *entity.Session) { s.User = nil })

	default:
		srv.log(ctx).Info("Credential rejected, clearing session", slog.Any("error", err))

		session := srv.apply(gen, func(s *entity.Session) {
			s.Credential = ""
			s.User = nil
		})
		if session.Credential == "" {
			srv.forget(ctx)
		}

		return session
	}
}

func (srv *sessionService) apply(gen uint64, fn func(s *entity.Session)) entity.Session {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if gen == srv.gen {
		fn(&srv.session)
	}

	return srv.session
}

// current reports whether no credential change happened since gen.
func (srv *sessionService) current(gen uint64) bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return gen == srv.gen
}

func (srv *sessionService) expired(stored entity.StoredCredential) bool {
	return stored.Token == "" || stored.Expired(srv.now())
}

func (srv *sessionService) forget(ctx context.Context) {
	if err := srv.credentials.DeleteCredential(ctx); err != nil {
		srv.log(ctx).Warn("Failed to delete stored credential", slog.Any("error", err))
	}
}

func (srv *sessionService) notify(ctx context.Context, credential string) {
	srv.mu.RLock()
	listeners := make([]usecase.CredentialListener, 0, len(srv.listeners))
	for _, l := range srv.listeners {
		listeners = append(listeners, l)
	}
	srv.mu.RUnlock()

	for _, l := range listeners {
		l(ctx, credential)
	}
}
