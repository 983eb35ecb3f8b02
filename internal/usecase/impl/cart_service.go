package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

const maxResyncAttempts = 3

// cartService implements the CartUsecase interface.
//
// Every mutation of one item runs under that item's lock, reads its base
// quantity from the store after acquiring it, and bumps the epoch before its
// optimistic dispatch. A fetch only lands if no optimistic change or
// credential change happened since it started, so a slow fetch never
// overwrites a newer local change and never restores a previous session's cart.
type cartService struct {
	store       *cart.Store
	api         service.CartAPI
	credentials service.CredentialProvider
	locks       *util.KeyedMutex
	fetches     singleflight.Group
	epoch       atomic.Uint64

	// applyMu orders epoch bumps against the check-then-dispatch of a fetch.
	applyMu sync.Mutex

	mu         sync.Mutex
	resolved   bool   // a credential was announced at least once
	fetchedFor string // credential the cart was last loaded for
	listeners  map[int]usecase.MutationListener
	nextID     int

	logger *slog.Logger
}

// NewCartService is the constructor for cartService. It loads the cart once
// per session by listening to credential changes.
func NewCartService(
	store *cart.Store,
	api service.CartAPI,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.CartUsecase {
	srv := &cartService{
		store:       store,
		api:         api,
		credentials: session,
		locks:       util.NewKeyedMutex(),
		listeners:   make(map[int]usecase.MutationListener),
		logger:      logger,
	}
	session.OnCredentialChange(srv.onCredentialChange)

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) onCredentialChange(ctx context.Context, credential string) {
	srv.mu.Lock()
	if srv.resolved && credential == srv.fetchedFor {
		srv.mu.Unlock()

		return
	}
	srv.resolved = true
	srv.fetchedFor = credential
	srv.mu.Unlock()

	if credential == "" {
		// in-flight fetches belong to the previous session
		srv.applyMu.Lock()
		srv.epoch.Add(1)
		srv.store.Dispatch(ctx, cart.ClearCart{})
		srv.applyMu.Unlock()

		return
	}

	srv.bump()
	if _, err := srv.FetchCart(ctx); err != nil {
		srv.log(ctx).Warn("Initial cart fetch failed", slog.Any("error", err))
	}
}

// FetchCart loads the remote cart. Concurrent calls in the same epoch share one request.
func (srv *cartService) FetchCart(ctx context.Context) (cart.State, error) {
	state, _, err := srv.fetch(deliverycontext.Detach(ctx))

	return state, err
}

// fetch reports whether its result was applied; a fetch overtaken by an
// optimistic change is dropped.
func (srv *cartService) fetch(ctx context.Context) (cart.State, bool, error) {
	started := srv.epoch.Load()

	credential := srv.credentials.Credential()
	if credential == "" {
		srv.store.Dispatch(ctx, cart.SetCart{Payload: entity.EmptyCartPayload()})

		return srv.store.Snapshot(), true, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	key := strconv.FormatUint(started, 10)
	result, err, _ := srv.fetches.Do(key, func() (any, error) {
		return srv.api.GetItems(ctx, credential)
	})

	srv.applyMu.Lock()
	defer srv.applyMu.Unlock()

	if srv.epoch.Load() != started {
		srv.log(ctx).Debug("Discarding stale cart fetch", slog.Uint64("epoch", started))

		return srv.store.Snapshot(), false, nil
	}

	if err != nil {
		srv.log(ctx).Warn("Cart fetch failed, showing empty cart", slog.Any("error", err))
		srv.store.Dispatch(ctx, cart.SetCart{Payload: entity.EmptyCartPayload()})

		return srv.store.Snapshot(), true, errors.Wrap(err, "failed to fetch cart")
	}

	payload, _ := result.(*entity.CartPayload)
	if payload == nil {
		empty := entity.EmptyCartPayload()
		payload = &empty
	}

	return srv.store.Dispatch(ctx, cart.SetCart{Payload: *payload}), true, nil
}

// AddItem posts the item and always refetches; the server owns merge semantics.
func (srv *cartService) AddItem(ctx context.Context, input *entity.AddItemInput) (entity.AddItemResult, error) {
	ctx = deliverycontext.Detach(ctx)

	credential := srv.credentials.Credential()
	if credential == "" {
		srv.resync(ctx)

		return entity.AddItemResult{}, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	if err := validateAddItem(input); err != nil {
		srv.resync(ctx)

		return entity.AddItemResult{}, err
	}

	unlock := srv.locks.Lock(input.ItemID)
	defer unlock()

	isNew := !srv.store.Snapshot().HasItem(input.ItemID)

	mutation := entity.NewMutation(entity.MutationAddItem, input.ItemID)
	mutation.Quantity = input.Quantity
	srv.bump()
	srv.emit(*mutation)

	if err := srv.api.AddItem(ctx, credential, input); err != nil {
		srv.rollback(ctx, mutation, err)

		return entity.AddItemResult{}, errors.Wrap(err, "failed to add item to cart")
	}

	srv.commit(mutation)
	srv.resync(ctx)

	srv.log(ctx).Info("Item added to cart",
		slog.String("item_id", input.ItemID),
		slog.Int("quantity", input.Quantity),
		slog.Bool("new_item", isNew),
	)

	return entity.AddItemResult{Success: true, IsNewItem: isNew}, nil
}

// UpdateQuantity optimistically moves the quantity one step and PUTs the action.
func (srv *cartService) UpdateQuantity(ctx context.Context, itemID string, action entity.QuantityAction) (cart.State, error) {
	ctx = deliverycontext.Detach(ctx)

	if !action.IsValid() {
		return srv.store.Snapshot(), domainerrors.NewValidationError(map[string]string{
			"action": "Action must be increase or decrease",
		})
	}

	credential := srv.credentials.Credential()
	if credential == "" {
		return srv.store.Snapshot(), errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	unlock := srv.locks.Lock(itemID)
	defer unlock()

	line, ok := srv.store.Snapshot().FindLine(itemID)
	if !ok {
		return srv.notFound(ctx, itemID)
	}

	quantity := action.Apply(line.Quantity)
	mutation := entity.NewMutation(entity.MutationUpdateQuantity, itemID)
	mutation.Quantity = quantity
	srv.optimistic(ctx, mutation, cart.UpdateQuantity{ItemID: itemID, Quantity: quantity})

	if err := srv.api.UpdateQuantity(ctx, credential, itemID, action); err != nil {
		srv.rollback(ctx, mutation, err)

		return srv.store.Snapshot(), errors.Wrap(err, "failed to update quantity")
	}

	srv.commit(mutation)

	return srv.store.Snapshot(), nil
}

// DeleteItem optimistically removes every line of the item and DELETEs it remotely.
func (srv *cartService) DeleteItem(ctx context.Context, itemID string) (cart.State, error) {
	ctx = deliverycontext.Detach(ctx)

	credential := srv.credentials.Credential()
	if credential == "" {
		return srv.store.Snapshot(), errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	unlock := srv.locks.Lock(itemID)
	defer unlock()

	if !srv.store.Snapshot().HasItem(itemID) {
		return srv.notFound(ctx, itemID)
	}

	mutation := entity.NewMutation(entity.MutationDeleteItem, itemID)
	srv.optimistic(ctx, mutation, cart.DeleteItem{ItemID: itemID})

	if err := srv.api.DeleteItem(ctx, credential, itemID); err != nil {
		srv.rollback(ctx, mutation, err)

		return srv.store.Snapshot(), errors.Wrap(err, "failed to delete cart item")
	}

	srv.commit(mutation)

	return srv.store.Snapshot(), nil
}

// ClearCart optimistically empties the cart and clears it remotely.
func (srv *cartService) ClearCart(ctx context.Context) (cart.State, error) {
	ctx = deliverycontext.Detach(ctx)

	credential := srv.credentials.Credential()
	if credential == "" {
		return srv.store.Snapshot(), errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	mutation := entity.NewMutation(entity.MutationClearCart, "")
	srv.optimistic(ctx, mutation, cart.ClearCart{})

	if err := srv.api.Clear(ctx, credential); err != nil {
		srv.rollback(ctx, mutation, err)

		return srv.store.Snapshot(), errors.Wrap(err, "failed to clear cart")
	}

	srv.commit(mutation)

	return srv.store.Snapshot(), nil
}

// Snapshot returns the current cart state.
func (srv *cartService) Snapshot() cart.State {
	return srv.store.Snapshot()
}

// OnMutation registers a mutation listener.
func (srv *cartService) OnMutation(l usecase.MutationListener) func() {
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

func (srv *cartService) notFound(ctx context.Context, itemID string) (cart.State, error) {
	srv.log(ctx).Info("Cart item not found locally, resynchronizing", slog.String("item_id", itemID))
	srv.resync(ctx)

	return srv.store.Snapshot(), errors.WithStack(domainerrors.ErrCartItemNotFound.WithDetails("item " + itemID))
}

// bump invalidates every fetch started before it.
func (srv *cartService) bump() {
	srv.applyMu.Lock()
	srv.epoch.Add(1)
	srv.applyMu.Unlock()
}

func (srv *cartService) optimistic(ctx context.Context, m *entity.Mutation, action cart.Action) {
	srv.applyMu.Lock()
	srv.epoch.Add(1)
	srv.store.Dispatch(ctx, action)
	srv.applyMu.Unlock()
	srv.emit(*m)
}

func (srv *cartService) commit(m *entity.Mutation) {
	m.State = entity.MutationCommitted
	srv.emit(*m)
}

// rollback resynchronizes the cart from the remote and marks m RolledBack.
func (srv *cartService) rollback(ctx context.Context, m *entity.Mutation, cause error) {
	srv.log(ctx).Warn("Cart mutation failed, resynchronizing",
		slog.String("kind", string(m.Kind)),
		slog.String("item_id", m.ItemID),
		slog.Any("error", cause),
	)
	srv.resync(ctx)

	m.State = entity.MutationRolledBack
	m.Err = cause
	srv.emit(*m)
}

// resync refetches until a result lands, so a concurrent mutation on another
// item cannot leave this one's optimistic state in place.
func (srv *cartService) resync(ctx context.Context) {
	for range maxResyncAttempts {
		_, applied, err := srv.fetch(ctx)
		if err != nil {
			srv.log(ctx).Warn("Cart resynchronization failed", slog.Any("error", err))
		}
		if applied {
			return
		}
	}
	srv.log(ctx).Warn("Cart resynchronization kept being overtaken", slog.Int("attempts", maxResyncAttempts))
}

func (srv *cartService) emit(m entity.Mutation) {
	srv.mu.Lock()
	listeners := make([]usecase.MutationListener, 0, len(srv.listeners))
	for _, l := range srv.listeners {
		listeners = append(listeners, l)
	}
	srv.mu.Unlock()

	for _, l := range listeners {
		l(m)
	}
}

func validateAddItem(input *entity.AddItemInput) error {
	if input == nil {
		return domainerrors.NewValidationError(map[string]string{"itemId": "Item is required"})
	}

	fields := map[string]string{}
	if input.ItemID == "" {
		fields["itemId"] = "Item is required"
	}
	if input.Quantity < 1 {
		fields["quantity"] = "Quantity must be at least 1"
	}
	if input.Size == "" {
		input.Size = entity.SizeRegular
	} else if size, ok := entity.ParseSize(string(input.Size)); ok {
		input.Size = size
	} else {
		fields["size"] = "Size must be Regular, Medium or Large"
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}
