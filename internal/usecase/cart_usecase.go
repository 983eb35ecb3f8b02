// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
)

// CartUsecase is the cart synchronizer. It applies optimistic changes to the
// cart store and resynchronizes with a full fetch whenever the remote disagrees.
type CartUsecase interface {
	// FetchCart replaces the local cart with the remote one, or with an empty
	// cart when the fetch fails.
	FetchCart(ctx context.Context) (cart.State, error)
	AddItem(ctx context.Context, input *entity.AddItemInput) (entity.AddItemResult, error)
	UpdateQuantity(ctx context.Context, itemID string, action entity.QuantityAction) (cart.State, error)
	DeleteItem(ctx context.Context, itemID string) (cart.State, error)
	ClearCart(ctx context.Context) (cart.State, error)
	Snapshot() cart.State
	// OnMutation registers l for every optimistic mutation transition.
	OnMutation(l MutationListener) (unsubscribe func())
}

// MutationListener observes Pending, Committed and RolledBack transitions.
type MutationListener func(m entity.Mutation)
