package entity

import "github.com/google/uuid"

// MutationKind names an optimistic cart operation.
type MutationKind string

const (
	MutationUpdateQuantity MutationKind = "update_quantity"
	MutationDeleteItem     MutationKind = "delete_item"
	MutationClearCart      MutationKind = "clear_cart"
	MutationAddItem        MutationKind = "add_item"
)

// MutationState is the lifecycle of an optimistic update.
type MutationState string

const (
	MutationPending    MutationState = "pending"
	MutationCommitted  MutationState = "committed"
	MutationRolledBack MutationState = "rolled_back"
)

// Mutation records one optimistic cart change. It starts Pending once the
// local change is applied and ends Committed (remote accepted) or RolledBack
// (remote failed and the cart was resynchronized).
type Mutation struct {
	ID       uuid.UUID     `json:"id"`
	Kind     MutationKind  `json:"kind"`
	ItemID   string        `json:"itemId,omitempty"`
	Quantity int           `json:"quantity,omitempty"`
	State    MutationState `json:"state"`
	Err      error         `json:"-"`
}

// NewMutation creates a pending mutation.
func NewMutation(kind MutationKind, itemID string) *Mutation {
	return &Mutation{
		ID:     uuid.New(),
		Kind:   kind,
		ItemID: itemID,
		State:  MutationPending,
	}
}
