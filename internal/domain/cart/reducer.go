// Package cart holds the local cart state: a pure reducer over actions and a
// single-writer store that mirrors the derived item count to durable storage.
package cart

import (
	"slices"

	"storefront/internal/domain/entity"
)

// State is the in-memory view of the cart. Lines never contain dangling
// item references; Count is always the number of lines.
type State struct {
	Lines   []entity.CartLine `json:"lines"`
	Count   int               `json:"count"`
	Loading bool              `json:"loading"`
}

// InitialState is the state before the first fetch. placeholderCount is the
// persisted count from the last session and is shown until a fetch lands.
func InitialState(placeholderCount int) State {
	return State{
		Lines:   []entity.CartLine{},
		Count:   max(placeholderCount, 0),
		Loading: true,
	}
}

// Action is a cart state transition.
type Action interface {
	actionName() string
}

// SetCart replaces the cart wholesale with a fetched payload.
type SetCart struct {
	Payload entity.CartPayload
}

// UpdateQuantity sets the quantity of every line for an item.
type UpdateQuantity struct {
	ItemID   string
	Quantity int
}

// DeleteItem removes every line for an item.
type DeleteItem struct {
	ItemID string
}

// ClearCart empties the cart.
type ClearCart struct{}

// AddItem appends a line. Only the local fallback path uses it; the regular
// add flow refetches instead.
type AddItem struct {
	Line entity.CartLine
}

func (SetCart) actionName() string        { return "SET_CART" }
func (UpdateQuantity) actionName() string { return "UPDATE_QUANTITY" }
func (DeleteItem) actionName() string     { return "DELETE_ITEM" }
func (ClearCart) actionName() string      { return "CLEAR_CART" }
func (AddItem) actionName() string        { return "ADD_ITEM" }

// ActionName returns the conventional upper-case name of an action for logs.
func ActionName(a Action) string {
	return a.actionName()
}

// Reduce is the pure transition function. It never mutates s.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case SetCart:
		lines := liveLines(act.Payload.Data.FoodItems)

		return withLines(s, lines, false)

	case UpdateQuantity:
		quantity := max(act.Quantity, 1)
		lines := make([]entity.CartLine, len(s.Lines))
		for i, line := range s.Lines {
			if line.ItemID() == act.ItemID {
				line.Quantity = quantity
			}
			lines[i] = line
		}

		return withLines(s, lines, s.Loading)

	case DeleteItem:
		lines := slices.DeleteFunc(slices.Clone(s.Lines), func(line entity.CartLine) bool {
			return line.ItemID() == act.ItemID
		})

		return withLines(s, lines, s.Loading)

	case ClearCart:
		return withLines(s, []entity.CartLine{}, false)

	case AddItem:
		lines := slices.Clone(s.Lines)
		if act.Line.HasItem() && act.Line.Quantity > 0 {
			lines = append(lines, act.Line)
		}

		return withLines(s, lines, s.Loading)

	default:
		return s
	}
}

func liveLines(raw []entity.CartLine) []entity.CartLine {
	lines := make([]entity.CartLine, 0, len(raw))
	for _, line := range raw {
		if !line.HasItem() {
			continue
		}
		if line.Quantity < 1 {
			line.Quantity = 1
		}
		lines = append(lines, line)
	}

	return lines
}

func withLines(s State, lines []entity.CartLine, loading bool) State {
	if lines == nil {
		lines = []entity.CartLine{}
	}
	s.Lines = lines
	s.Count = countLive(lines)
	s.Loading = loading

	return s
}

func countLive(lines []entity.CartLine) int {
	n := 0
	for _, line := range lines {
		if line.HasItem() {
			n++
		}
	}

	return n
}

// FindLine returns the first line for an item.
func (s State) FindLine(itemID string) (entity.CartLine, bool) {
	if itemID == "" {
		return entity.CartLine{}, false
	}
	for _, line := range s.Lines {
		if line.ItemID() == itemID {
			return line, true
		}
	}

	return entity.CartLine{}, false
}

// HasItem reports whether any line references the item.
func (s State) HasItem(itemID string) bool {
	_, ok := s.FindLine(itemID)

	return ok
}

// TotalPrice sums price[size] * quantity over the cart.
func (s State) TotalPrice() float64 {
	total := 0.0
	for _, line := range s.Lines {
		total += line.Subtotal()
	}

	return total
}

// Clone returns a copy that shares no slice with s.
func (s State) Clone() State {
	s.Lines = slices.Clone(s.Lines)
	if s.Lines == nil {
		s.Lines = []entity.CartLine{}
	}

	return s
}
