package entity

// CartLine is one entry in a cart. Item is nil when the referenced catalog
// item was deleted server-side after the line was added; such lines exist in
// raw payloads only and are dropped by the cart store.
type CartLine struct {
	ID       string       `json:"_id,omitempty"`
	Item     *CatalogItem `json:"itemId"`
	Size     Size         `json:"size"`
	Quantity int          `json:"quantity"`
}

// HasItem reports whether the line still references a catalog item.
func (l CartLine) HasItem() bool {
	return l.Item != nil && l.Item.ID != ""
}

// ItemID returns the referenced item id, or "" for a dangling line.
func (l CartLine) ItemID() string {
	if !l.HasItem() {
		return ""
	}

	return l.Item.ID
}

// Subtotal is the line's price for its size times its quantity.
func (l CartLine) Subtotal() float64 {
	if !l.HasItem() {
		return 0
	}

	return l.Item.Price.For(l.Size) * float64(l.Quantity)
}

// CartPayload is the remote cart body: {data:{foodItems:[...]}, length}.
type CartPayload struct {
	Data struct {
		FoodItems []CartLine `json:"foodItems"`
	} `json:"data"`
	Length int `json:"length"`
}

// EmptyCartPayload is applied when a fetch fails so no stale loading state remains.
func EmptyCartPayload() CartPayload {
	var p CartPayload
	p.Data.FoodItems = []CartLine{}

	return p
}

// NewCartPayload builds a payload from lines, mainly for tests and fallbacks.
func NewCartPayload(lines ...CartLine) CartPayload {
	p := EmptyCartPayload()
	p.Data.FoodItems = append(p.Data.FoodItems, lines...)
	p.Length = len(lines)

	return p
}

// QuantityAction is the direction of a quantity update.
type QuantityAction string

const (
	ActionIncrease QuantityAction = "increase"
	ActionDecrease QuantityAction = "decrease"
)

// IsValid checks if the action is known.
func (a QuantityAction) IsValid() bool {
	return a == ActionIncrease || a == ActionDecrease
}

// Apply computes the next quantity. Decrease is floored at 1.
func (a QuantityAction) Apply(current int) int {
	if a == ActionIncrease {
		return current + 1
	}

	return max(current-1, 1)
}

// AddItemInput is the body of an add-to-cart request.
type AddItemInput struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
	Size     Size   `json:"size"`
}

// AddItemResult classifies an add. IsNewItem is best-effort: it is computed
// from the local cart before the call and may be wrong if that was stale.
type AddItemResult struct {
	Success   bool `json:"success"`
	IsNewItem bool `json:"isNewItem"`
}
