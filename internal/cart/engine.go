package cart

import (
	"github.com/google/uuid"
	"github.com/lmedina-dev/tastebite-backend/internal/foods"
	"github.com/shopspring/decimal"
)

// LineItem is a food snapshot plus the selected quantity. A cart holds at most
// one line item per food id.
type LineItem struct {
	Food     foods.FoodDTO `json:"food"`
	Quantity int           `json:"quantity"`
}

// Totals are derived from the line items on every read; they are never stored.
type Totals struct {
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Engine owns the ordered line-item collection for one session. Insertion
// order is preserved: the first add determines the position and re-adding an
// existing item does not move it. Malformed mutations (quantity below 1,
// unknown ids) are tolerated as no-ops rather than errors.
//
// The engine is not safe for concurrent use; each session works on its own
// instance.
type Engine struct {
	items []LineItem
}

// NewEngine returns an empty cart.
func NewEngine() *Engine {
	return &Engine{}
}

// Add merges the quantity into an existing line item with the same food id, or
// appends a new line item at the end. Quantities below 1 are ignored.
func (e *Engine) Add(food foods.FoodDTO, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range e.items {
		if e.items[i].Food.ID == food.ID {
			e.items[i].Quantity += quantity
			return
		}
	}
	e.items = append(e.items, LineItem{Food: food, Quantity: quantity})
}

// Remove drops the line item with the given food id. Absent ids are no-ops.
func (e *Engine) Remove(foodID uuid.UUID) {
	for i := range e.items {
		if e.items[i].Food.ID == foodID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the stored quantity exactly. Quantities below 1
// leave the existing quantity unchanged; absent ids are no-ops.
func (e *Engine) UpdateQuantity(foodID uuid.UUID, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range e.items {
		if e.items[i].Food.ID == foodID {
			e.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the collection unconditionally.
func (e *Engine) Clear() {
	e.items = nil
}

// Items returns a copy of the line items in insertion order.
func (e *Engine) Items() []LineItem {
	return append([]LineItem(nil), e.items...)
}

// Totals recomputes the aggregate counts from the current line items.
func (e *Engine) Totals() Totals {
	totals := Totals{TotalPrice: decimal.Zero}
	for _, item := range e.items {
		totals.TotalItems += item.Quantity
		totals.TotalPrice = totals.TotalPrice.Add(
			item.Food.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		)
	}
	return totals
}
