package models

import "github.com/shopspring/decimal"

// Item represents a purchase on a shopping list.
//
// Price and PaidBy are nullable: an item is typically added unpriced while
// shopping and gets a price and payer once bought. Items with either field
// missing contribute nothing to settlement computations.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// ListID is the list this item belongs to.
	ListID string `json:"listId"`

	// Name is the item description (e.g. "Milk", "Charcoal").
	Name string `json:"name"`

	// Price is the non-negative amount paid, nil while unpriced.
	Price *decimal.Decimal `json:"price"`

	// Completed marks the item as bought / checked off.
	Completed bool `json:"completed"`

	// PaidBy is the ID of the user who paid for this item, nil if unknown.
	PaidBy *string `json:"paidBy"`
}
