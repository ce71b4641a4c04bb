package models

import "github.com/shopspring/decimal"

// Debt represents a directed reimbursement obligation between two users,
// scoped to one list.
//
// Invariants: FromUser != ToUser and Amount >= 0. Debts are created by a
// settlement computation and only ever mutated by settling (false -> true).
type Debt struct {
	// ID is the unique identifier for the debt (UUID format).
	ID string `json:"id"`

	// ListID is the list this debt was computed for.
	ListID string `json:"listId"`

	// FromUser is the ID of the user who owes.
	FromUser string `json:"fromUser"`

	// ToUser is the ID of the user who is owed.
	ToUser string `json:"toUser"`

	// Amount is the non-negative amount owed.
	Amount decimal.Decimal `json:"amount"`

	// Settled reports whether this debt has been paid back.
	Settled bool `json:"settled"`

	// CreatedAt is the Unix timestamp when the debt was recorded.
	CreatedAt int64 `json:"createdAt"`
}
