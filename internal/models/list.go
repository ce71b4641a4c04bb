package models

// List represents a shared shopping list.
//
// Membership is a many-to-many relation between lists and users; a user
// appears at most once per list. The join code is unique across all lists
// and immutable after creation.
type List struct {
	// ID is the unique identifier for the list (UUID format).
	ID string `json:"id"`

	// Name is the display name of the list (e.g. "Groceries", "Ski Trip").
	Name string `json:"name"`

	// Code is the short join code granting membership when presented.
	Code string `json:"code"`

	// CreatedBy is the ID of the user who created the list.
	CreatedBy string `json:"createdBy"`

	// CreatedAt is the Unix timestamp when the list was created.
	CreatedAt int64 `json:"createdAt"`
}
