// Package models defines the core domain models for Splitcart.
//
// # Entities
//
//   - User: a registered account, identified by a unique username
//   - List: a named shopping list with a join code and a member set
//   - Item: a purchase on a list, optionally priced and attributed to a payer
//   - Debt: a directed reimbursement obligation between two users on a list
//
// # Design Principles
//
//  1. **Exact money**: monetary amounts are decimal.Decimal, never float64.
//     SQLite stores them as TEXT, JSON carries them as decimal strings.
//  2. **Avoid circular references**: relationships use ID strings instead of
//     pointers to other models.
//  3. **Nullable means pointer**: an unpriced item has Price == nil, an
//     unattributed item has PaidBy == nil. Both are valid states, not errors.
//
// # Debt Lifecycle
//
// Debts are created unsettled by a settlement computation and move one-way
// to settled. There is no transition back to open.
package models
