// Package calculator implements the ledger math for Splitcart: per-payer
// outlay totals and the pairwise debt equalization derived from them.
//
// Everything in this package is pure computation over already-loaded data;
// persistence and transport live elsewhere.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/splitcart/splitcart/internal/models"
)

// PayerTotal is one payer's aggregate outlay on a list.
type PayerTotal struct {
	// UserID identifies the payer.
	UserID string

	// Total is the exact sum of this payer's item prices.
	Total decimal.Decimal
}

// ComputeTotals aggregates item prices per payer.
//
// Items missing either a payer or a price contribute nothing; that is
// policy, not an error — unpriced or unattributed items simply are not part
// of the settlement yet. Totals are returned in the order payers are first
// seen while scanning items, which keeps downstream pair iteration
// deterministic.
func ComputeTotals(items []models.Item) []PayerTotal {
	index := make(map[string]int)
	var totals []PayerTotal

	for _, item := range items {
		if item.PaidBy == nil || item.Price == nil {
			continue
		}

		payer := *item.PaidBy
		i, seen := index[payer]
		if !seen {
			i = len(totals)
			index[payer] = i
			totals = append(totals, PayerTotal{UserID: payer})
		}
		totals[i].Total = totals[i].Total.Add(*item.Price)
	}

	return totals
}
