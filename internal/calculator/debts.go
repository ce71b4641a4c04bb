package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/splitcart/splitcart/internal/models"
)

var two = decimal.NewFromInt(2)

// GenerateDebts turns per-payer totals into directed reimbursement debts.
//
// For every unordered pair of distinct payers it emits at most one debt:
// the lower-total payer owes the higher-total payer half their difference,
// which equalizes the combined outlay of that pair between the two. Equal
// totals produce nothing, as do inputs with fewer than two payers.
//
// Note that halving equalizes each pair in isolation, not the group as a
// whole: with three or more payers the per-person net result is not fully
// level, and no attempt is made to minimize the number of transfers. That
// is the documented contract; callers relying on the exact debt set must
// not swap this for a consolidating algorithm.
//
// Returned debts are unsettled and carry no ID or timestamp; the storage
// layer assigns those on insert.
func GenerateDebts(listID string, totals []PayerTotal) []models.Debt {
	var debts []models.Debt

	for i := 0; i < len(totals); i++ {
		for j := i + 1; j < len(totals); j++ {
			p1, p2 := totals[i], totals[j]
			diff := p1.Total.Sub(p2.Total)

			switch diff.Sign() {
			case 1:
				debts = append(debts, models.Debt{
					ListID:   listID,
					FromUser: p2.UserID,
					ToUser:   p1.UserID,
					Amount:   diff.Div(two),
				})
			case -1:
				debts = append(debts, models.Debt{
					ListID:   listID,
					FromUser: p1.UserID,
					ToUser:   p2.UserID,
					Amount:   diff.Abs().Div(two),
				})
			}
		}
	}

	return debts
}
