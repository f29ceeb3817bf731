package calculator

import (
	"cmp"
	"math"
	"slices"

	"github.com/mmynk/splitledger/internal/models"
)

// ComputeSettlementPlan derives the transfers that bring every balance to zero.
//
// Algorithm:
// - Ignore balances within Epsilon of zero (inclusive)
// - Debtors sorted by amount ascending (largest debt first)
// - Creditors sorted by amount descending (largest credit first)
// - Greedy: the head debtor pays the head creditor min(debt, credit)
// - A party leaves its queue once its remaining amount drops below Epsilon
//
// The plan has at most (non-zero balances - 1) transfers and is returned in
// the order the transfers were generated. balances is not modified.
func ComputeSettlementPlan(balances []models.Balance) []models.Settlement {
	var debtors, creditors []models.Balance
	for _, b := range balances {
		switch {
		case math.Abs(b.Amount) <= Epsilon:
		case b.Amount < 0:
			debtors = append(debtors, b)
		default:
			creditors = append(creditors, b)
		}
	}
	slices.SortStableFunc(debtors, func(a, b models.Balance) int {
		return cmp.Compare(a.Amount, b.Amount)
	})
	slices.SortStableFunc(creditors, func(a, b models.Balance) int {
		return cmp.Compare(b.Amount, a.Amount)
	})

	// Remaining magnitudes, tracked by index.
	owes := make([]float64, len(debtors))
	for i, d := range debtors {
		owes[i] = -d.Amount
	}
	owed := make([]float64, len(creditors))
	for j, c := range creditors {
		owed[j] = c.Amount
	}

	var plan []models.Settlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := min(owes[i], owed[j])
		plan = append(plan, models.Settlement{
			From:   debtors[i].UserID,
			To:     creditors[j].UserID,
			Amount: amount,
		})

		owes[i] -= amount
		owed[j] -= amount

		if owes[i] < Epsilon {
			i++
		}
		if owed[j] < Epsilon {
			j++
		}
	}

	return plan
}
