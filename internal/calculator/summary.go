package calculator

import (
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

// SummarizeMembers reports, for each user in input order, how much they paid
// and how much of the group's spending was theirs. Settlement expenses are
// excluded from TotalPaid and TotalShare but still move Balance.
func SummarizeMembers(expenses []models.Expense, users []models.User) ([]models.MemberSummary, error) {
	balances, err := ComputeBalances(expenses, users)
	if err != nil {
		return nil, err
	}
	net := make(map[string]float64, len(balances))
	for _, b := range balances {
		net[b.UserID] = b.Amount
	}

	paid := make(map[string]float64, len(users))
	owed := make(map[string]float64, len(users))
	for _, expense := range expenses {
		if expense.IsSettlement {
			continue
		}
		debits, err := shares(expense)
		if err != nil {
			return nil, fmt.Errorf("expense %s: %w", expense.ID, err)
		}
		paid[expense.PaidBy] += expense.Amount
		for _, d := range debits {
			owed[d.UserID] += d.Amount
		}
	}

	summaries := make([]models.MemberSummary, len(users))
	for i, u := range users {
		summaries[i] = models.MemberSummary{
			UserID:     u.ID,
			Balance:    net[u.ID],
			TotalPaid:  paid[u.ID],
			TotalShare: owed[u.ID],
		}
	}
	return summaries, nil
}

// TotalSpent sums the amounts of all real (non-settlement) expenses.
func TotalSpent(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		if !e.IsSettlement {
			total += e.Amount
		}
	}
	return total
}
