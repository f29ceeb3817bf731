package calculator

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mmynk/splitledger/internal/models"
)

// Epsilon is the tolerance for floating point drift. Any balance within
// Epsilon of zero is treated as settled.
const Epsilon = 0.01

// ComputeBalances computes the net balance of every user across expenses.
//
// Algorithm:
// - Every user starts at 0
// - For each expense: payer is credited the full amount
// - Equal split: each participant is debited amount / len(participants)
// - Unequal split: each participant is debited their stated amount
//
// Expenses referencing a user outside users fail with ErrUnknownUser instead
// of being dropped, since a dropped contribution breaks conservation.
// The result has one entry per user, sorted by amount descending (largest
// creditor first). Users with equal amounts keep their input order.
func ComputeBalances(expenses []models.Expense, users []models.User) ([]models.Balance, error) {
	acc := make(map[string]float64, len(users))
	for _, u := range users {
		acc[u.ID] = 0
	}

	for _, expense := range expenses {
		if err := applyExpense(acc, expense); err != nil {
			return nil, fmt.Errorf("expense %s: %w", expense.ID, err)
		}
	}

	balances := make([]models.Balance, len(users))
	for i, u := range users {
		balances[i] = models.Balance{UserID: u.ID, Amount: acc[u.ID]}
	}
	slices.SortStableFunc(balances, func(a, b models.Balance) int {
		return cmp.Compare(b.Amount, a.Amount)
	})

	return balances, nil
}

// applyExpense credits the payer and debits participants of one expense.
// acc is left untouched when an error is returned.
func applyExpense(acc map[string]float64, expense models.Expense) error {
	debits, err := shares(expense)
	if err != nil {
		return err
	}
	if _, ok := acc[expense.PaidBy]; !ok {
		return fmt.Errorf("%w: payer %q", ErrUnknownUser, expense.PaidBy)
	}
	for _, d := range debits {
		if _, ok := acc[d.UserID]; !ok {
			return fmt.Errorf("%w: participant %q", ErrUnknownUser, d.UserID)
		}
	}

	acc[expense.PaidBy] += expense.Amount
	for _, d := range debits {
		acc[d.UserID] -= d.Amount
	}
	return nil
}

// shares resolves an expense's split into the amount charged to each participant.
func shares(expense models.Expense) ([]models.Share, error) {
	switch split := expense.Split.(type) {
	case models.EqualSplit:
		if len(split.Participants) == 0 {
			return nil, ErrEmptySplit
		}
		share := expense.Amount / float64(len(split.Participants))
		out := make([]models.Share, len(split.Participants))
		for i, p := range split.Participants {
			out[i] = models.Share{UserID: p, Amount: share}
		}
		return out, nil
	case models.UnequalSplit:
		if len(split.Shares) == 0 {
			return nil, ErrEmptySplit
		}
		return slices.Clone(split.Shares), nil
	case nil:
		return nil, fmt.Errorf("%w: missing split", ErrUnsupportedSplit)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSplit, split.Type())
	}
}
