package calculator

import (
	"fmt"
	"math"

	"github.com/mmynk/splitledger/internal/models"
)

// ValidateExpense checks an expense before it is accepted into a ledger:
// a positive finite amount, a known payer, a supported split with at least one
// participant, and only known participants.
func ValidateExpense(expense models.Expense, users []models.User) error {
	if !validAmount(expense.Amount) {
		return ErrInvalidAmount
	}

	known := make(map[string]bool, len(users))
	for _, u := range users {
		known[u.ID] = true
	}
	if !known[expense.PaidBy] {
		return fmt.Errorf("%w: payer %q", ErrUnknownUser, expense.PaidBy)
	}

	debits, err := shares(expense)
	if err != nil {
		return err
	}
	for _, d := range debits {
		if !known[d.UserID] {
			return fmt.Errorf("%w: participant %q", ErrUnknownUser, d.UserID)
		}
		if d.Amount < 0 || math.IsNaN(d.Amount) || math.IsInf(d.Amount, 0) {
			return fmt.Errorf("%w: share for %q", ErrInvalidAmount, d.UserID)
		}
	}

	return nil
}

// ValidateSplitTotal checks that an unequal split's shares add up to the
// expense amount. Unequal shares are allowed to differ from the total (e.g.
// tips covered by the payer), so callers opt into this check.
// Equal splits always pass.
func ValidateSplitTotal(expense models.Expense) error {
	split, ok := expense.Split.(models.UnequalSplit)
	if !ok {
		return nil
	}

	var sum float64
	for _, s := range split.Shares {
		sum += s.Amount
	}
	if math.Abs(sum-expense.Amount) > Epsilon {
		return fmt.Errorf("%w: shares %.2f, amount %.2f", ErrSplitTotalMismatch, sum, expense.Amount)
	}
	return nil
}

// CheckConservation verifies that balances sum to zero within Epsilon.
func CheckConservation(balances []models.Balance) error {
	var sum float64
	for _, b := range balances {
		sum += b.Amount
	}
	if math.Abs(sum) > Epsilon {
		return fmt.Errorf("%w: drift %.4f", ErrNotConserved, sum)
	}
	return nil
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsNaN(amount) && !math.IsInf(amount, 0)
}
