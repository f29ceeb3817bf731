package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
)

var fixedTime = time.Date(2024, 3, 14, 19, 30, 0, 0, time.UTC)

func TestValidateExpense(t *testing.T) {
	users := []models.User{alice, bob, carol}

	tests := []struct {
		name    string
		expense models.Expense
		wantErr error
	}{
		{
			name:    "valid equal split",
			expense: equal("e", 60, alice.ID, alice.ID, bob.ID),
		},
		{
			name:    "valid unequal split",
			expense: unequal("e", 60, alice.ID, models.Share{UserID: bob.ID, Amount: 60}),
		},
		{
			name:    "zero amount",
			expense: equal("e", 0, alice.ID, bob.ID),
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			expense: equal("e", -5, alice.ID, bob.ID),
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "NaN amount",
			expense: equal("e", math.NaN(), alice.ID, bob.ID),
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "unknown payer",
			expense: equal("e", 10, dan.ID, bob.ID),
			wantErr: ErrUnknownUser,
		},
		{
			name:    "unknown participant",
			expense: equal("e", 10, alice.ID, dan.ID),
			wantErr: ErrUnknownUser,
		},
		{
			name:    "no participants",
			expense: equal("e", 10, alice.ID),
			wantErr: ErrEmptySplit,
		},
		{
			name:    "negative share",
			expense: unequal("e", 10, alice.ID, models.Share{UserID: bob.ID, Amount: -10}),
			wantErr: ErrInvalidAmount,
		},
		{
			name: "percentage split",
			expense: models.Expense{
				Amount: 10, PaidBy: alice.ID,
				Split: models.PercentageSplit{Shares: []models.PercentShare{{UserID: bob.ID, Percent: 100}}},
			},
			wantErr: ErrUnsupportedSplit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpense(tt.expense, users)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateSplitTotal(t *testing.T) {
	t.Run("equal split always passes", func(t *testing.T) {
		assert.NoError(t, ValidateSplitTotal(equal("e", 10, alice.ID, alice.ID, bob.ID, carol.ID)))
	})

	t.Run("matching shares pass", func(t *testing.T) {
		e := unequal("e", 30, alice.ID,
			models.Share{UserID: bob.ID, Amount: 12.5},
			models.Share{UserID: carol.ID, Amount: 17.5},
		)
		assert.NoError(t, ValidateSplitTotal(e))
	})

	t.Run("short shares fail", func(t *testing.T) {
		e := unequal("e", 30, alice.ID, models.Share{UserID: bob.ID, Amount: 20})
		err := ValidateSplitTotal(e)
		require.ErrorIs(t, err, ErrSplitTotalMismatch)
		assert.Contains(t, err.Error(), "20.00")
	})
}

func TestCheckConservation(t *testing.T) {
	assert.NoError(t, CheckConservation(nil))
	assert.NoError(t, CheckConservation([]models.Balance{{Amount: 10}, {Amount: -9.995}}))
	assert.ErrorIs(t, CheckConservation([]models.Balance{{Amount: 10}, {Amount: -9}}), ErrNotConserved)
}

func TestSummarizeMembers(t *testing.T) {
	users := []models.User{alice, bob, carol}
	expenses := []models.Expense{
		equal("exp-1", 60, alice.ID, alice.ID, bob.ID, carol.ID),
		equal("exp-2", 40, bob.ID, bob.ID, carol.ID),
	}
	settled := SettlementExpense(models.Settlement{From: carol.ID, To: alice.ID, Amount: 40}, "Carol", "Alice", fixedTime)
	expenses = append(expenses, settled)

	summaries, err := SummarizeMembers(expenses, users)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, alice.ID, summaries[0].UserID)
	assert.InDelta(t, 60, summaries[0].TotalPaid, 0.01)
	assert.InDelta(t, 20, summaries[0].TotalShare, 0.01)
	assert.InDelta(t, 0, summaries[0].Balance, 0.01)

	assert.InDelta(t, 40, summaries[1].TotalPaid, 0.01)
	assert.InDelta(t, 40, summaries[1].TotalShare, 0.01)

	assert.InDelta(t, 0, summaries[2].TotalPaid, 0.01)
	assert.InDelta(t, 40, summaries[2].TotalShare, 0.01)
	assert.InDelta(t, 0, summaries[2].Balance, 0.01)

	assert.InDelta(t, 100, TotalSpent(expenses), 0.01)
}

func TestSettlementExpense(t *testing.T) {
	e := SettlementExpense(models.Settlement{From: carol.ID, To: alice.ID, Amount: 40}, "Carol", "Alice", fixedTime)

	assert.Equal(t, "Settlement: Carol paid Alice", e.Description)
	assert.Equal(t, 40.0, e.Amount)
	assert.Equal(t, carol.ID, e.PaidBy)
	assert.Equal(t, fixedTime, e.Date)
	assert.True(t, e.IsSettlement)
	assert.Equal(t, models.UnequalSplit{Shares: []models.Share{{UserID: alice.ID, Amount: 40}}}, e.Split)
}
