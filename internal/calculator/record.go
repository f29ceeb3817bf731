package calculator

import (
	"fmt"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

// SettlementExpense turns a paid settlement into the expense that records it.
// The debtor is the payer and the creditor is charged the full amount, so
// adding the returned expense moves both balances toward zero by s.Amount.
// The ID and GroupID are left for the caller to assign.
func SettlementExpense(s models.Settlement, payerName, payeeName string, at time.Time) models.Expense {
	return models.Expense{
		Description: fmt.Sprintf("Settlement: %s paid %s", payerName, payeeName),
		Amount:      s.Amount,
		PaidBy:      s.From,
		Date:        at,
		Split: models.UnequalSplit{
			Shares: []models.Share{{UserID: s.To, Amount: s.Amount}},
		},
		IsSettlement: true,
	}
}
