package models

import "time"

// Expense represents a single payment made on behalf of a group.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is a human-readable label (e.g., "Dinner at The Oasis").
	Description string

	// Amount is the total paid. Always positive.
	Amount float64

	// PaidBy is the user ID of the payer.
	PaidBy string

	// Date is when the expense happened.
	Date time.Time

	// Split determines how Amount is charged to participants.
	Split Split

	// IsSettlement marks a recorded debt repayment rather than a real expense.
	IsSettlement bool
}
