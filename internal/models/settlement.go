package models

// Balance is a user's net position across a group's expenses.
type Balance struct {
	UserID string
	Amount float64 // Positive = owed money, Negative = owes money
}

// Settlement is one suggested transfer between two users.
type Settlement struct {
	From   string // Person who pays (debtor)
	To     string // Person who receives (creditor)
	Amount float64
}

// MemberSummary breaks a member's balance down into what they paid and what
// they consumed. Settlement expenses count toward Balance only.
type MemberSummary struct {
	UserID     string
	Balance    float64
	TotalPaid  float64
	TotalShare float64
}
