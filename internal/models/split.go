package models

// SplitType identifies how an expense is shared among participants.
type SplitType string

const (
	SplitEqually   SplitType = "equally"
	SplitUnequally SplitType = "unequally"
	// SplitPercentage is accepted by the data model but has no computation rule.
	SplitPercentage SplitType = "percentage"
)

// Split describes who shares an expense and how.
// The concrete type is one of EqualSplit, UnequalSplit or PercentageSplit.
type Split interface {
	Type() SplitType
	isSplit()
}

// EqualSplit divides the expense amount evenly among Participants.
type EqualSplit struct {
	Participants []string
}

// UnequalSplit charges each participant an explicit amount.
// The amounts are not required to add up to the expense total.
type UnequalSplit struct {
	Shares []Share
}

// PercentageSplit charges each participant a percentage of the total.
// Not supported by the calculator.
type PercentageSplit struct {
	Shares []PercentShare
}

// Share is one participant's explicit amount in an UnequalSplit.
type Share struct {
	UserID string
	Amount float64
}

// PercentShare is one participant's percentage in a PercentageSplit.
type PercentShare struct {
	UserID  string
	Percent float64
}

func (EqualSplit) Type() SplitType      { return SplitEqually }
func (UnequalSplit) Type() SplitType    { return SplitUnequally }
func (PercentageSplit) Type() SplitType { return SplitPercentage }

func (EqualSplit) isSplit()      {}
func (UnequalSplit) isSplit()    {}
func (PercentageSplit) isSplit() {}
