package calculator

import "errors"

var (
	// ErrEmptySplit is returned when a split names no participants.
	ErrEmptySplit = errors.New("split must have at least one participant")
	// ErrUnknownUser is returned when an expense references a user outside the supplied set.
	ErrUnknownUser = errors.New("unknown user")
	// ErrUnsupportedSplit is returned for split variants without a computation rule.
	ErrUnsupportedSplit = errors.New("unsupported split type")
	// ErrInvalidAmount is returned for non-positive or non-finite amounts.
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrSplitTotalMismatch is returned by ValidateSplitTotal when unequal shares don't add up.
	ErrSplitTotalMismatch = errors.New("split shares do not sum to expense amount")
	// ErrNotConserved is returned when balances don't sum to zero.
	ErrNotConserved = errors.New("balances do not sum to zero")
)
