package models

// User represents a person who takes part in group expenses.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Name is the display name of the user.
	Name string

	// AvatarColor is an optional presentation hint (e.g., "bg-red-400").
	AvatarColor string

	// CreatedAt is the Unix timestamp when the user was created.
	CreatedAt int64
}
