// Package storage provides abstractions for ledger data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/splitledger/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the operations the services need on users, groups and expenses.
// Implementations must be safe for concurrent use and must not let callers
// alias stored slices.
type Store interface {
	// CreateUser persists a new user. ID and CreatedAt are assigned if empty.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUsers returns the users with the given IDs, in the same order.
	// Returns ErrNotFound if any ID is unknown.
	GetUsers(ctx context.Context, ids []string) ([]models.User, error)

	// ListUsers returns all users in creation order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateGroup persists a new group. ID and CreatedAt are assigned if empty.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by its ID.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups returns all groups in creation order.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// AddGroupMembers appends user IDs that are not already members.
	AddGroupMembers(ctx context.Context, groupID string, userIDs []string) error

	// CreateExpense persists a new expense in its group. ID is assigned if empty.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpensesByGroup returns a group's expenses in insertion order.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]models.Expense, error)

	// DeleteExpense removes an expense from a group.
	DeleteExpense(ctx context.Context, groupID, expenseID string) error

	// Close releases any resources held by the store.
	Close() error
}
