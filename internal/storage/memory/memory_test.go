package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

func TestMemoryStore(t *testing.T) {
	store := New()
	defer store.Close()

	ctx := context.Background()

	alice := &models.User{Name: "Alice"}
	bob := &models.User{Name: "Bob"}
	require.NoError(t, store.CreateUser(ctx, alice))
	require.NoError(t, store.CreateUser(ctx, bob))

	t.Run("CreateUser generates ID and CreatedAt", func(t *testing.T) {
		assert.NotEmpty(t, alice.ID)
		assert.NotZero(t, alice.CreatedAt)
		assert.NotEqual(t, alice.ID, bob.ID)
	})

	t.Run("CreateUser rejects duplicate ID", func(t *testing.T) {
		err := store.CreateUser(ctx, &models.User{ID: alice.ID, Name: "Other"})
		assert.Error(t, err)
	})

	t.Run("GetUsers preserves requested order", func(t *testing.T) {
		users, err := store.GetUsers(ctx, []string{bob.ID, alice.ID})
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Bob", users[0].Name)
		assert.Equal(t, "Alice", users[1].Name)
	})

	t.Run("GetUsers fails on unknown ID", func(t *testing.T) {
		_, err := store.GetUsers(ctx, []string{alice.ID, "nobody"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("ListUsers in creation order", func(t *testing.T) {
		users, err := store.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, alice.ID, users[0].ID)
		assert.Equal(t, bob.ID, users[1].ID)
	})

	group := &models.Group{Name: "Roommates", Members: []string{alice.ID, bob.ID, alice.ID}}
	require.NoError(t, store.CreateGroup(ctx, group))

	t.Run("CreateGroup collapses duplicate members", func(t *testing.T) {
		got, err := store.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{alice.ID, bob.ID}, got.Members)
		assert.NotZero(t, got.CreatedAt)
	})

	t.Run("GetGroup returns a copy", func(t *testing.T) {
		got, err := store.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		got.Members[0] = "mutated"

		again, err := store.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, again.Members[0])
	})

	t.Run("GetGroup returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetGroup(ctx, "nonexistent-id")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("AddGroupMembers skips existing members", func(t *testing.T) {
		carol := &models.User{Name: "Carol"}
		require.NoError(t, store.CreateUser(ctx, carol))

		require.NoError(t, store.AddGroupMembers(ctx, group.ID, []string{bob.ID, carol.ID}))

		got, err := store.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{alice.ID, bob.ID, carol.ID}, got.Members)
	})

	t.Run("ListGroups", func(t *testing.T) {
		other := &models.Group{Name: "Work Lunch"}
		require.NoError(t, store.CreateGroup(ctx, other))

		groups, err := store.ListGroups(ctx)
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "Roommates", groups[0].Name)
		assert.Equal(t, "Work Lunch", groups[1].Name)
	})

	t.Run("expenses round trip", func(t *testing.T) {
		participants := []string{alice.ID, bob.ID}
		expense := &models.Expense{
			GroupID:     group.ID,
			Description: "Groceries",
			Amount:      42,
			PaidBy:      alice.ID,
			Split:       models.EqualSplit{Participants: participants},
		}
		require.NoError(t, store.CreateExpense(ctx, expense))
		assert.NotEmpty(t, expense.ID)
		assert.False(t, expense.Date.IsZero())

		// Caller mutation must not leak into the store.
		participants[0] = "mutated"

		expenses, err := store.ListExpensesByGroup(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, "Groceries", expenses[0].Description)
		assert.Equal(t, models.EqualSplit{Participants: []string{alice.ID, bob.ID}}, expenses[0].Split)
	})

	t.Run("CreateExpense requires group", func(t *testing.T) {
		err := store.CreateExpense(ctx, &models.Expense{GroupID: "missing", Amount: 1})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("DeleteExpense", func(t *testing.T) {
		expense := &models.Expense{
			GroupID: group.ID, Amount: 5, PaidBy: bob.ID,
			Split: models.UnequalSplit{Shares: []models.Share{{UserID: alice.ID, Amount: 5}}},
		}
		require.NoError(t, store.CreateExpense(ctx, expense))

		before, err := store.ListExpensesByGroup(ctx, group.ID)
		require.NoError(t, err)

		require.NoError(t, store.DeleteExpense(ctx, group.ID, expense.ID))

		after, err := store.ListExpensesByGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Len(t, after, len(before)-1)

		err = store.DeleteExpense(ctx, group.ID, expense.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
