// Package seed loads a small demo ledger into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Demo is what Load created.
type Demo struct {
	Users    []models.User
	Group    *models.Group
	Expenses []models.Expense
}

var demoUsers = []models.User{
	{Name: "Alice", AvatarColor: "#ef4444"},
	{Name: "Bob", AvatarColor: "#3b82f6"},
	{Name: "Carol", AvatarColor: "#10b981"},
	{Name: "Dan", AvatarColor: "#f59e0b"},
}

// Load creates four users, a trip group for the first three, and two
// expenses that leave Alice owed $40 by Carol.
func Load(ctx context.Context, store storage.Store, logger *slog.Logger, now time.Time) (*Demo, error) {
	demo := &Demo{}
	for _, u := range demoUsers {
		if err := store.CreateUser(ctx, &u); err != nil {
			return nil, fmt.Errorf("seed user %s: %w", u.Name, err)
		}
		demo.Users = append(demo.Users, u)
	}
	alice, bob, carol := demo.Users[0].ID, demo.Users[1].ID, demo.Users[2].ID

	demo.Group = &models.Group{
		Name:    "Thailand Trip 2024",
		Members: []string{alice, bob, carol},
	}
	if err := store.CreateGroup(ctx, demo.Group); err != nil {
		return nil, fmt.Errorf("seed group: %w", err)
	}

	expenses := []models.Expense{
		{
			Description: "Dinner at The Oasis",
			Amount:      60,
			PaidBy:      alice,
			Date:        now.Add(-48 * time.Hour),
			Split:       models.EqualSplit{Participants: []string{alice, bob, carol}},
		},
		{
			Description: "Snorkeling Gear",
			Amount:      40,
			PaidBy:      bob,
			Date:        now.Add(-24 * time.Hour),
			Split:       models.EqualSplit{Participants: []string{bob, carol}},
		},
	}
	for _, e := range expenses {
		e.GroupID = demo.Group.ID
		if err := store.CreateExpense(ctx, &e); err != nil {
			return nil, fmt.Errorf("seed expense %q: %w", e.Description, err)
		}
		demo.Expenses = append(demo.Expenses, e)
	}

	logger.Info("Demo data loaded",
		"group_id", demo.Group.ID,
		"users_count", len(demo.Users),
		"expenses_count", len(demo.Expenses),
	)
	return demo, nil
}
