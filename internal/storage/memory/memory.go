// Package memory provides an in-process implementation of storage.Store.
// Nothing is written to disk; all data is lost when the process exits.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implements storage.Store with maps guarded by a RWMutex.
type MemoryStore struct {
	mu sync.RWMutex

	users     map[string]models.User
	userOrder []string

	groups     map[string]*models.Group
	groupOrder []string

	// expenses[groupID] in insertion order
	expenses map[string][]models.Expense

	now func() time.Time
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]models.User),
		groups:   make(map[string]*models.Group),
		expenses: make(map[string][]models.Expense),
		now:      time.Now,
	}
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

// CreateUser stores a new user.
func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = s.now().Unix()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return fmt.Errorf("user already exists: %s", user.ID)
	}
	s.users[user.ID] = *user
	s.userOrder = append(s.userOrder, user.ID)
	return nil
}

// GetUsers returns users by ID, preserving the order of ids.
func (s *MemoryStore) GetUsers(ctx context.Context, ids []string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		user, ok := s.users[id]
		if !ok {
			return nil, fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
		}
		users = append(users, user)
	}
	return users, nil
}

// ListUsers returns every user in creation order.
func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, len(s.userOrder))
	for i, id := range s.userOrder {
		users[i] = s.users[id]
	}
	return users, nil
}

// CreateGroup stores a new group. Duplicate member IDs are collapsed.
func (s *MemoryStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = s.now().Unix()
	}
	group.Members = dedupe(group.Members)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.groups[group.ID]; exists {
		return fmt.Errorf("group already exists: %s", group.ID)
	}
	s.groups[group.ID] = cloneGroup(group)
	s.groupOrder = append(s.groupOrder, group.ID)
	return nil
}

// GetGroup retrieves a copy of a group.
func (s *MemoryStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, ok := s.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	return cloneGroup(group), nil
}

// ListGroups returns copies of all groups in creation order.
func (s *MemoryStore) ListGroups(ctx context.Context) ([]*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]*models.Group, len(s.groupOrder))
	for i, id := range s.groupOrder {
		groups[i] = cloneGroup(s.groups[id])
	}
	return groups, nil
}

// AddGroupMembers appends new members, skipping IDs already in the group.
func (s *MemoryStore) AddGroupMembers(ctx context.Context, groupID string, userIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[groupID]
	if !ok {
		return fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	group.Members = dedupe(append(group.Members, userIDs...))
	return nil
}

// CreateExpense appends an expense to its group.
func (s *MemoryStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.Date.IsZero() {
		expense.Date = s.now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[expense.GroupID]; !ok {
		return fmt.Errorf("group %s: %w", expense.GroupID, storage.ErrNotFound)
	}
	s.expenses[expense.GroupID] = append(s.expenses[expense.GroupID], cloneExpense(*expense))
	return nil
}

// ListExpensesByGroup returns copies of a group's expenses in insertion order.
func (s *MemoryStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.groups[groupID]; !ok {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	stored := s.expenses[groupID]
	expenses := make([]models.Expense, len(stored))
	for i, e := range stored {
		expenses[i] = cloneExpense(e)
	}
	return expenses, nil
}

// DeleteExpense removes one expense from a group.
func (s *MemoryStore) DeleteExpense(ctx context.Context, groupID, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.expenses[groupID]
	idx := slices.IndexFunc(stored, func(e models.Expense) bool { return e.ID == expenseID })
	if idx < 0 {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	s.expenses[groupID] = slices.Delete(slices.Clone(stored), idx, idx+1)
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func cloneGroup(g *models.Group) *models.Group {
	c := *g
	c.Members = slices.Clone(g.Members)
	return &c
}

// cloneExpense copies the split payload so stored expenses never share
// backing arrays with callers.
func cloneExpense(e models.Expense) models.Expense {
	switch split := e.Split.(type) {
	case models.EqualSplit:
		e.Split = models.EqualSplit{Participants: slices.Clone(split.Participants)}
	case models.UnequalSplit:
		e.Split = models.UnequalSplit{Shares: slices.Clone(split.Shares)}
	case models.PercentageSplit:
		e.Split = models.PercentageSplit{Shares: slices.Clone(split.Shares)}
	}
	return e
}
