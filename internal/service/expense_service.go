package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/api/ledgerv1"
	"github.com/mmynk/splitledger/pkg/api/ledgerv1/ledgerv1connect"
)

// ExpenseOptions configures an ExpenseService.
type ExpenseOptions struct {
	// StrictSplitTotals rejects unequal splits whose shares don't sum to the amount.
	StrictSplitTotals bool

	// Metrics receives expense and settlement plan observations.
	Metrics *metrics.Metrics

	// Now stamps expenses created without a date. Defaults to time.Now.
	Now func() time.Time
}

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	ledgerv1connect.UnimplementedExpenseServiceHandler
	store   storage.Store
	logger  *slog.Logger
	strict  bool
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store, logger *slog.Logger, opts ExpenseOptions) *ExpenseService {
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ExpenseService{
		store:   store,
		logger:  logger,
		strict:  opts.StrictSplitTotals,
		metrics: opts.Metrics,
		now:     opts.Now,
	}
}

// groupMembers loads a group and its member records, in member order.
func (s *ExpenseService) groupMembers(ctx context.Context, groupID string) (*models.Group, []models.User, error) {
	if groupID == "" {
		return nil, nil, connect.NewError(connect.CodeInvalidArgument, errGroupIDRequired)
	}
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, nil, storeError(err)
	}
	users, err := s.store.GetUsers(ctx, group.Members)
	if err != nil {
		return nil, nil, connect.NewError(connect.CodeInternal, err)
	}
	return group, users, nil
}

// AddExpense validates an expense against the group's members and records it.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[pb.AddExpenseRequest]) (*connect.Response[pb.AddExpenseResponse], error) {
	msg := req.Msg
	s.logger.Info("AddExpense request received",
		"group_id", msg.GroupID,
		"amount", msg.Amount,
		"paid_by", msg.PaidBy,
		"split_type", msg.Split.Type,
	)

	_, users, err := s.groupMembers(ctx, msg.GroupID)
	if err != nil {
		s.logger.Error("AddExpense failed - group lookup", "group_id", msg.GroupID, "error", err)
		return nil, err
	}

	split, err := splitFromProto(msg.Split)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	date := msg.Date
	if date.IsZero() {
		date = s.now().UTC()
	}
	expense := models.Expense{
		GroupID:     msg.GroupID,
		Description: strings.TrimSpace(msg.Description),
		Amount:      msg.Amount,
		PaidBy:      msg.PaidBy,
		Date:        date,
		Split:       split,
	}
	if expense.Description == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("description required"))
	}

	if err := calculator.ValidateExpense(expense, users); err != nil {
		s.logger.Warn("AddExpense rejected", "group_id", msg.GroupID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if s.strict {
		if err := calculator.ValidateSplitTotal(expense); err != nil {
			s.logger.Warn("AddExpense rejected - split total", "group_id", msg.GroupID, "error", err)
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
	}

	if err := s.store.CreateExpense(ctx, &expense); err != nil {
		s.logger.Error("AddExpense failed", "group_id", msg.GroupID, "error", err)
		return nil, storeError(err)
	}
	s.metrics.ExpensesRecorded.WithLabelValues(metrics.KindExpense).Inc()

	s.logger.Info("Expense added", "group_id", expense.GroupID, "expense_id", expense.ID)

	return connect.NewResponse(&pb.AddExpenseResponse{Expense: expenseToProto(expense)}), nil
}

// ListExpenses returns a group's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[pb.ListExpensesRequest]) (*connect.Response[pb.ListExpensesResponse], error) {
	groupID := req.Msg.GroupID
	s.logger.Info("ListExpenses request received", "group_id", groupID)

	if groupID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errGroupIDRequired)
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		s.logger.Error("ListExpenses failed", "group_id", groupID, "error", err)
		return nil, storeError(err)
	}

	// Latest insert wins ties on date.
	slices.Reverse(expenses)
	slices.SortStableFunc(expenses, func(a, b models.Expense) int {
		return b.Date.Compare(a.Date)
	})

	out := make([]*pb.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = expenseToProto(e)
	}

	s.logger.Info("ListExpenses successful", "group_id", groupID, "count", len(out))

	return connect.NewResponse(&pb.ListExpensesResponse{Expenses: out}), nil
}

// DeleteExpense removes an expense (or a recorded settlement) from a group.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[pb.DeleteExpenseRequest]) (*connect.Response[pb.DeleteExpenseResponse], error) {
	s.logger.Info("DeleteExpense request received",
		"group_id", req.Msg.GroupID,
		"expense_id", req.Msg.ExpenseID,
	)

	if req.Msg.GroupID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errGroupIDRequired)
	}
	if req.Msg.ExpenseID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("expense_id required"))
	}

	if err := s.store.DeleteExpense(ctx, req.Msg.GroupID, req.Msg.ExpenseID); err != nil {
		s.logger.Error("DeleteExpense failed", "error", err)
		return nil, storeError(err)
	}

	s.logger.Info("Expense deleted", "group_id", req.Msg.GroupID, "expense_id", req.Msg.ExpenseID)

	return connect.NewResponse(&pb.DeleteExpenseResponse{}), nil
}

// GetBalances computes member balances and the settlement plan for a group.
func (s *ExpenseService) GetBalances(ctx context.Context, req *connect.Request[pb.GetBalancesRequest]) (*connect.Response[pb.GetBalancesResponse], error) {
	groupID := req.Msg.GroupID
	s.logger.Info("GetBalances request received", "group_id", groupID)

	_, users, err := s.groupMembers(ctx, groupID)
	if err != nil {
		s.logger.Error("GetBalances failed - group lookup", "group_id", groupID, "error", err)
		return nil, err
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		s.logger.Error("GetBalances failed - could not list expenses", "group_id", groupID, "error", err)
		return nil, storeError(err)
	}

	balances, err := calculator.ComputeBalances(expenses, users)
	if err != nil {
		s.logger.Error("GetBalances failed - calculation error", "group_id", groupID, "error", err)
		return nil, connect.NewError(connect.CodeFailedPrecondition, err)
	}
	// Unequal splits may legitimately not conserve; surface it without failing.
	if err := calculator.CheckConservation(balances); err != nil {
		s.logger.Warn("Group balances do not sum to zero", "group_id", groupID, "error", err)
	}

	summaries, err := calculator.SummarizeMembers(expenses, users)
	if err != nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, err)
	}

	plan := calculator.ComputeSettlementPlan(balances)
	s.metrics.PlanTransfers.Observe(float64(len(plan)))

	s.logger.Info("GetBalances successful",
		"group_id", groupID,
		"expenses_count", len(expenses),
		"members_count", len(users),
		"transfers_count", len(plan),
	)

	return connect.NewResponse(&pb.GetBalancesResponse{
		Balances:       balancesToProto(balances),
		SettlementPlan: settlementsToProto(plan),
		Members:        summariesToProto(summaries, users),
		TotalSpent:     calculator.TotalSpent(expenses),
	}), nil
}

// RecordSettlement stores a payment from one member to another as a
// settlement expense.
func (s *ExpenseService) RecordSettlement(ctx context.Context, req *connect.Request[pb.RecordSettlementRequest]) (*connect.Response[pb.RecordSettlementResponse], error) {
	msg := req.Msg
	s.logger.Info("RecordSettlement request received",
		"group_id", msg.GroupID,
		"from", msg.From,
		"to", msg.To,
		"amount", msg.Amount,
	)

	group, users, err := s.groupMembers(ctx, msg.GroupID)
	if err != nil {
		s.logger.Error("RecordSettlement failed - group lookup", "group_id", msg.GroupID, "error", err)
		return nil, err
	}

	if msg.From == msg.To {
		return nil, connect.NewError(connect.CodeInvalidArgument, errSelfSettlement)
	}
	for _, id := range []string{msg.From, msg.To} {
		if !group.HasMember(id) {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: %q", errNotMember, id))
		}
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	settlement := models.Settlement{From: msg.From, To: msg.To, Amount: msg.Amount}
	expense := calculator.SettlementExpense(settlement, names[msg.From], names[msg.To], s.now().UTC())
	expense.GroupID = msg.GroupID

	if err := calculator.ValidateExpense(expense, users); err != nil {
		s.logger.Warn("RecordSettlement rejected", "group_id", msg.GroupID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateExpense(ctx, &expense); err != nil {
		s.logger.Error("RecordSettlement failed", "group_id", msg.GroupID, "error", err)
		return nil, storeError(err)
	}
	s.metrics.ExpensesRecorded.WithLabelValues(metrics.KindSettlement).Inc()

	s.logger.Info("Settlement recorded",
		"group_id", msg.GroupID,
		"expense_id", expense.ID,
		"description", expense.Description,
	)

	return connect.NewResponse(&pb.RecordSettlementResponse{Expense: expenseToProto(expense)}), nil
}
