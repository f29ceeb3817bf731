package service

import (
	"fmt"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	pb "github.com/mmynk/splitledger/pkg/api/ledgerv1"
)

func userToProto(u models.User) *pb.User {
	return &pb.User{
		ID:          u.ID,
		Name:        u.Name,
		AvatarColor: u.AvatarColor,
		CreatedAt:   u.CreatedAt,
	}
}

func groupToProto(g *models.Group) *pb.Group {
	return &pb.Group{
		ID:        g.ID,
		Name:      g.Name,
		MemberIDs: g.Members,
		CreatedAt: g.CreatedAt,
	}
}

// splitFromProto converts the wire split into the calculator's variant.
// Unknown type names fail with ErrUnsupportedSplit.
func splitFromProto(s pb.Split) (models.Split, error) {
	switch s.Type {
	case pb.SplitTypeEqually:
		return models.EqualSplit{Participants: s.Participants}, nil
	case pb.SplitTypeUnequally:
		shares := make([]models.Share, len(s.Shares))
		for i, sh := range s.Shares {
			shares[i] = models.Share{UserID: sh.UserID, Amount: sh.Amount}
		}
		return models.UnequalSplit{Shares: shares}, nil
	case pb.SplitTypePercentage:
		shares := make([]models.PercentShare, len(s.Shares))
		for i, sh := range s.Shares {
			shares[i] = models.PercentShare{UserID: sh.UserID, Percent: sh.Percent}
		}
		return models.PercentageSplit{Shares: shares}, nil
	default:
		return nil, fmt.Errorf("%w: %q", calculator.ErrUnsupportedSplit, s.Type)
	}
}

func splitToProto(s models.Split) pb.Split {
	switch split := s.(type) {
	case models.EqualSplit:
		return pb.Split{Type: pb.SplitTypeEqually, Participants: split.Participants}
	case models.UnequalSplit:
		shares := make([]pb.Share, len(split.Shares))
		for i, sh := range split.Shares {
			shares[i] = pb.Share{UserID: sh.UserID, Amount: sh.Amount}
		}
		return pb.Split{Type: pb.SplitTypeUnequally, Shares: shares}
	case models.PercentageSplit:
		shares := make([]pb.Share, len(split.Shares))
		for i, sh := range split.Shares {
			shares[i] = pb.Share{UserID: sh.UserID, Percent: sh.Percent}
		}
		return pb.Split{Type: pb.SplitTypePercentage, Shares: shares}
	default:
		return pb.Split{}
	}
}

func expenseToProto(e models.Expense) *pb.Expense {
	return &pb.Expense{
		ID:           e.ID,
		GroupID:      e.GroupID,
		Description:  e.Description,
		Amount:       e.Amount,
		PaidBy:       e.PaidBy,
		Date:         e.Date,
		Split:        splitToProto(e.Split),
		IsSettlement: e.IsSettlement,
	}
}

func balancesToProto(balances []models.Balance) []*pb.Balance {
	out := make([]*pb.Balance, len(balances))
	for i, b := range balances {
		out[i] = &pb.Balance{
			UserID:  b.UserID,
			Amount:  b.Amount,
			Display: money.Format(b.Amount),
		}
	}
	return out
}

func settlementsToProto(plan []models.Settlement) []*pb.Settlement {
	out := make([]*pb.Settlement, len(plan))
	for i, s := range plan {
		out[i] = &pb.Settlement{
			From:    s.From,
			To:      s.To,
			Amount:  s.Amount,
			Display: money.Format(s.Amount),
		}
	}
	return out
}

func summariesToProto(summaries []models.MemberSummary, users []models.User) []*pb.MemberSummary {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	out := make([]*pb.MemberSummary, len(summaries))
	for i, s := range summaries {
		out[i] = &pb.MemberSummary{
			UserID:     s.UserID,
			Name:       names[s.UserID],
			Balance:    s.Balance,
			TotalPaid:  s.TotalPaid,
			TotalShare: s.TotalShare,
		}
	}
	return out
}
