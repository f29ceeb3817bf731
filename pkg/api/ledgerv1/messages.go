package ledgerv1

import "time"

// Split types accepted in Split.Type.
const (
	SplitTypeEqually    = "equally"
	SplitTypeUnequally  = "unequally"
	SplitTypePercentage = "percentage"
)

type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AvatarColor string `json:"avatar_color,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

type Group struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MemberIDs []string `json:"member_ids"`
	CreatedAt int64    `json:"created_at"`
}

// Split is the wire form of a split. Equal splits use Participants;
// unequal splits use Shares; percentage splits use Shares with Percent.
type Split struct {
	Type         string   `json:"type"`
	Participants []string `json:"participants,omitempty"`
	Shares       []Share  `json:"shares,omitempty"`
}

type Share struct {
	UserID  string  `json:"user_id"`
	Amount  float64 `json:"amount,omitempty"`
	Percent float64 `json:"percent,omitempty"`
}

type Expense struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"group_id"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
	PaidBy       string    `json:"paid_by"`
	Date         time.Time `json:"date"`
	Split        Split     `json:"split"`
	IsSettlement bool      `json:"is_settlement,omitempty"`
}

type Balance struct {
	UserID  string  `json:"user_id"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

type Settlement struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

type MemberSummary struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	Balance    float64 `json:"balance"`
	TotalPaid  float64 `json:"total_paid"`
	TotalShare float64 `json:"total_share"`
}

// GroupService messages.

type CreateUserRequest struct {
	Name        string `json:"name"`
	AvatarColor string `json:"avatar_color,omitempty"`
}

type CreateUserResponse struct {
	User *User `json:"user"`
}

type ListUsersRequest struct{}

type ListUsersResponse struct {
	Users []*User `json:"users"`
}

type CreateGroupRequest struct {
	Name      string   `json:"name"`
	MemberIDs []string `json:"member_ids"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupResponse struct {
	Group   *Group  `json:"group"`
	Members []*User `json:"members"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type AddGroupMembersRequest struct {
	GroupID   string   `json:"group_id"`
	MemberIDs []string `json:"member_ids"`
}

type AddGroupMembersResponse struct {
	Group *Group `json:"group"`
}

// ExpenseService messages.

type AddExpenseRequest struct {
	GroupID     string    `json:"group_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	PaidBy      string    `json:"paid_by"`
	Date        time.Time `json:"date,omitzero"`
	Split       Split     `json:"split"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	GroupID string `json:"group_id"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type DeleteExpenseRequest struct {
	GroupID   string `json:"group_id"`
	ExpenseID string `json:"expense_id"`
}

type DeleteExpenseResponse struct{}

type GetBalancesRequest struct {
	GroupID string `json:"group_id"`
}

type GetBalancesResponse struct {
	Balances       []*Balance       `json:"balances"`
	SettlementPlan []*Settlement    `json:"settlement_plan"`
	Members        []*MemberSummary `json:"members"`
	TotalSpent     float64          `json:"total_spent"`
}

type RecordSettlementRequest struct {
	GroupID string  `json:"group_id"`
	From    string  `json:"from"`
	To      string  `json:"to"`
	Amount  float64 `json:"amount"`
}

type RecordSettlementResponse struct {
	Expense *Expense `json:"expense"`
}
