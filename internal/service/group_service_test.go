package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/storage/memory"
	pb "github.com/mmynk/splitledger/pkg/api/ledgerv1"
	"github.com/mmynk/splitledger/pkg/api/ledgerv1/ledgerv1connect"
)

type testClients struct {
	groups   ledgerv1connect.GroupServiceClient
	expenses ledgerv1connect.ExpenseServiceClient
	metrics  *metrics.Metrics
}

// setupTestServer serves both services over an in-memory store.
func setupTestServer(t *testing.T, opts ExpenseOptions) testClients {
	t.Helper()

	store := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	}

	groupPath, groupHandler := ledgerv1connect.NewGroupServiceHandler(NewGroupService(store, logger))
	expensePath, expenseHandler := ledgerv1connect.NewExpenseServiceHandler(NewExpenseService(store, logger, opts))

	mux := http.NewServeMux()
	mux.Handle(groupPath, groupHandler)
	mux.Handle(expensePath, expenseHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return testClients{
		groups:   ledgerv1connect.NewGroupServiceClient(http.DefaultClient, server.URL),
		expenses: ledgerv1connect.NewExpenseServiceClient(http.DefaultClient, server.URL),
		metrics:  opts.Metrics,
	}
}

func createUsers(t *testing.T, client ledgerv1connect.GroupServiceClient, names ...string) []string {
	t.Helper()
	ids := make([]string, len(names))
	for i, name := range names {
		resp, err := client.CreateUser(context.Background(), connect.NewRequest(&pb.CreateUserRequest{Name: name}))
		require.NoError(t, err)
		ids[i] = resp.Msg.User.ID
	}
	return ids
}

func createGroup(t *testing.T, client ledgerv1connect.GroupServiceClient, name string, members []string) string {
	t.Helper()
	resp, err := client.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
		Name:      name,
		MemberIDs: members,
	}))
	require.NoError(t, err)
	return resp.Msg.Group.ID
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, connect.CodeOf(err), "error: %v", err)
}

func TestCreateUser(t *testing.T) {
	c := setupTestServer(t, ExpenseOptions{})

	resp, err := c.groups.CreateUser(context.Background(), connect.NewRequest(&pb.CreateUserRequest{
		Name:        "  Alice ",
		AvatarColor: "#ef4444",
	}))
	require.NoError(t, err)

	user := resp.Msg.User
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "#ef4444", user.AvatarColor)
	assert.NotZero(t, user.CreatedAt)
}

func TestCreateUser_NameRequired(t *testing.T) {
	c := setupTestServer(t, ExpenseOptions{})

	_, err := c.groups.CreateUser(context.Background(), connect.NewRequest(&pb.CreateUserRequest{Name: "   "}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestListUsers(t *testing.T) {
	c := setupTestServer(t, ExpenseOptions{})
	ids := createUsers(t, c.groups, "Alice", "Bob", "Carol")

	resp, err := c.groups.ListUsers(context.Background(), connect.NewRequest(&pb.ListUsersRequest{}))
	require.NoError(t, err)

	require.Len(t, resp.Msg.Users, 3)
	for i, u := range resp.Msg.Users {
		assert.Equal(t, ids[i], u.ID)
	}
}

func TestCreateGroup(t *testing.T) {
	c := setupTestServer(t, ExpenseOptions{})
	ids := createUsers(t, c.groups, "Alice", "Bob", "Carol")

	resp, err := c.groups.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
		Name:      "Roommates",
		MemberIDs: ids,
	}))
	require.NoError(t, err)

	group := resp.Msg.Group
	require.NotNil(t, group)
	assert.NotEmpty(t, group.ID)
	assert.Equal(t, "Roommates", group.Name)
	assert.Equal(t, ids, group.MemberIDs)
}

func TestCreateGroup_Validation(t *testing.T) {
	c := setupTestServer(t, ExpenseOptions{})
	ids := createUsers(t, c.groups, "Alice")

	tests := []struct {
		name    string
		req     *pb.CreateGroupRequest
		wantErr connect.Code
	}{
		{
			name:    "empty name",
			req:     &pb.CreateGroupRequest{Name: "", MemberIDs: ids},
			wantErr: connect.CodeInvalidArgument,
		},
		{
			name:    "unknown member",
			req:     &pb.CreateGroupRequest{Name: "Trip", MemberIDs: []string{ids[0], "ghost"}},
			wantErr: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.groups.CreateGroup(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, tt.wantErr)
		})
	}
}

func TestGetGroup(t *testing.T) {
	c := setupTestServer(t, ExpenseOptions{})
	ids := createUsers(t, c.groups, "Alice", "Bob")
	groupID := createGroup(t, c.groups, "Trip", ids)

	resp, err := c.groups.GetGroup(context.Background(), connect.NewRequest(&pb.GetGroupRequest{GroupID: groupID}))
	require.NoError(t, err)

	assert.Equal(t, "Trip", resp.Msg.Group.Name)
	require.Len(t, resp.Msg.Members, 2)
	assert.Equal(t, "Alice", resp.Msg.Members[0].Name)
	assert.Equal(t, "Bob", resp.Msg.Members[1].Name)
}

func TestGetGroup_Errors(t *testing.T) {
	c := setupTestServer(t, ExpenseOptions{})

	_, err := c.groups.GetGroup(context.Background(), connect.NewRequest(&pb.GetGroupRequest{GroupID: "nonexistent"}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = c.groups.GetGroup(context.Background(), connect.NewRequest(&pb.GetGroupRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestListGroups(t *testing.T) {
	c := setupTestServer(t, ExpenseOptions{})
	ids := createUsers(t, c.groups, "Alice", "Bob")
	createGroup(t, c.groups, "Roommates", ids)
	createGroup(t, c.groups, "Trip", ids[:1])

	resp, err := c.groups.ListGroups(context.Background(), connect.NewRequest(&pb.ListGroupsRequest{}))
	require.NoError(t, err)

	require.Len(t, resp.Msg.Groups, 2)
	assert.Equal(t, "Roommates", resp.Msg.Groups[0].Name)
	assert.Equal(t, "Trip", resp.Msg.Groups[1].Name)
}

func TestAddGroupMembers(t *testing.T) {
	c := setupTestServer(t, ExpenseOptions{})
	ids := createUsers(t, c.groups, "Alice", "Bob", "Carol")
	groupID := createGroup(t, c.groups, "Trip", ids[:1])

	resp, err := c.groups.AddGroupMembers(context.Background(), connect.NewRequest(&pb.AddGroupMembersRequest{
		GroupID:   groupID,
		MemberIDs: []string{ids[0], ids[1], ids[2], ids[1]},
	}))
	require.NoError(t, err)
	assert.Equal(t, ids, resp.Msg.Group.MemberIDs)
}

func TestAddGroupMembers_Errors(t *testing.T) {
	c := setupTestServer(t, ExpenseOptions{})
	ids := createUsers(t, c.groups, "Alice")
	groupID := createGroup(t, c.groups, "Trip", ids)

	tests := []struct {
		name    string
		req     *pb.AddGroupMembersRequest
		wantErr connect.Code
	}{
		{"missing group id", &pb.AddGroupMembersRequest{MemberIDs: ids}, connect.CodeInvalidArgument},
		{"no members", &pb.AddGroupMembersRequest{GroupID: groupID}, connect.CodeInvalidArgument},
		{"unknown user", &pb.AddGroupMembersRequest{GroupID: groupID, MemberIDs: []string{"ghost"}}, connect.CodeInvalidArgument},
		{"unknown group", &pb.AddGroupMembersRequest{GroupID: "nonexistent", MemberIDs: ids}, connect.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.groups.AddGroupMembers(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, tt.wantErr)
		})
	}
}
