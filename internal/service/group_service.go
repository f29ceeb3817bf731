package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/api/ledgerv1"
	"github.com/mmynk/splitledger/pkg/api/ledgerv1/ledgerv1connect"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	ledgerv1connect.UnimplementedGroupServiceHandler
	store  storage.Store
	logger *slog.Logger
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, logger *slog.Logger) *GroupService {
	return &GroupService{store: store, logger: logger}
}

// CreateUser registers a new user.
func (s *GroupService) CreateUser(ctx context.Context, req *connect.Request[pb.CreateUserRequest]) (*connect.Response[pb.CreateUserResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	s.logger.Info("CreateUser request received", "name", name)

	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errNameRequired)
	}

	user := &models.User{Name: name, AvatarColor: req.Msg.AvatarColor}
	if err := s.store.CreateUser(ctx, user); err != nil {
		s.logger.Error("CreateUser failed", "error", err)
		return nil, storeError(err)
	}

	s.logger.Info("User created", "user_id", user.ID)

	return connect.NewResponse(&pb.CreateUserResponse{User: userToProto(*user)}), nil
}

// ListUsers returns every known user.
func (s *GroupService) ListUsers(ctx context.Context, req *connect.Request[pb.ListUsersRequest]) (*connect.Response[pb.ListUsersResponse], error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		s.logger.Error("ListUsers failed", "error", err)
		return nil, storeError(err)
	}

	out := make([]*pb.User, len(users))
	for i, u := range users {
		out[i] = userToProto(u)
	}

	s.logger.Debug("ListUsers successful", "count", len(users))

	return connect.NewResponse(&pb.ListUsersResponse{Users: out}), nil
}

// CreateGroup creates a new group. Every member must be an existing user.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	s.logger.Info("CreateGroup request received",
		"name", name,
		"members_count", len(req.Msg.MemberIDs),
	)

	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errNameRequired)
	}
	if _, err := s.store.GetUsers(ctx, req.Msg.MemberIDs); err != nil {
		s.logger.Warn("CreateGroup rejected - unknown member", "error", err)
		return nil, memberLookupError(err)
	}

	group := &models.Group{Name: name, Members: req.Msg.MemberIDs}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		s.logger.Error("CreateGroup failed", "error", err)
		return nil, storeError(err)
	}

	s.logger.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&pb.CreateGroupResponse{Group: groupToProto(group)}), nil
}

// GetGroup retrieves a group and its member records.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	groupID := req.Msg.GroupID
	s.logger.Info("GetGroup request received", "group_id", groupID)

	if groupID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errGroupIDRequired)
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		s.logger.Error("GetGroup failed", "group_id", groupID, "error", err)
		return nil, storeError(err)
	}
	users, err := s.store.GetUsers(ctx, group.Members)
	if err != nil {
		s.logger.Error("GetGroup failed - could not load members", "group_id", groupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	members := make([]*pb.User, len(users))
	for i, u := range users {
		members[i] = userToProto(u)
	}

	s.logger.Info("GetGroup successful", "group_id", group.ID, "name", group.Name)

	return connect.NewResponse(&pb.GetGroupResponse{
		Group:   groupToProto(group),
		Members: members,
	}), nil
}

// ListGroups retrieves all groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	s.logger.Info("ListGroups request received")

	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		s.logger.Error("ListGroups failed", "error", err)
		return nil, storeError(err)
	}

	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = groupToProto(g)
	}

	s.logger.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&pb.ListGroupsResponse{Groups: out}), nil
}

// AddGroupMembers adds existing users to a group. Users already in the group
// are skipped.
func (s *GroupService) AddGroupMembers(ctx context.Context, req *connect.Request[pb.AddGroupMembersRequest]) (*connect.Response[pb.AddGroupMembersResponse], error) {
	groupID := req.Msg.GroupID
	s.logger.Info("AddGroupMembers request received",
		"group_id", groupID,
		"members_count", len(req.Msg.MemberIDs),
	)

	if groupID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errGroupIDRequired)
	}
	if len(req.Msg.MemberIDs) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMembersRequired)
	}
	if _, err := s.store.GetUsers(ctx, req.Msg.MemberIDs); err != nil {
		return nil, memberLookupError(err)
	}

	if err := s.store.AddGroupMembers(ctx, groupID, req.Msg.MemberIDs); err != nil {
		s.logger.Error("AddGroupMembers failed", "group_id", groupID, "error", err)
		return nil, storeError(err)
	}

	// Fetch updated group to return the merged member list
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		s.logger.Error("Failed to fetch updated group", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Group members added", "group_id", groupID, "members_count", len(group.Members))

	return connect.NewResponse(&pb.AddGroupMembersResponse{Group: groupToProto(group)}), nil
}
