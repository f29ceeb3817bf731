package ledgerv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/pkg/api/ledgerv1"
)

// GroupServiceName is the fully-qualified name of the GroupService service.
const GroupServiceName = "splitledger.v1.GroupService"

const (
	GroupServiceCreateUserProcedure      = "/splitledger.v1.GroupService/CreateUser"
	GroupServiceListUsersProcedure       = "/splitledger.v1.GroupService/ListUsers"
	GroupServiceCreateGroupProcedure     = "/splitledger.v1.GroupService/CreateGroup"
	GroupServiceGetGroupProcedure        = "/splitledger.v1.GroupService/GetGroup"
	GroupServiceListGroupsProcedure      = "/splitledger.v1.GroupService/ListGroups"
	GroupServiceAddGroupMembersProcedure = "/splitledger.v1.GroupService/AddGroupMembers"
)

// GroupServiceHandler is implemented by the server side of GroupService.
type GroupServiceHandler interface {
	CreateUser(context.Context, *connect.Request[ledgerv1.CreateUserRequest]) (*connect.Response[ledgerv1.CreateUserResponse], error)
	ListUsers(context.Context, *connect.Request[ledgerv1.ListUsersRequest]) (*connect.Response[ledgerv1.ListUsersResponse], error)
	CreateGroup(context.Context, *connect.Request[ledgerv1.CreateGroupRequest]) (*connect.Response[ledgerv1.CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[ledgerv1.GetGroupRequest]) (*connect.Response[ledgerv1.GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[ledgerv1.ListGroupsRequest]) (*connect.Response[ledgerv1.ListGroupsResponse], error)
	AddGroupMembers(context.Context, *connect.Request[ledgerv1.AddGroupMembersRequest]) (*connect.Response[ledgerv1.AddGroupMembersResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	createUser := connect.NewUnaryHandler(GroupServiceCreateUserProcedure, svc.CreateUser, opt)
	listUsers := connect.NewUnaryHandler(GroupServiceListUsersProcedure, svc.ListUsers, opt)
	createGroup := connect.NewUnaryHandler(GroupServiceCreateGroupProcedure, svc.CreateGroup, opt)
	getGroup := connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opt)
	listGroups := connect.NewUnaryHandler(GroupServiceListGroupsProcedure, svc.ListGroups, opt)
	addGroupMembers := connect.NewUnaryHandler(GroupServiceAddGroupMembersProcedure, svc.AddGroupMembers, opt)

	return "/" + GroupServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case GroupServiceCreateUserProcedure:
			createUser.ServeHTTP(w, r)
		case GroupServiceListUsersProcedure:
			listUsers.ServeHTTP(w, r)
		case GroupServiceCreateGroupProcedure:
			createGroup.ServeHTTP(w, r)
		case GroupServiceGetGroupProcedure:
			getGroup.ServeHTTP(w, r)
		case GroupServiceListGroupsProcedure:
			listGroups.ServeHTTP(w, r)
		case GroupServiceAddGroupMembersProcedure:
			addGroupMembers.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedGroupServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedGroupServiceHandler struct{}

func (UnimplementedGroupServiceHandler) CreateUser(context.Context, *connect.Request[ledgerv1.CreateUserRequest]) (*connect.Response[ledgerv1.CreateUserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.GroupService.CreateUser is not implemented"))
}

func (UnimplementedGroupServiceHandler) ListUsers(context.Context, *connect.Request[ledgerv1.ListUsersRequest]) (*connect.Response[ledgerv1.ListUsersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.GroupService.ListUsers is not implemented"))
}

func (UnimplementedGroupServiceHandler) CreateGroup(context.Context, *connect.Request[ledgerv1.CreateGroupRequest]) (*connect.Response[ledgerv1.CreateGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.GroupService.CreateGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) GetGroup(context.Context, *connect.Request[ledgerv1.GetGroupRequest]) (*connect.Response[ledgerv1.GetGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.GroupService.GetGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) ListGroups(context.Context, *connect.Request[ledgerv1.ListGroupsRequest]) (*connect.Response[ledgerv1.ListGroupsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.GroupService.ListGroups is not implemented"))
}

func (UnimplementedGroupServiceHandler) AddGroupMembers(context.Context, *connect.Request[ledgerv1.AddGroupMembersRequest]) (*connect.Response[ledgerv1.AddGroupMembersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.GroupService.AddGroupMembers is not implemented"))
}

// GroupServiceClient is a client for the splitledger.v1.GroupService service.
type GroupServiceClient interface {
	CreateUser(context.Context, *connect.Request[ledgerv1.CreateUserRequest]) (*connect.Response[ledgerv1.CreateUserResponse], error)
	ListUsers(context.Context, *connect.Request[ledgerv1.ListUsersRequest]) (*connect.Response[ledgerv1.ListUsersResponse], error)
	CreateGroup(context.Context, *connect.Request[ledgerv1.CreateGroupRequest]) (*connect.Response[ledgerv1.CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[ledgerv1.GetGroupRequest]) (*connect.Response[ledgerv1.GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[ledgerv1.ListGroupsRequest]) (*connect.Response[ledgerv1.ListGroupsResponse], error)
	AddGroupMembers(context.Context, *connect.Request[ledgerv1.AddGroupMembersRequest]) (*connect.Response[ledgerv1.AddGroupMembersResponse], error)
}

// NewGroupServiceClient constructs a client for GroupService. baseURL is the
// server root, e.g. "http://localhost:8080".
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroupServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &groupServiceClient{
		createUser:      connect.NewClient[ledgerv1.CreateUserRequest, ledgerv1.CreateUserResponse](httpClient, baseURL+GroupServiceCreateUserProcedure, opts...),
		listUsers:       connect.NewClient[ledgerv1.ListUsersRequest, ledgerv1.ListUsersResponse](httpClient, baseURL+GroupServiceListUsersProcedure, opts...),
		createGroup:     connect.NewClient[ledgerv1.CreateGroupRequest, ledgerv1.CreateGroupResponse](httpClient, baseURL+GroupServiceCreateGroupProcedure, opts...),
		getGroup:        connect.NewClient[ledgerv1.GetGroupRequest, ledgerv1.GetGroupResponse](httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
		listGroups:      connect.NewClient[ledgerv1.ListGroupsRequest, ledgerv1.ListGroupsResponse](httpClient, baseURL+GroupServiceListGroupsProcedure, opts...),
		addGroupMembers: connect.NewClient[ledgerv1.AddGroupMembersRequest, ledgerv1.AddGroupMembersResponse](httpClient, baseURL+GroupServiceAddGroupMembersProcedure, opts...),
	}
}

type groupServiceClient struct {
	createUser      *connect.Client[ledgerv1.CreateUserRequest, ledgerv1.CreateUserResponse]
	listUsers       *connect.Client[ledgerv1.ListUsersRequest, ledgerv1.ListUsersResponse]
	createGroup     *connect.Client[ledgerv1.CreateGroupRequest, ledgerv1.CreateGroupResponse]
	getGroup        *connect.Client[ledgerv1.GetGroupRequest, ledgerv1.GetGroupResponse]
	listGroups      *connect.Client[ledgerv1.ListGroupsRequest, ledgerv1.ListGroupsResponse]
	addGroupMembers *connect.Client[ledgerv1.AddGroupMembersRequest, ledgerv1.AddGroupMembersResponse]
}

func (c *groupServiceClient) CreateUser(ctx context.Context, req *connect.Request[ledgerv1.CreateUserRequest]) (*connect.Response[ledgerv1.CreateUserResponse], error) {
	return c.createUser.CallUnary(ctx, req)
}

func (c *groupServiceClient) ListUsers(ctx context.Context, req *connect.Request[ledgerv1.ListUsersRequest]) (*connect.Response[ledgerv1.ListUsersResponse], error) {
	return c.listUsers.CallUnary(ctx, req)
}

func (c *groupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[ledgerv1.CreateGroupRequest]) (*connect.Response[ledgerv1.CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) GetGroup(ctx context.Context, req *connect.Request[ledgerv1.GetGroupRequest]) (*connect.Response[ledgerv1.GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) ListGroups(ctx context.Context, req *connect.Request[ledgerv1.ListGroupsRequest]) (*connect.Response[ledgerv1.ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *groupServiceClient) AddGroupMembers(ctx context.Context, req *connect.Request[ledgerv1.AddGroupMembersRequest]) (*connect.Response[ledgerv1.AddGroupMembersResponse], error) {
	return c.addGroupMembers.CallUnary(ctx, req)
}
