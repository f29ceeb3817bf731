package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/storage"
)

var (
	errNameRequired    = errors.New("name required")
	errGroupIDRequired = errors.New("group_id required")
	errMembersRequired = errors.New("member_ids required")
	errSelfSettlement  = errors.New("from and to must be different users")
	errNotMember       = errors.New("user is not a member of the group")
)

// storeError maps storage failures to Connect codes.
func storeError(err error) *connect.Error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// memberLookupError maps failures resolving caller-supplied user IDs. An
// unknown ID is bad input, not a missing resource.
func memberLookupError(err error) *connect.Error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
