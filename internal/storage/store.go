// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/groupledger/internal/models"
)

// UserStore persists registered accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail and GetUserByID return nil, nil when the user does not exist.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// GroupStore persists groups and join requests.
type GroupStore interface {
	// CreateGroup persists a new group with its members.
	// The group.ID, CreatedAt and Version fields are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its members in order.
	// Returns a NotFound error if the group does not exist.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// GetGroupByInviteCode retrieves the group opened by an invite code.
	GetGroupByInviteCode(ctx context.Context, inviteCode string) (*models.Group, error)

	// ListGroupsForMember returns every group where uid is a member, newest first.
	ListGroupsForMember(ctx context.Context, uid string) ([]*models.Group, error)

	// SaveMembership replaces the member list of group and, when req is not
	// nil, the status of req, in one transaction. The write only succeeds if
	// the stored version still equals expectedVersion; otherwise a Conflict
	// error is returned and nothing changes. group.Version is bumped on success.
	SaveMembership(ctx context.Context, group *models.Group, expectedVersion int64, req *models.JoinRequest) error

	// CreateJoinRequest persists a new pending request. A second pending
	// request for the same group and user is refused with a Domain error.
	CreateJoinRequest(ctx context.Context, req *models.JoinRequest) error

	GetJoinRequest(ctx context.Context, requestID string) (*models.JoinRequest, error)

	// ListPendingJoinRequests returns the pending requests of a group, oldest first.
	ListPendingJoinRequests(ctx context.Context, groupID string) ([]*models.JoinRequest, error)

	// UpdateJoinRequestStatus moves a request from one status to another.
	// Returns a Conflict error if the request is no longer in status from.
	UpdateJoinRequestStatus(ctx context.Context, requestID string, from, to models.JoinRequestStatus) error
}

// LedgerStore persists group and personal ledger entries.
type LedgerStore interface {
	// CreateGroupExpense persists a group entry and, when mirror is not nil,
	// the payer's personal mirror entry in the same transaction. IDs and
	// CreatedAt are populated by the store; mirror.GroupExpenseID is linked.
	CreateGroupExpense(ctx context.Context, expense *models.GroupExpense, mirror *models.PersonalExpense) error

	GetGroupExpense(ctx context.Context, expenseID string) (*models.GroupExpense, error)

	// ListGroupExpenses returns a group's full entry snapshot, newest first.
	ListGroupExpenses(ctx context.Context, groupID string) ([]*models.GroupExpense, error)

	// ListGroupExpensesPaidBy returns entries paid by uid within the given groups.
	ListGroupExpensesPaidBy(ctx context.Context, uid string, groupIDs []string) ([]*models.GroupExpense, error)

	// DeleteGroupExpense removes a group entry and its payer mirror.
	DeleteGroupExpense(ctx context.Context, expenseID string) error

	CreatePersonalExpense(ctx context.Context, expense *models.PersonalExpense) error
	GetPersonalExpense(ctx context.Context, expenseID string) (*models.PersonalExpense, error)

	// ListPersonalExpenses returns the entries owned by uid, newest first.
	ListPersonalExpenses(ctx context.Context, uid string) ([]*models.PersonalExpense, error)
	DeletePersonalExpense(ctx context.Context, expenseID string) error
}

// Store is the full persistence surface used by the services.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	UserStore
	GroupStore
	LedgerStore

	// Close releases any resources held by the store.
	Close() error
}
