package models

// JoinRequestStatus is the lifecycle state of a join request.
type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "pending"
	JoinRequestApproved JoinRequestStatus = "approved"
	JoinRequestRejected JoinRequestStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s JoinRequestStatus) Valid() bool {
	switch s {
	case JoinRequestPending, JoinRequestApproved, JoinRequestRejected:
		return true
	}
	return false
}

// JoinRequest is a request by a non-member to enter a group.
// Approved and rejected are terminal states.
type JoinRequest struct {
	// ID is the unique identifier for the request (UUID format).
	ID string

	// GroupID is the group the user wants to join.
	GroupID string

	// UserID is the uid of the requesting user.
	UserID string

	// UserEmail and UserName are copied into the member record on approval.
	UserEmail string
	UserName  string

	// Status is pending until an admin approves or rejects it.
	Status JoinRequestStatus

	// CreatedAt is the Unix timestamp when the request was submitted.
	CreatedAt int64
}
