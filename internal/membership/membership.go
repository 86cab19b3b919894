// Package membership implements the group membership lifecycle as pure
// transitions over Group and JoinRequest values:
//
//	NonMember -> PendingRequest -> Member -> Removed | Left
//
// The admin is a member that can be neither removed nor leave.
//
// Every transition returns new values and never mutates its inputs, so a
// caller can re-read fresh state and re-apply a transition after a conflict.
package membership

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/mmynk/groupledger/internal/apperror"
	"github.com/mmynk/groupledger/internal/models"
)

var (
	ErrAdminRemoveSelf   = apperror.New(apperror.Domain, "Admin cannot remove themselves")
	ErrAdminLeave        = apperror.New(apperror.Domain, "Admin cannot leave the group")
	ErrInvalidInviteCode = apperror.New(apperror.Domain, "invalid invite code")
	ErrAlreadyMember     = apperror.New(apperror.Domain, "user is already a member of this group")
	ErrRequestApproved   = apperror.New(apperror.Domain, "join request already approved")
	ErrRequestRejected   = apperror.New(apperror.Domain, "join request already rejected")
	ErrRequestMismatch   = apperror.New(apperror.Domain, "join request belongs to another group")
	ErrMemberNotFound    = apperror.New(apperror.NotFound, "member not found in group")
)

// inviteCodeLength is the number of base32 characters in an invite code.
const inviteCodeLength = 10

var inviteEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewInviteCode returns an opaque random token.
func NewInviteCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invite code: %w", err)
	}
	return strings.ToLower(inviteEncoding.EncodeToString(buf))[:inviteCodeLength], nil
}

// NewGroup builds a group with the admin as its only member.
func NewGroup(name string, admin models.Member, inviteCode string) (models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Group{}, apperror.Validationf("group name required")
	}
	if admin.UID == "" {
		return models.Group{}, apperror.Validationf("admin id required")
	}
	if inviteCode == "" {
		return models.Group{}, apperror.Validationf("invite code required")
	}

	return models.Group{
		Name:       name,
		AdminID:    admin.UID,
		Members:    []models.Member{admin},
		MemberIDs:  []string{admin.UID},
		InviteCode: inviteCode,
	}, nil
}

// ValidateInviteCode checks that code opens group.
func ValidateInviteCode(group models.Group, code string) error {
	if code == "" || group.InviteCode != code {
		return ErrInvalidInviteCode
	}
	return nil
}

// NewJoinRequest builds a pending request for applicant to enter group.
// It refuses applicants that are already members; duplicate pending
// requests are refused by the store.
func NewJoinRequest(group models.Group, applicant models.Member) (models.JoinRequest, error) {
	if applicant.UID == "" {
		return models.JoinRequest{}, apperror.Validationf("user id required")
	}
	if group.HasMember(applicant.UID) {
		return models.JoinRequest{}, ErrAlreadyMember
	}
	return models.JoinRequest{
		GroupID:   group.ID,
		UserID:    applicant.UID,
		UserEmail: applicant.Email,
		UserName:  applicant.Name,
		Status:    models.JoinRequestPending,
	}, nil
}

// Approve adds the requesting user to both member collections and marks the
// request approved. Approving an already approved request fails, so a
// double click can never duplicate a member.
func Approve(group models.Group, req models.JoinRequest) (models.Group, models.JoinRequest, error) {
	if err := checkPending(req); err != nil {
		return group, req, err
	}
	if req.GroupID != group.ID {
		return group, req, ErrRequestMismatch
	}

	next := clone(group)
	if !next.HasMember(req.UserID) {
		next.Members = append(next.Members, models.Member{
			UID:   req.UserID,
			Name:  req.UserName,
			Email: req.UserEmail,
		})
		next.MemberIDs = models.MemberIDsOf(next.Members)
	}

	req.Status = models.JoinRequestApproved
	return next, req, nil
}

// Reject marks a pending request rejected. The group is untouched.
func Reject(req models.JoinRequest) (models.JoinRequest, error) {
	if err := checkPending(req); err != nil {
		return req, err
	}
	req.Status = models.JoinRequestRejected
	return req, nil
}

// RemoveMember drops memberID from both member collections, keeping the
// relative order of the others.
func RemoveMember(group models.Group, memberID string) (models.Group, error) {
	if group.IsAdmin(memberID) {
		return group, ErrAdminRemoveSelf
	}
	return without(group, memberID)
}

// Leave is the self-initiated form of RemoveMember. The admin must hand
// over ownership first, which is not supported, so the admin can never leave.
func Leave(group models.Group, userID string) (models.Group, error) {
	if group.IsAdmin(userID) {
		return group, ErrAdminLeave
	}
	return without(group, userID)
}

// CheckInvariants verifies that MemberIDs matches Members and that the
// admin is a member.
func CheckInvariants(group models.Group) error {
	if len(group.Members) != len(group.MemberIDs) {
		return fmt.Errorf("group %s: %d members but %d member ids", group.ID, len(group.Members), len(group.MemberIDs))
	}
	seen := make(map[string]bool, len(group.Members))
	for _, m := range group.Members {
		if seen[m.UID] {
			return fmt.Errorf("group %s: duplicate member %s", group.ID, m.UID)
		}
		seen[m.UID] = true
	}
	for _, id := range group.MemberIDs {
		if !seen[id] {
			return fmt.Errorf("group %s: member id %s has no member record", group.ID, id)
		}
	}
	if !seen[group.AdminID] {
		return fmt.Errorf("group %s: admin %s is not a member", group.ID, group.AdminID)
	}
	return nil
}

func checkPending(req models.JoinRequest) error {
	switch req.Status {
	case models.JoinRequestPending:
		return nil
	case models.JoinRequestApproved:
		return ErrRequestApproved
	case models.JoinRequestRejected:
		return ErrRequestRejected
	}
	return apperror.Domainf("join request has unknown status %q", req.Status)
}

func without(group models.Group, uid string) (models.Group, error) {
	if !group.HasMember(uid) {
		return group, ErrMemberNotFound
	}

	next := clone(group)
	next.Members = next.Members[:0]
	for _, m := range group.Members {
		if m.UID != uid {
			next.Members = append(next.Members, m)
		}
	}
	next.MemberIDs = models.MemberIDsOf(next.Members)
	return next, nil
}

func clone(group models.Group) models.Group {
	next := group
	next.Members = append([]models.Member(nil), group.Members...)
	next.MemberIDs = append([]string(nil), group.MemberIDs...)
	return next
}
