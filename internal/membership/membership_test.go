package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/apperror"
	"github.com/mmynk/groupledger/internal/models"
)

var (
	asha  = models.Member{UID: "asha", Name: "Asha", Email: "asha@example.com"}
	bilal = models.Member{UID: "bilal", Name: "Bilal", Email: "bilal@example.com"}
	chen  = models.Member{UID: "chen", Name: "Chen", Email: "chen@example.com"}
)

func newTestGroup(t *testing.T) models.Group {
	t.Helper()
	g, err := NewGroup("Flat 4B", asha, "abcdefghij")
	require.NoError(t, err)
	g.ID = "g1"
	return g
}

func join(t *testing.T, g models.Group, m models.Member) models.Group {
	t.Helper()
	req, err := NewJoinRequest(g, m)
	require.NoError(t, err)
	next, _, err := Approve(g, req)
	require.NoError(t, err)
	return next
}

func TestNewInviteCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := NewInviteCode()
		require.NoError(t, err)
		assert.Len(t, code, inviteCodeLength)
		assert.False(t, seen[code], "duplicate invite code %s", code)
		seen[code] = true
	}
}

func TestNewGroup(t *testing.T) {
	g := newTestGroup(t)
	assert.Equal(t, "asha", g.AdminID)
	assert.Equal(t, []models.Member{asha}, g.Members)
	assert.Equal(t, []string{"asha"}, g.MemberIDs)
	assert.NoError(t, CheckInvariants(g))

	_, err := NewGroup("   ", asha, "code")
	assert.Equal(t, apperror.Validation, apperror.KindOf(err))

	_, err = NewGroup("Trip", models.Member{}, "code")
	assert.Equal(t, apperror.Validation, apperror.KindOf(err))
}

func TestValidateInviteCode(t *testing.T) {
	g := newTestGroup(t)
	assert.NoError(t, ValidateInviteCode(g, "abcdefghij"))
	assert.ErrorIs(t, ValidateInviteCode(g, "nope"), ErrInvalidInviteCode)
	assert.ErrorIs(t, ValidateInviteCode(g, ""), ErrInvalidInviteCode)
}

func TestApprove(t *testing.T) {
	g := newTestGroup(t)
	req, err := NewJoinRequest(g, bilal)
	require.NoError(t, err)
	assert.Equal(t, models.JoinRequestPending, req.Status)

	next, approved, err := Approve(g, req)
	require.NoError(t, err)

	assert.Equal(t, models.JoinRequestApproved, approved.Status)
	assert.Equal(t, []string{"asha", "bilal"}, next.MemberIDs)
	assert.Equal(t, bilal, next.Members[1])
	assert.NoError(t, CheckInvariants(next))

	// input untouched
	assert.Equal(t, []string{"asha"}, g.MemberIDs)
	assert.Equal(t, models.JoinRequestPending, req.Status)
}

func TestApprove_Twice(t *testing.T) {
	g := newTestGroup(t)
	req, err := NewJoinRequest(g, bilal)
	require.NoError(t, err)

	next, approved, err := Approve(g, req)
	require.NoError(t, err)

	again, _, err := Approve(next, approved)
	assert.ErrorIs(t, err, ErrRequestApproved)
	assert.Equal(t, apperror.Domain, apperror.KindOf(err))
	assert.Equal(t, []string{"asha", "bilal"}, again.MemberIDs)
}

func TestApprove_DuplicatePendingRequests(t *testing.T) {
	g := newTestGroup(t)
	first, err := NewJoinRequest(g, bilal)
	require.NoError(t, err)
	second, err := NewJoinRequest(g, bilal)
	require.NoError(t, err)

	g, _, err = Approve(g, first)
	require.NoError(t, err)
	g, closed, err := Approve(g, second)
	require.NoError(t, err)

	assert.Equal(t, models.JoinRequestApproved, closed.Status)
	assert.Equal(t, []string{"asha", "bilal"}, g.MemberIDs)
	assert.NoError(t, CheckInvariants(g))
}

func TestApprove_WrongGroup(t *testing.T) {
	g := newTestGroup(t)
	req, err := NewJoinRequest(g, bilal)
	require.NoError(t, err)
	req.GroupID = "other"

	_, _, err = Approve(g, req)
	assert.ErrorIs(t, err, ErrRequestMismatch)
}

func TestNewJoinRequest_ExistingMember(t *testing.T) {
	g := newTestGroup(t)
	_, err := NewJoinRequest(g, asha)
	assert.ErrorIs(t, err, ErrAlreadyMember)
}

func TestReject(t *testing.T) {
	g := newTestGroup(t)
	req, err := NewJoinRequest(g, bilal)
	require.NoError(t, err)

	rejected, err := Reject(req)
	require.NoError(t, err)
	assert.Equal(t, models.JoinRequestRejected, rejected.Status)

	_, err = Reject(rejected)
	assert.ErrorIs(t, err, ErrRequestRejected)

	_, _, err = Approve(g, rejected)
	assert.ErrorIs(t, err, ErrRequestRejected)
}

func TestRemoveMember(t *testing.T) {
	g := join(t, join(t, newTestGroup(t), bilal), chen)

	next, err := RemoveMember(g, "bilal")
	require.NoError(t, err)
	assert.Equal(t, []string{"asha", "chen"}, next.MemberIDs)
	assert.Equal(t, []models.Member{asha, chen}, next.Members)
	assert.NoError(t, CheckInvariants(next))
	assert.Equal(t, []string{"asha", "bilal", "chen"}, g.MemberIDs)

	_, err = RemoveMember(next, "bilal")
	assert.ErrorIs(t, err, ErrMemberNotFound)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}

func TestRemoveMember_AdminAlwaysBlocked(t *testing.T) {
	g := newTestGroup(t)
	for _, m := range []models.Member{bilal, chen} {
		_, err := RemoveMember(g, "asha")
		require.ErrorIs(t, err, ErrAdminRemoveSelf)
		assert.Equal(t, "Admin cannot remove themselves", apperror.Message(err))
		g = join(t, g, m)
	}
	_, err := RemoveMember(g, "asha")
	assert.ErrorIs(t, err, ErrAdminRemoveSelf)
}

func TestLeave(t *testing.T) {
	g := join(t, newTestGroup(t), bilal)

	_, err := Leave(g, "asha")
	assert.ErrorIs(t, err, ErrAdminLeave)

	next, err := Leave(g, "bilal")
	require.NoError(t, err)
	assert.Equal(t, []string{"asha"}, next.MemberIDs)

	_, err = Leave(next, "bilal")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestCheckInvariants(t *testing.T) {
	g := join(t, newTestGroup(t), bilal)

	broken := g
	broken.MemberIDs = []string{"asha"}
	assert.Error(t, CheckInvariants(broken))

	broken = g
	broken.MemberIDs = []string{"asha", "chen"}
	assert.Error(t, CheckInvariants(broken))

	broken = g
	broken.AdminID = "chen"
	assert.Error(t, CheckInvariants(broken))

	broken = g
	broken.Members = []models.Member{asha, asha}
	broken.MemberIDs = []string{"asha", "asha"}
	assert.Error(t, CheckInvariants(broken))
}
