package service

import (
	"context"
	"sync"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/groupledger/internal/events"
	"github.com/mmynk/groupledger/internal/middleware"
	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/storage"
	"github.com/mmynk/groupledger/internal/storage/sqlite"
	pb "github.com/mmynk/groupledger/pkg/proto"
)

func createGroup(t *testing.T, env *testEnv, admin, name string) *pb.Group {
	t.Helper()
	resp, err := env.groups.CreateGroup(context.Background(), as(admin, &pb.CreateGroupRequest{Name: name}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg.Group
}

func requestToJoin(t *testing.T, env *testEnv, group *pb.Group, uid string) *pb.JoinRequest {
	t.Helper()
	resp, err := env.groups.RequestToJoin(context.Background(), as(uid, &pb.RequestToJoinRequest{InviteCode: group.InviteCode}))
	if err != nil {
		t.Fatalf("RequestToJoin failed: %v", err)
	}
	return resp.Msg.Request
}

// joinGroup runs the full request/approve flow for uid.
func joinGroup(t *testing.T, env *testEnv, group *pb.Group, uid string) *pb.Group {
	t.Helper()
	req := requestToJoin(t, env, group, uid)
	resp, err := env.groups.ApproveJoinRequest(context.Background(), as(group.AdminId, &pb.ApproveJoinRequestRequest{RequestId: req.Id}))
	if err != nil {
		t.Fatalf("ApproveJoinRequest failed: %v", err)
	}
	return resp.Msg.Group
}

func TestCreateGroup(t *testing.T) {
	env := setupTestServer(t)

	group := createGroup(t, env, "alice", "Roommates")

	if group.Id == "" {
		t.Error("expected non-empty group ID")
	}
	if group.Name != "Roommates" {
		t.Errorf("name: expected 'Roommates', got '%s'", group.Name)
	}
	if group.AdminId != "alice" {
		t.Errorf("admin: expected alice, got %s", group.AdminId)
	}
	if len(group.Members) != 1 || group.Members[0].Uid != "alice" || group.Members[0].Name != "User alice" {
		t.Errorf("members: expected only alice, got %+v", group.Members)
	}
	if len(group.MemberIds) != 1 || group.MemberIds[0] != "alice" {
		t.Errorf("memberIds: expected [alice], got %v", group.MemberIds)
	}
	if len(group.InviteCode) != 10 {
		t.Errorf("invite code: expected 10 characters, got %q", group.InviteCode)
	}
	if group.GetCreatedAt().GetSeconds() == 0 {
		t.Error("expected non-zero CreatedAt")
	}

	recorded := env.recorder.Drain()
	if len(recorded) != 1 || recorded[0].Type != events.GroupCreated {
		t.Errorf("expected one group.created event, got %+v", recorded)
	}
}

func TestCreateGroup_Validation(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.groups.CreateGroup(context.Background(), as("alice", &pb.CreateGroupRequest{Name: "   "}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestCreateGroup_Unauthenticated(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.groups.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{Name: "Trip"}))
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestGetGroup(t *testing.T) {
	env := setupTestServer(t)
	group := createGroup(t, env, "alice", "Work Lunch")

	resp, err := env.groups.GetGroup(context.Background(), as("alice", &pb.GetGroupRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if resp.Msg.Group.Name != "Work Lunch" {
		t.Errorf("name: expected 'Work Lunch', got '%s'", resp.Msg.Group.Name)
	}

	t.Run("non-member is denied", func(t *testing.T) {
		_, err := env.groups.GetGroup(context.Background(), as("mallory", &pb.GetGroupRequest{GroupId: group.Id}))
		assertCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("missing group", func(t *testing.T) {
		_, err := env.groups.GetGroup(context.Background(), as("alice", &pb.GetGroupRequest{GroupId: "non-existent-id"}))
		assertCode(t, err, connect.CodeNotFound)
	})
}

func TestListGroups(t *testing.T) {
	env := setupTestServer(t)
	trip := createGroup(t, env, "alice", "Trip")
	createGroup(t, env, "alice", "Flat")
	createGroup(t, env, "carol", "Book club")
	joinGroup(t, env, trip, "bob")

	tests := []struct {
		uid  string
		want int
	}{
		{"alice", 2},
		{"bob", 1},
		{"carol", 1},
		{"dave", 0},
	}
	for _, tt := range tests {
		resp, err := env.groups.ListGroups(context.Background(), as(tt.uid, &pb.ListGroupsRequest{}))
		if err != nil {
			t.Fatalf("ListGroups(%s) failed: %v", tt.uid, err)
		}
		if len(resp.Msg.Groups) != tt.want {
			t.Errorf("ListGroups(%s): expected %d groups, got %d", tt.uid, tt.want, len(resp.Msg.Groups))
		}
	}
}

func TestGetGroupByInviteCode(t *testing.T) {
	env := setupTestServer(t)
	group := createGroup(t, env, "alice", "Trip")

	resp, err := env.groups.GetGroupByInviteCode(context.Background(), as("bob", &pb.GetGroupByInviteCodeRequest{InviteCode: group.InviteCode}))
	if err != nil {
		t.Fatalf("GetGroupByInviteCode failed: %v", err)
	}
	if resp.Msg.Group.Id != group.Id || resp.Msg.Group.MemberCount != 1 || resp.Msg.Group.AdminName != "User alice" {
		t.Errorf("unexpected preview: %+v", resp.Msg.Group)
	}
	if resp.Msg.IsMember {
		t.Error("bob should not be a member yet")
	}

	_, err = env.groups.GetGroupByInviteCode(context.Background(), as("bob", &pb.GetGroupByInviteCodeRequest{InviteCode: "bogus"}))
	assertCode(t, err, connect.CodeFailedPrecondition)
	if msg := errorMessage(err); msg != "invalid invite code" {
		t.Errorf("message: expected 'invalid invite code', got %q", msg)
	}
}

func TestJoinFlow(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := createGroup(t, env, "alice", "Trip")

	req := requestToJoin(t, env, group, "bob")
	if req.Status != "pending" || req.UserId != "bob" || req.UserName != "User bob" {
		t.Fatalf("unexpected request: %+v", req)
	}

	t.Run("duplicate pending request is refused", func(t *testing.T) {
		_, err := env.groups.RequestToJoin(ctx, as("bob", &pb.RequestToJoinRequest{InviteCode: group.InviteCode}))
		assertCode(t, err, connect.CodeFailedPrecondition)
	})

	t.Run("only the admin lists requests", func(t *testing.T) {
		resp, err := env.groups.ListJoinRequests(ctx, as("alice", &pb.ListJoinRequestsRequest{GroupId: group.Id}))
		if err != nil {
			t.Fatalf("ListJoinRequests failed: %v", err)
		}
		if len(resp.Msg.Requests) != 1 || resp.Msg.Requests[0].Id != req.Id {
			t.Errorf("expected bob's request, got %+v", resp.Msg.Requests)
		}

		_, err = env.groups.ListJoinRequests(ctx, as("bob", &pb.ListJoinRequestsRequest{GroupId: group.Id}))
		assertCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("only the admin approves", func(t *testing.T) {
		_, err := env.groups.ApproveJoinRequest(ctx, as("bob", &pb.ApproveJoinRequestRequest{RequestId: req.Id}))
		assertCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("approval adds the member to both collections", func(t *testing.T) {
		resp, err := env.groups.ApproveJoinRequest(ctx, as("alice", &pb.ApproveJoinRequestRequest{RequestId: req.Id}))
		if err != nil {
			t.Fatalf("ApproveJoinRequest failed: %v", err)
		}
		g := resp.Msg.Group
		if len(g.Members) != 2 || g.Members[1].Uid != "bob" || g.Members[1].Email != "bob@example.com" {
			t.Errorf("members: %+v", g.Members)
		}
		if len(g.MemberIds) != 2 || g.MemberIds[1] != "bob" {
			t.Errorf("memberIds: %v", g.MemberIds)
		}
		if resp.Msg.Request.Status != "approved" {
			t.Errorf("status: expected approved, got %s", resp.Msg.Request.Status)
		}
	})

	t.Run("second approval fails without duplicating", func(t *testing.T) {
		_, err := env.groups.ApproveJoinRequest(ctx, as("alice", &pb.ApproveJoinRequestRequest{RequestId: req.Id}))
		assertCode(t, err, connect.CodeFailedPrecondition)
		if msg := errorMessage(err); msg != "join request already approved" {
			t.Errorf("message: got %q", msg)
		}

		resp, err := env.groups.GetGroup(ctx, as("bob", &pb.GetGroupRequest{GroupId: group.Id}))
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if len(resp.Msg.Group.Members) != 2 {
			t.Errorf("expected 2 members, got %d", len(resp.Msg.Group.Members))
		}
	})

	t.Run("member cannot request again", func(t *testing.T) {
		_, err := env.groups.RequestToJoin(ctx, as("bob", &pb.RequestToJoinRequest{InviteCode: group.InviteCode}))
		assertCode(t, err, connect.CodeFailedPrecondition)
	})

	t.Run("pending list is empty", func(t *testing.T) {
		resp, err := env.groups.ListJoinRequests(ctx, as("alice", &pb.ListJoinRequestsRequest{GroupId: group.Id}))
		if err != nil {
			t.Fatalf("ListJoinRequests failed: %v", err)
		}
		if len(resp.Msg.Requests) != 0 {
			t.Errorf("expected no pending requests, got %d", len(resp.Msg.Requests))
		}
	})
}

func TestRequestToJoin_InvalidCode(t *testing.T) {
	env := setupTestServer(t)
	createGroup(t, env, "alice", "Trip")

	for _, code := range []string{"", "wrong-code"} {
		_, err := env.groups.RequestToJoin(context.Background(), as("bob", &pb.RequestToJoinRequest{InviteCode: code}))
		assertCode(t, err, connect.CodeFailedPrecondition)
	}
}

func TestRejectJoinRequest(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := createGroup(t, env, "alice", "Trip")
	req := requestToJoin(t, env, group, "bob")

	resp, err := env.groups.RejectJoinRequest(ctx, as("alice", &pb.RejectJoinRequestRequest{RequestId: req.Id}))
	if err != nil {
		t.Fatalf("RejectJoinRequest failed: %v", err)
	}
	if resp.Msg.Request.Status != "rejected" {
		t.Errorf("status: expected rejected, got %s", resp.Msg.Request.Status)
	}

	_, err = env.groups.ApproveJoinRequest(ctx, as("alice", &pb.ApproveJoinRequestRequest{RequestId: req.Id}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	_, err = env.groups.RejectJoinRequest(ctx, as("alice", &pb.RejectJoinRequestRequest{RequestId: req.Id}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	getResp, err := env.groups.GetGroup(ctx, as("alice", &pb.GetGroupRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if len(getResp.Msg.Group.Members) != 1 {
		t.Errorf("rejection changed the group: %+v", getResp.Msg.Group.Members)
	}

	// A rejected user may ask again.
	requestToJoin(t, env, group, "bob")
}

func TestRemoveMember(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := createGroup(t, env, "alice", "Trip")
	joinGroup(t, env, group, "bob")
	joinGroup(t, env, group, "carol")

	tests := []struct {
		name     string
		actor    string
		memberID string
		wantCode connect.Code
		wantMsg  string
	}{
		{"non-admin", "bob", "carol", connect.CodePermissionDenied, ""},
		{"admin removes self", "alice", "alice", connect.CodeFailedPrecondition, "Admin cannot remove themselves"},
		{"unknown member", "alice", "zed", connect.CodeNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.groups.RemoveMember(ctx, as(tt.actor, &pb.RemoveMemberRequest{GroupId: group.Id, MemberId: tt.memberID}))
			assertCode(t, err, tt.wantCode)
			if tt.wantMsg != "" && errorMessage(err) != tt.wantMsg {
				t.Errorf("message: expected %q, got %q", tt.wantMsg, errorMessage(err))
			}
		})
	}

	resp, err := env.groups.RemoveMember(ctx, as("alice", &pb.RemoveMemberRequest{GroupId: group.Id, MemberId: "bob"}))
	if err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}
	g := resp.Msg.Group
	if len(g.Members) != 2 || g.Members[0].Uid != "alice" || g.Members[1].Uid != "carol" {
		t.Errorf("members after removal: %+v", g.Members)
	}
	if len(g.MemberIds) != 2 || g.MemberIds[1] != "carol" {
		t.Errorf("memberIds after removal: %v", g.MemberIds)
	}

	_, err = env.groups.GetGroup(ctx, as("bob", &pb.GetGroupRequest{GroupId: group.Id}))
	assertCode(t, err, connect.CodePermissionDenied)
}

func TestLeaveGroup(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := createGroup(t, env, "alice", "Trip")
	joinGroup(t, env, group, "bob")

	_, err := env.groups.LeaveGroup(ctx, as("alice", &pb.LeaveGroupRequest{GroupId: group.Id}))
	assertCode(t, err, connect.CodeFailedPrecondition)
	if msg := errorMessage(err); msg != "Admin cannot leave the group" {
		t.Errorf("message: got %q", msg)
	}

	if _, err := env.groups.LeaveGroup(ctx, as("bob", &pb.LeaveGroupRequest{GroupId: group.Id})); err != nil {
		t.Fatalf("LeaveGroup failed: %v", err)
	}

	_, err = env.groups.LeaveGroup(ctx, as("bob", &pb.LeaveGroupRequest{GroupId: group.Id}))
	assertCode(t, err, connect.CodeNotFound)

	resp, err := env.groups.ListGroups(ctx, as("bob", &pb.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 0 {
		t.Errorf("bob still lists %d groups", len(resp.Msg.Groups))
	}

	var left bool
	for _, e := range env.recorder.Drain() {
		if e.Type == events.MemberLeft && e.SubjectID == "bob" {
			left = true
		}
	}
	if !left {
		t.Error("expected a member_left event for bob")
	}
}

func TestConcurrentApprovals(t *testing.T) {
	env := setupTestServer(t)
	group := createGroup(t, env, "alice", "Trip")

	// Each writer can lose to every other writer at most once, so two rivals
	// stay within the retry budget.
	uids := []string{"bob", "carol", "dave"}
	reqs := make([]*pb.JoinRequest, len(uids))
	for i, uid := range uids {
		reqs[i] = requestToJoin(t, env, group, uid)
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(reqs))
	for _, req := range reqs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := env.groups.ApproveJoinRequest(context.Background(), as("alice", &pb.ApproveJoinRequestRequest{RequestId: id}))
			errs <- err
		}(req.Id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("ApproveJoinRequest failed: %v", err)
		}
	}

	resp, err := env.groups.GetGroup(context.Background(), as("alice", &pb.GetGroupRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if len(resp.Msg.Group.Members) != len(uids)+1 {
		t.Errorf("expected %d members, got %+v", len(uids)+1, resp.Msg.Group.MemberIds)
	}
}

// conflictingStore fails the first n membership writes as if another writer
// had bumped the group version.
type conflictingStore struct {
	storage.Store
	n     int
	calls int
}

func (s *conflictingStore) SaveMembership(ctx context.Context, group *models.Group, expectedVersion int64, req *models.JoinRequest) error {
	s.calls++
	if s.calls <= s.n {
		return sqlite.ErrVersionConflict
	}
	return s.Store.SaveMembership(ctx, group, expectedVersion, req)
}

func TestMembershipRetry(t *testing.T) {
	tests := []struct {
		name      string
		conflicts int
		wantCode  connect.Code
		wantCalls int
	}{
		{"succeeds after transient conflicts", 2, 0, 3},
		{"surfaces conflict when retries run out", 3, connect.CodeAborted, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := newTestStore(t)
			ctx := middleware.WithActor(context.Background(), testActor("alice"))

			setup := NewGroupService(base, events.LogPublisher{}, 3)
			created, err := setup.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{Name: "Trip"}))
			if err != nil {
				t.Fatalf("CreateGroup failed: %v", err)
			}
			bobCtx := middleware.WithActor(context.Background(), testActor("bob"))
			joined, err := setup.RequestToJoin(bobCtx, connect.NewRequest(&pb.RequestToJoinRequest{InviteCode: created.Msg.Group.InviteCode}))
			if err != nil {
				t.Fatalf("RequestToJoin failed: %v", err)
			}

			store := &conflictingStore{Store: base, n: tt.conflicts}
			svc := NewGroupService(store, events.LogPublisher{}, 3)
			_, err = svc.ApproveJoinRequest(ctx, connect.NewRequest(&pb.ApproveJoinRequestRequest{RequestId: joined.Msg.Request.Id}))

			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("ApproveJoinRequest failed: %v", err)
				}
			} else {
				assertCode(t, err, tt.wantCode)
			}
			if store.calls != tt.wantCalls {
				t.Errorf("SaveMembership calls: expected %d, got %d", tt.wantCalls, store.calls)
			}
		})
	}
}

func TestGetGroupBalances(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := createGroup(t, env, "alice", "Trip")
	joinGroup(t, env, group, "bob")
	joinGroup(t, env, group, "carol")

	add := func(payer string, amount float64, participants ...string) {
		t.Helper()
		_, err := env.ledger.AddGroupExpense(ctx, as(payer, &pb.AddGroupExpenseRequest{
			GroupId:      group.Id,
			Amount:       amount,
			Participants: participants,
		}))
		if err != nil {
			t.Fatalf("AddGroupExpense failed: %v", err)
		}
	}
	add("alice", 30, "alice", "bob", "carol")
	add("bob", 12, "bob", "carol")

	resp, err := env.groups.GetGroupBalances(ctx, as("carol", &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}

	want := map[string]float64{"alice": 20, "bob": -4, "carol": -16}
	var sum float64
	for uid, w := range want {
		if got := resp.Msg.Balances[uid]; !approxEqual(got, w) {
			t.Errorf("balance[%s]: expected %.2f, got %.2f", uid, w, got)
		}
		sum += resp.Msg.Balances[uid]
	}
	if !approxEqual(sum, 0) {
		t.Errorf("balances should sum to zero, got %f", sum)
	}

	if len(resp.Msg.Debts) != 2 {
		t.Fatalf("expected 2 debts, got %+v", resp.Msg.Debts)
	}
	first := resp.Msg.Debts[0]
	if first.FromUid != "carol" || first.ToUid != "alice" || !approxEqual(first.Amount, 16) || first.FromName != "User carol" {
		t.Errorf("first debt: %+v", first)
	}

	_, err = env.groups.GetGroupBalances(ctx, as("mallory", &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	assertCode(t, err, connect.CodePermissionDenied)
}

func TestGetGroupBalances_FormerMember(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := createGroup(t, env, "alice", "Trip")
	joinGroup(t, env, group, "bob")

	_, err := env.ledger.AddGroupExpense(ctx, as("alice", &pb.AddGroupExpenseRequest{
		GroupId:      group.Id,
		Amount:       20,
		Participants: []string{"alice", "bob"},
	}))
	if err != nil {
		t.Fatalf("AddGroupExpense failed: %v", err)
	}
	if _, err := env.groups.LeaveGroup(ctx, as("bob", &pb.LeaveGroupRequest{GroupId: group.Id})); err != nil {
		t.Fatalf("LeaveGroup failed: %v", err)
	}

	resp, err := env.groups.GetGroupBalances(ctx, as("alice", &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}
	if !approxEqual(resp.Msg.Balances["bob"], -10) {
		t.Errorf("former member balance: expected -10, got %.2f", resp.Msg.Balances["bob"])
	}

	var former bool
	for _, m := range resp.Msg.Members {
		if m.Uid == "bob" {
			former = m.Former
		}
	}
	if !former {
		t.Error("bob should be flagged as a former member")
	}
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
