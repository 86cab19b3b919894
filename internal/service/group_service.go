package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/groupledger/internal/apperror"
	"github.com/mmynk/groupledger/internal/auth"
	"github.com/mmynk/groupledger/internal/calculator"
	"github.com/mmynk/groupledger/internal/events"
	"github.com/mmynk/groupledger/internal/membership"
	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/storage"
	pb "github.com/mmynk/groupledger/pkg/proto"
)

// DefaultMembershipRetries is used when NewGroupService gets a non-positive retry count.
const DefaultMembershipRetries = 3

// GroupService implements the Connect GroupService
type GroupService struct {
	store     storage.Store
	publisher events.Publisher
	retries   int
}

// NewGroupService creates a new GroupService with the given storage backend.
// retries bounds how often a membership write is re-applied after a
// concurrent modification of the same group.
func NewGroupService(store storage.Store, publisher events.Publisher, retries int) *GroupService {
	if retries < 1 {
		retries = DefaultMembershipRetries
	}
	return &GroupService{store: store, publisher: publisher, retries: retries}
}

// transition computes the next group state from a fresh snapshot. The
// returned request, when not nil, is saved together with the group.
type transition func(ctx context.Context, group models.Group) (models.Group, *models.JoinRequest, error)

// mutate runs a read-modify-write of a group's membership. A concurrent
// write makes SaveMembership fail with Conflict; the transition is then
// re-applied to a fresh snapshot, up to s.retries times.
func (s *GroupService) mutate(ctx context.Context, groupID string, apply transition) (*models.Group, error) {
	var err error
	for attempt := 1; attempt <= s.retries; attempt++ {
		var group *models.Group
		group, err = s.store.GetGroup(ctx, groupID)
		if err != nil {
			return nil, err
		}

		next, req, applyErr := apply(ctx, *group)
		if applyErr != nil {
			return nil, applyErr
		}
		if invErr := membership.CheckInvariants(next); invErr != nil {
			return nil, invErr
		}

		err = s.store.SaveMembership(ctx, &next, group.Version, req)
		if err == nil {
			return &next, nil
		}
		if !apperror.IsKind(err, apperror.Conflict) {
			return nil, err
		}
		slog.Warn("Membership write conflicted, retrying",
			"group_id", groupID,
			"attempt", attempt,
			"version", group.Version,
		)
	}
	return nil, err
}

func (s *GroupService) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		slog.Error("Failed to publish event", "type", e.Type, "group_id", e.GroupID, "error", err)
	}
}

// memberGroup loads a group the actor belongs to.
func (s *GroupService) memberGroup(ctx context.Context, actor auth.Actor, groupID string) (*models.Group, error) {
	if groupID == "" {
		return nil, apperror.Validationf("group_id required")
	}
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(actor.UID) {
		return nil, permissionDenied("not a member of this group")
	}
	return group, nil
}

// adminGroup loads a group the actor administers.
func (s *GroupService) adminGroup(ctx context.Context, actor auth.Actor, groupID string) (*models.Group, error) {
	if groupID == "" {
		return nil, apperror.Validationf("group_id required")
	}
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.IsAdmin(actor.UID) {
		return nil, permissionDenied("only the group admin can do this")
	}
	return group, nil
}

// CreateGroup creates a new group with the actor as admin and only member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateGroup request received", "name", req.Msg.Name, "user_id", actor.UID)

	code, err := membership.NewInviteCode()
	if err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	group, err := membership.NewGroup(req.Msg.Name, actor.Member(), code)
	if err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateGroup(ctx, &group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group created", "group_id", group.ID)
	s.publish(ctx, events.New(events.GroupCreated, group.ID, actor.UID, "", group.Version))

	return connect.NewResponse(&pb.CreateGroupResponse{Group: toProtoGroup(&group)}), nil
}

// GetGroup retrieves a group the actor belongs to.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	group, err := s.memberGroup(ctx, actor, req.Msg.GroupId)
	if err != nil {
		slog.Warn("GetGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.GetGroupResponse{Group: toProtoGroup(group)}), nil
}

// ListGroups returns the groups the actor is a member of.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.store.ListGroupsForMember(ctx, actor.UID)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = toProtoGroup(g)
	}

	slog.Info("ListGroups successful", "count", len(out))
	return connect.NewResponse(&pb.ListGroupsResponse{Groups: out}), nil
}

// GetGroupByInviteCode shows a preview of the group an invite code opens.
func (s *GroupService) GetGroupByInviteCode(ctx context.Context, req *connect.Request[pb.GetGroupByInviteCodeRequest]) (*connect.Response[pb.GetGroupByInviteCodeResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	group, err := s.groupByInviteCode(ctx, req.Msg.InviteCode)
	if err != nil {
		return nil, toConnectError(err)
	}

	preview := &pb.GroupPreview{
		Id:          group.ID,
		Name:        group.Name,
		MemberCount: int32(len(group.Members)),
	}
	if admin, ok := group.Member(group.AdminID); ok {
		preview.AdminName = admin.Name
	}

	return connect.NewResponse(&pb.GetGroupByInviteCodeResponse{
		Group:    preview,
		IsMember: group.HasMember(actor.UID),
	}), nil
}

func (s *GroupService) groupByInviteCode(ctx context.Context, code string) (*models.Group, error) {
	if code == "" {
		return nil, membership.ErrInvalidInviteCode
	}
	group, err := s.store.GetGroupByInviteCode(ctx, code)
	if apperror.IsKind(err, apperror.NotFound) {
		return nil, membership.ErrInvalidInviteCode
	}
	if err != nil {
		return nil, err
	}
	if err := membership.ValidateInviteCode(*group, code); err != nil {
		return nil, err
	}
	return group, nil
}

// RequestToJoin files a pending join request for the group an invite code opens.
func (s *GroupService) RequestToJoin(ctx context.Context, req *connect.Request[pb.RequestToJoinRequest]) (*connect.Response[pb.RequestToJoinResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RequestToJoin request received", "user_id", actor.UID)

	group, err := s.groupByInviteCode(ctx, req.Msg.InviteCode)
	if err != nil {
		slog.Warn("RequestToJoin failed", "error", err)
		return nil, toConnectError(err)
	}

	joinReq, err := membership.NewJoinRequest(*group, actor.Member())
	if err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateJoinRequest(ctx, &joinReq); err != nil {
		slog.Warn("RequestToJoin failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Join request created", "group_id", group.ID, "request_id", joinReq.ID)
	s.publish(ctx, events.New(events.JoinRequested, group.ID, actor.UID, joinReq.ID, group.Version))

	return connect.NewResponse(&pb.RequestToJoinResponse{Request: toProtoJoinRequest(&joinReq)}), nil
}

// ListJoinRequests returns the pending requests of a group to its admin.
func (s *GroupService) ListJoinRequests(ctx context.Context, req *connect.Request[pb.ListJoinRequestsRequest]) (*connect.Response[pb.ListJoinRequestsResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.adminGroup(ctx, actor, req.Msg.GroupId); err != nil {
		return nil, toConnectError(err)
	}

	reqs, err := s.store.ListPendingJoinRequests(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("ListJoinRequests failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.JoinRequest, len(reqs))
	for i, r := range reqs {
		out[i] = toProtoJoinRequest(r)
	}
	return connect.NewResponse(&pb.ListJoinRequestsResponse{Requests: out}), nil
}

// ApproveJoinRequest adds the requesting user to the group.
func (s *GroupService) ApproveJoinRequest(ctx context.Context, req *connect.Request[pb.ApproveJoinRequestRequest]) (*connect.Response[pb.ApproveJoinRequestResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ApproveJoinRequest request received", "request_id", req.Msg.RequestId, "user_id", actor.UID)

	joinReq, err := s.store.GetJoinRequest(ctx, req.Msg.RequestId)
	if err != nil {
		return nil, toConnectError(err)
	}
	if _, err := s.adminGroup(ctx, actor, joinReq.GroupID); err != nil {
		return nil, toConnectError(err)
	}

	var approved models.JoinRequest
	group, err := s.mutate(ctx, joinReq.GroupID, func(ctx context.Context, g models.Group) (models.Group, *models.JoinRequest, error) {
		// Re-read so a concurrent approve or reject is seen.
		current, err := s.store.GetJoinRequest(ctx, joinReq.ID)
		if err != nil {
			return g, nil, err
		}
		next, r, err := membership.Approve(g, *current)
		if err != nil {
			return g, nil, err
		}
		approved = r
		return next, &approved, nil
	})
	if err != nil {
		slog.Warn("ApproveJoinRequest failed", "request_id", joinReq.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Join request approved", "group_id", group.ID, "member_id", approved.UserID)
	s.publish(ctx, events.New(events.JoinApproved, group.ID, actor.UID, approved.UserID, group.Version))

	return connect.NewResponse(&pb.ApproveJoinRequestResponse{
		Group:   toProtoGroup(group),
		Request: toProtoJoinRequest(&approved),
	}), nil
}

// RejectJoinRequest declines a pending request. The group is untouched.
func (s *GroupService) RejectJoinRequest(ctx context.Context, req *connect.Request[pb.RejectJoinRequestRequest]) (*connect.Response[pb.RejectJoinRequestResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	joinReq, err := s.store.GetJoinRequest(ctx, req.Msg.RequestId)
	if err != nil {
		return nil, toConnectError(err)
	}
	group, err := s.adminGroup(ctx, actor, joinReq.GroupID)
	if err != nil {
		return nil, toConnectError(err)
	}

	rejected, err := membership.Reject(*joinReq)
	if err != nil {
		return nil, toConnectError(err)
	}

	err = s.store.UpdateJoinRequestStatus(ctx, rejected.ID, models.JoinRequestPending, rejected.Status)
	if apperror.IsKind(err, apperror.Conflict) {
		// Someone else decided first; report what they decided.
		if current, getErr := s.store.GetJoinRequest(ctx, rejected.ID); getErr == nil {
			if _, rejErr := membership.Reject(*current); rejErr != nil {
				err = rejErr
			}
		}
	}
	if err != nil {
		slog.Warn("RejectJoinRequest failed", "request_id", rejected.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Join request rejected", "group_id", group.ID, "request_id", rejected.ID)
	s.publish(ctx, events.New(events.JoinRejected, group.ID, actor.UID, rejected.UserID, group.Version))

	return connect.NewResponse(&pb.RejectJoinRequestResponse{Request: toProtoJoinRequest(&rejected)}), nil
}

// RemoveMember lets the admin drop a member from the group.
func (s *GroupService) RemoveMember(ctx context.Context, req *connect.Request[pb.RemoveMemberRequest]) (*connect.Response[pb.RemoveMemberResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RemoveMember request received", "group_id", req.Msg.GroupId, "member_id", req.Msg.MemberId)

	if _, err := s.adminGroup(ctx, actor, req.Msg.GroupId); err != nil {
		return nil, toConnectError(err)
	}

	group, err := s.mutate(ctx, req.Msg.GroupId, func(_ context.Context, g models.Group) (models.Group, *models.JoinRequest, error) {
		next, err := membership.RemoveMember(g, req.Msg.MemberId)
		return next, nil, err
	})
	if err != nil {
		slog.Warn("RemoveMember failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	s.publish(ctx, events.New(events.MemberRemoved, group.ID, actor.UID, req.Msg.MemberId, group.Version))
	return connect.NewResponse(&pb.RemoveMemberResponse{Group: toProtoGroup(group)}), nil
}

// LeaveGroup removes the actor from a group.
func (s *GroupService) LeaveGroup(ctx context.Context, req *connect.Request[pb.LeaveGroupRequest]) (*connect.Response[pb.LeaveGroupResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.GroupId == "" {
		return nil, toConnectError(apperror.Validationf("group_id required"))
	}

	group, err := s.mutate(ctx, req.Msg.GroupId, func(_ context.Context, g models.Group) (models.Group, *models.JoinRequest, error) {
		next, err := membership.Leave(g, actor.UID)
		return next, nil, err
	})
	if err != nil {
		slog.Warn("LeaveGroup failed", "group_id", req.Msg.GroupId, "user_id", actor.UID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Member left group", "group_id", group.ID, "user_id", actor.UID)
	s.publish(ctx, events.New(events.MemberLeft, group.ID, actor.UID, actor.UID, group.Version))
	return connect.NewResponse(&pb.LeaveGroupResponse{}), nil
}

// GetGroupBalances calculates balances across all entries in a group.
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[pb.GetGroupBalancesRequest]) (*connect.Response[pb.GetGroupBalancesResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	groupID := req.Msg.GroupId
	slog.Info("GetGroupBalances request received", "group_id", groupID)

	group, err := s.memberGroup(ctx, actor, groupID)
	if err != nil {
		return nil, toConnectError(err)
	}

	stored, err := s.store.ListGroupExpenses(ctx, groupID)
	if err != nil {
		slog.Error("GetGroupBalances failed - could not list expenses", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}
	expenses := derefGroupExpenses(stored)

	balances := calculator.CalculateBalances(expenses, group.MemberIDs)
	names := memberNames(group, expenses)

	members := make([]*pb.MemberBalance, 0, len(balances))
	for _, mb := range calculator.CalculateMemberBalances(expenses, group.MemberIDs) {
		members = append(members, &pb.MemberBalance{
			Uid:        mb.UID,
			Name:       names[mb.UID],
			NetBalance: mb.NetBalance,
			TotalPaid:  mb.TotalPaid,
			TotalOwed:  mb.TotalOwed,
			Former:     !group.HasMember(mb.UID),
		})
	}

	edges := calculator.SimplifyDebts(balances)
	debts := make([]*pb.Debt, len(edges))
	for i, e := range edges {
		debts[i] = &pb.Debt{
			FromUid:  e.From,
			FromName: names[e.From],
			ToUid:    e.To,
			ToName:   names[e.To],
			Amount:   e.Amount,
		}
	}

	slog.Info("GetGroupBalances successful", "group_id", groupID, "expenses", len(expenses), "debts", len(debts))

	return connect.NewResponse(&pb.GetGroupBalancesResponse{
		Balances: balances,
		Members:  members,
		Debts:    debts,
	}), nil
}

// memberNames resolves display names for current members and, through the
// payer copies on entries, for former members. Unknown uids map to themselves.
func memberNames(group *models.Group, expenses []models.GroupExpense) map[string]string {
	names := make(map[string]string)
	for _, e := range expenses {
		if e.PaidByName != "" {
			names[e.PaidBy] = e.PaidByName
		}
		for _, uid := range e.Participants {
			if _, ok := names[uid]; !ok {
				names[uid] = uid
			}
		}
	}
	for _, m := range group.Members {
		names[m.UID] = m.Name
	}
	return names
}
