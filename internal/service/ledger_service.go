package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/groupledger/internal/aggregate"
	"github.com/mmynk/groupledger/internal/apperror"
	"github.com/mmynk/groupledger/internal/auth"
	"github.com/mmynk/groupledger/internal/events"
	"github.com/mmynk/groupledger/internal/ledger"
	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/storage"
	pb "github.com/mmynk/groupledger/pkg/proto"
)

// LedgerService implements the Connect LedgerService: group and personal
// entries plus the dashboard aggregates built from them.
type LedgerService struct {
	store     storage.Store
	publisher events.Publisher
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store, publisher events.Publisher) *LedgerService {
	return &LedgerService{store: store, publisher: publisher}
}

// AddGroupExpense records an entry paid by the actor and mirrors it into the
// actor's personal ledger.
func (s *LedgerService) AddGroupExpense(ctx context.Context, req *connect.Request[pb.AddGroupExpenseRequest]) (*connect.Response[pb.AddGroupExpenseResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddGroupExpense request received",
		"group_id", req.Msg.GroupId,
		"amount", req.Msg.Amount,
		"participants_count", len(req.Msg.Participants),
	)

	expense, err := ledger.NormalizeGroupExpense(ledger.GroupExpenseInput{
		GroupID:         req.Msg.GroupId,
		Amount:          req.Msg.Amount,
		PaidBy:          actor.UID,
		PaidByName:      actor.DisplayName,
		PaidByEmail:     actor.Email,
		Participants:    req.Msg.Participants,
		Note:            req.Msg.Note,
		TransactionType: req.Msg.TransactionType,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	group, err := s.store.GetGroup(ctx, expense.GroupID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if !group.HasMember(actor.UID) {
		return nil, toConnectError(permissionDenied("not a member of this group"))
	}

	mirror := ledger.PayerMirror(expense)
	if err := s.store.CreateGroupExpense(ctx, &expense, &mirror); err != nil {
		slog.Error("AddGroupExpense failed", "group_id", expense.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group expense added", "expense_id", expense.ID, "group_id", expense.GroupID)
	s.publish(ctx, events.New(events.GroupExpenseAdded, expense.GroupID, actor.UID, expense.ID, 0))

	return connect.NewResponse(&pb.AddGroupExpenseResponse{Expense: toProtoGroupExpense(&expense)}), nil
}

// ListGroupExpenses returns a group's entries, newest first.
func (s *LedgerService) ListGroupExpenses(ctx context.Context, req *connect.Request[pb.ListGroupExpensesRequest]) (*connect.Response[pb.ListGroupExpensesResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.GroupId == "" {
		return nil, toConnectError(apperror.Validationf("group_id required"))
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, toConnectError(err)
	}
	if !group.HasMember(actor.UID) {
		return nil, toConnectError(permissionDenied("not a member of this group"))
	}

	expenses, err := s.store.ListGroupExpenses(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("ListGroupExpenses failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.GroupExpense, len(expenses))
	for i, e := range expenses {
		out[i] = toProtoGroupExpense(e)
	}
	return connect.NewResponse(&pb.ListGroupExpensesResponse{Expenses: out}), nil
}

// DeleteGroupExpense removes an entry. Only the payer may delete it.
func (s *LedgerService) DeleteGroupExpense(ctx context.Context, req *connect.Request[pb.DeleteGroupExpenseRequest]) (*connect.Response[pb.DeleteGroupExpenseResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	expense, err := s.store.GetGroupExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		return nil, toConnectError(err)
	}
	if expense.PaidBy != actor.UID {
		return nil, toConnectError(permissionDenied("only the payer can delete this expense"))
	}

	if err := s.store.DeleteGroupExpense(ctx, expense.ID); err != nil {
		slog.Error("DeleteGroupExpense failed", "expense_id", expense.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group expense deleted", "expense_id", expense.ID, "group_id", expense.GroupID)
	s.publish(ctx, events.New(events.GroupExpenseDeleted, expense.GroupID, actor.UID, expense.ID, 0))

	return connect.NewResponse(&pb.DeleteGroupExpenseResponse{}), nil
}

// AddPersonalExpense records an entry in the actor's own ledger.
func (s *LedgerService) AddPersonalExpense(ctx context.Context, req *connect.Request[pb.AddPersonalExpenseRequest]) (*connect.Response[pb.AddPersonalExpenseResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	expense, err := ledger.NormalizePersonalExpense(ledger.PersonalExpenseInput{
		UserID:          actor.UID,
		Amount:          req.Msg.Amount,
		Label:           req.Msg.Label,
		Note:            req.Msg.Note,
		TransactionType: req.Msg.TransactionType,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreatePersonalExpense(ctx, &expense); err != nil {
		slog.Error("AddPersonalExpense failed", "user_id", actor.UID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.AddPersonalExpenseResponse{Expense: toProtoPersonalExpense(&expense)}), nil
}

// ListPersonalExpenses returns the actor's own entries, newest first.
func (s *LedgerService) ListPersonalExpenses(ctx context.Context, req *connect.Request[pb.ListPersonalExpensesRequest]) (*connect.Response[pb.ListPersonalExpensesResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListPersonalExpenses(ctx, actor.UID)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.PersonalExpense, len(expenses))
	for i, e := range expenses {
		out[i] = toProtoPersonalExpense(e)
	}
	return connect.NewResponse(&pb.ListPersonalExpensesResponse{Expenses: out}), nil
}

// DeletePersonalExpense removes one of the actor's own entries.
func (s *LedgerService) DeletePersonalExpense(ctx context.Context, req *connect.Request[pb.DeletePersonalExpenseRequest]) (*connect.Response[pb.DeletePersonalExpenseResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	expense, err := s.store.GetPersonalExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		return nil, toConnectError(err)
	}
	if expense.UserID != actor.UID {
		// Same answer as a missing entry, so ids of other users' entries do not leak.
		return nil, toConnectError(apperror.NotFoundf("expense not found"))
	}

	if err := s.store.DeletePersonalExpense(ctx, expense.ID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.DeletePersonalExpenseResponse{}), nil
}

// GetSummary totals the actor's transactions per type.
func (s *LedgerService) GetSummary(ctx context.Context, req *connect.Request[pb.GetSummaryRequest]) (*connect.Response[pb.GetSummaryResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	filter, err := parseFilter(req.Msg.Filter)
	if err != nil {
		return nil, toConnectError(err)
	}

	txs, err := s.transactions(ctx, actor)
	if err != nil {
		slog.Error("GetSummary failed", "user_id", actor.UID, "error", err)
		return nil, toConnectError(err)
	}
	txs = filter.Apply(txs)

	out := make([]*pb.Transaction, len(txs))
	for i, t := range txs {
		out[i] = toProtoTransaction(t)
	}

	return connect.NewResponse(&pb.GetSummaryResponse{
		Summary:      toProtoSummary(aggregate.Summarize(txs)),
		Transactions: out,
	}), nil
}

// GetTimeSeries buckets the actor's transactions by day or month.
func (s *LedgerService) GetTimeSeries(ctx context.Context, req *connect.Request[pb.GetTimeSeriesRequest]) (*connect.Response[pb.GetTimeSeriesResponse], error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	bucket, err := aggregate.ParseBucket(req.Msg.Bucket)
	if err != nil {
		return nil, toConnectError(apperror.Validationf("%v", err))
	}
	filter, err := parseFilter(req.Msg.Filter)
	if err != nil {
		return nil, toConnectError(err)
	}

	txs, err := s.transactions(ctx, actor)
	if err != nil {
		slog.Error("GetTimeSeries failed", "user_id", actor.UID, "error", err)
		return nil, toConnectError(err)
	}

	points := aggregate.TimeSeries(filter.Apply(txs), bucket)
	return connect.NewResponse(&pb.GetTimeSeriesResponse{Points: toProtoPoints(points)}), nil
}

// transactions merges the actor's personal entries with the group entries
// they paid in groups they still belong to. The two reads run concurrently.
func (s *LedgerService) transactions(ctx context.Context, actor auth.Actor) ([]aggregate.Transaction, error) {
	var (
		personal []*models.PersonalExpense
		group    []*models.GroupExpense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		personal, err = s.store.ListPersonalExpenses(gctx, actor.UID)
		return err
	})
	g.Go(func() error {
		groups, err := s.store.ListGroupsForMember(gctx, actor.UID)
		if err != nil {
			return err
		}
		ids := make([]string, len(groups))
		for i, grp := range groups {
			ids[i] = grp.ID
		}
		group, err = s.store.ListGroupExpensesPaidBy(gctx, actor.UID, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return aggregate.Merge(derefPersonalExpenses(personal), derefGroupExpenses(group)), nil
}

func parseFilter(f *pb.TransactionFilter) (aggregate.Filter, error) {
	var out aggregate.Filter
	if f == nil {
		return out, nil
	}

	switch aggregate.Window(f.Window) {
	case "", aggregate.WindowAll:
		out.Window = aggregate.WindowAll
	case aggregate.WindowMonth, aggregate.WindowYear:
		out.Window = aggregate.Window(f.Window)
	default:
		return out, apperror.Validationf("unknown window %q", f.Window)
	}

	switch aggregate.Source(f.Source) {
	case "", aggregate.SourcePersonal, aggregate.SourceGroup:
		out.Source = aggregate.Source(f.Source)
	default:
		return out, apperror.Validationf("unknown source %q", f.Source)
	}

	for _, raw := range f.Types {
		t, err := models.ParseTransactionType(raw)
		if err != nil {
			return out, apperror.Validationf("%v", err)
		}
		out.Types = append(out.Types, t)
	}
	return out, nil
}

func (s *LedgerService) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		slog.Error("Failed to publish event", "type", e.Type, "group_id", e.GroupID, "error", err)
	}
}
