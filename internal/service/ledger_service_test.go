package service

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/models"
	pb "github.com/mmynk/groupledger/pkg/proto"
)

func TestAddGroupExpense(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := createGroup(t, env, "alice", "Trip")
	joinGroup(t, env, group, "bob")

	resp, err := env.ledger.AddGroupExpense(ctx, as("alice", &pb.AddGroupExpenseRequest{
		GroupId:      group.Id,
		Amount:       30,
		Participants: []string{"alice", "bob", "bob"},
		Note:         "  Dinner ",
	}))
	require.NoError(t, err)

	e := resp.Msg.Expense
	assert.NotEmpty(t, e.Id)
	assert.Equal(t, "alice", e.PaidBy)
	assert.Equal(t, "User alice", e.PaidByName)
	assert.Equal(t, "alice@example.com", e.PaidByEmail)
	assert.Equal(t, []string{"alice", "bob"}, e.Participants)
	assert.InDelta(t, 15, e.SplitAmount, 1e-9)
	assert.Equal(t, "debit", e.TransactionType)
	assert.Equal(t, "Dinner", e.Note)

	personal, err := env.ledger.ListPersonalExpenses(ctx, as("alice", &pb.ListPersonalExpensesRequest{}))
	require.NoError(t, err)
	require.Len(t, personal.Msg.Expenses, 1)
	mirror := personal.Msg.Expenses[0]
	assert.Equal(t, "Group Expense", mirror.Label)
	assert.Equal(t, e.Id, mirror.GroupExpenseId)
	assert.Equal(t, group.Id, mirror.GroupId)
	assert.InDelta(t, 30, mirror.Amount, 1e-9)

	bobPersonal, err := env.ledger.ListPersonalExpenses(ctx, as("bob", &pb.ListPersonalExpensesRequest{}))
	require.NoError(t, err)
	assert.Empty(t, bobPersonal.Msg.Expenses)
}

func TestAddGroupExpense_Validation(t *testing.T) {
	env := setupTestServer(t)
	group := createGroup(t, env, "alice", "Trip")

	tests := []struct {
		name    string
		req     *pb.AddGroupExpenseRequest
		code    connect.Code
		message string
	}{
		{
			name:    "zero amount",
			req:     &pb.AddGroupExpenseRequest{GroupId: group.Id, Amount: 0, Participants: []string{"alice"}},
			code:    connect.CodeInvalidArgument,
			message: "Invalid group expense data",
		},
		{
			name:    "negative amount",
			req:     &pb.AddGroupExpenseRequest{GroupId: group.Id, Amount: -5, Participants: []string{"alice"}},
			code:    connect.CodeInvalidArgument,
			message: "Invalid group expense data",
		},
		{
			name:    "no participants",
			req:     &pb.AddGroupExpenseRequest{GroupId: group.Id, Amount: 10},
			code:    connect.CodeInvalidArgument,
			message: "Invalid group expense data",
		},
		{
			name:    "missing group",
			req:     &pb.AddGroupExpenseRequest{Amount: 10, Participants: []string{"alice"}},
			code:    connect.CodeInvalidArgument,
			message: "Invalid group expense data",
		},
		{
			name: "unknown type",
			req:  &pb.AddGroupExpenseRequest{GroupId: group.Id, Amount: 10, Participants: []string{"alice"}, TransactionType: "refund"},
			code: connect.CodeInvalidArgument,
		},
		{
			name: "group does not exist",
			req:  &pb.AddGroupExpenseRequest{GroupId: "nope", Amount: 10, Participants: []string{"alice"}},
			code: connect.CodeNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.ledger.AddGroupExpense(context.Background(), as("alice", tt.req))
			require.Error(t, err)
			assert.Equal(t, tt.code, connect.CodeOf(err))
			if tt.message != "" {
				assert.Equal(t, tt.message, errorMessage(err))
			}
		})
	}
}

func TestAddGroupExpense_NonMember(t *testing.T) {
	env := setupTestServer(t)
	group := createGroup(t, env, "alice", "Trip")

	_, err := env.ledger.AddGroupExpense(context.Background(), as("mallory", &pb.AddGroupExpenseRequest{
		GroupId:      group.Id,
		Amount:       10,
		Participants: []string{"alice"},
	}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
}

func TestAddGroupExpense_NonDebitDoesNotSplit(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := createGroup(t, env, "alice", "Trip")
	joinGroup(t, env, group, "bob")

	resp, err := env.ledger.AddGroupExpense(ctx, as("alice", &pb.AddGroupExpenseRequest{
		GroupId:         group.Id,
		Amount:          50,
		Participants:    []string{"alice", "bob"},
		TransactionType: "lend",
	}))
	require.NoError(t, err)
	assert.Equal(t, "lend", resp.Msg.Expense.TransactionType)
	assert.Zero(t, resp.Msg.Expense.SplitAmount)

	balances, err := env.groups.GetGroupBalances(ctx, as("bob", &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	require.NoError(t, err)
	assert.InDelta(t, 50, balances.Msg.Balances["alice"], 1e-9)
	assert.InDelta(t, 0, balances.Msg.Balances["bob"], 1e-9)
}

func TestDeleteGroupExpense(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := createGroup(t, env, "alice", "Trip")
	joinGroup(t, env, group, "bob")

	added, err := env.ledger.AddGroupExpense(ctx, as("alice", &pb.AddGroupExpenseRequest{
		GroupId:      group.Id,
		Amount:       40,
		Participants: []string{"alice", "bob"},
	}))
	require.NoError(t, err)
	id := added.Msg.Expense.Id

	_, err = env.ledger.DeleteGroupExpense(ctx, as("bob", &pb.DeleteGroupExpenseRequest{ExpenseId: id}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = env.ledger.DeleteGroupExpense(ctx, as("alice", &pb.DeleteGroupExpenseRequest{ExpenseId: id}))
	require.NoError(t, err)

	list, err := env.ledger.ListGroupExpenses(ctx, as("bob", &pb.ListGroupExpensesRequest{GroupId: group.Id}))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Expenses)

	personal, err := env.ledger.ListPersonalExpenses(ctx, as("alice", &pb.ListPersonalExpensesRequest{}))
	require.NoError(t, err)
	assert.Empty(t, personal.Msg.Expenses, "payer mirror should be removed with the entry")

	_, err = env.ledger.DeleteGroupExpense(ctx, as("alice", &pb.DeleteGroupExpenseRequest{ExpenseId: id}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestListGroupExpenses_NonMember(t *testing.T) {
	env := setupTestServer(t)
	group := createGroup(t, env, "alice", "Trip")

	_, err := env.ledger.ListGroupExpenses(context.Background(), as("mallory", &pb.ListGroupExpensesRequest{GroupId: group.Id}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
}

func TestPersonalExpenses(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	add := func(amount float64, txType, label string) *pb.PersonalExpense {
		t.Helper()
		resp, err := env.ledger.AddPersonalExpense(ctx, as("alice", &pb.AddPersonalExpenseRequest{
			Amount:          amount,
			TransactionType: txType,
			Label:           label,
		}))
		require.NoError(t, err)
		return resp.Msg.Expense
	}

	groceries := add(50, "", "Groceries")
	add(200, "credit", "Salary")
	add(30, "lend", "")
	assert.Equal(t, "debit", groceries.TransactionType)

	summary, err := env.ledger.GetSummary(ctx, as("alice", &pb.GetSummaryRequest{}))
	require.NoError(t, err)
	assert.InDelta(t, 50, summary.Msg.Summary.Debit, 1e-9)
	assert.InDelta(t, 200, summary.Msg.Summary.Credit, 1e-9)
	assert.InDelta(t, 30, summary.Msg.Summary.Lend, 1e-9)
	assert.InDelta(t, 120, summary.Msg.Summary.BankBalance, 1e-9)
	assert.Len(t, summary.Msg.Transactions, 3)

	t.Run("type filter", func(t *testing.T) {
		resp, err := env.ledger.GetSummary(ctx, as("alice", &pb.GetSummaryRequest{
			Filter: &pb.TransactionFilter{Types: []string{"credit"}},
		}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Transactions, 1)
		assert.Equal(t, "+", resp.Msg.Transactions[0].Sign)
		assert.InDelta(t, 200, resp.Msg.Summary.BankBalance, 1e-9)
	})

	t.Run("bad filter", func(t *testing.T) {
		_, err := env.ledger.GetSummary(ctx, as("alice", &pb.GetSummaryRequest{
			Filter: &pb.TransactionFilter{Window: "decade"},
		}))
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	})

	t.Run("invalid amount", func(t *testing.T) {
		_, err := env.ledger.AddPersonalExpense(ctx, as("alice", &pb.AddPersonalExpenseRequest{Amount: 0}))
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	})

	t.Run("only the owner deletes", func(t *testing.T) {
		_, err := env.ledger.DeletePersonalExpense(ctx, as("bob", &pb.DeletePersonalExpenseRequest{ExpenseId: groceries.Id}))
		assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

		_, err = env.ledger.DeletePersonalExpense(ctx, as("alice", &pb.DeletePersonalExpenseRequest{ExpenseId: groceries.Id}))
		require.NoError(t, err)

		list, err := env.ledger.ListPersonalExpenses(ctx, as("alice", &pb.ListPersonalExpensesRequest{}))
		require.NoError(t, err)
		assert.Len(t, list.Msg.Expenses, 2)
	})
}

func TestGetSummary_CountsGroupPaymentsOnce(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := createGroup(t, env, "alice", "Trip")
	joinGroup(t, env, group, "bob")

	_, err := env.ledger.AddGroupExpense(ctx, as("alice", &pb.AddGroupExpenseRequest{
		GroupId:      group.Id,
		Amount:       30,
		Participants: []string{"alice", "bob"},
	}))
	require.NoError(t, err)
	_, err = env.ledger.AddPersonalExpense(ctx, as("alice", &pb.AddPersonalExpenseRequest{Amount: 100, TransactionType: "credit"}))
	require.NoError(t, err)

	resp, err := env.ledger.GetSummary(ctx, as("alice", &pb.GetSummaryRequest{}))
	require.NoError(t, err)
	assert.InDelta(t, 30, resp.Msg.Summary.Debit, 1e-9)
	assert.InDelta(t, 70, resp.Msg.Summary.BankBalance, 1e-9)
	require.Len(t, resp.Msg.Transactions, 2)

	groupOnly, err := env.ledger.GetSummary(ctx, as("alice", &pb.GetSummaryRequest{
		Filter: &pb.TransactionFilter{Source: "group"},
	}))
	require.NoError(t, err)
	require.Len(t, groupOnly.Msg.Transactions, 1)
	assert.Equal(t, group.Id, groupOnly.Msg.Transactions[0].GroupId)

	// bob paid nothing; the group entry is not his money.
	bob, err := env.ledger.GetSummary(ctx, as("bob", &pb.GetSummaryRequest{}))
	require.NoError(t, err)
	assert.Zero(t, bob.Msg.Summary.Debit)
}

func TestGetTimeSeries(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	at := func(year int, month time.Month, day int) int64 {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).Unix()
	}
	seed := []models.PersonalExpense{
		{UserID: "alice", Amount: 100, TransactionType: models.Credit, CreatedAt: at(2024, time.January, 1)},
		{UserID: "alice", Amount: 30, TransactionType: models.Debit, CreatedAt: at(2024, time.January, 2)},
		{UserID: "alice", Amount: 20, TransactionType: models.Lend, CreatedAt: at(2024, time.February, 1)},
	}
	for i := range seed {
		require.NoError(t, env.store.CreatePersonalExpense(ctx, &seed[i]))
	}

	t.Run("month buckets", func(t *testing.T) {
		resp, err := env.ledger.GetTimeSeries(ctx, as("alice", &pb.GetTimeSeriesRequest{Bucket: "month"}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Points, 2)

		jan, feb := resp.Msg.Points[0], resp.Msg.Points[1]
		assert.Equal(t, "2024-01", jan.Key)
		assert.InDelta(t, 100, jan.Credit, 1e-9)
		assert.InDelta(t, 30, jan.Debit, 1e-9)
		assert.InDelta(t, 70, jan.Balance, 1e-9)
		assert.Equal(t, "2024-02", feb.Key)
		assert.InDelta(t, 20, feb.Lend, 1e-9)
		assert.InDelta(t, 50, feb.Balance, 1e-9)
	})

	t.Run("day buckets skip empty days", func(t *testing.T) {
		resp, err := env.ledger.GetTimeSeries(ctx, as("alice", &pb.GetTimeSeriesRequest{}))
		require.NoError(t, err)
		keys := make([]string, len(resp.Msg.Points))
		for i, p := range resp.Msg.Points {
			keys[i] = p.Key
		}
		assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-02-01"}, keys)
	})

	t.Run("unknown bucket", func(t *testing.T) {
		_, err := env.ledger.GetTimeSeries(ctx, as("alice", &pb.GetTimeSeriesRequest{Bucket: "week"}))
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	})
}
