package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/groupledger/internal/auth"
	"github.com/mmynk/groupledger/internal/events"
	"github.com/mmynk/groupledger/internal/storage/sqlite"
	pb "github.com/mmynk/groupledger/pkg/proto"
	"github.com/mmynk/groupledger/pkg/proto/protoconnect"
)

func newTestServer(t *testing.T) (*httptest.Server, *events.Recorder) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	recorder := events.NewRecorder()
	handler := newHandler(deps{
		store:      store,
		publisher:  recorder,
		jwtManager: auth.NewJWTManager("server-test-secret-123", time.Hour),
		registry:   prometheus.NewRegistry(),
		retries:    3,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		bcryptCost: bcrypt.MinCost,
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, recorder
}

func bearer[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func TestEndToEnd(t *testing.T) {
	server, recorder := newTestServer(t)
	ctx := context.Background()

	authClient := protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL)
	groups := protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL)
	ledger := protoconnect.NewLedgerServiceClient(http.DefaultClient, server.URL)

	register := func(email, name string) string {
		resp, err := authClient.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
			Email: email, DisplayName: name, Password: "password123",
		}))
		require.NoError(t, err)
		return resp.Msg.Token
	}
	alice := register("alice@example.com", "Alice")
	bob := register("bob@example.com", "Bob")

	created, err := groups.CreateGroup(ctx, bearer(alice, &pb.CreateGroupRequest{Name: "Flat"}))
	require.NoError(t, err)
	group := created.Msg.Group

	joinReq, err := groups.RequestToJoin(ctx, bearer(bob, &pb.RequestToJoinRequest{InviteCode: group.InviteCode}))
	require.NoError(t, err)

	approved, err := groups.ApproveJoinRequest(ctx, bearer(alice, &pb.ApproveJoinRequestRequest{RequestId: joinReq.Msg.Request.Id}))
	require.NoError(t, err)
	require.Len(t, approved.Msg.Group.Members, 2)
	assert.Equal(t, "Bob", approved.Msg.Group.Members[1].Name)

	_, err = ledger.AddGroupExpense(ctx, bearer(bob, &pb.AddGroupExpenseRequest{
		GroupId:      group.Id,
		Amount:       60,
		Participants: approved.Msg.Group.MemberIds,
		Note:         "Internet",
	}))
	require.NoError(t, err)

	balances, err := groups.GetGroupBalances(ctx, bearer(alice, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	require.NoError(t, err)
	require.Len(t, balances.Msg.Debts, 1)
	debt := balances.Msg.Debts[0]
	assert.Equal(t, "Alice", debt.FromName)
	assert.Equal(t, "Bob", debt.ToName)
	assert.InDelta(t, 30, debt.Amount, 1e-9)

	_, err = groups.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	types := make([]events.Type, 0)
	for _, e := range recorder.Drain() {
		types = append(types, e.Type)
	}
	assert.Equal(t, []events.Type{
		events.GroupCreated,
		events.JoinRequested,
		events.JoinApproved,
		events.GroupExpenseAdded,
	}, types)
}

func TestMetricsAndHealth(t *testing.T) {
	server, _ := newTestServer(t)

	// One failing RPC so the counter has a sample.
	client := protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL)
	_, err := client.ListGroups(context.Background(), connect.NewRequest(&pb.ListGroupsRequest{}))
	require.Error(t, err)

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `groupledger_rpc_requests_total{code="unauthenticated",procedure="/groupledger.v1.GroupService/ListGroups"} 1`), string(body))
}

func TestCORSPreflight(t *testing.T) {
	server, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, server.URL+protoconnect.GroupServiceListGroupsProcedure, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestJSONClients(t *testing.T) {
	server, _ := newTestServer(t)

	body := strings.NewReader(`{"email":"dana@example.com","displayName":"Dana","password":"password123"}`)
	resp, err := http.Post(server.URL+protoconnect.AuthServiceRegisterProcedure, "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		User struct {
			DisplayName string `json:"displayName"`
			CreatedAt   string `json:"createdAt"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Dana", out.User.DisplayName)
	assert.NotEmpty(t, out.Token)
	_, err = time.Parse(time.RFC3339, out.User.CreatedAt)
	assert.NoError(t, err, "createdAt should be an RFC 3339 timestamp")
}
