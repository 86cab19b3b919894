package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/groupledger/internal/auth"
	"github.com/mmynk/groupledger/internal/events"
	"github.com/mmynk/groupledger/internal/middleware"
	"github.com/mmynk/groupledger/internal/storage/sqlite"
	"github.com/mmynk/groupledger/pkg/proto/protoconnect"
)

// testUserHeader names the acting user in tests in place of a bearer token.
const testUserHeader = "X-Test-User"

// testAuthInterceptor returns a Connect interceptor that sets the actor named
// by the X-Test-User header in the context.
func testAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if uid := req.Header().Get(testUserHeader); uid != "" {
				ctx = middleware.WithActor(ctx, testActor(uid))
			}
			return next(ctx, req)
		}
	}
}

func testActor(uid string) auth.Actor {
	return auth.Actor{UID: uid, Email: uid + "@example.com", DisplayName: "User " + uid}
}

// as builds a request sent by uid.
func as[T any](uid string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set(testUserHeader, uid)
	return req
}

type testEnv struct {
	groups   protoconnect.GroupServiceClient
	ledger   protoconnect.LedgerServiceClient
	store    *sqlite.SQLiteStore
	recorder *events.Recorder
}

// newTestStore creates a SQLite store in a temp directory.
func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// setupTestServer serves the group and ledger services over httptest.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store := newTestStore(t)
	recorder := events.NewRecorder()

	interceptors := connect.WithInterceptors(testAuthInterceptor())
	groupPath, groupHandler := protoconnect.NewGroupServiceHandler(NewGroupService(store, recorder, 3), interceptors)
	ledgerPath, ledgerHandler := protoconnect.NewLedgerServiceHandler(NewLedgerService(store, recorder), interceptors)

	mux := http.NewServeMux()
	mux.Handle(groupPath, groupHandler)
	mux.Handle(ledgerPath, ledgerHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testEnv{
		groups:   protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		ledger:   protoconnect.NewLedgerServiceClient(http.DefaultClient, server.URL),
		store:    store,
		recorder: recorder,
	}
}

// assertCode fails the test unless err is a Connect error with code.
func assertCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", code)
	}
	if got := connect.CodeOf(err); got != code {
		t.Fatalf("expected code %v, got %v (%v)", code, got, err)
	}
}

// errorMessage returns the message a client sees for err.
func errorMessage(err error) string {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Message()
	}
	return err.Error()
}
