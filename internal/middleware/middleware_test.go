package middleware

import (
	"context"
	"testing"

	"github.com/mmynk/groupledger/internal/auth"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def", "abc.def", true},
		{"bearer abc", "", false},
		{"Bearer ", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := bearerToken(tt.header)
		if got != tt.want || ok != tt.ok {
			t.Errorf("bearerToken(%q) = %q, %v; want %q, %v", tt.header, got, ok, tt.want, tt.ok)
		}
	}
}

func TestActorContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := GetActor(ctx); ok {
		t.Error("empty context reported an actor")
	}

	actor := auth.Actor{UID: "u1", Email: "a@example.com", DisplayName: "A"}
	ctx = WithActor(ctx, actor)
	got, ok := GetActor(ctx)
	if !ok || got != actor {
		t.Errorf("GetActor = %+v, %v", got, ok)
	}
	if GetUserID(ctx) != "u1" {
		t.Errorf("GetUserID = %q", GetUserID(ctx))
	}
}
