package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/groupledger/internal/apperror"
)

func TestToConnectError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    connect.Code
		message string
	}{
		{"validation", apperror.Validationf("bad input"), connect.CodeInvalidArgument, "bad input"},
		{"domain", apperror.Domainf("not allowed now"), connect.CodeFailedPrecondition, "not allowed now"},
		{"not found", apperror.NotFoundf("group not found"), connect.CodeNotFound, "group not found"},
		{"permission", permissionDenied("admins only"), connect.CodePermissionDenied, "admins only"},
		{"conflict", apperror.New(apperror.Conflict, "stale"), connect.CodeAborted, "stale"},
		{"io", apperror.Wrap(apperror.ExternalIO, "db down", errors.New("disk")), connect.CodeUnavailable, "db down"},
		{"wrapped", fmt.Errorf("load: %w", apperror.NotFoundf("gone")), connect.CodeNotFound, "gone"},
		{"untagged", errors.New("boom"), connect.CodeInternal, "internal error"},
		{"canceled", context.Canceled, connect.CodeCanceled, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toConnectError(tt.err)
			if connect.CodeOf(got) != tt.code {
				t.Fatalf("code: expected %v, got %v", tt.code, connect.CodeOf(got))
			}
			if tt.message != "" && errorMessage(got) != tt.message {
				t.Errorf("message: expected %q, got %q", tt.message, errorMessage(got))
			}
		})
	}

	if toConnectError(nil) != nil {
		t.Error("nil should map to nil")
	}
}
