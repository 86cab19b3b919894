package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/groupledger/internal/apperror"
	"github.com/mmynk/groupledger/internal/auth"
	"github.com/mmynk/groupledger/internal/middleware"
)

// toConnectError maps a tagged error to the Connect code clients branch on.
// The message of the outermost tagged error is what the client sees.
func toConnectError(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}
	if errors.Is(err, context.Canceled) {
		return connect.NewError(connect.CodeCanceled, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}

	msg := errors.New(apperror.Message(err))
	switch apperror.KindOf(err) {
	case apperror.Validation:
		return connect.NewError(connect.CodeInvalidArgument, msg)
	case apperror.Domain:
		return connect.NewError(connect.CodeFailedPrecondition, msg)
	case apperror.NotFound:
		return connect.NewError(connect.CodeNotFound, msg)
	case apperror.PermissionDenied:
		return connect.NewError(connect.CodePermissionDenied, msg)
	case apperror.Conflict:
		return connect.NewError(connect.CodeAborted, msg)
	case apperror.ExternalIO:
		return connect.NewError(connect.CodeUnavailable, msg)
	}
	return connect.NewError(connect.CodeInternal, errors.New("internal error"))
}

// requireActor returns the signed-in actor or an Unauthenticated error.
func requireActor(ctx context.Context) (auth.Actor, error) {
	actor, ok := middleware.GetActor(ctx)
	if !ok {
		return auth.Actor{}, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return actor, nil
}

func permissionDenied(msg string) error {
	return apperror.New(apperror.PermissionDenied, msg)
}
