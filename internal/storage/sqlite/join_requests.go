package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/groupledger/internal/apperror"
	"github.com/mmynk/groupledger/internal/models"
)

// ErrDuplicateJoinRequest is returned when the user already has a pending
// request for the group.
var ErrDuplicateJoinRequest = apperror.New(apperror.Domain, "join request already pending")

const joinRequestColumns = "id, group_id, user_id, user_email, user_name, status, created_at"

// CreateJoinRequest persists a new pending join request.
func (s *SQLiteStore) CreateJoinRequest(ctx context.Context, req *models.JoinRequest) error {
	if !req.Status.Valid() {
		return apperror.Validationf("invalid join request status %q", req.Status)
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.CreatedAt == 0 {
		req.CreatedAt = time.Now().Unix()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var existing string
		err := tx.QueryRowContext(ctx,
			"SELECT id FROM join_requests WHERE group_id = ? AND user_id = ? AND status = ?",
			req.GroupID, req.UserID, string(models.JoinRequestPending),
		).Scan(&existing)
		if err == nil {
			return ErrDuplicateJoinRequest
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return ioError("failed to check pending join requests", err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO join_requests ("+joinRequestColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
			req.ID, req.GroupID, req.UserID, req.UserEmail, req.UserName, string(req.Status), req.CreatedAt,
		)
		if err != nil {
			return ioError("failed to insert join request", err)
		}
		return nil
	})
}

// GetJoinRequest retrieves a join request by ID.
func (s *SQLiteStore) GetJoinRequest(ctx context.Context, requestID string) (*models.JoinRequest, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+joinRequestColumns+" FROM join_requests WHERE id = ?",
		requestID,
	)
	req, err := scanJoinRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFoundf("join request not found")
	}
	if err != nil {
		return nil, ioError("failed to get join request", err)
	}
	return req, nil
}

// ListPendingJoinRequests returns the pending requests of a group, oldest first.
func (s *SQLiteStore) ListPendingJoinRequests(ctx context.Context, groupID string) ([]*models.JoinRequest, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+joinRequestColumns+" FROM join_requests WHERE group_id = ? AND status = ? ORDER BY created_at, id",
		groupID, string(models.JoinRequestPending),
	)
	if err != nil {
		return nil, ioError("failed to list join requests", err)
	}
	defer rows.Close()

	var reqs []*models.JoinRequest
	for rows.Next() {
		req, err := scanJoinRequest(rows)
		if err != nil {
			return nil, ioError("failed to scan join request", err)
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, ioError("failed to iterate join requests", err)
	}

	return reqs, nil
}

// UpdateJoinRequestStatus moves a request from one status to another.
func (s *SQLiteStore) UpdateJoinRequestStatus(ctx context.Context, requestID string, from, to models.JoinRequestStatus) error {
	if !to.Valid() {
		return apperror.Validationf("invalid join request status %q", to)
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return updateRequestStatus(ctx, tx, requestID, from, to)
	})
}

func updateRequestStatus(ctx context.Context, tx *sql.Tx, requestID string, from, to models.JoinRequestStatus) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE join_requests SET status = ? WHERE id = ? AND status = ?",
		string(to), requestID, string(from),
	)
	if err != nil {
		return ioError("failed to update join request", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return ioError("failed to read affected rows", err)
	}
	if n == 0 {
		return apperror.Newf(apperror.Conflict, "join request is no longer %s", from)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJoinRequest(row rowScanner) (*models.JoinRequest, error) {
	req := &models.JoinRequest{}
	var status string
	if err := row.Scan(&req.ID, &req.GroupID, &req.UserID, &req.UserEmail, &req.UserName, &status, &req.CreatedAt); err != nil {
		return nil, err
	}
	req.Status = models.JoinRequestStatus(status)
	if !req.Status.Valid() {
		return nil, fmt.Errorf("join request %s has unknown status %q", req.ID, status)
	}
	return req, nil
}
