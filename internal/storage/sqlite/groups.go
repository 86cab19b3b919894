package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/groupledger/internal/apperror"
	"github.com/mmynk/groupledger/internal/models"
)

// ErrVersionConflict is returned by SaveMembership when the group changed
// since it was read.
var ErrVersionConflict = apperror.New(apperror.Conflict, "group was modified concurrently")

// CreateGroup persists a new group and its initial members.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}
	group.Version = 1

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO groups (id, name, admin_id, invite_code, version, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			group.ID, group.Name, group.AdminID, group.InviteCode, group.Version, group.CreatedAt,
		)
		if err != nil {
			return ioError("failed to insert group", err)
		}
		return insertMembers(ctx, tx, group)
	})
}

func insertMembers(ctx context.Context, tx *sql.Tx, group *models.Group) error {
	for i, m := range group.Members {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO group_members (group_id, uid, name, email, position) VALUES (?, ?, ?, ?, ?)",
			group.ID, m.UID, m.Name, m.Email, i,
		)
		if err != nil {
			return ioError("failed to insert group member", err)
		}
	}
	return nil
}

// GetGroup retrieves a group by ID, including its members.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return getGroup(ctx, s.db, "id", groupID)
}

// GetGroupByInviteCode retrieves the group opened by inviteCode.
func (s *SQLiteStore) GetGroupByInviteCode(ctx context.Context, inviteCode string) (*models.Group, error) {
	return getGroup(ctx, s.db, "invite_code", inviteCode)
}

func getGroup(ctx context.Context, q queryer, column, value string) (*models.Group, error) {
	group := &models.Group{}
	err := q.QueryRowContext(ctx,
		"SELECT id, name, admin_id, invite_code, version, created_at FROM groups WHERE "+column+" = ?",
		value,
	).Scan(&group.ID, &group.Name, &group.AdminID, &group.InviteCode, &group.Version, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFoundf("group not found")
	}
	if err != nil {
		return nil, ioError("failed to get group", err)
	}

	members, err := loadMembers(ctx, q, group.ID)
	if err != nil {
		return nil, err
	}
	group.Members = members
	group.MemberIDs = models.MemberIDsOf(members)

	return group, nil
}

func loadMembers(ctx context.Context, q queryer, groupID string) ([]models.Member, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT uid, name, email FROM group_members WHERE group_id = ? ORDER BY position",
		groupID,
	)
	if err != nil {
		return nil, ioError("failed to get group members", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.UID, &m.Name, &m.Email); err != nil {
			return nil, ioError("failed to scan group member", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, ioError("failed to iterate group members", err)
	}

	return members, nil
}

// ListGroupsForMember returns all groups uid belongs to, newest first.
func (s *SQLiteStore) ListGroupsForMember(ctx context.Context, uid string) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id FROM groups g
		 JOIN group_members m ON m.group_id = g.id
		 WHERE m.uid = ?
		 ORDER BY g.created_at DESC, g.id`,
		uid,
	)
	if err != nil {
		return nil, ioError("failed to list groups", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, ioError("failed to scan group id", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, ioError("failed to iterate groups", err)
	}

	groups := make([]*models.Group, 0, len(ids))
	for _, id := range ids {
		group, err := s.GetGroup(ctx, id)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// SaveMembership replaces the member list of group under a version check and
// optionally updates a join request status in the same transaction.
func (s *SQLiteStore) SaveMembership(ctx context.Context, group *models.Group, expectedVersion int64, req *models.JoinRequest) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"UPDATE groups SET version = version + 1 WHERE id = ? AND version = ?",
			group.ID, expectedVersion,
		)
		if err != nil {
			return ioError("failed to update group version", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return ioError("failed to read affected rows", err)
		}
		if n == 0 {
			var exists int
			err := tx.QueryRowContext(ctx, "SELECT 1 FROM groups WHERE id = ?", group.ID).Scan(&exists)
			if errors.Is(err, sql.ErrNoRows) {
				return apperror.NotFoundf("group not found")
			}
			if err != nil {
				return ioError("failed to check group existence", err)
			}
			return ErrVersionConflict
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM group_members WHERE group_id = ?", group.ID); err != nil {
			return ioError("failed to clear group members", err)
		}
		if err := insertMembers(ctx, tx, group); err != nil {
			return err
		}

		if req != nil {
			if err := updateRequestStatus(ctx, tx, req.ID, models.JoinRequestPending, req.Status); err != nil {
				return err
			}
		}

		group.Version = expectedVersion + 1
		group.MemberIDs = models.MemberIDsOf(group.Members)
		return nil
	})
}
