package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/groupledger/internal/apperror"
	"github.com/mmynk/groupledger/internal/ledger"
	"github.com/mmynk/groupledger/internal/models"
)

const groupExpenseColumns = "id, group_id, amount, paid_by, paid_by_name, paid_by_email, split_amount, note, transaction_type, created_at"

const personalExpenseColumns = "id, user_id, amount, label, note, transaction_type, group_id, group_expense_id, created_at"

// CreateGroupExpense persists a group entry and the payer mirror in one transaction.
func (s *SQLiteStore) CreateGroupExpense(ctx context.Context, expense *models.GroupExpense, mirror *models.PersonalExpense) error {
	if !expense.TransactionType.Valid() {
		return apperror.Validationf("invalid transaction type %s", expense.TransactionType)
	}
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO group_expenses ("+groupExpenseColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			expense.ID, expense.GroupID, expense.Amount, expense.PaidBy, expense.PaidByName, expense.PaidByEmail,
			expense.SplitAmount, nullString(expense.Note), expense.TransactionType.String(), expense.CreatedAt,
		)
		if err != nil {
			return ioError("failed to insert group expense", err)
		}

		for i, uid := range expense.Participants {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO group_expense_participants (expense_id, uid, position) VALUES (?, ?, ?)",
				expense.ID, uid, i,
			)
			if err != nil {
				return ioError("failed to insert participant", err)
			}
		}

		if mirror == nil {
			return nil
		}
		mirror.GroupID = expense.GroupID
		mirror.GroupExpenseID = expense.ID
		if mirror.CreatedAt == 0 {
			mirror.CreatedAt = expense.CreatedAt
		}
		return insertPersonalExpense(ctx, tx, mirror)
	})
}

// GetGroupExpense retrieves a group entry by ID.
func (s *SQLiteStore) GetGroupExpense(ctx context.Context, expenseID string) (*models.GroupExpense, error) {
	expenses, err := s.queryGroupExpenses(ctx,
		"SELECT "+groupExpenseColumns+" FROM group_expenses WHERE id = ?",
		expenseID,
	)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, apperror.NotFoundf("expense not found")
	}
	return expenses[0], nil
}

// ListGroupExpenses returns every entry in a group, newest first.
func (s *SQLiteStore) ListGroupExpenses(ctx context.Context, groupID string) ([]*models.GroupExpense, error) {
	return s.queryGroupExpenses(ctx,
		"SELECT "+groupExpenseColumns+" FROM group_expenses WHERE group_id = ? ORDER BY created_at DESC, id",
		groupID,
	)
}

// ListGroupExpensesPaidBy returns entries paid by uid within groupIDs, newest first.
func (s *SQLiteStore) ListGroupExpensesPaidBy(ctx context.Context, uid string, groupIDs []string) ([]*models.GroupExpense, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}

	args := make([]any, 0, len(groupIDs)+1)
	args = append(args, uid)
	for _, id := range groupIDs {
		args = append(args, id)
	}

	return s.queryGroupExpenses(ctx,
		"SELECT "+groupExpenseColumns+" FROM group_expenses WHERE paid_by = ? AND group_id IN ("+placeholders(len(groupIDs))+") ORDER BY created_at DESC, id",
		args...,
	)
}

func (s *SQLiteStore) queryGroupExpenses(ctx context.Context, query string, args ...any) ([]*models.GroupExpense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ioError("failed to query group expenses", err)
	}

	var expenses []*models.GroupExpense
	for rows.Next() {
		e := &models.GroupExpense{}
		var note, txType sql.NullString
		if err := rows.Scan(&e.ID, &e.GroupID, &e.Amount, &e.PaidBy, &e.PaidByName, &e.PaidByEmail,
			&e.SplitAmount, &note, &txType, &e.CreatedAt); err != nil {
			rows.Close()
			return nil, ioError("failed to scan group expense", err)
		}
		e.Note = note.String
		e.TransactionType = resolveType(txType, "group_expenses", e.ID)
		expenses = append(expenses, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, ioError("failed to iterate group expenses", err)
	}

	// Participants are loaded after the cursor is closed; the pool holds one connection.
	if err := s.loadParticipants(ctx, expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}

// participantBatchSize bounds the IN list of one participants query, well
// below SQLite's host parameter limit.
var participantBatchSize = 500

// loadParticipants fills Participants for every expense, one query per batch.
func (s *SQLiteStore) loadParticipants(ctx context.Context, expenses []*models.GroupExpense) error {
	byID := make(map[string]*models.GroupExpense, len(expenses))
	for _, e := range expenses {
		byID[e.ID] = e
	}

	for start := 0; start < len(expenses); start += participantBatchSize {
		end := min(start+participantBatchSize, len(expenses))
		args := make([]any, 0, end-start)
		for _, e := range expenses[start:end] {
			args = append(args, e.ID)
		}

		rows, err := s.db.QueryContext(ctx,
			"SELECT expense_id, uid FROM group_expense_participants WHERE expense_id IN ("+placeholders(len(args))+") ORDER BY expense_id, position",
			args...,
		)
		if err != nil {
			return ioError("failed to get participants", err)
		}
		for rows.Next() {
			var expenseID, uid string
			if err := rows.Scan(&expenseID, &uid); err != nil {
				rows.Close()
				return ioError("failed to scan participant", err)
			}
			if e, ok := byID[expenseID]; ok {
				e.Participants = append(e.Participants, uid)
			}
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return ioError("failed to iterate participants", err)
		}
	}

	return nil
}

// DeleteGroupExpense removes a group entry and the payer mirror that points at it.
func (s *SQLiteStore) DeleteGroupExpense(ctx context.Context, expenseID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM group_expenses WHERE id = ?", expenseID)
		if err != nil {
			return ioError("failed to delete group expense", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return ioError("failed to read affected rows", err)
		}
		if n == 0 {
			return apperror.NotFoundf("expense not found")
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM personal_expenses WHERE group_expense_id = ?", expenseID); err != nil {
			return ioError("failed to delete mirrored expense", err)
		}
		return nil
	})
}

// CreatePersonalExpense persists a personal entry.
func (s *SQLiteStore) CreatePersonalExpense(ctx context.Context, expense *models.PersonalExpense) error {
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return insertPersonalExpense(ctx, tx, expense)
	})
}

func insertPersonalExpense(ctx context.Context, tx *sql.Tx, e *models.PersonalExpense) error {
	if !e.TransactionType.Valid() {
		return apperror.Validationf("invalid transaction type %s", e.TransactionType)
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	_, err := tx.ExecContext(ctx,
		"INSERT INTO personal_expenses ("+personalExpenseColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		e.ID, e.UserID, e.Amount, nullString(e.Label), nullString(e.Note), e.TransactionType.String(),
		nullString(e.GroupID), nullString(e.GroupExpenseID), e.CreatedAt,
	)
	if err != nil {
		return ioError("failed to insert personal expense", err)
	}
	return nil
}

// GetPersonalExpense retrieves a personal entry by ID.
func (s *SQLiteStore) GetPersonalExpense(ctx context.Context, expenseID string) (*models.PersonalExpense, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+personalExpenseColumns+" FROM personal_expenses WHERE id = ?",
		expenseID,
	)
	e, err := scanPersonalExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFoundf("expense not found")
	}
	if err != nil {
		return nil, ioError("failed to get personal expense", err)
	}
	return e, nil
}

// ListPersonalExpenses returns the entries owned by uid, newest first.
func (s *SQLiteStore) ListPersonalExpenses(ctx context.Context, uid string) ([]*models.PersonalExpense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+personalExpenseColumns+" FROM personal_expenses WHERE user_id = ? ORDER BY created_at DESC, id",
		uid,
	)
	if err != nil {
		return nil, ioError("failed to list personal expenses", err)
	}
	defer rows.Close()

	var expenses []*models.PersonalExpense
	for rows.Next() {
		e, err := scanPersonalExpense(rows)
		if err != nil {
			return nil, ioError("failed to scan personal expense", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, ioError("failed to iterate personal expenses", err)
	}

	return expenses, nil
}

// DeletePersonalExpense removes a personal entry.
func (s *SQLiteStore) DeletePersonalExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM personal_expenses WHERE id = ?", expenseID)
	if err != nil {
		return ioError("failed to delete personal expense", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return ioError("failed to read affected rows", err)
	}
	if n == 0 {
		return apperror.NotFoundf("expense not found")
	}
	return nil
}

func scanPersonalExpense(row rowScanner) (*models.PersonalExpense, error) {
	e := &models.PersonalExpense{}
	var label, note, txType, groupID, groupExpenseID sql.NullString
	if err := row.Scan(&e.ID, &e.UserID, &e.Amount, &label, &note, &txType, &groupID, &groupExpenseID, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Label = label.String
	e.Note = note.String
	e.GroupID = groupID.String
	e.GroupExpenseID = groupExpenseID.String
	e.TransactionType = resolveType(txType, "personal_expenses", e.ID)
	return e, nil
}

// resolveType reads a stored type column. NULL reads as debit; unknown
// values also read as debit and are logged.
func resolveType(raw sql.NullString, table, id string) models.TransactionType {
	t, ok := ledger.ResolveType(raw.String)
	if !ok {
		slog.Warn("unknown transaction type, reading as debit", "table", table, "id", id, "value", raw.String)
	}
	return t
}
