// Package ledger validates raw expense submissions and turns them into
// records ready to persist.
package ledger

import (
	"math"
	"strings"

	"github.com/mmynk/groupledger/internal/apperror"
	"github.com/mmynk/groupledger/internal/models"
)

// ErrInvalidGroupExpense is returned for any malformed group entry.
var ErrInvalidGroupExpense = apperror.New(apperror.Validation, "Invalid group expense data")

// ErrInvalidAmount is returned when an amount is missing, non-positive or not finite.
var ErrInvalidAmount = apperror.New(apperror.Validation, "amount must be a positive number")

// GroupExpenseInput is a raw group entry as submitted by a form.
type GroupExpenseInput struct {
	GroupID         string
	Amount          float64
	PaidBy          string
	PaidByName      string
	PaidByEmail     string
	Participants    []string
	Note            string
	TransactionType string
}

// PersonalExpenseInput is a raw personal entry as submitted by a form.
type PersonalExpenseInput struct {
	UserID          string
	Amount          float64
	Label           string
	Note            string
	TransactionType string
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

// SplitAmount is the even share of a debit entry. Other types do not
// distribute a shared cost and split to 0.
func SplitAmount(amount float64, participants int, t models.TransactionType) float64 {
	if t != models.Debit || participants == 0 {
		return 0
	}
	return amount / float64(participants)
}

// ResolveType maps a stored type value to a TransactionType on read.
// Missing values resolve to debit. The second result is false when the
// stored value was not recognised, so callers can log it.
func ResolveType(raw string) (models.TransactionType, bool) {
	t, err := models.ParseTransactionType(raw)
	return t, err == nil
}

// NormalizeGroupExpense validates in and builds the group entry.
// ID and CreatedAt are left for the store.
func NormalizeGroupExpense(in GroupExpenseInput) (models.GroupExpense, error) {
	if strings.TrimSpace(in.GroupID) == "" || in.PaidBy == "" || !validAmount(in.Amount) {
		return models.GroupExpense{}, ErrInvalidGroupExpense
	}

	participants := dedupe(in.Participants)
	if len(participants) == 0 {
		return models.GroupExpense{}, ErrInvalidGroupExpense
	}

	t, err := models.ParseTransactionType(in.TransactionType)
	if err != nil {
		return models.GroupExpense{}, apperror.Validationf("%v", err)
	}

	return models.GroupExpense{
		GroupID:         in.GroupID,
		Amount:          in.Amount,
		PaidBy:          in.PaidBy,
		PaidByName:      in.PaidByName,
		PaidByEmail:     in.PaidByEmail,
		Participants:    participants,
		SplitAmount:     SplitAmount(in.Amount, len(participants), t),
		Note:            strings.TrimSpace(in.Note),
		TransactionType: t,
	}, nil
}

// NormalizePersonalExpense validates in and builds the personal entry.
func NormalizePersonalExpense(in PersonalExpenseInput) (models.PersonalExpense, error) {
	if in.UserID == "" {
		return models.PersonalExpense{}, apperror.Validationf("user id required")
	}
	if !validAmount(in.Amount) {
		return models.PersonalExpense{}, ErrInvalidAmount
	}

	t, err := models.ParseTransactionType(in.TransactionType)
	if err != nil {
		return models.PersonalExpense{}, apperror.Validationf("%v", err)
	}

	return models.PersonalExpense{
		UserID:          in.UserID,
		Amount:          in.Amount,
		Label:           strings.TrimSpace(in.Label),
		Note:            strings.TrimSpace(in.Note),
		TransactionType: t,
	}, nil
}

// PayerMirror is the personal entry written for the payer of a group entry,
// so the payer's own ledger shows the money that left their pocket.
func PayerMirror(e models.GroupExpense) models.PersonalExpense {
	return models.PersonalExpense{
		UserID:          e.PaidBy,
		Amount:          e.Amount,
		Label:           "Group Expense",
		Note:            e.Note,
		TransactionType: e.TransactionType,
		GroupID:         e.GroupID,
		GroupExpenseID:  e.ID,
		CreatedAt:       e.CreatedAt,
	}
}

// dedupe drops empty and repeated uids, keeping first occurrences in order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
