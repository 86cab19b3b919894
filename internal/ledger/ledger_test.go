package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/apperror"
	"github.com/mmynk/groupledger/internal/models"
)

func TestNormalizeGroupExpense_Split(t *testing.T) {
	tests := []struct {
		name      string
		txType    string
		wantType  models.TransactionType
		wantSplit float64
	}{
		{"debit splits evenly", "debit", models.Debit, 100},
		{"missing type defaults to debit", "", models.Debit, 100},
		{"credit does not split", "credit", models.Credit, 0},
		{"lend does not split", "lend", models.Lend, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NormalizeGroupExpense(GroupExpenseInput{
				GroupID:         "g1",
				Amount:          300,
				PaidBy:          "a",
				Participants:    []string{"a", "b", "c"},
				TransactionType: tt.txType,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, e.TransactionType)
			assert.InDelta(t, tt.wantSplit, e.SplitAmount, 1e-9)
		})
	}
}

func TestNormalizeGroupExpense_Invalid(t *testing.T) {
	valid := GroupExpenseInput{GroupID: "g1", Amount: 10, PaidBy: "a", Participants: []string{"a"}}

	tests := []struct {
		name   string
		mutate func(in *GroupExpenseInput)
	}{
		{"missing group", func(in *GroupExpenseInput) { in.GroupID = "" }},
		{"zero amount", func(in *GroupExpenseInput) { in.Amount = 0 }},
		{"negative amount", func(in *GroupExpenseInput) { in.Amount = -5 }},
		{"infinite amount", func(in *GroupExpenseInput) { in.Amount = math.Inf(1) }},
		{"nan amount", func(in *GroupExpenseInput) { in.Amount = math.NaN() }},
		{"missing payer", func(in *GroupExpenseInput) { in.PaidBy = "" }},
		{"no participants", func(in *GroupExpenseInput) { in.Participants = nil }},
		{"only blank participants", func(in *GroupExpenseInput) { in.Participants = []string{"", ""} }},
		{"unknown type", func(in *GroupExpenseInput) { in.TransactionType = "refund" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			in.Participants = append([]string(nil), valid.Participants...)
			tt.mutate(&in)
			_, err := NormalizeGroupExpense(in)
			require.Error(t, err)
			assert.Equal(t, apperror.Validation, apperror.KindOf(err))
		})
	}
}

func TestNormalizeGroupExpense_DuplicateParticipants(t *testing.T) {
	e, err := NormalizeGroupExpense(GroupExpenseInput{
		GroupID:      "g1",
		Amount:       90,
		PaidBy:       "a",
		Participants: []string{"a", "b", "a", "c", "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, e.Participants)
	assert.InDelta(t, 30.0, e.SplitAmount, 1e-9)
}

func TestNormalizePersonalExpense(t *testing.T) {
	e, err := NormalizePersonalExpense(PersonalExpenseInput{UserID: "u", Amount: 12.5, Label: " food ", TransactionType: "credit"})
	require.NoError(t, err)
	assert.Equal(t, models.Credit, e.TransactionType)
	assert.Equal(t, "food", e.Label)

	_, err = NormalizePersonalExpense(PersonalExpenseInput{UserID: "u", Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NormalizePersonalExpense(PersonalExpenseInput{Amount: 3})
	assert.Equal(t, apperror.Validation, apperror.KindOf(err))
}

func TestResolveType(t *testing.T) {
	typ, ok := ResolveType("")
	assert.True(t, ok)
	assert.Equal(t, models.Debit, typ)

	typ, ok = ResolveType("mystery")
	assert.False(t, ok)
	assert.Equal(t, models.Debit, typ)
}

func TestPayerMirror(t *testing.T) {
	e := models.GroupExpense{ID: "x", GroupID: "g", Amount: 40, PaidBy: "a", TransactionType: models.Lend, CreatedAt: 99}
	m := PayerMirror(e)
	assert.Equal(t, "a", m.UserID)
	assert.Equal(t, "x", m.GroupExpenseID)
	assert.Equal(t, models.Lend, m.TransactionType)
	assert.Equal(t, int64(99), m.CreatedAt)
}
