// Package aggregate merges personal and group ledger entries into dashboard
// summaries and time series. All functions are pure and ignore input order.
package aggregate

import (
	"sort"

	"github.com/mmynk/groupledger/internal/models"
)

// Source tells where a merged transaction came from.
type Source string

const (
	SourcePersonal Source = "personal"
	SourceGroup    Source = "group"
)

// Transaction is the common shape of a personal or group entry.
type Transaction struct {
	ID        string
	Amount    float64
	Type      models.TransactionType
	Label     string
	Note      string
	GroupID   string
	Source    Source
	CreatedAt int64
}

// Summary holds totals per transaction type.
type Summary struct {
	Debit       float64
	Credit      float64
	Lend        float64
	BankBalance float64 // Credit - (Debit + Lend)
}

// Merge unifies personal and group entries, newest first.
// Personal entries that mirror a group entry are skipped when that group
// entry is present, so the payer's money is not counted twice.
func Merge(personal []models.PersonalExpense, group []models.GroupExpense) []Transaction {
	groupIDs := make(map[string]bool, len(group))
	for _, g := range group {
		groupIDs[g.ID] = true
	}

	out := make([]Transaction, 0, len(personal)+len(group))
	for _, p := range personal {
		if p.GroupExpenseID != "" && groupIDs[p.GroupExpenseID] {
			continue
		}
		out = append(out, Transaction{
			ID:        p.ID,
			Amount:    p.Amount,
			Type:      p.TransactionType,
			Label:     p.Label,
			Note:      p.Note,
			GroupID:   p.GroupID,
			Source:    SourcePersonal,
			CreatedAt: p.CreatedAt,
		})
	}
	for _, g := range group {
		out = append(out, Transaction{
			ID:        g.ID,
			Amount:    g.Amount,
			Type:      g.TransactionType,
			Label:     "Group Expense",
			Note:      g.Note,
			GroupID:   g.GroupID,
			Source:    SourceGroup,
			CreatedAt: g.CreatedAt,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Summarize totals txs per type.
func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, t := range canonical(txs) {
		add(&s.Debit, &s.Credit, &s.Lend, t)
	}
	s.BankBalance = s.Credit - (s.Debit + s.Lend)
	return s
}

func add(debit, credit, lend *float64, t Transaction) {
	switch t.Type {
	case models.Credit:
		*credit += t.Amount
	case models.Lend:
		*lend += t.Amount
	case models.Debit:
		*debit += t.Amount
	}
}

// canonical returns a copy of txs in a fixed order so floating point sums
// come out bit-identical for any permutation of the same input.
func canonical(txs []Transaction) []Transaction {
	out := append([]Transaction(nil), txs...)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt < b.CreatedAt
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.Amount < b.Amount
	})
	return out
}
