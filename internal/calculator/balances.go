// Package calculator computes group balances from a snapshot of ledger entries.
package calculator

import (
	"sort"
	"strings"

	"github.com/mmynk/groupledger/internal/models"
)

// MemberBalance is the balance of one member across a group's entries.
type MemberBalance struct {
	UID        string
	NetBalance float64 // Positive = owed money by the group, Negative = owes money
	TotalPaid  float64 // Total fronted across all entries
	TotalOwed  float64 // Total of this member's split shares
}

// CalculateBalances computes each member's net balance.
//
// Algorithm:
//   - every uid in memberIDs starts at 0
//   - for each entry, each participant is debited the entry's split amount
//   - the payer is credited the full amount
//
// Participants outside memberIDs (for example members removed after the
// entry was recorded) are accumulated as well rather than rejected.
//
// Entries are summed in canonical order, so every permutation of the same
// snapshot yields a bit-identical map.
func CalculateBalances(expenses []models.GroupExpense, memberIDs []string) map[string]float64 {
	balance := make(map[string]float64, len(memberIDs))
	for _, uid := range memberIDs {
		balance[uid] = 0
	}

	for _, exp := range canonical(expenses) {
		for _, uid := range exp.Participants {
			balance[uid] -= exp.SplitAmount
		}
		balance[exp.PaidBy] += exp.Amount
	}

	return balance
}

// CalculateMemberBalances returns the per-member paid/owed breakdown behind
// CalculateBalances, sorted by uid.
func CalculateMemberBalances(expenses []models.GroupExpense, memberIDs []string) []MemberBalance {
	balances := make(map[string]*MemberBalance, len(memberIDs))
	get := func(uid string) *MemberBalance {
		if _, exists := balances[uid]; !exists {
			balances[uid] = &MemberBalance{UID: uid}
		}
		return balances[uid]
	}

	for _, uid := range memberIDs {
		get(uid)
	}

	for _, exp := range canonical(expenses) {
		for _, uid := range exp.Participants {
			get(uid).TotalOwed += exp.SplitAmount
		}
		get(exp.PaidBy).TotalPaid += exp.Amount
	}

	out := make([]MemberBalance, 0, len(balances))
	for _, bal := range balances {
		bal.NetBalance = bal.TotalPaid - bal.TotalOwed
		out = append(out, *bal)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })

	return out
}

// canonical returns a copy of expenses ordered by ID, CreatedAt and PaidBy,
// with the remaining fields as tie-breakers. Float addition is not
// associative, so the order of accumulation has to be fixed.
func canonical(expenses []models.GroupExpense) []models.GroupExpense {
	out := append([]models.GroupExpense(nil), expenses...)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt < b.CreatedAt
		}
		if a.PaidBy != b.PaidBy {
			return a.PaidBy < b.PaidBy
		}
		if a.Amount != b.Amount {
			return a.Amount < b.Amount
		}
		if a.SplitAmount != b.SplitAmount {
			return a.SplitAmount < b.SplitAmount
		}
		return strings.Join(a.Participants, "\x00") < strings.Join(b.Participants, "\x00")
	})
	return out
}
