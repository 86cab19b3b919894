package calculator

import (
	"math"
	"sort"
)

// settleEpsilon is the amount below which a remaining balance is treated as
// floating point noise.
const settleEpsilon = 0.01

// DebtEdge is a payment that would clear part of the group's balances.
type DebtEdge struct {
	From   string // Member who owes
	To     string // Member who is owed
	Amount float64
}

type party struct {
	uid    string
	amount float64
}

// SimplifyDebts turns net balances into a short list of payments.
//
// Greedy: the largest debtor pays the largest creditor the smaller of the two
// amounts, then whichever side is cleared moves on. Ties are broken by uid so
// the same balances always give the same edges.
func SimplifyDebts(balances map[string]float64) []DebtEdge {
	var creditors, debtors []party
	for uid, bal := range balances {
		if bal > settleEpsilon {
			creditors = append(creditors, party{uid, bal})
		} else if bal < -settleEpsilon {
			debtors = append(debtors, party{uid, -bal})
		}
	}

	byAmount := func(ps []party) func(i, j int) bool {
		return func(i, j int) bool {
			if ps[i].amount != ps[j].amount {
				return ps[i].amount > ps[j].amount
			}
			return ps[i].uid < ps[j].uid
		}
	}
	sort.Slice(creditors, byAmount(creditors))
	sort.Slice(debtors, byAmount(debtors))

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := math.Min(debtors[i].amount, creditors[j].amount)

		if amount > settleEpsilon {
			edges = append(edges, DebtEdge{
				From:   debtors[i].uid,
				To:     creditors[j].uid,
				Amount: math.Round(amount*100) / 100,
			})
		}

		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if debtors[i].amount < settleEpsilon {
			i++
		}
		if creditors[j].amount < settleEpsilon {
			j++
		}
	}

	return edges
}
