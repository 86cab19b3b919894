package calculator

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/mmynk/groupledger/internal/models"
)

func debit(paidBy string, amount float64, participants ...string) models.GroupExpense {
	return models.GroupExpense{
		PaidBy:          paidBy,
		Amount:          amount,
		Participants:    participants,
		SplitAmount:     amount / float64(len(participants)),
		TransactionType: models.Debit,
	}
}

func credit(paidBy string, amount float64, participants ...string) models.GroupExpense {
	return models.GroupExpense{
		PaidBy:          paidBy,
		Amount:          amount,
		Participants:    participants,
		TransactionType: models.Credit,
	}
}

func withID(id string, createdAt int64, e models.GroupExpense) models.GroupExpense {
	e.ID = id
	e.CreatedAt = createdAt
	return e
}

func assertBalances(t *testing.T, got, want map[string]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("balances = %v, want %v", got, want)
	}
	for uid, w := range want {
		if math.Abs(got[uid]-w) > 1e-9 {
			t.Errorf("balance[%s] = %v, want %v", uid, got[uid], w)
		}
	}
}

func TestCalculateBalances_ThreeWayScenario(t *testing.T) {
	members := []string{"A", "B", "C"}

	first := []models.GroupExpense{debit("A", 300, "A", "B", "C")}
	assertBalances(t, CalculateBalances(first, members), map[string]float64{"A": 200, "B": -100, "C": -100})

	both := append(first, credit("B", 60, "A", "B", "C"))
	assertBalances(t, CalculateBalances(both, members), map[string]float64{"A": 200, "B": -40, "C": -100})
}

func TestCalculateBalances_NoExpenses(t *testing.T) {
	got := CalculateBalances(nil, []string{"A", "B"})
	assertBalances(t, got, map[string]float64{"A": 0, "B": 0})
}

func TestCalculateBalances_UnknownParticipantAccumulates(t *testing.T) {
	got := CalculateBalances([]models.GroupExpense{debit("A", 90, "A", "B", "gone")}, []string{"A", "B"})
	assertBalances(t, got, map[string]float64{"A": 60, "B": -30, "gone": -30})
}

func TestCalculateBalances_DebitConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	members := []string{"A", "B", "C", "D", "E"}

	var expenses []models.GroupExpense
	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(len(members))
		perm := rng.Perm(len(members))[:n]
		participants := make([]string, n)
		for k, idx := range perm {
			participants[k] = members[idx]
		}
		payer := members[rng.Intn(len(members))]
		expenses = append(expenses, debit(payer, float64(1+rng.Intn(10000))/7, participants...))
	}

	var sum float64
	for _, bal := range CalculateBalances(expenses, members) {
		sum += bal
	}
	if math.Abs(sum) > 1e-6 {
		t.Errorf("sum of balances = %v, want 0", sum)
	}
}

func TestCalculateBalances_CreditOnlyCreditsPayer(t *testing.T) {
	got := CalculateBalances([]models.GroupExpense{credit("B", 60, "A", "B", "C")}, []string{"A", "B", "C"})
	assertBalances(t, got, map[string]float64{"A": 0, "B": 60, "C": 0})
}

func TestCalculateBalances_OrderIndependent(t *testing.T) {
	members := []string{"A", "B", "C"}
	tests := []struct {
		name     string
		expenses []models.GroupExpense
	}{
		{
			name: "mixed types",
			expenses: []models.GroupExpense{
				debit("A", 300, "A", "B", "C"),
				credit("B", 60, "A", "B", "C"),
				debit("C", 50, "A", "C"),
				debit("B", 12, "B"),
				{PaidBy: "A", Amount: 25, Participants: []string{"B"}, TransactionType: models.Lend},
			},
		},
		{
			name: "rounding-sensitive amounts",
			expenses: []models.GroupExpense{
				debit("A", 100, "A", "B", "C"),
				debit("A", 0.1, "A", "B", "C"),
				debit("A", 0.7, "A", "B", "C"),
				debit("A", 1e6/7, "A", "B", "C"),
			},
		},
		{
			name: "stored entries",
			expenses: []models.GroupExpense{
				withID("e1", 10, debit("A", 0.1, "A", "B")),
				withID("e2", 20, debit("B", 0.7, "B", "C")),
				withID("e3", 20, debit("C", 1e6/7, "A", "B", "C")),
				withID("e4", 30, debit("A", 100, "C")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := CalculateBalances(tt.expenses, members)
			wantMembers := CalculateMemberBalances(tt.expenses, members)
			wantDebts := SimplifyDebts(want)

			rng := rand.New(rand.NewSource(42))
			for i := 0; i < 50; i++ {
				shuffled := append([]models.GroupExpense(nil), tt.expenses...)
				rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

				got := CalculateBalances(shuffled, members)
				for uid, w := range want {
					if got[uid] != w {
						t.Fatalf("shuffle %d: balance[%s] = %v, want %v", i, uid, got[uid], w)
					}
				}
				if gotMembers := CalculateMemberBalances(shuffled, members); !reflect.DeepEqual(gotMembers, wantMembers) {
					t.Fatalf("shuffle %d: member balances = %+v, want %+v", i, gotMembers, wantMembers)
				}
				if gotDebts := SimplifyDebts(got); !reflect.DeepEqual(gotDebts, wantDebts) {
					t.Fatalf("shuffle %d: debts = %+v, want %+v", i, gotDebts, wantDebts)
				}
			}
		})
	}
}

func TestCalculateBalances_DoesNotReorderInput(t *testing.T) {
	expenses := []models.GroupExpense{
		withID("b", 2, debit("B", 10, "A", "B")),
		withID("a", 1, debit("A", 10, "A", "B")),
	}
	CalculateBalances(expenses, []string{"A", "B"})
	if expenses[0].ID != "b" || expenses[1].ID != "a" {
		t.Errorf("input reordered: %s, %s", expenses[0].ID, expenses[1].ID)
	}
}

func TestCalculateMemberBalances(t *testing.T) {
	got := CalculateMemberBalances([]models.GroupExpense{
		debit("A", 300, "A", "B", "C"),
		credit("B", 60, "A", "B", "C"),
	}, []string{"C", "A", "B"})

	if len(got) != 3 {
		t.Fatalf("expected 3 balances, got %d", len(got))
	}
	if got[0].UID != "A" || got[1].UID != "B" || got[2].UID != "C" {
		t.Errorf("balances not sorted by uid: %v", got)
	}
	if got[0].TotalPaid != 300 || got[0].TotalOwed != 100 || got[0].NetBalance != 200 {
		t.Errorf("A = %+v", got[0])
	}
	if got[1].NetBalance != -40 {
		t.Errorf("B net = %v, want -40", got[1].NetBalance)
	}
}
