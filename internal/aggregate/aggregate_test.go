package aggregate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/models"
)

func unix(y int, m time.Month, d int) int64 {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Unix()
}

func tx(id string, amount float64, typ models.TransactionType, at int64) Transaction {
	return Transaction{ID: id, Amount: amount, Type: typ, CreatedAt: at, Source: SourcePersonal}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Transaction{
		tx("1", 100, models.Debit, 1),
		tx("2", 500, models.Credit, 2),
		tx("3", 50, models.Lend, 3),
		tx("4", 25, models.Debit, 4),
	})
	assert.Equal(t, Summary{Debit: 125, Credit: 500, Lend: 50, BankBalance: 325}, s)
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarize_LegacyEntriesCountAsDebit(t *testing.T) {
	typ, err := models.ParseTransactionType("")
	require.NoError(t, err)

	personal := []models.PersonalExpense{
		{ID: "old", Amount: 40, TransactionType: typ, CreatedAt: 10},
		{ID: "new", Amount: 100, TransactionType: models.Credit, CreatedAt: 20},
	}
	s := Summarize(Merge(personal, nil))
	assert.Equal(t, 40.0, s.Debit)
	assert.Equal(t, 60.0, s.BankBalance)
}

func TestMerge(t *testing.T) {
	personal := []models.PersonalExpense{
		{ID: "p1", Amount: 10, CreatedAt: 100},
		{ID: "mirror", Amount: 300, CreatedAt: 200, GroupExpenseID: "g1", GroupID: "grp"},
		{ID: "orphan", Amount: 20, CreatedAt: 50, GroupExpenseID: "deleted", GroupID: "grp"},
	}
	group := []models.GroupExpense{
		{ID: "g1", GroupID: "grp", Amount: 300, CreatedAt: 200, TransactionType: models.Debit},
	}

	got := Merge(personal, group)
	require.Len(t, got, 3)
	assert.Equal(t, "g1", got[0].ID)
	assert.Equal(t, SourceGroup, got[0].Source)
	assert.Equal(t, "p1", got[1].ID)
	assert.Equal(t, "orphan", got[2].ID)
}

func TestTimeSeries_Day(t *testing.T) {
	txs := []Transaction{
		tx("1", 1000, models.Credit, unix(2025, 3, 1)),
		tx("2", 200, models.Debit, unix(2025, 3, 1)),
		tx("3", 100, models.Lend, unix(2025, 3, 5)),
		tx("4", 50, models.Debit, unix(2025, 3, 3)),
	}

	got := TimeSeries(txs, BucketDay)
	assert.Equal(t, []Point{
		{Key: "2025-03-01", Credit: 1000, Debit: 200, Balance: 800},
		{Key: "2025-03-03", Debit: 50, Balance: 750},
		{Key: "2025-03-05", Lend: 100, Balance: 650},
	}, got)
}

func TestTimeSeries_Month(t *testing.T) {
	txs := []Transaction{
		tx("1", 1000, models.Credit, unix(2025, 1, 10)),
		tx("2", 300, models.Debit, unix(2025, 1, 20)),
		tx("3", 100, models.Debit, unix(2025, 4, 2)),
	}

	got := TimeSeries(txs, BucketMonth)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-01", got[0].Key)
	assert.Equal(t, 700.0, got[0].Balance)
	assert.Equal(t, "2025-04", got[1].Key)
	assert.Equal(t, 600.0, got[1].Balance)
}

func TestOrderIndependence(t *testing.T) {
	var txs []Transaction
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		typ := models.TransactionTypes[rng.Intn(3)]
		txs = append(txs, tx(string(rune('a'+i%26))+string(rune('0'+i/26)), float64(rng.Intn(100000))/100, typ, unix(2025, time.Month(1+rng.Intn(12)), 1+rng.Intn(28))))
	}

	wantSummary := Summarize(txs)
	wantSeries := TimeSeries(txs, BucketDay)

	for i := 0; i < 10; i++ {
		shuffled := append([]Transaction(nil), txs...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, wantSummary, Summarize(shuffled))
		assert.Equal(t, wantSeries, TimeSeries(shuffled, BucketDay))
	}
}

func TestParseBucket(t *testing.T) {
	b, err := ParseBucket("")
	require.NoError(t, err)
	assert.Equal(t, BucketDay, b)

	b, err = ParseBucket("month")
	require.NoError(t, err)
	assert.Equal(t, BucketMonth, b)

	_, err = ParseBucket("week")
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		tx("june", 1, models.Debit, unix(2025, 6, 2)),
		tx("may", 1, models.Credit, unix(2025, 5, 2)),
		tx("lastyear", 1, models.Lend, unix(2024, 6, 2)),
		{ID: "grp", Amount: 1, Type: models.Debit, CreatedAt: unix(2025, 6, 3), Source: SourceGroup},
	}

	ids := func(ts []Transaction) []string {
		var out []string
		for _, t := range ts {
			out = append(out, t.ID)
		}
		return out
	}

	assert.Equal(t, []string{"june", "grp"}, ids(Filter{Window: WindowMonth, Now: now}.Apply(txs)))
	assert.Equal(t, []string{"june", "may", "grp"}, ids(Filter{Window: WindowYear, Now: now}.Apply(txs)))
	assert.Equal(t, []string{"may"}, ids(Filter{Types: []models.TransactionType{models.Credit}}.Apply(txs)))
	assert.Equal(t, []string{"grp"}, ids(Filter{Source: SourceGroup}.Apply(txs)))
	assert.Len(t, Filter{Window: WindowAll}.Apply(txs), 4)
}
