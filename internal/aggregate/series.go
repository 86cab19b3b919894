package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/mmynk/groupledger/internal/models"
)

// Bucket is the width of a time series bucket.
type Bucket int

const (
	BucketDay Bucket = iota
	BucketMonth
)

// ParseBucket accepts "day" or "month". Empty means day.
func ParseBucket(s string) (Bucket, error) {
	switch s {
	case "", "day":
		return BucketDay, nil
	case "month":
		return BucketMonth, nil
	}
	return BucketDay, fmt.Errorf("unknown bucket %q", s)
}

func (b Bucket) layout() string {
	if b == BucketMonth {
		return "2006-01"
	}
	return "2006-01-02"
}

// Key returns the calendar key of a Unix timestamp, in UTC.
func (b Bucket) Key(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(b.layout())
}

// Point is one bucket of a time series.
type Point struct {
	Key     string
	Credit  float64
	Debit   float64
	Lend    float64
	Balance float64 // running sum of Credit - Debit - Lend up to this bucket
}

// TimeSeries groups txs by bucket, sorted by key. Buckets without
// transactions are omitted rather than zero-filled.
func TimeSeries(txs []Transaction, bucket Bucket) []Point {
	byKey := make(map[string]*Point)
	for _, t := range canonical(txs) {
		key := bucket.Key(t.CreatedAt)
		p, ok := byKey[key]
		if !ok {
			p = &Point{Key: key}
			byKey[key] = p
		}
		add(&p.Debit, &p.Credit, &p.Lend, t)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]Point, 0, len(keys))
	var running float64
	for _, k := range keys {
		p := *byKey[k]
		running += p.Credit - p.Debit - p.Lend
		p.Balance = running
		points = append(points, p)
	}
	return points
}

// Window restricts transactions to a period relative to a reference time.
type Window string

const (
	WindowAll   Window = "all"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
)

// Filter selects transactions.
type Filter struct {
	Window Window
	// Now is the reference time for Window; zero means time.Now().
	Now time.Time
	// Types keeps only these types when non-empty.
	Types []models.TransactionType
	// Source keeps only one source when non-empty.
	Source Source
}

// Apply returns the transactions of txs matching f, in their original order.
func (f Filter) Apply(txs []Transaction) []Transaction {
	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Source != "" && t.Source != f.Source {
			continue
		}
		if len(f.Types) > 0 && !containsType(f.Types, t.Type) {
			continue
		}
		at := time.Unix(t.CreatedAt, 0).UTC()
		switch f.Window {
		case WindowMonth:
			if at.Year() != now.Year() || at.Month() != now.Month() {
				continue
			}
		case WindowYear:
			if at.Year() != now.Year() {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func containsType(types []models.TransactionType, t models.TransactionType) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}
