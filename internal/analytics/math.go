// Package analytics holds the pure aggregators behind the admin dashboard.
// Every function reads a RecordSet and returns a summary; none of them mutate
// their input or fail on empty data.
package analytics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

const day = 24 * time.Hour

// safeDiv returns a/b or zero when b is zero.
func safeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// pct returns part/total*100 rounded to one decimal, zero when total is zero.
func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

// pctDec is pct over decimals.
func pctDec(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	f, _ := part.Div(total).Mul(hundred).Round(1).Float64()
	return f
}

func round1(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return math.Round(f*10) / 10
}

// TrendPct is the percentage change from prev to cur. A period that starts from
// zero reports 100 when anything happened and 0 otherwise.
func TrendPct(cur, prev decimal.Decimal) float64 {
	if prev.IsZero() {
		if cur.IsZero() {
			return 0
		}
		return 100
	}
	f, _ := cur.Sub(prev).Div(prev).Mul(hundred).Round(1).Float64()
	return f
}

// TrendPctInt is TrendPct for counts.
func TrendPctInt(cur, prev int) float64 {
	return TrendPct(decimal.NewFromInt(int64(cur)), decimal.NewFromInt(int64(prev)))
}

// wholeDays returns the number of whole days from earlier to later, never negative.
func wholeDays(later, earlier time.Time) int {
	d := later.Sub(earlier)
	if d < 0 {
		return 0
	}
	return int(d / day)
}
