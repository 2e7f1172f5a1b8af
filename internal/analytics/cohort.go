package analytics

import (
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/jekabolt/grbpwr-dashboard/internal/period"
	"github.com/shopspring/decimal"
)

// Cohorts groups customers by the bucket of their first completed-state order in the
// window and follows each cohort through every later bucket of the window. Buckets
// are cut in loc.
func Cohorts(rs *entity.RecordSet, g entity.MetricsGranularity, loc *time.Location) []entity.CohortRow {
	starts := period.Buckets(rs.Window, g, loc)
	if len(starts) == 0 {
		return []entity.CohortRow{}
	}

	type purchase struct {
		bucket int
		amount decimal.Decimal
	}
	first := make(map[string]time.Time)
	purchases := make(map[string][]purchase)
	for i := range rs.Orders {
		o := &rs.Orders[i]
		if !o.Status.IsCompleted() || !o.HasCustomer() || !rs.Window.Contains(o.CreatedAt) {
			continue
		}
		idx := period.BucketIndex(starts, o.CreatedAt, g)
		if idx < 0 {
			continue
		}
		id := o.CustomerID()
		if f, ok := first[id]; !ok || o.CreatedAt.Before(f) {
			first[id] = o.CreatedAt
		}
		purchases[id] = append(purchases[id], purchase{bucket: idx, amount: o.Total})
	}

	rows := make([]entity.CohortRow, len(starts))
	active := make([][]map[string]struct{}, len(starts))
	for i, s := range starts {
		n := len(starts) - i
		rows[i] = entity.CohortRow{
			Label:            period.BucketLabel(s, g),
			Start:            s,
			Periods:          make([]entity.CohortPeriod, n),
			Revenue:          decimal.Zero,
			AvgLifetimeValue: decimal.Zero,
		}
		active[i] = make([]map[string]struct{}, n)
		for off := range rows[i].Periods {
			rows[i].Periods[off] = entity.CohortPeriod{Offset: off, Revenue: decimal.Zero}
			active[i][off] = make(map[string]struct{})
		}
	}

	for id, f := range first {
		c := period.BucketIndex(starts, f, g)
		rows[c].Size++
		for _, p := range purchases[id] {
			off := p.bucket - c
			rows[c].Periods[off].Revenue = rows[c].Periods[off].Revenue.Add(p.amount)
			rows[c].Revenue = rows[c].Revenue.Add(p.amount)
			active[c][off][id] = struct{}{}
		}
	}

	result := make([]entity.CohortRow, 0, len(rows))
	for c := range rows {
		if rows[c].Size == 0 {
			continue
		}
		for off := range rows[c].Periods {
			n := len(active[c][off])
			rows[c].Periods[off].Active = n
			rows[c].Periods[off].RetentionPct = pct(n, rows[c].Size)
		}
		rows[c].AvgLifetimeValue = safeDiv(rows[c].Revenue, decimal.NewFromInt(int64(rows[c].Size))).Round(2)
		result = append(result, rows[c])
	}
	return result
}
