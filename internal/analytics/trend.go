package analytics

import (
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/jekabolt/grbpwr-dashboard/internal/period"
	"github.com/shopspring/decimal"
)

// SalesTrend buckets completed-state orders of the window by g, cutting calendar
// boundaries in loc. Every bucket the window touches is present, empty ones with
// zero revenue.
func SalesTrend(rs *entity.RecordSet, g entity.MetricsGranularity, loc *time.Location) []entity.TrendBucket {
	starts := period.Buckets(rs.Window, g, loc)
	result := make([]entity.TrendBucket, len(starts))
	for i, s := range starts {
		result[i] = entity.TrendBucket{
			Label:   period.BucketLabel(s, g),
			Start:   s,
			Revenue: decimal.Zero,
		}
	}

	for i := range rs.Orders {
		o := &rs.Orders[i]
		if !o.Status.IsCompleted() || !rs.Window.Contains(o.CreatedAt) {
			continue
		}
		idx := period.BucketIndex(starts, o.CreatedAt, g)
		if idx < 0 {
			continue
		}
		result[idx].Revenue = result[idx].Revenue.Add(o.Total)
		result[idx].OrderCount++
	}
	return result
}
