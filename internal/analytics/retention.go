package analytics

import (
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

const (
	retainedDays = 60
	churnedDays  = 120
)

// Retention measures how recently customers with completed-state orders bought,
// relative to asOf.
func Retention(rs *entity.RecordSet, asOf time.Time) entity.RetentionStats {
	latest := make(map[string]time.Time)
	for i := range rs.Orders {
		o := &rs.Orders[i]
		if !o.Status.IsCompleted() || !o.HasCustomer() {
			continue
		}
		if cur, ok := latest[o.CustomerID()]; !ok || o.CreatedAt.After(cur) {
			latest[o.CustomerID()] = o.CreatedAt
		}
	}

	total := len(latest)
	var within30, within60, within90, churned, atRisk int
	for _, t := range latest {
		d := wholeDays(asOf, t)
		if d <= 30 {
			within30++
		}
		if d <= retainedDays {
			within60++
		}
		if d <= 90 {
			within90++
		}
		switch {
		case d > churnedDays:
			churned++
		case d > retainedDays:
			atRisk++
		}
	}

	return entity.RetentionStats{
		Customers:     total,
		RetentionRate: pct(within60, total),
		ChurnRate:     pct(churned, total),
		AtRiskCount:   atRisk,
		Retention30:   pct(within30, total),
		Retention60:   pct(within60, total),
		Retention90:   pct(within90, total),
	}
}
