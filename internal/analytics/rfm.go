package analytics

import (
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

type segmentRule struct {
	name        entity.SegmentName
	description string
	match       func(recency, frequency int) bool
}

// segmentRules are evaluated top to bottom, the first match wins. The predicates
// overlap, so the order is part of the definition. Customers matching nothing,
// such as a single order older than 30 days, stay unclassified.
var segmentRules = []segmentRule{
	{
		name:        entity.SegmentChampions,
		description: "Bought recently and order often",
		match:       func(r, f int) bool { return r <= 30 && f >= 5 },
	},
	{
		name:        entity.SegmentLoyal,
		description: "Order regularly and are still active",
		match:       func(r, f int) bool { return r <= 60 && f >= 3 && f < 5 },
	},
	{
		name:        entity.SegmentPotentialLoyalist,
		description: "Recent customers with a second order",
		match:       func(r, f int) bool { return r <= 30 && f == 2 },
	},
	{
		name:        entity.SegmentNewCustomers,
		description: "Placed their first order in the last 30 days",
		match:       func(r, f int) bool { return f == 1 && r <= 30 },
	},
	{
		name:        entity.SegmentAtRisk,
		description: "Used to order often but have not returned in two months",
		match:       func(r, f int) bool { return r > 60 && r <= 120 && f >= 3 },
	},
	{
		name:        entity.SegmentLost,
		description: "No orders in over 120 days",
		match:       func(r, f int) bool { return r > 120 },
	},
}

// Classify returns the segment for the given recency and frequency, or an empty
// name when no rule matches.
func Classify(recency, frequency int) entity.SegmentName {
	for _, rule := range segmentRules {
		if rule.match(recency, frequency) {
			return rule.name
		}
	}
	return ""
}

// SegmentCustomers computes RFM records for every customer with an order in the set,
// regardless of status, and summarizes them per segment. Recency is measured from the
// window end. Names are taken from the customer profiles of the set when present.
func SegmentCustomers(rs *entity.RecordSet) entity.RFMResult {
	type acc struct {
		latest    time.Time
		frequency int
		monetary  decimal.Decimal
	}
	byCustomer := make(map[string]*acc)
	var customers []string
	for i := range rs.Orders {
		o := &rs.Orders[i]
		if !o.HasCustomer() {
			continue
		}
		id := o.CustomerID()
		a, ok := byCustomer[id]
		if !ok {
			a = &acc{monetary: decimal.Zero}
			byCustomer[id] = a
			customers = append(customers, id)
		}
		a.frequency++
		a.monetary = a.monetary.Add(o.Total)
		if o.CreatedAt.After(a.latest) {
			a.latest = o.CreatedAt
		}
	}

	names := make(map[string]string, len(rs.Customers))
	for i := range rs.Customers {
		names[rs.Customers[i].ID] = rs.Customers[i].DisplayName()
	}

	res := entity.RFMResult{
		Segments:  []entity.SegmentSummary{},
		Customers: make([]entity.RFMRecord, 0, len(customers)),
	}
	summaries := make(map[entity.SegmentName]*entity.SegmentSummary)
	for _, id := range customers {
		a := byCustomer[id]
		rec := entity.RFMRecord{
			CustomerID: id,
			Name:       names[id],
			Recency:    wholeDays(rs.Window.End, a.latest),
			Frequency:  a.frequency,
			Monetary:   a.monetary,
		}
		rec.Segment = Classify(rec.Recency, rec.Frequency)
		res.Customers = append(res.Customers, rec)

		if rec.Segment == "" {
			res.Unclassified++
			continue
		}
		s, ok := summaries[rec.Segment]
		if !ok {
			s = &entity.SegmentSummary{Name: rec.Segment, Revenue: decimal.Zero}
			summaries[rec.Segment] = s
		}
		s.Count++
		s.Revenue = s.Revenue.Add(rec.Monetary)
	}

	for _, rule := range segmentRules {
		s, ok := summaries[rule.name]
		if !ok {
			continue
		}
		s.Description = rule.description
		s.AvgSpend = safeDiv(s.Revenue, decimal.NewFromInt(int64(s.Count))).Round(2)
		res.Segments = append(res.Segments, *s)
	}
	return res
}
