package analytics

import (
	"sort"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	uncategorized = "Uncategorized"
	unbranded     = "Unbranded"
)

type productTotals struct {
	metric entity.ProductMetric
	orders map[int]struct{}
}

// productSales totals completed-state item lines per product, keeping first-seen order.
func productSales(rs *entity.RecordSet) ([]int, map[int]*productTotals) {
	byID := rs.OrdersByID()
	totals := make(map[int]*productTotals)
	var seen []int
	for i := range rs.Items {
		it := &rs.Items[i]
		o, ok := byID[it.OrderID]
		if !ok || !o.Status.IsCompleted() {
			continue
		}
		pt, ok := totals[it.ProductID]
		if !ok {
			pt = &productTotals{
				metric: entity.ProductMetric{
					ProductId:   it.ProductID,
					ProductName: it.ProductName,
					Category:    it.Category,
					Brand:       it.Brand,
					Revenue:     decimal.Zero,
				},
				orders: make(map[int]struct{}),
			}
			totals[it.ProductID] = pt
			seen = append(seen, it.ProductID)
		}
		pt.metric.Units += it.Quantity
		pt.metric.Revenue = pt.metric.Revenue.Add(it.LineTotal())
		pt.orders[it.OrderID] = struct{}{}
	}
	return seen, totals
}

// ProductPerformance compares product sales in cur against prev, sorted by revenue
// descending. A limit of zero or less returns every product.
func ProductPerformance(cur, prev *entity.RecordSet, limit int) []entity.ProductPerformance {
	ids, curTotals := productSales(cur)
	_, prevTotals := productSales(prev)

	result := make([]entity.ProductPerformance, 0, len(ids))
	for _, id := range ids {
		m := curTotals[id].metric
		pp := entity.ProductPerformance{
			ProductId:       m.ProductId,
			ProductName:     m.ProductName,
			Category:        m.Category,
			Units:           m.Units,
			Revenue:         m.Revenue,
			PreviousRevenue: decimal.Zero,
		}
		if p, ok := prevTotals[id]; ok {
			pp.PreviousUnits = p.metric.Units
			pp.PreviousRevenue = p.metric.Revenue
		}
		pp.Trend = TrendPctInt(pp.Units, pp.PreviousUnits)
		result = append(result, pp)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue.GreaterThan(result[j].Revenue)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// Categories groups completed-state sales by product category.
func Categories(rs *entity.RecordSet) []entity.CategoryMetric {
	return groupSales(rs, func(m entity.ProductMetric) string {
		if m.Category == "" {
			return uncategorized
		}
		return m.Category
	})
}

// Brands groups completed-state sales by brand.
func Brands(rs *entity.RecordSet) []entity.CategoryMetric {
	return groupSales(rs, func(m entity.ProductMetric) string {
		if m.Brand == "" {
			return unbranded
		}
		return m.Brand
	})
}

func groupSales(rs *entity.RecordSet, key func(entity.ProductMetric) string) []entity.CategoryMetric {
	ids, totals := productSales(rs)

	groups := make(map[string]*entity.CategoryMetric)
	groupOrders := make(map[string]map[int]struct{})
	var names []string
	total := decimal.Zero
	for _, id := range ids {
		pt := totals[id]
		name := key(pt.metric)
		g, ok := groups[name]
		if !ok {
			g = &entity.CategoryMetric{Name: name, Revenue: decimal.Zero}
			groups[name] = g
			groupOrders[name] = make(map[int]struct{})
			names = append(names, name)
		}
		g.Revenue = g.Revenue.Add(pt.metric.Revenue)
		g.Units += pt.metric.Units
		for oid := range pt.orders {
			groupOrders[name][oid] = struct{}{}
		}
		total = total.Add(pt.metric.Revenue)
	}

	result := make([]entity.CategoryMetric, 0, len(names))
	for _, name := range names {
		g := groups[name]
		g.OrderCount = len(groupOrders[name])
		g.SharePct = pctDec(g.Revenue, total)
		result = append(result, *g)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue.GreaterThan(result[j].Revenue)
	})
	return result
}
