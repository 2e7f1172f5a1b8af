package analytics

import (
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

// Overview sums completed-state orders of the set. TopProduct is the product with
// the most units over those orders; on equal units the one seen first in item order wins.
func Overview(rs *entity.RecordSet) entity.Overview {
	ov := entity.Overview{
		TotalRevenue:   decimal.Zero,
		AvgOrderValue:  decimal.Zero,
		ItemsPerOrder:  decimal.Zero,
		OrdersByStatus: ordersByStatus(rs.Orders),
	}

	completed := make(map[int]struct{})
	for i := range rs.Orders {
		o := &rs.Orders[i]
		if !o.Status.IsCompleted() {
			continue
		}
		completed[o.ID] = struct{}{}
		ov.TotalRevenue = ov.TotalRevenue.Add(o.Total)
		ov.TotalOrders++
	}
	if ov.TotalOrders == 0 {
		return ov
	}
	orders := decimal.NewFromInt(int64(ov.TotalOrders))
	ov.AvgOrderValue = safeDiv(ov.TotalRevenue, orders).Round(2)

	products := make(map[int]*entity.ProductMetric)
	var seen []int
	units := 0
	for i := range rs.Items {
		it := &rs.Items[i]
		if _, ok := completed[it.OrderID]; !ok {
			continue
		}
		units += it.Quantity
		pm, ok := products[it.ProductID]
		if !ok {
			pm = &entity.ProductMetric{
				ProductId:   it.ProductID,
				ProductName: it.ProductName,
				Category:    it.Category,
				Brand:       it.Brand,
				Revenue:     decimal.Zero,
			}
			products[it.ProductID] = pm
			seen = append(seen, it.ProductID)
		}
		pm.Units += it.Quantity
		pm.Revenue = pm.Revenue.Add(it.LineTotal())
	}
	ov.ItemsPerOrder = safeDiv(decimal.NewFromInt(int64(units)), orders).Round(2)

	for _, id := range seen {
		pm := products[id]
		if ov.TopProduct == nil || pm.Units > ov.TopProduct.Units {
			top := *pm
			ov.TopProduct = &top
		}
	}
	return ov
}

// ordersByStatus counts every status present, in canonical status order.
func ordersByStatus(orders []entity.Order) []entity.StatusCount {
	counts := make(map[entity.OrderStatus]int)
	for i := range orders {
		counts[orders[i].Status]++
	}
	result := make([]entity.StatusCount, 0, len(counts))
	for _, st := range entity.OrderStatuses {
		if n := counts[st]; n > 0 {
			result = append(result, entity.StatusCount{Status: st, Count: n})
		}
	}
	return result
}
