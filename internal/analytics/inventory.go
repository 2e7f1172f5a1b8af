package analytics

import (
	"math"
	"sort"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

const (
	highPriorityDays   = 7
	mediumPriorityDays = 14
	reorderSupplyDays  = 30
)

// ProjectStockouts projects days until stockout for every product with a stock level,
// using units sold by sold-status orders of the window. Most urgent first.
func ProjectStockouts(rs *entity.RecordSet) []entity.StockProjection {
	byID := rs.OrdersByID()
	sold := make(map[int]int)
	for i := range rs.Items {
		it := &rs.Items[i]
		o, ok := byID[it.OrderID]
		if !ok || !o.Status.IsSold() {
			continue
		}
		sold[it.ProductID] += it.Quantity
	}

	days := float64(rs.Window.Days())
	result := make([]entity.StockProjection, 0, len(rs.Stock))
	for _, sl := range rs.Stock {
		units := sold[sl.ProductID]
		avg := float64(units) / days
		p := entity.StockProjection{
			ProductId:         sl.ProductID,
			ProductName:       sl.ProductName,
			Category:          sl.Category,
			CurrentStock:      sl.CurrentStock,
			UnitsSold:         units,
			AvgDailySales:     math.Round(avg*100) / 100,
			DaysUntilStockout: daysUntilStockout(sl.CurrentStock, avg),
			ReorderQuantity:   int(math.Ceil(avg * reorderSupplyDays)),
		}
		p.Priority = stockPriority(p.DaysUntilStockout)
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DaysUntilStockout < result[j].DaysUntilStockout
	})
	return result
}

func daysUntilStockout(stock int, avg float64) int {
	switch {
	case stock <= 0:
		return 0
	case avg > 0:
		d := int(math.Floor(float64(stock) / avg))
		if d > entity.NoStockoutDays {
			return entity.NoStockoutDays
		}
		return d
	default:
		return entity.NoStockoutDays
	}
}

func stockPriority(days int) entity.StockPriority {
	switch {
	case days < highPriorityDays:
		return entity.StockPriorityHigh
	case days < mediumPriorityDays:
		return entity.StockPriorityMedium
	default:
		return entity.StockPriorityLow
	}
}
