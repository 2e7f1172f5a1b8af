// Package insight turns a dashboard into a compact summary for a text generator and
// parses the generated reply into structured recommendations.
package insight

import (
	"encoding/json"
	"fmt"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

const (
	maxTopProducts      = 10
	maxCriticalProducts = 10
)

// BuildRequest summarizes d into the groups the text generator is prompted with.
func BuildRequest(d *entity.Dashboard) entity.InsightRequest {
	req := entity.InsightRequest{
		Period: d.Period,
		Window: d.Window,
		Overview: entity.InsightOverview{
			GrossRevenue:  d.Financials.GrossRevenue,
			NetRevenue:    d.Financials.NetRevenue,
			TotalOrders:   d.Overview.TotalOrders,
			AvgOrderValue: d.Overview.AvgOrderValue,
			RevenueTrend:  d.RevenueTrend,
			OrdersTrend:   d.OrdersTrend,
		},
		Profitability: entity.InsightProfitability{
			GrossMargin: d.Financials.GrossMargin,
			NetMargin:   d.Financials.NetMargin,
			NetProfit:   d.Financials.NetProfit,
		},
		CashFlow: entity.InsightCashFlow{
			DSO:            d.CashFlow.DSO,
			Collected:      d.CashFlow.Collected,
			Outstanding:    d.CashFlow.Outstanding,
			CollectionRate: d.CashFlow.CollectionRate,
		},
		TopProducts: make([]entity.InsightProduct, 0, maxTopProducts),
		Customers: entity.InsightCustomers{
			RetentionRate: d.Retention.RetentionRate,
			ChurnRate:     d.Retention.ChurnRate,
			AtRiskCount:   d.Retention.AtRiskCount,
			Segments:      make([]entity.InsightSegment, 0, len(d.Segments.Segments)),
		},
		Inventory: entity.InsightInventory{
			Critical: []entity.InsightStock{},
		},
	}

	for i, p := range d.Products {
		if i == maxTopProducts {
			break
		}
		req.TopProducts = append(req.TopProducts, entity.InsightProduct{
			Name:    p.ProductName,
			Units:   p.Units,
			Revenue: p.Revenue,
			Trend:   p.Trend,
		})
	}

	for _, s := range d.Segments.Segments {
		req.Customers.Segments = append(req.Customers.Segments, entity.InsightSegment{
			Name:    s.Name,
			Count:   s.Count,
			Revenue: s.Revenue,
		})
	}

	// inventory is sorted most urgent first
	for _, p := range d.Inventory {
		if p.Priority != entity.StockPriorityHigh || len(req.Inventory.Critical) == maxCriticalProducts {
			break
		}
		req.Inventory.Critical = append(req.Inventory.Critical, entity.InsightStock{
			Name:              p.ProductName,
			CurrentStock:      p.CurrentStock,
			DaysUntilStockout: p.DaysUntilStockout,
			ReorderQuantity:   p.ReorderQuantity,
		})
	}
	return req
}

const systemPrompt = `You are a senior e-commerce analyst. You receive store metrics as JSON and reply with a
single JSON object and nothing else, using this shape:
{
  "executiveSummary": string,
  "keyFindings": [string],
  "salesAnalysis": string,
  "customerAnalysis": string,
  "financialAnalysis": string,
  "inventoryAnalysis": string,
  "recommendations": [
    {"priority": "high"|"medium"|"low", "title": string, "description": string,
     "expectedImpact": string, "category": string}
  ]
}
Money amounts are in the store currency. Trends are percent changes against the previous period.`

// Prompt renders req as the user message sent to the text generator.
func Prompt(req entity.InsightRequest) (string, error) {
	b, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", fmt.Errorf("can't marshal insight request: %w", err)
	}
	return "Analyze these store metrics and recommend actions:\n" + string(b), nil
}
