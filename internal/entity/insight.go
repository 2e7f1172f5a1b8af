package entity

import (
	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

// InsightRequest is the compact summary sent to the text generator.
type InsightRequest struct {
	Period        Period               `json:"period"`
	Window        PeriodWindow         `json:"window"`
	Overview      InsightOverview      `json:"overview"`
	Profitability InsightProfitability `json:"profitability"`
	CashFlow      InsightCashFlow      `json:"cashFlow"`
	TopProducts   []InsightProduct     `json:"topProducts"`
	Customers     InsightCustomers     `json:"customers"`
	Inventory     InsightInventory     `json:"inventory"`
}

type InsightOverview struct {
	GrossRevenue  decimal.Decimal `json:"grossRevenue"`
	NetRevenue    decimal.Decimal `json:"netRevenue"`
	TotalOrders   int             `json:"totalOrders"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
	RevenueTrend  float64         `json:"revenueTrend"`
	OrdersTrend   float64         `json:"ordersTrend"`
}

type InsightProfitability struct {
	GrossMargin float64         `json:"grossMargin"`
	NetMargin   float64         `json:"netMargin"`
	NetProfit   decimal.Decimal `json:"netProfit"`
}

type InsightCashFlow struct {
	DSO            float64         `json:"dso"`
	Collected      decimal.Decimal `json:"collected"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	CollectionRate float64         `json:"collectionRate"`
}

type InsightProduct struct {
	Name    string          `json:"name"`
	Units   int             `json:"units"`
	Revenue decimal.Decimal `json:"revenue"`
	Trend   float64         `json:"trend"`
}

type InsightCustomers struct {
	RetentionRate float64          `json:"retentionRate"`
	ChurnRate     float64          `json:"churnRate"`
	AtRiskCount   int              `json:"atRiskCount"`
	Segments      []InsightSegment `json:"segments"`
}

type InsightSegment struct {
	Name    SegmentName     `json:"name"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

type InsightInventory struct {
	Critical []InsightStock `json:"critical"`
}

type InsightStock struct {
	Name              string `json:"name"`
	CurrentStock      int    `json:"currentStock"`
	DaysUntilStockout int    `json:"daysUntilStockout"`
	ReorderQuantity   int    `json:"reorderQuantity"`
}

// Recommendation is the structured reply of the text generator.
type Recommendation struct {
	ExecutiveSummary  string               `json:"executiveSummary"`
	KeyFindings       []string             `json:"keyFindings"`
	SalesAnalysis     string               `json:"salesAnalysis,omitempty"`
	CustomerAnalysis  string               `json:"customerAnalysis,omitempty"`
	FinancialAnalysis string               `json:"financialAnalysis,omitempty"`
	InventoryAnalysis string               `json:"inventoryAnalysis,omitempty"`
	Recommendations   []RecommendationItem `json:"recommendations"`
	// Degraded is set when the reply could not be parsed and ExecutiveSummary holds the raw text.
	Degraded bool `json:"degraded"`
}

type RecommendationItem struct {
	Priority       string `json:"priority" valid:"in(high|medium|low),required"`
	Title          string `json:"title" valid:"required"`
	Description    string `json:"description" valid:"-"`
	ExpectedImpact string `json:"expectedImpact" valid:"-"`
	Category       string `json:"category" valid:"-"`
}

// Validate checks the priority and title of a recommendation item.
func (ri *RecommendationItem) Validate() error {
	_, err := govalidator.ValidateStruct(ri)
	return err
}
