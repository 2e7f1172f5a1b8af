package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dashboard contains all computed metrics for a reporting period.
type Dashboard struct {
	RequestID      string             `json:"requestId"`
	Period         Period             `json:"period"`
	Window         PeriodWindow       `json:"window"`
	PreviousWindow PeriodWindow       `json:"previousWindow"`
	Granularity    MetricsGranularity `json:"granularity"`
	GeneratedAt    time.Time          `json:"generatedAt"`

	// Core sales
	Overview         Overview `json:"overview"`
	PreviousOverview Overview `json:"previousOverview"`
	RevenueTrend     float64  `json:"revenueTrend"`
	OrdersTrend      float64  `json:"ordersTrend"`

	// Products
	Products   []ProductPerformance `json:"products"`
	Categories []CategoryMetric     `json:"categories"`
	Brands     []CategoryMetric     `json:"brands"`
	Inventory  []StockProjection    `json:"inventory"`

	// Time series for charts
	SalesTrend []TrendBucket `json:"salesTrend"`

	// Customers
	Segments  RFMResult      `json:"segments"`
	Retention RetentionStats `json:"retention"`
	Cohorts   []CohortRow    `json:"cohorts"`

	// Finance
	Financials Financials `json:"financials"`
	CashFlow   CashFlow   `json:"cashFlow"`

	// Warnings lists record sources that failed to load and were treated as empty.
	Warnings []string `json:"warnings,omitempty"`
}

type Overview struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalOrders    int             `json:"totalOrders"`
	AvgOrderValue  decimal.Decimal `json:"avgOrderValue"`
	ItemsPerOrder  decimal.Decimal `json:"itemsPerOrder"`
	TopProduct     *ProductMetric  `json:"topProduct,omitempty"`
	OrdersByStatus []StatusCount   `json:"ordersByStatus"`
}

type ProductMetric struct {
	ProductId   int             `json:"productId"`
	ProductName string          `json:"productName"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Units       int             `json:"units"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// ProductPerformance compares a product against the previous period.
type ProductPerformance struct {
	ProductId       int             `json:"productId"`
	ProductName     string          `json:"productName"`
	Category        string          `json:"category"`
	Units           int             `json:"units"`
	Revenue         decimal.Decimal `json:"revenue"`
	PreviousUnits   int             `json:"previousUnits"`
	PreviousRevenue decimal.Decimal `json:"previousRevenue"`
	Trend           float64         `json:"trend"`
}

type StatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int         `json:"count"`
}

type TrendBucket struct {
	Label      string          `json:"periodLabel"`
	Start      time.Time       `json:"start"`
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int             `json:"orderCount"`
}

// CategoryMetric aggregates sales by category or brand.
type CategoryMetric struct {
	Name       string          `json:"name"`
	Revenue    decimal.Decimal `json:"revenue"`
	Units      int             `json:"units"`
	OrderCount int             `json:"orderCount"`
	SharePct   float64         `json:"sharePct"`
}

type StockPriority string

const (
	StockPriorityHigh   StockPriority = "High"
	StockPriorityMedium StockPriority = "Medium"
	StockPriorityLow    StockPriority = "Low"
)

// NoStockoutDays marks a product with no projected stockout.
const NoStockoutDays = 999

type StockProjection struct {
	ProductId         int           `json:"productId"`
	ProductName       string        `json:"productName"`
	Category          string        `json:"category"`
	CurrentStock      int           `json:"currentStock"`
	UnitsSold         int           `json:"unitsSold"`
	AvgDailySales     float64       `json:"avgDailySales"`
	DaysUntilStockout int           `json:"daysUntilStockout"`
	Priority          StockPriority `json:"priority"`
	ReorderQuantity   int           `json:"reorderQuantity"`
}

type SegmentName string

const (
	SegmentChampions         SegmentName = "Champions"
	SegmentLoyal             SegmentName = "Loyal"
	SegmentPotentialLoyalist SegmentName = "Potential Loyalist"
	SegmentNewCustomers      SegmentName = "New Customers"
	SegmentAtRisk            SegmentName = "At Risk"
	SegmentLost              SegmentName = "Lost"
)

type RFMRecord struct {
	CustomerID string          `json:"customerId"`
	Name       string          `json:"name,omitempty"`
	Recency    int             `json:"recency"`
	Frequency  int             `json:"frequency"`
	Monetary   decimal.Decimal `json:"monetary"`
	// Segment is empty when no rule matched.
	Segment SegmentName `json:"segment,omitempty"`
}

type SegmentSummary struct {
	Name        SegmentName     `json:"name"`
	Count       int             `json:"count"`
	Revenue     decimal.Decimal `json:"revenue"`
	AvgSpend    decimal.Decimal `json:"avgSpend"`
	Description string          `json:"description"`
}

type RFMResult struct {
	Segments     []SegmentSummary `json:"segments"`
	Customers    []RFMRecord      `json:"customers"`
	Unclassified int              `json:"unclassified"`
}

type RetentionStats struct {
	Customers     int     `json:"customers"`
	RetentionRate float64 `json:"retentionRate"`
	ChurnRate     float64 `json:"churnRate"`
	AtRiskCount   int     `json:"atRiskCount"`
	Retention30   float64 `json:"retention30"`
	Retention60   float64 `json:"retention60"`
	Retention90   float64 `json:"retention90"`
}

type CohortRow struct {
	Label            string          `json:"cohort"`
	Start            time.Time       `json:"start"`
	Size             int             `json:"size"`
	Periods          []CohortPeriod  `json:"periods"`
	Revenue          decimal.Decimal `json:"revenue"`
	AvgLifetimeValue decimal.Decimal `json:"avgLifetimeValue"`
}

type CohortPeriod struct {
	Offset       int             `json:"offset"`
	Active       int             `json:"active"`
	RetentionPct float64         `json:"retentionPct"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// CostRatios are percentages of revenue used by the financial waterfall.
type CostRatios struct {
	COGS        float64 `mapstructure:"cogs" json:"cogs"`
	Shipping    float64 `mapstructure:"shipping" json:"shipping"`
	PaymentFees float64 `mapstructure:"payment_fees" json:"paymentFees"`
	Marketing   float64 `mapstructure:"marketing" json:"marketing"`
	Operations  float64 `mapstructure:"operations" json:"operations"`
	Discounts   float64 `mapstructure:"discounts" json:"discounts"`
}

type WaterfallKind string

const (
	WaterfallTotal    WaterfallKind = "total"
	WaterfallDecrease WaterfallKind = "decrease"
)

type WaterfallStep struct {
	Label        string          `json:"label"`
	Kind         WaterfallKind   `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	PctOfRevenue float64         `json:"pctOfRevenue"`
}

type Financials struct {
	GrossRevenue      decimal.Decimal `json:"grossRevenue"`
	Refunds           decimal.Decimal `json:"refunds"`
	Discounts         decimal.Decimal `json:"discounts"`
	NetRevenue        decimal.Decimal `json:"netRevenue"`
	COGS              decimal.Decimal `json:"cogs"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	NetProfit         decimal.Decimal `json:"netProfit"`
	GrossMargin       float64         `json:"grossMargin"`
	NetMargin         float64         `json:"netMargin"`
	Steps             []WaterfallStep `json:"steps"`
}

// PaymentMethodMetric aggregates collected amounts by payment method (card, gcash, etc.)
type PaymentMethodMetric struct {
	Method PaymentMethod   `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type CashFlow struct {
	Collected      decimal.Decimal       `json:"collected"`
	Outstanding    decimal.Decimal       `json:"outstanding"`
	Failed         decimal.Decimal       `json:"failed"`
	CollectionRate float64               `json:"collectionRate"`
	DSO            float64               `json:"dso"`
	ByMethod       []PaymentMethodMetric `json:"byMethod"`
}
