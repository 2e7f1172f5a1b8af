package entity

import "time"

// DefaultView is used when a request does not name a dashboard view.
const DefaultView = "overview"

// ReportQuery selects the window a dashboard is built for.
type ReportQuery struct {
	// View groups requests that supersede each other, e.g. one browser tab.
	View   string
	Period Period
	Start  *time.Time
	End    *time.Time
	// TopProducts caps the product performance table, 0 means no cap.
	TopProducts int
}

// Record source names reported in Dashboard.Warnings.
const (
	SourceOrders    = "orders"
	SourceItems     = "order_items"
	SourcePayments  = "payments"
	SourceCustomers = "customers"
	SourceStock     = "stock"
)

// MonthSummary is one row of the month-by-month history.
type MonthSummary struct {
	Month    string       `json:"month"`
	Window   PeriodWindow `json:"window"`
	Overview Overview     `json:"overview"`
	Warnings []string     `json:"warnings,omitempty"`
}
