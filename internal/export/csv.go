// Package export renders dashboards as CSV for spreadsheet import.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const dateLayout = "2006-01-02"

var titleCaser = cases.Title(language.English)

// Filename returns the attachment name for the CSV export of d.
func Filename(d *entity.Dashboard) string {
	return fmt.Sprintf("dashboard-%s-%s.csv", d.Window.Start.Format(dateLayout), lastDay(d.Window).Format(dateLayout))
}

// WriteCSV writes d as sectioned CSV. Free text is always quoted, numbers never are.
func WriteCSV(w io.Writer, d *entity.Dashboard) error {
	cw := &csvWriter{w: bufio.NewWriter(w)}

	writeOverview(cw, d)
	writeProducts(cw, d.Products)
	writeTrend(cw, d.SalesTrend)
	writeCategories(cw, d.Categories)
	writeSegments(cw, d.Segments)
	writeRetention(cw, d.Retention)
	writeInventory(cw, d.Inventory)
	writeFinancials(cw, d.Financials)

	if cw.err != nil {
		return fmt.Errorf("can't write csv: %w", cw.err)
	}
	if err := cw.w.Flush(); err != nil {
		return fmt.Errorf("can't flush csv: %w", err)
	}
	return nil
}

func writeOverview(cw *csvWriter, d *entity.Dashboard) {
	cw.section("SALES OVERVIEW", "Metric", "Value")
	cw.row(text("Period"), text(label(string(d.Period))))
	cw.row(text("Start Date"), text(d.Window.Start.Format(dateLayout)))
	cw.row(text("End Date"), text(lastDay(d.Window).Format(dateLayout)))
	cw.row(text("Total Revenue"), money(d.Overview.TotalRevenue))
	cw.row(text("Total Orders"), integer(d.Overview.TotalOrders))
	cw.row(text("Average Order Value"), money(d.Overview.AvgOrderValue))
	cw.row(text("Items Per Order"), money(d.Overview.ItemsPerOrder))
	cw.row(text("Revenue Trend %"), float(d.RevenueTrend))
	cw.row(text("Orders Trend %"), float(d.OrdersTrend))
	if tp := d.Overview.TopProduct; tp != nil {
		cw.row(text("Top Product"), text(tp.ProductName))
	}
	for _, sc := range d.Overview.OrdersByStatus {
		cw.row(text("Orders "+label(string(sc.Status))), integer(sc.Count))
	}
}

func writeProducts(cw *csvWriter, products []entity.ProductPerformance) {
	cw.section("PRODUCT PERFORMANCE", "Product", "Category", "Units", "Revenue", "Previous Units", "Previous Revenue", "Trend %")
	for _, p := range products {
		cw.row(
			text(p.ProductName),
			text(p.Category),
			integer(p.Units),
			money(p.Revenue),
			integer(p.PreviousUnits),
			money(p.PreviousRevenue),
			float(p.Trend),
		)
	}
}

func writeTrend(cw *csvWriter, buckets []entity.TrendBucket) {
	cw.section("SALES TREND", "Period", "Revenue", "Orders")
	for _, b := range buckets {
		cw.row(text(b.Label), money(b.Revenue), integer(b.OrderCount))
	}
}

func writeCategories(cw *csvWriter, categories []entity.CategoryMetric) {
	cw.section("CATEGORIES", "Category", "Revenue", "Units", "Orders", "Share %")
	for _, c := range categories {
		cw.row(text(c.Name), money(c.Revenue), integer(c.Units), integer(c.OrderCount), float(c.SharePct))
	}
}

func writeSegments(cw *csvWriter, res entity.RFMResult) {
	cw.section("CUSTOMER SEGMENTS", "Segment", "Customers", "Revenue", "Average Spend", "Description")
	for _, s := range res.Segments {
		cw.row(text(string(s.Name)), integer(s.Count), money(s.Revenue), money(s.AvgSpend), text(s.Description))
	}
	if res.Unclassified > 0 {
		cw.row(text("Unclassified"), integer(res.Unclassified), "", "", "")
	}
}

func writeRetention(cw *csvWriter, r entity.RetentionStats) {
	cw.section("RETENTION", "Metric", "Value")
	cw.row(text("Customers"), integer(r.Customers))
	cw.row(text("Retention Rate %"), float(r.RetentionRate))
	cw.row(text("Churn Rate %"), float(r.ChurnRate))
	cw.row(text("At Risk Customers"), integer(r.AtRiskCount))
	cw.row(text("30 Day Retention %"), float(r.Retention30))
	cw.row(text("60 Day Retention %"), float(r.Retention60))
	cw.row(text("90 Day Retention %"), float(r.Retention90))
}

func writeInventory(cw *csvWriter, inventory []entity.StockProjection) {
	cw.section("INVENTORY", "Product", "Category", "Stock", "Units Sold", "Avg Daily Sales", "Days Until Stockout", "Priority", "Reorder Quantity")
	for _, p := range inventory {
		cw.row(
			text(p.ProductName),
			text(p.Category),
			integer(p.CurrentStock),
			integer(p.UnitsSold),
			float(p.AvgDailySales),
			integer(p.DaysUntilStockout),
			text(string(p.Priority)),
			integer(p.ReorderQuantity),
		)
	}
}

func writeFinancials(cw *csvWriter, f entity.Financials) {
	cw.section("FINANCIALS", "Line", "Amount", "% Of Revenue")
	for _, s := range f.Steps {
		cw.row(text(s.Label), money(s.Amount), float(s.PctOfRevenue))
	}
	cw.row(text("Gross Margin %"), float(f.GrossMargin), "")
	cw.row(text("Net Margin %"), float(f.NetMargin), "")
}

type csvWriter struct {
	w        *bufio.Writer
	err      error
	sections int
}

// section starts a titled block, separated from the previous one by a blank line.
func (cw *csvWriter) section(title string, header ...string) {
	if cw.sections > 0 {
		cw.line("")
	}
	cw.sections++
	cw.line(title)
	cw.line(strings.Join(header, ","))
}

func (cw *csvWriter) row(fields ...string) {
	cw.line(strings.Join(fields, ","))
}

func (cw *csvWriter) line(s string) {
	if cw.err != nil {
		return
	}
	_, cw.err = cw.w.WriteString(s + "\n")
}

func text(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func integer(n int) string {
	return strconv.Itoa(n)
}

func float(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// label turns identifiers like ready_for_pickup into Ready For Pickup.
func label(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// lastDay is the last instant inside the half-open window.
func lastDay(w entity.PeriodWindow) time.Time {
	if w.End.IsZero() {
		return w.End
	}
	return w.End.Add(-time.Nanosecond)
}
