package analytics

import (
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

// DefaultCostRatios are the cost assumptions used when none are configured, in percent.
func DefaultCostRatios() entity.CostRatios {
	return entity.CostRatios{
		COGS:        40,
		Shipping:    8,
		PaymentFees: 3.5,
		Marketing:   10,
		Operations:  12,
		Discounts:   5,
	}
}

func ratioOf(base decimal.Decimal, percent float64) decimal.Decimal {
	return base.Mul(decimal.NewFromFloat(percent)).Div(hundred).Round(2)
}

// Waterfall derives the profit and loss walk from gross revenue. Discounts are taken
// from gross; cost of goods and every operating line are taken from net revenue.
func Waterfall(gross, refunds decimal.Decimal, ratios entity.CostRatios) entity.Financials {
	f := entity.Financials{
		GrossRevenue: gross,
		Refunds:      refunds,
		Discounts:    ratioOf(gross, ratios.Discounts),
	}
	f.NetRevenue = gross.Sub(refunds).Sub(f.Discounts)
	f.COGS = ratioOf(f.NetRevenue, ratios.COGS)
	f.GrossProfit = f.NetRevenue.Sub(f.COGS)

	opex := []struct {
		label string
		ratio float64
	}{
		{"Shipping", ratios.Shipping},
		{"Payment Fees", ratios.PaymentFees},
		{"Marketing", ratios.Marketing},
		{"Operations", ratios.Operations},
	}
	opexSteps := make([]entity.WaterfallStep, 0, len(opex))
	f.OperatingExpenses = decimal.Zero
	for _, line := range opex {
		amount := ratioOf(f.NetRevenue, line.ratio)
		f.OperatingExpenses = f.OperatingExpenses.Add(amount)
		opexSteps = append(opexSteps, step(line.label, entity.WaterfallDecrease, amount, f.NetRevenue))
	}
	f.NetProfit = f.GrossProfit.Sub(f.OperatingExpenses)
	f.GrossMargin = pctDec(f.GrossProfit, f.NetRevenue)
	f.NetMargin = pctDec(f.NetProfit, f.NetRevenue)

	f.Steps = []entity.WaterfallStep{
		step("Gross Revenue", entity.WaterfallTotal, f.GrossRevenue, f.NetRevenue),
		step("Refunds", entity.WaterfallDecrease, f.Refunds, f.NetRevenue),
		step("Discounts", entity.WaterfallDecrease, f.Discounts, f.NetRevenue),
		step("Net Revenue", entity.WaterfallTotal, f.NetRevenue, f.NetRevenue),
		step("COGS", entity.WaterfallDecrease, f.COGS, f.NetRevenue),
		step("Gross Profit", entity.WaterfallTotal, f.GrossProfit, f.NetRevenue),
	}
	f.Steps = append(f.Steps, opexSteps...)
	f.Steps = append(f.Steps, step("Net Profit", entity.WaterfallTotal, f.NetProfit, f.NetRevenue))
	return f
}

func step(label string, kind entity.WaterfallKind, amount, net decimal.Decimal) entity.WaterfallStep {
	return entity.WaterfallStep{
		Label:        label,
		Kind:         kind,
		Amount:       amount,
		PctOfRevenue: pctDec(amount, net),
	}
}

// FinancialsFromRecords runs the waterfall over the set. Refunded orders count towards
// gross revenue and are then taken back out as refunds.
func FinancialsFromRecords(rs *entity.RecordSet, ratios entity.CostRatios) entity.Financials {
	revenue, refunds := decimal.Zero, decimal.Zero
	for i := range rs.Orders {
		o := &rs.Orders[i]
		switch {
		case o.Status.IsCompleted():
			revenue = revenue.Add(o.Total)
		case o.Status == entity.OrderStatusRefunded:
			refunds = refunds.Add(o.Total)
		}
	}
	return Waterfall(revenue.Add(refunds), refunds, ratios)
}
