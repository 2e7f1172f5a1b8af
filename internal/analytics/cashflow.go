package analytics

import (
	"sort"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

// CashFlow summarizes payments of the set. DSO is the mean number of days between
// order creation and collection over collected payments.
func CashFlow(rs *entity.RecordSet) entity.CashFlow {
	cf := entity.CashFlow{
		Collected:   decimal.Zero,
		Outstanding: decimal.Zero,
		Failed:      decimal.Zero,
		ByMethod:    []entity.PaymentMethodMetric{},
	}

	byID := rs.OrdersByID()
	methods := make(map[entity.PaymentMethod]*entity.PaymentMethodMetric)
	var methodOrder []entity.PaymentMethod
	var collectDays float64
	var collectedCount int
	for i := range rs.Payments {
		p := &rs.Payments[i]
		switch {
		case p.IsCollected():
			cf.Collected = cf.Collected.Add(p.Amount)
			m, ok := methods[p.Method]
			if !ok {
				m = &entity.PaymentMethodMetric{Method: p.Method, Amount: decimal.Zero}
				methods[p.Method] = m
				methodOrder = append(methodOrder, p.Method)
			}
			m.Amount = m.Amount.Add(p.Amount)
			m.Count++
			if o, ok := byID[p.OrderID]; ok {
				collectDays += p.PaidAt.Sub(o.CreatedAt).Hours() / 24
				collectedCount++
			}
		case p.Status == entity.PaymentStatusPending:
			cf.Outstanding = cf.Outstanding.Add(p.Amount)
		case p.Status == entity.PaymentStatusFailed:
			cf.Failed = cf.Failed.Add(p.Amount)
		}
	}

	cf.CollectionRate = pctDec(cf.Collected, cf.Collected.Add(cf.Outstanding).Add(cf.Failed))
	if collectedCount > 0 {
		dso := collectDays / float64(collectedCount)
		if dso < 0 {
			dso = 0
		}
		cf.DSO = round1(dso)
	}

	for _, m := range methodOrder {
		cf.ByMethod = append(cf.ByMethod, *methods[m])
	}
	sort.SliceStable(cf.ByMethod, func(i, j int) bool {
		return cf.ByMethod[i].Amount.GreaterThan(cf.ByMethod[j].Amount)
	})
	return cf
}
