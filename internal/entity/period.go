package entity

import (
	"math"
	"time"
)

// Period is the symbolic reporting period selected on the dashboard.
type Period string

const (
	PeriodDay    Period = "day"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodYear   Period = "year"
	PeriodCustom Period = "custom"
)

// MetricsGranularity controls time bucket size for time series (day, week, month).
type MetricsGranularity int

const (
	MetricsGranularityDay   MetricsGranularity = 1
	MetricsGranularityWeek  MetricsGranularity = 2
	MetricsGranularityMonth MetricsGranularity = 3
)

func (g MetricsGranularity) String() string {
	switch g {
	case MetricsGranularityWeek:
		return "week"
	case MetricsGranularityMonth:
		return "month"
	default:
		return "day"
	}
}

func (g MetricsGranularity) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// PeriodWindow is a half-open interval [Start, End).
type PeriodWindow struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

func (w PeriodWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether t falls inside [Start, End).
func (w PeriodWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Days returns the number of calendar days the window spans, rounded up, never less than 1.
func (w PeriodWindow) Days() int {
	d := int(math.Ceil(w.Duration().Hours() / 24))
	if d < 1 {
		return 1
	}
	return d
}

// RecordSet is everything fetched for one window. Aggregators only read it.
type RecordSet struct {
	Window    PeriodWindow
	Orders    []Order
	Items     []OrderItem
	Payments  []Payment
	Customers []Customer
	Stock     []StockLevel
}

// OrdersByID indexes orders of the set by id.
func (rs *RecordSet) OrdersByID() map[int]*Order {
	m := make(map[int]*Order, len(rs.Orders))
	for i := range rs.Orders {
		m[rs.Orders[i].ID] = &rs.Orders[i]
	}
	return m
}
