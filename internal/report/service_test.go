package report

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency/mocks"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/jekabolt/grbpwr-dashboard/internal/metrics"
	"github.com/jekabolt/grbpwr-dashboard/internal/period"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testStart = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	testNow   = func() time.Time { return testEnd }
)

func newTestService(t *testing.T, f *mocks.Fetcher) *Service {
	t.Helper()
	s, err := New(DefaultConfig(), f, metrics.NewWithRegistry(prometheus.NewRegistry()), testNow)
	require.NoError(t, err)
	return s
}

func customQuery(view string) entity.ReportQuery {
	start, end := testStart, testEnd
	return entity.ReportQuery{View: view, Period: entity.PeriodCustom, Start: &start, End: &end}
}

func testOrder(id int, st entity.OrderStatus, total int64, created time.Time) entity.Order {
	user := "u-1"
	return entity.Order{ID: id, Status: st, Total: decimal.NewFromInt(total), CreatedAt: created, UserID: &user}
}

func expectStatic(f *mocks.Fetcher) {
	f.EXPECT().OrderItems(mock.Anything, mock.Anything).Return([]entity.OrderItem{}, nil)
	f.EXPECT().Customers(mock.Anything).Return([]entity.Customer{{ID: "u-1", FullName: "Ana Cruz"}}, nil)
	f.EXPECT().StockLevels(mock.Anything).Return([]entity.StockLevel{{ProductID: 1, CurrentStock: 0}}, nil)
}

func TestBuild(t *testing.T) {
	f := mocks.NewFetcher(t)
	d0 := testStart.Add(10 * time.Hour)

	f.EXPECT().Orders(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, w entity.PeriodWindow) ([]entity.Order, error) {
		if w.Start.Equal(testStart) {
			return []entity.Order{
				testOrder(1, entity.OrderStatusCompleted, 1000, d0),
				testOrder(2, entity.OrderStatusCompleted, 2000, d0.AddDate(0, 0, 1)),
				testOrder(3, entity.OrderStatusCancelled, 500, d0),
			}, nil
		}
		return []entity.Order{testOrder(9, entity.OrderStatusCompleted, 1500, w.Start.Add(time.Hour))}, nil
	})
	f.EXPECT().Payments(mock.Anything, mock.Anything).Return([]entity.Payment{}, nil)
	expectStatic(f)

	s := newTestService(t, f)
	d, err := s.Build(context.Background(), customQuery(""))
	require.NoError(t, err)

	assert.NotEmpty(t, d.RequestID)
	assert.Equal(t, entity.PeriodCustom, d.Period)
	assert.True(t, testStart.Equal(d.Window.Start))
	assert.True(t, d.PreviousWindow.End.Before(d.Window.Start))
	assert.Equal(t, entity.MetricsGranularityWeek, d.Granularity)

	assert.True(t, decimal.NewFromInt(3000).Equal(d.Overview.TotalRevenue))
	assert.Equal(t, 2, d.Overview.TotalOrders)
	assert.True(t, decimal.NewFromInt(1500).Equal(d.Overview.AvgOrderValue))
	assert.Equal(t, 100.0, d.RevenueTrend)
	assert.Equal(t, 100.0, d.OrdersTrend)

	require.Len(t, d.Inventory, 1)
	assert.Equal(t, 0, d.Inventory[0].DaysUntilStockout)
	require.Len(t, d.Segments.Customers, 1)
	assert.Equal(t, "Ana Cruz", d.Segments.Customers[0].Name)
	assert.NotEmpty(t, d.SalesTrend)
	assert.Empty(t, d.Warnings)

	latest, ok := s.Latest("")
	require.True(t, ok)
	assert.Equal(t, d.RequestID, latest.RequestID)
}

func TestBuildFetchFailureDegrades(t *testing.T) {
	f := mocks.NewFetcher(t)
	f.EXPECT().Orders(mock.Anything, mock.Anything).Return([]entity.Order{testOrder(1, entity.OrderStatusCompleted, 100, testStart)}, nil)
	f.EXPECT().Payments(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	expectStatic(f)

	s := newTestService(t, f)
	d, err := s.Build(context.Background(), customQuery("finance"))
	require.NoError(t, err)

	assert.Equal(t, []string{entity.SourcePayments}, d.Warnings)
	assert.True(t, d.CashFlow.Collected.IsZero())
	assert.Empty(t, d.CashFlow.ByMethod)
	assert.Equal(t, 1, d.Overview.TotalOrders)
}

func TestBuildValidation(t *testing.T) {
	f := mocks.NewFetcher(t)
	s := newTestService(t, f)

	start, end := testEnd, testStart
	_, err := s.Build(context.Background(), entity.ReportQuery{Period: entity.PeriodCustom, Start: &start, End: &end})
	assert.True(t, gerr.IsValidation(err))

	_, ok := s.Latest("")
	assert.False(t, ok)
}

func TestBuildSuperseded(t *testing.T) {
	f := mocks.NewFetcher(t)

	var calls int32
	entered := make(chan struct{}, 2)
	f.EXPECT().Orders(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, _ entity.PeriodWindow) ([]entity.Order, error) {
		// both order fetches of the first build hang until it is cancelled
		if atomic.AddInt32(&calls, 1) <= 2 {
			entered <- struct{}{}
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return []entity.Order{testOrder(1, entity.OrderStatusCompleted, 100, testStart)}, nil
	})
	f.EXPECT().Payments(mock.Anything, mock.Anything).Return([]entity.Payment{}, nil)
	expectStatic(f)

	s := newTestService(t, f)

	firstErr := make(chan error, 1)
	go func() {
		_, err := s.Build(context.Background(), customQuery("overview"))
		firstErr <- err
	}()
	<-entered
	<-entered

	d, err := s.Build(context.Background(), customQuery("overview"))
	require.NoError(t, err)
	assert.Equal(t, 1, d.Overview.TotalOrders)

	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, gerr.ErrSuperseded)
	case <-time.After(5 * time.Second):
		t.Fatal("first build was not cancelled")
	}

	latest, ok := s.Latest("overview")
	require.True(t, ok)
	assert.Equal(t, d.RequestID, latest.RequestID)
}

func TestAggregateEmpty(t *testing.T) {
	w := entity.PeriodWindow{Start: testStart, End: testEnd}
	d := Aggregate(&entity.RecordSet{Window: w}, &entity.RecordSet{}, DefaultConfig().CostRatios, 10, testEnd)

	assert.True(t, d.Overview.TotalRevenue.IsZero())
	assert.Zero(t, d.RevenueTrend)
	assert.Empty(t, d.Products)
	assert.Empty(t, d.Segments.Segments)
	assert.Equal(t, entity.RetentionStats{}, d.Retention)
	assert.True(t, d.Financials.NetRevenue.IsZero())
	for _, b := range d.SalesTrend {
		assert.Zero(t, b.OrderCount)
	}
}

func TestAggregateBucketsInClockLocation(t *testing.T) {
	manila := time.FixedZone("PHT", 8*3600)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, manila)
	r := period.NewResolver(manila, func() time.Time { return now })
	w, err := r.Resolve(entity.PeriodYear, nil, nil)
	require.NoError(t, err)

	cur := &entity.RecordSet{Window: w, Orders: []entity.Order{
		testOrder(1, entity.OrderStatusCompleted, 1000, time.Date(2026, 1, 31, 21, 0, 0, 0, time.UTC)),
	}}
	d := Aggregate(cur, &entity.RecordSet{}, DefaultConfig().CostRatios, 10, r.Now())

	require.Len(t, d.SalesTrend, 3)
	assert.Equal(t, "2026-01", d.SalesTrend[0].Label)
	assert.Zero(t, d.SalesTrend[0].OrderCount)
	assert.Equal(t, "2026-02", d.SalesTrend[1].Label)
	assert.Equal(t, 1, d.SalesTrend[1].OrderCount)
	require.Len(t, d.Cohorts, 1)
	assert.Equal(t, "2026-02", d.Cohorts[0].Label)
}
