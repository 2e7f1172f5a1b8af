package stockalert

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/dependency/mocks"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/jekabolt/grbpwr-dashboard/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)

func newTestWorker(t *testing.T, f *mocks.Fetcher, m dependency.Mailer) *Worker {
	t.Helper()
	c := DefaultConfig()
	w := New(&c, f, m, metrics.NewWithRegistry(prometheus.NewRegistry()))
	w.now = func() time.Time { return testNow }
	return w
}

// expectSales sells 30 units of product 1 over the 30 day lookback.
func expectSales(f *mocks.Fetcher) {
	f.EXPECT().Orders(mock.Anything, mock.MatchedBy(func(w entity.PeriodWindow) bool {
		return w.End.Equal(testNow) && w.Days() == 30
	})).Return([]entity.Order{
		{ID: 1, Status: entity.OrderStatusCompleted, Total: decimal.NewFromInt(300), CreatedAt: testNow.AddDate(0, 0, -5)},
	}, nil)
	f.EXPECT().OrderItems(mock.Anything, mock.Anything).Return([]entity.OrderItem{
		{OrderID: 1, ProductID: 1, ProductName: "Hoodie", Quantity: 30, UnitPrice: decimal.NewFromInt(10)},
	}, nil)
}

func stock(capStock int) []entity.StockLevel {
	return []entity.StockLevel{
		{ProductID: 1, ProductName: "Hoodie", CurrentStock: 2},
		{ProductID: 2, ProductName: "Tee", CurrentStock: 100},
		{ProductID: 3, ProductName: "Cap", CurrentStock: capStock},
	}
}

func ids(items []entity.StockProjection) []int {
	out := make([]int, 0, len(items))
	for _, p := range items {
		out = append(out, p.ProductId)
	}
	return out
}

func TestCheckAlertsOncePerCriticalSpell(t *testing.T) {
	f := mocks.NewFetcher(t)
	m := mocks.NewMailer(t)
	expectSales(f)

	levels := stock(0)
	f.EXPECT().StockLevels(mock.Anything).RunAndReturn(func(context.Context) ([]entity.StockLevel, error) {
		return levels, nil
	})
	var sent [][]int
	m.EXPECT().SendStockAlert(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, items []entity.StockProjection) error {
		sent = append(sent, ids(items))
		return nil
	})

	w := newTestWorker(t, f, m)
	ctx := context.Background()

	fresh, err := w.Check(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 3}, ids(fresh))

	// still critical, nothing new
	fresh, err = w.Check(ctx)
	require.NoError(t, err)
	assert.Empty(t, fresh)

	// cap restocked, then sold out again
	levels = stock(50)
	_, err = w.Check(ctx)
	require.NoError(t, err)
	levels = stock(0)
	fresh, err = w.Check(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids(fresh))

	require.Len(t, sent, 2)
	assert.Equal(t, []int{3}, sent[1])
}

func TestCheckRetriesAfterMailFailure(t *testing.T) {
	f := mocks.NewFetcher(t)
	m := mocks.NewMailer(t)
	expectSales(f)
	f.EXPECT().StockLevels(mock.Anything).Return(stock(10), nil)

	m.EXPECT().SendStockAlert(mock.Anything, mock.Anything).Return(errors.New("sendgrid down")).Once()
	m.EXPECT().SendStockAlert(mock.Anything, mock.Anything).Return(nil).Once()

	w := newTestWorker(t, f, m)

	_, err := w.Check(context.Background())
	assert.Error(t, err)

	fresh, err := w.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(fresh))
}

func TestCheckWithoutMailer(t *testing.T) {
	f := mocks.NewFetcher(t)
	expectSales(f)
	f.EXPECT().StockLevels(mock.Anything).Return(stock(0), nil)

	w := newTestWorker(t, f, nil)
	fresh, err := w.Check(context.Background())
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestCheckFetchError(t *testing.T) {
	f := mocks.NewFetcher(t)
	f.EXPECT().Orders(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	f.EXPECT().OrderItems(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	f.EXPECT().StockLevels(mock.Anything).Return(nil, nil).Maybe()

	w := newTestWorker(t, f, mocks.NewMailer(t))
	_, err := w.Check(context.Background())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	w := newTestWorker(t, mocks.NewFetcher(t), nil)
	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
	assert.Error(t, w.Stop())
}

func TestNewDefaults(t *testing.T) {
	w := New(&Config{}, nil, nil, metrics.NewWithRegistry(prometheus.NewRegistry()))
	assert.Equal(t, time.Hour, w.c.WorkerInterval)
	assert.Equal(t, 30*24*time.Hour, w.c.Lookback)
}
