package stockalert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/analytics"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"golang.org/x/sync/errgroup"
)

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := w.Check(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't check stock levels",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Check projects stockouts over the lookback window and alerts on High priority
// products that were not critical at the previous check. It returns the alerted products.
func (w *Worker) Check(ctx context.Context) ([]entity.StockProjection, error) {
	end := w.now().UTC()
	rs := &entity.RecordSet{Window: entity.PeriodWindow{Start: end.Add(-w.c.Lookback), End: end}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orders, err := w.fetcher.Orders(gctx, rs.Window)
		if err != nil {
			return fmt.Errorf("can't get orders: %w", err)
		}
		rs.Orders = orders
		return nil
	})
	g.Go(func() error {
		items, err := w.fetcher.OrderItems(gctx, rs.Window)
		if err != nil {
			return fmt.Errorf("can't get order items: %w", err)
		}
		rs.Items = items
		return nil
	})
	g.Go(func() error {
		stock, err := w.fetcher.StockLevels(gctx)
		if err != nil {
			return fmt.Errorf("can't get stock levels: %w", err)
		}
		rs.Stock = stock
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var critical []entity.StockProjection
	for _, p := range analytics.ProjectStockouts(rs) {
		if p.Priority == entity.StockPriorityHigh {
			critical = append(critical, p)
		}
	}
	w.metrics.CriticalProducts.Set(float64(len(critical)))

	w.mu.Lock()
	defer w.mu.Unlock()

	current := make(map[int]bool, len(critical))
	var fresh []entity.StockProjection
	for _, p := range critical {
		current[p.ProductId] = true
		if !w.alerted[p.ProductId] {
			fresh = append(fresh, p)
		}
	}
	if len(fresh) == 0 {
		w.alerted = current
		return nil, nil
	}

	for _, p := range fresh {
		slog.Default().WarnContext(ctx, "product running out of stock",
			slog.Int("product_id", p.ProductId),
			slog.String("product_name", p.ProductName),
			slog.Int("current_stock", p.CurrentStock),
			slog.Int("days_until_stockout", p.DaysUntilStockout),
			slog.Int("reorder_quantity", p.ReorderQuantity),
		)
	}

	if w.mailer != nil {
		if err := w.mailer.SendStockAlert(ctx, fresh); err != nil {
			// fresh products stay unmarked so the next check retries them
			for _, p := range fresh {
				delete(current, p.ProductId)
			}
			w.alerted = current
			return nil, fmt.Errorf("can't send stock alert: %w", err)
		}
		w.metrics.StockAlertsSent.Inc()
	}
	w.alerted = current
	return fresh, nil
}
