// Package report assembles dashboards: it resolves the window, fetches records for the
// current and previous period and runs every aggregator over them.
package report

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-dashboard/internal/analytics"
	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/jekabolt/grbpwr-dashboard/internal/metrics"
	"github.com/jekabolt/grbpwr-dashboard/internal/period"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Timezone     string            `mapstructure:"timezone"`
	TopProducts  int               `mapstructure:"top_products"`
	FetchTimeout time.Duration     `mapstructure:"fetch_timeout"`
	CostRatios   entity.CostRatios `mapstructure:"cost_ratios"`
}

func DefaultConfig() *Config {
	return &Config{
		Timezone:     "UTC",
		TopProducts:  20,
		FetchTimeout: 30 * time.Second,
		CostRatios:   analytics.DefaultCostRatios(),
	}
}

type Service struct {
	c        *Config
	fetcher  dependency.Fetcher
	resolver *period.Resolver
	sessions *Sessions
	metrics  *metrics.Collector
}

// New returns a report service. A nil clock means time.Now.
func New(c *Config, fetcher dependency.Fetcher, m *metrics.Collector, now func() time.Time) (*Service, error) {
	if c == nil {
		c = DefaultConfig()
	}
	loc := time.UTC
	if c.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, fmt.Errorf("can't load timezone %q: %w", c.Timezone, err)
		}
	}
	if m == nil {
		m = metrics.New()
	}
	return &Service{
		c:        c,
		fetcher:  fetcher,
		resolver: period.NewResolver(loc, now),
		sessions: NewSessions(),
		metrics:  m,
	}, nil
}

// Resolver exposes the period resolver used by the service.
func (s *Service) Resolver() *period.Resolver {
	return s.resolver
}

// Latest returns the last dashboard committed for view.
func (s *Service) Latest(view string) (*entity.Dashboard, bool) {
	return s.sessions.Latest(viewKey(view))
}

func viewKey(view string) string {
	if view == "" {
		return entity.DefaultView
	}
	return view
}

// Build resolves q and builds its dashboard. A newer Build for the same view cancels
// this one, in which case gerr.ErrSuperseded is returned and nothing is committed.
func (s *Service) Build(ctx context.Context, q entity.ReportQuery) (*entity.Dashboard, error) {
	p := q.Period
	if p == "" {
		p = entity.PeriodMonth
	}
	w, err := s.resolver.Resolve(p, q.Start, q.End)
	if err != nil {
		return nil, err
	}

	view := viewKey(q.View)
	bctx, gen, release := s.sessions.Begin(ctx, view)
	defer release()

	started := time.Now()
	d, err := s.build(bctx, p, w, q.TopProducts)
	if err != nil {
		if !s.sessions.Current(view, gen) {
			s.metrics.ReportBuilds.WithLabelValues(metrics.ResultSuperseded).Inc()
			return nil, gerr.ErrSuperseded
		}
		s.metrics.ReportBuilds.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}
	if err := s.sessions.Commit(view, gen, d); err != nil {
		s.metrics.ReportBuilds.WithLabelValues(metrics.ResultSuperseded).Inc()
		return nil, err
	}
	s.metrics.ReportBuilds.WithLabelValues(metrics.ResultOK).Inc()
	s.metrics.ReportDuration.Observe(time.Since(started).Seconds())

	slog.Default().InfoContext(ctx, "dashboard built",
		slog.String("request_id", d.RequestID),
		slog.String("view", view),
		slog.String("period", string(p)),
		slog.Int("orders", d.Overview.TotalOrders),
		slog.Int("warnings", len(d.Warnings)),
		slog.Duration("took", time.Since(started)),
	)
	return d, nil
}

// Records fetches everything aggregators need for w. Failed sources are logged,
// counted and left empty; their names are returned as warnings.
func (s *Service) Records(ctx context.Context, w entity.PeriodWindow) (*entity.RecordSet, []string, error) {
	return s.fetch(ctx, w, true)
}

func (s *Service) build(ctx context.Context, p entity.Period, w entity.PeriodWindow, topProducts int) (*entity.Dashboard, error) {
	prevWindow := period.Previous(w)

	var (
		cur, prev           *entity.RecordSet
		curWarns, prevWarns []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cur, curWarns, err = s.fetch(gctx, w, true)
		return err
	})
	g.Go(func() error {
		var err error
		prev, prevWarns, err = s.fetch(gctx, prevWindow, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if topProducts <= 0 {
		topProducts = s.c.TopProducts
	}
	d := Aggregate(cur, prev, s.c.CostRatios, topProducts, s.resolver.Now())
	d.Period = p
	d.Warnings = mergeWarnings(curWarns, prevWarns)

	// a build cancelled while aggregating is stale even though it finished
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// Aggregate runs every aggregator concurrently over cur and prev. The record sets are
// only read. Trend and cohort buckets are cut in now's location.
func Aggregate(cur, prev *entity.RecordSet, ratios entity.CostRatios, topProducts int, now time.Time) *entity.Dashboard {
	g := period.GranularityFor(cur.Window)
	loc := now.Location()
	d := &entity.Dashboard{
		RequestID:      uuid.NewString(),
		Window:         cur.Window,
		PreviousWindow: prev.Window,
		Granularity:    g,
		GeneratedAt:    now.UTC(),
	}

	asOf := cur.Window.End
	if now.Before(asOf) {
		asOf = now
	}

	var wg sync.WaitGroup
	run := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	run(func() { d.Overview = analytics.Overview(cur) })
	run(func() { d.PreviousOverview = analytics.Overview(prev) })
	run(func() { d.Products = analytics.ProductPerformance(cur, prev, topProducts) })
	run(func() { d.Categories = analytics.Categories(cur) })
	run(func() { d.Brands = analytics.Brands(cur) })
	run(func() { d.Inventory = analytics.ProjectStockouts(cur) })
	run(func() { d.SalesTrend = analytics.SalesTrend(cur, g, loc) })
	run(func() { d.Segments = analytics.SegmentCustomers(cur) })
	run(func() { d.Retention = analytics.Retention(cur, asOf) })
	run(func() { d.Cohorts = analytics.Cohorts(cur, g, loc) })
	run(func() { d.Financials = analytics.FinancialsFromRecords(cur, ratios) })
	run(func() { d.CashFlow = analytics.CashFlow(cur) })
	wg.Wait()

	d.RevenueTrend = analytics.TrendPct(d.Overview.TotalRevenue, d.PreviousOverview.TotalRevenue)
	d.OrdersTrend = analytics.TrendPctInt(d.Overview.TotalOrders, d.PreviousOverview.TotalOrders)
	return d
}

// fetch loads the record set of w. The previous period only needs orders and items.
// The returned error is non-nil only when ctx is done.
func (s *Service) fetch(ctx context.Context, w entity.PeriodWindow, full bool) (*entity.RecordSet, []string, error) {
	if s.c.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.c.FetchTimeout)
		defer cancel()
	}

	rs := &entity.RecordSet{
		Window:    w,
		Orders:    []entity.Order{},
		Items:     []entity.OrderItem{},
		Payments:  []entity.Payment{},
		Customers: []entity.Customer{},
		Stock:     []entity.StockLevel{},
	}
	var (
		mu    sync.Mutex
		warns []string
	)
	failed := func(source string, err error) {
		slog.Default().ErrorContext(ctx, "can't fetch records",
			slog.String("source", source),
			slog.Time("start", w.Start),
			slog.Time("end", w.End),
			slog.String("err", err.Error()),
		)
		s.metrics.FetchFailures.WithLabelValues(source).Inc()
		mu.Lock()
		warns = append(warns, source)
		mu.Unlock()
	}

	var wg sync.WaitGroup
	load := func(source string, f func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f(); err != nil {
				failed(source, err)
			}
		}()
	}

	load(entity.SourceOrders, func() error {
		orders, err := s.fetcher.Orders(ctx, w)
		if err == nil && orders != nil {
			rs.Orders = orders
		}
		return err
	})
	load(entity.SourceItems, func() error {
		items, err := s.fetcher.OrderItems(ctx, w)
		if err == nil && items != nil {
			rs.Items = items
		}
		return err
	})
	if full {
		load(entity.SourcePayments, func() error {
			payments, err := s.fetcher.Payments(ctx, w)
			if err == nil && payments != nil {
				rs.Payments = payments
			}
			return err
		})
		load(entity.SourceCustomers, func() error {
			customers, err := s.fetcher.Customers(ctx)
			if err == nil && customers != nil {
				rs.Customers = customers
			}
			return err
		})
		load(entity.SourceStock, func() error {
			stock, err := s.fetcher.StockLevels(ctx)
			if err == nil && stock != nil {
				rs.Stock = stock
			}
			return err
		})
	}
	wg.Wait()

	// the parent context ending is not a source failure
	if err := context.Cause(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, nil, err
	}
	return rs, warns, nil
}

func mergeWarnings(cur, prev []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, w := range cur {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	for _, w := range prev {
		key := "previous_" + w
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}
