package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jekabolt/grbpwr-dashboard/config"
	httpapi "github.com/jekabolt/grbpwr-dashboard/internal/api/http"
	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/insight"
	"github.com/jekabolt/grbpwr-dashboard/internal/mail"
	"github.com/jekabolt/grbpwr-dashboard/internal/metrics"
	"github.com/jekabolt/grbpwr-dashboard/internal/report"
	"github.com/jekabolt/grbpwr-dashboard/internal/stockalert"
	"github.com/jekabolt/grbpwr-dashboard/internal/store"
)

// App is the main application
type App struct {
	hs       *httpapi.Server
	db       *store.MYSQLStore
	alerts   *stockalert.Worker
	metrics  *metrics.Collector
	c        *config.Config
	done     chan struct{}
	doneOnce sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting dashboard")

	a.metrics = metrics.New()

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql", slog.String("err", err.Error()))
		return err
	}

	reports, err := report.New(&a.c.Report, a.db.Fetcher(), a.metrics, nil)
	if err != nil {
		return fmt.Errorf("can't create report service: %w", err)
	}

	var text dependency.TextGenerator
	if a.c.Insight.Enabled {
		cl, err := insight.NewClient(&a.c.Insight)
		if err != nil {
			return fmt.Errorf("can't create insight client: %w", err)
		}
		text = cl
	} else {
		slog.Default().InfoContext(ctx, "insights disabled")
	}
	insights := insight.NewGenerator(text, a.metrics)

	if a.c.StockAlert.Enabled {
		var mailer dependency.Mailer
		if a.c.Mailer.APIKey != "" {
			m, err := mail.New(&a.c.Mailer)
			if err != nil {
				return fmt.Errorf("can't create mailer: %w", err)
			}
			mailer = m
		} else {
			slog.Default().InfoContext(ctx, "mailer not configured, stock alerts are only logged")
		}
		a.alerts = stockalert.New(&a.c.StockAlert, a.db.Fetcher(), mailer, a.metrics)
		if err := a.alerts.Start(ctx); err != nil {
			return fmt.Errorf("can't start stock alert worker: %w", err)
		}
	}

	a.hs = httpapi.New(&a.c.HTTP, reports, insights, a.db, a.metrics, reports.Resolver().Location())
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}
	go func() {
		<-a.hs.Done()
		a.doneOnce.Do(func() { close(a.done) })
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.alerts != nil {
		if err := a.alerts.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop stock alert worker", slog.String("err", err.Error()))
		}
	}
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server", slog.String("err", err.Error()))
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	a.doneOnce.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}
