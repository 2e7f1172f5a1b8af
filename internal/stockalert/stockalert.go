package stockalert

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/metrics"
)

// Config holds configuration for the stock alert worker.
type Config struct {
	Enabled        bool          `mapstructure:"enabled"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	Lookback       time.Duration `mapstructure:"lookback"` // sales window the velocity is computed over
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: time.Hour,
		Lookback:       30 * 24 * time.Hour,
	}
}

// Worker projects stockouts on a ticker and alerts once per product each time it
// becomes critical.
type Worker struct {
	fetcher dependency.Fetcher
	mailer  dependency.Mailer
	metrics *metrics.Collector
	now     func() time.Time
	c       *Config
	ctx     context.Context
	stop    context.CancelFunc

	mu      sync.Mutex
	alerted map[int]bool
}

// New creates a new stock alert worker. A nil mailer only logs alerts.
func New(c *Config, fetcher dependency.Fetcher, mailer dependency.Mailer, m *metrics.Collector) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = time.Hour
	}
	if c.Lookback == 0 {
		c.Lookback = 30 * 24 * time.Hour
	}
	if m == nil {
		m = metrics.New()
	}
	return &Worker{
		fetcher: fetcher,
		mailer:  mailer,
		metrics: m,
		now:     time.Now,
		c:       c,
		alerted: make(map[int]bool),
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("stock alert worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("stock alert worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}
