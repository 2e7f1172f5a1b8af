package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/metrics"
	"github.com/jekabolt/grbpwr-dashboard/internal/ratelimit"
	"github.com/jekabolt/grbpwr-dashboard/log"
)

// Config is the configuration for the http server
type Config struct {
	Port           string        `mapstructure:"port"`
	Address        string        `mapstructure:"address"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// InsightsPerHour caps insight requests per client address, 0 disables the cap.
	InsightsPerHour int `mapstructure:"insights_per_hour"`
}

// Pinger reports whether the record source is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the http server
type Server struct {
	hs       *http.Server
	c        *Config
	done     chan struct{}
	reports  dependency.Reporter
	insights dependency.Insighter
	health   Pinger
	metrics  *metrics.Collector
	loc      *time.Location
	limiter  *ratelimit.Limiter
}

// New creates a new server. Bounds without a zone are parsed in loc.
func New(c *Config, reports dependency.Reporter, insights dependency.Insighter, health Pinger, m *metrics.Collector, loc *time.Location) *Server {
	if m == nil {
		m = metrics.New()
	}
	if loc == nil {
		loc = time.UTC
	}
	s := &Server{
		c:        c,
		done:     make(chan struct{}),
		reports:  reports,
		insights: insights,
		health:   health,
		metrics:  m,
		loc:      loc,
	}
	if c.InsightsPerHour > 0 {
		s.limiter = ratelimit.NewLimiter(time.Hour, c.InsightsPerHour)
	}
	return s
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler returns the router with every route and middleware attached.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions, http.MethodHead},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposedHeaders:   []string{"Content-Disposition", "Retry-After", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(log.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(s.metricsMiddleware)

	r.Get("/healthz", s.healthz)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api/admin", func(r chi.Router) {
		if s.c.RequestTimeout > 0 {
			r.Use(middleware.Timeout(s.c.RequestTimeout))
		}
		r.Get("/dashboard", s.getDashboard)
		r.Get("/dashboard/export.csv", s.exportDashboard)
		r.With(s.rateLimit).Post("/insights", s.postInsights)
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.limiter != nil {
		go s.limiter.Run(ctx)
	}

	go func() {
		slog.Default().InfoContext(ctx, "grbpwr-dashboard new listener", slog.String("addr", "http://"+listenerAddr))
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}

	return false
}
