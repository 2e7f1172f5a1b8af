package insight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/jekabolt/grbpwr-dashboard/internal/metrics"
)

// Generator produces recommendations for dashboards. A nil text generator disables it.
type Generator struct {
	text    dependency.TextGenerator
	metrics *metrics.Collector
}

var _ dependency.Insighter = (*Generator)(nil)

func NewGenerator(text dependency.TextGenerator, m *metrics.Collector) *Generator {
	if m == nil {
		m = metrics.New()
	}
	return &Generator{text: text, metrics: m}
}

// Recommend summarizes d, asks the text generator for recommendations and parses the
// reply. Transport errors are returned; an unparseable reply is returned degraded.
func (g *Generator) Recommend(ctx context.Context, d *entity.Dashboard) (*entity.Recommendation, error) {
	if g.text == nil {
		return nil, gerr.ErrInsightsDisabled
	}
	id := uuid.NewString()
	prompt, err := Prompt(BuildRequest(d))
	if err != nil {
		return nil, err
	}

	started := time.Now()
	text, err := g.text.Generate(ctx, systemPrompt, prompt)
	g.metrics.InsightDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		g.metrics.InsightRequests.WithLabelValues(metrics.ResultError).Inc()
		slog.Default().ErrorContext(ctx, "can't generate insights",
			slog.String("insight_id", id),
			slog.String("dashboard_id", d.RequestID),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't generate insights: %w", err)
	}

	r := Parse(text)
	if r.Degraded {
		g.metrics.InsightRequests.WithLabelValues(metrics.ResultDegraded).Inc()
		slog.Default().WarnContext(ctx, "insight reply is not valid json, returning raw text",
			slog.String("insight_id", id),
			slog.Int("length", len(text)),
		)
	} else {
		g.metrics.InsightRequests.WithLabelValues(metrics.ResultOK).Inc()
	}
	return &r, nil
}
