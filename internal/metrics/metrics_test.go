package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestNewWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.ReportBuilds.WithLabelValues(ResultOK).Inc()
	m.ReportBuilds.WithLabelValues(ResultSuperseded).Add(2)
	m.FetchFailures.WithLabelValues("orders").Inc()

	assert.Equal(t, 1.0, counterValue(t, m.ReportBuilds.WithLabelValues(ResultOK)))
	assert.Equal(t, 2.0, counterValue(t, m.ReportBuilds.WithLabelValues(ResultSuperseded)))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "grbpwr_dashboard_fetch_failures_total")
}

func TestHandler(t *testing.T) {
	m := New()
	m.StockAlertsSent.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "grbpwr_dashboard_stock_alerts_sent_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
