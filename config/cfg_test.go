package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[mysql]
dsn = "user:pass@tcp(localhost:3306)/grbpwr?parseTime=true"
automigrate = true

[http]
port = "9090"
allowed_origins = ["https://admin.grbpwr.com"]

[report]
timezone = "Asia/Manila"
top_products = 15

[report.cost_ratios]
cogs = 35.0

[insight]
enabled = true
model = "gpt-4o-mini"
http_timeout = "45s"

[stock_alert]
enabled = true
worker_interval = "30m"

[mailer]
from_email = "alerts@grbpwr.com"
alert_recipients = ["ops@grbpwr.com"]
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	t.Setenv("INSIGHT_API_KEY", "sk-test")

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "user:pass@tcp(localhost:3306)/grbpwr?parseTime=true", c.DB.DSN)
	assert.True(t, c.DB.Automigrate)
	assert.Equal(t, "9090", c.HTTP.Port)
	assert.Equal(t, []string{"https://admin.grbpwr.com"}, c.HTTP.AllowedOrigins)

	assert.Equal(t, "Asia/Manila", c.Report.Timezone)
	assert.Equal(t, 15, c.Report.TopProducts)
	assert.Equal(t, 30*time.Second, c.Report.FetchTimeout)
	assert.Equal(t, 35.0, c.Report.CostRatios.COGS)
	// untouched ratios keep their defaults
	assert.Equal(t, 8.0, c.Report.CostRatios.Shipping)

	assert.True(t, c.Insight.Enabled)
	assert.Equal(t, "sk-test", c.Insight.APIKey)
	assert.Equal(t, 45*time.Second, c.Insight.HTTPTimeout)

	assert.True(t, c.StockAlert.Enabled)
	assert.Equal(t, 30*time.Minute, c.StockAlert.WorkerInterval)
	assert.Equal(t, 30*24*time.Hour, c.StockAlert.Lookback)

	assert.Equal(t, []string{"ops@grbpwr.com"}, c.Mailer.AlertRecipients)
}

func TestLoadConfigDSNFromEnv(t *testing.T) {
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_USER", "dash")
	t.Setenv("MYSQL_PASSWORD", "secret")
	t.Setenv("MYSQL_DATABASE", "grbpwr")

	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "dash:secret@tcp(db.internal:3306)/grbpwr?charset=utf8mb4&parseTime=true", c.DB.DSN)
	assert.Equal(t, "8080", c.HTTP.Port)
	assert.Equal(t, 30, c.HTTP.InsightsPerHour)
	assert.Equal(t, "UTC", c.Report.Timezone)
}
