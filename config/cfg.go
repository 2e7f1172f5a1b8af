package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jekabolt/grbpwr-dashboard/internal/api/http"
	"github.com/jekabolt/grbpwr-dashboard/internal/insight"
	"github.com/jekabolt/grbpwr-dashboard/internal/mail"
	"github.com/jekabolt/grbpwr-dashboard/internal/report"
	"github.com/jekabolt/grbpwr-dashboard/internal/stockalert"
	"github.com/jekabolt/grbpwr-dashboard/internal/store"
	"github.com/jekabolt/grbpwr-dashboard/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB         store.Config      `mapstructure:"mysql"`
	Logger     log.Config        `mapstructure:"logger"`
	HTTP       httpapi.Config    `mapstructure:"http"`
	Report     report.Config     `mapstructure:"report"`
	Insight    insight.Config    `mapstructure:"insight"`
	StockAlert stockalert.Config `mapstructure:"stock_alert"`
	Mailer     mail.Config       `mapstructure:"mailer"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	viper.Reset()
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults()
	bindEnvVars()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			// If config file doesn't exist, continue with env vars only
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/grbpwr-dashboard")
		viper.AddConfigPath("/etc/grbpwr-dashboard")
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Build the DSN from MYSQL_* env vars when it is not set
	if config.DB.DSN == "" {
		host := os.Getenv("MYSQL_HOST")
		port := os.Getenv("MYSQL_PORT")
		user := os.Getenv("MYSQL_USER")
		password := os.Getenv("MYSQL_PASSWORD")
		database := os.Getenv("MYSQL_DATABASE")
		if port == "" {
			port = "3306"
		}
		if host != "" && user != "" && password != "" && database != "" {
			tlsParam := ""
			if config.DB.TLSCAPath != "" {
				tlsParam = "&tls=custom"
			}
			config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true%s",
				user, password, host, port, database, tlsParam)
		}
	}

	return &config, nil
}

func setDefaults() {
	rc := report.DefaultConfig()
	viper.SetDefault("report.timezone", rc.Timezone)
	viper.SetDefault("report.top_products", rc.TopProducts)
	viper.SetDefault("report.fetch_timeout", rc.FetchTimeout)
	viper.SetDefault("report.cost_ratios.cogs", rc.CostRatios.COGS)
	viper.SetDefault("report.cost_ratios.shipping", rc.CostRatios.Shipping)
	viper.SetDefault("report.cost_ratios.payment_fees", rc.CostRatios.PaymentFees)
	viper.SetDefault("report.cost_ratios.marketing", rc.CostRatios.Marketing)
	viper.SetDefault("report.cost_ratios.operations", rc.CostRatios.Operations)
	viper.SetDefault("report.cost_ratios.discounts", rc.CostRatios.Discounts)

	sc := stockalert.DefaultConfig()
	viper.SetDefault("stock_alert.worker_interval", sc.WorkerInterval)
	viper.SetDefault("stock_alert.lookback", sc.Lookback)

	viper.SetDefault("http.port", "8080")
	viper.SetDefault("http.insights_per_hour", 30)
	viper.SetDefault("logger.level", 0)
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars() {
	// MySQL
	viper.BindEnv("mysql.dsn", "MYSQL_DSN")
	viper.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	viper.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	viper.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	viper.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")
	viper.BindEnv("http.insights_per_hour", "HTTP_INSIGHTS_PER_HOUR")

	// Report
	viper.BindEnv("report.timezone", "REPORT_TIMEZONE")
	viper.BindEnv("report.top_products", "REPORT_TOP_PRODUCTS")
	viper.BindEnv("report.fetch_timeout", "REPORT_FETCH_TIMEOUT")

	// Insight
	viper.BindEnv("insight.enabled", "INSIGHT_ENABLED")
	viper.BindEnv("insight.endpoint", "INSIGHT_ENDPOINT")
	viper.BindEnv("insight.api_key", "INSIGHT_API_KEY")
	viper.BindEnv("insight.model", "INSIGHT_MODEL")
	viper.BindEnv("insight.max_tokens", "INSIGHT_MAX_TOKENS")
	viper.BindEnv("insight.temperature", "INSIGHT_TEMPERATURE")
	viper.BindEnv("insight.http_timeout", "INSIGHT_HTTP_TIMEOUT")

	// Stock alert
	viper.BindEnv("stock_alert.enabled", "STOCK_ALERT_ENABLED")
	viper.BindEnv("stock_alert.worker_interval", "STOCK_ALERT_WORKER_INTERVAL")
	viper.BindEnv("stock_alert.lookback", "STOCK_ALERT_LOOKBACK")

	// Mailer
	viper.BindEnv("mailer.sendgrid_api_key", "MAILER_SENDGRID_API_KEY")
	viper.BindEnv("mailer.from_email", "MAILER_FROM_EMAIL")
	viper.BindEnv("mailer.from_email_name", "MAILER_FROM_EMAIL_NAME")
	viper.BindEnv("mailer.reply_to", "MAILER_REPLY_TO")
	viper.BindEnv("mailer.alert_recipients", "MAILER_ALERT_RECIPIENTS")
}
