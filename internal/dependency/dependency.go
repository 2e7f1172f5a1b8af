package dependency

import (
	"context"
	"database/sql"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	// Fetcher loads raw records. Windowed methods filter created_at >= start AND created_at < end.
	Fetcher interface {
		// Orders returns every order created in the window.
		Orders(ctx context.Context, w entity.PeriodWindow) ([]entity.Order, error)
		// OrderItems returns the items of orders created in the window.
		OrderItems(ctx context.Context, w entity.PeriodWindow) ([]entity.OrderItem, error)
		// Payments returns payments of orders created in the window.
		Payments(ctx context.Context, w entity.PeriodWindow) ([]entity.Payment, error)
		// Customers returns all profiles with the customer role.
		Customers(ctx context.Context) ([]entity.Customer, error)
		// StockLevels returns the current on-hand quantity per product.
		StockLevels(ctx context.Context) ([]entity.StockLevel, error)
	}

	// DB represents database interface.
	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// Reporter builds dashboards.
	Reporter interface {
		Build(ctx context.Context, q entity.ReportQuery) (*entity.Dashboard, error)
		Latest(view string) (*entity.Dashboard, bool)
	}

	// TextGenerator is the external model that turns a prompt into free text.
	TextGenerator interface {
		Generate(ctx context.Context, system, prompt string) (string, error)
	}

	Insighter interface {
		Recommend(ctx context.Context, d *entity.Dashboard) (*entity.Recommendation, error)
	}

	Mailer interface {
		SendStockAlert(ctx context.Context, items []entity.StockProjection) error
	}

	Sender interface {
		SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
	}
)
