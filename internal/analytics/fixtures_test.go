package analytics

import (
	"strconv"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	d0     = time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	window = entity.PeriodWindow{
		Start: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func order(id int, status entity.OrderStatus, total float64, created time.Time, user string) entity.Order {
	o := entity.Order{
		ID:        id,
		UUID:      "order-" + strconv.Itoa(id),
		Status:    status,
		Total:     dec(total),
		Subtotal:  dec(total),
		CreatedAt: created,
	}
	if user != "" {
		o.UserID = &user
	}
	return o
}

func item(orderID, productID int, name, category string, qty int, unit float64) entity.OrderItem {
	return entity.OrderItem{
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: name,
		Category:    category,
		Quantity:    qty,
		UnitPrice:   dec(unit),
		Total:       dec(unit * float64(qty)),
	}
}

func emptySet() *entity.RecordSet {
	return &entity.RecordSet{Window: window}
}

func assertDec(t *testing.T, expected float64, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "expected %v, got %s", expected, actual.String())
}
