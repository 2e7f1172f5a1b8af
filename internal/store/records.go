package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

type recordStore struct {
	*MYSQLStore
}

func windowParams(w entity.PeriodWindow) map[string]any {
	return map[string]any{
		"start": w.Start.UTC(),
		"end":   w.End.UTC(),
	}
}

// Orders returns every order created in the window ordered by creation time. Orders
// with an unknown status are logged and skipped.
func (rs *recordStore) Orders(ctx context.Context, w entity.PeriodWindow) ([]entity.Order, error) {
	query := `
	SELECT
		id,
		uuid,
		status,
		total,
		subtotal,
		discount,
		shipping_fee,
		created_at,
		user_id,
		delivery_type
	FROM customer_order
	WHERE created_at >= :start AND created_at < :end
	ORDER BY created_at, id`

	orders, err := QueryListNamed[entity.Order](ctx, rs.db, query, windowParams(w))
	if err != nil {
		return nil, fmt.Errorf("can't get orders: %w", err)
	}

	known := orders[:0]
	for _, o := range orders {
		if !o.Status.IsValid() {
			slog.Default().WarnContext(ctx, "skipping order with unknown status",
				slog.Int("order_id", o.ID),
				slog.String("status", string(o.Status)),
			)
			continue
		}
		known = append(known, o)
	}
	return known, nil
}

// OrderItems returns items of orders created in the window. Category and brand
// come from the product catalog and are empty for deleted products.
func (rs *recordStore) OrderItems(ctx context.Context, w entity.PeriodWindow) ([]entity.OrderItem, error) {
	query := `
	SELECT
		oi.id,
		oi.order_id,
		oi.product_id,
		oi.product_name,
		COALESCE(p.category, '') AS category,
		COALESCE(p.brand, '') AS brand,
		oi.quantity,
		oi.unit_price,
		oi.total
	FROM order_item oi
	JOIN customer_order co ON co.id = oi.order_id
	LEFT JOIN product p ON p.id = oi.product_id
	WHERE co.created_at >= :start AND co.created_at < :end
	ORDER BY co.created_at, oi.order_id, oi.id`

	items, err := QueryListNamed[entity.OrderItem](ctx, rs.db, query, windowParams(w))
	if err != nil {
		return nil, fmt.Errorf("can't get order items: %w", err)
	}
	return items, nil
}

// Payments returns payments of orders created in the window.
func (rs *recordStore) Payments(ctx context.Context, w entity.PeriodWindow) ([]entity.Payment, error) {
	query := `
	SELECT
		pm.id,
		pm.order_id,
		pm.payment_method,
		pm.payment_status,
		pm.amount,
		pm.paid_at
	FROM payment pm
	JOIN customer_order co ON co.id = pm.order_id
	WHERE co.created_at >= :start AND co.created_at < :end
	ORDER BY pm.id`

	payments, err := QueryListNamed[entity.Payment](ctx, rs.db, query, windowParams(w))
	if err != nil {
		return nil, fmt.Errorf("can't get payments: %w", err)
	}
	return payments, nil
}

func (rs *recordStore) Customers(ctx context.Context) ([]entity.Customer, error) {
	query := `
	SELECT
		id,
		email,
		first_name,
		last_name,
		COALESCE(full_name, '') AS full_name,
		COALESCE(city, '') AS city,
		role
	FROM profile
	WHERE role = :role
	ORDER BY created_at, id`

	customers, err := QueryListNamed[entity.Customer](ctx, rs.db, query, map[string]any{
		"role": entity.CustomerRole,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get customers: %w", err)
	}
	return customers, nil
}

func (rs *recordStore) StockLevels(ctx context.Context) ([]entity.StockLevel, error) {
	query := `
	SELECT
		id AS product_id,
		name AS product_name,
		category,
		stock AS current_stock
	FROM product
	WHERE deleted_at IS NULL
	ORDER BY id`

	levels, err := QueryListNamed[entity.StockLevel](ctx, rs.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get stock levels: %w", err)
	}
	return levels, nil
}

type orderBounds struct {
	First *time.Time `db:"first_order"`
	Last  *time.Time `db:"last_order"`
}

// OrderBounds returns the creation time of the oldest and newest order. Both are
// nil when there are no orders.
func (ms *MYSQLStore) OrderBounds(ctx context.Context) (first, last *time.Time, err error) {
	query := `SELECT MIN(created_at) AS first_order, MAX(created_at) AS last_order FROM customer_order`
	b, err := QueryNamedOne[orderBounds](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, nil, fmt.Errorf("can't get order bounds: %w", err)
	}
	return b.First, b.Last, nil
}
