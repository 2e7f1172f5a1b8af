package analytics

import (
	"testing"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductPerformance(t *testing.T) {
	cur := emptySet()
	cur.Orders = []entity.Order{
		order(1, entity.OrderStatusCompleted, 700, d0, ""),
		order(2, entity.OrderStatusCancelled, 100, d0, ""),
	}
	cur.Items = []entity.OrderItem{
		item(1, 10, "Tee", "Tops", 2, 100),
		item(1, 20, "Cap", "Hats", 1, 500),
		item(2, 10, "Tee", "Tops", 5, 100),
	}
	prev := emptySet()
	prev.Orders = []entity.Order{order(9, entity.OrderStatusDelivered, 1000, d0.AddDate(0, -1, 0), "")}
	prev.Items = []entity.OrderItem{item(9, 20, "Cap", "Hats", 2, 500)}

	pp := ProductPerformance(cur, prev, 0)
	require.Len(t, pp, 2)

	assert.Equal(t, 20, pp[0].ProductId)
	assert.Equal(t, 1, pp[0].Units)
	assert.Equal(t, 2, pp[0].PreviousUnits)
	assertDec(t, 1000, pp[0].PreviousRevenue)
	assert.Equal(t, -50.0, pp[0].Trend)

	assert.Equal(t, 10, pp[1].ProductId)
	assert.Equal(t, 2, pp[1].Units)
	assert.Equal(t, 0, pp[1].PreviousUnits)
	assert.Equal(t, 100.0, pp[1].Trend)

	limited := ProductPerformance(cur, prev, 1)
	require.Len(t, limited, 1)
	assert.Equal(t, 20, limited[0].ProductId)

	assert.Empty(t, ProductPerformance(emptySet(), emptySet(), 10))
}

func TestCategoriesAndBrands(t *testing.T) {
	rs := emptySet()
	rs.Orders = []entity.Order{
		order(1, entity.OrderStatusCompleted, 700, d0, ""),
		order(2, entity.OrderStatusCompleted, 300, d0, ""),
	}
	tee := item(1, 10, "Tee", "Tops", 2, 100)
	tee.Brand = "grbpwr"
	hat := item(1, 20, "Cap", "Hats", 1, 500)
	hat.Brand = "grbpwr"
	rs.Items = []entity.OrderItem{tee, hat, item(2, 30, "Pin", "", 3, 100)}

	cats := Categories(rs)
	require.Len(t, cats, 3)
	assert.Equal(t, "Hats", cats[0].Name)
	assert.Equal(t, 50.0, cats[0].SharePct)
	assert.Equal(t, "Uncategorized", cats[1].Name)
	assert.Equal(t, 30.0, cats[1].SharePct)
	assert.Equal(t, 3, cats[1].Units)
	assert.Equal(t, "Tops", cats[2].Name)
	assert.Equal(t, 1, cats[2].OrderCount)

	brands := Brands(rs)
	require.Len(t, brands, 2)
	assert.Equal(t, "grbpwr", brands[0].Name)
	assertDec(t, 700, brands[0].Revenue)
	assert.Equal(t, 1, brands[0].OrderCount)
	assert.Equal(t, "Unbranded", brands[1].Name)

	assert.Empty(t, Categories(emptySet()))
	assert.Empty(t, Brands(emptySet()))
}
