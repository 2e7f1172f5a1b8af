package analytics

import (
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		recency, frequency int
		want               entity.SegmentName
	}{
		{25, 6, entity.SegmentChampions},
		{30, 5, entity.SegmentChampions},
		{25, 4, entity.SegmentLoyal},
		{60, 3, entity.SegmentLoyal},
		{20, 2, entity.SegmentPotentialLoyalist},
		{10, 1, entity.SegmentNewCustomers},
		{90, 3, entity.SegmentAtRisk},
		{120, 7, entity.SegmentAtRisk},
		{150, 1, entity.SegmentLost},
		// matched by no rule
		{45, 1, ""},
		{45, 2, ""},
		{50, 6, ""},
		{90, 1, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.recency, tt.frequency), "recency=%d frequency=%d", tt.recency, tt.frequency)
	}
}

func TestSegmentCustomers(t *testing.T) {
	end := window.End
	rs := emptySet()
	id := 0
	add := func(user string, st entity.OrderStatus, total float64, daysAgo int) {
		id++
		rs.Orders = append(rs.Orders, order(id, st, total, end.Add(-time.Duration(daysAgo)*24*time.Hour-time.Hour), user))
	}
	for i := 0; i < 6; i++ {
		add("champ", entity.OrderStatusCompleted, 100, 25+i)
	}
	add("new", entity.OrderStatusPending, 40, 3)
	add("new2", entity.OrderStatusCompleted, 60, 10)
	add("lapsed", entity.OrderStatusCompleted, 80, 45)
	add("lost", entity.OrderStatusCancelled, 10, 200)
	add("", entity.OrderStatusCompleted, 999, 1)
	rs.Customers = []entity.Customer{{ID: "champ", FirstName: "Ana", LastName: "Cruz"}}

	res := SegmentCustomers(rs)
	assert.Len(t, res.Customers, 5)
	assert.Equal(t, 1, res.Unclassified)

	require.Len(t, res.Segments, 3)
	assert.Equal(t, entity.SegmentChampions, res.Segments[0].Name)
	assert.Equal(t, 1, res.Segments[0].Count)
	assertDec(t, 600, res.Segments[0].Revenue)
	assertDec(t, 600, res.Segments[0].AvgSpend)
	assert.NotEmpty(t, res.Segments[0].Description)

	assert.Equal(t, entity.SegmentNewCustomers, res.Segments[1].Name)
	assert.Equal(t, 2, res.Segments[1].Count)
	assertDec(t, 100, res.Segments[1].Revenue)
	assertDec(t, 50, res.Segments[1].AvgSpend)

	assert.Equal(t, entity.SegmentLost, res.Segments[2].Name)

	for _, c := range res.Customers {
		assert.GreaterOrEqual(t, c.Recency, 0)
		assert.GreaterOrEqual(t, c.Frequency, 1)
		if c.CustomerID == "champ" {
			assert.Equal(t, 25, c.Recency)
			assert.Equal(t, 6, c.Frequency)
			assert.Equal(t, "Ana Cruz", c.Name)
		}
		if c.CustomerID == "lapsed" {
			assert.Empty(t, c.Segment)
		}
	}
}

func TestSegmentCustomersEmpty(t *testing.T) {
	res := SegmentCustomers(emptySet())
	assert.Empty(t, res.Segments)
	assert.Empty(t, res.Customers)
	assert.Zero(t, res.Unclassified)
}
