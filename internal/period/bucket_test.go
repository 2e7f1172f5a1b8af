package period

import (
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketStart(t *testing.T) {
	wed := time.Date(2026, 3, 18, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC), BucketStart(wed, entity.MetricsGranularityDay))
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), BucketStart(wed, entity.MetricsGranularityWeek))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), BucketStart(wed, entity.MetricsGranularityMonth))

	sun := time.Date(2026, 3, 22, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), BucketStart(sun, entity.MetricsGranularityWeek))
}

func TestBuckets(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// exclusive end on a boundary
	b := Buckets(entity.PeriodWindow{Start: start, End: start.AddDate(0, 0, 3)}, entity.MetricsGranularityDay, time.UTC)
	assert.Len(t, b, 3)

	b = Buckets(entity.PeriodWindow{Start: start, End: start.AddDate(0, 0, 3).Add(10 * time.Hour)}, entity.MetricsGranularityDay, time.UTC)
	assert.Len(t, b, 4)

	b = Buckets(entity.PeriodWindow{Start: start, End: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)}, entity.MetricsGranularityMonth, time.UTC)
	assert.Equal(t, []time.Time{
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}, b)

	assert.Empty(t, Buckets(entity.PeriodWindow{Start: start, End: start}, entity.MetricsGranularityDay, time.UTC))
}

func TestBucketIndex(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	b := Buckets(entity.PeriodWindow{Start: start, End: start.AddDate(0, 0, 21)}, entity.MetricsGranularityWeek, time.UTC)

	assert.Equal(t, 0, BucketIndex(b, start.Add(time.Hour), entity.MetricsGranularityWeek))
	assert.Equal(t, 1, BucketIndex(b, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), entity.MetricsGranularityWeek))
	assert.Equal(t, -1, BucketIndex(b, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), entity.MetricsGranularityWeek))
	assert.Equal(t, "2026-02-23", BucketLabel(b[0], entity.MetricsGranularityWeek))
}

func TestBucketsInLocation(t *testing.T) {
	manila := time.FixedZone("PHT", 8*3600)
	r := NewResolver(manila, func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, manila) })

	year, err := r.Resolve(entity.PeriodYear, nil, nil)
	require.NoError(t, err)
	b := Buckets(year, entity.MetricsGranularityMonth, manila)
	require.Len(t, b, 3)
	assert.Equal(t, "2026-01", BucketLabel(b[0], entity.MetricsGranularityMonth))
	assert.Equal(t, "2026-03", BucketLabel(b[2], entity.MetricsGranularityMonth))
	assert.True(t, year.Start.Equal(b[0]))

	// Feb 1 05:00 in Manila is still Jan 31 in UTC
	assert.Equal(t, 1, BucketIndex(b, time.Date(2026, 1, 31, 21, 0, 0, 0, time.UTC), entity.MetricsGranularityMonth))

	day, err := r.Resolve(entity.PeriodDay, nil, nil)
	require.NoError(t, err)
	b = Buckets(day, entity.MetricsGranularityDay, manila)
	require.Len(t, b, 1)
	assert.Equal(t, "2026-03-10", BucketLabel(b[0], entity.MetricsGranularityDay))
}

func TestBucketsNilLocation(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	b := Buckets(entity.PeriodWindow{Start: start, End: start.AddDate(0, 0, 2)}, entity.MetricsGranularityDay, nil)
	require.Len(t, b, 2)
	assert.Equal(t, time.UTC, b[0].Location())
}
