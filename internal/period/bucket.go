package period

import (
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

// BucketStart truncates t to the start of its bucket in t's location.
func BucketStart(t time.Time, g entity.MetricsGranularity) time.Time {
	loc := t.Location()
	switch g {
	case entity.MetricsGranularityWeek:
		// Monday 00:00 (Go: 0=Sun, 1=Mon)
		weekday := int(t.Weekday())
		daysBack := (weekday + 6) % 7
		return time.Date(t.Year(), t.Month(), t.Day()-daysBack, 0, 0, 0, 0, loc)
	case entity.MetricsGranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
}

// BucketNext returns the start of the bucket following t.
func BucketNext(t time.Time, g entity.MetricsGranularity) time.Time {
	switch g {
	case entity.MetricsGranularityWeek:
		return t.AddDate(0, 0, 7)
	case entity.MetricsGranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// BucketLabel formats a bucket start for chart axes.
func BucketLabel(t time.Time, g entity.MetricsGranularity) string {
	if g == entity.MetricsGranularityMonth {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

// Buckets returns the start of every bucket overlapping w in chronological order,
// with calendar boundaries taken in loc (UTC when nil). The end bound is exclusive,
// so a window ending exactly on a boundary does not produce a trailing empty bucket.
func Buckets(w entity.PeriodWindow, g entity.MetricsGranularity, loc *time.Location) []time.Time {
	if !w.Start.Before(w.End) {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	var result []time.Time
	cur := BucketStart(w.Start.In(loc), g)
	last := BucketStart(w.End.Add(-time.Nanosecond).In(loc), g)
	for !cur.After(last) {
		result = append(result, cur)
		cur = BucketNext(cur, g)
	}
	return result
}

// BucketIndex returns the position of t among buckets, or -1 when t is outside them.
func BucketIndex(buckets []time.Time, t time.Time, g entity.MetricsGranularity) int {
	if len(buckets) == 0 {
		return -1
	}
	bs := BucketStart(t.In(buckets[0].Location()), g)
	for i, b := range buckets {
		if b.Equal(bs) {
			return i
		}
	}
	return -1
}
