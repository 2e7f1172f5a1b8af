package report

import (
	"context"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/analytics"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

// History summarizes every calendar month from the month of first through the month
// of last. progress, when set, is called after each month.
func (s *Service) History(ctx context.Context, first, last time.Time, progress func()) ([]entity.MonthSummary, error) {
	months := Months(first, last, s.resolver.Location())
	out := make([]entity.MonthSummary, 0, len(months))
	for _, w := range months {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rs, warns, err := s.fetch(ctx, w, false)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.MonthSummary{
			Month:    w.Start.Format("2006-01"),
			Window:   w,
			Overview: analytics.Overview(rs),
			Warnings: warns,
		})
		if progress != nil {
			progress()
		}
	}
	return out, nil
}

// Months returns the calendar month windows covering first through last in loc.
func Months(first, last time.Time, loc *time.Location) []entity.PeriodWindow {
	if loc == nil {
		loc = time.UTC
	}
	first, last = first.In(loc), last.In(loc)
	if last.Before(first) {
		return nil
	}
	start := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, loc)
	var out []entity.PeriodWindow
	for !start.After(last) {
		next := start.AddDate(0, 1, 0)
		out = append(out, entity.PeriodWindow{Start: start, End: next})
		start = next
	}
	return out
}
