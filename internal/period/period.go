// Package period turns symbolic reporting periods into concrete half-open windows.
package period

import (
	"strings"
	"time"

	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

const (
	dailyMaxDays  = 7
	weeklyMaxDays = 60
)

// Resolver resolves periods relative to a clock in a fixed location.
type Resolver struct {
	loc *time.Location
	now func() time.Time
}

// NewResolver returns a resolver. A nil location means UTC, a nil clock means time.Now.
func NewResolver(loc *time.Location, now func() time.Time) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Resolver{loc: loc, now: now}
}

// Now returns the resolver's current time in its location.
func (r *Resolver) Now() time.Time {
	return r.now().In(r.loc)
}

// Location returns the location calendar boundaries are computed in.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Resolve converts p into a window. Custom periods use the explicit bounds verbatim and
// fall back to the month rule when either bound is missing.
func (r *Resolver) Resolve(p entity.Period, explicitStart, explicitEnd *time.Time) (entity.PeriodWindow, error) {
	now := r.Now()
	var start time.Time
	end := now

	switch p {
	case entity.PeriodDay:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.loc)
	case entity.PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case entity.PeriodMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, r.loc)
	case entity.PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, r.loc)
	case entity.PeriodCustom:
		if explicitStart == nil || explicitEnd == nil {
			return r.Resolve(entity.PeriodMonth, nil, nil)
		}
		if !explicitStart.Before(*explicitEnd) {
			return entity.PeriodWindow{}, gerr.NewValidationError("end", "must be after start (%s >= %s)",
				explicitStart.Format(time.RFC3339), explicitEnd.Format(time.RFC3339))
		}
		start, end = *explicitStart, *explicitEnd
	default:
		return entity.PeriodWindow{}, gerr.NewValidationError("period", "unknown period %q", p)
	}

	return entity.PeriodWindow{Start: start.UTC(), End: end.UTC()}, nil
}

// Previous returns the equal-length window immediately preceding w.
func Previous(w entity.PeriodWindow) entity.PeriodWindow {
	prevEnd := w.Start.Add(-time.Millisecond)
	return entity.PeriodWindow{
		Start: prevEnd.Add(-w.Duration()),
		End:   prevEnd,
	}
}

// GranularityFor picks the time bucket size for charts over w.
func GranularityFor(w entity.PeriodWindow) entity.MetricsGranularity {
	days := w.Duration().Hours() / 24
	switch {
	case days <= dailyMaxDays:
		return entity.MetricsGranularityDay
	case days <= weeklyMaxDays:
		return entity.MetricsGranularityWeek
	default:
		return entity.MetricsGranularityMonth
	}
}

// ParsePeriod validates a period symbol. An empty string selects the month.
func ParsePeriod(s string) (entity.Period, error) {
	p := entity.Period(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "":
		return entity.PeriodMonth, nil
	case entity.PeriodDay, entity.PeriodWeek, entity.PeriodMonth, entity.PeriodYear, entity.PeriodCustom:
		return p, nil
	}
	return "", gerr.NewValidationError("period", "unknown period %q", s)
}

// InferPeriod parses raw and reconciles it with explicit bounds. Without a period,
// two bounds select custom. Bounds with any other period are rejected instead of
// being ignored.
func InferPeriod(raw string, start, end *time.Time) (entity.Period, error) {
	if strings.TrimSpace(raw) == "" && start != nil && end != nil {
		return entity.PeriodCustom, nil
	}
	p, err := ParsePeriod(raw)
	if err != nil {
		return "", err
	}
	if p != entity.PeriodCustom && (start != nil || end != nil) {
		return "", gerr.NewValidationError("period", "start and end need period=custom, got %q", p)
	}
	return p, nil
}

// ParseBound parses an explicit window bound. Accepts RFC3339 or a plain date in loc.
// An empty string yields nil.
func ParseBound(field, s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return &t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return &t, nil
	}
	return nil, gerr.NewValidationError(field, "malformed date %q", s)
}
