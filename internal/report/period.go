// Package report builds the reservation dashboard report: a reporting window
// resolved from the request, aggregate counts and revenue over that window,
// per-circuit and per-trip popularity rankings, and a trailing twelve-month
// rollup that ignores the active filter.
package report

import (
    "errors"
    "regexp"
    "strconv"
    "time"
)

// ErrInvalidPeriod is returned when the month or year query parameter is
// malformed. Handlers map it to a 400 response.
var ErrInvalidPeriod = errors.New("invalid period")

// Period filter types accepted on the report endpoint.
const (
    PeriodMonth = "month"
    PeriodYear  = "year"
)

var (
    monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
    yearPattern  = regexp.MustCompile(`^\d{4}$`)
)

// PeriodQuery carries the raw filter parameters of a report request.
type PeriodQuery struct {
    FilterType string // "month" or "year"
    Month      string // "YYYY-MM", optional
    Year       string // "YYYY", optional
}

// Window is the inclusive timestamp range a report is scoped to. Start is
// the first instant of the calendar period and End the last millisecond of
// its final day.
type Window struct {
    Start time.Time
    End   time.Time
}

// Contains reports whether ts falls inside the window, bounds included.
func (w Window) Contains(ts time.Time) bool {
    return !ts.Before(w.Start) && !ts.After(w.End)
}

// ResolvePeriod turns the raw query into a concrete window, in UTC:
//
//   - filterType=year with a year given: Jan 1 through Dec 31 of that year.
//   - a month given: that calendar month, last day computed calendrically.
//   - neither: the calendar month containing now.
//
// Malformed month or year values yield ErrInvalidPeriod rather than a
// silently undefined window.
func ResolvePeriod(q PeriodQuery, now time.Time) (string, Window, error) {
    switch {
    case q.FilterType == PeriodYear && q.Year != "":
        if !yearPattern.MatchString(q.Year) {
            return "", Window{}, ErrInvalidPeriod
        }
        year, err := strconv.Atoi(q.Year)
        if err != nil {
            return "", Window{}, ErrInvalidPeriod
        }
        return PeriodYear, yearWindow(year), nil
    case q.Month != "":
        if !monthPattern.MatchString(q.Month) {
            return "", Window{}, ErrInvalidPeriod
        }
        // time.Parse also rejects month numbers outside 01-12, which the
        // pattern alone lets through.
        first, err := time.Parse("2006-01", q.Month)
        if err != nil {
            return "", Window{}, ErrInvalidPeriod
        }
        return PeriodMonth, monthWindow(first), nil
    default:
        return PeriodMonth, monthWindow(now.UTC()), nil
    }
}

// monthWindow spans the calendar month containing ref.
func monthWindow(ref time.Time) Window {
    start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
    return Window{
        Start: start,
        End:   start.AddDate(0, 1, 0).Add(-time.Millisecond),
    }
}

// yearWindow spans Jan 1 through the last millisecond of Dec 31.
func yearWindow(year int) Window {
    return Window{
        Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
        End:   time.Date(year, time.December, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
    }
}
