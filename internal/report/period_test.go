package report

import (
    "errors"
    "testing"
    "time"
)

func TestResolvePeriodYear(t *testing.T) {
    now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

    periodType, win, err := ResolvePeriod(PeriodQuery{FilterType: "year", Year: "2025"}, now)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if periodType != PeriodYear {
        t.Errorf("period type = %q, want %q", periodType, PeriodYear)
    }
    wantStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
    wantEnd := time.Date(2025, time.December, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)
    if !win.Start.Equal(wantStart) {
        t.Errorf("start = %v, want %v", win.Start, wantStart)
    }
    if !win.End.Equal(wantEnd) {
        t.Errorf("end = %v, want %v", win.End, wantEnd)
    }

    // The last second of the year is in; the first instant of the next year
    // is out.
    lastSecond := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
    nextYear := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
    if !win.Contains(lastSecond) {
        t.Errorf("window should contain %v", lastSecond)
    }
    if win.Contains(nextYear) {
        t.Errorf("window should not contain %v", nextYear)
    }
}

func TestResolvePeriodMonth(t *testing.T) {
    now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

    tests := []struct {
        name      string
        month     string
        wantStart time.Time
        wantEnd   time.Time
    }{
        {
            name:      "thirty-one day month",
            month:     "2025-03",
            wantStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
            wantEnd:   time.Date(2025, time.March, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
        },
        {
            name:      "leap february",
            month:     "2024-02",
            wantStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
            wantEnd:   time.Date(2024, time.February, 29, 23, 59, 59, int(999*time.Millisecond), time.UTC),
        },
        {
            name:      "non-leap february",
            month:     "2025-02",
            wantStart: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
            wantEnd:   time.Date(2025, time.February, 28, 23, 59, 59, int(999*time.Millisecond), time.UTC),
        },
        {
            name:      "thirty day month",
            month:     "2025-04",
            wantStart: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
            wantEnd:   time.Date(2025, time.April, 30, 23, 59, 59, int(999*time.Millisecond), time.UTC),
        },
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            periodType, win, err := ResolvePeriod(PeriodQuery{FilterType: "month", Month: tt.month}, now)
            if err != nil {
                t.Fatalf("unexpected error: %v", err)
            }
            if periodType != PeriodMonth {
                t.Errorf("period type = %q, want %q", periodType, PeriodMonth)
            }
            if !win.Start.Equal(tt.wantStart) {
                t.Errorf("start = %v, want %v", win.Start, tt.wantStart)
            }
            if !win.End.Equal(tt.wantEnd) {
                t.Errorf("end = %v, want %v", win.End, tt.wantEnd)
            }
            if win.End.Before(win.Start) {
                t.Errorf("end %v before start %v", win.End, win.Start)
            }
        })
    }
}

func TestResolvePeriodDefaultsToCurrentMonth(t *testing.T) {
    now := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

    periodType, win, err := ResolvePeriod(PeriodQuery{}, now)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if periodType != PeriodMonth {
        t.Errorf("period type = %q, want %q", periodType, PeriodMonth)
    }
    if got := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC); !win.Start.Equal(got) {
        t.Errorf("start = %v, want %v", win.Start, got)
    }
    if got := time.Date(2025, time.March, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC); !win.End.Equal(got) {
        t.Errorf("end = %v, want %v", win.End, got)
    }
}

func TestResolvePeriodYearFilterWithoutYearFallsBackToMonth(t *testing.T) {
    now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

    periodType, win, err := ResolvePeriod(PeriodQuery{FilterType: "year", Month: "2025-05"}, now)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if periodType != PeriodMonth {
        t.Errorf("period type = %q, want %q", periodType, PeriodMonth)
    }
    if got := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC); !win.Start.Equal(got) {
        t.Errorf("start = %v, want %v", win.Start, got)
    }
}

func TestResolvePeriodRejectsMalformedInput(t *testing.T) {
    now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

    tests := []struct {
        name string
        q    PeriodQuery
    }{
        {"month missing zero pad", PeriodQuery{Month: "2025-1"}},
        {"month not a date", PeriodQuery{Month: "garbage"}},
        {"month thirteen", PeriodQuery{Month: "2025-13"}},
        {"month zero", PeriodQuery{Month: "2025-00"}},
        {"year too short", PeriodQuery{FilterType: "year", Year: "25"}},
        {"year not numeric", PeriodQuery{FilterType: "year", Year: "twenty"}},
        {"year with suffix", PeriodQuery{FilterType: "year", Year: "2025x"}},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            _, _, err := ResolvePeriod(tt.q, now)
            if !errors.Is(err, ErrInvalidPeriod) {
                t.Errorf("err = %v, want ErrInvalidPeriod", err)
            }
        })
    }
}
