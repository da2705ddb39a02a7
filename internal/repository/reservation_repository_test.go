package repository

import (
    "context"
    "errors"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
)

var (
    windowStart = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
    windowEnd   = time.Date(2025, time.March, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)
)

func newMockRepo(t *testing.T) (*ReservationRepo, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("sqlmock: %v", err)
    }
    t.Cleanup(func() { db.Close() })
    return NewReservationRepo(db), mock
}

// The per-circuit totals must come from an inner join on circuits, so a
// reservation whose circuit row has been deleted contributes no group.
func TestCircuitTotalsInWindowJoinsInner(t *testing.T) {
    repo, mock := newMockRepo(t)

    mock.ExpectQuery(`FROM reservations r\s+JOIN circuits c ON c\.id = r\.circuit_id`).
        WithArgs(windowStart, windowEnd).
        WillReturnRows(sqlmock.NewRows([]string{"id", "title", "count", "persons"}).
            AddRow(3, "Atlas Highlands", 2, 7).
            AddRow(5, "Coastal Loop", 1, 4))

    got, err := repo.CircuitTotalsInWindow(context.Background(), windowStart, windowEnd)
    if err != nil {
        t.Fatalf("CircuitTotalsInWindow: %v", err)
    }
    want := []ReferenceTotals{
        {ID: 3, Title: "Atlas Highlands", ReservationCount: 2, ParticipantCount: 7},
        {ID: 5, Title: "Coastal Loop", ReservationCount: 1, ParticipantCount: 4},
    }
    if len(got) != len(want) {
        t.Fatalf("got %d groups, want %d", len(got), len(want))
    }
    for i := range want {
        if got[i] != want[i] {
            t.Errorf("group %d = %+v, want %+v", i, got[i], want[i])
        }
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Error(err)
    }
}

func TestTripTotalsInWindowJoinsInner(t *testing.T) {
    repo, mock := newMockRepo(t)

    mock.ExpectQuery(`FROM reservations r\s+JOIN trips t ON t\.id = r\.trip_id`).
        WithArgs(windowStart, windowEnd).
        WillReturnRows(sqlmock.NewRows([]string{"id", "title", "count", "persons"}).
            AddRow(8, "Desert Sunrise", 3, 9))

    got, err := repo.TripTotalsInWindow(context.Background(), windowStart, windowEnd)
    if err != nil {
        t.Fatalf("TripTotalsInWindow: %v", err)
    }
    if len(got) != 1 || got[0] != (ReferenceTotals{ID: 8, Title: "Desert Sunrise", ReservationCount: 3, ParticipantCount: 9}) {
        t.Errorf("got %+v", got)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Error(err)
    }
}

// The window count reads reservations alone: bookings whose reference was
// deleted still count here even though the grouped views drop them.
func TestCountInWindowCountsWithoutJoining(t *testing.T) {
    repo, mock := newMockRepo(t)

    mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE created_at BETWEEN \? AND \?`).
        WithArgs(windowStart, windowEnd).
        WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

    n, err := repo.CountInWindow(context.Background(), windowStart, windowEnd)
    if err != nil {
        t.Fatalf("CountInWindow: %v", err)
    }
    if n != 5 {
        t.Errorf("count = %d, want 5", n)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Error(err)
    }
}

func TestConfirmedRevenueInWindowFiltersStatus(t *testing.T) {
    repo, mock := newMockRepo(t)

    mock.ExpectQuery(`SELECT COALESCE\(SUM\(total\), 0\)\s+FROM reservations\s+WHERE status = \? AND created_at BETWEEN \? AND \?`).
        WithArgs("confirmed", windowStart, windowEnd).
        WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(1250.5))

    sum, err := repo.ConfirmedRevenueInWindow(context.Background(), windowStart, windowEnd)
    if err != nil {
        t.Fatalf("ConfirmedRevenueInWindow: %v", err)
    }
    if sum != 1250.5 {
        t.Errorf("sum = %v, want 1250.5", sum)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Error(err)
    }
}

func TestUpdateStatusMissingRow(t *testing.T) {
    repo, mock := newMockRepo(t)

    mock.ExpectExec(`UPDATE reservations SET status = \? WHERE id = \?`).
        WithArgs("confirmed", uint64(404)).
        WillReturnResult(sqlmock.NewResult(0, 0))
    mock.ExpectQuery(`SELECT 1 FROM reservations WHERE id = \?`).
        WithArgs(uint64(404)).
        WillReturnRows(sqlmock.NewRows([]string{"1"}))

    err := repo.UpdateStatus(context.Background(), 404, "confirmed")
    if !errors.Is(err, ErrReservationNotFound) {
        t.Errorf("err = %v, want ErrReservationNotFound", err)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Error(err)
    }
}
