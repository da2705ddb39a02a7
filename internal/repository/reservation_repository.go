package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/atlastours/reservation-analytics/internal/model"
)

// ReservationRepo provides the query primitives the reporting engine and the
// admin pipeline run against the reservations table: counts and sums over a
// time window, grouped per-reference totals, the trailing monthly rollup and
// denormalized listings. All window predicates filter on created_at, the
// immutable booking timestamp, and both window bounds are inclusive.
type ReservationRepo struct {
    db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// ParticipantSums carries the independently computed participant aggregates
// for a window. Persons is summed from person_count as stored and is not
// reconciled against Adults+Children; rows that violate the bookkeeping
// invariant are reported as-is.
type ParticipantSums struct {
    Persons  int64
    Adults   int64
    Children int64
}

// ReferenceTotals is one row of a grouped per-reference aggregate: how many
// reservations targeted the reference in the window and how many travellers
// they carried. The title is joined at grouping time, so references whose
// entity has been deleted never appear here.
type ReferenceTotals struct {
    ID               uint64
    Title            string
    ReservationCount int64
    ParticipantCount int64
}

// MonthlyCount is one month's bucket of the trailing rollup, keyed "YYYY-MM".
type MonthlyCount struct {
    Month            string
    ReservationCount int64
    ParticipantCount int64
}

// ReservationRow is a reservation denormalized with its reference title and
// travel dates for listing in reports and admin screens.
type ReservationRow struct {
    ID             uint64     `json:"id"`
    Name           string     `json:"name"`
    Type           string     `json:"type"`
    ReferenceTitle string     `json:"referenceTitle"`
    StartDate      *time.Time `json:"startDate"`
    EndDate        *time.Time `json:"endDate"`
    CreatedAt      time.Time  `json:"createdAt"`
    PersonCount    int64      `json:"personCount"`
    AdultCount     int64      `json:"adultCount"`
    ChildCount     int64      `json:"childCount"`
    Status         string     `json:"status"`
    Total          float64    `json:"total"`
}

// CountInWindow returns the number of reservations created in [start, end].
func (r *ReservationRepo) CountInWindow(ctx context.Context, start, end time.Time) (int64, error) {
    var n int64
    err := r.db.QueryRowContext(ctx,
        `SELECT COUNT(*) FROM reservations WHERE created_at BETWEEN ? AND ?`,
        start, end).Scan(&n)
    return n, err
}

// ParticipantsInWindow sums person, adult and child counts over reservations
// created in [start, end]. The three sums are computed from their own columns
// so a person_count that disagrees with adult+child is surfaced, not fixed.
func (r *ReservationRepo) ParticipantsInWindow(ctx context.Context, start, end time.Time) (ParticipantSums, error) {
    const q = `SELECT COALESCE(SUM(person_count), 0),
                      COALESCE(SUM(adult_count), 0),
                      COALESCE(SUM(child_count), 0)
               FROM reservations
               WHERE created_at BETWEEN ? AND ?`
    var s ParticipantSums
    err := r.db.QueryRowContext(ctx, q, start, end).Scan(&s.Persons, &s.Adults, &s.Children)
    return s, err
}

// CircuitTotalsInWindow groups in-window circuit reservations by circuit and
// joins the circuit title in the same query. Reservations whose circuit no
// longer exists fall out of the inner join and are silently excluded; they
// still count toward the window's reservation total.
func (r *ReservationRepo) CircuitTotalsInWindow(ctx context.Context, start, end time.Time) ([]ReferenceTotals, error) {
    const q = `SELECT c.id, c.title, COUNT(*), COALESCE(SUM(r.person_count), 0)
               FROM reservations r
               JOIN circuits c ON c.id = r.circuit_id
               WHERE r.circuit_id IS NOT NULL AND r.created_at BETWEEN ? AND ?
               GROUP BY c.id, c.title`
    return r.referenceTotals(ctx, q, start, end)
}

// TripTotalsInWindow is the trip counterpart of CircuitTotalsInWindow, with
// the same orphan-exclusion behavior.
func (r *ReservationRepo) TripTotalsInWindow(ctx context.Context, start, end time.Time) ([]ReferenceTotals, error) {
    const q = `SELECT t.id, t.title, COUNT(*), COALESCE(SUM(r.person_count), 0)
               FROM reservations r
               JOIN trips t ON t.id = r.trip_id
               WHERE r.trip_id IS NOT NULL AND r.created_at BETWEEN ? AND ?
               GROUP BY t.id, t.title`
    return r.referenceTotals(ctx, q, start, end)
}

func (r *ReservationRepo) referenceTotals(ctx context.Context, query string, start, end time.Time) ([]ReferenceTotals, error) {
    rows, err := r.db.QueryContext(ctx, query, start, end)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]ReferenceTotals, 0)
    for rows.Next() {
        var t ReferenceTotals
        if err := rows.Scan(&t.ID, &t.Title, &t.ReservationCount, &t.ParticipantCount); err != nil {
            return nil, err
        }
        out = append(out, t)
    }
    return out, rows.Err()
}

// MonthlyCountsSince buckets reservations created at or after since into
// YYYY-MM buckets, ascending. Months without reservations produce no bucket.
func (r *ReservationRepo) MonthlyCountsSince(ctx context.Context, since time.Time) ([]MonthlyCount, error) {
    const q = `SELECT DATE_FORMAT(created_at, '%Y-%m') AS month,
                      COUNT(*),
                      COALESCE(SUM(person_count), 0)
               FROM reservations
               WHERE created_at >= ?
               GROUP BY month
               ORDER BY month ASC`
    rows, err := r.db.QueryContext(ctx, q, since)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]MonthlyCount, 0)
    for rows.Next() {
        var m MonthlyCount
        if err := rows.Scan(&m.Month, &m.ReservationCount, &m.ParticipantCount); err != nil {
            return nil, err
        }
        out = append(out, m)
    }
    return out, rows.Err()
}

// ConfirmedRevenueInWindow sums the total of confirmed reservations created
// in [start, end]. Pending and cancelled rows contribute nothing no matter
// what their total column holds.
func (r *ReservationRepo) ConfirmedRevenueInWindow(ctx context.Context, start, end time.Time) (float64, error) {
    const q = `SELECT COALESCE(SUM(total), 0)
               FROM reservations
               WHERE status = ? AND created_at BETWEEN ? AND ?`
    var sum float64
    err := r.db.QueryRowContext(ctx, q, model.StatusConfirmed, start, end).Scan(&sum)
    return sum, err
}

// DistinctMonths returns every YYYY-MM for which at least one reservation
// exists, most recent first. Used to populate the dashboard period selector.
func (r *ReservationRepo) DistinctMonths(ctx context.Context) ([]string, error) {
    const q = `SELECT DISTINCT DATE_FORMAT(created_at, '%Y-%m') AS month
               FROM reservations ORDER BY month DESC`
    return r.distinctStrings(ctx, q)
}

// DistinctYears returns every YYYY with reservation data, most recent first.
func (r *ReservationRepo) DistinctYears(ctx context.Context) ([]string, error) {
    const q = `SELECT DISTINCT DATE_FORMAT(created_at, '%Y') AS year
               FROM reservations ORDER BY year DESC`
    return r.distinctStrings(ctx, q)
}

func (r *ReservationRepo) distinctStrings(ctx context.Context, query string) ([]string, error) {
    rows, err := r.db.QueryContext(ctx, query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]string, 0)
    for rows.Next() {
        var s string
        if err := rows.Scan(&s); err != nil {
            return nil, err
        }
        out = append(out, s)
    }
    return out, rows.Err()
}

// ListInWindow returns reservations created in [start, end], newest first,
// denormalized with the reference title and travel-date window.
func (r *ReservationRepo) ListInWindow(ctx context.Context, start, end time.Time) ([]ReservationRow, error) {
    return r.list(ctx, &start, &end)
}

// List returns reservations denormalized like ListInWindow, optionally
// bounded on either side. Nil bounds are open.
func (r *ReservationRepo) List(ctx context.Context, from, to *time.Time) ([]ReservationRow, error) {
    return r.list(ctx, from, to)
}

func (r *ReservationRepo) list(ctx context.Context, from, to *time.Time) ([]ReservationRow, error) {
    // The travel-date slot, when booked, overrides the free-form dates the
    // customer typed. Reference titles come from whichever join matched.
    q := `SELECT r.id, r.full_name, r.reservation_type,
                 COALESCE(c.title, t.title, v.name, ''),
                 COALESCE(td.start_date, r.start_date),
                 COALESCE(td.end_date, r.end_date),
                 r.created_at, r.person_count, r.adult_count, r.child_count,
                 r.status, r.total
          FROM reservations r
          LEFT JOIN circuits c ON c.id = r.circuit_id
          LEFT JOIN trips t ON t.id = r.trip_id
          LEFT JOIN vehicles v ON v.id = r.vehicle_id
          LEFT JOIN travel_dates td ON td.id = r.travel_date_id`
    args := make([]any, 0, 2)
    switch {
    case from != nil && to != nil:
        q += ` WHERE r.created_at BETWEEN ? AND ?`
        args = append(args, *from, *to)
    case from != nil:
        q += ` WHERE r.created_at >= ?`
        args = append(args, *from)
    case to != nil:
        q += ` WHERE r.created_at <= ?`
        args = append(args, *to)
    }
    q += ` ORDER BY r.created_at DESC`

    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]ReservationRow, 0)
    for rows.Next() {
        var row ReservationRow
        var startDate, endDate sql.NullTime
        if err := rows.Scan(
            &row.ID, &row.Name, &row.Type, &row.ReferenceTitle,
            &startDate, &endDate,
            &row.CreatedAt, &row.PersonCount, &row.AdultCount, &row.ChildCount,
            &row.Status, &row.Total,
        ); err != nil {
            return nil, err
        }
        if startDate.Valid {
            d := startDate.Time
            row.StartDate = &d
        }
        if endDate.Valid {
            d := endDate.Time
            row.EndDate = &d
        }
        out = append(out, row)
    }
    return out, rows.Err()
}

// GetByID returns a single reservation or ErrReservationNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
    const q = `SELECT id, full_name, reservation_type, circuit_id, trip_id, vehicle_id,
                      travel_date_id, person_count, adult_count, child_count,
                      start_date, end_date, status, total, created_at
               FROM reservations WHERE id = ?`
    var res model.Reservation
    var circuitID, tripID, vehicleID, travelDateID sql.NullInt64
    var startDate, endDate sql.NullTime
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &res.ID, &res.FullName, &res.Type, &circuitID, &tripID, &vehicleID,
        &travelDateID, &res.PersonCount, &res.AdultCount, &res.ChildCount,
        &startDate, &endDate, &res.Status, &res.Total, &res.CreatedAt,
    )
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrReservationNotFound
    }
    if err != nil {
        return nil, err
    }
    res.CircuitID = nullID(circuitID)
    res.TripID = nullID(tripID)
    res.VehicleID = nullID(vehicleID)
    res.TravelDateID = nullID(travelDateID)
    if startDate.Valid {
        d := startDate.Time
        res.StartDate = &d
    }
    if endDate.Valid {
        d := endDate.Time
        res.EndDate = &d
    }
    return &res, nil
}

// UpdateStatus sets a reservation's status. ErrReservationNotFound is
// returned when no row matches the ID.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
    result, err := r.db.ExecContext(ctx,
        `UPDATE reservations SET status = ? WHERE id = ?`, status, id)
    if err != nil {
        return err
    }
    affected, err := result.RowsAffected()
    if err != nil {
        return err
    }
    if affected == 0 {
        // Distinguish "missing" from "already in this status".
        var exists int
        if err := r.db.QueryRowContext(ctx,
            `SELECT 1 FROM reservations WHERE id = ?`, id).Scan(&exists); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return ErrReservationNotFound
            }
            return err
        }
    }
    return nil
}

func nullID(v sql.NullInt64) *uint64 {
    if !v.Valid {
        return nil
    }
    id := uint64(v.Int64)
    return &id
}
