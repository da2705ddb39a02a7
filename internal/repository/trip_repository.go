package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/atlastours/reservation-analytics/internal/model"
)

// TripRepo provides read access to the trips catalog and their scheduled
// departure dates.
type TripRepo struct {
    db *sql.DB
}

// NewTripRepo returns a TripRepo bound to the given database.
func NewTripRepo(db *sql.DB) *TripRepo { return &TripRepo{db: db} }

// GetByID returns a single trip or ErrTripNotFound.
func (r *TripRepo) GetByID(ctx context.Context, id uint64) (*model.Trip, error) {
    const q = `SELECT id, title, price, created_at FROM trips WHERE id = ?`
    var t model.Trip
    err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.Title, &t.Price, &t.CreatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrTripNotFound
    }
    if err != nil {
        return nil, err
    }
    return &t, nil
}

// ListAll returns every trip ordered by title for catalog screens.
func (r *TripRepo) ListAll(ctx context.Context) ([]model.Trip, error) {
    const q = `SELECT id, title, price, created_at FROM trips ORDER BY title`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Trip, 0)
    for rows.Next() {
        var t model.Trip
        if err := rows.Scan(&t.ID, &t.Title, &t.Price, &t.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, t)
    }
    return out, rows.Err()
}
