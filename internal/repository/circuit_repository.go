package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/atlastours/reservation-analytics/internal/model"
)

// CircuitRepo provides read access to the circuits catalog. Circuits are
// reference data from the reporting engine's perspective: they are created
// and edited elsewhere and only read here.
type CircuitRepo struct {
    db *sql.DB
}

// NewCircuitRepo returns a CircuitRepo bound to the given database.
func NewCircuitRepo(db *sql.DB) *CircuitRepo { return &CircuitRepo{db: db} }

// CountAll returns the number of circuits currently in the catalog. This is
// a present-tense inventory count and is never scoped to a reporting window.
func (r *CircuitRepo) CountAll(ctx context.Context) (int64, error) {
    var n int64
    err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM circuits`).Scan(&n)
    return n, err
}

// GetByID returns a single circuit or ErrCircuitNotFound.
func (r *CircuitRepo) GetByID(ctx context.Context, id uint64) (*model.Circuit, error) {
    const q = `SELECT id, title, price, created_at FROM circuits WHERE id = ?`
    var c model.Circuit
    err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Title, &c.Price, &c.CreatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrCircuitNotFound
    }
    if err != nil {
        return nil, err
    }
    return &c, nil
}

// ListAll returns every circuit ordered by title for catalog screens.
func (r *CircuitRepo) ListAll(ctx context.Context) ([]model.Circuit, error) {
    const q = `SELECT id, title, price, created_at FROM circuits ORDER BY title`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Circuit, 0)
    for rows.Next() {
        var c model.Circuit
        if err := rows.Scan(&c.ID, &c.Title, &c.Price, &c.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, c)
    }
    return out, rows.Err()
}
