package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/atlastours/reservation-analytics/internal/model"
)

// VehicleRepo provides read access to the vehicle fleet.
type VehicleRepo struct {
    db *sql.DB
}

// NewVehicleRepo returns a VehicleRepo bound to the given database.
func NewVehicleRepo(db *sql.DB) *VehicleRepo { return &VehicleRepo{db: db} }

// CountAvailable returns the number of vehicles whose status is available.
// Like CountAll on circuits, this is a live inventory figure, not scoped to
// any reporting window.
func (r *VehicleRepo) CountAvailable(ctx context.Context) (int64, error) {
    var n int64
    err := r.db.QueryRowContext(ctx,
        `SELECT COUNT(*) FROM vehicles WHERE status = ?`, model.VehicleAvailable).Scan(&n)
    return n, err
}

// GetByID returns a single vehicle or ErrVehicleNotFound.
func (r *VehicleRepo) GetByID(ctx context.Context, id uint64) (*model.Vehicle, error) {
    const q = `SELECT id, name, status, created_at FROM vehicles WHERE id = ?`
    var v model.Vehicle
    err := r.db.QueryRowContext(ctx, q, id).Scan(&v.ID, &v.Name, &v.Status, &v.CreatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrVehicleNotFound
    }
    if err != nil {
        return nil, err
    }
    return &v, nil
}

// ListAll returns the whole fleet ordered by name.
func (r *VehicleRepo) ListAll(ctx context.Context) ([]model.Vehicle, error) {
    const q = `SELECT id, name, status, created_at FROM vehicles ORDER BY name`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Vehicle, 0)
    for rows.Next() {
        var v model.Vehicle
        if err := rows.Scan(&v.ID, &v.Name, &v.Status, &v.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, v)
    }
    return out, rows.Err()
}
