package model

import "time"

// Vehicle statuses. Only available vehicles count toward fleet inventory.
const (
    VehicleAvailable   = "available"
    VehicleMaintenance = "maintenance"
    VehicleRetired     = "retired"
)

// Vehicle is a rentable fleet unit.
type Vehicle struct {
    ID        uint64    // vehicles.id
    Name      string    // vehicles.name
    Status    string    // vehicles.status
    CreatedAt time.Time // vehicles.created_at
}
