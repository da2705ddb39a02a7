package model

import "time"

// Reservation statuses. A reservation is created as pending and is later
// confirmed or cancelled by an operator. Only confirmed reservations carry a
// meaningful total amount.
const (
    StatusPending   = "pending"
    StatusConfirmed = "confirmed"
    StatusCancelled = "cancelled"
)

// Reservation types identify which reference entity a booking targets.
const (
    TypeCircuit = "circuit"
    TypeTrip    = "trip"
    TypeVehicle = "vehicle"
)

// Reservation records a customer's booking request for a circuit, trip or
// vehicle rental. Exactly one of the reference foreign keys is expected to be
// set, matching Type. All reporting is keyed on CreatedAt, the immutable
// moment the booking was made, never on the travel dates.
//
// Fields:
//  ID           – primary key identifier.
//  FullName     – name of the customer who booked.
//  Type         – what is being reserved (circuit, trip, vehicle).
//  CircuitID    – booked circuit, when Type is circuit.
//  TripID       – booked trip, when Type is trip.
//  VehicleID    – rented vehicle, when Type is vehicle.
//  TravelDateID – optional scheduled departure slot for trips.
//  PersonCount  – total travellers on the booking.
//  AdultCount   – adult travellers.
//  ChildCount   – child travellers.
//  StartDate    – requested travel start.
//  EndDate      – requested travel end.
//  Status       – pending, confirmed or cancelled.
//  Total        – quoted amount; only meaningful once confirmed.
//  CreatedAt    – creation timestamp (immutable).
type Reservation struct {
    ID           uint64     // reservations.id
    FullName     string     // reservations.full_name
    Type         string     // reservations.reservation_type
    CircuitID    *uint64    // reservations.circuit_id (nullable)
    TripID       *uint64    // reservations.trip_id (nullable)
    VehicleID    *uint64    // reservations.vehicle_id (nullable)
    TravelDateID *uint64    // reservations.travel_date_id (nullable)
    PersonCount  int64      // reservations.person_count
    AdultCount   int64      // reservations.adult_count
    ChildCount   int64      // reservations.child_count
    StartDate    *time.Time // reservations.start_date (nullable)
    EndDate      *time.Time // reservations.end_date (nullable)
    Status       string     // reservations.status
    Total        float64    // reservations.total
    CreatedAt    time.Time  // reservations.created_at
}
