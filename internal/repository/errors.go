package repository

import "errors"

// Sentinel errors returned by repositories. Handlers compare against these
// with errors.Is to choose a response status.
var (
    ErrCircuitNotFound     = errors.New("circuit not found")
    ErrTripNotFound        = errors.New("trip not found")
    ErrVehicleNotFound     = errors.New("vehicle not found")
    ErrReservationNotFound = errors.New("reservation not found")
)
