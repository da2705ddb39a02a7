package model

import "time"

// Trip is a single excursion with scheduled departure slots in travel_dates.
type Trip struct {
    ID        uint64    // trips.id
    Title     string    // trips.title
    Price     float64   // trips.price
    CreatedAt time.Time // trips.created_at
}
