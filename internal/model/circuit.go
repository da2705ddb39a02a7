package model

import "time"

// Circuit is a multi-day guided itinerary sold by the operator. Reservations
// reference circuits by ID; deleting a circuit does not cascade to past
// reservations, which then hold an orphan reference.
type Circuit struct {
    ID        uint64    // circuits.id
    Title     string    // circuits.title
    Price     float64   // circuits.price
    CreatedAt time.Time // circuits.created_at
}
