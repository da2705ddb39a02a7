// Package queue defines the message payloads exchanged over the broker and
// the background consumer that drains them.
package queue

// ReservationQueueName is the durable queue confirmed reservations are
// published to. The transactional-email worker consumes the same queue.
const ReservationQueueName = "reservation.confirmed"

// ReservationConfirmedEvent is published when an operator confirms a
// reservation. It carries enough detail for downstream consumers (booking
// log, confirmation email) to act without querying the primary database.
type ReservationConfirmedEvent struct {
    EventID        string  `json:"event_id"`
    ReservationID  uint64  `json:"reservation_id"`
    CustomerName   string  `json:"customer_name"`
    Type           string  `json:"type"`
    ReferenceTitle string  `json:"reference_title"`
    StartDate      string  `json:"start_date,omitempty"`
    EndDate        string  `json:"end_date,omitempty"`
    PersonCount    int64   `json:"person_count"`
    Total          float64 `json:"total"`
    ConfirmedAt    string  `json:"confirmed_at"`
}
