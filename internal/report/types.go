package report

import (
    "time"

    "github.com/atlastours/reservation-analytics/internal/repository"
)

// PeriodInfo describes the resolved window plus the catalog of periods for
// which any reservation data exists, for the dashboard's period selector.
type PeriodInfo struct {
    Type            string    `json:"type"`
    Start           time.Time `json:"start"`
    End             time.Time `json:"end"`
    AvailableMonths []string  `json:"availableMonths"`
    AvailableYears  []string  `json:"availableYears"`
}

// PopularityEntry is one row of the truncated "popular" view, ranked by the
// composite score reservationCount+participantCount.
type PopularityEntry struct {
    ID               uint64 `json:"id"`
    Title            string `json:"title"`
    ReservationCount int64  `json:"reservationCount"`
    ParticipantCount int64  `json:"participantCount"`
}

// RankedEntry is one row of the untruncated "most reserved" view, ranked by
// reservation count alone.
type RankedEntry struct {
    ID               uint64 `json:"id"`
    Title            string `json:"title"`
    ReservationCount int64  `json:"reservationCount"`
}

// MonthlyBucket is one month of the trailing rollup, keyed "YYYY-MM". The
// series is sparse: months without reservations are absent, and chart
// consumers must fill gaps themselves.
type MonthlyBucket struct {
    Month            string `json:"month"`
    ReservationCount int64  `json:"reservationCount"`
    ParticipantCount int64  `json:"participantCount"`
}

// ParticipantBreakdown splits window participants by age class. Adults and
// Children are summed from their own columns; their sum may disagree with
// the report's totalParticipants when source rows are inconsistent.
type ParticipantBreakdown struct {
    Adults   int64 `json:"adults"`
    Children int64 `json:"children"`
}

// Report is the assembled dashboard response. The window-scoped figures
// (reservations, participants, rankings, listing, revenue) all honor the
// resolved period; TotalCircuitsActive and TotalVehiclesAvailable are live
// inventory counts, and MonthlyHistory always covers the trailing twelve
// months regardless of the active filter.
type Report struct {
    Period                 PeriodInfo                  `json:"period"`
    TotalCircuitsActive    int64                       `json:"totalCircuitsActive"`
    TotalVehiclesAvailable int64                       `json:"totalVehiclesAvailable"`
    TotalParticipants      int64                       `json:"totalParticipants"`
    TotalReservations      int64                       `json:"totalReservations"`
    ParticipantBreakdown   ParticipantBreakdown        `json:"participantBreakdown"`
    MostReservedCircuits   []RankedEntry               `json:"mostReservedCircuits"`
    MostReservedTrips      []RankedEntry               `json:"mostReservedTrips"`
    PopularCircuits        []PopularityEntry           `json:"popularCircuits"`
    PopularTrips           []PopularityEntry           `json:"popularTrips"`
    ReservationsInPeriod   []repository.ReservationRow `json:"reservationsInPeriod"`
    MonthlyHistory         []MonthlyBucket             `json:"monthlyHistory"`
    TotalRevenue           float64                     `json:"totalRevenue"`
}
