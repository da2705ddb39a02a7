package report

import (
    "context"
    "sort"
    "time"

    "golang.org/x/sync/errgroup"

    "github.com/atlastours/reservation-analytics/internal/repository"
)

// popularLimit caps the "popular" views; the "most reserved" views are never
// truncated.
const popularLimit = 5

// rollupMonths is the span of the trailing history, counted back from now.
const rollupMonths = 12

// maxParallelQueries bounds how many storage queries one report fans out at
// once.
const maxParallelQueries = 4

// ReservationStore is the slice of the reservation gateway the engine reads
// from. *repository.ReservationRepo satisfies it.
type ReservationStore interface {
    CountInWindow(ctx context.Context, start, end time.Time) (int64, error)
    ParticipantsInWindow(ctx context.Context, start, end time.Time) (repository.ParticipantSums, error)
    CircuitTotalsInWindow(ctx context.Context, start, end time.Time) ([]repository.ReferenceTotals, error)
    TripTotalsInWindow(ctx context.Context, start, end time.Time) ([]repository.ReferenceTotals, error)
    MonthlyCountsSince(ctx context.Context, since time.Time) ([]repository.MonthlyCount, error)
    ConfirmedRevenueInWindow(ctx context.Context, start, end time.Time) (float64, error)
    DistinctMonths(ctx context.Context) ([]string, error)
    DistinctYears(ctx context.Context) ([]string, error)
    ListInWindow(ctx context.Context, start, end time.Time) ([]repository.ReservationRow, error)
}

// CircuitStore exposes the circuit inventory count.
type CircuitStore interface {
    CountAll(ctx context.Context) (int64, error)
}

// VehicleStore exposes the available-vehicle inventory count.
type VehicleStore interface {
    CountAvailable(ctx context.Context) (int64, error)
}

// Service assembles dashboard reports. It holds no per-request state; every
// Build is an independent pure read and reports are safe to cache.
type Service struct {
    reservations ReservationStore
    circuits     CircuitStore
    vehicles     VehicleStore
    now          func() time.Time
}

// NewService returns a Service reading from the given stores.
func NewService(reservations ReservationStore, circuits CircuitStore, vehicles VehicleStore) *Service {
    return &Service{
        reservations: reservations,
        circuits:     circuits,
        vehicles:     vehicles,
        now:          time.Now,
    }
}

// Build resolves the reporting window from q and assembles the full report.
// The sub-aggregations have no data dependencies on one another and run
// concurrently; each one writes a disjoint set of report fields. Any storage
// failure cancels the remaining queries and fails the whole report — a
// partial report is never returned.
func (s *Service) Build(ctx context.Context, q PeriodQuery) (*Report, error) {
    now := s.now().UTC()
    periodType, win, err := ResolvePeriod(q, now)
    if err != nil {
        return nil, err
    }

    rep := &Report{
        Period: PeriodInfo{Type: periodType, Start: win.Start, End: win.End},
    }

    g, ctx := errgroup.WithContext(ctx)
    g.SetLimit(maxParallelQueries)

    g.Go(func() error {
        n, err := s.reservations.CountInWindow(ctx, win.Start, win.End)
        rep.TotalReservations = n
        return err
    })
    g.Go(func() error {
        sums, err := s.reservations.ParticipantsInWindow(ctx, win.Start, win.End)
        rep.TotalParticipants = sums.Persons
        rep.ParticipantBreakdown = ParticipantBreakdown{Adults: sums.Adults, Children: sums.Children}
        return err
    })
    g.Go(func() error {
        n, err := s.circuits.CountAll(ctx)
        rep.TotalCircuitsActive = n
        return err
    })
    g.Go(func() error {
        n, err := s.vehicles.CountAvailable(ctx)
        rep.TotalVehiclesAvailable = n
        return err
    })
    g.Go(func() error {
        totals, err := s.reservations.CircuitTotalsInWindow(ctx, win.Start, win.End)
        rep.PopularCircuits = rankPopular(totals)
        rep.MostReservedCircuits = rankMostReserved(totals)
        return err
    })
    g.Go(func() error {
        totals, err := s.reservations.TripTotalsInWindow(ctx, win.Start, win.End)
        rep.PopularTrips = rankPopular(totals)
        rep.MostReservedTrips = rankMostReserved(totals)
        return err
    })
    g.Go(func() error {
        // The trend chart always shows the trailing year, whatever window
        // the caller drilled into.
        counts, err := s.reservations.MonthlyCountsSince(ctx, now.AddDate(0, -rollupMonths, 0))
        buckets := make([]MonthlyBucket, 0, len(counts))
        for _, c := range counts {
            buckets = append(buckets, MonthlyBucket(c))
        }
        rep.MonthlyHistory = buckets
        return err
    })
    g.Go(func() error {
        sum, err := s.reservations.ConfirmedRevenueInWindow(ctx, win.Start, win.End)
        rep.TotalRevenue = sum
        return err
    })
    g.Go(func() error {
        months, err := s.reservations.DistinctMonths(ctx)
        if err != nil {
            return err
        }
        years, err := s.reservations.DistinctYears(ctx)
        rep.Period.AvailableMonths = months
        rep.Period.AvailableYears = years
        return err
    })
    g.Go(func() error {
        list, err := s.reservations.ListInWindow(ctx, win.Start, win.End)
        rep.ReservationsInPeriod = list
        return err
    })

    if err := g.Wait(); err != nil {
        return nil, err
    }
    return rep, nil
}

// rankPopular orders grouped totals by the composite popularity score
// reservationCount+participantCount, descending, and keeps the top entries.
// Ties break on entity ID ascending so rankings are reproducible.
func rankPopular(totals []repository.ReferenceTotals) []PopularityEntry {
    sorted := make([]repository.ReferenceTotals, len(totals))
    copy(sorted, totals)
    sort.Slice(sorted, func(i, j int) bool {
        si := sorted[i].ReservationCount + sorted[i].ParticipantCount
        sj := sorted[j].ReservationCount + sorted[j].ParticipantCount
        if si != sj {
            return si > sj
        }
        return sorted[i].ID < sorted[j].ID
    })
    if len(sorted) > popularLimit {
        sorted = sorted[:popularLimit]
    }
    out := make([]PopularityEntry, 0, len(sorted))
    for _, t := range sorted {
        out = append(out, PopularityEntry{
            ID:               t.ID,
            Title:            t.Title,
            ReservationCount: t.ReservationCount,
            ParticipantCount: t.ParticipantCount,
        })
    }
    return out
}

// rankMostReserved orders grouped totals by reservation count alone,
// descending, untruncated. Ties break on entity ID ascending.
func rankMostReserved(totals []repository.ReferenceTotals) []RankedEntry {
    sorted := make([]repository.ReferenceTotals, len(totals))
    copy(sorted, totals)
    sort.Slice(sorted, func(i, j int) bool {
        if sorted[i].ReservationCount != sorted[j].ReservationCount {
            return sorted[i].ReservationCount > sorted[j].ReservationCount
        }
        return sorted[i].ID < sorted[j].ID
    })
    out := make([]RankedEntry, 0, len(sorted))
    for _, t := range sorted {
        out = append(out, RankedEntry{
            ID:               t.ID,
            Title:            t.Title,
            ReservationCount: t.ReservationCount,
        })
    }
    return out
}
