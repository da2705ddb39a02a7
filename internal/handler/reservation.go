package handler

import (
    "context"
    "errors"
    "log"
    "net/http"
    "strconv"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/atlastours/reservation-analytics/internal/model"
    "github.com/atlastours/reservation-analytics/internal/queue"
    "github.com/atlastours/reservation-analytics/internal/repository"
    queue_publisher "github.com/atlastours/reservation-analytics/internal/service"
)

// reservationStore is the slice of the reservation gateway this handler
// needs; *repository.ReservationRepo satisfies it.
type reservationStore interface {
    List(ctx context.Context, from, to *time.Time) ([]repository.ReservationRow, error)
    GetByID(ctx context.Context, id uint64) (*model.Reservation, error)
    UpdateStatus(ctx context.Context, id uint64, status string) error
}

// circuitResolver, tripResolver and vehicleResolver look up the reference a
// confirmed reservation points at, for the event payload.
type circuitResolver interface {
    GetByID(ctx context.Context, id uint64) (*model.Circuit, error)
}

type tripResolver interface {
    GetByID(ctx context.Context, id uint64) (*model.Trip, error)
}

type vehicleResolver interface {
    GetByID(ctx context.Context, id uint64) (*model.Vehicle, error)
}

// ReservationHandler serves the admin reservation pipeline: listing bookings
// and moving them through their status lifecycle. Confirming a reservation
// publishes a reservation.confirmed event for the booking log and the
// confirmation-email worker.
type ReservationHandler struct {
    Reservations reservationStore
    Circuits     circuitResolver
    Trips        tripResolver
    Vehicles     vehicleResolver

    // Publish overrides the broker publisher; nil means RabbitMQ.
    Publish func(ctx context.Context, ev queue.ReservationConfirmedEvent) error
}

// statusUpdateRequest is the body of PATCH /v1/admin/reservations/:id/status.
type statusUpdateRequest struct {
    Status string `json:"status"`
}

// ListReservations handles GET /v1/admin/reservations. Optional from/to
// query parameters (RFC3339) bound the created_at range; either side may be
// open. Rows come back newest first.
func (h *ReservationHandler) ListReservations(c echo.Context) error {
    ctx := c.Request().Context()

    var from, to *time.Time
    if raw := c.QueryParam("from"); raw != "" {
        t, err := time.Parse(time.RFC3339, raw)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid from timestamp"})
        }
        from = &t
    }
    if raw := c.QueryParam("to"); raw != "" {
        t, err := time.Parse(time.RFC3339, raw)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid to timestamp"})
        }
        to = &t
    }

    rows, err := h.Reservations.List(ctx, from, to)
    if err != nil {
        log.Printf("reservations: list failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": rows})
}

// UpdateReservationStatus handles PATCH /v1/admin/reservations/:id/status.
// Only confirmed and cancelled are valid targets; pending is the creation
// state, not a transition. Confirming publishes the confirmation event as
// best effort — a broker outage never fails the status change itself.
func (h *ReservationHandler) UpdateReservationStatus(c echo.Context) error {
    ctx := c.Request().Context()

    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
    }

    var req statusUpdateRequest
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
    }
    if req.Status != model.StatusConfirmed && req.Status != model.StatusCancelled {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "status must be confirmed or cancelled"})
    }

    res, err := h.Reservations.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrReservationNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
        }
        log.Printf("reservations: load %d failed: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
    }

    if err := h.Reservations.UpdateStatus(ctx, id, req.Status); err != nil {
        if errors.Is(err, repository.ErrReservationNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
        }
        log.Printf("reservations: update %d failed: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
    }

    if req.Status == model.StatusConfirmed {
        publish := h.Publish
        if publish == nil {
            publish = queue_publisher.PublishReservationConfirmed
        }
        if err := publish(ctx, h.confirmationEvent(c, res)); err != nil {
            log.Printf("reservations: confirm event for %d not published: %v", id, err)
        }
    }

    return c.JSON(http.StatusOK, echo.Map{"id": id, "status": req.Status})
}

// confirmationEvent assembles the event payload, resolving the reference
// title from whichever catalog the reservation points at. A missing
// reference leaves the title empty rather than blocking the confirmation.
func (h *ReservationHandler) confirmationEvent(c echo.Context, res *model.Reservation) queue.ReservationConfirmedEvent {
    ctx := c.Request().Context()

    title := ""
    switch res.Type {
    case model.TypeCircuit:
        if res.CircuitID != nil {
            if circuit, err := h.Circuits.GetByID(ctx, *res.CircuitID); err == nil {
                title = circuit.Title
            }
        }
    case model.TypeTrip:
        if res.TripID != nil {
            if trip, err := h.Trips.GetByID(ctx, *res.TripID); err == nil {
                title = trip.Title
            }
        }
    case model.TypeVehicle:
        if res.VehicleID != nil {
            if vehicle, err := h.Vehicles.GetByID(ctx, *res.VehicleID); err == nil {
                title = vehicle.Name
            }
        }
    }

    ev := queue.ReservationConfirmedEvent{
        EventID:        uuid.NewString(),
        ReservationID:  res.ID,
        CustomerName:   res.FullName,
        Type:           res.Type,
        ReferenceTitle: title,
        PersonCount:    res.PersonCount,
        Total:          res.Total,
        ConfirmedAt:    time.Now().UTC().Format(time.RFC3339),
    }
    if res.StartDate != nil {
        ev.StartDate = res.StartDate.UTC().Format(time.RFC3339)
    }
    if res.EndDate != nil {
        ev.EndDate = res.EndDate.UTC().Format(time.RFC3339)
    }
    return ev
}
