// This file defines the public catalog handlers. Booking forms and the
// dashboard's drill-down links read circuits, trips and vehicles from here;
// only display-safe fields are exposed.

package handler

import (
    "log"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/atlastours/reservation-analytics/internal/repository"
)

// CatalogHandler aggregates the reference-data repositories.
type CatalogHandler struct {
    Circuits *repository.CircuitRepo
    Trips    *repository.TripRepo
    Vehicles *repository.VehicleRepo
}

// CatalogItem is a circuit or trip exposed via the catalog API.
type CatalogItem struct {
    ID    uint64  `json:"id"`
    Title string  `json:"title"`
    Price float64 `json:"price"`
}

// VehicleItem is a fleet vehicle exposed via the catalog API.
type VehicleItem struct {
    ID     uint64 `json:"id"`
    Name   string `json:"name"`
    Status string `json:"status"`
}

// GetCircuits handles GET /v1/circuits.
func (h *CatalogHandler) GetCircuits(c echo.Context) error {
    circuits, err := h.Circuits.ListAll(c.Request().Context())
    if err != nil {
        log.Printf("catalog: list circuits failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
    }
    out := make([]CatalogItem, 0, len(circuits))
    for _, circuit := range circuits {
        out = append(out, CatalogItem{ID: circuit.ID, Title: circuit.Title, Price: circuit.Price})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetTrips handles GET /v1/trips.
func (h *CatalogHandler) GetTrips(c echo.Context) error {
    trips, err := h.Trips.ListAll(c.Request().Context())
    if err != nil {
        log.Printf("catalog: list trips failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
    }
    out := make([]CatalogItem, 0, len(trips))
    for _, trip := range trips {
        out = append(out, CatalogItem{ID: trip.ID, Title: trip.Title, Price: trip.Price})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetVehicles handles GET /v1/vehicles.
func (h *CatalogHandler) GetVehicles(c echo.Context) error {
    vehicles, err := h.Vehicles.ListAll(c.Request().Context())
    if err != nil {
        log.Printf("catalog: list vehicles failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
    }
    out := make([]VehicleItem, 0, len(vehicles))
    for _, v := range vehicles {
        out = append(out, VehicleItem{ID: v.ID, Name: v.Name, Status: v.Status})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}
