// Package router wires HTTP routes to their handlers and middleware.
package router

import (
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/atlastours/reservation-analytics/internal/config"
    "github.com/atlastours/reservation-analytics/internal/handler"
    "github.com/atlastours/reservation-analytics/internal/middleware"
)

// Register mounts every route on e. Public routes: health and the reference
// catalogs. The admin group (report, reservation pipeline) requires an admin
// bearer token; the report route additionally sits behind the Redis response
// cache since it is a pure, repeatable read.
func Register(
    e *echo.Echo,
    reports *handler.ReportHandler,
    reservations *handler.ReservationHandler,
    catalog *handler.CatalogHandler,
    jwtSecret string,
    cacheCfg config.CacheConfig,
    rdb *redis.Client,
) {
    e.Use(middleware.AccessLog())

    e.GET("/healthz", handler.Health)

    e.GET("/v1/circuits", catalog.GetCircuits)
    e.GET("/v1/trips", catalog.GetTrips)
    e.GET("/v1/vehicles", catalog.GetVehicles)

    admin := e.Group("/v1/admin")
    admin.Use(middleware.AdminAuth(jwtSecret))

    admin.GET("/reports/reservations", reports.GetReservationReport,
        middleware.ReportCache(cacheCfg, rdb))
    admin.GET("/reservations", reservations.ListReservations)
    admin.PATCH("/reservations/:id/status", reservations.UpdateReservationStatus)
}
