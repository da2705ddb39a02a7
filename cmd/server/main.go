package main

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/atlastours/reservation-analytics/internal/config"
    "github.com/atlastours/reservation-analytics/internal/database"
    "github.com/atlastours/reservation-analytics/internal/handler"
    "github.com/atlastours/reservation-analytics/internal/queue"
    "github.com/atlastours/reservation-analytics/internal/report"
    "github.com/atlastours/reservation-analytics/internal/repository"
    "github.com/atlastours/reservation-analytics/internal/router"
)

func main() {
    // .env is optional; real deployments set the environment directly.
    _ = godotenv.Load()

    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer func() { _ = db.Close() }()

    reservationRepo := repository.NewReservationRepo(db)
    circuitRepo := repository.NewCircuitRepo(db)
    tripRepo := repository.NewTripRepo(db)
    vehicleRepo := repository.NewVehicleRepo(db)

    reports := handler.NewReportHandler(report.NewService(reservationRepo, circuitRepo, vehicleRepo))
    reservations := &handler.ReservationHandler{
        Reservations: reservationRepo,
        Circuits:     circuitRepo,
        Trips:        tripRepo,
        Vehicles:     vehicleRepo,
    }
    catalog := &handler.CatalogHandler{
        Circuits: circuitRepo,
        Trips:    tripRepo,
        Vehicles: vehicleRepo,
    }

    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable; report cache disabled")
    }

    e := echo.New()
    router.Register(e, reports, reservations, catalog, cfg.JWTSecret, config.LoadCacheConfig(), rdb)

    // Drains reservation.confirmed into the booking log; reconnects forever.
    go func() {
        if err := queue.StartReservationConsumer(); err != nil {
            log.Printf("reservation consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
