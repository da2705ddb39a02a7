package middleware

import (
    "log"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"
    "go.opentelemetry.io/otel/trace"
)

// AccessLog logs one line per request with method, path, status, latency and
// a trace ID. The ID comes from the incoming span context when a tracer
// propagated one, otherwise a fresh UUID is generated so log lines stay
// correlatable.
func AccessLog() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now().UTC()

            err := next(c)

            traceID := ""
            if sc := trace.SpanContextFromContext(c.Request().Context()); sc.IsValid() {
                traceID = sc.TraceID().String()
            }
            if traceID == "" {
                traceID = uuid.NewString()
            }

            log.Printf("access: method=%s path=%s status=%d traceID=%s latency=%s",
                c.Request().Method,
                c.Request().URL.Path,
                c.Response().Status,
                traceID,
                time.Since(start),
            )
            return err
        }
    }
}
