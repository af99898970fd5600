package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// APIKeyMiddleware rejects requests that do not carry the configured key in
// the X-API-KEY header. An empty configured key disables the check, which is
// the development default.
func APIKeyMiddleware(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if apiKey == "" {
				return next(ctx)
			}

			if ctx.Request().Header.Get("X-API-KEY") != apiKey {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid or missing API key",
				})
			}

			return next(ctx)
		}
	}
}

// RequestLoggerMiddleware tags every request with a generated request id,
// echoes it in the X-Request-ID response header, and logs method, path,
// status and duration through the structured logger.
func RequestLoggerMiddleware(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requestID := ctx.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			ctx.Response().Header().Set(echo.HeaderXRequestID, requestID)

			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			logger.InfoContext(ctx.Request().Context(), "request handled",
				"request_id", requestID,
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"status", ctx.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			return err
		}
	}
}
