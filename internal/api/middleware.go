package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/logger"
)

// requestIDMiddleware tags each request with an id and stores a logger
// carrying it in the request context.
func requestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: constants.HeaderRequestID,
		RequestIDHandler: func(c echo.Context, id string) {
			ctx := logger.With(c.Request().Context(), "request_id", id)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}

func requestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l := logger.FromContext(c.Request().Context())
			if v.Error != nil {
				l.Warnw("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "error", v.Error.Error())
				return nil
			}
			l.Infow("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	})
}
