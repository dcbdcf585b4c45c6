package handler

import (
	"net/http"

	"github.com/Astemirdum/booking-service/pkg/auth"
	"github.com/Astemirdum/booking-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

func newRateLimiterMW(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

// actorMiddleware lifts the identity resolved by the upstream gateway
// (X-User-Name / X-User-Role headers) into the request context. The engine
// itself never authenticates.
func actorMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		id := req.Header.Get(auth.XUserNameHeader)
		if id == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "user-name is empty")
		}
		role := req.Header.Get(auth.XUserRoleHeader)
		if role == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "user-role is empty")
		}
		ctx := auth.SetAuthContext(req.Context(), id, auth.Role(role))
		c.SetRequest(req.WithContext(ctx))
		return next(c)
	}
}

func requestLoggerConfig() middleware.RequestLoggerConfig {
	log := logger.NewLogger(logger.Log{LogLevel: zapcore.DebugLevel}, "echo")
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}
