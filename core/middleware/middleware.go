package middleware

import (
	"net/http"

	"scheduler-api/core/errors"
	"scheduler-api/core/logger"
	"scheduler-api/core/utils"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

type Middleware struct {
	allowOrigins []string
}

func NewMiddleware(allowOrigins ...string) *Middleware {
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	return &Middleware{allowOrigins: allowOrigins}
}

// RequestID reuses an incoming X-Request-ID or generates one, and echoes it
// on the response.
func (m *Middleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = utils.GenerateRequestID()
			}

			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// ContextLogger stores a request-scoped logger in the request context.
// Must run after RequestID.
func (m *Middleware) ContextLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			l := logger.Get().With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Logger()

			ctx := logger.WithContext(c.Request().Context(), l)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogMethod:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			status := v.Status
			if v.Error != nil {
				var appErr *errors.AppError
				var echoErr *echo.HTTPError
				if errors.As(v.Error, &appErr) {
					status = appErr.HTTPStatus()
				} else if errors.As(v.Error, &echoErr) {
					status = echoErr.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			l := logger.FromContext(c.Request().Context())

			var e *zerolog.Event
			switch {
			case status >= http.StatusInternalServerError:
				e = l.Error().Err(v.Error)
			case status >= http.StatusBadRequest:
				e = l.Warn()
			default:
				e = l.Info()
			}

			e.Dur("latency", v.Latency).
				Int("status", status).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("ip", c.RealIP()).
				Msg("API")

			return nil
		},
	})
}

func (m *Middleware) Recover() echo.MiddlewareFunc {
	return echomw.Recover()
}

func (m *Middleware) CORS() echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: m.allowOrigins,
	})
}

func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
