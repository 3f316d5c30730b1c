package server

import (
	"context"
	"net/http"
	"time"

	"scheduler-api/core/logger"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const checkTimeout = 5 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

func RedisPinger(rdb *redis.Client) Pinger {
	return PingFunc(func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
}

type HealthHandler struct {
	env    string
	checks map[string]Pinger
}

func NewHealthHandler(env string, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{env: env, checks: checks}
}

// CheckHealth answers 200 when every dependency responds and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	l := logger.FromContext(c.Request().Context())

	healthy := true
	checks := make(map[string]any, len(h.checks))
	for name, p := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
		start := time.Now()
		err := p.Ping(ctx)
		cancel()

		result := map[string]any{
			"status":        "healthy",
			"response_time": time.Since(start).String(),
		}
		if err != nil {
			healthy = false
			result["status"] = "unhealthy"
			result["error"] = err.Error()
			l.Error().Err(err).Str("check", name).Msg("Health:Check")
		}
		checks[name] = result
	}

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.env,
		"checks":      checks,
	}

	if !healthy {
		response["status"] = "unhealthy"
		return c.JSON(http.StatusServiceUnavailable, response)
	}
	return c.JSON(http.StatusOK, response)
}
