package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(context.Context) error { return nil }

func checkHealth(t *testing.T, checks map[string]Pinger) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	e.GET("/status", NewHealthHandler("test", checks).CheckHealth)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestCheckHealth_Healthy(t *testing.T) {
	code, body := checkHealth(t, map[string]Pinger{
		"database": PingFunc(ok),
		"redis":    PingFunc(ok),
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])

	checks := body["checks"].(map[string]any)
	assert.Len(t, checks, 2)
	assert.Equal(t, "healthy", checks["database"].(map[string]any)["status"])
}

func TestCheckHealth_DependencyDown(t *testing.T) {
	code, body := checkHealth(t, map[string]Pinger{
		"database": PingFunc(ok),
		"redis": PingFunc(func(context.Context) error {
			return stderrors.New("dial tcp: connection refused")
		}),
	})

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", body["status"])

	redis := body["checks"].(map[string]any)["redis"].(map[string]any)
	assert.Equal(t, "unhealthy", redis["status"])
	assert.Equal(t, "dial tcp: connection refused", redis["error"])
}

func TestCheckHealth_NoChecks(t *testing.T) {
	code, body := checkHealth(t, nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["checks"])
}
