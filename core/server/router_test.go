package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"scheduler-api/core/database"
	"scheduler-api/core/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db := database.NewWithSQLX(sqlx.NewDb(mockDB, "sqlmock"))
	return NewRouter(RouterDeps{Env: "test", DB: db}), mock
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_UnknownRoute(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nothing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_TrailingSlash(t *testing.T) {
	h, mock := newTestRouter(t)

	mock.ExpectQuery(`FROM availabilities WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "time_slot"}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/availabilities/7d1c6a2e-5a3b-4c55-9f0e-1b2c3d4e5f60/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"availability not found"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
