package controller

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"scheduler-api/core/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			err:        errors.NotFound("User not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"User not found"}`,
		},
		{
			name:       "invalid data",
			err:        errors.InvalidData(stderrors.New("email: required")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"invalid Data"}`,
		},
		{
			name:       "wrapped app error",
			err:        fmt.Errorf("handler: %w", errors.NotFound("meeting not found")),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"meeting not found"}`,
		},
		{
			name:       "internal app error hides detail",
			err:        errors.Internal(stderrors.New("pq: connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Internal server error"}`,
		},
		{
			name:       "echo route miss",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"Not Found"}`,
		},
		{
			name:       "echo method not allowed",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"message":"Method Not Allowed"}`,
		},
		{
			name:       "untyped error",
			err:        stderrors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			HTTPErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	_ = c.String(http.StatusOK, "done")
	HTTPErrorHandler(stderrors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestSuccessAndMessageResponse(t *testing.T) {
	e := echo.New()
	base := NewBaseController()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	assert.NoError(t, base.SuccessResponse(c, http.StatusCreated, map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"1"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	assert.NoError(t, base.MessageResponse(c, http.StatusOK, "User deleted"))
	assert.JSONEq(t, `{"message":"User deleted"}`, rec.Body.String())
}
