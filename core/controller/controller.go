package controller

import (
	"fmt"
	"net/http"

	"scheduler-api/core/errors"
	"scheduler-api/core/logger"

	"github.com/labstack/echo/v4"
)

// Response types
type (
	DataResponse struct {
		Data any `json:"data"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}
)

// Response handler interface and implementation
type BaseController interface {
	NotFound(message string) *errors.AppError
	BadRequest(err error) *errors.AppError
	SuccessResponse(c echo.Context, status int, data any) error
	MessageResponse(c echo.Context, status int, message string) error
	ErrorResponse(c echo.Context, err error) error
}

type responseHandler struct{}

func NewBaseController() BaseController {
	return &responseHandler{}
}

func (h *responseHandler) NotFound(message string) *errors.AppError {
	return errors.NotFound(message)
}

func (h *responseHandler) BadRequest(err error) *errors.AppError {
	return errors.InvalidData(err)
}

func (h *responseHandler) SuccessResponse(c echo.Context, status int, data any) error {
	return c.JSON(status, DataResponse{Data: data})
}

func (h *responseHandler) MessageResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, MessageResponse{Message: message})
}

// ErrorResponse renders err as {"message": ...}. Application errors keep their
// message; echo errors keep their status; anything else is a 500 whose detail
// is logged and never sent.
func (h *responseHandler) ErrorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	msg := errors.MsgInternalServer

	var appErr *errors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.HTTPStatus()
		if status != http.StatusInternalServerError && appErr.Message != "" {
			msg = appErr.Message
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if status < http.StatusInternalServerError {
			msg = fmt.Sprint(httpErr.Message)
		}
	}

	reqLog := logger.FromContext(c.Request().Context())
	if status >= http.StatusInternalServerError {
		reqLog.Error().Err(err).Int("status", status).Msg("BaseController:ErrorResponse")
	} else {
		reqLog.Debug().Err(err).Int("status", status).Msg("BaseController:ErrorResponse")
	}

	if c.Request().Method == http.MethodHead {
		return c.NoContent(status)
	}
	return c.JSON(status, MessageResponse{Message: msg})
}

// HTTPErrorHandler is the terminal error handler installed on echo.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if respErr := NewBaseController().ErrorResponse(c, err); respErr != nil {
		logger.Error("BaseController:HTTPErrorHandler", respErr)
	}
}
