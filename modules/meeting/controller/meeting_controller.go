package controller

import (
	"net/http"

	"scheduler-api/core/controller"
	"scheduler-api/core/utils"
	"scheduler-api/core/validation"
	"scheduler-api/modules/meeting/dto"
	"scheduler-api/modules/meeting/service"

	"github.com/labstack/echo/v4"
)

// MeetingController handles meeting HTTP requests
type MeetingController struct {
	controller.BaseController
	MeetingService service.MeetingServiceInterface
}

// NewMeetingController creates a new controller
func NewMeetingController(svc service.MeetingServiceInterface) *MeetingController {
	return &MeetingController{
		BaseController: controller.NewBaseController(),
		MeetingService: svc,
	}
}

// GetMeeting handles GET /meetings/:meetingId
func (c *MeetingController) GetMeeting(ctx echo.Context) error {
	meetingID, ok := utils.ParseID(ctx.Param("meetingId"))
	if !ok {
		return c.NotFound(service.MsgMeetingNotFound)
	}

	result, appErr := c.MeetingService.GetMeeting(ctx.Request().Context(), meetingID)
	if appErr != nil {
		return appErr
	}

	return c.SuccessResponse(ctx, http.StatusOK, result)
}

// CreateMeeting handles POST /meetings
func (c *MeetingController) CreateMeeting(ctx echo.Context) error {
	var req dto.CreateMeetingRequest
	if appErr := validation.BindAndValidate(ctx, &req); appErr != nil {
		return appErr
	}

	result, appErr := c.MeetingService.CreateMeeting(ctx.Request().Context(), &req)
	if appErr != nil {
		return appErr
	}

	return c.SuccessResponse(ctx, http.StatusCreated, result)
}

// UpdateMeeting handles PUT /meetings/:meetingId
func (c *MeetingController) UpdateMeeting(ctx echo.Context) error {
	meetingID, ok := utils.ParseID(ctx.Param("meetingId"))
	if !ok {
		return c.NotFound(service.MsgMeetingNotFound)
	}

	var req dto.UpdateMeetingRequest
	if appErr := validation.BindAndValidate(ctx, &req); appErr != nil {
		return appErr
	}

	result, appErr := c.MeetingService.UpdateMeeting(ctx.Request().Context(), meetingID, &req)
	if appErr != nil {
		return appErr
	}

	return c.SuccessResponse(ctx, http.StatusOK, result)
}

// UpdateStatus handles PATCH /meetings/:meetingId. An empty body resets the
// status to PENDING.
func (c *MeetingController) UpdateStatus(ctx echo.Context) error {
	meetingID, ok := utils.ParseID(ctx.Param("meetingId"))
	if !ok {
		return c.NotFound(service.MsgMeetingNotFound)
	}

	var req dto.UpdateStatusRequest
	if appErr := validation.BindAndValidate(ctx, &req); appErr != nil {
		return appErr
	}

	result, appErr := c.MeetingService.UpdateStatus(ctx.Request().Context(), meetingID, &req)
	if appErr != nil {
		return appErr
	}

	return c.SuccessResponse(ctx, http.StatusOK, result)
}

// DeleteMeeting handles DELETE /meetings/:meetingId
func (c *MeetingController) DeleteMeeting(ctx echo.Context) error {
	meetingID, ok := utils.ParseID(ctx.Param("meetingId"))
	if !ok {
		return c.NotFound(service.MsgMeetingNotFound)
	}

	if appErr := c.MeetingService.DeleteMeeting(ctx.Request().Context(), meetingID); appErr != nil {
		return appErr
	}

	return c.MessageResponse(ctx, http.StatusOK, "meeting deleted")
}
