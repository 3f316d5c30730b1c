package controller

import (
	"net/http"

	"scheduler-api/core/controller"
	"scheduler-api/core/utils"
	"scheduler-api/core/validation"
	"scheduler-api/modules/availability/dto"
	"scheduler-api/modules/availability/service"

	"github.com/labstack/echo/v4"
)

type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

// GetAvailability handles GET /availabilities/:availabilityId
func (c *AvailabilityController) GetAvailability(ctx echo.Context) error {
	availabilityID, ok := utils.ParseID(ctx.Param("availabilityId"))
	if !ok {
		return c.NotFound(service.MsgAvailabilityNotFound)
	}

	result, appErr := c.AvailabilityService.GetAvailability(ctx.Request().Context(), availabilityID)
	if appErr != nil {
		return appErr
	}

	return c.SuccessResponse(ctx, http.StatusOK, result)
}

// CreateAvailability handles POST /availabilities
func (c *AvailabilityController) CreateAvailability(ctx echo.Context) error {
	var req dto.CreateAvailabilityRequest
	if appErr := validation.BindAndValidate(ctx, &req); appErr != nil {
		return appErr
	}

	result, appErr := c.AvailabilityService.CreateAvailability(ctx.Request().Context(), &req)
	if appErr != nil {
		return appErr
	}

	return c.SuccessResponse(ctx, http.StatusCreated, result)
}
