package controller

import (
	"context"
	"net/http"

	"scheduler-api/core/controller"
	"scheduler-api/core/errors"
	"scheduler-api/core/utils"
	"scheduler-api/modules/notification/dto"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NotificationLister interface {
	GetUserNotifications(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, *errors.AppError)
}

type NotificationController struct {
	controller.BaseController
	NotificationService NotificationLister
}

func NewNotificationController(service NotificationLister) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		NotificationService: service,
	}
}

// GetUserNotifications handles GET /users/:userId/notifications, newest
// first.
func (c *NotificationController) GetUserNotifications(ctx echo.Context) error {
	userID, ok := utils.ParseID(ctx.Param("userId"))
	if !ok {
		return c.NotFound("User not found")
	}

	result, appErr := c.NotificationService.GetUserNotifications(ctx.Request().Context(), userID)
	if appErr != nil {
		return appErr
	}

	return c.SuccessResponse(ctx, http.StatusOK, result)
}
