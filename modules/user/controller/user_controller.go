package controller

import (
	"net/http"

	"scheduler-api/core/controller"
	"scheduler-api/core/utils"
	"scheduler-api/core/validation"
	"scheduler-api/modules/user/dto"
	"scheduler-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

type UserController struct {
	controller.BaseController
	UserService service.UserServiceInterface
}

func NewUserController(svc service.UserServiceInterface) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    svc,
	}
}

// Login handles GET /login/:email
func (c *UserController) Login(ctx echo.Context) error {
	email := utils.PathValue(ctx.Param("email"))

	result, appErr := c.UserService.Login(ctx.Request().Context(), email)
	if appErr != nil {
		return appErr
	}

	return c.SuccessResponse(ctx, http.StatusOK, result)
}

// GetUser handles GET /users/:userId. The include query parameter is
// accepted for compatibility; relations are always loaded.
func (c *UserController) GetUser(ctx echo.Context) error {
	userID, ok := utils.ParseID(ctx.Param("userId"))
	if !ok {
		return c.NotFound(service.MsgUserNotFound)
	}

	result, appErr := c.UserService.GetUser(ctx.Request().Context(), userID)
	if appErr != nil {
		return appErr
	}

	return c.SuccessResponse(ctx, http.StatusOK, result)
}

// CreateUser handles POST /users
func (c *UserController) CreateUser(ctx echo.Context) error {
	var req dto.CreateUserRequest
	if appErr := validation.BindAndValidate(ctx, &req); appErr != nil {
		return appErr
	}

	result, appErr := c.UserService.CreateUser(ctx.Request().Context(), &req)
	if appErr != nil {
		return appErr
	}

	return c.SuccessResponse(ctx, http.StatusCreated, result)
}

// UpdateUser handles PUT /users/:userId/update
func (c *UserController) UpdateUser(ctx echo.Context) error {
	userID, ok := utils.ParseID(ctx.Param("userId"))
	if !ok {
		return c.NotFound(service.MsgUserNotFound)
	}

	var req dto.UpdateUserRequest
	if appErr := validation.BindAndValidate(ctx, &req); appErr != nil {
		return appErr
	}

	result, appErr := c.UserService.UpdateUser(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return appErr
	}

	return c.SuccessResponse(ctx, http.StatusOK, result)
}

// DeleteUser handles DELETE /users/:userId/delete
func (c *UserController) DeleteUser(ctx echo.Context) error {
	userID, ok := utils.ParseID(ctx.Param("userId"))
	if !ok {
		return c.NotFound(service.MsgUserNotFound)
	}

	if appErr := c.UserService.DeleteUser(ctx.Request().Context(), userID); appErr != nil {
		return appErr
	}

	return c.MessageResponse(ctx, http.StatusOK, "User deleted")
}
