package router

import (
	"scheduler-api/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	UserController *controller.UserController
}

func NewUserRouter(userController *controller.UserController) *UserRouter {
	return &UserRouter{
		UserController: userController,
	}
}

// Register mounts the user routes and the email login lookup on g.
func (r *UserRouter) Register(g *echo.Group) {
	g.GET("/login/:email", r.UserController.Login)

	userRoutes := g.Group("/users")
	userRoutes.POST("", r.UserController.CreateUser)
	userRoutes.GET("/:userId", r.UserController.GetUser)
	userRoutes.PUT("/:userId/update", r.UserController.UpdateUser)
	userRoutes.DELETE("/:userId/delete", r.UserController.DeleteUser)
}
