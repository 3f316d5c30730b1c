package user

import (
	"scheduler-api/core/database"
	"scheduler-api/modules/user/controller"
	"scheduler-api/modules/user/repository"
	"scheduler-api/modules/user/router"
	"scheduler-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init registers the user routes and returns the repository so other
// modules can resolve users by email.
func Init(g *echo.Group, db database.IDatabase) repository.UserRepositoryInterface {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo)
	ctrl := controller.NewUserController(svc)

	router.NewUserRouter(ctrl).Register(g)

	return repo
}
