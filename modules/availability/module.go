package availability

import (
	"scheduler-api/core/database"
	"scheduler-api/modules/availability/controller"
	"scheduler-api/modules/availability/repository"
	"scheduler-api/modules/availability/router"
	"scheduler-api/modules/availability/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.IDatabase) {
	repo := repository.NewAvailabilityRepository(db)
	svc := service.NewAvailabilityService(repo)
	ctrl := controller.NewAvailabilityController(svc)

	router.NewAvailabilityRouter(ctrl).Register(g)
}
