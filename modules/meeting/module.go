package meeting

import (
	"scheduler-api/core/database"
	"scheduler-api/core/queue"
	"scheduler-api/modules/meeting/controller"
	"scheduler-api/modules/meeting/repository"
	"scheduler-api/modules/meeting/router"
	"scheduler-api/modules/meeting/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the meeting module and registers routes
func Init(g *echo.Group, db database.IDatabase, users service.UserFinder, publisher queue.Publisher) {
	repo := repository.NewMeetingRepository(db)
	svc := service.NewMeetingService(repo, users, publisher)
	ctrl := controller.NewMeetingController(svc)

	router.NewMeetingRouter(ctrl).Register(g)
}
