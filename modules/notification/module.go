package notification

import (
	"scheduler-api/core/database"
	"scheduler-api/core/queue"
	"scheduler-api/modules/notification/controller"
	"scheduler-api/modules/notification/dto"
	"scheduler-api/modules/notification/repository"
	"scheduler-api/modules/notification/router"
	"scheduler-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init registers the read route and, when a worker is given, the task
// handlers that record notifications.
func Init(g *echo.Group, db database.IDatabase, worker *queue.Worker) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(g)

	if worker != nil {
		worker.Handle(dto.TypeMeetingCreated, svc.HandleMeetingCreated)
		worker.Handle(dto.TypeMeetingStatusChanged, svc.HandleMeetingStatusChanged)
	}

	return svc
}
