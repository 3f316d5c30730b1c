package router

import (
	"scheduler-api/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{
		AvailabilityController: availabilityController,
	}
}

func (r *AvailabilityRouter) Register(g *echo.Group) {
	availabilityRoutes := g.Group("/availabilities")

	availabilityRoutes.POST("", r.AvailabilityController.CreateAvailability)
	availabilityRoutes.GET("/:availabilityId", r.AvailabilityController.GetAvailability)
}
