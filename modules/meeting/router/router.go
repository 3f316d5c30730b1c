package router

import (
	"scheduler-api/modules/meeting/controller"

	"github.com/labstack/echo/v4"
)

// MeetingRouter handles meeting routes
type MeetingRouter struct {
	MeetingController *controller.MeetingController
}

// NewMeetingRouter creates a new router
func NewMeetingRouter(meetingController *controller.MeetingController) *MeetingRouter {
	return &MeetingRouter{
		MeetingController: meetingController,
	}
}

// Register mounts the meeting routes on g
func (r *MeetingRouter) Register(g *echo.Group) {
	meetingRoutes := g.Group("/meetings")

	meetingRoutes.POST("", r.MeetingController.CreateMeeting)
	meetingRoutes.GET("/:meetingId", r.MeetingController.GetMeeting)
	meetingRoutes.PUT("/:meetingId", r.MeetingController.UpdateMeeting)
	meetingRoutes.PATCH("/:meetingId", r.MeetingController.UpdateStatus)
	meetingRoutes.DELETE("/:meetingId", r.MeetingController.DeleteMeeting)
}
