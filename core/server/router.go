package server

import (
	"scheduler-api/core/controller"
	"scheduler-api/core/database"
	"scheduler-api/core/middleware"
	"scheduler-api/core/queue"
	"scheduler-api/core/validation"
	"scheduler-api/modules/availability"
	"scheduler-api/modules/meeting"
	"scheduler-api/modules/notification"
	"scheduler-api/modules/user"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// RouterDeps carries what the HTTP layer needs. Publisher and Worker may be
// nil when background jobs are disabled.
type RouterDeps struct {
	Env          string
	DB           database.IDatabase
	Publisher    queue.Publisher
	Worker       *queue.Worker
	Checks       map[string]Pinger
	AllowOrigins []string
}

func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = controller.HTTPErrorHandler
	e.Validator = validation.New()

	e.Pre(echomw.RemoveTrailingSlash())

	mw := middleware.NewMiddleware(deps.AllowOrigins...)
	e.Use(
		mw.RequestID(),
		mw.ContextLogger(),
		mw.RequestLogger(),
		mw.Recover(),
		mw.CORS(),
	)

	e.GET("/status", NewHealthHandler(deps.Env, deps.Checks).CheckHealth)

	v1 := e.Group("/v1")
	users := user.Init(v1, deps.DB)
	meeting.Init(v1, deps.DB, users, deps.Publisher)
	availability.Init(v1, deps.DB)
	notification.Init(v1, deps.DB, deps.Worker)

	return e
}
