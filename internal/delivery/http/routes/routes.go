package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Hassan141998/Job-Portal/internal/delivery/http/handler"
	"github.com/Hassan141998/Job-Portal/internal/delivery/http/middleware"
	"github.com/Hassan141998/Job-Portal/internal/ws"
)

// Registry owns every HTTP handler and knows where each one mounts.
type Registry struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Jobs      *handler.JobHandler
	Resumes   *handler.ResumeHandler
	Interview *handler.InterviewHandler
	WS        *ws.Handler

	AuthMW *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))

	if r.WS != nil {
		app.Get("/ws/applications", r.WS.HandleApplicationsWS)
	}
}
