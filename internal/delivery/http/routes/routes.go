package routes

import (
	"skill-gap/internal/delivery/http/handler"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health       *handler.HealthHandler
	Skills       *handler.SkillHandler
	Analyses     *handler.AnalysisHandler
	LearningPath *handler.LearningPathHandler
	Profile      *handler.ProfileHandler
	WS           *ws.Handler

	Auth   *middleware.AuthMiddleware
	WSAuth *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.WS == nil || r.WSAuth == nil {
		return
	}
	app.Get("/ws/analyses", r.WSAuth.Middleware(), r.WS.HandleAnalysesWS)
}
