package routes

import "github.com/gofiber/fiber/v3"

// RegisterV1 mounts the public skill routes and, when an auth middleware is
// configured, the per-user analysis routes.
func RegisterV1(r fiber.Router, reg *Registry) {
	if r == nil || reg == nil {
		return
	}

	if reg.Skills != nil {
		reg.Skills.RegisterRoutes(r)
	}

	if reg.Auth == nil {
		return
	}
	protected := r.Group("", reg.Auth.Middleware())
	if reg.Analyses != nil {
		reg.Analyses.RegisterRoutes(protected)
	}
	if reg.LearningPath != nil {
		reg.LearningPath.RegisterRoutes(protected)
	}
	if reg.Profile != nil {
		reg.Profile.RegisterRoutes(protected)
	}
}
