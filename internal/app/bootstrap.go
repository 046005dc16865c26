package app

import (
	"fmt"
	"log"
	"strings"

	"skill-gap/internal/config"
	"skill-gap/internal/delivery/http/handler"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/delivery/http/routes"
	"skill-gap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP app on top of an already wired container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registry(c).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func registry(c *Container) *routes.Registry {
	checks := map[string]handler.Pinger{}
	if c.DB != nil {
		checks["postgres"] = c.DB
	}
	if c.Cache != nil && c.Cache.Available() {
		checks["redis"] = c.Cache
	}

	return &routes.Registry{
		Health:       handler.NewHealthHandler(checks),
		Skills:       handler.NewSkillHandler(c.Skills),
		Analyses:     handler.NewAnalysisHandler(c.Analysis),
		LearningPath: handler.NewLearningPathHandler(c.Analysis),
		Profile:      handler.NewProfileHandler(c.Profile),
		WS:           ws.NewHandler(c.Hub, c.Logger),
		Auth:         middleware.NewAuthMiddleware(c.JWT),
		WSAuth:       middleware.NewQueryAuthMiddleware(c.JWT),
	}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
