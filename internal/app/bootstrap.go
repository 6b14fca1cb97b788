package app

import (
	"fmt"
	"strings"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New assembles the HTTP application on top of an already-connected
// container: global middleware first, then every route through the registry.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)

	ws.SetDefaultHub(c.Hub)
	go c.Hub.Run()

	registry := routes.NewRegistry(routes.Deps{
		Config: c.Config,
		DB:     c.DB,
		Cache:  c.Cache,
		Hub:    c.Hub,
		Logger: c.Logger,
	})
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
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
