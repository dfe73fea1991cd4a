package server

import (
	"context"

	"noteful-be/internal/bootstrap"
	"noteful-be/internal/config"
	"noteful-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.App.BodyLimit,
		// Errors are written by ErrorHandlerMiddleware; this catches what
		// happens before it runs, such as an oversized body.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return serverutils.WriteError(c, container.Logger, err)
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type, Location",
	}))

	// OpenTelemetry tracing middleware (no-op unless a provider is installed)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	registerRoutes(app, cfg.App.ApiPrefix, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("Server", "Server is running", map[string]interface{}{
		"addr": "http://localhost:" + s.cfg.App.Port + s.cfg.App.ApiPrefix,
	})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, prefix string, c *bootstrap.Container) {
	api := app.Group(prefix)

	c.NoteController.RegisterRoutes(api)
	c.FolderController.RegisterRoutes(api)
	c.TagController.RegisterRoutes(api)

	// Unknown routes under the API answer in the same error shape
	api.Use(func(ctx *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}
