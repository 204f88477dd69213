package server

import (
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"ums-chatbot-be/internal/config"
	"ums-chatbot-be/internal/pkg/logger"
	"ums-chatbot-be/internal/pkg/serverutils"
)

// RouteRegistrar lets each binary (gateway, retrieval) plug its own
// controller routes into the shared middleware stack.
type RouteRegistrar func(app fiber.Router)

type Server struct {
	app *fiber.App
	cfg *config.Config
}

func New(cfg *config.Config, sysLogger logger.ILogger, registerRoutes RouteRegistrar) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB; requests carry a single question
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.RequestLoggerMiddleware(sysLogger))
	app.Use(serverutils.ErrorHandlerMiddleware(sysLogger, cfg.App.Environment))

	// Routes
	registerRoutes(app)

	// Fallback for anything unmatched
	app.Use(func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":  "Route not found",
			"path":   ctx.Path(),
			"method": ctx.Method(),
		})
	})

	return &Server{
		app: app,
		cfg: cfg,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}
