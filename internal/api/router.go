package api

import (
	"time"

	"scheme-navigator/docs"
	"scheme-navigator/internal/api/handlers"
	"scheme-navigator/pkg/auth"
	"scheme-navigator/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handlers struct {
	Schemes         *handlers.SchemeHandler
	Chat            *handlers.ChatHandler
	Recommendations *handlers.RecommendationHandler
	Admin           *handlers.AdminHandler
}

type Options struct {
	CORSOrigins  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// AccessLog enables fiber's access log on stdout.
	AccessLog bool
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, opts Options, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestContext(appLogger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	if opts.AccessLog {
		app.Use(logger.New())
	}

	_ = docs.SwaggerInfo // registers the swagger spec
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Government Schemes API")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Admin routes
	admin := app.Group("/api/v1/admin", middleware.AdminMiddleware(jwtManager, appLogger))
	admin.Post("/reload", h.Admin.Reload)

	// Public API
	api := app.Group("/api")
	api.Post("/chatbot", h.Chat.Chat)
	api.Post("/chatbot/lookup", h.Chat.Lookup)
	api.Post("/recommend", h.Recommendations.Recommend)
	api.Get("/all", h.Schemes.ListAll)
	api.Get("/:category", h.Schemes.ListCategory)

	return app
}
