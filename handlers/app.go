// handlers/app.go
package handlers

import (
	"strings"

	"fighter-arena/middleware"
	"fighter-arena/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type AppOptions struct {
	BodyLimit      int
	AllowedOrigins []string
	ServiceToken   string
	AccessLog      bool
}

type Services struct {
	Fighters *services.FighterService
	Contests *services.ContestService
	Health   *services.HealthService
}

// NewApp builds the Fiber application with middlewares and every route.
func NewApp(opts AppOptions, svc Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "fighter-arena",
		BodyLimit: opts.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	if len(opts.AllowedOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(opts.AllowedOrigins, ","),
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,HEAD",
			AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
			MaxAge:       86400, // 24 hours
		}))
	}

	// 🔓 Probes stay reachable without the service token
	app.Use(middleware.ServiceTokenMiddleware(opts.ServiceToken, "/healthz", "/readyz"))
	app.Get("/healthz", svc.Health.Healthz)
	app.Get("/readyz", svc.Health.Readyz)

	api := app.Group("/api")
	SetupFighterRoutes(api, svc.Fighters)
	SetupContestRoutes(api, svc.Contests)

	return app
}
