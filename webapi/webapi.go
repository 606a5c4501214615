// Package webapi provides the HTTP boundary of the ledger.
// Ledger routes live in the account sub-package; this package wires them into a
// Fiber app together with health, metrics and API documentation endpoints.
package webapi

import (
	"strings"

	_ "github.com/amirasaad/finledger/docs" // registers the swagger document
	"github.com/amirasaad/finledger/pkg/app"
	accountweb "github.com/amirasaad/finledger/webapi/account"
	"github.com/amirasaad/finledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthResponse is returned by the root route.
type HealthResponse struct {
	Working bool `json:"working"`
}

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "finledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), common.ErrorMessage(err))
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	if rl := app.Config.RateLimit; rl != nil && rl.MaxRequests > 0 {
		// Uses X-Forwarded-For header when behind a proxy
		// Falls back to X-Real-IP or direct IP if needed
		fiberApp.Use(limiter.New(limiter.Config{
			Max:        rl.MaxRequests,
			Expiration: rl.Window,
			KeyGenerator: func(c *fiber.Ctx) string {
				if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
					// Take the first IP in the chain
					if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
						return strings.TrimSpace(forwardedFor[:commaIndex])
					}
					return strings.TrimSpace(forwardedFor)
				}
				if realIP := c.Get("X-Real-IP"); realIP != "" {
					return realIP
				}
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests")
			},
		}))
	}
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{Working: true})
	})

	if app.Deps.Registry != nil {
		fiberApp.Get("/metrics", adaptor.HTTPHandler(
			promhttp.HandlerFor(app.Deps.Registry, promhttp.HandlerOpts{}),
		))
	}

	accountweb.Routes(fiberApp, app.AccountService)

	fiberApp.Use(func(c *fiber.Ctx) error {
		return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Not Found")
	})
	return fiberApp
}
