package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kjc6735/schedule-app/internal/auth/domain"
	"github.com/kjc6735/schedule-app/internal/auth/guard"
	"github.com/kjc6735/schedule-app/internal/auth/service"
)

// RegisterRoutes mounts every route and declares its guard metadata in one
// place. Routes without a declaration require authentication and admit any
// role; the /auth prefix default marks the whole controller public.
func RegisterRoutes(app *fiber.App, authHandler *AuthHandler, userHandler *UserHandler, tokens service.TokenGenerator) {
	registry := guard.NewRegistry()
	g := guard.New(tokens, registry)

	app.Use(g.Authenticate, g.Authorize)

	registry.SetDefault("/auth", guard.Public())
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/register", authHandler.Register)

	registry.Declare(fiber.MethodGet, "/users", guard.Roles(domain.RoleManager, domain.RoleOwner))
	app.Get("/users", userHandler.GetUsers)
	app.Get("/users/:id", userHandler.GetUser)

	registry.SetDefault("/health", guard.Public())
	app.Get("/health/live", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/health/ready", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
}
