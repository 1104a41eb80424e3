package router

import (
	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/notewire/notewire/app/controllers"
	"github.com/notewire/notewire/internal/pkg/oauth"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Newsroom
	app.Get("/", controllers.HandleHome)
	app.Get("/news/:id", controllers.HandleNewsDetail)

	// Logout is available to everybody, including anonymous callers
	app.Get("/auth/logout", controllers.HandleAuthLogout)
	app.Post("/auth/logout", controllers.HandleAuthLogout)
}

// registerOAuthRoutes must run after the named /auth pages so the provider
// wildcard cannot shadow them.
func (h HttpRouter) registerOAuthRoutes(app *fiber.App) {
	if !oauth.Enabled() {
		return
	}
	app.Get("/auth/:provider", gothfiber.BeginAuthHandler)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)
}
