package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/notewire/notewire/internal/pkg/middleware"
	"github.com/notewire/notewire/internal/pkg/oauth"
	"github.com/notewire/notewire/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	h.registerPublicRoutes(app)
	h.registerCSRFProtectedRoutes(app)
	h.registerOAuthRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
