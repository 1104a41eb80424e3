package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/notewire/notewire/app/controllers"
	"github.com/notewire/notewire/internal/pkg/env"
	"github.com/notewire/notewire/internal/pkg/middleware"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			// The API group carries no cookies worth forging; handler
			// tests switch the check off entirely.
			return strings.HasPrefix(c.Path(), "/api/") ||
				env.GetEnv("CSRF_DISABLE", "") == "true"
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))

	// Auth pages
	group.Get("/auth/login", controllers.HandleAuthLogin)
	group.Post("/auth/login", controllers.HandleAuthLogin)
	group.Get("/auth/signup", controllers.HandleAuthSignup)
	group.Post("/auth/signup", controllers.HandleAuthSignup)

	// Comments on news articles
	group.Post("/news/:id", middleware.RequireAuth, controllers.HandleCommentCreate)
	group.Get("/comments/:id/edit", middleware.RequireAuth, controllers.HandleCommentEditForm)
	group.Post("/comments/:id/edit", middleware.RequireAuth, controllers.HandleCommentEdit)
	group.Get("/comments/:id/delete", middleware.RequireAuth, controllers.HandleCommentDeleteConfirm)
	group.Post("/comments/:id/delete", middleware.RequireAuth, controllers.HandleCommentDelete)
	group.Delete("/comments/:id/delete", middleware.RequireAuth, controllers.HandleCommentDelete)

	// Notes; static segments before the :slug catch-all
	group.Get("/notes", middleware.RequireAuth, controllers.HandleNotesList)
	group.Get("/notes/add", middleware.RequireAuth, controllers.HandleNoteAddForm)
	group.Post("/notes/add", middleware.RequireAuth, controllers.HandleNoteAdd)
	group.Get("/notes/done", middleware.RequireAuth, controllers.HandleNotesDone)
	group.Get("/notes/:slug", middleware.RequireAuth, controllers.HandleNoteDetail)
	group.Get("/notes/:slug/edit", middleware.RequireAuth, controllers.HandleNoteEditForm)
	group.Post("/notes/:slug/edit", middleware.RequireAuth, controllers.HandleNoteEdit)
	group.Get("/notes/:slug/delete", middleware.RequireAuth, controllers.HandleNoteDeleteConfirm)
	group.Post("/notes/:slug/delete", middleware.RequireAuth, controllers.HandleNoteDelete)
	group.Delete("/notes/:slug/delete", middleware.RequireAuth, controllers.HandleNoteDelete)
}
