package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/notewire/notewire/internal/pkg/constants"
	icuser "github.com/notewire/notewire/internal/pkg/usercontext"
)

// RequireAuth ensures a logged-in web session; anonymous callers are sent to
// the login page with the originally requested path in the next parameter.
func RequireAuth(c *fiber.Ctx) error {
	if !loggedIn(c) {
		return c.Redirect(constants.LoginRoute+"?next="+c.Path(), fiber.StatusFound)
	}
	return c.Next()
}

// RequireAPISessionAuth ensures a logged-in session for API routes and returns JSON 401 instead of redirect.
func RequireAPISessionAuth(c *fiber.Ctx) error {
	if !loggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}

func loggedIn(c *fiber.Ctx) bool {
	v := c.Locals(icuser.KeyFromProtected)
	b, ok := v.(bool)
	return ok && b
}
