package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/notewire/notewire/internal/pkg/usercontext"
)

func isLoggedIn(c *fiber.Ctx) bool {
	return usercontext.IsLoggedIn(c)
}

// csrfToken returns the CSRF token for the request, or "" on routes where
// the middleware is not installed (API group, tests with CSRF disabled).
func csrfToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("csrf").(string); ok {
		return v
	}
	return ""
}

// safeNext returns a local redirect target from the next form/query value.
// Absolute URLs are rejected so the login flow cannot bounce off-site.
func safeNext(c *fiber.Ctx) string {
	next := c.FormValue("next")
	if next == "" {
		next = c.Query("next")
	}
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return ""
}
