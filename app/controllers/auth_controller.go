package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/notewire/notewire/app/models"
	"github.com/notewire/notewire/app/repository"
	"github.com/notewire/notewire/internal/pkg/constants"
	"github.com/notewire/notewire/internal/pkg/session"
	"github.com/notewire/notewire/internal/pkg/usercontext"
)

// HandleAuthLogin renders the login page and processes credential submissions.
// A successful login honors the next parameter so gated routes return the
// caller to where they started.
func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{
			"type": "error",
		}

		// notice: in production you should not inform the user
		// with detailed messages about login failures
		user, err := repository.GetGlobalRepositories().User.GetByEmail(c.FormValue("email"))
		if err != nil {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect(constants.LoginRoute)
		}

		if !user.CheckPassword(c.FormValue("password")) {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect(constants.LoginRoute)
		}

		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect(constants.LoginRoute)
		}

		sess.Set(usercontext.AuthKey, true)
		sess.Set(usercontext.KeyUserID, user.ID)
		sess.Set(usercontext.KeyUsername, user.Name)
		sess.Set(usercontext.KeyIsAdmin, user.IsAdmin())

		if err := sess.Save(); err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect(constants.LoginRoute)
		}

		now := time.Now()
		user.LastLoginAt = &now
		_ = repository.GetGlobalRepositories().User.Update(user)

		target := safeNext(c)
		if target == "" {
			target = constants.HomeRoute
		}

		fm = fiber.Map{
			"type":    "success",
			"message": "Welcome back!",
		}

		return flash.WithSuccess(c, fm).Redirect(target)
	}

	return c.Render("auth/login", fiber.Map{
		"Title":     "Log in",
		"Next":      c.Query("next"),
		"Flash":     flash.Get(c),
		"CSRFToken": csrfToken(c),
	})
}

// HandleAuthSignup renders the signup page and creates accounts.
func HandleAuthSignup(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		user, err := models.CreateUser(c.FormValue("username"), c.FormValue("email"), c.FormValue("password"))
		if err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": fmt.Sprintf("something went wrong: %s", err),
			}

			return flash.WithError(c, fm).Redirect(constants.SignupRoute)
		}

		if err := repository.GetGlobalRepositories().User.Create(user); err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": fmt.Sprintf("something went wrong: %s", err),
			}

			return flash.WithError(c, fm).Redirect(constants.SignupRoute)
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Account created, you can log in now!",
		}

		return flash.WithSuccess(c, fm).Redirect(constants.LoginRoute)
	}

	return c.Render("auth/signup", fiber.Map{
		"Title":     "Sign up",
		"Flash":     flash.Get(c),
		"CSRFToken": csrfToken(c),
	})
}

// HandleAuthLogout destroys any session and renders a logged-out page.
// Anonymous callers get the same 200 page, so the route is always available.
func HandleAuthLogout(c *fiber.Ctx) error {
	if sess, err := session.GetSessionStore().Get(c); err == nil {
		_ = sess.Destroy()
	}

	c.Locals(usercontext.KeyFromProtected, false)

	return c.Render("auth/logout", fiber.Map{
		"Title": "Logged out",
	})
}
