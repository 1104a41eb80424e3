package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/markbates/goth"
	gothfiber "github.com/shareed2k/goth_fiber"
	"gorm.io/gorm"

	"github.com/notewire/notewire/app/models"
	"github.com/notewire/notewire/app/repository"
	"github.com/notewire/notewire/internal/pkg/constants"
	"github.com/notewire/notewire/internal/pkg/session"
	"github.com/notewire/notewire/internal/pkg/usercontext"
)

// HandleOAuthCallback completes the provider flow and logs the user in.
// Returning identities resolve through their stored provider link, fresh
// ones match by email, and first-time visitors get a local account with an
// unusable placeholder password.
func HandleOAuthCallback(c *fiber.Ctx) error {
	u, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(fmt.Sprintf("OAuth failed: %v", err))
	}

	users := repository.GetGlobalRepositories().User

	appUser, err := users.GetByProviderAccount(u.Provider, u.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		appUser, err = resolveByEmail(users, u)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(fmt.Sprintf("db error: %v", err))
	}

	link := &models.ProviderAccount{
		UserID:         appUser.ID,
		Provider:       u.Provider,
		ProviderUserID: u.UserID,
		AccessToken:    u.AccessToken,
		RefreshToken:   u.RefreshToken,
	}
	if !u.ExpiresAt.IsZero() {
		expires := u.ExpiresAt
		link.ExpiresAt = &expires
	}
	if err := users.LinkProviderAccount(link); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(fmt.Sprintf("link provider failed: %v", err))
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("session init failed")
	}
	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, appUser.ID)
	sess.Set(usercontext.KeyUsername, appUser.Name)
	sess.Set(usercontext.KeyIsAdmin, appUser.IsAdmin())
	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("session save failed")
	}

	now := time.Now()
	appUser.LastLoginAt = &now
	_ = users.Update(appUser)

	return c.Redirect(constants.HomeRoute, fiber.StatusFound)
}

// resolveByEmail finds or creates the local account for a provider identity
// that has no stored link yet.
func resolveByEmail(users repository.UserRepository, u goth.User) (*models.User, error) {
	email := u.Email
	if email == "" {
		// Unique, non-empty stand-in so the email unique index holds
		email = fmt.Sprintf("%s_%s@%s.oauth.local", u.Provider, u.UserID, u.Provider)
	}

	appUser, err := users.GetByEmail(email)
	if err == nil {
		return appUser, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	placeholder := fmt.Sprintf("oauth_%d", time.Now().UnixNano())
	hash, _ := models.HashPassword(placeholder)
	appUser = &models.User{
		Name:     firstNonEmpty(u.Name, u.NickName, u.Email, "User"),
		Email:    email,
		Password: hash,
		Role:     models.ROLE_USER,
		Status:   models.STATUS_ACTIVE,
	}
	if err := users.Create(appUser); err != nil {
		return nil, err
	}
	return appUser, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
