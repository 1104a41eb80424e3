package oauth

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	redisstorage "github.com/gofiber/storage/redis"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/notewire/notewire/internal/pkg/cache"
	"github.com/notewire/notewire/internal/pkg/env"
)

// Enabled reports whether at least one provider has keys configured.
func Enabled() bool {
	return env.GetEnv("GOOGLE_KEY", "") != "" || env.GetEnv("GITHUB_KEY", "") != ""
}

// Setup initializes Goth providers and session store based on environment variables.
// It is safe to call multiple times; providers will just be re-registered.
func Setup() {
	if !Enabled() {
		return
	}

	base := strings.TrimRight(env.GetEnv("PUBLIC_DOMAIN", ""), "/")
	if base == "" {
		base = "http://localhost:" + env.GetEnv("APP_PORT", "4000")
	}

	var providers []goth.Provider
	if env.GetEnv("GOOGLE_KEY", "") != "" {
		providers = append(providers, google.New(
			env.GetEnv("GOOGLE_KEY", ""),
			env.GetEnv("GOOGLE_SECRET", ""),
			base+"/auth/google/callback",
			"email", "profile",
		))
	}
	if env.GetEnv("GITHUB_KEY", "") != "" {
		providers = append(providers, github.New(
			env.GetEnv("GITHUB_KEY", ""),
			env.GetEnv("GITHUB_SECRET", ""),
			base+"/auth/github/callback",
			"user:email",
		))
	}
	goth.UseProviders(providers...)

	cfg := session.Config{
		KeyLookup:      "cookie:" + gothic.SessionName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   !env.IsDev(),
		Expiration:     72 * time.Hour,
	}

	// OAuth state lives in redis next to the app sessions (separate DB)
	if cache.Enabled() {
		port := 6379
		if v, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379")); err == nil {
			port = v
		}
		cfg.Storage = redisstorage.New(redisstorage.Config{
			Host:     env.GetEnv("CACHE_HOST", "localhost"),
			Port:     port,
			Password: env.GetEnv("CACHE_PASSWORD", ""),
			Database: 2,
			Reset:    false,
		})
	}

	gothfiber.SessionStore = session.New(cfg)
}
