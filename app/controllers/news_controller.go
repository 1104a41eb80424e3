package controllers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/notewire/notewire/app/forms"
	"github.com/notewire/notewire/app/models"
	"github.com/notewire/notewire/app/repository"
	"github.com/notewire/notewire/internal/pkg/cache"
	"github.com/notewire/notewire/internal/pkg/env"
	"github.com/notewire/notewire/internal/pkg/metrics/counter"
	"github.com/notewire/notewire/internal/pkg/usercontext"
	"github.com/notewire/notewire/internal/pkg/viewmodel"
)

const homeFeedCacheKey = "home_feed"
const homeFeedCacheTTL = 30 * time.Second

// DefaultNewsCountOnHomePage caps the home feed unless NEWS_PER_PAGE says otherwise.
const DefaultNewsCountOnHomePage = 10

// NewsCountOnHomePage returns the configured home feed page size.
func NewsCountOnHomePage() int {
	if v, err := strconv.Atoi(env.GetEnv("NEWS_PER_PAGE", "")); err == nil && v > 0 {
		return v
	}
	return DefaultNewsCountOnHomePage
}

// HandleHome renders the public home feed: the newest articles, date
// descending, capped at the configured page size.
func HandleHome(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	newsList, err := homeFeed()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch news articles")
	}

	return c.Render("home", fiber.Map{
		"Title":      "Newsroom",
		"IsLoggedIn": userCtx.IsLoggedIn,
		"Username":   userCtx.Username,
		"NewsList":   newsList,
	})
}

// homeFeed serves the feed from the cache when one is configured.
func homeFeed() ([]models.News, error) {
	if cached, err := cache.Get(homeFeedCacheKey); err == nil && cached != "" {
		var newsList []models.News
		if err := json.Unmarshal([]byte(cached), &newsList); err == nil {
			return newsList, nil
		}
	}

	newsList, err := repository.GetGlobalRepositories().News.GetHomePage(NewsCountOnHomePage())
	if err != nil {
		return nil, err
	}

	if cache.Enabled() {
		if payload, err := json.Marshal(newsList); err == nil {
			_ = cache.Set(homeFeedCacheKey, payload, homeFeedCacheTTL)
		}
	}

	return newsList, nil
}

// HandleNewsDetail renders a single article with its comments in
// chronological order. Authenticated readers also get the comment form.
func HandleNewsDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("News article not found")
	}

	repos := repository.GetGlobalRepositories()
	news, err := repos.News.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("News article not found")
	}

	comments, err := repos.Comment.GetByNewsID(news.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch comments")
	}

	_ = counter.AddNewsView(news.ID)

	return renderNewsDetail(c, news, comments, forms.NewCommentForm(c), fiber.StatusOK)
}

func renderNewsDetail(c *fiber.Ctx, news *models.News, comments []models.Comment, form *forms.CommentForm, status int) error {
	userCtx := usercontext.GetUserContext(c)

	return c.Status(status).Render("news_detail", fiber.Map{
		"Title":      news.Title,
		"IsLoggedIn": userCtx.IsLoggedIn,
		"Username":   userCtx.Username,
		"News":       news,
		"Comments":   viewmodel.FromComments(comments),
		"Form":       form,
		"CSRFToken":  csrfToken(c),
	})
}
