// Package testutil wires a complete application around a fresh in-memory
// database for handler tests. It is imported by _test.go files only.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/notewire/notewire/app/models"
	"github.com/notewire/notewire/app/repository"
	"github.com/notewire/notewire/internal/pkg/database"
	"github.com/notewire/notewire/internal/pkg/env"
	"github.com/notewire/notewire/internal/pkg/router"
)

// Password used by every fixture user.
const Password = "correct-horse-battery"

// NewApp builds an application instance on a fresh in-memory database.
// CSRF is disabled so form posts don't need a token round-trip; nothing
// else differs from the production wiring.
func NewApp(t *testing.T) *fiber.App {
	t.Helper()

	env.Env = map[string]string{
		"APP_ENV":      "dev",
		"CSRF_DISABLE": "true",
	}

	db := database.SetupTestDatabase()
	repository.InitializeFactory(db)

	engine := html.New(findViewsDir(t), ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(recover.New())
	router.InstallRouter(app)

	return app
}

// findViewsDir locates the views directory relative to the package under test.
func findViewsDir(t *testing.T) string {
	t.Helper()
	for _, dir := range []string{"views", "../views", "../../views", "../../../views", "../../../../views"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	t.Fatal("views directory not found")
	return ""
}

// CreateUser persists a user with a unique email and the fixture password.
func CreateUser(t *testing.T, name string) *models.User {
	t.Helper()

	email := name + "-" + uuid.NewString()[:8] + "@example.test"
	user, err := models.CreateUser(name, email, Password)
	require.NoError(t, err)
	require.NoError(t, repository.GetGlobalRepositories().User.Create(user))
	return user
}

// CreateNews persists an article with the given publication date.
func CreateNews(t *testing.T, title string, date time.Time) *models.News {
	t.Helper()

	news := &models.News{Title: title, Text: "Just some text.", Date: date}
	require.NoError(t, repository.GetGlobalRepositories().News.Create(news))
	return news
}

// CreateComment persists a comment with an explicit creation timestamp.
func CreateComment(t *testing.T, news *models.News, author *models.User, text string, createdAt time.Time) *models.Comment {
	t.Helper()

	comment := &models.Comment{NewsID: news.ID, UserID: author.ID, Text: text, CreatedAt: createdAt}
	require.NoError(t, repository.GetGlobalRepositories().Comment.Create(comment))
	return comment
}

// CreateNote persists a note for the given owner.
func CreateNote(t *testing.T, owner *models.User, title, slug string) *models.Note {
	t.Helper()

	note := &models.Note{Title: title, Text: "Text", Slug: slug, UserID: owner.ID}
	require.NoError(t, repository.GetGlobalRepositories().Note.Create(note))
	return note
}

// Login performs a credential login and returns the session cookies.
func Login(t *testing.T, app *fiber.App, user *models.User) []*http.Cookie {
	t.Helper()

	form := url.Values{}
	form.Set("email", user.Email)
	form.Set("password", Password)

	resp := Do(t, app, fiber.MethodPost, "/auth/login", form, nil)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusFound, resp.StatusCode, "login should redirect")

	var cookies []*http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			cookies = append(cookies, c)
		}
	}
	require.NotEmpty(t, cookies, "login should set a session cookie")
	return cookies
}

// Do runs one request against the app. A nil form produces a bodyless request.
func Do(t *testing.T, app *fiber.App, method, target string, form url.Values, cookies []*http.Cookie) *http.Response {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Body drains and returns the response body.
func Body(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
