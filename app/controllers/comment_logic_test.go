package controllers_test

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewire/notewire/app/forms"
	"github.com/notewire/notewire/app/repository"
	"github.com/notewire/notewire/internal/pkg/testutil"
)

func commentCount(t *testing.T) int64 {
	t.Helper()
	count, err := repository.GetGlobalRepositories().Comment.Count()
	require.NoError(t, err)
	return count
}

func TestUserCanCreateComment(t *testing.T) {
	app := testutil.NewApp(t)

	author := testutil.CreateUser(t, "author")
	cookies := testutil.Login(t, app, author)
	news := testutil.CreateNews(t, "Headline", time.Now())

	form := url.Values{"text": {"Just a comment"}}
	resp := testutil.Do(t, app, fiber.MethodPost, fmt.Sprintf("/news/%d", news.ID), form, cookies)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/news/%d#comments", news.ID), resp.Header.Get("Location"))

	require.Equal(t, int64(1), commentCount(t))
	comments, err := repository.GetGlobalRepositories().Comment.GetByNewsID(news.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Just a comment", comments[0].Text)
	assert.Equal(t, author.ID, comments[0].UserID)
	assert.Equal(t, news.ID, comments[0].NewsID)
}

func TestAnonymousUserCantCreateComment(t *testing.T) {
	app := testutil.NewApp(t)

	news := testutil.CreateNews(t, "Headline", time.Now())

	form := url.Values{"text": {"Just a comment"}}
	resp := testutil.Do(t, app, fiber.MethodPost, fmt.Sprintf("/news/%d", news.ID), form, nil)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	assert.Equal(t, int64(0), commentCount(t))
}

func TestUserCantUseBadWords(t *testing.T) {
	app := testutil.NewApp(t)

	author := testutil.CreateUser(t, "author")
	cookies := testutil.Login(t, app, author)
	news := testutil.CreateNews(t, "Headline", time.Now())

	form := url.Values{"text": {"This looks like a " + forms.BadWords[0] + " to me"}}
	resp := testutil.Do(t, app, fiber.MethodPost, fmt.Sprintf("/news/%d", news.ID), form, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, testutil.Body(t, resp), forms.CommentWarning)

	assert.Equal(t, int64(0), commentCount(t))
}

func TestAuthorCanEditComment(t *testing.T) {
	app := testutil.NewApp(t)

	author := testutil.CreateUser(t, "author")
	cookies := testutil.Login(t, app, author)
	news := testutil.CreateNews(t, "Headline", time.Now())
	comment := testutil.CreateComment(t, news, author, "Original text", time.Now())

	form := url.Values{"text": {"Updated text"}}
	resp := testutil.Do(t, app, fiber.MethodPost, fmt.Sprintf("/comments/%d/edit", comment.ID), form, cookies)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/news/%d#comments", news.ID), resp.Header.Get("Location"))

	updated, err := repository.GetGlobalRepositories().Comment.GetByIDForAuthor(comment.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated text", updated.Text)
}

func TestStrangerCantEditComment(t *testing.T) {
	app := testutil.NewApp(t)

	author := testutil.CreateUser(t, "author")
	stranger := testutil.CreateUser(t, "stranger")
	cookies := testutil.Login(t, app, stranger)
	news := testutil.CreateNews(t, "Headline", time.Now())
	comment := testutil.CreateComment(t, news, author, "Original text", time.Now())

	form := url.Values{"text": {"Hijacked text"}}
	resp := testutil.Do(t, app, fiber.MethodPost, fmt.Sprintf("/comments/%d/edit", comment.ID), form, cookies)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	kept, err := repository.GetGlobalRepositories().Comment.GetByIDForAuthor(comment.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original text", kept.Text)
}

func TestAuthorCanDeleteComment(t *testing.T) {
	app := testutil.NewApp(t)

	author := testutil.CreateUser(t, "author")
	cookies := testutil.Login(t, app, author)
	news := testutil.CreateNews(t, "Headline", time.Now())
	comment := testutil.CreateComment(t, news, author, "Original text", time.Now())

	resp := testutil.Do(t, app, fiber.MethodPost, fmt.Sprintf("/comments/%d/delete", comment.ID), url.Values{}, cookies)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/news/%d#comments", news.ID), resp.Header.Get("Location"))

	assert.Equal(t, int64(0), commentCount(t))
}

func TestStrangerCantDeleteComment(t *testing.T) {
	app := testutil.NewApp(t)

	author := testutil.CreateUser(t, "author")
	stranger := testutil.CreateUser(t, "stranger")
	cookies := testutil.Login(t, app, stranger)
	news := testutil.CreateNews(t, "Headline", time.Now())
	comment := testutil.CreateComment(t, news, author, "Original text", time.Now())

	resp := testutil.Do(t, app, fiber.MethodPost, fmt.Sprintf("/comments/%d/delete", comment.ID), url.Values{}, cookies)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	assert.Equal(t, int64(1), commentCount(t))
}
