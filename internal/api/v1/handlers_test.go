package apiv1_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewire/notewire/internal/pkg/testutil"
)

func decode(t *testing.T, resp *fiber.Map, body string) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), resp))
}

func TestPingRequiresSession(t *testing.T) {
	app := testutil.NewApp(t)

	resp := testutil.Do(t, app, fiber.MethodGet, "/api/v1/ping", nil, nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var payload fiber.Map
	decode(t, &payload, testutil.Body(t, resp))
	assert.Equal(t, "unauthorized", payload["error"])
}

func TestPing(t *testing.T) {
	app := testutil.NewApp(t)

	user := testutil.CreateUser(t, "reader")
	cookies := testutil.Login(t, app, user)

	resp := testutil.Do(t, app, fiber.MethodGet, "/api/v1/ping", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload fiber.Map
	decode(t, &payload, testutil.Body(t, resp))
	assert.Equal(t, "pong", payload["ping"])
}

func TestGetNews(t *testing.T) {
	app := testutil.NewApp(t)

	user := testutil.CreateUser(t, "reader")
	cookies := testutil.Login(t, app, user)

	testutil.CreateNews(t, "Older headline", time.Now().AddDate(0, 0, -1))
	testutil.CreateNews(t, "Fresh headline", time.Now())

	resp := testutil.Do(t, app, fiber.MethodGet, "/api/v1/news", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		News []struct {
			Title string `json:"title"`
		} `json:"news"`
	}
	require.NoError(t, json.Unmarshal([]byte(testutil.Body(t, resp)), &payload))
	require.Len(t, payload.News, 2)
	assert.Equal(t, "Fresh headline", payload.News[0].Title)
	assert.Equal(t, "Older headline", payload.News[1].Title)
}

func TestGetNewsComments(t *testing.T) {
	app := testutil.NewApp(t)

	user := testutil.CreateUser(t, "reader")
	cookies := testutil.Login(t, app, user)

	news := testutil.CreateNews(t, "Headline", time.Now())
	base := time.Now().Add(-time.Hour)
	testutil.CreateComment(t, news, user, "First comment", base)
	testutil.CreateComment(t, news, user, "Second comment", base.Add(time.Minute))

	resp := testutil.Do(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/news/%d/comments", news.ID), nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Comments []struct {
			Text string `json:"text"`
		} `json:"comments"`
	}
	require.NoError(t, json.Unmarshal([]byte(testutil.Body(t, resp)), &payload))
	require.Len(t, payload.Comments, 2)
	assert.Equal(t, "First comment", payload.Comments[0].Text)
	assert.Equal(t, "Second comment", payload.Comments[1].Text)
}

func TestGetNewsCommentsMissingArticle(t *testing.T) {
	app := testutil.NewApp(t)

	user := testutil.CreateUser(t, "reader")
	cookies := testutil.Login(t, app, user)

	resp := testutil.Do(t, app, fiber.MethodGet, "/api/v1/news/424242/comments", nil, cookies)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetNotesIsOwnerScoped(t *testing.T) {
	app := testutil.NewApp(t)

	owner := testutil.CreateUser(t, "owner")
	other := testutil.CreateUser(t, "other")
	cookies := testutil.Login(t, app, other)

	testutil.CreateNote(t, owner, "Owner note", "owner-note")
	testutil.CreateNote(t, other, "Other note", "other-note")

	resp := testutil.Do(t, app, fiber.MethodGet, "/api/v1/notes", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Notes []struct {
			Slug string `json:"slug"`
		} `json:"notes"`
	}
	require.NoError(t, json.Unmarshal([]byte(testutil.Body(t, resp)), &payload))
	require.Len(t, payload.Notes, 1)
	assert.Equal(t, "other-note", payload.Notes[0].Slug)
}
