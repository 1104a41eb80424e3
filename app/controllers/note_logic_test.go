package controllers_test

import (
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewire/notewire/app/forms"
	"github.com/notewire/notewire/app/repository"
	"github.com/notewire/notewire/internal/pkg/env"
	"github.com/notewire/notewire/internal/pkg/testutil"
)

func noteCount(t *testing.T) int64 {
	t.Helper()
	count, err := repository.GetGlobalRepositories().Note.Count()
	require.NoError(t, err)
	return count
}

func TestUserCanCreateNote(t *testing.T) {
	app := testutil.NewApp(t)

	owner := testutil.CreateUser(t, "owner")
	cookies := testutil.Login(t, app, owner)

	form := url.Values{
		"title": {"New note title"},
		"text":  {"Note body"},
		"slug":  {"new-note"},
	}
	resp := testutil.Do(t, app, fiber.MethodPost, "/notes/add", form, cookies)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/notes/done", resp.Header.Get("Location"))

	require.Equal(t, int64(1), noteCount(t))
	note, err := repository.GetGlobalRepositories().Note.GetBySlugForOwner("new-note", owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "New note title", note.Title)
	assert.Equal(t, "Note body", note.Text)
	assert.Equal(t, owner.ID, note.UserID)
}

func TestAnonymousUserCantCreateNote(t *testing.T) {
	app := testutil.NewApp(t)

	form := url.Values{
		"title": {"New note title"},
		"text":  {"Note body"},
		"slug":  {"new-note"},
	}
	resp := testutil.Do(t, app, fiber.MethodPost, "/notes/add", form, nil)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	assert.Equal(t, int64(0), noteCount(t))
}

func TestUserCantCreateTwoNotesWithSameSlug(t *testing.T) {
	app := testutil.NewApp(t)

	owner := testutil.CreateUser(t, "owner")
	cookies := testutil.Login(t, app, owner)
	testutil.CreateNote(t, owner, "First note", "taken-slug")

	form := url.Values{
		"title": {"Second note"},
		"text":  {"Note body"},
		"slug":  {"taken-slug"},
	}
	resp := testutil.Do(t, app, fiber.MethodPost, "/notes/add", form, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, testutil.Body(t, resp), "taken-slug"+forms.SlugWarning)

	assert.Equal(t, int64(1), noteCount(t))
}

func TestEmptySlugDerivedFromTitle(t *testing.T) {
	app := testutil.NewApp(t)

	owner := testutil.CreateUser(t, "owner")
	cookies := testutil.Login(t, app, owner)

	form := url.Values{
		"title": {"Новый заголовок"},
		"text":  {"Note body"},
	}
	resp := testutil.Do(t, app, fiber.MethodPost, "/notes/add", form, cookies)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	expected := forms.DeriveSlug("Новый заголовок")
	note, err := repository.GetGlobalRepositories().Note.GetBySlugForOwner(expected, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, note.Slug)
}

func TestDerivedSlugCollisionGetsSuffix(t *testing.T) {
	app := testutil.NewApp(t)

	owner := testutil.CreateUser(t, "owner")
	cookies := testutil.Login(t, app, owner)

	base := forms.DeriveSlug("Taken title")
	testutil.CreateNote(t, owner, "Taken title", base)

	form := url.Values{
		"title": {"Taken title"},
		"text":  {"Note body"},
	}
	resp := testutil.Do(t, app, fiber.MethodPost, "/notes/add", form, cookies)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	note, err := repository.GetGlobalRepositories().Note.GetBySlugForOwner(base+"-2", owner.ID)
	require.NoError(t, err)
	assert.Equal(t, base+"-2", note.Slug)
}

func TestDerivedSlugCollisionRejectedUnderErrorPolicy(t *testing.T) {
	app := testutil.NewApp(t)
	env.Env["SLUG_COLLISION_POLICY"] = forms.SlugPolicyError

	owner := testutil.CreateUser(t, "owner")
	cookies := testutil.Login(t, app, owner)

	base := forms.DeriveSlug("Taken title")
	testutil.CreateNote(t, owner, "Taken title", base)

	form := url.Values{
		"title": {"Taken title"},
		"text":  {"Note body"},
	}
	resp := testutil.Do(t, app, fiber.MethodPost, "/notes/add", form, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, testutil.Body(t, resp), base+forms.SlugWarning)

	assert.Equal(t, int64(1), noteCount(t))
}

func TestAuthorCanEditNote(t *testing.T) {
	app := testutil.NewApp(t)

	owner := testutil.CreateUser(t, "owner")
	cookies := testutil.Login(t, app, owner)
	note := testutil.CreateNote(t, owner, "Original title", "note-slug")

	form := url.Values{
		"title": {"Updated title"},
		"text":  {"Updated body"},
		"slug":  {"note-slug"},
	}
	resp := testutil.Do(t, app, fiber.MethodPost, "/notes/"+note.Slug+"/edit", form, cookies)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/notes/done", resp.Header.Get("Location"))

	updated, err := repository.GetGlobalRepositories().Note.GetBySlugForOwner("note-slug", owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated title", updated.Title)
	assert.Equal(t, "Updated body", updated.Text)
}

func TestStrangerCantEditNote(t *testing.T) {
	app := testutil.NewApp(t)

	owner := testutil.CreateUser(t, "owner")
	stranger := testutil.CreateUser(t, "stranger")
	cookies := testutil.Login(t, app, stranger)
	note := testutil.CreateNote(t, owner, "Original title", "note-slug")

	form := url.Values{
		"title": {"Hijacked title"},
		"text":  {"Hijacked body"},
		"slug":  {"note-slug"},
	}
	resp := testutil.Do(t, app, fiber.MethodPost, "/notes/"+note.Slug+"/edit", form, cookies)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	kept, err := repository.GetGlobalRepositories().Note.GetBySlugForOwner("note-slug", owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original title", kept.Title)
}

func TestAuthorCanDeleteNote(t *testing.T) {
	app := testutil.NewApp(t)

	owner := testutil.CreateUser(t, "owner")
	cookies := testutil.Login(t, app, owner)
	note := testutil.CreateNote(t, owner, "Original title", "note-slug")

	resp := testutil.Do(t, app, fiber.MethodPost, "/notes/"+note.Slug+"/delete", url.Values{}, cookies)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/notes/done", resp.Header.Get("Location"))

	assert.Equal(t, int64(0), noteCount(t))
}

func TestStrangerCantDeleteNote(t *testing.T) {
	app := testutil.NewApp(t)

	owner := testutil.CreateUser(t, "owner")
	stranger := testutil.CreateUser(t, "stranger")
	cookies := testutil.Login(t, app, stranger)
	note := testutil.CreateNote(t, owner, "Original title", "note-slug")

	resp := testutil.Do(t, app, fiber.MethodPost, "/notes/"+note.Slug+"/delete", url.Values{}, cookies)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	assert.Equal(t, int64(1), noteCount(t))
}
