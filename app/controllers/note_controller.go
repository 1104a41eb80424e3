package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"gorm.io/gorm"

	"github.com/notewire/notewire/app/forms"
	"github.com/notewire/notewire/app/models"
	"github.com/notewire/notewire/app/repository"
	"github.com/notewire/notewire/internal/pkg/constants"
	"github.com/notewire/notewire/internal/pkg/usercontext"
)

// HandleNotesList renders the requester's own notes. Nobody else's notes
// ever appear here.
func HandleNotesList(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	notes, err := repository.GetGlobalRepositories().Note.ListByOwner(userCtx.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch notes")
	}

	return c.Render("notes/list", fiber.Map{
		"Title":      "Your notes",
		"IsLoggedIn": userCtx.IsLoggedIn,
		"Username":   userCtx.Username,
		"Notes":      notes,
		"Flash":      flash.Get(c),
	})
}

// HandleNoteAddForm renders the empty note form.
func HandleNoteAddForm(c *fiber.Ctx) error {
	form := &forms.NoteForm{Errors: map[string]string{}}
	return renderNoteForm(c, form, "Add note", constants.NotesAddRoute, fiber.StatusOK)
}

// HandleNoteAdd creates a note for the requester. An omitted slug is derived
// from the title; a colliding slug is a field error and persists nothing.
func HandleNoteAdd(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	form := forms.NewNoteForm(c)
	ok, err := form.Validate(repos.Note.SlugExists)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to validate note")
	}
	if !ok {
		return renderNoteForm(c, form, "Add note", constants.NotesAddRoute, fiber.StatusOK)
	}

	note := models.Note{
		Title:  form.Title,
		Text:   form.Text,
		Slug:   form.Slug,
		UserID: userCtx.UserID,
	}
	if err := repos.Note.Create(&note); err != nil {
		// The unique constraint backstops concurrent submissions of the
		// same slug; report it like any other collision.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			form.Errors["slug"] = form.Slug + forms.SlugWarning
			return renderNoteForm(c, form, "Add note", constants.NotesAddRoute, fiber.StatusOK)
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to save note")
	}

	return c.Redirect(constants.NotesDoneRoute, fiber.StatusFound)
}

// HandleNotesDone renders the post-mutation success page.
func HandleNotesDone(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	return c.Render("notes/done", fiber.Map{
		"Title":      "Done",
		"IsLoggedIn": userCtx.IsLoggedIn,
		"Username":   userCtx.Username,
	})
}

// HandleNoteDetail renders one of the requester's notes; a foreign slug is
// not found.
func HandleNoteDetail(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	note, ok := ownerScopedNote(c, userCtx.UserID)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Note not found")
	}

	return c.Render("notes/detail", fiber.Map{
		"Title":      note.Title,
		"IsLoggedIn": userCtx.IsLoggedIn,
		"Username":   userCtx.Username,
		"Note":       note,
	})
}

// HandleNoteEditForm renders the edit form pre-filled with the note.
func HandleNoteEditForm(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	note, ok := ownerScopedNote(c, userCtx.UserID)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Note not found")
	}

	form := &forms.NoteForm{
		Title:  note.Title,
		Text:   note.Text,
		Slug:   note.Slug,
		Errors: map[string]string{},
	}
	return renderNoteForm(c, form, "Edit note", noteEditURL(note.Slug), fiber.StatusOK)
}

// HandleNoteEdit updates one of the requester's notes. Slug uniqueness
// excludes the note itself; an emptied slug is re-derived from the title.
func HandleNoteEdit(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	note, ok := ownerScopedNote(c, userCtx.UserID)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Note not found")
	}

	form := forms.NewNoteForm(c)
	exists := func(slug string) (bool, error) {
		return repos.Note.SlugExistsExceptID(slug, note.ID)
	}
	valid, err := form.Validate(exists)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to validate note")
	}
	if !valid {
		return renderNoteForm(c, form, "Edit note", noteEditURL(note.Slug), fiber.StatusOK)
	}

	note.Title = form.Title
	note.Text = form.Text
	note.Slug = form.Slug
	if err := repos.Note.Update(note); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			form.Errors["slug"] = form.Slug + forms.SlugWarning
			return renderNoteForm(c, form, "Edit note", noteEditURL(note.Slug), fiber.StatusOK)
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to save note")
	}

	return c.Redirect(constants.NotesDoneRoute, fiber.StatusFound)
}

// HandleNoteDeleteConfirm renders the delete confirmation page for one of
// the requester's notes.
func HandleNoteDeleteConfirm(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	note, ok := ownerScopedNote(c, userCtx.UserID)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Note not found")
	}

	return c.Render("notes/confirm_delete", fiber.Map{
		"Title":      "Delete note",
		"IsLoggedIn": userCtx.IsLoggedIn,
		"Username":   userCtx.Username,
		"Note":       note,
		"CSRFToken":  csrfToken(c),
	})
}

// HandleNoteDelete removes one of the requester's notes.
func HandleNoteDelete(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	note, ok := ownerScopedNote(c, userCtx.UserID)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Note not found")
	}

	if err := repository.GetGlobalRepositories().Note.Delete(note); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete note")
	}

	return c.Redirect(constants.NotesDoneRoute, fiber.StatusFound)
}

// ownerScopedNote resolves the :slug param against the requesting owner.
func ownerScopedNote(c *fiber.Ctx, userID uint) (*models.Note, bool) {
	note, err := repository.GetGlobalRepositories().Note.GetBySlugForOwner(c.Params("slug"), userID)
	if err != nil {
		return nil, false
	}
	return note, true
}

func noteEditURL(slug string) string {
	return constants.NotesRoute + "/" + slug + "/edit"
}

func renderNoteForm(c *fiber.Ctx, form *forms.NoteForm, title, action string, status int) error {
	userCtx := usercontext.GetUserContext(c)

	return c.Status(status).Render("notes/form", fiber.Map{
		"Title":      title,
		"IsLoggedIn": userCtx.IsLoggedIn,
		"Username":   userCtx.Username,
		"Form":       form,
		"Action":     action,
		"CSRFToken":  csrfToken(c),
	})
}
