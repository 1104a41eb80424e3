package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/notewire/notewire/app/forms"
	"github.com/notewire/notewire/app/models"
	"github.com/notewire/notewire/app/repository"
	"github.com/notewire/notewire/internal/pkg/constants"
	"github.com/notewire/notewire/internal/pkg/usercontext"
)

func newsDetailURL(newsID uint64) string {
	return fmt.Sprintf("%s/%d", constants.NewsRoute, newsID)
}

// HandleCommentCreate persists a comment on a news article. A banned-word
// hit re-renders the detail page with the warning on the text field and
// persists nothing.
func HandleCommentCreate(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("News article not found")
	}

	repos := repository.GetGlobalRepositories()
	news, err := repos.News.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("News article not found")
	}

	form := forms.NewCommentForm(c)
	if !form.Validate() {
		comments, err := repos.Comment.GetByNewsID(news.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch comments")
		}
		return renderNewsDetail(c, news, comments, form, fiber.StatusOK)
	}

	comment := models.Comment{
		NewsID: news.ID,
		UserID: userCtx.UserID,
		Text:   form.Text,
	}
	if err := repos.Comment.Create(&comment); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to save comment")
	}

	return c.Redirect(newsDetailURL(news.ID)+constants.CommentsFragment, fiber.StatusFound)
}

// HandleCommentEditForm renders the edit form for the author's own comment.
// Anybody else's comment resolves as not found.
func HandleCommentEditForm(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	comment, ok := authorScopedComment(c, userCtx.UserID)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Comment not found")
	}

	form := &forms.CommentForm{Text: comment.Text, Errors: map[string]string{}}
	return renderCommentForm(c, comment, form, fiber.StatusOK)
}

// HandleCommentEdit updates the text of the author's own comment.
func HandleCommentEdit(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	comment, ok := authorScopedComment(c, userCtx.UserID)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Comment not found")
	}

	form := forms.NewCommentForm(c)
	if !form.Validate() {
		return renderCommentForm(c, comment, form, fiber.StatusOK)
	}

	comment.Text = form.Text
	if err := repository.GetGlobalRepositories().Comment.Update(comment); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to save comment")
	}

	return c.Redirect(newsDetailURL(comment.NewsID)+constants.CommentsFragment, fiber.StatusFound)
}

// HandleCommentDeleteConfirm renders the delete confirmation page for the
// author's own comment.
func HandleCommentDeleteConfirm(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	comment, ok := authorScopedComment(c, userCtx.UserID)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Comment not found")
	}

	return c.Render("comment_confirm_delete", fiber.Map{
		"Title":      "Delete comment",
		"IsLoggedIn": userCtx.IsLoggedIn,
		"Username":   userCtx.Username,
		"Comment":    comment,
		"CSRFToken":  csrfToken(c),
	})
}

// HandleCommentDelete removes the author's own comment.
func HandleCommentDelete(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	comment, ok := authorScopedComment(c, userCtx.UserID)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Comment not found")
	}

	if err := repository.GetGlobalRepositories().Comment.Delete(comment); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete comment")
	}

	return c.Redirect(newsDetailURL(comment.NewsID)+constants.CommentsFragment, fiber.StatusFound)
}

// authorScopedComment resolves the :id param against the requesting author.
// The filter runs before the lookup, so "exists, not yours" and "does not
// exist" are the same outcome.
func authorScopedComment(c *fiber.Ctx, userID uint) (*models.Comment, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return nil, false
	}

	comment, err := repository.GetGlobalRepositories().Comment.GetByIDForAuthor(uint(id), userID)
	if err != nil {
		return nil, false
	}
	return comment, true
}

func renderCommentForm(c *fiber.Ctx, comment *models.Comment, form *forms.CommentForm, status int) error {
	userCtx := usercontext.GetUserContext(c)

	return c.Status(status).Render("comment_form", fiber.Map{
		"Title":      "Edit comment",
		"IsLoggedIn": userCtx.IsLoggedIn,
		"Username":   userCtx.Username,
		"Comment":    comment,
		"Form":       form,
		"CSRFToken":  csrfToken(c),
	})
}
