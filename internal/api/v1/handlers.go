package apiv1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/notewire/notewire/app/controllers"
	"github.com/notewire/notewire/app/repository"
	"github.com/notewire/notewire/internal/pkg/usercontext"
)

// APIServer serves the JSON read endpoints
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// RegisterHandlers attaches the v1 endpoints to the given router group
func RegisterHandlers(r fiber.Router, s *APIServer) {
	r.Get("/ping", s.GetPing)
	r.Get("/news", s.GetNews)
	r.Get("/news/:id/comments", s.GetNewsComments)
	r.Get("/notes", s.GetNotes)
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ping": "pong"})
}

// GetNews returns the home feed page as JSON
func (s *APIServer) GetNews(c *fiber.Ctx) error {
	newsList, err := repository.GetGlobalRepositories().News.GetHomePage(controllers.NewsCountOnHomePage())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal"})
	}
	return c.JSON(fiber.Map{"news": newsList})
}

// GetNewsComments returns an article's comments in chronological order
func (s *APIServer) GetNewsComments(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found"})
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.News.GetByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found"})
	}

	comments, err := repos.Comment.GetByNewsID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal"})
	}
	return c.JSON(fiber.Map{"comments": comments})
}

// GetNotes returns the requester's own notes
func (s *APIServer) GetNotes(c *fiber.Ctx) error {
	notes, err := repository.GetGlobalRepositories().Note.ListByOwner(usercontext.GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal"})
	}
	return c.JSON(fiber.Map{"notes": notes})
}
