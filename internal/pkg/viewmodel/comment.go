package viewmodel

import (
	"time"

	"github.com/notewire/notewire/app/models"
	"github.com/notewire/notewire/internal/pkg/utils"
)

// Comment is the template-facing shape of a comment. It carries the author's
// display name and avatar instead of the full user record.
type Comment struct {
	ID         uint
	AuthorName string
	AvatarURL  string
	Text       string
	CreatedAt  time.Time
}

// FromComments maps comment records with preloaded authors into view models.
func FromComments(comments []models.Comment) []Comment {
	out := make([]Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, Comment{
			ID:         c.ID,
			AuthorName: c.User.Name,
			AvatarURL:  utils.GetGravatarURL(c.User.Email, 0),
			Text:       c.Text,
			CreatedAt:  c.CreatedAt,
		})
	}
	return out
}
