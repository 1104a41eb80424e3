package forms

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/notewire/notewire/internal/pkg/env"
)

// BadWords is the default set of banned substrings. A comment containing any
// of them (case-sensitive, anywhere in the text) is rejected.
var BadWords = []string{"scam", "spammy"}

// CommentWarning is attached to the text field when moderation rejects a comment.
const CommentWarning = "Please mind your language!"

// CommentForm binds and validates a comment submission.
type CommentForm struct {
	Text string `form:"text"`

	Errors map[string]string
}

// NewCommentForm binds the form values from the request body.
func NewCommentForm(c *fiber.Ctx) *CommentForm {
	return &CommentForm{
		Text:   c.FormValue("text"),
		Errors: map[string]string{},
	}
}

// Validate runs the moderation predicate and required-field checks.
// It returns true when the comment may be persisted.
func (f *CommentForm) Validate() bool {
	if strings.TrimSpace(f.Text) == "" {
		f.Errors["text"] = "This field is required."
		return false
	}
	if !IsClean(f.Text) {
		f.Errors["text"] = CommentWarning
		return false
	}
	return true
}

// IsClean reports whether no banned substring occurs in the text.
func IsClean(text string) bool {
	for _, word := range badWords() {
		if strings.Contains(text, word) {
			return false
		}
	}
	return true
}

func badWords() []string {
	if raw := env.GetEnv("MODERATION_BAD_WORDS", ""); raw != "" {
		var words []string
		for _, w := range strings.Split(raw, ",") {
			if w = strings.TrimSpace(w); w != "" {
				words = append(words, w)
			}
		}
		if len(words) > 0 {
			return words
		}
	}
	return BadWords
}
