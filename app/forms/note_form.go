package forms

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"

	"github.com/notewire/notewire/internal/pkg/env"
)

// SlugWarning is appended to the conflicting slug value in the field error.
const SlugWarning = " - this slug already exists, please pick a unique value!"

// Derived-slug collision policies (SLUG_COLLISION_POLICY).
const (
	SlugPolicySuffix = "suffix"
	SlugPolicyError  = "error"
)

// SlugExistsFunc reports whether a slug is already taken.
type SlugExistsFunc func(slug string) (bool, error)

// NoteForm binds and validates a note create/edit submission.
type NoteForm struct {
	Title string `form:"title"`
	Text  string `form:"text"`
	Slug  string `form:"slug"`

	Errors map[string]string
}

// NewNoteForm binds the form values from the request body.
func NewNoteForm(c *fiber.Ctx) *NoteForm {
	return &NoteForm{
		Title:  c.FormValue("title"),
		Text:   c.FormValue("text"),
		Slug:   strings.TrimSpace(c.FormValue("slug")),
		Errors: map[string]string{},
	}
}

// Validate checks required fields and resolves the slug: a supplied slug must
// be globally unique, an omitted one is derived from the title. On success
// f.Slug holds the value to persist and true is returned.
func (f *NoteForm) Validate(exists SlugExistsFunc) (bool, error) {
	if strings.TrimSpace(f.Title) == "" {
		f.Errors["title"] = "This field is required."
		return false, nil
	}

	if f.Slug != "" {
		taken, err := exists(f.Slug)
		if err != nil {
			return false, err
		}
		if taken {
			f.Errors["slug"] = f.Slug + SlugWarning
			return false, nil
		}
		return true, nil
	}

	derived, ok, err := deriveSlug(f.Title, exists)
	if err != nil {
		return false, err
	}
	if !ok {
		f.Errors["slug"] = derived + SlugWarning
		return false, nil
	}
	f.Slug = derived
	return true, nil
}

// DeriveSlug turns a title into its lowercase, transliterated, hyphen-joined
// slug form.
func DeriveSlug(title string) string {
	return slug.Make(title)
}

// deriveSlug applies the configured collision policy to a derived slug.
// Under the suffix policy it probes -2, -3, ... until a free value is found;
// under the error policy a collision fails like a supplied duplicate.
func deriveSlug(title string, exists SlugExistsFunc) (string, bool, error) {
	base := DeriveSlug(title)

	taken, err := exists(base)
	if err != nil {
		return "", false, err
	}
	if !taken {
		return base, true, nil
	}

	if slugCollisionPolicy() == SlugPolicyError {
		return base, false, nil
	}

	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err := exists(candidate)
		if err != nil {
			return "", false, err
		}
		if !taken {
			return candidate, true, nil
		}
	}
}

func slugCollisionPolicy() string {
	if env.GetEnv("SLUG_COLLISION_POLICY", SlugPolicySuffix) == SlugPolicyError {
		return SlugPolicyError
	}
	return SlugPolicySuffix
}
