package forms

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewire/notewire/internal/pkg/env"
)

func neverExists(string) (bool, error) { return false, nil }

func existsIn(taken ...string) SlugExistsFunc {
	set := map[string]bool{}
	for _, s := range taken {
		set[s] = true
	}
	return func(slug string) (bool, error) { return set[slug], nil }
}

func TestDeriveSlug(t *testing.T) {
	assert.Equal(t, "weekly-standup-notes", DeriveSlug("Weekly Standup Notes"))
	assert.Equal(t, "hello-world", DeriveSlug("Hello, World!"))

	// non-ASCII titles transliterate to a lowercase ASCII slug
	derived := DeriveSlug("Новый заголовок")
	assert.NotEmpty(t, derived)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9-]+$`), derived)

	// derivation is deterministic
	assert.Equal(t, derived, DeriveSlug("Новый заголовок"))
}

func TestValidateSuppliedSlug(t *testing.T) {
	env.Env = map[string]string{}

	form := &NoteForm{Title: "T", Text: "x", Slug: "new-slug", Errors: map[string]string{}}
	ok, err := form.Validate(neverExists)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new-slug", form.Slug)

	form = &NoteForm{Title: "T", Text: "x", Slug: "taken", Errors: map[string]string{}}
	ok, err = form.Validate(existsIn("taken"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "taken"+SlugWarning, form.Errors["slug"])
}

func TestValidateRequiresTitle(t *testing.T) {
	env.Env = map[string]string{}

	form := &NoteForm{Title: "  ", Errors: map[string]string{}}
	ok, err := form.Validate(neverExists)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, form.Errors["title"])
}

func TestValidateDerivesSlug(t *testing.T) {
	env.Env = map[string]string{}

	form := &NoteForm{Title: "Weekly Standup Notes", Errors: map[string]string{}}
	ok, err := form.Validate(neverExists)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "weekly-standup-notes", form.Slug)
}

func TestDerivedSlugCollisionSuffixPolicy(t *testing.T) {
	env.Env = map[string]string{}

	form := &NoteForm{Title: "Weekly Standup Notes", Errors: map[string]string{}}
	ok, err := form.Validate(existsIn("weekly-standup-notes"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "weekly-standup-notes-2", form.Slug)

	// the probe keeps going until a free value turns up
	form = &NoteForm{Title: "Weekly Standup Notes", Errors: map[string]string{}}
	ok, err = form.Validate(existsIn("weekly-standup-notes", "weekly-standup-notes-2"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "weekly-standup-notes-3", form.Slug)
}

func TestDerivedSlugCollisionErrorPolicy(t *testing.T) {
	env.Env = map[string]string{"SLUG_COLLISION_POLICY": "error"}
	defer func() { env.Env = map[string]string{} }()

	form := &NoteForm{Title: "Weekly Standup Notes", Errors: map[string]string{}}
	ok, err := form.Validate(existsIn("weekly-standup-notes"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "weekly-standup-notes"+SlugWarning, form.Errors["slug"])
}
