package models

import (
	"encoding/json"
	"testing"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidate(t *testing.T) {
	u := User{Name: "  Ada ", Email: " Ada@X.com "}
	require.NoError(t, u.Validate())
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, "ada@x.com", u.Email)

	bad := []User{
		{Name: "", Email: "a@x.com"},
		{Name: "A", Email: "nope"},
		{Name: "A", Email: "a@x.com", Username: "has space"},
	}
	for _, b := range bad {
		assert.ErrorIs(t, b.Validate(), apperr.ErrInvalidInput)
	}
}

func TestUserJSON_OmitsPasswordHash(t *testing.T) {
	b, err := json.Marshal(User{ID: "1", Name: "A", PasswordHash: "$2a$secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "password")
}

func TestPostValidate(t *testing.T) {
	assert.ErrorIs(t, (&Post{AuthorID: "u", Content: "  "}).Validate(), apperr.ErrInvalidInput)
	assert.NoError(t, (&Post{AuthorID: "u", Content: "hi"}).Validate())
	assert.NoError(t, (&Post{AuthorID: "u", Image: "https://img/x.png"}).Validate())
	assert.ErrorIs(t, (&Post{Content: "hi"}).Validate(), apperr.ErrInvalidInput)

	for _, bad := range []string{"not a url", "ftp://img/x.png", "https://", "/relative.png", "javascript:alert(1)"} {
		assert.ErrorIs(t, (&Post{AuthorID: "u", Image: bad}).Validate(), apperr.ErrInvalidInput, bad)
	}
}

func TestProfileUpdateValidate(t *testing.T) {
	empty := ""
	assert.ErrorIs(t, (&ProfileUpdate{Name: &empty}).Validate(), apperr.ErrInvalidInput)

	name := " Bob "
	p := ProfileUpdate{Name: &name}
	require.NoError(t, p.Validate())
	assert.Equal(t, "Bob", *p.Name)
	assert.True(t, ProfileUpdate{}.Empty())
}
