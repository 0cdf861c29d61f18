package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
	"github.com/baharkarakas/mini-linkedin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_UniqueEmailAndUsername(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.Users.Create(ctx, models.User{ID: "u1", Name: "A", Email: "a@x.com", Username: "ada"})
	require.NoError(t, err)

	_, err = s.Users.Create(ctx, models.User{ID: "u2", Name: "B", Email: "a@x.com"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
	_, err = s.Users.Create(ctx, models.User{ID: "u3", Name: "C", Email: "c@x.com", Username: "ada"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	n, err := s.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	u, err := s.Users.GetByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	_, err = s.Users.GetByUsername(ctx, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUsers_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, err := s.Users.Create(ctx, models.User{ID: "u1", Name: "Ada", Email: "a@x.com", Bio: "old"})
	require.NoError(t, err)

	bio := "new"
	u, err := s.Users.UpdateProfile(ctx, "u1", models.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, "new", u.Bio)

	_, err = s.Users.SetProfileImage(ctx, "missing", "x")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPosts_OrderAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, err := s.Users.Create(ctx, models.User{ID: "u1", Name: "Ada", Email: "a@x.com"})
	require.NoError(t, err)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	// p0 and p1 share a timestamp; the id breaks the tie.
	for i, ts := range []time.Time{base, base, base.Add(time.Second)} {
		_, err := s.Posts.Create(ctx, models.Post{ID: fmt.Sprintf("p%d", i), AuthorID: "u1", Content: "c", CreatedAt: ts})
		require.NoError(t, err)
	}

	feed, err := s.Posts.ListFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, []string{"p2", "p1", "p0"}, []string{feed[0].ID, feed[1].ID, feed[2].ID})
	require.NotNil(t, feed[0].Author)
	assert.Equal(t, "Ada", feed[0].Author.Name)

	require.NoError(t, s.Posts.Delete(ctx, "p1"))
	assert.ErrorIs(t, s.Posts.Delete(ctx, "p1"), apperr.ErrNotFound)

	mine, err := s.Posts.ListByAuthor(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	_, err = s.Posts.Create(ctx, models.Post{ID: "px", AuthorID: "ghost", Content: "c"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
