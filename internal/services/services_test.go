package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
	"github.com/baharkarakas/mini-linkedin/internal/auth"
	"github.com/baharkarakas/mini-linkedin/internal/models"
	"github.com/baharkarakas/mini-linkedin/internal/repository"
	"github.com/baharkarakas/mini-linkedin/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	store    repository.Store
	sessions *auth.SessionManager
	auth     *AuthService
	feed     *FeedService
	profile  *ProfileService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	sm := auth.NewSessionManager("test-secret", "test", 7*24*time.Hour)
	return &fixture{
		store:    store,
		sessions: sm,
		auth:     NewAuthService(store.Users, sm, bcrypt.MinCost),
		feed:     NewFeedService(store.Users, store.Posts),
		profile:  NewProfileService(store.Users),
	}
}

func (f *fixture) register(t *testing.T, name, email string) models.User {
	t.Helper()
	u, _, err := f.auth.Register(context.Background(), RegisterInput{Name: name, Email: email, Password: "pw-" + name})
	require.NoError(t, err)
	return u
}

func TestRegister_IssuesSessionForNewUser(t *testing.T) {
	f := newFixture(t)

	u, sess, err := f.auth.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "A@X.com", Password: "pw", Bio: "hi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEqual(t, "pw", u.PasswordHash)

	uid, err := f.sessions.Verify(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "Ada", "a@x.com")

	_, _, err := f.auth.Register(ctx, RegisterInput{Name: "Imposter", Email: " a@X.com", Password: "pw"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	n, err := f.store.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRegister_InvalidInput(t *testing.T) {
	f := newFixture(t)
	for _, in := range []RegisterInput{
		{Name: "", Email: "a@x.com", Password: "pw"},
		{Name: "A", Email: "bad", Password: "pw"},
		{Name: "A", Email: "a@x.com", Password: ""},
	} {
		_, _, err := f.auth.Register(context.Background(), in)
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	}
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.register(t, "Ada", "a@x.com")

	u, sess, err := f.auth.Login(ctx, "a@x.com", "pw-Ada")
	require.NoError(t, err)
	assert.Equal(t, ada.ID, u.ID)
	uid, err := f.sessions.Verify(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, ada.ID, uid)

	_, _, err = f.auth.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, _, err = f.auth.Login(ctx, "nobody@x.com", "pw")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCurrentUser(t *testing.T) {
	f := newFixture(t)
	ada := f.register(t, "Ada", "a@x.com")

	u, err := f.auth.CurrentUser(context.Background(), ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)

	_, err = f.auth.CurrentUser(context.Background(), "gone")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreatePost_RequiresContentOrImage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.register(t, "Ada", "a@x.com")

	_, err := f.feed.CreatePost(ctx, ada.ID, " ", "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	p, err := f.feed.CreatePost(ctx, ada.ID, "hello", "")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, ada.ID, p.AuthorID)
	assert.False(t, p.CreatedAt.IsZero())
	require.NotNil(t, p.Author)
	assert.Equal(t, "a@x.com", p.Author.Email)

	_, err = f.feed.CreatePost(ctx, ada.ID, "", "https://img/x.png")
	assert.NoError(t, err)
}

func TestListFeed_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.register(t, "Ada", "a@x.com")

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	offsets := []int{3, 1, 1, 5, 0, 2} // includes a timestamp tie
	i := 0
	f.feed.now = func() time.Time { d := offsets[i]; i++; return base.Add(time.Duration(d) * time.Second) }

	for n := range offsets {
		_, err := f.feed.CreatePost(ctx, ada.ID, fmt.Sprintf("post %d", n), "")
		require.NoError(t, err)
	}

	feed, err := f.feed.ListFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, len(offsets))
	for k := 1; k < len(feed); k++ {
		assert.False(t, feed[k].CreatedAt.After(feed[k-1].CreatedAt), "feed out of order at %d", k)
	}
	require.NotNil(t, feed[0].Author)
	assert.Equal(t, "Ada", feed[0].Author.Name)

	again, err := f.feed.ListFeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, feed, again)
}

func TestListUserPosts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.register(t, "Ada", "a@x.com")
	bob := f.register(t, "Bob", "b@x.com")

	_, err := f.feed.CreatePost(ctx, ada.ID, "ada's", "")
	require.NoError(t, err)
	_, err = f.feed.CreatePost(ctx, bob.ID, "bob's", "")
	require.NoError(t, err)

	up, err := f.feed.ListUserPosts(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, ada.ID, up.User.ID)
	require.Len(t, up.Posts, 1)
	assert.Equal(t, "ada's", up.Posts[0].Content)

	_, err = f.feed.ListUserPosts(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeletePost_Ownership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.register(t, "Ada", "a@x.com")
	bob := f.register(t, "Bob", "b@x.com")

	p, err := f.feed.CreatePost(ctx, ada.ID, "mine", "")
	require.NoError(t, err)

	assert.ErrorIs(t, f.feed.DeletePost(ctx, bob.ID, p.ID), apperr.ErrForbidden)
	up, err := f.feed.ListUserPosts(ctx, ada.ID)
	require.NoError(t, err)
	assert.Len(t, up.Posts, 1)

	require.NoError(t, f.feed.DeletePost(ctx, ada.ID, p.ID))
	feed, err := f.feed.ListFeed(ctx)
	require.NoError(t, err)
	assert.Empty(t, feed)

	assert.ErrorIs(t, f.feed.DeletePost(ctx, ada.ID, p.ID), apperr.ErrNotFound)
}

// racyPosts deletes the post from under the service between lookup and delete.
type racyPosts struct {
	repository.Posts
}

func (r racyPosts) GetByID(ctx context.Context, id string) (models.Post, error) {
	p, err := r.Posts.GetByID(ctx, id)
	if err == nil {
		_ = r.Posts.Delete(ctx, id)
	}
	return p, err
}

func TestDeletePost_ConcurrentDeleteIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.register(t, "Ada", "a@x.com")
	p, err := f.feed.CreatePost(ctx, ada.ID, "x", "")
	require.NoError(t, err)

	racy := NewFeedService(f.store.Users, racyPosts{f.store.Posts})
	assert.ErrorIs(t, racy.DeletePost(ctx, ada.ID, p.ID), apperr.ErrNotFound)
}

func TestUpdateProfile_Partial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.register(t, "Ada", "a@x.com")

	first, second := "x", "y"
	u, err := f.profile.UpdateProfile(ctx, ada.ID, ada.ID, models.ProfileUpdate{Bio: &first})
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, "x", u.Bio)

	u, err = f.profile.UpdateProfile(ctx, ada.ID, ada.ID, models.ProfileUpdate{Bio: &second})
	require.NoError(t, err)
	assert.Equal(t, "y", u.Bio)

	u, err = f.profile.UpdateProfile(ctx, ada.ID, ada.ID, models.ProfileUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "y", u.Bio)

	empty := "  "
	_, err = f.profile.UpdateProfile(ctx, ada.ID, ada.ID, models.ProfileUpdate{Name: &empty})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestUpdateProfile_OtherUserForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.register(t, "Ada", "a@x.com")
	bob := f.register(t, "Bob", "b@x.com")

	bio := "hacked"
	_, err := f.profile.UpdateProfile(ctx, bob.ID, ada.ID, models.ProfileUpdate{Bio: &bio})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestUpdateImages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.register(t, "Ada", "a@x.com")

	u, err := f.profile.UpdateProfileImage(ctx, ada.ID, ada.ID, "https://img/p.png")
	require.NoError(t, err)
	assert.Equal(t, "https://img/p.png", u.ProfileImage)
	assert.Empty(t, u.BackgroundImage)

	u, err = f.profile.UpdateBackgroundImage(ctx, ada.ID, ada.ID, "https://img/b.png")
	require.NoError(t, err)
	assert.Equal(t, "https://img/b.png", u.BackgroundImage)
	assert.Equal(t, "https://img/p.png", u.ProfileImage)

	_, err = f.profile.UpdateProfileImage(ctx, ada.ID, ada.ID, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestGetByUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, err := f.auth.Register(ctx, RegisterInput{Name: "Ada", Email: "a@x.com", Password: "pw", Username: "ada"})
	require.NoError(t, err)

	u, err := f.profile.GetByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)

	_, err = f.profile.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

type brokenUsers struct{ repository.Users }

func (brokenUsers) GetByEmail(context.Context, string) (models.User, error) {
	return models.User{}, errors.New("connection refused")
}

func TestRegister_StoreFaultIsInternal(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(brokenUsers{f.store.Users}, f.sessions, bcrypt.MinCost)

	_, _, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "pw"})
	require.Error(t, err)
	assert.True(t, apperr.IsInternal(err))
}

func TestCheckOwner(t *testing.T) {
	assert.NoError(t, CheckOwner("u1", "u1"))
	assert.ErrorIs(t, CheckOwner("u1", "u2"), apperr.ErrForbidden)
	assert.ErrorIs(t, CheckOwner("", ""), apperr.ErrForbidden)
}
