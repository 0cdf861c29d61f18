// Package memory is a process-local store used for local runs
// (STORE_DRIVER=memory) and tests. Data does not survive a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
	"github.com/baharkarakas/mini-linkedin/internal/models"
	"github.com/baharkarakas/mini-linkedin/internal/repository"
)

type db struct {
	mu    sync.RWMutex
	users map[string]models.User
	posts map[string]models.Post
	now   func() time.Time
}

func NewStore() repository.Store {
	d := &db{
		users: map[string]models.User{},
		posts: map[string]models.Post{},
		now:   time.Now,
	}
	return repository.Store{
		Users: &usersRepo{d},
		Posts: &postsRepo{d},
		Close: func() {},
	}
}

type usersRepo struct{ *db }

func (r *usersRepo) Create(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; ok {
		return models.User{}, fmt.Errorf("create user: id taken: %w", apperr.ErrConflict)
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return models.User{}, fmt.Errorf("create user: email taken: %w", apperr.ErrConflict)
		}
		if u.Username != "" && existing.Username == u.Username {
			return models.User{}, fmt.Errorf("create user: username taken: %w", apperr.ErrConflict)
		}
	}
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = u
	return u, nil
}

func (r *usersRepo) GetByID(_ context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("get user: %w", apperr.ErrNotFound)
	}
	return u, nil
}

func (r *usersRepo) find(match func(models.User) bool, op string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
}

func (r *usersRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email }, "get user by email")
}

func (r *usersRepo) GetByUsername(_ context.Context, username string) (models.User, error) {
	if username == "" {
		return models.User{}, fmt.Errorf("get user by username: %w", apperr.ErrNotFound)
	}
	return r.find(func(u models.User) bool { return u.Username == username }, "get user by username")
}

func (r *usersRepo) update(id, op string, fn func(*models.User)) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	fn(&u)
	u.UpdatedAt = r.now().UTC()
	r.users[id] = u
	return u, nil
}

func (r *usersRepo) UpdateProfile(_ context.Context, id string, upd models.ProfileUpdate) (models.User, error) {
	return r.update(id, "update profile", func(u *models.User) {
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Bio != nil {
			u.Bio = *upd.Bio
		}
	})
}

func (r *usersRepo) SetProfileImage(_ context.Context, id, url string) (models.User, error) {
	return r.update(id, "set profile image", func(u *models.User) { u.ProfileImage = url })
}

func (r *usersRepo) SetBackgroundImage(_ context.Context, id, url string) (models.User, error) {
	return r.update(id, "set background image", func(u *models.User) { u.BackgroundImage = url })
}

func (r *usersRepo) Count(context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

type postsRepo struct{ *db }

func (r *postsRepo) Create(_ context.Context, p models.Post) (models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[p.AuthorID]; !ok {
		return models.Post{}, fmt.Errorf("create post: unknown author: %w", apperr.ErrNotFound)
	}
	if _, ok := r.posts[p.ID]; ok {
		return models.Post{}, fmt.Errorf("create post: id taken: %w", apperr.ErrConflict)
	}
	p.Author = nil
	r.posts[p.ID] = p
	return p, nil
}

func (r *postsRepo) GetByID(_ context.Context, id string) (models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.posts[id]
	if !ok {
		return models.Post{}, fmt.Errorf("get post: %w", apperr.ErrNotFound)
	}
	return p, nil
}

func (r *postsRepo) ListFeed(context.Context) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if u, ok := r.users[p.AuthorID]; ok {
			a := u.Author()
			p.Author = &a
		}
		out = append(out, p)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *postsRepo) ListByAuthor(_ context.Context, authorID string) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Post{}
	for _, p := range r.posts {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *postsRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("delete post: %w", apperr.ErrNotFound)
	}
	delete(r.posts, id)
	return nil
}

func sortNewestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
}
