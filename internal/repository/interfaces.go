package repository

import (
	"context"

	"github.com/baharkarakas/mini-linkedin/internal/models"
)

// Users persists accounts. Lookups that match nothing return an error
// wrapping apperr.ErrNotFound; a duplicate email or username returns one
// wrapping apperr.ErrConflict.
type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) (models.User, error)
	SetProfileImage(ctx context.Context, id, url string) (models.User, error)
	SetBackgroundImage(ctx context.Context, id, url string) (models.User, error)
	Count(ctx context.Context) (int, error)
}

// Posts persists posts. List results are ordered newest first, ties broken by
// id descending.
type Posts interface {
	Create(ctx context.Context, p models.Post) (models.Post, error)
	GetByID(ctx context.Context, id string) (models.Post, error)
	ListFeed(ctx context.Context) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
	Delete(ctx context.Context, id string) error
}

// Store bundles the repositories with the lifecycle of their backing store.
type Store struct {
	Users Users
	Posts Posts
	Close func()
}
