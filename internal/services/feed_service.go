package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/baharkarakas/mini-linkedin/internal/metrics"
	"github.com/baharkarakas/mini-linkedin/internal/models"
	repo "github.com/baharkarakas/mini-linkedin/internal/repository"
	"github.com/google/uuid"
)

// FeedService owns posts: creation, the public feed, per-user listings and
// owner-only deletion.
type FeedService struct {
	users repo.Users
	posts repo.Posts
	now   func() time.Time
}

func NewFeedService(users repo.Users, posts repo.Posts) *FeedService {
	return &FeedService{users: users, posts: posts, now: time.Now}
}

func (s *FeedService) CreatePost(ctx context.Context, authorID, content, image string) (models.Post, error) {
	p := models.Post{AuthorID: authorID, Content: content, Image: image}
	if err := p.Validate(); err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return models.Post{}, fmt.Errorf("create post: new id: %w", err)
	}
	p.ID = id.String()
	p.CreatedAt = s.now().UTC().Truncate(time.Microsecond)

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}
	created, err := s.posts.Create(ctx, p)
	if err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}
	a := author.Author()
	created.Author = &a
	metrics.PostsCreated.Inc()
	slog.DebugContext(ctx, "post created", "post_id", created.ID, "author_id", authorID)
	return created, nil
}

// ListFeed returns all posts newest first with their authors joined in.
func (s *FeedService) ListFeed(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.ListFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feed: %w", err)
	}
	return posts, nil
}

// ListUserPosts returns a user's public profile with their posts. Each post
// carries the same author summary the feed does.
func (s *FeedService) ListUserPosts(ctx context.Context, userID string) (models.UserPosts, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.UserPosts{}, fmt.Errorf("list user posts: %w", err)
	}
	posts, err := s.posts.ListByAuthor(ctx, u.ID)
	if err != nil {
		return models.UserPosts{}, fmt.Errorf("list user posts: %w", err)
	}
	author := u.Author()
	for i := range posts {
		posts[i].Author = &author
	}
	return models.UserPosts{User: u, Posts: posts}, nil
}

// DeletePost removes a post its caller authored. A post that vanishes between
// the lookup and the delete surfaces as NotFound.
func (s *FeedService) DeletePost(ctx context.Context, callerID, postID string) error {
	_, err := guardedMutation(ctx, callerID,
		func(ctx context.Context) (models.Post, error) { return s.posts.GetByID(ctx, postID) },
		func(p models.Post) string { return p.AuthorID },
		func(ctx context.Context, p models.Post) (struct{}, error) {
			return struct{}{}, s.posts.Delete(ctx, p.ID)
		},
	)
	if err != nil {
		return fmt.Errorf("delete post %s: %w", postID, err)
	}
	metrics.PostsDeleted.Inc()
	return nil
}
