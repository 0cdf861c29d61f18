package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
)

type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	AuthorID  string    `json:"authorId"`
	Author    *Author   `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate trims the post and rejects one with neither content nor image.
func (p *Post) Validate() error {
	p.Content = strings.TrimSpace(p.Content)
	p.Image = strings.TrimSpace(p.Image)
	if p.Content == "" && p.Image == "" {
		return fmt.Errorf("content or image is required: %w", apperr.ErrInvalidInput)
	}
	if p.Image != "" && !isImageURL(p.Image) {
		return fmt.Errorf("image must be an http(s) url: %w", apperr.ErrInvalidInput)
	}
	if p.AuthorID == "" {
		return fmt.Errorf("author is required: %w", apperr.ErrInvalidInput)
	}
	return nil
}

func isImageURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// UserPosts is a profile page: the user and their posts, newest first.
type UserPosts struct {
	User  User   `json:"user"`
	Posts []Post `json:"posts"`
}
