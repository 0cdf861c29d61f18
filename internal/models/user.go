package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
)

// User is a registered member. PasswordHash never leaves the process.
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Username        string    `json:"username,omitempty"`
	PasswordHash    string    `json:"-"`
	Bio             string    `json:"bio"`
	ProfileImage    string    `json:"profileImage"`
	BackgroundImage string    `json:"backgroundImage"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Author is the slice of a user joined into feed entries.
type Author struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

func (u User) Author() Author {
	return Author{ID: u.ID, Name: u.Name, Email: u.Email, ProfileImage: u.ProfileImage}
}

// NormalizeEmail is applied before every store write and lookup, so
// uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) Validate() error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = NormalizeEmail(u.Email)
	u.Username = strings.TrimSpace(u.Username)
	if u.Name == "" {
		return fmt.Errorf("name is required: %w", apperr.ErrInvalidInput)
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return fmt.Errorf("invalid email: %w", apperr.ErrInvalidInput)
	}
	if strings.ContainsAny(u.Username, " /") {
		return fmt.Errorf("invalid username: %w", apperr.ErrInvalidInput)
	}
	return nil
}

// ProfileUpdate carries the fields a user may change on their own profile.
// Nil means "leave as is".
type ProfileUpdate struct {
	Name *string
	Bio  *string
}

func (p *ProfileUpdate) Validate() error {
	if p.Name != nil {
		n := strings.TrimSpace(*p.Name)
		if n == "" {
			return fmt.Errorf("name cannot be empty: %w", apperr.ErrInvalidInput)
		}
		p.Name = &n
	}
	return nil
}

func (p ProfileUpdate) Empty() bool { return p.Name == nil && p.Bio == nil }
