package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
	"github.com/baharkarakas/mini-linkedin/internal/auth"
	"github.com/baharkarakas/mini-linkedin/internal/metrics"
	"github.com/baharkarakas/mini-linkedin/internal/models"
	repo "github.com/baharkarakas/mini-linkedin/internal/repository"
	"github.com/google/uuid"
)

// AuthService registers and authenticates users and issues their sessions.
type AuthService struct {
	users      repo.Users
	sessions   *auth.SessionManager
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(users repo.Users, sessions *auth.SessionManager, bcryptCost int) *AuthService {
	return &AuthService{users: users, sessions: sessions, bcryptCost: bcryptCost, now: time.Now}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Username string
	Bio      string
}

// Register creates the account and opens a session for it. A taken email
// fails with apperr.ErrConflict and leaves the store untouched.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, auth.Session, error) {
	u := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Username: in.Username,
		Bio:      strings.TrimSpace(in.Bio),
	}
	if err := u.Validate(); err != nil {
		return models.User{}, auth.Session{}, fmt.Errorf("register: %w", err)
	}

	_, err := s.users.GetByEmail(ctx, u.Email)
	switch {
	case err == nil:
		return models.User{}, auth.Session{}, fmt.Errorf("register %q: %w", u.Email, apperr.ErrConflict)
	case !errors.Is(err, apperr.ErrNotFound):
		return models.User{}, auth.Session{}, fmt.Errorf("register: %w", err)
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return models.User{}, auth.Session{}, fmt.Errorf("register: %w", err)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return models.User{}, auth.Session{}, fmt.Errorf("register: new id: %w", err)
	}
	u.ID = id.String()
	u.PasswordHash = hash
	u.CreatedAt = s.now().UTC().Truncate(time.Microsecond)

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return models.User{}, auth.Session{}, fmt.Errorf("register: %w", err)
	}
	sess, err := s.sessions.Issue(created.ID)
	if err != nil {
		return models.User{}, auth.Session{}, fmt.Errorf("register: %w", err)
	}

	metrics.UsersRegistered.Inc()
	slog.InfoContext(ctx, "user registered", "user_id", created.ID)
	return created, sess, nil
}

// Login fails with apperr.ErrNotFound for an unknown email and
// apperr.ErrUnauthorized for a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, auth.Session, error) {
	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, auth.Session{}, fmt.Errorf("login: email and password are required: %w", apperr.ErrInvalidInput)
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, auth.Session{}, fmt.Errorf("login: %w", err)
	}
	if !auth.VerifyPassword(password, u.PasswordHash) {
		metrics.LoginFailures.Inc()
		return models.User{}, auth.Session{}, fmt.Errorf("login %q: invalid credentials: %w", email, apperr.ErrUnauthorized)
	}
	sess, err := s.sessions.Issue(u.ID)
	if err != nil {
		return models.User{}, auth.Session{}, fmt.Errorf("login: %w", err)
	}
	return u, sess, nil
}

// CurrentUser resolves the user behind an authenticated session.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("current user: %w", err)
	}
	return u, nil
}
