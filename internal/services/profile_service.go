package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
	"github.com/baharkarakas/mini-linkedin/internal/models"
	repo "github.com/baharkarakas/mini-linkedin/internal/repository"
)

// ProfileService reads public profiles and applies owner edits.
type ProfileService struct {
	users repo.Users
}

func NewProfileService(users repo.Users) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) GetUser(ctx context.Context, id string) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *ProfileService) GetByUsername(ctx context.Context, username string) (models.User, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return models.User{}, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// UpdateProfile changes name and/or bio. Omitted fields stay as they are; an
// empty update returns the current profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, callerID, targetID string, upd models.ProfileUpdate) (models.User, error) {
	if err := upd.Validate(); err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}
	u, err := s.mutateOwn(ctx, callerID, targetID, func(ctx context.Context, u models.User) (models.User, error) {
		if upd.Empty() {
			return u, nil
		}
		return s.users.UpdateProfile(ctx, u.ID, upd)
	})
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}

func (s *ProfileService) UpdateProfileImage(ctx context.Context, callerID, targetID, imageURL string) (models.User, error) {
	return s.setImage(ctx, callerID, targetID, imageURL, "profile", s.users.SetProfileImage)
}

func (s *ProfileService) UpdateBackgroundImage(ctx context.Context, callerID, targetID, imageURL string) (models.User, error) {
	return s.setImage(ctx, callerID, targetID, imageURL, "background", s.users.SetBackgroundImage)
}

func (s *ProfileService) setImage(
	ctx context.Context, callerID, targetID, imageURL, kind string,
	set func(ctx context.Context, id, url string) (models.User, error),
) (models.User, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return models.User{}, fmt.Errorf("update %s image: no image provided: %w", kind, apperr.ErrInvalidInput)
	}
	u, err := s.mutateOwn(ctx, callerID, targetID, func(ctx context.Context, u models.User) (models.User, error) {
		return set(ctx, u.ID, imageURL)
	})
	if err != nil {
		return models.User{}, fmt.Errorf("update %s image: %w", kind, err)
	}
	return u, nil
}

func (s *ProfileService) mutateOwn(
	ctx context.Context, callerID, targetID string,
	mutate func(context.Context, models.User) (models.User, error),
) (models.User, error) {
	return guardedMutation(ctx, callerID,
		func(ctx context.Context) (models.User, error) { return s.users.GetByID(ctx, targetID) },
		func(u models.User) string { return u.ID },
		mutate,
	)
}
