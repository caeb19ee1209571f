package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
	"github.com/sbilibin2017/foodgram-backend/internal/models"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

const avatarDir = "users"

// AvatarWriter updates a user's avatar URL.
type AvatarWriter interface {
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar *string) error
}

// SubscriptionExistence reports whether subscriber follows author.
type SubscriptionExistence interface {
	Exists(ctx context.Context, authorID, subscriberID uuid.UUID) (bool, error)
}

// UserService serves user profiles and avatars.
type UserService struct {
	users  UserGetter
	subs   SubscriptionExistence
	writer AvatarWriter
	images ImageSaver
}

// NewUserService creates a UserService.
func NewUserService(users UserGetter, subs SubscriptionExistence, writer AvatarWriter, images ImageSaver) *UserService {
	return &UserService{
		users:  users,
		subs:   subs,
		writer: writer,
		images: images,
	}
}

// Profile returns the user as seen by viewer. viewer may be nil.
func (s *UserService) Profile(ctx context.Context, viewer *uuid.UUID, userID uuid.UUID) (*models.UserProfile, error) {
	user, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &models.UserProfile{UserDB: *user}
	if viewer != nil && *viewer != userID {
		profile.IsSubscribed, err = s.subs.Exists(ctx, userID, *viewer)
		if err != nil {
			logger.Log.Errorw("failed to check subscription", "author", userID, "subscriber", viewer, "error", err)
			return nil, err
		}
	}
	return profile, nil
}

// SetAvatar stores a base64 data URI image and makes it the user's avatar.
func (s *UserService) SetAvatar(ctx context.Context, userID uuid.UUID, data string) (string, error) {
	if data == "" {
		return "", NewValidationError("avatar", "this field is required")
	}

	user, err := s.get(ctx, userID)
	if err != nil {
		return "", err
	}

	url, err := s.images.Save(ctx, avatarDir, data)
	if err != nil {
		return "", imageSaveError("avatar", err)
	}

	if err := s.writer.UpdateAvatar(ctx, userID, &url); err != nil {
		logger.Log.Errorw("failed to update avatar", "userID", userID, "error", err)
		s.removeImage(ctx, url)
		return "", err
	}

	if user.Avatar != nil {
		s.removeImage(ctx, *user.Avatar)
	}
	return url, nil
}

// DeleteAvatar clears the user's avatar.
func (s *UserService) DeleteAvatar(ctx context.Context, userID uuid.UUID) error {
	user, err := s.get(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.writer.UpdateAvatar(ctx, userID, nil); err != nil {
		logger.Log.Errorw("failed to clear avatar", "userID", userID, "error", err)
		return err
	}

	if user.Avatar != nil {
		s.removeImage(ctx, *user.Avatar)
	}
	return nil
}

func (s *UserService) get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) removeImage(ctx context.Context, url string) {
	if err := s.images.Remove(ctx, url); err != nil {
		logger.Log.Warnw("failed to remove image", "url", url, "error", err)
	}
}
