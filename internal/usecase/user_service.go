package usecase

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
	"github.com/CodellaAI/viewtube-backend/internal/domain/repository"
)

// UpdateProfileInput describes a partial profile update for the acting user.
// Nil fields keep their prior values.
type UpdateProfileInput struct {
	Actor       *model.Principal
	Username    *string
	DisplayName *string
	Bio         *string
}

// UpdateAvatarOutput carries the new avatar key and the presigned URL the
// client uploads the image to.
type UpdateAvatarOutput struct {
	AvatarKey string
	UploadURL string
}

// UserService defines the interface for identity and subscription operations.
type UserService interface {
	// GetProfile retrieves a user's public profile with the derived
	// subscriber count. Credential material never leaves the store.
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)

	// UpdateProfile applies a partial profile update for the acting user.
	// Username changes are checked for uniqueness.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*model.Profile, error)

	// UpdateAvatar replaces the acting user's avatar reference and returns
	// a presigned upload URL for the new image.
	UpdateAvatar(ctx context.Context, actor *model.Principal, fileName string) (*UpdateAvatarOutput, error)

	// Subscribe creates the (actor, channel) edge. Self-subscription and
	// duplicate edges fail.
	Subscribe(ctx context.Context, actor *model.Principal, channelID uuid.UUID) error

	// Unsubscribe removes the edge; an absent edge is a client error.
	Unsubscribe(ctx context.Context, actor *model.Principal, channelID uuid.UUID) error

	// IsSubscribed reports whether the actor follows the channel.
	IsSubscribed(ctx context.Context, actor *model.Principal, channelID uuid.UUID) (bool, error)

	// ListSubscriptions retrieves the channels the actor follows, enriched
	// with their public summaries.
	ListSubscriptions(ctx context.Context, actor *model.Principal) ([]*model.Profile, error)
}

// UserServiceConfig holds configuration for UserService.
type UserServiceConfig struct {
	UploadURLExpiry time.Duration
}

// DefaultUserServiceConfig returns the default configuration.
func DefaultUserServiceConfig() UserServiceConfig {
	return UserServiceConfig{
		UploadURLExpiry: 15 * time.Minute,
	}
}

type userService struct {
	users   repository.UserRepository
	subs    repository.SubscriptionRepository
	storage repository.ObjectStorage

	uploadURLExpiry time.Duration
}

// NewUserService creates a new UserService instance.
func NewUserService(
	users repository.UserRepository,
	subs repository.SubscriptionRepository,
	storage repository.ObjectStorage,
	cfg UserServiceConfig,
) UserService {
	return &userService{
		users:           users,
		subs:            subs,
		storage:         storage,
		uploadURLExpiry: cfg.UploadURLExpiry,
	}
}

// GetProfile retrieves a public profile with the derived subscriber count.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	subscribers, err := s.subs.CountSubscribers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}

	return user.PublicProfile(subscribers), nil
}

// UpdateProfile applies a partial profile update for the acting user.
func (s *userService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*model.Profile, error) {
	if input.Actor == nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, input.Actor.UserID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		if err := model.ValidateUsername(*input.Username); err != nil {
			return nil, err
		}
		user.Username = *input.Username
	}
	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		if err := model.ValidateBio(*input.Bio); err != nil {
			return nil, err
		}
		user.Bio = *input.Bio
	}

	// Uniqueness on username is enforced by the store's constraint, which
	// closes the check-then-act race a pre-query would leave open.
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	subscribers, err := s.subs.CountSubscribers(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}

	return user.PublicProfile(subscribers), nil
}

// UpdateAvatar replaces the avatar reference and presigns the upload.
func (s *userService) UpdateAvatar(ctx context.Context, actor *model.Principal, fileName string) (*UpdateAvatarOutput, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	key := path.Join("avatars", user.ID.String(), fileName)
	uploadURL, err := s.storage.GeneratePresignedUploadURL(ctx, key, s.uploadURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("generate avatar upload URL: %w", err)
	}

	user.AvatarKey = key
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return &UpdateAvatarOutput{
		AvatarKey: key,
		UploadURL: uploadURL,
	}, nil
}

// Subscribe creates the subscription edge.
func (s *userService) Subscribe(ctx context.Context, actor *model.Principal, channelID uuid.UUID) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if actor.UserID == channelID {
		return ErrSelfSubscription
	}

	exists, err := s.users.Exists(ctx, channelID)
	if err != nil {
		return fmt.Errorf("check channel existence: %w", err)
	}
	if !exists {
		return repository.ErrUserNotFound
	}

	return s.subs.Create(ctx, actor.UserID, channelID)
}

// Unsubscribe removes the subscription edge.
func (s *userService) Unsubscribe(ctx context.Context, actor *model.Principal, channelID uuid.UUID) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	return s.subs.Delete(ctx, actor.UserID, channelID)
}

// IsSubscribed reports whether the actor follows the channel.
func (s *userService) IsSubscribed(ctx context.Context, actor *model.Principal, channelID uuid.UUID) (bool, error) {
	if actor == nil {
		return false, ErrUnauthenticated
	}
	return s.subs.Exists(ctx, actor.UserID, channelID)
}

// ListSubscriptions retrieves the channels the actor follows.
func (s *userService) ListSubscriptions(ctx context.Context, actor *model.Principal) ([]*model.Profile, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	return s.subs.ListChannels(ctx, actor.UserID)
}
