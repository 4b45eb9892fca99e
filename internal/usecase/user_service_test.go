package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
	"github.com/CodellaAI/viewtube-backend/internal/domain/repository"
)

func newTestUser(id uuid.UUID) *model.User {
	return &model.User{
		ID:           id,
		Username:     "alice",
		PasswordHash: "$argon2id$opaque",
		DisplayName:  "Alice",
		Bio:          "hi",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestUserService_GetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("strips credentials and adds subscriber count", func(t *testing.T) {
		userRepo := &mockUserRepository{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.User, error) {
				return newTestUser(userID), nil
			},
		}
		subRepo := &mockSubscriptionRepository{
			countSubscribersFn: func(ctx context.Context, channelID uuid.UUID) (int64, error) {
				return 12, nil
			},
		}
		svc := NewUserService(userRepo, subRepo, &mockObjectStorage{}, DefaultUserServiceConfig())

		profile, err := svc.GetProfile(context.Background(), userID)
		if err != nil {
			t.Fatalf("GetProfile() unexpected error = %v", err)
		}
		if profile.Username != "alice" {
			t.Errorf("Username = %q, want %q", profile.Username, "alice")
		}
		if profile.Subscribers != 12 {
			t.Errorf("Subscribers = %v, want 12", profile.Subscribers)
		}
	})

	t.Run("missing user surfaces not-found", func(t *testing.T) {
		userRepo := &mockUserRepository{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.User, error) {
				return nil, repository.ErrUserNotFound
			},
		}
		svc := NewUserService(userRepo, &mockSubscriptionRepository{}, &mockObjectStorage{}, DefaultUserServiceConfig())

		_, err := svc.GetProfile(context.Background(), uuid.New())
		if !errors.Is(err, repository.ErrUserNotFound) {
			t.Errorf("GetProfile() error = %v, want %v", err, repository.ErrUserNotFound)
		}
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	userID := uuid.New()
	actor := &model.Principal{UserID: userID, Role: model.RoleUser}

	strPtr := func(s string) *string { return &s }

	newRepo := func() *mockUserRepository {
		return &mockUserRepository{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.User, error) {
				return newTestUser(userID), nil
			},
		}
	}

	t.Run("applies partial update", func(t *testing.T) {
		userRepo := newRepo()
		var updated *model.User
		userRepo.updateFn = func(ctx context.Context, user *model.User) error {
			updated = user
			return nil
		}
		svc := NewUserService(userRepo, &mockSubscriptionRepository{}, &mockObjectStorage{}, DefaultUserServiceConfig())

		profile, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			Actor:       actor,
			DisplayName: strPtr("Alice B."),
		})
		if err != nil {
			t.Fatalf("UpdateProfile() unexpected error = %v", err)
		}
		if updated == nil {
			t.Fatal("Update() was not called")
		}
		if profile.DisplayName != "Alice B." {
			t.Errorf("DisplayName = %q, want %q", profile.DisplayName, "Alice B.")
		}
		if profile.Username != "alice" {
			t.Errorf("Username = %q, want prior value kept", profile.Username)
		}
	})

	t.Run("duplicate username surfaces conflict", func(t *testing.T) {
		userRepo := newRepo()
		userRepo.updateFn = func(ctx context.Context, user *model.User) error {
			return repository.ErrDuplicateUsername
		}
		svc := NewUserService(userRepo, &mockSubscriptionRepository{}, &mockObjectStorage{}, DefaultUserServiceConfig())

		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			Actor:    actor,
			Username: strPtr("taken"),
		})
		if !errors.Is(err, repository.ErrDuplicateUsername) {
			t.Errorf("UpdateProfile() error = %v, want %v", err, repository.ErrDuplicateUsername)
		}
	})

	t.Run("invalid username is rejected", func(t *testing.T) {
		svc := NewUserService(newRepo(), &mockSubscriptionRepository{}, &mockObjectStorage{}, DefaultUserServiceConfig())

		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			Actor:    actor,
			Username: strPtr(strings.Repeat("a", 33)),
		})
		if !errors.Is(err, model.ErrUsernameTooLong) {
			t.Errorf("UpdateProfile() error = %v, want %v", err, model.ErrUsernameTooLong)
		}
	})

	t.Run("oversized bio is rejected", func(t *testing.T) {
		svc := NewUserService(newRepo(), &mockSubscriptionRepository{}, &mockObjectStorage{}, DefaultUserServiceConfig())

		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			Actor: actor,
			Bio:   strPtr(strings.Repeat("a", 1001)),
		})
		if !errors.Is(err, model.ErrBioTooLong) {
			t.Errorf("UpdateProfile() error = %v, want %v", err, model.ErrBioTooLong)
		}
	})

	t.Run("anonymous actor is rejected", func(t *testing.T) {
		svc := NewUserService(newRepo(), &mockSubscriptionRepository{}, &mockObjectStorage{}, DefaultUserServiceConfig())

		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{})
		if !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("UpdateProfile() error = %v, want %v", err, ErrUnauthenticated)
		}
	})
}

func TestUserService_UpdateAvatar(t *testing.T) {
	userID := uuid.New()
	actor := &model.Principal{UserID: userID, Role: model.RoleUser}

	t.Run("presigns upload and stores key", func(t *testing.T) {
		userRepo := &mockUserRepository{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.User, error) {
				return newTestUser(userID), nil
			},
		}
		var savedKey string
		userRepo.updateFn = func(ctx context.Context, user *model.User) error {
			savedKey = user.AvatarKey
			return nil
		}
		svc := NewUserService(userRepo, &mockSubscriptionRepository{}, &mockObjectStorage{}, DefaultUserServiceConfig())

		out, err := svc.UpdateAvatar(context.Background(), actor, "me.png")
		if err != nil {
			t.Fatalf("UpdateAvatar() unexpected error = %v", err)
		}
		if !strings.HasPrefix(out.AvatarKey, "avatars/") {
			t.Errorf("AvatarKey = %q, want avatars/ prefix", out.AvatarKey)
		}
		if out.UploadURL == "" {
			t.Error("UploadURL should not be empty")
		}
		if savedKey != out.AvatarKey {
			t.Errorf("persisted AvatarKey = %q, want %q", savedKey, out.AvatarKey)
		}
	})

	t.Run("anonymous actor is rejected", func(t *testing.T) {
		svc := NewUserService(&mockUserRepository{}, &mockSubscriptionRepository{}, &mockObjectStorage{}, DefaultUserServiceConfig())

		_, err := svc.UpdateAvatar(context.Background(), nil, "me.png")
		if !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("UpdateAvatar() error = %v, want %v", err, ErrUnauthenticated)
		}
	})
}

func TestUserService_Subscribe(t *testing.T) {
	actorID := uuid.New()
	channelID := uuid.New()
	actor := &model.Principal{UserID: actorID, Role: model.RoleUser}

	t.Run("creates subscription edge", func(t *testing.T) {
		var gotSubscriber, gotChannel uuid.UUID
		subRepo := &mockSubscriptionRepository{
			createFn: func(ctx context.Context, subscriberID, cid uuid.UUID) error {
				gotSubscriber, gotChannel = subscriberID, cid
				return nil
			},
		}
		svc := NewUserService(&mockUserRepository{}, subRepo, &mockObjectStorage{}, DefaultUserServiceConfig())

		if err := svc.Subscribe(context.Background(), actor, channelID); err != nil {
			t.Fatalf("Subscribe() unexpected error = %v", err)
		}
		if gotSubscriber != actorID || gotChannel != channelID {
			t.Errorf("Create() edge = (%v, %v), want (%v, %v)", gotSubscriber, gotChannel, actorID, channelID)
		}
	})

	t.Run("self-subscription is rejected", func(t *testing.T) {
		svc := NewUserService(&mockUserRepository{}, &mockSubscriptionRepository{}, &mockObjectStorage{}, DefaultUserServiceConfig())

		err := svc.Subscribe(context.Background(), actor, actorID)
		if !errors.Is(err, ErrSelfSubscription) {
			t.Errorf("Subscribe() error = %v, want %v", err, ErrSelfSubscription)
		}
	})

	t.Run("missing channel surfaces not-found", func(t *testing.T) {
		userRepo := &mockUserRepository{
			existsFn: func(ctx context.Context, id uuid.UUID) (bool, error) {
				return false, nil
			},
		}
		svc := NewUserService(userRepo, &mockSubscriptionRepository{}, &mockObjectStorage{}, DefaultUserServiceConfig())

		err := svc.Subscribe(context.Background(), actor, channelID)
		if !errors.Is(err, repository.ErrUserNotFound) {
			t.Errorf("Subscribe() error = %v, want %v", err, repository.ErrUserNotFound)
		}
	})

	t.Run("duplicate edge surfaces conflict", func(t *testing.T) {
		subRepo := &mockSubscriptionRepository{
			createFn: func(ctx context.Context, subscriberID, cid uuid.UUID) error {
				return repository.ErrAlreadySubscribed
			},
		}
		svc := NewUserService(&mockUserRepository{}, subRepo, &mockObjectStorage{}, DefaultUserServiceConfig())

		err := svc.Subscribe(context.Background(), actor, channelID)
		if !errors.Is(err, repository.ErrAlreadySubscribed) {
			t.Errorf("Subscribe() error = %v, want %v", err, repository.ErrAlreadySubscribed)
		}
	})

	t.Run("anonymous actor is rejected", func(t *testing.T) {
		svc := NewUserService(&mockUserRepository{}, &mockSubscriptionRepository{}, &mockObjectStorage{}, DefaultUserServiceConfig())

		err := svc.Subscribe(context.Background(), nil, channelID)
		if !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("Subscribe() error = %v, want %v", err, ErrUnauthenticated)
		}
	})
}

func TestUserService_Unsubscribe(t *testing.T) {
	actor := &model.Principal{UserID: uuid.New(), Role: model.RoleUser}
	channelID := uuid.New()

	t.Run("removes edge", func(t *testing.T) {
		deleted := false
		subRepo := &mockSubscriptionRepository{
			deleteFn: func(ctx context.Context, subscriberID, cid uuid.UUID) error {
				deleted = true
				return nil
			},
		}
		svc := NewUserService(&mockUserRepository{}, subRepo, &mockObjectStorage{}, DefaultUserServiceConfig())

		if err := svc.Unsubscribe(context.Background(), actor, channelID); err != nil {
			t.Fatalf("Unsubscribe() unexpected error = %v", err)
		}
		if !deleted {
			t.Error("Delete() was not called")
		}
	})

	t.Run("absent edge surfaces ErrNotSubscribed", func(t *testing.T) {
		subRepo := &mockSubscriptionRepository{
			deleteFn: func(ctx context.Context, subscriberID, cid uuid.UUID) error {
				return repository.ErrNotSubscribed
			},
		}
		svc := NewUserService(&mockUserRepository{}, subRepo, &mockObjectStorage{}, DefaultUserServiceConfig())

		err := svc.Unsubscribe(context.Background(), actor, channelID)
		if !errors.Is(err, repository.ErrNotSubscribed) {
			t.Errorf("Unsubscribe() error = %v, want %v", err, repository.ErrNotSubscribed)
		}
	})

	t.Run("anonymous actor is rejected", func(t *testing.T) {
		svc := NewUserService(&mockUserRepository{}, &mockSubscriptionRepository{}, &mockObjectStorage{}, DefaultUserServiceConfig())

		err := svc.Unsubscribe(context.Background(), nil, channelID)
		if !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("Unsubscribe() error = %v, want %v", err, ErrUnauthenticated)
		}
	})
}

func TestUserService_ListSubscriptions(t *testing.T) {
	actor := &model.Principal{UserID: uuid.New(), Role: model.RoleUser}

	t.Run("returns followed channels", func(t *testing.T) {
		subRepo := &mockSubscriptionRepository{
			listChannelsFn: func(ctx context.Context, subscriberID uuid.UUID) ([]*model.Profile, error) {
				if subscriberID != actor.UserID {
					t.Errorf("ListChannels() subscriberID = %v, want %v", subscriberID, actor.UserID)
				}
				return []*model.Profile{{ID: uuid.New(), Username: "bob"}}, nil
			},
		}
		svc := NewUserService(&mockUserRepository{}, subRepo, &mockObjectStorage{}, DefaultUserServiceConfig())

		channels, err := svc.ListSubscriptions(context.Background(), actor)
		if err != nil {
			t.Fatalf("ListSubscriptions() unexpected error = %v", err)
		}
		if len(channels) != 1 {
			t.Errorf("ListSubscriptions() returned %d channels, want 1", len(channels))
		}
	})

	t.Run("anonymous actor is rejected", func(t *testing.T) {
		svc := NewUserService(&mockUserRepository{}, &mockSubscriptionRepository{}, &mockObjectStorage{}, DefaultUserServiceConfig())

		_, err := svc.ListSubscriptions(context.Background(), nil)
		if !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("ListSubscriptions() error = %v, want %v", err, ErrUnauthenticated)
		}
	})
}

func TestUserService_IsSubscribed(t *testing.T) {
	actor := &model.Principal{UserID: uuid.New(), Role: model.RoleUser}
	channelID := uuid.New()

	subRepo := &mockSubscriptionRepository{
		existsFn: func(ctx context.Context, subscriberID, cid uuid.UUID) (bool, error) {
			return true, nil
		},
	}
	svc := NewUserService(&mockUserRepository{}, subRepo, &mockObjectStorage{}, DefaultUserServiceConfig())

	got, err := svc.IsSubscribed(context.Background(), actor, channelID)
	if err != nil {
		t.Fatalf("IsSubscribed() unexpected error = %v", err)
	}
	if !got {
		t.Error("IsSubscribed() = false, want true")
	}

	if _, err := svc.IsSubscribed(context.Background(), nil, channelID); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("IsSubscribed() error = %v, want %v", err, ErrUnauthenticated)
	}
}
