package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
)

// UserRepository defines the interface for user persistence operations.
// User rows are created by the auth collaborator at registration time; this
// core only reads and updates profile fields.
type UserRepository interface {
	// Create persists a new user.
	// Returns ErrDuplicateUsername if the username is taken.
	Create(ctx context.Context, user *model.User) error

	// GetByID retrieves a user by its unique identifier.
	// Returns nil and ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// Update persists profile changes.
	// Returns ErrUserNotFound if the user does not exist and
	// ErrDuplicateUsername if the new username is taken by another user.
	Update(ctx context.Context, user *model.User) error

	// Exists reports whether a user with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// SubscriptionRepository manages the normalized (subscriber, channel) edge
// table. Edge uniqueness is enforced by the store's primary key.
type SubscriptionRepository interface {
	// Create inserts a subscription edge.
	// Returns ErrAlreadySubscribed if the edge already exists and
	// ErrUserNotFound if the channel user does not exist.
	Create(ctx context.Context, subscriberID, channelID uuid.UUID) error

	// Delete removes a subscription edge.
	// Returns ErrNotSubscribed if the edge does not exist.
	Delete(ctx context.Context, subscriberID, channelID uuid.UUID) error

	// Exists reports whether the edge (subscriber, channel) is present.
	Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)

	// CountSubscribers returns the number of users subscribed to a channel.
	CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error)

	// ListChannels retrieves public profile summaries of every channel the
	// subscriber follows, newest subscription first.
	ListChannels(ctx context.Context, subscriberID uuid.UUID) ([]*model.Profile, error)
}
