package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
	"github.com/CodellaAI/viewtube-backend/internal/domain/repository"
)

// pgForeignKeyViolation is the Postgres error code for FK constraint failures.
const pgForeignKeyViolation = "23503"

// SubscriptionRepository implements repository.SubscriptionRepository on a
// normalized edge table. The (subscriber_id, channel_id) primary key makes
// edge uniqueness structural; both directions of the relation are views over
// the same rows.
type SubscriptionRepository struct {
	db DBTX
}

// NewSubscriptionRepository creates a new SubscriptionRepository instance.
func NewSubscriptionRepository(db DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create inserts a subscription edge.
func (r *SubscriptionRepository) Create(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	const query = `
		INSERT INTO subscriptions (subscriber_id, channel_id, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, subscriberID, channelID, time.Now())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return repository.ErrAlreadySubscribed
			case pgForeignKeyViolation:
				return repository.ErrUserNotFound
			}
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// Delete removes a subscription edge. An absent edge is a client error.
func (r *SubscriptionRepository) Delete(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	const query = `
		DELETE FROM subscriptions
		WHERE subscriber_id = $1 AND channel_id = $2
	`

	tag, err := r.db.Exec(ctx, query, subscriberID, channelID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrNotSubscribed
	}

	return nil
}

// Exists reports whether the edge (subscriber, channel) is present.
func (r *SubscriptionRepository) Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	const query = `
		SELECT 1 FROM subscriptions
		WHERE subscriber_id = $1 AND channel_id = $2
	`

	var one int
	err := r.db.QueryRow(ctx, query, subscriberID, channelID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}

	return true, nil
}

// CountSubscribers returns the number of users subscribed to a channel.
func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	const query = `SELECT count(*) FROM subscriptions WHERE channel_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, channelID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}

	return count, nil
}

// ListChannels retrieves public summaries of the channels a user follows,
// newest subscription first, each enriched with its own subscriber count.
func (r *SubscriptionRepository) ListChannels(ctx context.Context, subscriberID uuid.UUID) ([]*model.Profile, error) {
	const query = `
		SELECT u.id, u.username, u.display_name, u.avatar_key, u.bio, u.created_at,
		       (SELECT count(*) FROM subscriptions cs WHERE cs.channel_id = u.id)
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	var profiles []*model.Profile
	for rows.Next() {
		var (
			profile     model.Profile
			displayName *string
			avatarKey   *string
			bio         *string
		)

		err := rows.Scan(
			&profile.ID,
			&profile.Username,
			&displayName,
			&avatarKey,
			&bio,
			&profile.CreatedAt,
			&profile.Subscribers,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}

		if displayName != nil {
			profile.DisplayName = *displayName
		}
		if avatarKey != nil {
			profile.AvatarKey = *avatarKey
		}
		if bio != nil {
			profile.Bio = *bio
		}

		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriptions: %w", err)
	}

	return profiles, nil
}

// Compile-time verification that SubscriptionRepository implements repository.SubscriptionRepository.
var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
