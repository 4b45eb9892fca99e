package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
	"github.com/CodellaAI/viewtube-backend/internal/domain/repository"
)

// EngagementRepository implements repository.EngagementRepository on a
// single reactions table keyed by (target_kind, target_id, actor_id). The
// primary key makes like/dislike mutual exclusion structural: an actor's
// stance is one row, and switching stance is one conditional upsert.
type EngagementRepository struct {
	db DBTX
}

// NewEngagementRepository creates a new EngagementRepository instance.
func NewEngagementRepository(db DBTX) *EngagementRepository {
	return &EngagementRepository{db: db}
}

const countsQuery = `
	SELECT
		count(*) FILTER (WHERE reaction = 'like'),
		count(*) FILTER (WHERE reaction = 'dislike')
	FROM reactions
	WHERE target_kind = $1 AND target_id = $2
`

// Set records the actor's reaction, replacing the opposite one if present.
// The upsert only updates when the stored reaction differs, so a duplicate
// request affects zero rows and maps to ErrReactionExists.
func (r *EngagementRepository) Set(ctx context.Context, kind model.TargetKind, targetID, actorID uuid.UUID, reaction model.Reaction) (model.EngagementCounts, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.EngagementCounts{}, fmt.Errorf("failed to begin reaction transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := checkTargetExists(ctx, tx, kind, targetID); err != nil {
		return model.EngagementCounts{}, err
	}

	const upsert = `
		INSERT INTO reactions (target_kind, target_id, actor_id, reaction, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (target_kind, target_id, actor_id)
		DO UPDATE SET reaction = EXCLUDED.reaction, created_at = EXCLUDED.created_at
		WHERE reactions.reaction <> EXCLUDED.reaction
	`

	tag, err := tx.Exec(ctx, upsert, kind.String(), targetID, actorID, reaction.String(), time.Now())
	if err != nil {
		return model.EngagementCounts{}, fmt.Errorf("failed to upsert reaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.EngagementCounts{}, repository.ErrReactionExists
	}

	counts, err := scanCounts(tx.QueryRow(ctx, countsQuery, kind.String(), targetID))
	if err != nil {
		return model.EngagementCounts{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.EngagementCounts{}, fmt.Errorf("failed to commit reaction transaction: %w", err)
	}

	return counts, nil
}

// Remove deletes the actor's reaction if it matches. Absence is not an
// error; the call is idempotent.
func (r *EngagementRepository) Remove(ctx context.Context, kind model.TargetKind, targetID, actorID uuid.UUID, reaction model.Reaction) (model.EngagementCounts, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.EngagementCounts{}, fmt.Errorf("failed to begin reaction transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := checkTargetExists(ctx, tx, kind, targetID); err != nil {
		return model.EngagementCounts{}, err
	}

	const del = `
		DELETE FROM reactions
		WHERE target_kind = $1 AND target_id = $2 AND actor_id = $3 AND reaction = $4
	`

	if _, err := tx.Exec(ctx, del, kind.String(), targetID, actorID, reaction.String()); err != nil {
		return model.EngagementCounts{}, fmt.Errorf("failed to delete reaction: %w", err)
	}

	counts, err := scanCounts(tx.QueryRow(ctx, countsQuery, kind.String(), targetID))
	if err != nil {
		return model.EngagementCounts{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.EngagementCounts{}, fmt.Errorf("failed to commit reaction transaction: %w", err)
	}

	return counts, nil
}

// Status returns the actor's current stance on the target.
func (r *EngagementRepository) Status(ctx context.Context, kind model.TargetKind, targetID, actorID uuid.UUID) (model.EngagementStatus, error) {
	const query = `
		SELECT reaction FROM reactions
		WHERE target_kind = $1 AND target_id = $2 AND actor_id = $3
	`

	var reaction string
	err := r.db.QueryRow(ctx, query, kind.String(), targetID, actorID).Scan(&reaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.EngagementStatus{}, nil
		}
		return model.EngagementStatus{}, fmt.Errorf("failed to get reaction status: %w", err)
	}

	return model.EngagementStatus{
		Liked:    reaction == model.ReactionLike.String(),
		Disliked: reaction == model.ReactionDislike.String(),
	}, nil
}

// Counts returns the target's like/dislike tallies.
func (r *EngagementRepository) Counts(ctx context.Context, kind model.TargetKind, targetID uuid.UUID) (model.EngagementCounts, error) {
	return scanCounts(r.db.QueryRow(ctx, countsQuery, kind.String(), targetID))
}

// checkTargetExists verifies the reaction target inside the transaction and
// maps absence to the entity's not-found error.
func checkTargetExists(ctx context.Context, tx pgx.Tx, kind model.TargetKind, targetID uuid.UUID) error {
	var (
		query    string
		notFound error
	)
	switch kind {
	case model.TargetVideo:
		query = `SELECT 1 FROM videos WHERE id = $1`
		notFound = repository.ErrVideoNotFound
	case model.TargetComment:
		query = `SELECT 1 FROM comments WHERE id = $1`
		notFound = repository.ErrCommentNotFound
	default:
		return fmt.Errorf("unsupported target kind: %s", kind)
	}

	var one int
	if err := tx.QueryRow(ctx, query, targetID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound
		}
		return fmt.Errorf("failed to check target existence: %w", err)
	}

	return nil
}

func scanCounts(row pgx.Row) (model.EngagementCounts, error) {
	var counts model.EngagementCounts
	if err := row.Scan(&counts.Likes, &counts.Dislikes); err != nil {
		return model.EngagementCounts{}, fmt.Errorf("failed to scan engagement counts: %w", err)
	}
	return counts, nil
}

// Compile-time verification that EngagementRepository implements repository.EngagementRepository.
var _ repository.EngagementRepository = (*EngagementRepository)(nil)
