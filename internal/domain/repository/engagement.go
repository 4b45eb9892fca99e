package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
)

// EngagementRepository persists like/dislike membership for videos and
// comments. One reaction row exists per (kind, target, actor), so an actor
// can never hold like and dislike simultaneously; switching stance is a
// single atomic upsert.
type EngagementRepository interface {
	// Set records the actor's reaction on the target, replacing an opposite
	// reaction if present. Returns ErrReactionExists if the actor already
	// holds this exact reaction, ErrVideoNotFound/ErrCommentNotFound if the
	// target is absent. Returns the target's counts after the change.
	Set(ctx context.Context, kind model.TargetKind, targetID, actorID uuid.UUID, reaction model.Reaction) (model.EngagementCounts, error)

	// Remove deletes the actor's reaction if it matches the given one.
	// Removal is idempotent: an absent reaction is not an error. Returns
	// ErrVideoNotFound/ErrCommentNotFound if the target is absent, and the
	// target's counts after the call.
	Remove(ctx context.Context, kind model.TargetKind, targetID, actorID uuid.UUID, reaction model.Reaction) (model.EngagementCounts, error)

	// Status returns the actor's current stance on the target.
	Status(ctx context.Context, kind model.TargetKind, targetID, actorID uuid.UUID) (model.EngagementStatus, error)

	// Counts returns the target's like/dislike tallies.
	Counts(ctx context.Context, kind model.TargetKind, targetID uuid.UUID) (model.EngagementCounts, error)
}
