package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
	"github.com/CodellaAI/viewtube-backend/internal/domain/repository"
	"github.com/CodellaAI/viewtube-backend/internal/infrastructure/metrics"
)

// EngagementService is the single like/dislike coordinator for every target
// kind. Videos and comments share one implementation parameterized by
// model.TargetKind; the mutual-exclusion invariant is enforced by the
// store's one-row-per-(target, actor) upsert, so concurrent calls cannot
// leave an actor in both sets.
type EngagementService interface {
	// Like records a like. Returns repository.ErrReactionExists if the
	// actor already likes the target.
	Like(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error)

	// Unlike removes a like if present. Idempotent: never fails on absence.
	Unlike(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error)

	// Dislike records a dislike, displacing a like if present.
	Dislike(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error)

	// Undislike removes a dislike if present. Idempotent.
	Undislike(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error)

	// Status reports the actor's current stance. Never both liked and
	// disliked.
	Status(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementStatus, error)
}

type engagementService struct {
	reactions repository.EngagementRepository
}

// NewEngagementService creates a new EngagementService instance.
func NewEngagementService(reactions repository.EngagementRepository) EngagementService {
	return &engagementService{reactions: reactions}
}

func (s *engagementService) Like(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error) {
	return s.set(ctx, kind, targetID, actor, model.ReactionLike, "like")
}

func (s *engagementService) Dislike(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error) {
	return s.set(ctx, kind, targetID, actor, model.ReactionDislike, "dislike")
}

func (s *engagementService) Unlike(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error) {
	return s.remove(ctx, kind, targetID, actor, model.ReactionLike, "unlike")
}

func (s *engagementService) Undislike(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error) {
	return s.remove(ctx, kind, targetID, actor, model.ReactionDislike, "undislike")
}

func (s *engagementService) Status(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementStatus, error) {
	if actor == nil {
		return model.EngagementStatus{}, ErrUnauthenticated
	}
	return s.reactions.Status(ctx, kind, targetID, actor.UserID)
}

func (s *engagementService) set(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal, reaction model.Reaction, op string) (model.EngagementCounts, error) {
	if actor == nil {
		return model.EngagementCounts{}, ErrUnauthenticated
	}

	counts, err := s.reactions.Set(ctx, kind, targetID, actor.UserID, reaction)
	s.record(kind, op, err)
	return counts, err
}

func (s *engagementService) remove(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal, reaction model.Reaction, op string) (model.EngagementCounts, error) {
	if actor == nil {
		return model.EngagementCounts{}, ErrUnauthenticated
	}

	counts, err := s.reactions.Remove(ctx, kind, targetID, actor.UserID, reaction)
	s.record(kind, op, err)
	return counts, err
}

func (s *engagementService) record(kind model.TargetKind, op string, err error) {
	status := metrics.EngagementStatusSuccess
	switch {
	case errors.Is(err, repository.ErrReactionExists):
		status = metrics.EngagementStatusDuplicate
	case err != nil:
		status = metrics.EngagementStatusError
	}
	metrics.EngagementOperationsTotal.WithLabelValues(kind.String(), op, status).Inc()
}
