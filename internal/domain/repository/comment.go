package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
)

// CommentRepository defines the interface for comment persistence operations.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *model.Comment) error

	// GetByID retrieves a comment by its unique identifier.
	// Returns nil and ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// ListTopLevelByVideo retrieves top-level comments (no parent) for a
	// video, newest first, with like/dislike counts populated.
	ListTopLevelByVideo(ctx context.Context, videoID uuid.UUID, page model.Page) ([]*model.Comment, error)

	// ListReplies retrieves the replies of a comment, oldest first, with
	// like/dislike counts populated.
	ListReplies(ctx context.Context, parentID uuid.UUID) ([]*model.Comment, error)

	// Update persists a content change to an existing comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	Update(ctx context.Context, comment *model.Comment) error

	// Delete removes the comment, its replies and every reaction row
	// attached to any of them, in one transaction.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByVideo returns the number of comments (including replies)
	// referencing a video.
	CountByVideo(ctx context.Context, videoID uuid.UUID) (int64, error)
}
