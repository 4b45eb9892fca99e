package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
	"github.com/CodellaAI/viewtube-backend/internal/domain/repository"
)

// CreateCommentInput contains the input for posting a comment or reply.
type CreateCommentInput struct {
	VideoID  uuid.UUID
	Actor    *model.Principal
	ParentID *uuid.UUID
	Content  string
}

// CommentService defines the interface for discussion operations.
type CommentService interface {
	// CreateComment posts a comment on an existing video. When ParentID is
	// set the parent must exist, belong to the same video and be top-level.
	CreateComment(ctx context.Context, input CreateCommentInput) (*model.Comment, error)

	// ListComments pages through a video's top-level comments, newest first.
	ListComments(ctx context.Context, videoID uuid.UUID, page model.Page) ([]*model.Comment, error)

	// ListReplies retrieves a comment's replies, oldest first so threads
	// read top-down.
	ListReplies(ctx context.Context, parentID uuid.UUID) ([]*model.Comment, error)

	// UpdateComment replaces the content, author or privileged role only.
	UpdateComment(ctx context.Context, commentID uuid.UUID, actor *model.Principal, content string) (*model.Comment, error)

	// DeleteComment removes the comment; a top-level delete cascades to all
	// replies, a reply delete removes only itself.
	DeleteComment(ctx context.Context, commentID uuid.UUID, actor *model.Principal) error
}

type commentService struct {
	comments repository.CommentRepository
	videos   repository.VideoRepository
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(comments repository.CommentRepository, videos repository.VideoRepository) CommentService {
	return &commentService{
		comments: comments,
		videos:   videos,
	}
}

// CreateComment validates the video and optional parent before persisting.
// Parent integrity is enforced here instead of trusting the client-supplied
// ID: the parent must exist, sit on the same video, and not itself be a
// reply.
func (s *commentService) CreateComment(ctx context.Context, input CreateCommentInput) (*model.Comment, error) {
	if input.Actor == nil {
		return nil, ErrUnauthenticated
	}

	if _, err := s.videos.GetByID(ctx, input.VideoID); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := s.comments.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.VideoID != input.VideoID {
			return nil, ErrParentVideoMismatch
		}
		if parent.IsReply() {
			return nil, ErrNestedReply
		}
	}

	comment, err := model.NewComment(input.VideoID, input.Actor.UserID, input.ParentID, input.Content)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

// ListComments pages through top-level comments of an existing video.
func (s *commentService) ListComments(ctx context.Context, videoID uuid.UUID, page model.Page) ([]*model.Comment, error) {
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	return s.comments.ListTopLevelByVideo(ctx, videoID, page)
}

// ListReplies retrieves the replies of an existing comment.
func (s *commentService) ListReplies(ctx context.Context, parentID uuid.UUID) ([]*model.Comment, error) {
	if _, err := s.comments.GetByID(ctx, parentID); err != nil {
		return nil, err
	}
	return s.comments.ListReplies(ctx, parentID)
}

// UpdateComment replaces the content after the author/privilege check.
func (s *commentService) UpdateComment(ctx context.Context, commentID uuid.UUID, actor *model.Principal, content string) (*model.Comment, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if !actor.CanModify(comment.AuthorID) {
		return nil, ErrForbidden
	}

	if err := model.ValidateContent(content); err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	return comment, nil
}

// DeleteComment removes the comment and, for top-level comments, the whole
// reply thread in one transaction.
func (s *commentService) DeleteComment(ctx context.Context, commentID uuid.UUID, actor *model.Principal) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if !actor.CanModify(comment.AuthorID) {
		return ErrForbidden
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	return nil
}
