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

// commentColumns selects comment fields plus derived like/dislike counts.
// Reply lists are never stored: parent->children is always this derived
// query over the child's parent_id pointer.
const commentColumns = `
	c.id, c.video_id, c.author_id, c.parent_id, c.content, c.created_at, c.updated_at,
	(SELECT count(*) FROM reactions r WHERE r.target_kind = 'comment' AND r.target_id = c.id AND r.reaction = 'like'),
	(SELECT count(*) FROM reactions r WHERE r.target_kind = 'comment' AND r.target_id = c.id AND r.reaction = 'dislike')
`

// CommentRepository implements repository.CommentRepository using PostgreSQL.
type CommentRepository struct {
	db DBTX
}

// NewCommentRepository creates a new CommentRepository instance.
func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create persists a new comment.
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	const query = `
		INSERT INTO comments (id, video_id, author_id, parent_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		comment.ID,
		comment.VideoID,
		comment.AuthorID,
		comment.ParentID,
		comment.Content,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by its unique identifier.
func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments c WHERE c.id = $1`

	comment, err := scanComment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment by ID: %w", err)
	}

	return comment, nil
}

// ListTopLevelByVideo retrieves top-level comments for a video, newest first.
func (r *CommentRepository) ListTopLevelByVideo(ctx context.Context, videoID uuid.UUID, page model.Page) ([]*model.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		WHERE c.video_id = $1 AND c.parent_id IS NULL
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryComments(ctx, query, videoID, page.Limit, page.Offset())
}

// ListReplies retrieves replies oldest first, so threads read top-down.
func (r *CommentRepository) ListReplies(ctx context.Context, parentID uuid.UUID) ([]*model.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		WHERE c.parent_id = $1
		ORDER BY c.created_at ASC, c.id ASC
	`

	return r.queryComments(ctx, query, parentID)
}

// Update persists a content change to an existing comment.
func (r *CommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	const query = `
		UPDATE comments
		SET content = $2, updated_at = $3
		WHERE id = $1
	`

	comment.UpdatedAt = time.Now()

	tag, err := r.db.Exec(ctx, query, comment.ID, comment.Content, comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// Delete removes the comment, its replies and all their reaction rows in one
// transaction. For a reply the child queries simply match nothing, and the
// parent's reply list needs no unlinking because it is derived.
func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM reactions
		WHERE target_kind = 'comment'
		  AND target_id IN (SELECT id FROM comments WHERE parent_id = $1)
	`, id); err != nil {
		return fmt.Errorf("failed to delete reply reactions: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE parent_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete replies: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM reactions
		WHERE target_kind = 'comment' AND target_id = $1
	`, id); err != nil {
		return fmt.Errorf("failed to delete comment reactions: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrCommentNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete transaction: %w", err)
	}

	return nil
}

// CountByVideo returns the number of comments (including replies) on a video.
func (r *CommentRepository) CountByVideo(ctx context.Context, videoID uuid.UUID) (int64, error) {
	const query = `SELECT count(*) FROM comments WHERE video_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, videoID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return count, nil
}

func (r *CommentRepository) queryComments(ctx context.Context, query string, args ...any) ([]*model.Comment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var comment model.Comment

	err := row.Scan(
		&comment.ID,
		&comment.VideoID,
		&comment.AuthorID,
		&comment.ParentID,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
		&comment.Likes,
		&comment.Dislikes,
	)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// Compile-time verification that CommentRepository implements repository.CommentRepository.
var _ repository.CommentRepository = (*CommentRepository)(nil)
