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

const videoColumns = `id, owner_id, title, description, media_key, thumbnail_key, duration_seconds, views, category, tags, created_at, updated_at`

// VideoRepository implements repository.VideoRepository using PostgreSQL.
type VideoRepository struct {
	db DBTX
}

// NewVideoRepository creates a new VideoRepository instance.
func NewVideoRepository(db DBTX) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create persists a new video entity.
func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	const query = `
		INSERT INTO videos (id, owner_id, title, description, media_key, thumbnail_key, duration_seconds, views, category, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		video.ID,
		video.OwnerID,
		video.Title,
		nullString(video.Description),
		video.MediaKey,
		nullString(video.ThumbnailKey),
		video.Duration,
		video.Views,
		video.Category.String(),
		video.Tags,
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

// GetByID retrieves a video by its unique identifier.
func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	video, err := scanVideo(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video by ID: %w", err)
	}

	return video, nil
}

// List retrieves videos ordered by creation time descending. The ID tiebreak
// keeps pages stable for rows created in the same instant (IDs are v7, so
// they sort by creation order too).
func (r *VideoRepository) List(ctx context.Context, page model.Page) ([]*model.Video, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	return r.queryVideos(ctx, query, page.Limit, page.Offset())
}

// ListByCategory retrieves videos in a category, newest first.
func (r *VideoRepository) ListByCategory(ctx context.Context, category model.Category, page model.Page) ([]*model.Video, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos
		WHERE category = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryVideos(ctx, query, category.String(), page.Limit, page.Offset())
}

// ListByOwner retrieves all videos owned by a user, newest first.
func (r *VideoRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`

	return r.queryVideos(ctx, query, ownerID)
}

// Search runs a full-text query over title, description and tags, ranked by
// relevance then views descending.
func (r *VideoRepository) Search(ctx context.Context, query string, limit int) ([]*model.Video, error) {
	const sql = `
		SELECT ` + videoColumns + `
		FROM videos
		WHERE to_tsvector('english', title || ' ' || coalesce(description, '') || ' ' || array_to_string(tags, ' '))
		      @@ plainto_tsquery('english', $1)
		ORDER BY ts_rank(
			to_tsvector('english', title || ' ' || coalesce(description, '') || ' ' || array_to_string(tags, ' ')),
			plainto_tsquery('english', $1)
		) DESC, views DESC
		LIMIT $2
	`

	return r.queryVideos(ctx, sql, query, limit)
}

// ListPopularByCategory retrieves same-category videos excluding one ID,
// ordered by views then recency.
func (r *VideoRepository) ListPopularByCategory(ctx context.Context, category model.Category, exclude uuid.UUID, limit int) ([]*model.Video, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos
		WHERE category = $1 AND id <> $2
		ORDER BY views DESC, created_at DESC
		LIMIT $3
	`

	return r.queryVideos(ctx, query, category.String(), exclude, limit)
}

// ListPopularExcluding retrieves globally popular videos not in the
// exclusion list.
func (r *VideoRepository) ListPopularExcluding(ctx context.Context, exclude []uuid.UUID, limit int) ([]*model.Video, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos
		WHERE NOT (id = ANY($1))
		ORDER BY views DESC, created_at DESC
		LIMIT $2
	`

	return r.queryVideos(ctx, query, exclude, limit)
}

// ListLikedBy retrieves videos the user has liked, most recently liked first.
func (r *VideoRepository) ListLikedBy(ctx context.Context, userID uuid.UUID, page model.Page) ([]*model.Video, error) {
	query := `
		SELECT v.id, v.owner_id, v.title, v.description, v.media_key, v.thumbnail_key, v.duration_seconds, v.views, v.category, v.tags, v.created_at, v.updated_at
		FROM videos v
		JOIN reactions r ON r.target_kind = 'video' AND r.target_id = v.id
		WHERE r.actor_id = $1 AND r.reaction = 'like'
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryVideos(ctx, query, userID, page.Limit, page.Offset())
}

// IncrementViews atomically bumps the view counter.
func (r *VideoRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `
		UPDATE videos
		SET views = views + 1, updated_at = $2
		WHERE id = $1
		RETURNING views
	`

	var views int64
	if err := r.db.QueryRow(ctx, query, id, time.Now()).Scan(&views); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, repository.ErrVideoNotFound
		}
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}

	return views, nil
}

// Update persists changes to an existing video entity.
func (r *VideoRepository) Update(ctx context.Context, video *model.Video) error {
	const query = `
		UPDATE videos
		SET title = $2, description = $3, thumbnail_key = $4, category = $5, tags = $6, updated_at = $7
		WHERE id = $1
	`

	video.UpdatedAt = time.Now()

	tag, err := r.db.Exec(ctx, query,
		video.ID,
		video.Title,
		nullString(video.Description),
		nullString(video.ThumbnailKey),
		video.Category.String(),
		video.Tags,
		video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// Delete removes the video and cascades to its comments and every reaction
// row referencing the video or those comments. Runs in one transaction so a
// partial cascade never commits.
func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM reactions
		WHERE target_kind = 'comment'
		  AND target_id IN (SELECT id FROM comments WHERE video_id = $1)
	`, id); err != nil {
		return fmt.Errorf("failed to delete comment reactions: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE video_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM reactions
		WHERE target_kind = 'video' AND target_id = $1
	`, id); err != nil {
		return fmt.Errorf("failed to delete video reactions: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrVideoNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete transaction: %w", err)
	}

	return nil
}

func (r *VideoRepository) queryVideos(ctx context.Context, query string, args ...any) ([]*model.Video, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	var videos []*model.Video
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating videos: %w", err)
	}

	return videos, nil
}

// scanVideo scans a single row into a Video model. pgx.Rows satisfies
// pgx.Row, so this serves both single- and multi-row queries.
func scanVideo(row pgx.Row) (*model.Video, error) {
	var (
		video        model.Video
		description  *string
		thumbnailKey *string
		category     string
	)

	err := row.Scan(
		&video.ID,
		&video.OwnerID,
		&video.Title,
		&description,
		&video.MediaKey,
		&thumbnailKey,
		&video.Duration,
		&video.Views,
		&category,
		&video.Tags,
		&video.CreatedAt,
		&video.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	video.Category = model.Category(category)
	if description != nil {
		video.Description = *description
	}
	if thumbnailKey != nil {
		video.ThumbnailKey = *thumbnailKey
	}
	if video.Tags == nil {
		video.Tags = []string{}
	}

	return &video, nil
}

// nullString returns nil for empty strings, otherwise a pointer to the string.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Compile-time verification that VideoRepository implements repository.VideoRepository.
var _ repository.VideoRepository = (*VideoRepository)(nil)
