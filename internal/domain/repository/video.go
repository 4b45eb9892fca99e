package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
)

// VideoRepository defines the interface for video persistence operations.
// Implementations should be provided by the infrastructure layer (e.g., PostgreSQL).
type VideoRepository interface {
	// Create persists a new video entity.
	Create(ctx context.Context, video *model.Video) error

	// GetByID retrieves a video by its unique identifier.
	// Returns nil and ErrVideoNotFound if the video does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)

	// List retrieves videos ordered by creation time descending.
	List(ctx context.Context, page model.Page) ([]*model.Video, error)

	// ListByCategory retrieves videos in a category, newest first.
	ListByCategory(ctx context.Context, category model.Category, page model.Page) ([]*model.Video, error)

	// ListByOwner retrieves all videos owned by a user, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error)

	// Search runs a full-text query over title, description and tags.
	// Results are ranked by relevance, tie-broken by views descending,
	// and capped at limit.
	Search(ctx context.Context, query string, limit int) ([]*model.Video, error)

	// ListPopularByCategory retrieves videos in a category excluding one
	// ID, ordered by views then recency.
	ListPopularByCategory(ctx context.Context, category model.Category, exclude uuid.UUID, limit int) ([]*model.Video, error)

	// ListPopularExcluding retrieves globally popular videos whose IDs are
	// not in the exclusion list.
	ListPopularExcluding(ctx context.Context, exclude []uuid.UUID, limit int) ([]*model.Video, error)

	// ListLikedBy retrieves videos the given user has liked, most recently
	// liked first.
	ListLikedBy(ctx context.Context, userID uuid.UUID, page model.Page) ([]*model.Video, error)

	// IncrementViews atomically bumps the view counter and returns the new
	// value. Returns ErrVideoNotFound if the video does not exist.
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)

	// Update persists changes to an existing video entity.
	// Returns ErrVideoNotFound if the video does not exist.
	Update(ctx context.Context, video *model.Video) error

	// Delete removes the video together with its comments and all reaction
	// rows referencing the video or its comments, in one transaction.
	// Returns ErrVideoNotFound if the video does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
