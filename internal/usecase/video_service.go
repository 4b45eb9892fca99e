package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
	"github.com/CodellaAI/viewtube-backend/internal/domain/repository"
)

const (
	// searchResultLimit caps full-text search results.
	searchResultLimit = 50

	// recommendLimit is the maximum number of recommended videos.
	recommendLimit = 15

	// backfillThreshold triggers the popularity backfill only when the
	// category query returns fewer results than this. A category yield of
	// 10-14 is returned as-is without reaching 15; that threshold behavior
	// is part of the contract.
	backfillThreshold = 10
)

// CreateVideoInput contains the input parameters for creating a video.
// Tags is the raw comma-delimited client string; Duration comes from the
// upload collaborator's probe and may be zero.
type CreateVideoInput struct {
	Actor             *model.Principal
	Title             string
	Description       string
	Category          string
	Tags              string
	Duration          int
	MediaFileName     string
	ThumbnailFileName string
}

// CreateVideoOutput contains the result of creating a video, including
// presigned URLs the client uploads media to.
type CreateVideoOutput struct {
	Video              *model.Video
	MediaUploadURL     string
	ThumbnailUploadURL string
}

// UpdateVideoInput describes a partial metadata update. Nil fields keep
// their prior values.
type UpdateVideoInput struct {
	ID          uuid.UUID
	Actor       *model.Principal
	Title       *string
	Description *string
	Category    *string
	Tags        *string
}

// ListVideosInput filters the paginated catalog listing.
type ListVideosInput struct {
	Category string
	Page     model.Page
}

// VideoDetail is a video enriched with engagement tallies, the viewer's
// stance (zero for anonymous viewers) and the owner's subscriber count.
type VideoDetail struct {
	Video            *model.Video
	Counts           model.EngagementCounts
	ViewerStatus     model.EngagementStatus
	OwnerSubscribers int64
}

// VideoService defines the interface for video business logic operations.
type VideoService interface {
	// CreateVideo persists video metadata and returns presigned upload URLs
	// for the media and thumbnail objects.
	CreateVideo(ctx context.Context, input CreateVideoInput) (*CreateVideoOutput, error)

	// GetVideo retrieves raw video metadata by ID.
	GetVideo(ctx context.Context, videoID uuid.UUID) (*model.Video, error)

	// GetVideoDetail retrieves a video enriched for display. viewer may be
	// nil for anonymous requests.
	GetVideoDetail(ctx context.Context, videoID uuid.UUID, viewer *model.Principal) (*VideoDetail, error)

	// ListVideos pages through the catalog, newest first, optionally
	// filtered by category.
	ListVideos(ctx context.Context, input ListVideosInput) ([]*model.Video, error)

	// SearchVideos runs a relevance-ranked full-text search, capped at 50
	// results. Empty queries fail with ErrEmptySearchQuery.
	SearchVideos(ctx context.Context, query string) ([]*model.Video, error)

	// ListByOwner retrieves a user's uploads, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error)

	// ListLikedVideos retrieves videos the actor has liked.
	ListLikedVideos(ctx context.Context, actor *model.Principal, page model.Page) ([]*model.Video, error)

	// RecommendedVideos returns same-category videos by popularity,
	// backfilled with globally popular ones when the category runs thin.
	RecommendedVideos(ctx context.Context, videoID uuid.UUID) ([]*model.Video, error)

	// IncrementViews atomically bumps the view counter and returns the new
	// value.
	IncrementViews(ctx context.Context, videoID uuid.UUID) (int64, error)

	// UpdateVideo applies a partial metadata update, owner or privileged
	// role only.
	UpdateVideo(ctx context.Context, input UpdateVideoInput) (*model.Video, error)

	// DeleteVideo removes the video and all its comments and reactions,
	// then schedules stored media objects for cleanup.
	DeleteVideo(ctx context.Context, videoID uuid.UUID, actor *model.Principal) error
}

// VideoServiceConfig holds configuration for VideoService.
type VideoServiceConfig struct {
	UploadURLExpiry time.Duration
}

// DefaultVideoServiceConfig returns the default configuration.
func DefaultVideoServiceConfig() VideoServiceConfig {
	return VideoServiceConfig{
		UploadURLExpiry: 15 * time.Minute,
	}
}

type videoService struct {
	videos    repository.VideoRepository
	reactions repository.EngagementRepository
	subs      repository.SubscriptionRepository
	storage   repository.ObjectStorage
	queue     repository.MessageQueue

	uploadURLExpiry time.Duration
}

// NewVideoService creates a new VideoService instance.
func NewVideoService(
	videos repository.VideoRepository,
	reactions repository.EngagementRepository,
	subs repository.SubscriptionRepository,
	storage repository.ObjectStorage,
	queue repository.MessageQueue,
	cfg VideoServiceConfig,
) VideoService {
	return &videoService{
		videos:          videos,
		reactions:       reactions,
		subs:            subs,
		storage:         storage,
		queue:           queue,
		uploadURLExpiry: cfg.UploadURLExpiry,
	}
}

// CreateVideo persists metadata and generates presigned upload URLs.
func (s *videoService) CreateVideo(ctx context.Context, input CreateVideoInput) (*CreateVideoOutput, error) {
	if input.Actor == nil {
		return nil, ErrUnauthenticated
	}

	video, err := model.NewVideo(input.Actor.UserID, input.Title, input.Description, model.ParseCategory(input.Category), input.Duration)
	if err != nil {
		return nil, err
	}
	video.Tags = model.ParseTags(input.Tags)

	video.MediaKey = s.mediaKey(video.ID, input.MediaFileName)
	mediaURL, err := s.storage.GeneratePresignedUploadURL(ctx, video.MediaKey, s.uploadURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("generate media upload URL: %w", err)
	}

	var thumbnailURL string
	if input.ThumbnailFileName != "" {
		video.ThumbnailKey = s.thumbnailKey(video.ID, input.ThumbnailFileName)
		thumbnailURL, err = s.storage.GeneratePresignedUploadURL(ctx, video.ThumbnailKey, s.uploadURLExpiry)
		if err != nil {
			return nil, fmt.Errorf("generate thumbnail upload URL: %w", err)
		}
	}

	if err := s.videos.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}

	return &CreateVideoOutput{
		Video:              video,
		MediaUploadURL:     mediaURL,
		ThumbnailUploadURL: thumbnailURL,
	}, nil
}

// GetVideo retrieves video metadata by ID.
func (s *videoService) GetVideo(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	return s.videos.GetByID(ctx, videoID)
}

// GetVideoDetail enriches a video with engagement tallies, the viewer's
// stance and the owner's subscriber count.
func (s *videoService) GetVideoDetail(ctx context.Context, videoID uuid.UUID, viewer *model.Principal) (*VideoDetail, error) {
	video, err := s.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	counts, err := s.reactions.Counts(ctx, model.TargetVideo, videoID)
	if err != nil {
		return nil, fmt.Errorf("get engagement counts: %w", err)
	}

	subscribers, err := s.subs.CountSubscribers(ctx, video.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("count owner subscribers: %w", err)
	}

	detail := &VideoDetail{
		Video:            video,
		Counts:           counts,
		OwnerSubscribers: subscribers,
	}

	if viewer != nil {
		status, err := s.reactions.Status(ctx, model.TargetVideo, videoID, viewer.UserID)
		if err != nil {
			return nil, fmt.Errorf("get viewer reaction status: %w", err)
		}
		detail.ViewerStatus = status
	}

	return detail, nil
}

// ListVideos pages through the catalog, optionally filtered by category.
// An unknown category filter is an empty result, not the default category.
func (s *videoService) ListVideos(ctx context.Context, input ListVideosInput) ([]*model.Video, error) {
	if input.Category != "" {
		return s.videos.ListByCategory(ctx, model.Category(input.Category), input.Page)
	}
	return s.videos.List(ctx, input.Page)
}

// SearchVideos runs the capped full-text search.
func (s *videoService) SearchVideos(ctx context.Context, query string) ([]*model.Video, error) {
	if query == "" {
		return nil, ErrEmptySearchQuery
	}
	return s.videos.Search(ctx, query, searchResultLimit)
}

// ListByOwner retrieves a user's uploads.
func (s *videoService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error) {
	return s.videos.ListByOwner(ctx, ownerID)
}

// ListLikedVideos retrieves videos the actor has liked.
func (s *videoService) ListLikedVideos(ctx context.Context, actor *model.Principal, page model.Page) ([]*model.Video, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	return s.videos.ListLikedBy(ctx, actor.UserID, page)
}

// RecommendedVideos returns up to 15 same-category videos by popularity.
// Only when the category yields fewer than 10 does the global popularity
// backfill top the list up, excluding the source and anything already
// selected.
func (s *videoService) RecommendedVideos(ctx context.Context, videoID uuid.UUID) ([]*model.Video, error) {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	recommended, err := s.videos.ListPopularByCategory(ctx, video.Category, videoID, recommendLimit)
	if err != nil {
		return nil, fmt.Errorf("list category videos: %w", err)
	}

	if len(recommended) >= backfillThreshold {
		return recommended, nil
	}

	exclude := make([]uuid.UUID, 0, len(recommended)+1)
	exclude = append(exclude, videoID)
	for _, v := range recommended {
		exclude = append(exclude, v.ID)
	}

	backfill, err := s.videos.ListPopularExcluding(ctx, exclude, recommendLimit-len(recommended))
	if err != nil {
		return nil, fmt.Errorf("list backfill videos: %w", err)
	}

	return append(recommended, backfill...), nil
}

// IncrementViews atomically bumps the view counter.
func (s *videoService) IncrementViews(ctx context.Context, videoID uuid.UUID) (int64, error) {
	return s.videos.IncrementViews(ctx, videoID)
}

// UpdateVideo applies a partial metadata update.
func (s *videoService) UpdateVideo(ctx context.Context, input UpdateVideoInput) (*model.Video, error) {
	if input.Actor == nil {
		return nil, ErrUnauthenticated
	}

	video, err := s.videos.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if !input.Actor.CanModify(video.OwnerID) {
		return nil, ErrForbidden
	}

	if input.Title != nil {
		video.Title = *input.Title
	}
	if input.Description != nil {
		video.Description = *input.Description
	}
	if input.Category != nil {
		video.Category = model.ParseCategory(*input.Category)
	}
	if input.Tags != nil {
		video.Tags = model.ParseTags(*input.Tags)
	}

	// Re-validate bounds after the merge.
	if _, err := model.NewVideo(video.OwnerID, video.Title, video.Description, video.Category, video.Duration); err != nil {
		return nil, err
	}

	if err := s.videos.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("update video: %w", err)
	}

	return video, nil
}

// DeleteVideo cascades the delete in one transaction, then schedules the
// stored objects for removal. The cleanup publish is best-effort: the data
// cascade has already committed, and orphaned objects are retried by hand.
func (s *videoService) DeleteVideo(ctx context.Context, videoID uuid.UUID, actor *model.Principal) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return err
	}

	if !actor.CanModify(video.OwnerID) {
		return ErrForbidden
	}

	if err := s.videos.Delete(ctx, videoID); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}

	keys := make([]string, 0, 2)
	if video.MediaKey != "" {
		keys = append(keys, video.MediaKey)
	}
	if video.ThumbnailKey != "" {
		keys = append(keys, video.ThumbnailKey)
	}

	if len(keys) > 0 {
		task := repository.MediaCleanupTask{VideoID: videoID, ObjectKeys: keys}
		if err := s.queue.PublishMediaCleanup(ctx, task); err != nil {
			slog.Warn("failed to schedule media cleanup",
				"video_id", videoID,
				"error", err,
			)
		}
	}

	return nil
}

// mediaKey creates the storage key for the original media object.
// Format: media/{video_id}/{filename}
func (s *videoService) mediaKey(videoID uuid.UUID, filename string) string {
	return path.Join("media", videoID.String(), filename)
}

// thumbnailKey creates the storage key for the thumbnail object.
// Format: thumbnails/{video_id}/{filename}
func (s *videoService) thumbnailKey(videoID uuid.UUID, filename string) string {
	return path.Join("thumbnails", videoID.String(), filename)
}
