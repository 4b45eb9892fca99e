package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
	"github.com/CodellaAI/viewtube-backend/internal/infrastructure/cache"
	"github.com/CodellaAI/viewtube-backend/internal/infrastructure/metrics"
)

// CachedVideoServiceConfig holds configuration for CachedVideoService.
type CachedVideoServiceConfig struct {
	// CacheTTL is the TTL for cached video metadata.
	CacheTTL time.Duration
}

// DefaultCachedVideoServiceConfig returns the default configuration.
func DefaultCachedVideoServiceConfig() CachedVideoServiceConfig {
	return CachedVideoServiceConfig{
		CacheTTL: 5 * time.Minute,
	}
}

// cachedVideoService wraps VideoService with a cache-aside layer for
// GetVideo. Mutating calls invalidate before delegating so the next read
// fetches fresh data. Engagement tallies are never cached (they live in
// reaction rows), so like/dislike traffic needs no invalidation here.
type cachedVideoService struct {
	VideoService

	cache    cache.VideoCache
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewCachedVideoService creates a caching decorator around the provided
// VideoService.
func NewCachedVideoService(
	delegate VideoService,
	videoCache cache.VideoCache,
	cfg CachedVideoServiceConfig,
) VideoService {
	return &cachedVideoService{
		VideoService: delegate,
		cache:        videoCache,
		cacheTTL:     cfg.CacheTTL,
	}
}

// GetVideo retrieves video metadata with caching.
// Uses singleflight to prevent cache stampede on concurrent requests for the same video.
func (s *cachedVideoService) GetVideo(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	key := videoID.String()
	result, err, shared := s.sfGroup.Do(key, func() (any, error) {
		return s.getVideoWithCache(ctx, videoID)
	})

	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if err != nil {
		return nil, err
	}

	return result.(*model.Video), nil
}

// IncrementViews invalidates the cached view count before delegating.
func (s *cachedVideoService) IncrementViews(ctx context.Context, videoID uuid.UUID) (int64, error) {
	s.invalidate(ctx, videoID)
	return s.VideoService.IncrementViews(ctx, videoID)
}

// UpdateVideo invalidates stale metadata before delegating.
func (s *cachedVideoService) UpdateVideo(ctx context.Context, input UpdateVideoInput) (*model.Video, error) {
	s.invalidate(ctx, input.ID)
	return s.VideoService.UpdateVideo(ctx, input)
}

// DeleteVideo invalidates before delegating so a deleted video cannot be
// served from cache for the rest of its TTL.
func (s *cachedVideoService) DeleteVideo(ctx context.Context, videoID uuid.UUID, actor *model.Principal) error {
	s.invalidate(ctx, videoID)
	return s.VideoService.DeleteVideo(ctx, videoID, actor)
}

// getVideoWithCache implements the cache-aside pattern.
func (s *cachedVideoService) getVideoWithCache(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	video, err := s.cache.Get(ctx, videoID)
	if err != nil {
		// Log cache error but continue to database
		slog.Warn("cache get failed, falling back to database",
			"video_id", videoID,
			"error", err,
		)
	}

	if video != nil {
		return video, nil // Cache hit
	}

	video, err = s.VideoService.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, video, s.cacheTTL); err != nil {
		slog.Warn("failed to cache video",
			"video_id", videoID,
			"error", err,
		)
	}

	return video, nil
}

// invalidate drops the cached entry; failures are logged, not propagated.
func (s *cachedVideoService) invalidate(ctx context.Context, videoID uuid.UUID) {
	if err := s.cache.Delete(ctx, videoID); err != nil {
		slog.Warn("failed to invalidate video cache",
			"video_id", videoID,
			"error", err,
		)
	}
}
