package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/CodellaAI/viewtube-backend/internal/domain/repository"
	"github.com/CodellaAI/viewtube-backend/internal/infrastructure/metrics"
)

const (
	// DefaultMaxRetries is the default maximum number of retry attempts
	// before a cleanup task is dropped.
	DefaultMaxRetries = 3
)

// CleanupServiceConfig holds configuration for CleanupService.
type CleanupServiceConfig struct {
	// MaxRetries is the maximum number of retry attempts before the task
	// is dropped and its objects left for a manual sweep.
	MaxRetries int
}

// DefaultCleanupServiceConfig returns the default configuration.
func DefaultCleanupServiceConfig() CleanupServiceConfig {
	return CleanupServiceConfig{
		MaxRetries: DefaultMaxRetries,
	}
}

// CleanupService removes a deleted video's stored objects.
type CleanupService interface {
	// ProcessTask handles a cleanup task from the message queue.
	// Returns nil on success or permanent failure (max retries exceeded).
	// Returns an error for transient failures that should trigger a retry.
	ProcessTask(ctx context.Context, task repository.MediaCleanupTask) error
}

type cleanupService struct {
	storage    repository.ObjectStorage
	maxRetries int
}

// NewCleanupService creates a new CleanupService instance.
func NewCleanupService(storage repository.ObjectStorage, cfg CleanupServiceConfig) CleanupService {
	return &cleanupService{
		storage:    storage,
		maxRetries: cfg.MaxRetries,
	}
}

// ProcessTask deletes the task's objects in parallel. Object removal is
// idempotent in the storage layer, so a retried task re-deleting some keys
// is harmless.
func (s *cleanupService) ProcessTask(ctx context.Context, task repository.MediaCleanupTask) error {
	if task.RetryCount >= s.maxRetries {
		slog.Warn("dropping cleanup task after max retries, objects left for manual sweep",
			"video_id", task.VideoID,
			"retry_count", task.RetryCount,
			"object_keys", task.ObjectKeys,
		)
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, key := range task.ObjectKeys {
		g.Go(func() error {
			if err := s.storage.Delete(ctx, key); err != nil {
				metrics.CleanupObjectsTotal.WithLabelValues(metrics.CleanupStatusError).Inc()
				return fmt.Errorf("delete object %q: %w", key, err)
			}
			metrics.CleanupObjectsTotal.WithLabelValues(metrics.CleanupStatusSuccess).Inc()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return nil
}
