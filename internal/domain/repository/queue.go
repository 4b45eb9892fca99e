package repository

import (
	"context"

	"github.com/google/uuid"
)

// MediaCleanupTask asks the worker to remove a deleted video's stored
// objects. Published after the database cascade commits.
type MediaCleanupTask struct {
	VideoID    uuid.UUID `json:"video_id"`
	ObjectKeys []string  `json:"object_keys"`
	RetryCount int       `json:"retry_count"`
}

// MessageQueue defines the interface for message queue operations.
// Implementations should be provided by the infrastructure layer (e.g., RabbitMQ).
type MessageQueue interface {
	// PublishMediaCleanup sends a cleanup task to the queue.
	// Used by the API server after a video delete commits.
	PublishMediaCleanup(ctx context.Context, task MediaCleanupTask) error

	// ConsumeMediaCleanup starts consuming cleanup tasks from the queue.
	// The handler function is called for each received task.
	// Used by the worker service.
	ConsumeMediaCleanup(ctx context.Context, handler func(task MediaCleanupTask) error) error

	// Close gracefully closes the connection to the message queue.
	Close() error
}
