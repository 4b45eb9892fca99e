package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
	"github.com/CodellaAI/viewtube-backend/internal/domain/repository"
)

// mockVideoRepository provides a configurable mock for VideoRepository.
type mockVideoRepository struct {
	createFn                func(ctx context.Context, video *model.Video) error
	getByIDFn               func(ctx context.Context, id uuid.UUID) (*model.Video, error)
	listFn                  func(ctx context.Context, page model.Page) ([]*model.Video, error)
	listByCategoryFn        func(ctx context.Context, category model.Category, page model.Page) ([]*model.Video, error)
	listByOwnerFn           func(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error)
	searchFn                func(ctx context.Context, query string, limit int) ([]*model.Video, error)
	listPopularByCategoryFn func(ctx context.Context, category model.Category, exclude uuid.UUID, limit int) ([]*model.Video, error)
	listPopularExcludingFn  func(ctx context.Context, exclude []uuid.UUID, limit int) ([]*model.Video, error)
	listLikedByFn           func(ctx context.Context, userID uuid.UUID, page model.Page) ([]*model.Video, error)
	incrementViewsFn        func(ctx context.Context, id uuid.UUID) (int64, error)
	updateFn                func(ctx context.Context, video *model.Video) error
	deleteFn                func(ctx context.Context, id uuid.UUID) error
}

func (m *mockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	if m.createFn != nil {
		return m.createFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockVideoRepository) List(ctx context.Context, page model.Page) ([]*model.Video, error) {
	if m.listFn != nil {
		return m.listFn(ctx, page)
	}
	return nil, nil
}

func (m *mockVideoRepository) ListByCategory(ctx context.Context, category model.Category, page model.Page) ([]*model.Video, error) {
	if m.listByCategoryFn != nil {
		return m.listByCategoryFn(ctx, category, page)
	}
	return nil, nil
}

func (m *mockVideoRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockVideoRepository) Search(ctx context.Context, query string, limit int) ([]*model.Video, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockVideoRepository) ListPopularByCategory(ctx context.Context, category model.Category, exclude uuid.UUID, limit int) ([]*model.Video, error) {
	if m.listPopularByCategoryFn != nil {
		return m.listPopularByCategoryFn(ctx, category, exclude, limit)
	}
	return nil, nil
}

func (m *mockVideoRepository) ListPopularExcluding(ctx context.Context, exclude []uuid.UUID, limit int) ([]*model.Video, error) {
	if m.listPopularExcludingFn != nil {
		return m.listPopularExcludingFn(ctx, exclude, limit)
	}
	return nil, nil
}

func (m *mockVideoRepository) ListLikedBy(ctx context.Context, userID uuid.UUID, page model.Page) ([]*model.Video, error) {
	if m.listLikedByFn != nil {
		return m.listLikedByFn(ctx, userID, page)
	}
	return nil, nil
}

func (m *mockVideoRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.incrementViewsFn != nil {
		return m.incrementViewsFn(ctx, id)
	}
	return 0, nil
}

func (m *mockVideoRepository) Update(ctx context.Context, video *model.Video) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockCommentRepository provides a configurable mock for CommentRepository.
type mockCommentRepository struct {
	createFn              func(ctx context.Context, comment *model.Comment) error
	getByIDFn             func(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	listTopLevelByVideoFn func(ctx context.Context, videoID uuid.UUID, page model.Page) ([]*model.Comment, error)
	listRepliesFn         func(ctx context.Context, parentID uuid.UUID) ([]*model.Comment, error)
	updateFn              func(ctx context.Context, comment *model.Comment) error
	deleteFn              func(ctx context.Context, id uuid.UUID) error
	countByVideoFn        func(ctx context.Context, videoID uuid.UUID) (int64, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListTopLevelByVideo(ctx context.Context, videoID uuid.UUID, page model.Page) ([]*model.Comment, error) {
	if m.listTopLevelByVideoFn != nil {
		return m.listTopLevelByVideoFn(ctx, videoID, page)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListReplies(ctx context.Context, parentID uuid.UUID) ([]*model.Comment, error) {
	if m.listRepliesFn != nil {
		return m.listRepliesFn(ctx, parentID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) CountByVideo(ctx context.Context, videoID uuid.UUID) (int64, error) {
	if m.countByVideoFn != nil {
		return m.countByVideoFn(ctx, videoID)
	}
	return 0, nil
}

// mockUserRepository provides a configurable mock for UserRepository.
type mockUserRepository struct {
	createFn  func(ctx context.Context, user *model.User) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*model.User, error)
	updateFn  func(ctx context.Context, user *model.User) error
	existsFn  func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *model.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return true, nil
}

// mockSubscriptionRepository provides a configurable mock for SubscriptionRepository.
type mockSubscriptionRepository struct {
	createFn           func(ctx context.Context, subscriberID, channelID uuid.UUID) error
	deleteFn           func(ctx context.Context, subscriberID, channelID uuid.UUID) error
	existsFn           func(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
	countSubscribersFn func(ctx context.Context, channelID uuid.UUID) (int64, error)
	listChannelsFn     func(ctx context.Context, subscriberID uuid.UUID) ([]*model.Profile, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	if m.createFn != nil {
		return m.createFn(ctx, subscriberID, channelID)
	}
	return nil
}

func (m *mockSubscriptionRepository) Delete(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, subscriberID, channelID)
	}
	return nil
}

func (m *mockSubscriptionRepository) Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, subscriberID, channelID)
	}
	return false, nil
}

func (m *mockSubscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	if m.countSubscribersFn != nil {
		return m.countSubscribersFn(ctx, channelID)
	}
	return 0, nil
}

func (m *mockSubscriptionRepository) ListChannels(ctx context.Context, subscriberID uuid.UUID) ([]*model.Profile, error) {
	if m.listChannelsFn != nil {
		return m.listChannelsFn(ctx, subscriberID)
	}
	return nil, nil
}

// mockEngagementRepository provides a configurable mock for EngagementRepository.
type mockEngagementRepository struct {
	setFn    func(ctx context.Context, kind model.TargetKind, targetID, actorID uuid.UUID, reaction model.Reaction) (model.EngagementCounts, error)
	removeFn func(ctx context.Context, kind model.TargetKind, targetID, actorID uuid.UUID, reaction model.Reaction) (model.EngagementCounts, error)
	statusFn func(ctx context.Context, kind model.TargetKind, targetID, actorID uuid.UUID) (model.EngagementStatus, error)
	countsFn func(ctx context.Context, kind model.TargetKind, targetID uuid.UUID) (model.EngagementCounts, error)
}

func (m *mockEngagementRepository) Set(ctx context.Context, kind model.TargetKind, targetID, actorID uuid.UUID, reaction model.Reaction) (model.EngagementCounts, error) {
	if m.setFn != nil {
		return m.setFn(ctx, kind, targetID, actorID, reaction)
	}
	return model.EngagementCounts{}, nil
}

func (m *mockEngagementRepository) Remove(ctx context.Context, kind model.TargetKind, targetID, actorID uuid.UUID, reaction model.Reaction) (model.EngagementCounts, error) {
	if m.removeFn != nil {
		return m.removeFn(ctx, kind, targetID, actorID, reaction)
	}
	return model.EngagementCounts{}, nil
}

func (m *mockEngagementRepository) Status(ctx context.Context, kind model.TargetKind, targetID, actorID uuid.UUID) (model.EngagementStatus, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx, kind, targetID, actorID)
	}
	return model.EngagementStatus{}, nil
}

func (m *mockEngagementRepository) Counts(ctx context.Context, kind model.TargetKind, targetID uuid.UUID) (model.EngagementCounts, error) {
	if m.countsFn != nil {
		return m.countsFn(ctx, kind, targetID)
	}
	return model.EngagementCounts{}, nil
}

// mockObjectStorage provides a configurable mock for ObjectStorage.
type mockObjectStorage struct {
	generatePresignedUploadURLFn   func(ctx context.Context, key string, expiry time.Duration) (string, error)
	generatePresignedDownloadURLFn func(ctx context.Context, key string, expiry time.Duration) (string, error)
	deleteFn                       func(ctx context.Context, key string) error
	existsFn                       func(ctx context.Context, key string) (bool, error)
}

func (m *mockObjectStorage) GeneratePresignedUploadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if m.generatePresignedUploadURLFn != nil {
		return m.generatePresignedUploadURLFn(ctx, key, expiry)
	}
	return "http://example.com/upload", nil
}

func (m *mockObjectStorage) GeneratePresignedDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if m.generatePresignedDownloadURLFn != nil {
		return m.generatePresignedDownloadURLFn(ctx, key, expiry)
	}
	return "http://example.com/download", nil
}

func (m *mockObjectStorage) Delete(ctx context.Context, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

func (m *mockObjectStorage) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

// mockMessageQueue provides a configurable mock for MessageQueue.
type mockMessageQueue struct {
	publishMediaCleanupFn func(ctx context.Context, task repository.MediaCleanupTask) error
	consumeMediaCleanupFn func(ctx context.Context, handler func(task repository.MediaCleanupTask) error) error
}

func (m *mockMessageQueue) PublishMediaCleanup(ctx context.Context, task repository.MediaCleanupTask) error {
	if m.publishMediaCleanupFn != nil {
		return m.publishMediaCleanupFn(ctx, task)
	}
	return nil
}

func (m *mockMessageQueue) ConsumeMediaCleanup(ctx context.Context, handler func(task repository.MediaCleanupTask) error) error {
	if m.consumeMediaCleanupFn != nil {
		return m.consumeMediaCleanupFn(ctx, handler)
	}
	return nil
}

func (m *mockMessageQueue) Close() error {
	return nil
}

// mockVideoCache provides a configurable mock for cache.VideoCache.
type mockVideoCache struct {
	getFn    func(ctx context.Context, videoID uuid.UUID) (*model.Video, error)
	setFn    func(ctx context.Context, video *model.Video, ttl time.Duration) error
	deleteFn func(ctx context.Context, videoID uuid.UUID) error
}

func (m *mockVideoCache) Get(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	if m.getFn != nil {
		return m.getFn(ctx, videoID)
	}
	return nil, nil
}

func (m *mockVideoCache) Set(ctx context.Context, video *model.Video, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, video, ttl)
	}
	return nil
}

func (m *mockVideoCache) Delete(ctx context.Context, videoID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, videoID)
	}
	return nil
}
