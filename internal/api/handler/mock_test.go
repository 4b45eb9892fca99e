package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"

	"github.com/CodellaAI/viewtube-backend/internal/api/middleware"
	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
	"github.com/CodellaAI/viewtube-backend/internal/usecase"
)

// requestWithPrincipal routes the request through the principal middleware
// with the given caller identity, so handlers see a resolved principal.
func requestWithPrincipal(router http.Handler, req *http.Request, userID uuid.UUID) *httptest.ResponseRecorder {
	req.Header.Set("X-User-Id", userID.String())
	rec := httptest.NewRecorder()
	middleware.Principal(router).ServeHTTP(rec, req)
	return rec
}

// Mock VideoService

type mockVideoService struct {
	createVideoFn       func(ctx context.Context, input usecase.CreateVideoInput) (*usecase.CreateVideoOutput, error)
	getVideoFn          func(ctx context.Context, videoID uuid.UUID) (*model.Video, error)
	getVideoDetailFn    func(ctx context.Context, videoID uuid.UUID, viewer *model.Principal) (*usecase.VideoDetail, error)
	listVideosFn        func(ctx context.Context, input usecase.ListVideosInput) ([]*model.Video, error)
	searchVideosFn      func(ctx context.Context, query string) ([]*model.Video, error)
	listByOwnerFn       func(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error)
	listLikedVideosFn   func(ctx context.Context, actor *model.Principal, page model.Page) ([]*model.Video, error)
	recommendedVideosFn func(ctx context.Context, videoID uuid.UUID) ([]*model.Video, error)
	incrementViewsFn    func(ctx context.Context, videoID uuid.UUID) (int64, error)
	updateVideoFn       func(ctx context.Context, input usecase.UpdateVideoInput) (*model.Video, error)
	deleteVideoFn       func(ctx context.Context, videoID uuid.UUID, actor *model.Principal) error
}

func (m *mockVideoService) CreateVideo(ctx context.Context, input usecase.CreateVideoInput) (*usecase.CreateVideoOutput, error) {
	if m.createVideoFn != nil {
		return m.createVideoFn(ctx, input)
	}
	return nil, nil
}

func (m *mockVideoService) GetVideo(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	if m.getVideoFn != nil {
		return m.getVideoFn(ctx, videoID)
	}
	return nil, nil
}

func (m *mockVideoService) GetVideoDetail(ctx context.Context, videoID uuid.UUID, viewer *model.Principal) (*usecase.VideoDetail, error) {
	if m.getVideoDetailFn != nil {
		return m.getVideoDetailFn(ctx, videoID, viewer)
	}
	return nil, nil
}

func (m *mockVideoService) ListVideos(ctx context.Context, input usecase.ListVideosInput) ([]*model.Video, error) {
	if m.listVideosFn != nil {
		return m.listVideosFn(ctx, input)
	}
	return nil, nil
}

func (m *mockVideoService) SearchVideos(ctx context.Context, query string) ([]*model.Video, error) {
	if m.searchVideosFn != nil {
		return m.searchVideosFn(ctx, query)
	}
	return nil, nil
}

func (m *mockVideoService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Video, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockVideoService) ListLikedVideos(ctx context.Context, actor *model.Principal, page model.Page) ([]*model.Video, error) {
	if m.listLikedVideosFn != nil {
		return m.listLikedVideosFn(ctx, actor, page)
	}
	return nil, nil
}

func (m *mockVideoService) RecommendedVideos(ctx context.Context, videoID uuid.UUID) ([]*model.Video, error) {
	if m.recommendedVideosFn != nil {
		return m.recommendedVideosFn(ctx, videoID)
	}
	return nil, nil
}

func (m *mockVideoService) IncrementViews(ctx context.Context, videoID uuid.UUID) (int64, error) {
	if m.incrementViewsFn != nil {
		return m.incrementViewsFn(ctx, videoID)
	}
	return 0, nil
}

func (m *mockVideoService) UpdateVideo(ctx context.Context, input usecase.UpdateVideoInput) (*model.Video, error) {
	if m.updateVideoFn != nil {
		return m.updateVideoFn(ctx, input)
	}
	return nil, nil
}

func (m *mockVideoService) DeleteVideo(ctx context.Context, videoID uuid.UUID, actor *model.Principal) error {
	if m.deleteVideoFn != nil {
		return m.deleteVideoFn(ctx, videoID, actor)
	}
	return nil
}

// Mock EngagementService

type mockEngagementService struct {
	likeFn      func(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error)
	unlikeFn    func(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error)
	dislikeFn   func(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error)
	undislikeFn func(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error)
	statusFn    func(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementStatus, error)
}

func (m *mockEngagementService) Like(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error) {
	if m.likeFn != nil {
		return m.likeFn(ctx, kind, targetID, actor)
	}
	return model.EngagementCounts{}, nil
}

func (m *mockEngagementService) Unlike(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error) {
	if m.unlikeFn != nil {
		return m.unlikeFn(ctx, kind, targetID, actor)
	}
	return model.EngagementCounts{}, nil
}

func (m *mockEngagementService) Dislike(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error) {
	if m.dislikeFn != nil {
		return m.dislikeFn(ctx, kind, targetID, actor)
	}
	return model.EngagementCounts{}, nil
}

func (m *mockEngagementService) Undislike(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error) {
	if m.undislikeFn != nil {
		return m.undislikeFn(ctx, kind, targetID, actor)
	}
	return model.EngagementCounts{}, nil
}

func (m *mockEngagementService) Status(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementStatus, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx, kind, targetID, actor)
	}
	return model.EngagementStatus{}, nil
}

// Mock CommentService

type mockCommentService struct {
	createCommentFn func(ctx context.Context, input usecase.CreateCommentInput) (*model.Comment, error)
	listCommentsFn  func(ctx context.Context, videoID uuid.UUID, page model.Page) ([]*model.Comment, error)
	listRepliesFn   func(ctx context.Context, parentID uuid.UUID) ([]*model.Comment, error)
	updateCommentFn func(ctx context.Context, commentID uuid.UUID, actor *model.Principal, content string) (*model.Comment, error)
	deleteCommentFn func(ctx context.Context, commentID uuid.UUID, actor *model.Principal) error
}

func (m *mockCommentService) CreateComment(ctx context.Context, input usecase.CreateCommentInput) (*model.Comment, error) {
	if m.createCommentFn != nil {
		return m.createCommentFn(ctx, input)
	}
	return nil, nil
}

func (m *mockCommentService) ListComments(ctx context.Context, videoID uuid.UUID, page model.Page) ([]*model.Comment, error) {
	if m.listCommentsFn != nil {
		return m.listCommentsFn(ctx, videoID, page)
	}
	return nil, nil
}

func (m *mockCommentService) ListReplies(ctx context.Context, parentID uuid.UUID) ([]*model.Comment, error) {
	if m.listRepliesFn != nil {
		return m.listRepliesFn(ctx, parentID)
	}
	return nil, nil
}

func (m *mockCommentService) UpdateComment(ctx context.Context, commentID uuid.UUID, actor *model.Principal, content string) (*model.Comment, error) {
	if m.updateCommentFn != nil {
		return m.updateCommentFn(ctx, commentID, actor, content)
	}
	return nil, nil
}

func (m *mockCommentService) DeleteComment(ctx context.Context, commentID uuid.UUID, actor *model.Principal) error {
	if m.deleteCommentFn != nil {
		return m.deleteCommentFn(ctx, commentID, actor)
	}
	return nil
}

// Mock UserService

type mockUserService struct {
	getProfileFn        func(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	updateProfileFn     func(ctx context.Context, input usecase.UpdateProfileInput) (*model.Profile, error)
	updateAvatarFn      func(ctx context.Context, actor *model.Principal, fileName string) (*usecase.UpdateAvatarOutput, error)
	subscribeFn         func(ctx context.Context, actor *model.Principal, channelID uuid.UUID) error
	unsubscribeFn       func(ctx context.Context, actor *model.Principal, channelID uuid.UUID) error
	isSubscribedFn      func(ctx context.Context, actor *model.Principal, channelID uuid.UUID) (bool, error)
	listSubscriptionsFn func(ctx context.Context, actor *model.Principal) ([]*model.Profile, error)
}

func (m *mockUserService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*model.Profile, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, input)
	}
	return nil, nil
}

func (m *mockUserService) UpdateAvatar(ctx context.Context, actor *model.Principal, fileName string) (*usecase.UpdateAvatarOutput, error) {
	if m.updateAvatarFn != nil {
		return m.updateAvatarFn(ctx, actor, fileName)
	}
	return nil, nil
}

func (m *mockUserService) Subscribe(ctx context.Context, actor *model.Principal, channelID uuid.UUID) error {
	if m.subscribeFn != nil {
		return m.subscribeFn(ctx, actor, channelID)
	}
	return nil
}

func (m *mockUserService) Unsubscribe(ctx context.Context, actor *model.Principal, channelID uuid.UUID) error {
	if m.unsubscribeFn != nil {
		return m.unsubscribeFn(ctx, actor, channelID)
	}
	return nil
}

func (m *mockUserService) IsSubscribed(ctx context.Context, actor *model.Principal, channelID uuid.UUID) (bool, error) {
	if m.isSubscribedFn != nil {
		return m.isSubscribedFn(ctx, actor, channelID)
	}
	return false, nil
}

func (m *mockUserService) ListSubscriptions(ctx context.Context, actor *model.Principal) ([]*model.Profile, error) {
	if m.listSubscriptionsFn != nil {
		return m.listSubscriptionsFn(ctx, actor)
	}
	return nil, nil
}
