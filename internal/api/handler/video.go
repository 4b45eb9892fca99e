package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/CodellaAI/viewtube-backend/internal/api/middleware"
	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
	"github.com/CodellaAI/viewtube-backend/internal/usecase"
)

// Request/Response types

type CreateVideoRequest struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	Category          string `json:"category"`
	Tags              string `json:"tags"`
	Duration          int    `json:"duration_seconds"`
	MediaFileName     string `json:"media_file_name"`
	ThumbnailFileName string `json:"thumbnail_file_name"`
}

type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Tags        *string `json:"tags"`
}

type VideoResponse struct {
	ID           string   `json:"id"`
	OwnerID      string   `json:"owner_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	MediaKey     string   `json:"media_key,omitempty"`
	ThumbnailKey string   `json:"thumbnail_key,omitempty"`
	Duration     int      `json:"duration_seconds"`
	Views        int64    `json:"views"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type CreateVideoResponse struct {
	Video              VideoResponse `json:"video"`
	MediaUploadURL     string        `json:"media_upload_url"`
	ThumbnailUploadURL string        `json:"thumbnail_upload_url,omitempty"`
}

type VideoDetailResponse struct {
	VideoResponse
	Likes            int64 `json:"likes"`
	Dislikes         int64 `json:"dislikes"`
	LikedByViewer    bool  `json:"liked_by_viewer"`
	DislikedByViewer bool  `json:"disliked_by_viewer"`
	OwnerSubscribers int64 `json:"owner_subscribers"`
}

type VideoListResponse struct {
	Videos []VideoResponse `json:"videos"`
}

type ViewsResponse struct {
	Views int64 `json:"views"`
}

type EngagementResponse struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

type ReactionStatusResponse struct {
	Liked    bool `json:"liked"`
	Disliked bool `json:"disliked"`
}

// VideoHandler handles video-related HTTP requests, including video
// engagement endpoints.
type VideoHandler struct {
	svc        usecase.VideoService
	engagement usecase.EngagementService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(svc usecase.VideoService, engagement usecase.EngagementService) *VideoHandler {
	return &VideoHandler{svc: svc, engagement: engagement}
}

// Create handles POST /v1/videos
func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	if req.Title == "" {
		Error(w, http.StatusBadRequest, "invalid_title", "Title is required")
		return
	}
	if req.MediaFileName == "" {
		Error(w, http.StatusBadRequest, "invalid_media_file_name", "Media file name is required")
		return
	}

	output, err := h.svc.CreateVideo(r.Context(), usecase.CreateVideoInput{
		Actor:             middleware.GetPrincipal(r.Context()),
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Tags:              req.Tags,
		Duration:          req.Duration,
		MediaFileName:     req.MediaFileName,
		ThumbnailFileName: req.ThumbnailFileName,
	})
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, CreateVideoResponse{
		Video:              toVideoResponse(output.Video),
		MediaUploadURL:     output.MediaUploadURL,
		ThumbnailUploadURL: output.ThumbnailUploadURL,
	})
}

// List handles GET /v1/videos
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.svc.ListVideos(r.Context(), usecase.ListVideosInput{
		Category: r.URL.Query().Get("category"),
		Page:     pageFromRequest(r),
	})
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoListResponse(videos))
}

// Search handles GET /v1/videos/search
func (h *VideoHandler) Search(w http.ResponseWriter, r *http.Request) {
	videos, err := h.svc.SearchVideos(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoListResponse(videos))
}

// Get handles GET /v1/videos/{id}
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	videoID, ok := videoIDParam(w, r)
	if !ok {
		return
	}

	detail, err := h.svc.GetVideoDetail(r.Context(), videoID, middleware.GetPrincipal(r.Context()))
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, VideoDetailResponse{
		VideoResponse:    toVideoResponse(detail.Video),
		Likes:            detail.Counts.Likes,
		Dislikes:         detail.Counts.Dislikes,
		LikedByViewer:    detail.ViewerStatus.Liked,
		DislikedByViewer: detail.ViewerStatus.Disliked,
		OwnerSubscribers: detail.OwnerSubscribers,
	})
}

// Update handles PATCH /v1/videos/{id}
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	videoID, ok := videoIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	video, err := h.svc.UpdateVideo(r.Context(), usecase.UpdateVideoInput{
		ID:          videoID,
		Actor:       middleware.GetPrincipal(r.Context()),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
	})
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video))
}

// Delete handles DELETE /v1/videos/{id}
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	videoID, ok := videoIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteVideo(r.Context(), videoID, middleware.GetPrincipal(r.Context())); err != nil {
		ServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// IncrementViews handles POST /v1/videos/{id}/views
func (h *VideoHandler) IncrementViews(w http.ResponseWriter, r *http.Request) {
	videoID, ok := videoIDParam(w, r)
	if !ok {
		return
	}

	views, err := h.svc.IncrementViews(r.Context(), videoID)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, ViewsResponse{Views: views})
}

// Recommended handles GET /v1/videos/{id}/recommended
func (h *VideoHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	videoID, ok := videoIDParam(w, r)
	if !ok {
		return
	}

	videos, err := h.svc.RecommendedVideos(r.Context(), videoID)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoListResponse(videos))
}

// Like handles PUT /v1/videos/{id}/like
func (h *VideoHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.engage(w, r, h.engagement.Like)
}

// Unlike handles DELETE /v1/videos/{id}/like
func (h *VideoHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.engage(w, r, h.engagement.Unlike)
}

// Dislike handles PUT /v1/videos/{id}/dislike
func (h *VideoHandler) Dislike(w http.ResponseWriter, r *http.Request) {
	h.engage(w, r, h.engagement.Dislike)
}

// Undislike handles DELETE /v1/videos/{id}/dislike
func (h *VideoHandler) Undislike(w http.ResponseWriter, r *http.Request) {
	h.engage(w, r, h.engagement.Undislike)
}

// ReactionStatus handles GET /v1/videos/{id}/reaction
func (h *VideoHandler) ReactionStatus(w http.ResponseWriter, r *http.Request) {
	videoID, ok := videoIDParam(w, r)
	if !ok {
		return
	}

	status, err := h.engagement.Status(r.Context(), model.TargetVideo, videoID, middleware.GetPrincipal(r.Context()))
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, ReactionStatusResponse{Liked: status.Liked, Disliked: status.Disliked})
}

type engagementFn func(ctx context.Context, kind model.TargetKind, targetID uuid.UUID, actor *model.Principal) (model.EngagementCounts, error)

func (h *VideoHandler) engage(w http.ResponseWriter, r *http.Request, fn engagementFn) {
	videoID, ok := videoIDParam(w, r)
	if !ok {
		return
	}

	counts, err := fn(r.Context(), model.TargetVideo, videoID, middleware.GetPrincipal(r.Context()))
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, EngagementResponse{Likes: counts.Likes, Dislikes: counts.Dislikes})
}

func videoIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	videoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a valid UUID")
		return uuid.Nil, false
	}
	return videoID, true
}

func pageFromRequest(r *http.Request) model.Page {
	q := r.URL.Query()
	return model.NewPage(q.Get("page"), q.Get("limit"))
}

func toVideoResponse(v *model.Video) VideoResponse {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}
	return VideoResponse{
		ID:           v.ID.String(),
		OwnerID:      v.OwnerID.String(),
		Title:        v.Title,
		Description:  v.Description,
		MediaKey:     v.MediaKey,
		ThumbnailKey: v.ThumbnailKey,
		Duration:     v.Duration,
		Views:        v.Views,
		Category:     v.Category.String(),
		Tags:         tags,
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.Format(time.RFC3339),
	}
}

func toVideoListResponse(videos []*model.Video) VideoListResponse {
	resp := VideoListResponse{Videos: make([]VideoResponse, 0, len(videos))}
	for _, v := range videos {
		resp.Videos = append(resp.Videos, toVideoResponse(v))
	}
	return resp
}
