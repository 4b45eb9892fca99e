package handler

import (
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

type UpdateProfileRequest struct {
	Username    *string `json:"username"`
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
}

type UpdateAvatarRequest struct {
	FileName string `json:"file_name"`
}

type UpdateAvatarResponse struct {
	AvatarKey string `json:"avatar_key"`
	UploadURL string `json:"upload_url"`
}

type ProfileResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarKey   string `json:"avatar_key,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Subscribers int64  `json:"subscribers"`
	CreatedAt   string `json:"created_at"`
}

type SubscriptionListResponse struct {
	Channels []ProfileResponse `json:"channels"`
}

type SubscriptionStatusResponse struct {
	Subscribed bool `json:"subscribed"`
}

// UserHandler handles profile and subscription HTTP requests.
type UserHandler struct {
	users  usecase.UserService
	videos usecase.VideoService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users usecase.UserService, videos usecase.VideoService) *UserHandler {
	return &UserHandler{users: users, videos: videos}
}

// GetProfile handles GET /v1/users/{id}
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	profile, err := h.users.GetProfile(r.Context(), userID)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toProfileResponse(profile))
}

// ListVideos handles GET /v1/users/{id}/videos
func (h *UserHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	videos, err := h.videos.ListByOwner(r.Context(), userID)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoListResponse(videos))
}

// UpdateProfile handles PATCH /v1/users/me
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	profile, err := h.users.UpdateProfile(r.Context(), usecase.UpdateProfileInput{
		Actor:       middleware.GetPrincipal(r.Context()),
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toProfileResponse(profile))
}

// UpdateAvatar handles PUT /v1/users/me/avatar
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	var req UpdateAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	if req.FileName == "" {
		Error(w, http.StatusBadRequest, "invalid_file_name", "File name is required")
		return
	}

	output, err := h.users.UpdateAvatar(r.Context(), middleware.GetPrincipal(r.Context()), req.FileName)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, UpdateAvatarResponse{
		AvatarKey: output.AvatarKey,
		UploadURL: output.UploadURL,
	})
}

// Subscribe handles PUT /v1/users/{id}/subscription
func (h *UserHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	channelID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	if err := h.users.Subscribe(r.Context(), middleware.GetPrincipal(r.Context()), channelID); err != nil {
		ServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Unsubscribe handles DELETE /v1/users/{id}/subscription
func (h *UserHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	channelID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	if err := h.users.Unsubscribe(r.Context(), middleware.GetPrincipal(r.Context()), channelID); err != nil {
		ServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SubscriptionStatus handles GET /v1/users/{id}/subscription
func (h *UserHandler) SubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	channelID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	subscribed, err := h.users.IsSubscribed(r.Context(), middleware.GetPrincipal(r.Context()), channelID)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, SubscriptionStatusResponse{Subscribed: subscribed})
}

// ListSubscriptions handles GET /v1/users/me/subscriptions
func (h *UserHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	channels, err := h.users.ListSubscriptions(r.Context(), middleware.GetPrincipal(r.Context()))
	if err != nil {
		ServiceError(w, err)
		return
	}

	resp := SubscriptionListResponse{Channels: make([]ProfileResponse, 0, len(channels))}
	for _, c := range channels {
		resp.Channels = append(resp.Channels, toProfileResponse(c))
	}

	JSON(w, http.StatusOK, resp)
}

// ListLikedVideos handles GET /v1/users/me/likes
func (h *UserHandler) ListLikedVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videos.ListLikedVideos(r.Context(), middleware.GetPrincipal(r.Context()), pageFromRequest(r))
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoListResponse(videos))
}

func userIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_user_id", "User ID must be a valid UUID")
		return uuid.Nil, false
	}
	return userID, true
}

func toProfileResponse(p *model.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID.String(),
		Username:    p.Username,
		DisplayName: p.DisplayName,
		AvatarKey:   p.AvatarKey,
		Bio:         p.Bio,
		Subscribers: p.Subscribers,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}
