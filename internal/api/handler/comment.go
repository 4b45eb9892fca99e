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

type CreateCommentRequest struct {
	Content  string  `json:"content"`
	ParentID *string `json:"parent_id"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

type CommentResponse struct {
	ID        string  `json:"id"`
	VideoID   string  `json:"video_id"`
	AuthorID  string  `json:"author_id"`
	ParentID  *string `json:"parent_id,omitempty"`
	Content   string  `json:"content"`
	Likes     int64   `json:"likes"`
	Dislikes  int64   `json:"dislikes"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

// CommentHandler handles comment-related HTTP requests, including comment
// engagement endpoints.
type CommentHandler struct {
	svc        usecase.CommentService
	engagement usecase.EngagementService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(svc usecase.CommentService, engagement usecase.EngagementService) *CommentHandler {
	return &CommentHandler{svc: svc, engagement: engagement}
}

// Create handles POST /v1/videos/{id}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	videoID, ok := videoIDParam(w, r)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	var parentID *uuid.UUID
	if req.ParentID != nil {
		parsed, err := uuid.Parse(*req.ParentID)
		if err != nil {
			Error(w, http.StatusBadRequest, "invalid_parent_id", "Parent ID must be a valid UUID")
			return
		}
		parentID = &parsed
	}

	comment, err := h.svc.CreateComment(r.Context(), usecase.CreateCommentInput{
		VideoID:  videoID,
		Actor:    middleware.GetPrincipal(r.Context()),
		ParentID: parentID,
		Content:  req.Content,
	})
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toCommentResponse(comment))
}

// ListForVideo handles GET /v1/videos/{id}/comments
func (h *CommentHandler) ListForVideo(w http.ResponseWriter, r *http.Request) {
	videoID, ok := videoIDParam(w, r)
	if !ok {
		return
	}

	comments, err := h.svc.ListComments(r.Context(), videoID, pageFromRequest(r))
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toCommentListResponse(comments))
}

// ListReplies handles GET /v1/comments/{id}/replies
func (h *CommentHandler) ListReplies(w http.ResponseWriter, r *http.Request) {
	commentID, ok := commentIDParam(w, r)
	if !ok {
		return
	}

	replies, err := h.svc.ListReplies(r.Context(), commentID)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toCommentListResponse(replies))
}

// Update handles PATCH /v1/comments/{id}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	commentID, ok := commentIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	comment, err := h.svc.UpdateComment(r.Context(), commentID, middleware.GetPrincipal(r.Context()), req.Content)
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toCommentResponse(comment))
}

// Delete handles DELETE /v1/comments/{id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, ok := commentIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteComment(r.Context(), commentID, middleware.GetPrincipal(r.Context())); err != nil {
		ServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Like handles PUT /v1/comments/{id}/like
func (h *CommentHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.engage(w, r, h.engagement.Like)
}

// Unlike handles DELETE /v1/comments/{id}/like
func (h *CommentHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.engage(w, r, h.engagement.Unlike)
}

// Dislike handles PUT /v1/comments/{id}/dislike
func (h *CommentHandler) Dislike(w http.ResponseWriter, r *http.Request) {
	h.engage(w, r, h.engagement.Dislike)
}

// Undislike handles DELETE /v1/comments/{id}/dislike
func (h *CommentHandler) Undislike(w http.ResponseWriter, r *http.Request) {
	h.engage(w, r, h.engagement.Undislike)
}

func (h *CommentHandler) engage(w http.ResponseWriter, r *http.Request, fn engagementFn) {
	commentID, ok := commentIDParam(w, r)
	if !ok {
		return
	}

	counts, err := fn(r.Context(), model.TargetComment, commentID, middleware.GetPrincipal(r.Context()))
	if err != nil {
		ServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, EngagementResponse{Likes: counts.Likes, Dislikes: counts.Dislikes})
}

func commentIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	commentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_comment_id", "Comment ID must be a valid UUID")
		return uuid.Nil, false
	}
	return commentID, true
}

func toCommentResponse(c *model.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID.String(),
		VideoID:   c.VideoID.String(),
		AuthorID:  c.AuthorID.String(),
		Content:   c.Content,
		Likes:     c.Likes,
		Dislikes:  c.Dislikes,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
	if c.ParentID != nil {
		parent := c.ParentID.String()
		resp.ParentID = &parent
	}
	return resp
}

func toCommentListResponse(comments []*model.Comment) CommentListResponse {
	resp := CommentListResponse{Comments: make([]CommentResponse, 0, len(comments))}
	for _, c := range comments {
		resp.Comments = append(resp.Comments, toCommentResponse(c))
	}
	return resp
}
