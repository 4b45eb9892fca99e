package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CodellaAI/viewtube-backend/internal/domain/model"
	"github.com/CodellaAI/viewtube-backend/internal/domain/repository"
	"github.com/CodellaAI/viewtube-backend/internal/usecase"
)

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
		}
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func Error(w http.ResponseWriter, status int, err string, message string) {
	JSON(w, status, ErrorResponse{
		Error:   err,
		Message: message,
	})
}

// ServiceError translates service-layer failures into the API error
// taxonomy. Only the error kind and a short message cross the boundary;
// storage detail stays in the logs.
func ServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		Error(w, http.StatusUnauthorized, "unauthenticated", "Authentication required")
	case errors.Is(err, usecase.ErrForbidden):
		Error(w, http.StatusForbidden, "forbidden", "Not allowed to modify this resource")
	case errors.Is(err, repository.ErrVideoNotFound):
		Error(w, http.StatusNotFound, "video_not_found", "Video not found")
	case errors.Is(err, repository.ErrCommentNotFound):
		Error(w, http.StatusNotFound, "comment_not_found", "Comment not found")
	case errors.Is(err, repository.ErrUserNotFound):
		Error(w, http.StatusNotFound, "user_not_found", "User not found")
	case errors.Is(err, repository.ErrReactionExists):
		Error(w, http.StatusConflict, "already_reacted", "Reaction already recorded")
	case errors.Is(err, repository.ErrAlreadySubscribed):
		Error(w, http.StatusConflict, "already_subscribed", "Already subscribed to this channel")
	case errors.Is(err, repository.ErrNotSubscribed):
		Error(w, http.StatusBadRequest, "not_subscribed", "Not subscribed to this channel")
	case errors.Is(err, repository.ErrDuplicateUsername):
		Error(w, http.StatusConflict, "username_taken", "Username already taken")
	case errors.Is(err, usecase.ErrSelfSubscription):
		Error(w, http.StatusBadRequest, "self_subscription", "Cannot subscribe to yourself")
	case errors.Is(err, usecase.ErrEmptySearchQuery):
		Error(w, http.StatusBadRequest, "invalid_query", "Search query is required")
	case errors.Is(err, usecase.ErrParentVideoMismatch):
		Error(w, http.StatusBadRequest, "invalid_parent", "Parent comment belongs to a different video")
	case errors.Is(err, usecase.ErrNestedReply):
		Error(w, http.StatusBadRequest, "invalid_parent", "Cannot reply to a reply")
	case isValidationError(err):
		Error(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		model.ErrEmptyTitle,
		model.ErrTitleTooLong,
		model.ErrDescriptionTooLong,
		model.ErrNegativeDuration,
		model.ErrEmptyContent,
		model.ErrContentTooLong,
		model.ErrEmptyUsername,
		model.ErrUsernameTooLong,
		model.ErrBioTooLong,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
