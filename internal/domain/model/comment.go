package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const maxContentLength = 1000

var (
	ErrInvalidAuthorID = errors.New("author ID cannot be nil")
	ErrInvalidVideoID  = errors.New("video ID cannot be nil")
	ErrEmptyContent    = errors.New("content cannot be empty")
	ErrContentTooLong  = errors.New("content exceeds maximum length of 1000 characters")
)

// Comment is a discussion entry on a video. ParentID is nil for top-level
// comments and set for replies; the child-to-parent pointer is the
// authoritative relation, reply lists are derived queries. Threading is one
// level deep: a reply cannot itself have replies.
type Comment struct {
	ID        uuid.UUID
	VideoID   uuid.UUID
	AuthorID  uuid.UUID
	ParentID  *uuid.UUID
	Content   string
	Likes     int64
	Dislikes  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewComment(videoID, authorID uuid.UUID, parentID *uuid.UUID, content string) (*Comment, error) {
	if videoID == uuid.Nil {
		return nil, ErrInvalidVideoID
	}
	if authorID == uuid.Nil {
		return nil, ErrInvalidAuthorID
	}
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Comment{
		ID:        id,
		VideoID:   videoID,
		AuthorID:  authorID,
		ParentID:  parentID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateContent checks comment text bounds. Used on create and update.
func ValidateContent(content string) error {
	if content == "" {
		return ErrEmptyContent
	}
	if len(content) > maxContentLength {
		return ErrContentTooLong
	}
	return nil
}

// IsReply reports whether the comment is a reply to another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
