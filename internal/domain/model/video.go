package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 5000
)

var (
	ErrInvalidOwnerID     = errors.New("owner ID cannot be nil")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title exceeds maximum length of 100 characters")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length of 5000 characters")
	ErrNegativeDuration   = errors.New("duration cannot be negative")
)

// Video represents a published video in the catalog. MediaKey and
// ThumbnailKey are opaque object-storage locators owned by the upload
// collaborator. Like/dislike membership lives in reaction rows, not here.
type Video struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Description  string
	MediaKey     string
	ThumbnailKey string
	Duration     int
	Views        int64
	Category     Category
	Tags         []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewVideo creates a Video with a creation-ordered (v7) identifier.
// Duration defaults to zero when the upload collaborator supplied none;
// unknown categories fall back to DefaultCategory.
func NewVideo(ownerID uuid.UUID, title, description string, category Category, duration int) (*Video, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}
	if len(description) > maxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	if duration < 0 {
		return nil, ErrNegativeDuration
	}
	if !category.IsValid() {
		category = DefaultCategory
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Video{
		ID:          id,
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Duration:    duration,
		Category:    category,
		Tags:        []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ParseTags splits a comma-delimited tag string into a trimmed, de-duplicated
// list. Empty input yields an empty list.
func ParseTags(s string) []string {
	tags := []string{}
	seen := map[string]struct{}{}
	for _, raw := range strings.Split(s, ",") {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
