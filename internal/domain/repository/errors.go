package repository

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found.
	ErrUserNotFound = errors.New("user not found")

	// ErrVideoNotFound is returned when a video cannot be found.
	ErrVideoNotFound = errors.New("video not found")

	// ErrCommentNotFound is returned when a comment cannot be found.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrReactionExists is returned when the actor already holds the
	// requested reaction on the target.
	ErrReactionExists = errors.New("reaction already recorded")

	// ErrAlreadySubscribed is returned when the subscription edge already
	// exists.
	ErrAlreadySubscribed = errors.New("already subscribed")

	// ErrNotSubscribed is returned when unsubscribing without an existing
	// subscription edge.
	ErrNotSubscribed = errors.New("not subscribed")
)
